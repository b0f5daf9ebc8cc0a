//go:build unix

package daemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fwpack/fwpack/internal/registry"
)

// Request/Response types

type RegisterPackRequest struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type RegisterPackResponse struct {
	Pack *registry.Pack `json:"pack"`
}

type ListPacksResponse struct {
	Packs []*registry.Pack `json:"packs"`
}

// Handler methods

// handlePacks dispatches /api/packs: POST registers, GET lists.
func (d *Daemon) handlePacks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		d.handleRegisterPack(w, r)
	case http.MethodGet:
		d.handleListPacks(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (d *Daemon) handleRegisterPack(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req RegisterPackRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB cap
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	// Validate required fields
	if req.Name == "" {
		writeError(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		writeError(w, "path is required", http.StatusBadRequest)
		return
	}

	pack := &registry.Pack{
		Name:         req.Name,
		Path:         req.Path,
		RegisteredAt: time.Now().UTC(),
	}

	// Register and save atomically
	if err := d.registry.RegisterAndSave(pack); err != nil {
		if errors.Is(err, registry.ErrPackAlreadyExists) {
			writeError(w, "pack already registered at this path", http.StatusConflict)
			return
		}
		if errors.Is(err, registry.ErrInvalidPath) {
			writeError(w, fmt.Sprintf("invalid path: %v", err), http.StatusBadRequest)
			return
		}
		writeError(w, fmt.Sprintf("failed to persist pack: %v", err), http.StatusInternalServerError)
		return
	}

	resp := RegisterPackResponse{
		Pack: pack,
	}
	w.Header().Set("Location", "/api/packs/"+pack.ID)
	writeJSON(w, resp, http.StatusCreated)
}

func (d *Daemon) handleListPacks(w http.ResponseWriter, r *http.Request) {
	packs := d.registry.List()

	resp := ListPacksResponse{
		Packs: packs,
	}
	writeJSON(w, resp, http.StatusOK)
}

// handlePackByID routes requests to /api/packs/{id}
func (d *Daemon) handlePackByID(w http.ResponseWriter, r *http.Request) {
	packID := strings.TrimPrefix(r.URL.Path, "/api/packs/")
	if packID == "" || packID == r.URL.Path {
		writeError(w, "pack ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodDelete:
		d.handleRemovePack(w, r, packID)
	case http.MethodGet:
		d.handleShowPack(w, r, packID)
	default:
		w.Header().Set("Allow", "GET, DELETE")
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (d *Daemon) handleShowPack(w http.ResponseWriter, r *http.Request, packID string) {
	pack, err := d.registry.Get(packID)
	if err != nil {
		writeError(w, "pack not found", http.StatusNotFound)
		return
	}
	writeJSON(w, RegisterPackResponse{Pack: pack}, http.StatusOK)
}

func (d *Daemon) handleRemovePack(w http.ResponseWriter, r *http.Request, packID string) {
	// Remove and save atomically
	_, err := d.registry.UnregisterAndSave(packID)
	if err != nil {
		if errors.Is(err, registry.ErrPackNotFound) {
			writeError(w, "pack not found", http.StatusNotFound)
			return
		}
		writeError(w, fmt.Sprintf("failed to remove pack: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
