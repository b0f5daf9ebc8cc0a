//go:build unix

package daemon

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fwpack/fwpack/internal/history"
	"github.com/fwpack/fwpack/internal/workspace"
)

// Request/Response types

type ImportProjectRequest struct {
	Path        string `json:"path"`
	BoardID     string `json:"board_id"`
	Project     string `json:"project"`
	SourcePath  string `json:"source_path,omitempty"`
	Destination string `json:"destination"`
	TargetName  string `json:"target_name,omitempty"`
	GitInit     bool   `json:"git_init,omitempty"`
}

type ImportProjectResponse struct {
	Destination string `json:"destination"`
}

type ListImportsResponse struct {
	Imports []*history.Entry `json:"imports"`
	Count   int              `json:"count"`
}

// handleImports dispatches /api/imports: POST runs an import, GET lists the
// import history.
func (d *Daemon) handleImports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		d.handleImportProject(w, r)
	case http.MethodGet:
		d.handleListImports(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (d *Daemon) handleImportProject(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req ImportProjectRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)) // 1MB cap
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if req.Path == "" {
		writeError(w, "path is required", http.StatusBadRequest)
		return
	}
	if req.BoardID == "" {
		writeError(w, "board_id is required", http.StatusBadRequest)
		return
	}
	if req.Project == "" {
		writeError(w, "project is required", http.StatusBadRequest)
		return
	}
	if req.Destination == "" {
		writeError(w, "destination is required", http.StatusBadRequest)
		return
	}

	dest, err := workspace.Import(workspace.ImportOptions{
		Root:        req.Path,
		BoardID:     req.BoardID,
		Project:     req.Project,
		SourcePath:  req.SourcePath,
		Destination: req.Destination,
		TargetName:  req.TargetName,
		GitInit:     req.GitInit,
	})
	if err != nil {
		switch {
		case errors.Is(err, workspace.ErrProjectNotFound):
			writeError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, workspace.ErrDestinationExists):
			writeError(w, err.Error(), http.StatusConflict)
		default:
			writeError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// History failures must not fail a completed import.
	entry := &history.Entry{
		PackRoot:    req.Path,
		BoardID:     req.BoardID,
		Template:    req.Project,
		Destination: dest,
	}
	if err := d.history.Record(r.Context(), entry); err != nil {
		d.log.Warn("failed to record import history", "err", err)
	}

	writeJSON(w, ImportProjectResponse{Destination: dest}, http.StatusCreated)
}

func (d *Daemon) handleListImports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := d.history.List(r.Context(), limit)
	if err != nil {
		writeError(w, "failed to list imports: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, ListImportsResponse{Imports: entries, Count: len(entries)}, http.StatusOK)
}
