//go:build unix

package daemon

import (
	"encoding/json"
	"net/http"
	"time"
)

func (d *Daemon) setupRoutes(mux *http.ServeMux) {
	// Health endpoint
	mux.HandleFunc("/health", d.handleHealth)

	// Discovery engine endpoints
	mux.HandleFunc("/api/package", d.handleAnalyzePackage)
	mux.HandleFunc("/api/boards", d.handleListBoards)
	mux.HandleFunc("/api/boards/", d.handleBoardByID)

	// Import + history
	mux.HandleFunc("/api/imports", d.handleImports)

	// Pack registry
	mux.HandleFunc("/api/packs", d.handlePacks)
	mux.HandleFunc("/api/packs/", d.handlePackByID)
}

func (d *Daemon) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(d.startTime).Seconds(),
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Helper functions

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	buf, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

func writeError(w http.ResponseWriter, message string, status int) {
	resp := ErrorResponse{
		Error: message,
	}
	writeJSON(w, resp, status)
}

type ErrorResponse struct {
	Error string `json:"error"`
}
