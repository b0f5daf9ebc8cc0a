//go:build unix

package daemon

import (
	"net/http"
	"strings"

	"github.com/fwpack/fwpack/internal/discovery"
)

// Request/Response types

type AnalyzePackageResponse struct {
	Package *discovery.Package `json:"package"`
}

type ListBoardsResponse struct {
	Boards []discovery.Board `json:"boards"`
	Count  int               `json:"count"`
}

type ListProjectsResponse struct {
	Projects []discovery.ProjectTemplate `json:"projects"`
	Count    int                         `json:"count"`
}

// Handler methods

// handleAnalyzePackage handles GET /api/package?path=
func (d *Daemon) handleAnalyzePackage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, "path query parameter is required", http.StatusBadRequest)
		return
	}

	pkg, err := d.engine.AnalyzePackage(path)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, AnalyzePackageResponse{Package: pkg}, http.StatusOK)
}

// handleListBoards handles GET /api/boards?path=
func (d *Daemon) handleListBoards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, "path query parameter is required", http.StatusBadRequest)
		return
	}

	boards := d.engine.Boards(path)
	writeJSON(w, ListBoardsResponse{Boards: boards, Count: len(boards)}, http.StatusOK)
}

// handleBoardByID routes GET /api/boards/{id}/projects
func (d *Daemon) handleBoardByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/boards/")
	boardID, tail, found := strings.Cut(rest, "/")
	if !found || tail != "projects" || boardID == "" {
		writeError(w, "not found", http.StatusNotFound)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, "path query parameter is required", http.StatusBadRequest)
		return
	}

	projects := d.engine.ProjectsForBoard(path, boardID)
	writeJSON(w, ListProjectsResponse{Projects: projects, Count: len(projects)}, http.StatusOK)
}
