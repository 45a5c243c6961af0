package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/RefikCodes/raptorex-gcode/config"
)

// handleCreateJob handles POST /api/v1/job.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req JobCreateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Lines) == 0 {
		writeError(w, http.StatusBadRequest, "Lines must not be empty")
		return
	}

	defaultDecimals := 4
	if s.cfg != nil {
		defaultDecimals = s.cfg.Rotation.Decimals
	}

	id, err := s.jobs.Submit(req.ToRotationRequest(defaultDecimals))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to submit job: %v", err))
		return
	}

	job, _ := s.jobs.Get(id)

	response := JobCreateResponse{
		JobID:     id,
		CreatedAt: job.CreatedAt,
	}

	writeJSON(w, http.StatusCreated, response)
}

// handleListJobs handles GET /api/v1/job.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	snapshots := s.jobs.List()

	response := JobListResponse{
		Jobs:  snapshots,
		Count: len(snapshots),
	}

	writeJSON(w, http.StatusOK, response)
}

// handleGetJobStatus handles GET /api/v1/job/{id}.
func (s *Server) handleGetJobStatus(w http.ResponseWriter, r *http.Request, id string) {
	job, ok := s.jobs.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Job not found")
		return
	}

	writeJSON(w, http.StatusOK, ToJobStatusResponse(job))
}

// handleGetConfig handles GET /api/v1/config.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, s.cfg)
}

// handleUpdateConfig handles PUT /api/v1/config. It updates the
// server's in-memory configuration and persists it to the default
// config path.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cfg config.Config
	if err := readJSON(r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := cfg.Save(); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save config: %v", err))
		return
	}

	s.cfg = &cfg

	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Configuration updated",
	})
}

// handleListExamples handles GET /api/v1/examples.
func (s *Server) handleListExamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	examplesDir := "examples"
	entries, err := os.ReadDir(examplesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to read examples directory: %v", err))
		return
	}

	examples := make([]ExampleInfo, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".gcode") && !strings.HasSuffix(name, ".nc") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		examples = append(examples, ExampleInfo{
			Name: name,
			Size: info.Size(),
		})
	}

	response := ExamplesResponse{
		Examples: examples,
		Count:    len(examples),
	}

	writeJSON(w, http.StatusOK, response)
}

// handleGetExample handles GET /api/v1/examples/{name}.
func (s *Server) handleGetExample(w http.ResponseWriter, r *http.Request, exampleName string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if strings.Contains(exampleName, "..") || strings.Contains(exampleName, "/") {
		writeError(w, http.StatusBadRequest, "Invalid example name")
		return
	}

	examplePath := filepath.Join("examples", exampleName)
	content, err := os.ReadFile(examplePath) // #nosec G304 -- path is validated above
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Example not found: %s", exampleName))
		return
	}

	info, err := os.Stat(examplePath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get file info")
		return
	}

	response := ExampleContentResponse{
		Name:    exampleName,
		Content: string(content),
		Size:    info.Size(),
	}

	writeJSON(w, http.StatusOK, response)
}
