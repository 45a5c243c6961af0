package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/RefikCodes/raptorex-gcode/config"
	"github.com/RefikCodes/raptorex-gcode/rotate"
	"github.com/RefikCodes/raptorex-gcode/service"
)

// Server represents the HTTP API server.
type Server struct {
	jobs        *service.RotationService
	broadcaster *Broadcaster
	cfg         *config.Config
	mux         *http.ServeMux
	server      *http.Server
	port        int
}

// NewServer creates a new API server backed by its own job store and
// broadcaster. cfg supplies the default decimal count applied when a
// job request omits one.
func NewServer(port int, cfg *config.Config) *Server {
	broadcaster := NewBroadcaster()

	s := &Server{
		broadcaster: broadcaster,
		cfg:         cfg,
		mux:         http.NewServeMux(),
		port:        port,
	}
	s.jobs = service.NewRotationService(&eventSinkAdapter{broadcaster: broadcaster})

	s.registerRoutes()

	return s
}

// eventSinkAdapter bridges service.EventSink onto the WebSocket
// broadcaster so a job's debug entries and status transitions stream
// to subscribed clients without the rotation engine knowing about HTTP
// or WebSockets at all.
type eventSinkAdapter struct {
	broadcaster *Broadcaster
}

func (a *eventSinkAdapter) EmitDebugEntry(jobID string, entry rotate.DebugEntry) {
	a.broadcaster.BroadcastDebugEntry(jobID, map[string]interface{}{
		"lineIndex": entry.LineIndex,
		"original":  entry.Original,
		"rewritten": entry.Rewritten,
		"isArc":     entry.IsArc,
		"rotated":   entry.Rotated,
		"beforeX":   entry.BeforeX,
		"beforeY":   entry.BeforeY,
		"afterX":    entry.AfterX,
		"afterY":    entry.AfterY,
	})
}

func (a *eventSinkAdapter) EmitStatus(jobID string, status service.JobStatus) {
	a.broadcaster.BroadcastStatus(jobID, string(status))
}

// Handler returns the HTTP handler with CORS middleware applied.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.mux)
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/api/v1/ws", s.handleWebSocket)

	s.mux.HandleFunc("/api/v1/job", s.handleJob)
	s.mux.HandleFunc("/api/v1/job/", s.handleJobRoute)

	s.mux.HandleFunc("/api/v1/config", s.handleConfig)

	s.mux.HandleFunc("/api/v1/examples", s.handleExamples)
	s.mux.HandleFunc("/api/v1/examples/", s.handleExamplesRoute)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("API server starting on http://127.0.0.1:%d", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.broadcaster != nil {
		s.broadcaster.Close()
	}

	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// GetBroadcaster returns the broadcaster (for testing).
func (s *Server) GetBroadcaster() *Broadcaster {
	return s.broadcaster
}

// corsMiddleware adds CORS headers restricted to localhost origins.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if isAllowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isAllowedOrigin checks if the origin is from localhost.
func isAllowedOrigin(origin string) bool {
	if origin == "" {
		return true // No origin header (native apps, curl, etc.)
	}

	if strings.HasPrefix(origin, "file://") {
		return true
	}

	if strings.HasPrefix(origin, "http://localhost") ||
		strings.HasPrefix(origin, "https://localhost") ||
		strings.HasPrefix(origin, "http://127.0.0.1") ||
		strings.HasPrefix(origin, "https://127.0.0.1") {
		return true
	}

	return false
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"jobs":   len(s.jobs.List()),
		"time":   time.Now().Format(time.RFC3339),
	}

	writeJSON(w, http.StatusOK, response)
}

// handleJob handles job creation and listing.
func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateJob(w, r)
	case http.MethodGet:
		s.handleListJobs(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleJobRoute handles GET /api/v1/job/{id}.
func (s *Server) handleJobRoute(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/job/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Job ID required")
		return
	}

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.handleGetJobStatus(w, r, id)
}

// handleConfig handles GET/PUT /api/v1/config.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetConfig(w, r)
	case http.MethodPut:
		s.handleUpdateConfig(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleExamples handles GET /api/v1/examples.
func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	s.handleListExamples(w, r)
}

// handleExamplesRoute handles GET /api/v1/examples/{name}.
func (s *Server) handleExamplesRoute(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/examples/")

	if path == "" {
		writeError(w, http.StatusBadRequest, "Example name required")
		return
	}

	s.handleGetExample(w, r, path)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

func readJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1024*1024)) // 1MB limit
	return decoder.Decode(v)
}
