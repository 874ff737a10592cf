package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/actionflow"
	"github.com/aretw0/actionflow/pkg/document"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxDocumentSize bounds the body accepted by POST /run.
const MaxDocumentSize = 1 << 20

// Engine is the part of actionflow.Engine the HTTP adapter needs.
type Engine interface {
	RunDocument(data []byte, format document.Format, onError, onStep actionflow.Observer) (actionflow.Result, error)
}

// Catalog lists the node classes a server can run.
type Catalog interface {
	Names() []string
}

// Server serves pipeline runs over HTTP.
type Server struct {
	Engine   Engine
	Catalog  Catalog
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// RunResponse is the JSON body returned by POST /run.
type RunResponse struct {
	RunID     string   `json:"run_id"`
	Completed int      `json:"completed"`
	Total     int      `json:"total"`
	Steps     []string `json:"steps"`
	Error     string   `json:"error,omitempty"`
}

// ErrorResponse is the JSON body of every 4xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the server.
// A nil Gatherer disables GET /metrics.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/nodes", s.GetNodes)
	r.Post("/run", s.Run)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "actionflow-http",
		"version": actionflow.Version,
	})
}

// GetNodes handles the GET /nodes request.
func (s *Server) GetNodes(w http.ResponseWriter, _ *http.Request) {
	names := []string{}
	if s.Catalog != nil {
		names = append(names, s.Catalog.Names()...)
	}
	s.writeJSON(w, http.StatusOK, names)
}

// Run handles the POST /run request. The body is a pipeline document whose format
// is taken from the format query parameter (default yaml).
//
// A document that runs but fails at some step still answers 200; the failure is in the body.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(document.FormatYAML)
	}
	format, err := document.ParseFormat(name)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDocumentSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := RunResponse{Steps: []string{}}
	res, err := s.Engine.RunDocument(data, format,
		func(msg string) { resp.Error = msg },
		func(msg string) { resp.Steps = append(resp.Steps, msg) },
	)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("parse error: %v", err))
		return
	}

	resp.RunID = res.RunID
	resp.Completed = res.Completed
	resp.Total = res.Total
	s.Logger.Info("pipeline run", "run_id", res.RunID, "completed", res.Completed, "total", res.Total, "ok", res.OK())
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}
