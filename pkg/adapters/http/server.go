package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/arith"
	"github.com/aretw0/turing/pkg/calculator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tables"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Calculator defines what the API needs from the calculation service.
type Calculator interface {
	Calculate(ctx context.Context, req calculator.Request) (*domain.Record, error)
	Get(ctx context.Context, id string) (*domain.Record, error)
	History(ctx context.Context) ([]*domain.Record, error)
	Delete(ctx context.Context, id string) error
}

// Server serves the JSON API over a Calculator.
type Server struct {
	Calc    Calculator
	Streams *StreamManager
	logger  *slog.Logger
	metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithStreams shares a StreamManager between handlers.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		if sm != nil {
			s.Streams = sm
		}
	}
}

// NewHandler creates a new HTTP handler for the calculator.
func NewHandler(calc Calculator, opts ...Option) http.Handler {
	server := &Server{
		Calc:    calc,
		Streams: NewStreamManager(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(server)
	}
	server.Streams.logger = server.logger

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/events", server.SubscribeEvents)

	r.Route("/runs", func(r chi.Router) {
		r.Post("/", server.CreateRun)
		r.Get("/", server.ListRuns)
		r.Get("/{id}", server.GetRun)
		r.Delete("/{id}", server.DeleteRun)
		r.Get("/{id}/graph", server.GetRunGraph)
	})

	r.Route("/tables", func(r chi.Router) {
		r.Get("/", server.ListTables)
		r.Get("/{name}", server.GetTable)
		r.Get("/{name}/graph", server.GetTableGraph)
	})

	if server.metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunRequest is the body of POST /runs.
type RunRequest struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Operation string `json:"operation"`
}

// RunEvent is broadcast on /events when a run completes.
type RunEvent struct {
	ID        string            `json:"id"`
	Operation domain.Operation  `json:"operation"`
	Reason    domain.HaltReason `json:"reason"`
	Steps     int               `json:"steps"`
}

// CreateRun handles the POST /runs request.
func (s *Server) CreateRun(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("CreateRun: Invalid request body", "error", err)
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	op, err := operationFor(body.Operation)
	if err != nil {
		s.writeError(w, err)
		return
	}

	record, err := s.Calc.Calculate(r.Context(), calculator.Request{
		Left:  body.Left,
		Right: body.Right,
		Op:    op,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	if event, err := json.Marshal(RunEvent{
		ID:        record.ID,
		Operation: record.Operation,
		Reason:    record.Reason,
		Steps:     record.Steps,
	}); err == nil {
		s.Streams.Broadcast(TopicAll, string(event))
		s.Streams.Broadcast(record.Table, string(event))
	}

	s.writeJSON(w, http.StatusCreated, record)
}

// ListRuns handles the GET /runs request.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	records, err := s.Calc.History(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if records == nil {
		records = []*domain.Record{}
	}
	s.writeJSON(w, http.StatusOK, records)
}

// GetRun handles the GET /runs/{id} request.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	record, err := s.Calc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

// DeleteRun handles the DELETE /runs/{id} request.
func (s *Server) DeleteRun(w http.ResponseWriter, r *http.Request) {
	if err := s.Calc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRunGraph handles the GET /runs/{id}/graph request: the run's table as
// Mermaid, with the visited states and the halting state highlighted.
func (s *Server) GetRunGraph(w http.ResponseWriter, r *http.Request) {
	record, err := s.Calc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	table, err := tables.ByName(record.Table)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(table, graph.RunOverlay(record)))
}

// ListTables handles the GET /tables request.
func (s *Server) ListTables(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, tables.All())
}

// GetTable handles the GET /tables/{name} request.
// The name is a table name ("addition") or a URL-safe operator ("+", "-", "*").
func (s *Server) GetTable(w http.ResponseWriter, r *http.Request) {
	table, err := tables.ByName(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, table)
}

// GetTableGraph handles the GET /tables/{name}/graph request.
func (s *Server) GetTableGraph(w http.ResponseWriter, r *http.Request) {
	table, err := tables.ByName(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(table, nil))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"app":        "turing-http",
		"version":    strings.TrimSpace(turing.Version),
		"step_limit": turing.StepLimit,
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// SubscribeEvents handles the GET /events request (SSE).
// The optional "table" query parameter narrows the stream to one table.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	topic := TopicAll
	if name := r.URL.Query().Get("table"); name != "" {
		table, err := tables.ByName(name)
		if err != nil {
			s.writeError(w, err)
			return
		}
		topic = table.Name
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(topic)
	defer cancel()

	s.logger.Info("SSE: Subscribing to run events", "topic", topic)
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE Client Disconnected", "topic", topic)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: run\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// -- Helpers --

// operationFor accepts an operator ("+") or a table name ("addition").
func operationFor(s string) (domain.Operation, error) {
	if op, err := domain.ParseOperation(s); err == nil {
		return op, nil
	}
	table, err := tables.ByName(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return table.Operation, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, arith.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, arith.ErrInvalidUTF8):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidOperand),
		errors.Is(err, domain.ErrUnknownOperation),
		errors.Is(err, domain.ErrDivisionByZero),
		errors.Is(err, domain.ErrNegativeDifference):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTapeAllocation):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "error", err)
	} else {
		s.logger.Debug("Request rejected", "status", status, "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}
