package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/derelict"
	"github.com/aretw0/derelict/internal/logging"
	"github.com/aretw0/derelict/internal/presentation/graph"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes one play session over HTTP.
// Requests are serialized: a Session is not safe for concurrent use.
type Server struct {
	engine  *derelict.Engine
	logger  *slog.Logger
	metrics http.Handler
	maxSize int
	streams *StreamManager

	mu      sync.Mutex
	session *derelict.Session
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler serves the handler under GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithMaxInputSize bounds the size of choices and answers.
func WithMaxInputSize(size int) Option {
	return func(s *Server) {
		s.maxSize = size
	}
}

// NewServer creates a server around a fresh session of the engine.
// The session starts on the first request.
func NewServer(engine *derelict.Engine, opts ...Option) *Server {
	s := &Server{
		engine:  engine,
		logger:  logging.NewNop(),
		streams: NewStreamManager(),
		session: engine.NewSession(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine *derelict.Engine, opts ...Option) http.Handler {
	return NewServer(engine, opts...).Handler()
}

// Response is returned by every gameplay endpoint.
type Response struct {
	Render *domain.Render    `json:"render,omitempty"`
	Diff   *domain.StateDiff `json:"diff,omitempty"`
	Status string            `json:"status,omitempty"`
}

type chooseRequest struct {
	Choice string `json:"choice"`
}

type answerRequest struct {
	Input string `json:"input"`
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/scene", s.GetScene)
	r.Post("/start", s.PostStart)
	r.Post("/choose", s.PostChoose)
	r.Post("/answer", s.PostAnswer)
	r.Post("/animation/complete", s.PostAnimationComplete)
	r.Get("/inventory", s.GetInventory)
	r.Get("/graph", s.GetGraph)
	r.Post("/exit", s.PostExit)
	r.Get("/events", s.SubscribeEvents)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.logger)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "derelict-http",
		"version": strings.TrimSpace(derelict.Version),
		"story":   s.engine.Graph().Title(),
	}, s.logger)
}

// GetScene handles the GET /scene request.
func (s *Server) GetScene(w http.ResponseWriter, r *http.Request) {
	s.play(w, r, "scene", func(ctx context.Context) (*domain.Render, error) {
		return s.session.Render(ctx)
	})
}

// PostStart handles the POST /start request. It discards the current game.
func (s *Server) PostStart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.session.State()
	render, err := s.session.Start(r.Context())
	if err != nil {
		s.fail(w, "start", err)
		return
	}
	s.respond(w, render, nil, s.session.State(), "")
	s.logger.Debug("session restarted", "previous", old.SessionID)
}

// PostChoose handles the POST /choose request.
func (s *Server) PostChoose(w http.ResponseWriter, r *http.Request) {
	var body chooseRequest
	if !s.decode(w, r, &body) {
		return
	}
	choice, ok := s.sanitize(w, body.Choice)
	if !ok {
		return
	}
	s.play(w, r, "choose", func(ctx context.Context) (*domain.Render, error) {
		return s.session.Choose(ctx, choice)
	})
}

// PostAnswer handles the POST /answer request.
func (s *Server) PostAnswer(w http.ResponseWriter, r *http.Request) {
	var body answerRequest
	if !s.decode(w, r, &body) {
		return
	}
	input, ok := s.sanitize(w, body.Input)
	if !ok {
		return
	}
	s.play(w, r, "answer", func(ctx context.Context) (*domain.Render, error) {
		return s.session.ResolveGuardedTransition(ctx, input)
	})
}

// PostAnimationComplete handles the POST /animation/complete request.
func (s *Server) PostAnimationComplete(w http.ResponseWriter, r *http.Request) {
	s.play(w, r, "animation", func(ctx context.Context) (*domain.Render, error) {
		return s.session.CompleteAnimation(ctx)
	})
}

// GetInventory handles the GET /inventory request.
func (s *Server) GetInventory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureStarted(r.Context()); err != nil {
		s.fail(w, "inventory", err)
		return
	}
	report := s.session.InventoryReport()
	writeJSON(w, http.StatusOK, map[string]any{
		"items":   report.Items,
		"empty":   report.Empty,
		"message": report.String(),
	}, s.logger)
}

// GetGraph handles the GET /graph request.
// With ?format=mermaid it returns a flowchart with the session overlay.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	g := s.engine.Graph()
	if r.URL.Query().Get("format") != "mermaid" {
		writeJSON(w, http.StatusOK, g.Story(), s.logger)
		return
	}

	s.mu.Lock()
	state := s.session.State()
	s.mu.Unlock()

	var overlay *graph.GraphOverlay
	if state.SessionID != "" {
		overlay = graph.OverlayFromState(state)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(g.Entry(), g.Scenes(), overlay))
}

// PostExit handles the POST /exit request. Clients confirm before calling it.
func (s *Server) PostExit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStarted(r.Context()); err != nil {
		s.fail(w, "exit", err)
		return
	}
	old := s.session.State()
	s.session.End()
	s.respond(w, nil, &old, s.session.State(), string(domain.StatusExited))
}

// play runs one session operation under the lock and reports the render and the diff.
func (s *Server) play(w http.ResponseWriter, r *http.Request, op string, fn func(context.Context) (*domain.Render, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureStarted(r.Context()); err != nil {
		s.fail(w, op, err)
		return
	}

	old := s.session.State()
	render, err := fn(r.Context())
	if err != nil {
		s.fail(w, op, err)
		return
	}
	s.respond(w, render, &old, s.session.State(), "")
}

func (s *Server) respond(w http.ResponseWriter, render *domain.Render, old *domain.State, next domain.State, status string) {
	diff := domain.Diff(old, &next)
	if diff != nil {
		s.logger.Debug("state diff", "session_id", next.SessionID, "diff", diff)
		if payload, err := json.Marshal(diff); err == nil {
			s.streams.Broadcast(string(payload))
		}
	}
	writeJSON(w, http.StatusOK, Response{Render: render, Diff: diff, Status: status}, s.logger)
}

func (s *Server) ensureStarted(ctx context.Context) error {
	if s.session.State().SessionID != "" {
		return nil
	}
	_, err := s.session.Start(ctx)
	return err
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("invalid request body", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return false
	}
	return true
}

func (s *Server) sanitize(w http.ResponseWriter, input string) (string, bool) {
	clean, err := runner.SanitizeInput(strings.TrimSpace(input), s.maxSize)
	if err != nil {
		s.logger.Warn("input rejected", "err", err, "size", len(input))
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid input: %v", err), s.logger)
		return "", false
	}
	return clean, true
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "op", op, "err", err)
	} else {
		s.logger.Debug("request rejected", "op", op, "err", err)
	}
	writeError(w, status, err.Error(), s.logger)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownChoice):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoPendingInput),
		errors.Is(err, domain.ErrNotAnimating),
		errors.Is(err, domain.ErrSessionEnded):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownScene):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, logger *slog.Logger) {
	writeJSON(w, status, map[string]string{"error": msg}, logger)
}
