package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/derelict/internal/logging"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/graph"
	"github.com/google/uuid"
)

// Engine is the stateless transition evaluator.
// Every operation takes a state, never mutates it and returns the next one.
type Engine struct {
	graph   *graph.Graph
	entry   string
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	newID   func() string
	nowFunc func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEntryScene overrides the graph's entry scene.
func WithEntryScene(sceneID string) EngineOption {
	return func(e *Engine) {
		if sceneID != "" {
			e.entry = sceneID
		}
	}
}

// WithSessionIDGenerator replaces the uuid generator used by Start.
func WithSessionIDGenerator(fn func() string) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewEngine creates an engine over a validated graph.
func NewEngine(g *graph.Graph, opts ...EngineOption) *Engine {
	e := &Engine{
		graph:   g,
		entry:   g.Entry(),
		logger:  logging.NewNop(),
		newID:   uuid.NewString,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph returns the scene graph the engine evaluates.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// EntryScene returns the scene a new session starts on.
func (e *Engine) EntryScene() string {
	return e.entry
}

// Start creates a new session state and enters the entry scene.
func (e *Engine) Start(ctx context.Context) (*domain.State, *domain.Render, error) {
	return e.StartWithID(ctx, e.newID())
}

// StartWithID is like Start with a caller-provided session id.
func (e *Engine) StartWithID(ctx context.Context, sessionID string) (*domain.State, *domain.Render, error) {
	if _, err := e.graph.Scene(e.entry); err != nil {
		return nil, nil, fmt.Errorf("failed to start session: %w", err)
	}
	state := domain.NewState(sessionID, e.entry)
	e.logger.Debug("session started", "session_id", sessionID, "entry", e.entry)
	return e.Enter(ctx, state, e.entry)
}

func (e *Engine) checkActive(state *domain.State) error {
	if state == nil {
		return fmt.Errorf("nil state")
	}
	if state.Status == domain.StatusExited {
		return domain.ErrSessionEnded
	}
	return nil
}

// currentScene resolves the scene the state points at.
// A miss means the state and graph disagree, which is fatal.
func (e *Engine) currentScene(state *domain.State) (domain.Scene, error) {
	scene, err := e.graph.Scene(state.CurrentSceneID)
	if err != nil {
		return domain.Scene{}, fmt.Errorf("state points outside the graph: %w", err)
	}
	return scene, nil
}
