package derelict

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/derelict/internal/logging"
	"github.com/aretw0/derelict/internal/runtime"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/graph"
	"github.com/aretw0/derelict/pkg/ports"
	"github.com/aretw0/derelict/pkg/story"
)

// Engine is the high-level entry point for the Derelict library.
// It wraps the internal runtime and hands out play sessions.
type Engine struct {
	runtime     *runtime.Engine
	graph       *graph.Graph
	loader      ports.GraphLoader
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom GraphLoader instead of the built-in story.
func WithLoader(l ports.GraphLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithGraph uses an already validated graph, skipping the loader.
func WithGraph(g *graph.Graph) Option {
	return func(e *Engine) {
		e.graph = g
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEntryScene configures the initial scene (default: the story's entry).
func WithEntryScene(sceneID string) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithEntryScene(sceneID))
	}
}

// WithSessionIDGenerator replaces the uuid generator used for new sessions.
func WithSessionIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithSessionIDGenerator(fn))
	}
}

// New initializes a Derelict Engine.
// Without options it plays the built-in "Sci-Fi Adventure".
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if eng.graph == nil {
		if eng.loader == nil {
			eng.loader = story.Loader()
		}
		g, err := graph.Load(eng.loader)
		if err != nil {
			return nil, fmt.Errorf("failed to build scene graph: %w", err)
		}
		eng.graph = g
	}

	if title := eng.graph.Title(); title != "" {
		eng.logger = eng.logger.With("story", title)
	}
	if unreachable := eng.graph.Unreachable(); len(unreachable) > 0 {
		eng.logger.Warn("scenes unreachable from entry", "scenes", unreachable)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}
	runtimeOpts = append(runtimeOpts, eng.runtimeOpts...)
	eng.runtime = runtime.NewEngine(eng.graph, runtimeOpts...)

	if _, err := eng.graph.Scene(eng.runtime.EntryScene()); err != nil {
		return nil, fmt.Errorf("invalid entry scene: %w", err)
	}
	return eng, nil
}

// Graph returns the validated scene graph, for visualization or introspection tools.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// InitialScene returns the id of the scene new sessions start on.
func (e *Engine) InitialScene() string {
	return e.runtime.EntryScene()
}

// NewSession creates a session bound to this engine. Call Start before playing.
func (e *Engine) NewSession() *Session {
	return &Session{engine: e}
}
