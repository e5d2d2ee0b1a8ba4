package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/derelict"
	"github.com/aretw0/derelict/internal/logging"
	"github.com/aretw0/derelict/pkg/adapters/file"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/observability"
	"github.com/aretw0/derelict/pkg/ports"
	"github.com/aretw0/derelict/pkg/story"
)

// EngineOptions selects the story and instrumentation of an engine.
type EngineOptions struct {
	// Story is a YAML story document. Empty plays the built-in story.
	Story  string
	Debug  bool
	Logger *slog.Logger
	// Hooks are chained after the debug hooks.
	Hooks []domain.LifecycleHooks
}

// NewEngine initializes a Derelict engine with standard CLI conventions.
func NewEngine(opts EngineOptions) (*derelict.Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	hooks := opts.Hooks
	if opts.Debug {
		hooks = append([]domain.LifecycleHooks{observability.LoggingHooks(logger)}, hooks...)
	}

	engine, err := derelict.New(
		derelict.WithLoader(LoaderFor(opts.Story)),
		derelict.WithLogger(logger),
		derelict.WithLifecycleHooks(observability.Chain(hooks...)),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing derelict: %w", err)
	}
	return engine, nil
}

// LoaderFor returns the loader for a story path, or the built-in story when path is empty.
func LoaderFor(path string) ports.GraphLoader {
	if path == "" {
		return story.Loader()
	}
	return file.NewFromPath(path)
}
