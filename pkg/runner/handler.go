package runner

import (
	"context"

	"github.com/aretw0/derelict/pkg/domain"
)

// IOHandler defines the strategy for interacting with the player.
// This allows switching between Text (CLI) and JSON (structured) modes.
type IOHandler interface {
	// Output presents a scene render.
	Output(ctx context.Context, render *domain.Render) error

	// Input reads one line from the player.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message (inventory, errors, confirmations).
	// This is distinct from scene content.
	SystemOutput(ctx context.Context, msg string) error

	// Animate plays an animated exit and returns once it finished.
	Animate(ctx context.Context, anim domain.Animation) error
}

// ContentRenderer transforms narrative text before it is written.
// This allows markdown to ANSI rendering without coupling the runner to a terminal library.
type ContentRenderer func(string) (string, error)
