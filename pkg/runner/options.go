package runner

import (
	"io"
	"log/slog"
	"time"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithIO sets the reader and writer of the default text handler.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *Runner) {
		r.Input = in
		r.Output = out
	}
}

// WithHeadless skips exit confirmation. Used with the JSON handler.
func WithHeadless(headless bool) Option {
	return func(r *Runner) {
		r.Headless = headless
	}
}

// WithExitPolicy overrides how exit requests are confirmed.
func WithExitPolicy(policy ExitPolicy) Option {
	return func(r *Runner) {
		r.ExitPolicy = policy
	}
}

// WithRenderer configures the content renderer of the default text handler.
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithMaxInputSize bounds a single line of input for the default text handler.
func WithMaxInputSize(size int) Option {
	return func(r *Runner) {
		r.MaxInputSize = size
	}
}

// WithAnimationInterval sets the frame delay of the default text handler.
// Zero skips animations.
func WithAnimationInterval(d time.Duration) Option {
	return func(r *Runner) {
		r.AnimationInterval = d
		r.animationSet = true
	}
}
