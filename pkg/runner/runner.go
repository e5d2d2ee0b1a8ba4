package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/derelict"
	"github.com/aretw0/derelict/internal/logging"
	"github.com/aretw0/derelict/pkg/domain"
)

// ErrInterrupted is returned when a signal stops the runner while it waits for input.
var ErrInterrupted = errors.New("interrupted")

// GoodbyeMessage is shown once the player confirmed the exit.
const GoodbyeMessage = "Thanks for playing. Goodbye!"

// Runner handles the play loop of a session using the provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Input/Output is used.
	Handler IOHandler

	// ExitPolicy confirms exit requests.
	// If nil, headless runners auto-confirm and others ask the player.
	ExitPolicy ExitPolicy

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Settings of the default TextHandler.
	Input             io.Reader
	Output            io.Writer
	Headless          bool
	Renderer          ContentRenderer
	MaxInputSize      int
	AnimationInterval time.Duration
	animationSet      bool
}

// NewRunner creates a Runner reading Stdin and writing Stdout by default.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run plays the session until the player exits or input ends.
// A session that was never started (or already ended) is started first.
// End of input returns nil; a signal while waiting for input returns ErrInterrupted.
func (r *Runner) Run(ctx context.Context, sess *derelict.Session) error {
	handler := r.resolveHandler()
	confirm := r.resolveExitPolicy(handler)

	signals := NewSignalManager(ctx)
	defer signals.Stop()

	render, err := r.resume(ctx, sess)
	if err != nil {
		return err
	}

	show := true
	for {
		// An exit request keeps the scene on screen; only the confirmation is shown.
		if show && !render.Exit {
			if err := handler.Output(ctx, render); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
		show = true

		if render.Exit {
			done, err := r.confirmExit(signals, sess, handler, confirm)
			if err != nil || done {
				return err
			}
			if render, err = sess.Render(ctx); err != nil {
				return err
			}
			continue
		}

		if render.Animation != nil {
			if err := handler.Animate(signals.Context(), *render.Animation); err != nil {
				if ctx.Err() == nil && signals.Context().Err() != nil {
					return ErrInterrupted
				}
				return fmt.Errorf("animation error: %w", err)
			}
			if render, err = sess.CompleteAnimation(ctx); err != nil {
				return err
			}
			continue
		}

		input, err := r.readInput(signals, handler)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		next, err := r.step(ctx, sess, handler, render, input)
		switch {
		case errors.Is(err, domain.ErrUnknownChoice):
			r.Logger.Debug("unknown choice", "input", input, "err", err)
			if err := handler.SystemOutput(ctx, fmt.Sprintf("There is no option %q here. Pick one of the listed options.", input)); err != nil {
				return err
			}
			show = false
		case err != nil:
			return err
		case next == nil:
			show = false
		default:
			render = next
		}
	}
}

func (r *Runner) resume(ctx context.Context, sess *derelict.Session) (*domain.Render, error) {
	if sess.State().SessionID == "" || sess.Ended() {
		return sess.Start(ctx)
	}
	return sess.Render(ctx)
}

// step applies one line of input. A nil render means nothing changed on screen.
func (r *Runner) step(ctx context.Context, sess *derelict.Session, handler IOHandler, current *domain.Render, input string) (*domain.Render, error) {
	if input == "" {
		return nil, nil
	}

	if cmd, ok := strings.CutPrefix(input, "/"); ok {
		switch strings.ToLower(strings.TrimSpace(cmd)) {
		case "quit", "exit", "q":
			next := *current
			next.Exit = true
			next.Message = ""
			next.Outcome = domain.OutcomeNone
			return &next, nil
		case "inventory", "inv", "i":
			return nil, handler.SystemOutput(ctx, sess.InventoryReport().String())
		case "look", "l":
			return sess.Render(ctx)
		default:
			return sess.Choose(ctx, strings.TrimSpace(cmd))
		}
	}

	if current.AwaitingInput() {
		if key, ok := current.ChoiceFor(input); ok {
			return sess.Choose(ctx, key)
		}
		return sess.ResolveGuardedTransition(ctx, input)
	}
	return sess.Choose(ctx, input)
}

func (r *Runner) readInput(signals *SignalManager, handler IOHandler) (string, error) {
	ctx := signals.Context()
	val, err := handler.Input(ctx)
	if err == nil {
		return val, nil
	}

	signals.CheckRace()
	if ctx.Err() != nil {
		r.Logger.Debug("runner input: context cancelled", "err", ctx.Err())
		return "", ErrInterrupted
	}
	if err == io.EOF {
		return "", io.EOF
	}
	return "", fmt.Errorf("input error: %w", err)
}

func (r *Runner) confirmExit(signals *SignalManager, sess *derelict.Session, handler IOHandler, confirm ExitPolicy) (bool, error) {
	ok, err := confirm(signals.Context())
	if err != nil {
		if err == io.EOF {
			ok = true
		} else if signals.Context().Err() != nil {
			return false, ErrInterrupted
		} else {
			return false, fmt.Errorf("exit confirmation: %w", err)
		}
	}
	if !ok {
		return false, nil
	}
	sess.End()
	r.Logger.Debug("session ended", "session_id", sess.State().SessionID)
	return true, handler.SystemOutput(context.Background(), GoodbyeMessage)
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	opts := []TextHandlerOption{
		WithTextHandlerRenderer(r.Renderer),
		WithTextHandlerMaxInputSize(r.MaxInputSize),
	}
	if r.animationSet {
		opts = append(opts, WithTextHandlerAnimationInterval(r.AnimationInterval))
	}
	// Memoize to prevent creating new pumps on subsequent Run() calls.
	r.Handler = NewTextHandler(r.Input, r.Output, opts...)
	return r.Handler
}

// resolveExitPolicy returns the configured or default policy.
func (r *Runner) resolveExitPolicy(h IOHandler) ExitPolicy {
	if r.ExitPolicy != nil {
		return r.ExitPolicy
	}
	if r.Headless {
		return AutoConfirm()
	}
	return ConfirmExit(h)
}
