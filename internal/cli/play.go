package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/derelict/internal/logging"
	"github.com/aretw0/derelict/internal/presentation/tui"
	"github.com/aretw0/derelict/pkg/runner"
)

// Mode is the presentation a play session uses.
type Mode int

const (
	// ModePlain prints narrative as is and reads numbered choices line by line.
	ModePlain Mode = iota
	// ModeRich is ModePlain with a banner and markdown rendering.
	ModeRich
	// ModeTUI is the full-screen interface.
	ModeTUI
	// ModeJSON speaks NDJSON on stdin/stdout.
	ModeJSON
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeRich:
		return "rich"
	case ModeTUI:
		return "tui"
	case ModeJSON:
		return "json"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

const narrativeWrap = 72

// PlayOptions contains all the configuration for the play command.
type PlayOptions struct {
	Story string
	Debug bool

	JSON  bool
	TUI   bool
	Plain bool

	MaxInputSize      int
	AnimationInterval time.Duration

	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger
}

// ResolveMode picks the presentation from the flags.
// Without flags a terminal gets the rich mode and anything else gets plain text.
func ResolveMode(opts PlayOptions, terminal bool) (Mode, error) {
	set := 0
	for _, on := range []bool{opts.JSON, opts.TUI, opts.Plain} {
		if on {
			set++
		}
	}
	if set > 1 {
		return 0, errors.New("--json, --tui and --plain are mutually exclusive")
	}

	switch {
	case opts.JSON:
		return ModeJSON, nil
	case opts.TUI:
		if !terminal {
			return 0, errors.New("--tui requires an interactive terminal")
		}
		return ModeTUI, nil
	case opts.Plain, !terminal:
		return ModePlain, nil
	}
	return ModeRich, nil
}

// Play runs one game until the player exits, input ends or ctx is cancelled.
func Play(ctx context.Context, opts PlayOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	mode, err := ResolveMode(opts, IsTerminal(opts.Out))
	if err != nil {
		return err
	}

	engine, err := NewEngine(EngineOptions{Story: opts.Story, Debug: opts.Debug, Logger: logger})
	if err != nil {
		return err
	}
	sess := engine.NewSession()
	title := engine.Graph().Title()
	logger.Debug("starting game", "mode", mode.String(), "entry", engine.InitialScene())

	if mode == ModeTUI {
		tuiOpts := []tui.Option{tui.WithTitle(title)}
		if opts.AnimationInterval > 0 {
			tuiOpts = append(tuiOpts, tui.WithAnimationInterval(opts.AnimationInterval))
		}
		if renderer, err := tui.NewRenderer(narrativeWrap); err == nil {
			tuiOpts = append(tuiOpts, tui.WithRenderer(renderer))
		} else {
			logger.Warn("markdown renderer unavailable", "err", err)
		}
		if err := tui.Run(ctx, sess, tuiOpts...); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithMaxInputSize(opts.MaxInputSize),
	}

	switch mode {
	case ModeJSON:
		handler := runner.NewJSONHandler(opts.In, opts.Out)
		handler.MaxInputSize = opts.MaxInputSize
		runnerOpts = append(runnerOpts, runner.WithInputHandler(handler), runner.WithHeadless(true))
	case ModeRich:
		tui.PrintBanner(opts.Out, title)
		if renderer, err := tui.NewRenderer(narrativeWrap); err == nil {
			runnerOpts = append(runnerOpts, runner.WithRenderer(renderer))
		} else {
			logger.Warn("markdown renderer unavailable", "err", err)
		}
		fallthrough
	default:
		runnerOpts = append(runnerOpts, runner.WithIO(opts.In, opts.Out))
		if opts.AnimationInterval > 0 {
			runnerOpts = append(runnerOpts, runner.WithAnimationInterval(opts.AnimationInterval))
		}
	}

	err = runner.NewRunner(runnerOpts...).Run(ctx, sess)
	state := sess.State()
	if errors.Is(err, runner.ErrInterrupted) {
		logger.Info("game interrupted", "session_id", state.SessionID, "scene", state.CurrentSceneID)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("game finished", "session_id", state.SessionID, "scene", state.CurrentSceneID, "ended", sess.Ended())
	return nil
}
