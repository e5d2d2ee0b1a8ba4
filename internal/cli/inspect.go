package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/derelict"
	"github.com/aretw0/derelict/internal/presentation/graph"
)

// Report summarizes a validated story.
type Report struct {
	Title       string
	Entry       string
	Scenes      int
	Unreachable []string
}

func (r Report) String() string {
	var sb strings.Builder
	title := r.Title
	if title == "" {
		title = "untitled story"
	}
	fmt.Fprintf(&sb, "%s: %d scenes, entry %q\n", title, r.Scenes, r.Entry)
	for _, id := range r.Unreachable {
		fmt.Fprintf(&sb, "warning: scene %q is unreachable from the entry scene\n", id)
	}
	return sb.String()
}

// Validate loads the story at path (the built-in story when empty) and reports on it.
// Structural problems are returned as the engine's error.
func Validate(path string) (Report, error) {
	engine, err := NewEngine(EngineOptions{Story: path})
	if err != nil {
		return Report{}, err
	}
	g := engine.Graph()
	return Report{
		Title:       g.Title(),
		Entry:       g.Entry(),
		Scenes:      len(g.IDs()),
		Unreachable: g.Unreachable(),
	}, nil
}

// Mermaid renders the story graph. When script is not empty it is played
// from the entry scene and the scenes it visits are highlighted.
func Mermaid(ctx context.Context, path string, script []string) (string, error) {
	engine, err := NewEngine(EngineOptions{Story: path})
	if err != nil {
		return "", err
	}
	g := engine.Graph()

	var overlay *graph.GraphOverlay
	if len(script) > 0 {
		sess, err := PlayScript(ctx, engine, script)
		if err != nil {
			return "", err
		}
		overlay = graph.OverlayFromState(sess.State())
	}
	return graph.GenerateMermaid(engine.InitialScene(), g.Scenes(), overlay), nil
}

// PlayScript starts a session and feeds it the steps in order.
// A step answers the pending guard when one is armed and picks a choice otherwise.
// A leading "/" or the name of an offered choice always picks it.
// Animations met along the way are completed at once.
func PlayScript(ctx context.Context, engine *derelict.Engine, script []string) (*derelict.Session, error) {
	sess := engine.NewSession()
	render, err := sess.Start(ctx)
	if err != nil {
		return nil, err
	}
	for i, step := range script {
		for render.Animation != nil {
			if render, err = sess.CompleteAnimation(ctx); err != nil {
				return nil, err
			}
		}
		step = strings.TrimSpace(step)
		if key, ok := strings.CutPrefix(step, "/"); ok {
			render, err = sess.Choose(ctx, key)
		} else if key, ok := render.ChoiceFor(step); ok && render.AwaitingInput() {
			render, err = sess.Choose(ctx, key)
		} else if render.AwaitingInput() {
			render, err = sess.ResolveGuardedTransition(ctx, step)
		} else {
			render, err = sess.Choose(ctx, step)
		}
		if err != nil {
			return nil, fmt.Errorf("step %d (%q): %w", i+1, step, err)
		}
		if render.Exit {
			break
		}
	}
	return sess, nil
}
