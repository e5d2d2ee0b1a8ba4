package runtime

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/derelict/pkg/domain"
)

// Choose resolves key against the choices currently on offer.
// The key may be a choice id, a label (case-insensitive) or a 1-based index.
//
// Plain choices enter their target. Guarded choices arm the guard and return a
// render asking for input. Exit choices leave the state untouched and flag the
// render so the host can confirm.
func (e *Engine) Choose(ctx context.Context, state *domain.State, key string) (*domain.State, *domain.Render, error) {
	if err := e.checkActive(state); err != nil {
		return nil, nil, err
	}
	scene, err := e.currentScene(state)
	if err != nil {
		return nil, nil, err
	}

	choice, ok := matchChoice(e.offered(scene, state), key)
	if !ok {
		return nil, nil, &domain.UnknownChoiceError{SceneID: scene.ID, Key: key}
	}

	switch choice.Kind() {
	case domain.ChoiceKindPlain:
		return e.Enter(ctx, state, choice.To)

	case domain.ChoiceKindGuarded:
		armedBy := choice.ID
		if armedBy == "" {
			armedBy = choice.Label
		}
		next := state.Clone()
		next.Pending = &domain.PendingInput{
			OriginSceneID: scene.ID,
			ChoiceID:      armedBy,
			Guard:         *choice.Guard,
		}
		e.logger.Debug("guard armed", "session_id", next.SessionID, "scene", scene.ID, "choice", armedBy)
		return next, e.render(scene, next), nil

	case domain.ChoiceKindExit:
		next := state.Clone()
		render := e.render(scene, next)
		render.Exit = true
		return next, render, nil
	}

	return nil, nil, fmt.Errorf("scene %q: choice %q has no valid target", scene.ID, choice.Label)
}

// Choices returns the choices the player can pick right now.
func (e *Engine) Choices(state *domain.State) ([]domain.Choice, error) {
	scene, err := e.currentScene(state)
	if err != nil {
		return nil, err
	}
	return e.offered(scene, state), nil
}

// offered lists the selectable choices. While a guard is pending its escape
// choices replace the scene's, unless the guard declares none.
func (e *Engine) offered(scene domain.Scene, state *domain.State) []domain.Choice {
	if state.Pending != nil && len(state.Pending.Guard.Choices) > 0 {
		return state.Pending.Guard.Choices
	}
	return scene.Choices
}

func matchChoice(choices []domain.Choice, key string) (domain.Choice, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Choice{}, false
	}
	for _, c := range choices {
		if c.ID != "" && c.ID == key {
			return c, true
		}
	}
	for _, c := range choices {
		if strings.EqualFold(strings.TrimSpace(c.Label), key) {
			return c, true
		}
	}
	if idx, err := strconv.Atoi(key); err == nil && idx >= 1 && idx <= len(choices) {
		return choices[idx-1], true
	}
	return domain.Choice{}, false
}
