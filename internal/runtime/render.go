package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/derelict/pkg/domain"
)

// Render presents the current scene without changing the state.
func (e *Engine) Render(ctx context.Context, state *domain.State) (*domain.Render, error) {
	if state == nil {
		return nil, fmt.Errorf("nil state")
	}
	scene, err := e.currentScene(state)
	if err != nil {
		return nil, err
	}
	return e.render(scene, state), nil
}

// InventoryReport returns an ordered snapshot of the held items.
func (e *Engine) InventoryReport(state *domain.State) domain.InventoryReport {
	if state == nil {
		return domain.Inventory{}.Report()
	}
	return state.Inventory.Report()
}

func (e *Engine) render(scene domain.Scene, state *domain.State) *domain.Render {
	r := &domain.Render{
		SceneID:  scene.ID,
		Text:     narrative(scene, state),
		Media:    scene.Media,
		Terminal: scene.IsTerminal(),
	}

	if scene.Animation != nil {
		anim := *scene.Animation
		r.Animation = &anim
	}

	if p := state.Pending; p != nil {
		r.Input = &domain.InputRequest{Prompt: p.Guard.Prompt, Kind: p.Guard.EffectiveKind()}
		// A guard armed by a choice takes over the screen; a scene guard
		// only adds an input field under the scene narrative.
		if p.ChoiceID != "" && p.Guard.Prompt != "" {
			r.Text = p.Guard.Prompt
		}
		if p.Guard.Media != "" {
			r.Media = p.Guard.Media
		}
	}

	for _, c := range e.offered(scene, state) {
		r.Choices = append(r.Choices, c.View())
	}
	if r.Choices == nil {
		r.Choices = []domain.ChoiceView{}
	}
	return r
}

func narrative(scene domain.Scene, state *domain.State) string {
	if scene.EffectiveKind() == domain.SceneKindInventory {
		return state.Inventory.Report().String()
	}

	text := scene.Text
	if scene.Effect == nil {
		return text
	}
	suffix := scene.Effect.OnHeld
	if state.Granted {
		suffix = scene.Effect.OnGrant
	}
	if suffix == "" {
		return text
	}
	if text == "" {
		return suffix
	}
	return strings.TrimRight(text, "\n") + "\n" + suffix
}
