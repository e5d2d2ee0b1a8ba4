package dsl

import "github.com/aretw0/derelict/pkg/domain"

// SceneBuilder provides a fluent API for configuring a scene.
type SceneBuilder struct {
	scene   domain.Scene
	builder *Builder
}

// Text sets the base narrative of the scene.
func (s *SceneBuilder) Text(text string) *SceneBuilder {
	s.scene.Text = text
	return s
}

// Media sets the media reference resolved by the host.
func (s *SceneBuilder) Media(ref string) *SceneBuilder {
	s.scene.Media = ref
	return s
}

// Inventory turns the scene into an inventory report.
func (s *SceneBuilder) Inventory() *SceneBuilder {
	s.scene.Kind = domain.SceneKindInventory
	return s
}

// Grant adds an entry effect granting item once.
// onGrant is appended on the granting visit, onHeld on later ones.
func (s *SceneBuilder) Grant(item, onGrant, onHeld string) *SceneBuilder {
	s.scene.Effect = &domain.Effect{Grant: item, OnGrant: onGrant, OnHeld: onHeld}
	return s
}

// Animate marks the scene as an animated exit leading to next.
func (s *SceneBuilder) Animate(media, next string) *SceneBuilder {
	s.scene.Animation = &domain.Animation{Media: media, Next: next}
	return s
}

// Go adds a plain choice to target.
func (s *SceneBuilder) Go(label, target string) *SceneBuilder {
	return s.Option("", label, target)
}

// Option adds a plain choice with an explicit id.
func (s *SceneBuilder) Option(id, label, target string) *SceneBuilder {
	s.scene.Choices = append(s.scene.Choices, domain.Choice{ID: id, Label: label, To: target})
	return s
}

// Exit adds a choice asking the host to end the session.
func (s *SceneBuilder) Exit(label string) *SceneBuilder {
	s.scene.Choices = append(s.scene.Choices, domain.Choice{Label: label, Exit: true})
	return s
}

// GuardedChoice adds a choice that asks for an answer before moving on.
func (s *SceneBuilder) GuardedChoice(id, label string) *GuardBuilder {
	g := &domain.Guard{Kind: domain.GuardText}
	s.scene.Choices = append(s.scene.Choices, domain.Choice{ID: id, Label: label, Guard: g})
	return &GuardBuilder{guard: g, scene: s}
}

// Guard arms a guard as soon as the scene is entered.
func (s *SceneBuilder) Guard() *GuardBuilder {
	if s.scene.Guard == nil {
		s.scene.Guard = &domain.Guard{Kind: domain.GuardText}
	}
	return &GuardBuilder{guard: s.scene.Guard, scene: s}
}

// Add starts the next scene, for chaining whole stories.
func (s *SceneBuilder) Add(id string) *SceneBuilder {
	return s.builder.Add(id)
}

// snapshot deep-copies the scene so later builder calls do not leak into built graphs.
func (s *SceneBuilder) snapshot() domain.Scene {
	out := s.scene
	if s.scene.Effect != nil {
		e := *s.scene.Effect
		out.Effect = &e
	}
	if s.scene.Animation != nil {
		a := *s.scene.Animation
		out.Animation = &a
	}
	if s.scene.Guard != nil {
		out.Guard = copyGuard(s.scene.Guard)
	}
	out.Choices = copyChoices(s.scene.Choices)
	return out
}

func copyChoices(in []domain.Choice) []domain.Choice {
	if in == nil {
		return nil
	}
	out := make([]domain.Choice, len(in))
	for i, c := range in {
		out[i] = c
		if c.Guard != nil {
			out[i].Guard = copyGuard(c.Guard)
		}
	}
	return out
}

func copyGuard(g *domain.Guard) *domain.Guard {
	out := *g
	out.Answers = append([]string(nil), g.Answers...)
	out.Choices = copyChoices(g.Choices)
	return &out
}
