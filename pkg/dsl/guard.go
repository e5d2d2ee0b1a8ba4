package dsl

import "github.com/aretw0/derelict/pkg/domain"

// GuardBuilder configures a guard. Call Done to return to the scene.
type GuardBuilder struct {
	guard *domain.Guard
	scene *SceneBuilder
}

// Number makes the guard accept decimal digits only.
func (g *GuardBuilder) Number() *GuardBuilder {
	g.guard.Kind = domain.GuardNumber
	return g
}

// Prompt sets the text shown while waiting for the answer.
func (g *GuardBuilder) Prompt(text string) *GuardBuilder {
	g.guard.Prompt = text
	return g
}

// Media overrides the scene media while the guard is pending.
func (g *GuardBuilder) Media(ref string) *GuardBuilder {
	g.guard.Media = ref
	return g
}

// Answers adds accepted answers.
func (g *GuardBuilder) Answers(answers ...string) *GuardBuilder {
	g.guard.Answers = append(g.guard.Answers, answers...)
	return g
}

// Success sets the scene entered on a correct answer.
func (g *GuardBuilder) Success(target string) *GuardBuilder {
	g.guard.Success = target
	return g
}

// OnSuccess sets the message reported with a correct answer.
func (g *GuardBuilder) OnSuccess(msg string) *GuardBuilder {
	g.guard.SuccessMessage = msg
	return g
}

// OnFailure sets the message reported with a wrong answer.
func (g *GuardBuilder) OnFailure(msg string) *GuardBuilder {
	g.guard.FailureMessage = msg
	return g
}

// Escape adds a plain choice offered while the guard is pending.
func (g *GuardBuilder) Escape(label, target string) *GuardBuilder {
	g.guard.Choices = append(g.guard.Choices, domain.Choice{Label: label, To: target})
	return g
}

// Done returns to the owning scene.
func (g *GuardBuilder) Done() *SceneBuilder {
	return g.scene
}
