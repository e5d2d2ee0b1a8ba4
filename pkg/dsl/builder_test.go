package dsl

import (
	"context"
	"testing"

	"github.com/aretw0/derelict/internal/runtime"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riddleStory() *Builder {
	b := New().Title("Riddle")

	b.Add("corridor").
		Text("A riddle is carved into the wall.").
		Media("puzzle.png").
		GuardedChoice("solve-riddle", "Solve the riddle").
		Prompt("Enter your answer for the riddle:").
		Answers("echo").
		Success("chamber").
		OnSuccess("The wall slides open!").
		OnFailure("Try again!").
		Escape("Give up and return", "corridor").
		Done().
		Go("Check inventory", "bag").
		Exit("Leave")

	b.Add("chamber").
		Text("An orb glows on a pedestal.").
		Grant("Orb", "You take the orb.", "Only dust remains.").
		Guard().
		Number().
		Prompt("13 + 29?").
		Answers("42").
		Success("pod").
		Done().
		Go("Back", "corridor")

	b.Add("pod").
		Text("Launching...").
		Animate("pod.png", "space")

	b.Add("space").Text("Stars.").Exit("The End")
	b.Add("bag").Inventory().Go("Back", "corridor")
	return b
}

func TestBuilder_Build(t *testing.T) {
	g, err := riddleStory().Build()
	require.NoError(t, err)

	assert.Equal(t, "corridor", g.Entry())
	assert.Equal(t, "Riddle", g.Title())
	assert.Equal(t, []string{"corridor", "chamber", "pod", "space", "bag"}, g.IDs())
	assert.Empty(t, g.Unreachable())

	corridor, err := g.Scene("corridor")
	require.NoError(t, err)
	require.Len(t, corridor.Choices, 3)
	assert.Equal(t, domain.ChoiceKindGuarded, corridor.Choices[0].Kind())
	assert.Equal(t, []string{"echo"}, corridor.Choices[0].Guard.Answers)
	assert.Equal(t, domain.ChoiceKindExit, corridor.Choices[2].Kind())

	chamber, err := g.Scene("chamber")
	require.NoError(t, err)
	assert.Equal(t, domain.GuardNumber, chamber.Guard.Kind)
	assert.Equal(t, "Orb", chamber.Effect.Grant)

	bag, err := g.Scene("bag")
	require.NoError(t, err)
	assert.Equal(t, domain.SceneKindInventory, bag.EffectiveKind())
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	first := b.Add("a").Text("one")
	again := b.Add("a")
	assert.Same(t, first, again)
	assert.Len(t, b.Story().Scenes, 1)
}

func TestBuilder_EntryOverride(t *testing.T) {
	b := riddleStory().Entry("chamber")
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "chamber", g.Entry())
}

func TestBuilder_ValidationErrors(t *testing.T) {
	b := New()
	b.Add("a").Go("Nowhere", "b").Guard().Success("a")

	_, err := b.Build()
	var verr *graph.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 2)
}

func TestBuilder_SnapshotIsDetached(t *testing.T) {
	b := riddleStory()
	g, err := b.Build()
	require.NoError(t, err)

	b.Add("corridor").Text("changed")
	b.Add("chamber").Guard().Answers("43")

	corridor, _ := g.Scene("corridor")
	assert.Equal(t, "A riddle is carved into the wall.", corridor.Text)
	chamber, _ := g.Scene("chamber")
	assert.Equal(t, []string{"42"}, chamber.Guard.Answers)
}

func TestBuilder_PlaysThroughRuntime(t *testing.T) {
	ctx := context.Background()
	g, err := riddleStory().Build()
	require.NoError(t, err)
	engine := runtime.NewEngine(g)

	state, _, err := engine.Start(ctx)
	require.NoError(t, err)
	state, _, err = engine.Choose(ctx, state, "solve-riddle")
	require.NoError(t, err)
	state, render, err := engine.Resolve(ctx, state, "ECHO")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, render.Outcome)
	assert.Equal(t, "The wall slides open!", render.Message)
	assert.Equal(t, "An orb glows on a pedestal.\nYou take the orb.", render.Text)

	state, _, err = engine.Resolve(ctx, state, "42")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAnimating, state.Status)

	state, render, err = engine.CompleteAnimation(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "space", state.CurrentSceneID)
	assert.True(t, render.Terminal)
}
