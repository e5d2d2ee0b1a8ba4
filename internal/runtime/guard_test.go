package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/derelict/internal/runtime"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_Number(t *testing.T) {
	guard := domain.Guard{Kind: domain.GuardNumber, Answers: []string{"42"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{"  42\n", true},
		{"042", true},
		{"-42", false},
		{"+42", false},
		{"42.0", false},
		{"4 2", false},
		{"forty-two", false},
		{"", false},
		{"   ", false},
		{"٤٢", false},
		{"99999999999999999999999", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, runtime.Match(guard, tt.input))
		})
	}
}

func TestMatch_Text(t *testing.T) {
	guard := domain.Guard{Answers: []string{"echo"}}

	for _, input := range []string{"echo", "Echo", "  echo ", "ECHO", "\techo\n"} {
		assert.Truef(t, runtime.Match(guard, input), "input %q", input)
	}
	for _, input := range []string{"echoes", "ech o", "", "wind"} {
		assert.Falsef(t, runtime.Match(guard, input), "input %q", input)
	}
}

func TestMatch_TextLowercasesOnly(t *testing.T) {
	assert.True(t, runtime.Match(domain.Guard{Answers: []string{"écho"}}, "ÉCHO"))
	assert.False(t, runtime.Match(domain.Guard{Answers: []string{"straße"}}, "STRASSE"), "no full case folding")
}

func TestMatch_AcceptedAnswerSet(t *testing.T) {
	guard := domain.Guard{Kind: domain.GuardText, Answers: []string{"keyboard", "A Keyboard"}}

	assert.True(t, runtime.Match(guard, "KEYBOARD"))
	assert.True(t, runtime.Match(guard, "a keyboard"))
	assert.False(t, runtime.Match(guard, "the keyboard"))
}

func TestMatch_UnknownKind(t *testing.T) {
	assert.False(t, runtime.Match(domain.Guard{Kind: "regex", Answers: []string{".*"}}, ".*"))
}

func TestEngine_AlienChamber(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	state, render, err := engine.Enter(ctx, state, story.AlienChamber)
	require.NoError(t, err)
	require.True(t, render.AwaitingInput())
	assert.Equal(t, domain.GuardNumber, render.Input.Kind)
	assert.Contains(t, render.Text, "sum of 13 and 29")

	for _, wrong := range []string{"-42", "42.0", "forty-two", ""} {
		next, render, err := engine.Resolve(ctx, state, wrong)
		require.NoError(t, err, "mismatches are gameplay outcomes")
		assert.Equal(t, domain.OutcomeFailure, render.Outcome)
		assert.Equal(t, "The orb dims... That is not the correct answer!", render.Message)
		assert.Equal(t, story.AlienChamber, next.CurrentSceneID)
		assert.NotNil(t, next.Pending, "guard stays armed")
		state = next
	}

	state, render, err = engine.Resolve(ctx, state, "42")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, render.Outcome)
	assert.Equal(t, "The orb pulses brightly as a portal opens to another dimension!", render.Message)
	assert.Equal(t, story.PortalAdventure, state.CurrentSceneID)
	assert.Equal(t, story.PortalAdventure, render.SceneID)
	assert.Nil(t, state.Pending)
	assert.False(t, render.AwaitingInput())
}

func TestEngine_MysteriousCorridor(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	state, render, err := engine.Enter(ctx, state, story.MysteriousCorridor)
	require.NoError(t, err)
	assert.False(t, render.AwaitingInput())
	assert.Equal(t, domain.ChoiceKindGuarded, render.Choices[0].Kind)

	state, render, err = engine.Choose(ctx, state, "solve-riddle")
	require.NoError(t, err)
	require.True(t, render.AwaitingInput())
	assert.Equal(t, "Enter your answer for the riddle:", render.Text)
	assert.Equal(t, domain.GuardText, render.Input.Kind)
	require.Len(t, render.Choices, 1)
	assert.Equal(t, "give-up", render.Choices[0].ID)

	state, render, err = engine.Resolve(ctx, state, "wind")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailure, render.Outcome)
	assert.Equal(t, "That doesn't seem to be the right answer. Try again!", render.Message)
	assert.Equal(t, story.MysteriousCorridor, state.CurrentSceneID)
	assert.True(t, render.AwaitingInput())

	state, render, err = engine.Resolve(ctx, state, "  Echo ")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, render.Outcome)
	assert.Equal(t, story.AlienChamber, state.CurrentSceneID)
	assert.Equal(t, "The symbols glow and the corridor reveals a hidden door!", render.Message)
	assert.True(t, render.AwaitingInput(), "the alien chamber arms its own guard")
	assert.Equal(t, domain.GuardNumber, render.Input.Kind)
}

func TestEngine_EscapeChoiceDisarmsGuard(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	state, _, err = engine.Enter(ctx, state, story.MysteriousCorridor)
	require.NoError(t, err)
	state, _, err = engine.Choose(ctx, state, "solve-riddle")
	require.NoError(t, err)

	_, _, err = engine.Choose(ctx, state, "ignore")
	assert.ErrorIs(t, err, domain.ErrUnknownChoice, "only escape choices are offered while answering")

	state, render, err := engine.Choose(ctx, state, "Give up and return")
	require.NoError(t, err)
	assert.Equal(t, story.ExploreShip, state.CurrentSceneID)
	assert.Nil(t, state.Pending)
	assert.False(t, render.AwaitingInput())

	_, _, err = engine.Resolve(ctx, state, "echo")
	assert.ErrorIs(t, err, domain.ErrNoPendingInput)
}

func TestEngine_ResearchLab(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	state, render, err := engine.Enter(ctx, state, story.ResearchLab)
	require.NoError(t, err)
	require.True(t, render.AwaitingInput())
	assert.Contains(t, render.Text, "I have keys but no locks")
	require.Len(t, render.Choices, 1)
	assert.Equal(t, "Ignore and return", render.Choices[0].Label)

	state, render, err = engine.Resolve(ctx, state, "piano")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailure, render.Outcome)
	assert.Contains(t, render.Text, "I have keys but no locks", "scene guards keep the scene narrative")

	state, render, err = engine.Resolve(ctx, state, "A Keyboard")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, render.Outcome)
	assert.Equal(t, story.LabEquipment, state.CurrentSceneID)
	assert.Equal(t, domain.Inventory{"Mysterious Gadget"}, state.Inventory)
}

func TestEngine_ResolveWithoutGuard(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	_, _, err = engine.Resolve(ctx, state, "42")
	assert.ErrorIs(t, err, domain.ErrNoPendingInput)
}

func TestEngine_DefaultFailureMessage(t *testing.T) {
	ctx := context.Background()
	g := mustGraph(t, "door",
		domain.Scene{ID: "door", Guard: &domain.Guard{Answers: []string{"open"}, Success: "hall"}},
		domain.Scene{ID: "hall", Choices: []domain.Choice{{Label: "Leave", Exit: true}}},
	)
	engine := runtime.NewEngine(g)

	state, _, err := engine.Start(ctx)
	require.NoError(t, err)
	_, render, err := engine.Resolve(ctx, state, "close")
	require.NoError(t, err)
	assert.Equal(t, runtime.DefaultFailureMessage, render.Message)
}
