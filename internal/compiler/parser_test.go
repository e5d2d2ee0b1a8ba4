package compiler

import (
	"testing"

	"github.com/aretw0/derelict/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	doc := []byte(`
entry: corridor
scenes:
  - id: corridor
    media: puzzle.png
    text: Symbols on the walls.
    choices:
      - id: solve
        label: Solve the riddle
        guard:
          prompt: Your answer?
          answers: [echo]
          success: chamber
          choices:
            - label: Give up
              to: corridor
  - id: chamber
    effect:
      grant: Orb
      on_grant: You take the orb.
    animation:
      next: corridor
`)

	story, err := NewParser().Parse(doc)
	require.NoError(t, err)
	require.Len(t, story.Scenes, 2)

	corridor := story.Scenes[0]
	assert.Equal(t, "puzzle.png", corridor.Media)
	require.Len(t, corridor.Choices, 1)
	solve := corridor.Choices[0]
	assert.Equal(t, domain.ChoiceKindGuarded, solve.Kind())
	assert.Equal(t, domain.GuardText, solve.Guard.EffectiveKind())
	assert.Equal(t, "chamber", solve.Guard.Success)
	assert.Equal(t, "corridor", solve.Guard.Choices[0].To)

	chamber := story.Scenes[1]
	require.NotNil(t, chamber.Effect)
	assert.Equal(t, "Orb", chamber.Effect.Grant)
	require.NotNil(t, chamber.Animation)
	assert.Equal(t, "corridor", chamber.Animation.Next)
}

func TestParser_AcceptsJSON(t *testing.T) {
	story, err := NewParser().Parse([]byte(`{"entry":"a","scenes":[{"id":"a","text":"Hi"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "Hi", story.Scenes[0].Text)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "   \n"},
		{"invalid yaml", "entry: [a"},
		{"missing entry", "scenes:\n  - id: a\n"},
		{"unknown key", "entry: a\nteleport: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParser_Lenient(t *testing.T) {
	story, err := NewParser(WithStrict(false)).Parse([]byte("entry: a\nteleport: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "a", story.Entry)
}
