package memory_test

import (
	"testing"

	"github.com/aretw0/derelict/pkg/adapters/memory"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	loader := memory.NewLoader("start",
		domain.Scene{ID: "start", Text: "Hello", Choices: []domain.Choice{{Label: "Go", To: "end"}}},
		domain.Scene{ID: "end", Text: "Goodbye"},
	)

	story, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "start", story.Entry)
	require.Len(t, story.Scenes, 2)

	// Mutating the returned story must not leak into the next load.
	story.Scenes[0].Text = "changed"
	again, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "Hello", again.Scenes[0].Text)

	g, err := graph.Load(loader)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "end"}, g.IDs())
}

func TestLoader_MissingEntry(t *testing.T) {
	_, err := memory.NewLoader("").Load()
	assert.Error(t, err)
}

func TestNewFromStory(t *testing.T) {
	loader := memory.NewFromStory(domain.Story{
		Title:  "Tiny",
		Entry:  "only",
		Scenes: []domain.Scene{{ID: "only", Choices: []domain.Choice{{Label: "Quit", Exit: true}}}},
	})
	g, err := graph.Load(loader)
	require.NoError(t, err)
	assert.Equal(t, "Tiny", g.Title())
}
