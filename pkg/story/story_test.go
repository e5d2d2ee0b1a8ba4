package story_test

import (
	"testing"

	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/graph"
	"github.com/aretw0/derelict/pkg/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStory_IsValid(t *testing.T) {
	g, err := story.Graph()
	require.NoError(t, err)

	assert.Equal(t, story.Start, g.Entry())
	assert.Equal(t, "Sci-Fi Adventure", g.Title())
	assert.Len(t, g.IDs(), 17)
}

func TestEmbeddedStory_GraphClosure(t *testing.T) {
	g := story.MustGraph()

	for _, s := range g.Scenes() {
		for _, target := range graph.Targets(s) {
			assert.Truef(t, g.Has(target), "scene %q points at unregistered %q", s.ID, target)
		}
	}
}

func TestEmbeddedStory_AllScenesReachable(t *testing.T) {
	assert.Empty(t, story.MustGraph().Unreachable())
}

func TestEmbeddedStory_Guards(t *testing.T) {
	g := story.MustGraph()

	chamber, err := g.Scene(story.AlienChamber)
	require.NoError(t, err)
	require.NotNil(t, chamber.Guard)
	assert.Equal(t, domain.GuardNumber, chamber.Guard.Kind)
	assert.Equal(t, story.PortalAdventure, chamber.Guard.Success)

	lab, err := g.Scene(story.ResearchLab)
	require.NoError(t, err)
	require.NotNil(t, lab.Guard)
	assert.ElementsMatch(t, []string{"keyboard", "a keyboard"}, lab.Guard.Answers)

	corridor, err := g.Scene(story.MysteriousCorridor)
	require.NoError(t, err)
	assert.Nil(t, corridor.Guard)
	require.Equal(t, domain.ChoiceKindGuarded, corridor.Choices[0].Kind())
	assert.Equal(t, "solve-riddle", corridor.Choices[0].ID)
	assert.Equal(t, story.AlienChamber, corridor.Choices[0].Guard.Success)
}

func TestEmbeddedStory_EscapePodIsAnimated(t *testing.T) {
	pod, err := story.MustGraph().Scene(story.EscapePod)
	require.NoError(t, err)
	require.NotNil(t, pod.Animation)
	assert.Equal(t, story.EscapePodLaunched, pod.Animation.Next)
	assert.Empty(t, pod.Choices)
}

func TestSource_IsDetached(t *testing.T) {
	src := story.Source()
	require.NotEmpty(t, src)
	src[0] = '#'
	assert.NotEqual(t, byte('#'), story.Source()[0])
}
