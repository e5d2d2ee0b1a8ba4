package dsl

import (
	"github.com/aretw0/derelict/pkg/adapters/memory"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/graph"
	"github.com/aretw0/derelict/pkg/ports"
)

// Builder manages the graph construction.
type Builder struct {
	title  string
	entry  string
	order  []string
	scenes map[string]*SceneBuilder
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		scenes: make(map[string]*SceneBuilder),
	}
}

// Title names the story.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Entry sets the initial scene. By default it is the first scene added.
func (b *Builder) Entry(id string) *Builder {
	b.entry = id
	return b
}

// Add creates a new scene in the graph.
// If the scene already exists, it returns the existing builder.
func (b *Builder) Add(id string) *SceneBuilder {
	if sb, ok := b.scenes[id]; ok {
		return sb
	}
	sb := &SceneBuilder{
		scene:   domain.Scene{ID: id},
		builder: b,
	}
	b.scenes[id] = sb
	b.order = append(b.order, id)
	if b.entry == "" {
		b.entry = id
	}
	return sb
}

// Story returns the scenes assembled so far, in the order they were added.
func (b *Builder) Story() domain.Story {
	scenes := make([]domain.Scene, 0, len(b.order))
	for _, id := range b.order {
		scenes = append(scenes, b.scenes[id].snapshot())
	}
	return domain.Story{Title: b.title, Entry: b.entry, Scenes: scenes}
}

// Loader exposes the assembled story as a GraphLoader.
func (b *Builder) Loader() ports.GraphLoader {
	return memory.NewFromStory(b.Story())
}

// Build validates the scenes and returns the graph.
func (b *Builder) Build() (*graph.Graph, error) {
	return graph.Load(b.Loader())
}
