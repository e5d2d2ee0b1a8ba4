package graph

import (
	"fmt"

	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/ports"
)

// Graph is the immutable registry of scenes for one story.
// It is validated once at construction and never mutated afterwards.
type Graph struct {
	title  string
	entry  string
	order  []string
	scenes map[string]domain.Scene
}

// New registers the scenes and validates the graph.
// Every problem found is reported in a single *ValidationError.
func New(entry string, scenes ...domain.Scene) (*Graph, error) {
	g := &Graph{
		entry:  entry,
		order:  make([]string, 0, len(scenes)),
		scenes: make(map[string]domain.Scene, len(scenes)),
	}

	var problems []string
	for _, s := range scenes {
		if s.ID == "" {
			problems = append(problems, "scene with empty id")
			continue
		}
		if _, exists := g.scenes[s.ID]; exists {
			problems = append(problems, fmt.Sprintf("scene %q registered twice", s.ID))
			continue
		}
		g.order = append(g.order, s.ID)
		g.scenes[s.ID] = s
	}

	problems = append(problems, g.validate()...)
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return g, nil
}

// FromStory builds a graph from a loaded story document.
func FromStory(story *domain.Story) (*Graph, error) {
	if story == nil {
		return nil, fmt.Errorf("nil story")
	}
	g, err := New(story.Entry, story.Scenes...)
	if err != nil {
		return nil, err
	}
	g.title = story.Title
	return g, nil
}

// Load reads a story through the loader and builds a validated graph.
func Load(loader ports.GraphLoader) (*Graph, error) {
	story, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load story: %w", err)
	}
	return FromStory(story)
}

// Scene returns the scene registered under id.
func (g *Graph) Scene(id string) (domain.Scene, error) {
	s, ok := g.scenes[id]
	if !ok {
		return domain.Scene{}, &domain.UnknownSceneError{SceneID: id}
	}
	return s, nil
}

// Has reports whether id is registered.
func (g *Graph) Has(id string) bool {
	_, ok := g.scenes[id]
	return ok
}

// Entry returns the initial scene id.
func (g *Graph) Entry() string {
	return g.entry
}

// Title returns the story title, if any.
func (g *Graph) Title() string {
	return g.title
}

// IDs returns scene ids in registration order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Scenes returns all scenes in registration order.
func (g *Graph) Scenes() []domain.Scene {
	out := make([]domain.Scene, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.scenes[id])
	}
	return out
}

// Story returns the graph as a story document, suitable for serialization.
func (g *Graph) Story() *domain.Story {
	return &domain.Story{Title: g.title, Entry: g.entry, Scenes: g.Scenes()}
}

// Targets lists every scene id reachable in one step from the scene.
// Failure outcomes of guards stay on the scene and are not listed.
func Targets(s domain.Scene) []string {
	var out []string
	add := func(choices []domain.Choice) {
		for _, c := range choices {
			switch c.Kind() {
			case domain.ChoiceKindPlain:
				out = append(out, c.To)
			case domain.ChoiceKindGuarded:
				out = append(out, c.Guard.Success)
				for _, esc := range c.Guard.Choices {
					if esc.Kind() == domain.ChoiceKindPlain {
						out = append(out, esc.To)
					}
				}
			}
		}
	}
	add(s.Choices)
	if s.Guard != nil {
		out = append(out, s.Guard.Success)
		add(s.Guard.Choices)
	}
	if s.Animation != nil {
		out = append(out, s.Animation.Next)
	}
	return out
}

// Unreachable returns the scenes that cannot be reached from the entry scene.
// They are not an error: hosts may enter any scene directly.
func (g *Graph) Unreachable() []string {
	visited := map[string]bool{}
	queue := []string{g.entry}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		s, ok := g.scenes[id]
		if !ok {
			continue
		}
		for _, target := range Targets(s) {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	var out []string
	for _, id := range g.order {
		if !visited[id] {
			out = append(out, id)
		}
	}
	return out
}
