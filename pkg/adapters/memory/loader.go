package memory

import (
	"fmt"

	"github.com/aretw0/derelict/pkg/domain"
)

// Loader implements ports.GraphLoader over scenes held in memory.
type Loader struct {
	title  string
	entry  string
	scenes []domain.Scene
}

// NewLoader creates a Loader for the given entry scene and scene definitions.
func NewLoader(entry string, scenes ...domain.Scene) *Loader {
	cp := make([]domain.Scene, len(scenes))
	copy(cp, scenes)
	return &Loader{entry: entry, scenes: cp}
}

// NewFromStory creates a Loader serving an already assembled story.
func NewFromStory(story domain.Story) *Loader {
	l := NewLoader(story.Entry, story.Scenes...)
	l.title = story.Title
	return l
}

// Load returns a fresh copy of the story on every call.
func (l *Loader) Load() (*domain.Story, error) {
	if l.entry == "" {
		return nil, fmt.Errorf("memory loader has no entry scene")
	}
	scenes := make([]domain.Scene, len(l.scenes))
	copy(scenes, l.scenes)
	return &domain.Story{Title: l.title, Entry: l.entry, Scenes: scenes}, nil
}
