package ports

import "github.com/aretw0/derelict/pkg/domain"

// GraphLoader defines the interface for loading a story document.
// Implementations decide where scenes come from (memory, embedded files, disk).
type GraphLoader interface {
	// Load returns the story with its entry scene and every scene definition.
	// Validation is performed by the graph, not by the loader.
	Load() (*domain.Story, error)
}

// LoaderFunc adapts a plain function to GraphLoader.
type LoaderFunc func() (*domain.Story, error)

// Load calls f.
func (f LoaderFunc) Load() (*domain.Story, error) {
	return f()
}
