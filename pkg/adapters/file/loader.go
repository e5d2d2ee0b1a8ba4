package file

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/aretw0/derelict/internal/compiler"
	"github.com/aretw0/derelict/pkg/domain"
)

// Loader implements ports.GraphLoader by reading a YAML story document
// from a file system.
type Loader struct {
	fsys   iofs.FS
	name   string
	parser *compiler.Parser
}

// NewLoader creates a Loader reading name from fsys.
func NewLoader(fsys iofs.FS, name string) *Loader {
	return &Loader{fsys: fsys, name: name, parser: compiler.NewParser()}
}

// NewFromPath creates a Loader for a story document on disk.
func NewFromPath(path string) *Loader {
	return NewLoader(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Load reads and parses the story document.
func (l *Loader) Load() (*domain.Story, error) {
	data, err := iofs.ReadFile(l.fsys, l.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read story %s: %w", l.name, err)
	}
	story, err := l.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.name, err)
	}
	return story, nil
}
