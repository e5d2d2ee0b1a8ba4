// Package story embeds the built-in "Sci-Fi Adventure".
package story

import (
	_ "embed"
	"fmt"

	"github.com/aretw0/derelict/internal/compiler"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/graph"
	"github.com/aretw0/derelict/pkg/ports"
)

// Scene ids referenced by hosts and tests.
const (
	Start              = "start"
	ExploreShip        = "explore-ship"
	ControlPanel       = "control-panel"
	EscapePod          = "escape-pod"
	EscapePodLaunched  = "escape-pod-launched"
	ShipLogs           = "ship-logs"
	StorageRoom        = "storage-room"
	EngineRoom         = "engine-room"
	StabilizeReactor   = "stabilize-reactor"
	SideDoor           = "side-door"
	ResearchLab        = "research-lab"
	LabEquipment       = "lab-equipment"
	MysteriousCorridor = "mysterious-corridor"
	AlienChamber       = "alien-chamber"
	PortalAdventure    = "portal-adventure"
	ExamineArtifact    = "examine-artifact"
	Inventory          = "inventory"
)

//go:embed story.yaml
var source []byte

// Source returns a copy of the embedded YAML document.
func Source() []byte {
	out := make([]byte, len(source))
	copy(out, source)
	return out
}

// Loader returns a GraphLoader serving the embedded story.
func Loader() ports.GraphLoader {
	return ports.LoaderFunc(func() (*domain.Story, error) {
		return compiler.NewParser().Parse(source)
	})
}

// Graph builds the validated graph of the embedded story.
func Graph() (*graph.Graph, error) {
	return graph.Load(Loader())
}

// MustGraph is like Graph but panics on error.
// The embedded story is covered by tests, so this only fails on a broken build.
func MustGraph() *graph.Graph {
	g, err := Graph()
	if err != nil {
		panic(fmt.Sprintf("story: embedded story is invalid: %v", err))
	}
	return g
}
