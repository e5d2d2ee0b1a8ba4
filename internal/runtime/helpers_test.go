package runtime_test

import (
	"testing"

	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/graph"
	"github.com/stretchr/testify/require"
)

func mustGraph(t *testing.T, entry string, scenes ...domain.Scene) *graph.Graph {
	t.Helper()
	g, err := graph.New(entry, scenes...)
	require.NoError(t, err)
	return g
}
