package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/derelict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "", "version")
	assert.Equal(t, "derelict version "+derelict.Version+"\n", out)
}

func TestValidateCommand(t *testing.T) {
	out := execute(t, "", "validate")
	assert.Contains(t, out, "Sci-Fi Adventure: 17 scenes")
	assert.Contains(t, out, "Story is valid!")
}

func TestGraphCommand(t *testing.T) {
	out := execute(t, "", "graph", "--overlay", "explore-ship,engine-room")
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "class engine_room current;")
}

func TestPlayCommand_JSON(t *testing.T) {
	out := execute(t, "\"check-inventory\"\n", "play", "--json")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"scene_id":"inventory"`)
}
