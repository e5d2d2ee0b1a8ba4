package animation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapePod(t *testing.T) {
	seq := EscapePod()
	assert.Equal(t, 250, seq.Position)
	assert.Equal(t, 60, seq.Frames())
	assert.Equal(t, 0.0, seq.Progress())

	for i := 0; i < 59; i++ {
		require.True(t, seq.Advance(), "frame %d", i)
	}
	assert.Equal(t, -45, seq.Position)
	assert.False(t, seq.Advance())
	assert.Equal(t, -50, seq.Position)
	assert.True(t, seq.Done())
	assert.Equal(t, 1.0, seq.Progress())

	assert.False(t, seq.Advance(), "a finished sequence stays put")
	assert.Equal(t, -50, seq.Position)
}

func TestSequence_Degenerate(t *testing.T) {
	assert.True(t, New(0, 0, -10).Done(), "a zero step never moves")
	assert.True(t, New(-60, 5, -50).Done())
	assert.Equal(t, 0, New(-60, 5, -50).Frames())
	assert.Equal(t, 1.0, New(-60, 5, -50).Progress())
}

func TestPlay(t *testing.T) {
	var positions []int
	err := Play(context.Background(), New(10, 5, 0), time.Millisecond, func(s Sequence) {
		positions = append(positions, s.Position)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 0}, positions)
}

func TestPlay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Play(ctx, EscapePod(), time.Hour, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
