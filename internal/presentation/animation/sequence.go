// Package animation drives host-side timed sequences, such as the escape pod
// rising off screen. The engine only learns when a sequence has finished.
package animation

import (
	"context"
	"time"
)

// DefaultInterval is the delay between two frames.
const DefaultInterval = 50 * time.Millisecond

// Sequence moves a position by Step on every frame until it reaches Threshold.
type Sequence struct {
	Position  int
	Step      int
	Threshold int

	start int
}

// New creates a sequence starting at position.
func New(position, step, threshold int) Sequence {
	return Sequence{Position: position, Step: step, Threshold: threshold, start: position}
}

// EscapePod is the launch sequence: a pod drawn 50px above the bottom of a
// 300px canvas rises 5px per frame until it has left the top edge.
func EscapePod() Sequence {
	return New(250, 5, -50)
}

// Advance moves one frame and reports whether more frames follow.
func (s *Sequence) Advance() bool {
	if s.Done() {
		return false
	}
	s.Position -= s.Step
	return !s.Done()
}

// Done reports whether the sequence crossed its threshold.
func (s Sequence) Done() bool {
	return s.Step <= 0 || s.Position <= s.Threshold
}

// Progress returns how far the sequence went, from 0 to 1.
func (s Sequence) Progress() float64 {
	total := s.start - s.Threshold
	if total <= 0 {
		return 1
	}
	p := float64(s.start-s.Position) / float64(total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Frames counts the frames left before the sequence completes.
func (s Sequence) Frames() int {
	n := 0
	for !s.Done() {
		s.Advance()
		n++
	}
	return n
}

// Play advances seq on every tick of interval, calling frame after each move,
// and returns once the sequence is done or ctx is cancelled.
func Play(ctx context.Context, seq Sequence, interval time.Duration, frame func(Sequence)) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !seq.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			seq.Advance()
			if frame != nil {
				frame(seq)
			}
		}
	}
	return nil
}
