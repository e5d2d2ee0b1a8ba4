package derelict

import (
	"context"
	"errors"

	"github.com/aretw0/derelict/pkg/domain"
)

// ErrNotStarted is returned by session operations called before Start.
var ErrNotStarted = errors.New("session not started")

// Session owns the game state of one player.
// It is not safe for concurrent use; hosts serving several callers must
// serialize access.
type Session struct {
	engine *Engine
	state  *domain.State
}

// InitialScene returns the id of the scene Start enters.
func (s *Session) InitialScene() string {
	return s.engine.InitialScene()
}

// Start discards any previous state and enters the initial scene.
func (s *Session) Start(ctx context.Context) (*domain.Render, error) {
	state, render, err := s.engine.runtime.Start(ctx)
	if err != nil {
		return nil, err
	}
	s.state = state
	return render, nil
}

// EnterScene moves the player to id, applying its entry effect.
func (s *Session) EnterScene(ctx context.Context, id string) (*domain.Render, error) {
	if s.state == nil {
		return nil, ErrNotStarted
	}
	return s.apply(s.engine.runtime.Enter(ctx, s.state, id))
}

// Choose picks one of the offered choices by id, label or 1-based index.
// The render asks for input when the choice is guarded.
func (s *Session) Choose(ctx context.Context, key string) (*domain.Render, error) {
	if s.state == nil {
		return nil, ErrNotStarted
	}
	return s.apply(s.engine.runtime.Choose(ctx, s.state, key))
}

// ResolveGuardedTransition answers the pending guard.
// Wrong answers are reported through Render.Outcome, not as errors.
func (s *Session) ResolveGuardedTransition(ctx context.Context, raw string) (*domain.Render, error) {
	if s.state == nil {
		return nil, ErrNotStarted
	}
	return s.apply(s.engine.runtime.Resolve(ctx, s.state, raw))
}

// CompleteAnimation tells the session the host finished playing the animated exit.
func (s *Session) CompleteAnimation(ctx context.Context) (*domain.Render, error) {
	if s.state == nil {
		return nil, ErrNotStarted
	}
	return s.apply(s.engine.runtime.CompleteAnimation(ctx, s.state))
}

// Render re-renders the current scene without changing anything.
func (s *Session) Render(ctx context.Context) (*domain.Render, error) {
	if s.state == nil {
		return nil, ErrNotStarted
	}
	if s.Ended() {
		return nil, domain.ErrSessionEnded
	}
	return s.engine.runtime.Render(ctx, s.state)
}

// InventoryReport returns the items held, in grant order.
func (s *Session) InventoryReport() domain.InventoryReport {
	return s.engine.runtime.InventoryReport(s.state)
}

// State returns a copy of the current game state.
func (s *Session) State() domain.State {
	if s.state == nil {
		return domain.State{}
	}
	return *s.state.Clone()
}

// End marks the session as exited. Further calls return domain.ErrSessionEnded.
func (s *Session) End() {
	if s.state == nil {
		s.state = domain.NewState("", s.engine.InitialScene())
	}
	s.state = s.state.Clone()
	s.state.Status = domain.StatusExited
	s.state.Pending = nil
}

// Ended reports whether the player exited.
func (s *Session) Ended() bool {
	return s.state != nil && s.state.Status == domain.StatusExited
}

func (s *Session) apply(next *domain.State, render *domain.Render, err error) (*domain.Render, error) {
	if err != nil {
		return nil, err
	}
	s.state = next
	return render, nil
}
