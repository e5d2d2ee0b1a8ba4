package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// raceWindow is how long an input error waits for a signal that may follow it.
const raceWindow = 100 * time.Millisecond

// SignalManager cancels its context on SIGINT or SIGTERM while the runner
// waits on the player. It can be re-armed after a signal was handled.
type SignalManager struct {
	parent context.Context
	ctx    context.Context
	stop   context.CancelFunc
}

// NewSignalManager starts listening for signals under parent.
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	sm := &SignalManager{parent: parent}
	sm.Reset()
	return sm
}

// Context is cancelled by the next signal, or when the parent is done.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Reset drops the current listener and installs a fresh one.
func (sm *SignalManager) Reset() {
	sm.Stop()
	sm.ctx, sm.stop = signal.NotifyContext(sm.parent, os.Interrupt, syscall.SIGTERM)
}

// Stop releases the listener. The current context is cancelled.
func (sm *SignalManager) Stop() {
	if sm.stop != nil {
		sm.stop()
	}
}

// CheckRace gives a pending signal a short window to land after an input error.
// Ctrl+C can close stdin on some terminals before the signal itself arrives.
func (sm *SignalManager) CheckRace() {
	if sm.ctx.Err() != nil {
		return
	}
	timer := time.NewTimer(raceWindow)
	defer timer.Stop()
	select {
	case <-sm.ctx.Done():
	case <-timer.C:
	}
}
