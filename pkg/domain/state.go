package domain

import "slices"

// ExecutionStatus defines the current mode of the session.
type ExecutionStatus string

const (
	StatusActive    ExecutionStatus = "active"    // Normal operation
	StatusAnimating ExecutionStatus = "animating" // Host is playing an animated exit
	StatusExited    ExecutionStatus = "exited"    // Player confirmed exit
)

// PendingInput records a guard waiting for player input.
type PendingInput struct {
	// OriginSceneID is the scene the player stays on when the answer is wrong.
	OriginSceneID string `json:"origin_scene_id"`
	// ChoiceID names the choice that armed the guard (its id, or its label when
	// it has none). It is empty when the guard belongs to the scene itself.
	ChoiceID string `json:"choice_id,omitempty"`
	Guard    Guard  `json:"guard"`
}

// State represents the mutable data of one play session.
type State struct {
	// SessionID correlates logs and events.
	SessionID string `json:"session_id"`

	// CurrentSceneID is always a key of the scene graph.
	CurrentSceneID string `json:"current_scene_id"`

	Status ExecutionStatus `json:"status"`

	// Inventory is append-only and free of duplicates.
	Inventory Inventory `json:"inventory"`

	// History tracks every scene entered, in order.
	History []string `json:"history"`

	Pending *PendingInput `json:"pending,omitempty"`

	// Granted records whether entering the current scene added its effect item.
	// It selects between the effect's OnGrant and OnHeld narration.
	Granted bool `json:"granted,omitempty"`
}

// NewState creates a clean state positioned at the entry scene.
// The entry scene is not entered yet: effects are only applied by the engine.
func NewState(sessionID, entrySceneID string) *State {
	return &State{
		SessionID:      sessionID,
		CurrentSceneID: entrySceneID,
		Status:         StatusActive,
		Inventory:      Inventory{},
		History:        []string{},
	}
}

// Clone returns a deep copy safe for mutation.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.Inventory = slices.Clone(s.Inventory)
	if next.Inventory == nil {
		next.Inventory = Inventory{}
	}
	next.History = slices.Clone(s.History)
	if next.History == nil {
		next.History = []string{}
	}
	if s.Pending != nil {
		p := *s.Pending
		next.Pending = &p
	}
	return &next
}

// Visits counts how many times the scene was entered.
func (s *State) Visits(sceneID string) int {
	n := 0
	for _, id := range s.History {
		if id == sceneID {
			n++
		}
	}
	return n
}
