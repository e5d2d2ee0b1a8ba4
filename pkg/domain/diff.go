package domain

// StateDiff represents the changes between two states.
// It is designed to be serialized to JSON for partial updates on the client.
type StateDiff struct {
	// SessionID is always present to identify the target.
	SessionID string `json:"session_id"`

	CurrentSceneID *string          `json:"current_scene_id,omitempty"`
	Status         *ExecutionStatus `json:"status,omitempty"`

	// ItemsAdded lists items granted since the old state.
	// The inventory is append-only, so removals never appear.
	ItemsAdded []string `json:"items_added,omitempty"`

	// History contains only the scene ids appended since the old state.
	History *HistoryDelta `json:"history,omitempty"`
}

// HistoryDelta represents changes to the history stack.
type HistoryDelta struct {
	Appended []string `json:"appended"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, it returns a diff representing the entire newState (initial load).
// It returns nil when nothing changed.
func Diff(oldState, newState *State) *StateDiff {
	if newState == nil {
		return nil
	}

	diff := &StateDiff{
		SessionID: newState.SessionID,
	}

	if oldState == nil || oldState.CurrentSceneID != newState.CurrentSceneID {
		diff.CurrentSceneID = &newState.CurrentSceneID
	}
	if oldState == nil || oldState.Status != newState.Status {
		diff.Status = &newState.Status
	}

	diff.ItemsAdded = diffInventory(oldState, newState)
	diff.History = diffHistory(oldState, newState)

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffInventory(old *State, new *State) []string {
	var added []string
	for _, item := range new.Inventory {
		if old == nil || !old.Inventory.Has(item) {
			added = append(added, item)
		}
	}
	return added
}

// diffHistory assumes append-only history.
func diffHistory(old *State, new *State) *HistoryDelta {
	if len(new.History) == 0 {
		return nil
	}
	if old == nil {
		return &HistoryDelta{Appended: new.History}
	}
	if len(new.History) > len(old.History) {
		return &HistoryDelta{Appended: new.History[len(old.History):]}
	}
	return nil
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *StateDiff) IsEmpty() bool {
	return d.CurrentSceneID == nil &&
		d.Status == nil &&
		len(d.ItemsAdded) == 0 &&
		d.History == nil
}
