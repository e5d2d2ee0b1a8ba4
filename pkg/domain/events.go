package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSceneEnter    EventType = "scene_enter"
	EventSceneLeave    EventType = "scene_leave"
	EventItemGranted   EventType = "item_granted"
	EventGuardResolved EventType = "guard_resolved"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// SceneEvent represents entry or exit from a scene.
type SceneEvent struct {
	EventBase
	SceneID string `json:"scene_id"`
	Kind    string `json:"kind"`
}

// ItemEvent is emitted when an entry effect adds an item.
type ItemEvent struct {
	EventBase
	SceneID string `json:"scene_id"`
	Item    string `json:"item"`
}

// GuardEvent is emitted after every answer attempt.
type GuardEvent struct {
	EventBase
	SceneID string    `json:"scene_id"`
	Kind    GuardKind `json:"kind"`
	Outcome Outcome   `json:"outcome"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnSceneEnter    func(context.Context, *SceneEvent)
	OnSceneLeave    func(context.Context, *SceneEvent)
	OnItemGranted   func(context.Context, *ItemEvent)
	OnGuardResolved func(context.Context, *GuardEvent)
}
