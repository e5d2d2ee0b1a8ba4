package runtime

import (
	"context"

	"github.com/aretw0/derelict/pkg/domain"
)

func (e *Engine) base(t domain.EventType, sessionID string) domain.EventBase {
	return domain.EventBase{Timestamp: e.nowFunc(), Type: t, SessionID: sessionID}
}

func (e *Engine) emitSceneEnter(ctx context.Context, sessionID string, scene domain.Scene) {
	if e.hooks.OnSceneEnter == nil {
		return
	}
	e.hooks.OnSceneEnter(ctx, &domain.SceneEvent{
		EventBase: e.base(domain.EventSceneEnter, sessionID),
		SceneID:   scene.ID,
		Kind:      scene.EffectiveKind(),
	})
}

func (e *Engine) emitSceneLeave(ctx context.Context, sessionID string, scene domain.Scene) {
	if e.hooks.OnSceneLeave == nil {
		return
	}
	e.hooks.OnSceneLeave(ctx, &domain.SceneEvent{
		EventBase: e.base(domain.EventSceneLeave, sessionID),
		SceneID:   scene.ID,
		Kind:      scene.EffectiveKind(),
	})
}

func (e *Engine) emitItemGranted(ctx context.Context, sessionID, sceneID, item string) {
	if e.hooks.OnItemGranted == nil {
		return
	}
	e.hooks.OnItemGranted(ctx, &domain.ItemEvent{
		EventBase: e.base(domain.EventItemGranted, sessionID),
		SceneID:   sceneID,
		Item:      item,
	})
}

func (e *Engine) emitGuardResolved(ctx context.Context, sessionID, sceneID string, kind domain.GuardKind, outcome domain.Outcome) {
	if e.hooks.OnGuardResolved == nil {
		return
	}
	e.hooks.OnGuardResolved(ctx, &domain.GuardEvent{
		EventBase: e.base(domain.EventGuardResolved, sessionID),
		SceneID:   sceneID,
		Kind:      kind,
		Outcome:   outcome,
	})
}
