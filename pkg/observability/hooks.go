package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/derelict/pkg/domain"
)

// LoggingHooks logs every lifecycle event at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSceneEnter: func(ctx context.Context, e *domain.SceneEvent) {
			logger.DebugContext(ctx, "scene_enter", "session_id", e.SessionID, "scene_id", e.SceneID, "kind", e.Kind)
		},
		OnSceneLeave: func(ctx context.Context, e *domain.SceneEvent) {
			logger.DebugContext(ctx, "scene_leave", "session_id", e.SessionID, "scene_id", e.SceneID)
		},
		OnItemGranted: func(ctx context.Context, e *domain.ItemEvent) {
			logger.DebugContext(ctx, "item_granted", "session_id", e.SessionID, "scene_id", e.SceneID, "item", e.Item)
		},
		OnGuardResolved: func(ctx context.Context, e *domain.GuardEvent) {
			logger.DebugContext(ctx, "guard_resolved", "session_id", e.SessionID, "scene_id", e.SceneID, "outcome", e.Outcome)
		},
	}
}

// Chain calls every hook set in order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		out.OnSceneEnter = chain(out.OnSceneEnter, h.OnSceneEnter)
		out.OnSceneLeave = chain(out.OnSceneLeave, h.OnSceneLeave)
		out.OnItemGranted = chain(out.OnItemGranted, h.OnItemGranted)
		out.OnGuardResolved = chain(out.OnGuardResolved, h.OnGuardResolved)
	}
	return out
}

func chain[E any](first, next func(context.Context, E)) func(context.Context, E) {
	if first == nil {
		return next
	}
	if next == nil {
		return first
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		next(ctx, e)
	}
}
