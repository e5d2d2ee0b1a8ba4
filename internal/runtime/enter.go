package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/derelict/pkg/domain"
)

// Enter moves the session to sceneID.
// It applies the scene's entry effect, which is the only place items are granted,
// and arms the scene guard when there is one.
func (e *Engine) Enter(ctx context.Context, state *domain.State, sceneID string) (*domain.State, *domain.Render, error) {
	if err := e.checkActive(state); err != nil {
		return nil, nil, err
	}
	scene, err := e.graph.Scene(sceneID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to enter scene: %w", err)
	}

	if len(state.History) > 0 {
		if prev, err := e.graph.Scene(state.CurrentSceneID); err == nil {
			e.emitSceneLeave(ctx, state.SessionID, prev)
		}
	}

	next := state.Clone()
	next.CurrentSceneID = scene.ID
	next.History = append(next.History, scene.ID)
	next.Pending = nil
	next.Granted = false
	next.Status = domain.StatusActive
	if scene.Animation != nil {
		next.Status = domain.StatusAnimating
	}

	if scene.Effect != nil {
		next.Granted = next.Inventory.Add(scene.Effect.Grant)
		if next.Granted {
			e.logger.Debug("item granted", "session_id", next.SessionID, "scene", scene.ID, "item", scene.Effect.Grant)
			e.emitItemGranted(ctx, next.SessionID, scene.ID, scene.Effect.Grant)
		}
	}

	if scene.Guard != nil {
		next.Pending = &domain.PendingInput{OriginSceneID: scene.ID, Guard: *scene.Guard}
	}

	e.logger.Debug("scene entered", "session_id", next.SessionID, "scene", scene.ID)
	e.emitSceneEnter(ctx, next.SessionID, scene)

	return next, e.render(scene, next), nil
}

// CompleteAnimation is called by the host once the animated exit finished playing.
// It enters the scene that follows the animation.
func (e *Engine) CompleteAnimation(ctx context.Context, state *domain.State) (*domain.State, *domain.Render, error) {
	if err := e.checkActive(state); err != nil {
		return nil, nil, err
	}
	scene, err := e.currentScene(state)
	if err != nil {
		return nil, nil, err
	}
	if scene.Animation == nil {
		return nil, nil, fmt.Errorf("scene %q: %w", scene.ID, domain.ErrNotAnimating)
	}
	return e.Enter(ctx, state, scene.Animation.Next)
}
