package runtime

import (
	"context"
	"strconv"
	"strings"

	"github.com/aretw0/derelict/pkg/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFailureMessage is reported when a guard declares no failure message.
const DefaultFailureMessage = "That is not the right answer. Try again!"

// Resolve checks raw input against the pending guard.
// A match enters the guard's success scene. A mismatch keeps the player on the
// origin scene with the guard still armed; there is no retry limit.
func (e *Engine) Resolve(ctx context.Context, state *domain.State, raw string) (*domain.State, *domain.Render, error) {
	if err := e.checkActive(state); err != nil {
		return nil, nil, err
	}
	if state.Pending == nil {
		return nil, nil, domain.ErrNoPendingInput
	}
	scene, err := e.currentScene(state)
	if err != nil {
		return nil, nil, err
	}

	guard := state.Pending.Guard
	if Match(guard, raw) {
		e.logger.Debug("guard solved", "session_id", state.SessionID, "scene", scene.ID)
		e.emitGuardResolved(ctx, state.SessionID, scene.ID, guard.EffectiveKind(), domain.OutcomeSuccess)

		next, render, err := e.Enter(ctx, state, guard.Success)
		if err != nil {
			return nil, nil, err
		}
		render.Outcome = domain.OutcomeSuccess
		render.Message = guard.SuccessMessage
		return next, render, nil
	}

	e.logger.Debug("guard failed", "session_id", state.SessionID, "scene", scene.ID)
	e.emitGuardResolved(ctx, state.SessionID, scene.ID, guard.EffectiveKind(), domain.OutcomeFailure)

	next := state.Clone()
	render := e.render(scene, next)
	render.Outcome = domain.OutcomeFailure
	render.Message = guard.FailureMessage
	if render.Message == "" {
		render.Message = DefaultFailureMessage
	}
	return next, render, nil
}

// Match reports whether raw satisfies the guard.
//
// Text guards compare trimmed, lowercased strings for equality with any
// accepted answer. Number guards require the trimmed input to be ASCII digits
// only and compare numeric values, so "042" matches 42 while "-42", "42.0" and
// values that overflow never match.
func Match(guard domain.Guard, raw string) bool {
	switch guard.EffectiveKind() {
	case domain.GuardNumber:
		got, ok := parseDecimal(raw)
		if !ok {
			return false
		}
		for _, answer := range guard.Answers {
			if want, ok := parseDecimal(answer); ok && want == got {
				return true
			}
		}
		return false

	case domain.GuardText:
		got := lower(raw)
		if got == "" {
			return false
		}
		for _, answer := range guard.Answers {
			if lower(answer) == got {
				return true
			}
		}
		return false
	}
	return false
}

func lower(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

func parseDecimal(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if !domain.IsDecimal(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
