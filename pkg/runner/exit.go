package runner

import (
	"context"
	"strings"
)

// ExitPrompt is asked before the game ends.
const ExitPrompt = "Do you really want to exit the game? (y/n)"

// ExitPolicy decides whether an exit request ends the game.
// It returns false to keep playing.
type ExitPolicy func(ctx context.Context) (bool, error)

// ConfirmExit asks the player through the handler before leaving.
// Only "y" and "yes" (any case) confirm.
func ConfirmExit(handler IOHandler) ExitPolicy {
	return func(ctx context.Context) (bool, error) {
		if err := handler.SystemOutput(ctx, ExitPrompt); err != nil {
			return false, err
		}
		input, err := handler.Input(ctx)
		if err != nil {
			return false, err
		}
		input = strings.TrimSpace(strings.ToLower(input))
		return input == "y" || input == "yes", nil
	}
}

// AutoConfirm accepts every exit request.
func AutoConfirm() ExitPolicy {
	return func(ctx context.Context) (bool, error) {
		return true, nil
	}
}
