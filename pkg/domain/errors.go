package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownScene is returned when a scene id is not registered in the graph.
// During play this indicates a broken graph and is treated as fatal.
var ErrUnknownScene = errors.New("unknown scene")

// ErrUnknownChoice is returned when a host asks for a choice the scene does not offer.
var ErrUnknownChoice = errors.New("unknown choice")

// ErrNoPendingInput is returned when an answer is submitted while no guard is armed.
var ErrNoPendingInput = errors.New("no guard is waiting for input")

// ErrNotAnimating is returned when animation completion is reported outside an animated scene.
var ErrNotAnimating = errors.New("current scene has no animation")

// ErrSessionEnded is returned by sessions after the player exited.
var ErrSessionEnded = errors.New("session ended")

// UnknownSceneError carries the offending scene id.
type UnknownSceneError struct {
	SceneID string
}

func (e *UnknownSceneError) Error() string {
	return fmt.Sprintf("unknown scene %q", e.SceneID)
}

func (e *UnknownSceneError) Unwrap() error {
	return ErrUnknownScene
}

// UnknownChoiceError carries the key the host asked for.
type UnknownChoiceError struct {
	SceneID string
	Key     string
}

func (e *UnknownChoiceError) Error() string {
	return fmt.Sprintf("scene %q offers no choice %q", e.SceneID, e.Key)
}

func (e *UnknownChoiceError) Unwrap() error {
	return ErrUnknownChoice
}
