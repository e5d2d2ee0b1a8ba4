package domain

import (
	"strconv"
	"strings"
)

// Outcome tags the result of resolving a guard.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// ChoiceView is what a host needs to draw a choice.
type ChoiceView struct {
	ID    string     `json:"id,omitempty"`
	Label string     `json:"label"`
	Kind  ChoiceKind `json:"kind"`
}

// InputRequest asks the host to collect free-text input for a pending guard.
type InputRequest struct {
	Prompt string    `json:"prompt"`
	Kind   GuardKind `json:"kind"`
}

// Render is everything a host needs to present the session after a call.
type Render struct {
	SceneID string       `json:"scene_id"`
	Text    string       `json:"text"`
	Media   string       `json:"media,omitempty"`
	Choices []ChoiceView `json:"choices"`

	// Outcome and Message report the result of a guard resolution.
	Outcome Outcome `json:"outcome,omitempty"`
	Message string  `json:"message,omitempty"`

	// Input is set while a guard waits for an answer.
	Input *InputRequest `json:"input,omitempty"`

	// Animation is set when the host must play a sequence and then report completion.
	Animation *Animation `json:"animation,omitempty"`

	// Exit is set when the player asked to leave; the host confirms and ends the session.
	Exit bool `json:"exit,omitempty"`

	// Terminal is set when only exit choices remain.
	Terminal bool `json:"terminal,omitempty"`
}

// AwaitingInput reports whether the host must collect an answer.
func (r *Render) AwaitingInput() bool {
	return r != nil && r.Input != nil
}

// Hint tells the player how to pick an offered choice instead of answering.
func (in *InputRequest) Hint() string {
	if in != nil && in.Kind == GuardNumber {
		return "(Type your answer, or an option's name to pick it.)"
	}
	return "(Type your answer, or an option's number or name to pick it.)"
}

// ChoiceFor finds the offered choice named by input while a guard waits.
// Ids match exactly and labels ignore case. A 1-based position only picks a
// choice under a text guard; under a number guard digits are the answer.
// The returned key is what Choose expects.
func (r *Render) ChoiceFor(input string) (string, bool) {
	if r == nil {
		return "", false
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	key := func(c ChoiceView) string {
		if c.ID != "" {
			return c.ID
		}
		return c.Label
	}
	for _, c := range r.Choices {
		if c.ID != "" && c.ID == input {
			return key(c), true
		}
	}
	for _, c := range r.Choices {
		if strings.EqualFold(strings.TrimSpace(c.Label), input) {
			return key(c), true
		}
	}
	if r.Input != nil && r.Input.Kind == GuardNumber {
		return "", false
	}
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(r.Choices) {
		return key(r.Choices[idx-1]), true
	}
	return "", false
}
