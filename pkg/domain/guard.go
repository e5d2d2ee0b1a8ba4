package domain

// GuardKind selects how raw input is normalized and compared.
type GuardKind string

const (
	// GuardText compares trimmed, lowercased input against the accepted answers.
	GuardText GuardKind = "text"
	// GuardNumber accepts only ASCII decimal digits and compares numeric values.
	GuardNumber GuardKind = "number"
)

// Guard is a transition that only fires once the player supplies a matching answer.
// On mismatch the player stays on the scene that armed the guard.
type Guard struct {
	Kind   GuardKind `json:"kind" yaml:"kind" mapstructure:"kind"`
	Prompt string    `json:"prompt,omitempty" yaml:"prompt,omitempty" mapstructure:"prompt"`
	Media  string    `json:"media,omitempty" yaml:"media,omitempty" mapstructure:"media"`

	Answers []string `json:"answers" yaml:"answers" mapstructure:"answers"`

	Success        string `json:"success" yaml:"success" mapstructure:"success"`
	SuccessMessage string `json:"success_message,omitempty" yaml:"success_message,omitempty" mapstructure:"success_message"`
	FailureMessage string `json:"failure_message,omitempty" yaml:"failure_message,omitempty" mapstructure:"failure_message"`

	// Choices are shown while input is pending. Guarded choices are not allowed here.
	// When empty, the origin scene's choices stay on offer.
	Choices []Choice `json:"choices,omitempty" yaml:"choices,omitempty" mapstructure:"choices"`
}

// IsDecimal reports whether s is a non-empty run of ASCII digits.
// Signs, decimal points and non-ASCII digits are rejected.
func IsDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// EffectiveKind defaults to a text guard.
func (g Guard) EffectiveKind() GuardKind {
	if g.Kind == "" {
		return GuardText
	}
	return g.Kind
}
