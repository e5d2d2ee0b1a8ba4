package domain

// ChoiceKind is the tag of a choice target.
type ChoiceKind string

const (
	ChoiceKindPlain   ChoiceKind = "plain"
	ChoiceKindGuarded ChoiceKind = "guarded"
	ChoiceKindExit    ChoiceKind = "exit"
	// ChoiceKindInvalid is reported for choices that declare zero or several targets.
	ChoiceKindInvalid ChoiceKind = "invalid"
)

// Choice is a labeled option offered by a scene.
// Exactly one of To, Guard or Exit must be set.
type Choice struct {
	// ID is a stable slug used by hosts and scripts (e.g. "solve-riddle").
	ID    string `json:"id,omitempty" yaml:"id,omitempty" mapstructure:"id"`
	Label string `json:"label" yaml:"label" mapstructure:"label"`

	To    string `json:"to,omitempty" yaml:"to,omitempty" mapstructure:"to"`
	Guard *Guard `json:"guard,omitempty" yaml:"guard,omitempty" mapstructure:"guard"`
	Exit  bool   `json:"exit,omitempty" yaml:"exit,omitempty" mapstructure:"exit"`
}

// Kind derives the target tag from the populated fields.
func (c Choice) Kind() ChoiceKind {
	set := 0
	kind := ChoiceKindInvalid
	if c.To != "" {
		set++
		kind = ChoiceKindPlain
	}
	if c.Guard != nil {
		set++
		kind = ChoiceKindGuarded
	}
	if c.Exit {
		set++
		kind = ChoiceKindExit
	}
	if set != 1 {
		return ChoiceKindInvalid
	}
	return kind
}

// View returns the presentation-facing projection of the choice.
func (c Choice) View() ChoiceView {
	return ChoiceView{ID: c.ID, Label: c.Label, Kind: c.Kind()}
}
