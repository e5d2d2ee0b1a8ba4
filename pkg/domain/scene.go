package domain

// SceneKind controls how the narrative of a scene is produced.
const (
	// SceneKindNarrative renders the scene's own text (plus any entry effect suffix).
	SceneKindNarrative = "narrative"
	// SceneKindInventory renders the player's inventory report instead of static text.
	SceneKindInventory = "inventory"
)

// Scene represents a node in the narrative graph.
type Scene struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" mapstructure:"kind"`

	// Text is the base narrative. Entry effects append to it.
	Text string `json:"text" yaml:"text" mapstructure:"text"`

	// Media is an opaque reference resolved by the host (e.g. "spaceship.png").
	Media string `json:"media,omitempty" yaml:"media,omitempty" mapstructure:"media"`

	// Choices are offered in declaration order.
	Choices []Choice `json:"choices,omitempty" yaml:"choices,omitempty" mapstructure:"choices"`

	// Effect is applied every time the scene is entered. It must be idempotent.
	Effect *Effect `json:"effect,omitempty" yaml:"effect,omitempty" mapstructure:"effect"`

	// Guard is armed as soon as the scene is entered, without a choice.
	Guard *Guard `json:"guard,omitempty" yaml:"guard,omitempty" mapstructure:"guard"`

	// Animation marks the scene as an animated exit.
	Animation *Animation `json:"animation,omitempty" yaml:"animation,omitempty" mapstructure:"animation"`
}

// EffectiveKind returns the scene kind, defaulting to narrative.
func (s Scene) EffectiveKind() string {
	if s.Kind == "" {
		return SceneKindNarrative
	}
	return s.Kind
}

// IsTerminal reports whether the scene offers no way forward other than exiting.
func (s Scene) IsTerminal() bool {
	if s.Animation != nil || s.Guard != nil {
		return false
	}
	for _, c := range s.Choices {
		if c.Kind() != ChoiceKindExit {
			return false
		}
	}
	return true
}

// Effect is a state mutation applied on scene entry.
type Effect struct {
	// Grant adds the named item to the inventory unless already held.
	Grant string `json:"grant" yaml:"grant" mapstructure:"grant"`

	// OnGrant is appended to the narrative when the item is newly added.
	OnGrant string `json:"on_grant,omitempty" yaml:"on_grant,omitempty" mapstructure:"on_grant"`

	// OnHeld is appended when the item was already in the inventory.
	OnHeld string `json:"on_held,omitempty" yaml:"on_held,omitempty" mapstructure:"on_held"`
}

// Animation describes a timed visual sequence played by the host.
// The engine only knows which scene follows once the host reports completion.
type Animation struct {
	Media string `json:"media,omitempty" yaml:"media,omitempty" mapstructure:"media"`
	Next  string `json:"next" yaml:"next" mapstructure:"next"`
}

// Story is a complete scene set with its entry point, as produced by loaders.
type Story struct {
	Title  string  `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Entry  string  `json:"entry" yaml:"entry" mapstructure:"entry"`
	Scenes []Scene `json:"scenes" yaml:"scenes" mapstructure:"scenes"`
}
