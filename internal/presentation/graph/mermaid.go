package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/derelict/pkg/domain"
)

const exitNodeID = "__exit"

// GraphOverlay contains session data to visualize on the graph.
type GraphOverlay struct {
	VisitedScenes []string
	CurrentScene  string
}

// OverlayFromState builds an overlay from a session state.
func OverlayFromState(state domain.State) *GraphOverlay {
	return &GraphOverlay{
		VisitedScenes: state.History,
		CurrentScene:  state.CurrentSceneID,
	}
}

// GenerateMermaid produces a Mermaid flowchart from the scenes of a story.
// It applies semantic styling:
// - Entry: ((Circle))
// - Scene guard (asks for input on entry): [/Parallelogram/]
// - Animated exit: [[Subroutine]]
// - Inventory: [(Cylinder)]
// - Default: [Rectangle]
//
// Plain choices are solid arrows, guarded choices are thick arrows to the
// guard's success scene and animations are dotted. Exit choices all point at
// a single Exit node.
func GenerateMermaid(entry string, scenes []domain.Scene, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	hasExit := false
	for _, scene := range scenes {
		safeID := sanitizeMermaidID(scene.ID)

		opener, closer := "[", "]"
		switch {
		case scene.ID == entry:
			opener, closer = "((", "))"
		case scene.Animation != nil:
			opener, closer = "[[", "]]"
		case scene.Guard != nil:
			opener, closer = "[/", "/]"
		case scene.EffectiveKind() == domain.SceneKindInventory:
			opener, closer = "[(", ")]"
		}

		label := scene.ID
		if scene.Effect != nil {
			label = fmt.Sprintf("%s <br/> + %s", scene.ID, escapeLabel(scene.Effect.Grant))
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label, closer)

		if writeChoices(&sb, safeID, scene.Choices) {
			hasExit = true
		}

		if g := scene.Guard; g != nil {
			fmt.Fprintf(&sb, "    %s == \"%s\" ==> %s\n", safeID, guardLabel(*g), sanitizeMermaidID(g.Success))
			if writeChoices(&sb, safeID, g.Choices) {
				hasExit = true
			}
		}

		if a := scene.Animation; a != nil {
			fmt.Fprintf(&sb, "    %s -. \"animation\" .-> %s\n", safeID, sanitizeMermaidID(a.Next))
		}
	}

	if hasExit {
		fmt.Fprintf(&sb, "    %s(((\"Exit\")))\n", exitNodeID)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high contrast regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedScenes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentScene != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentScene))
		}
	}

	return sb.String()
}

// writeChoices reports whether an exit choice was found.
func writeChoices(sb *strings.Builder, from string, choices []domain.Choice) bool {
	hasExit := false
	for _, c := range choices {
		label := escapeLabel(c.Label)
		switch c.Kind() {
		case domain.ChoiceKindPlain:
			fmt.Fprintf(sb, "    %s -- \"%s\" --> %s\n", from, label, sanitizeMermaidID(c.To))
		case domain.ChoiceKindGuarded:
			fmt.Fprintf(sb, "    %s == \"%s <br/> %s\" ==> %s\n", from, label, guardLabel(*c.Guard), sanitizeMermaidID(c.Guard.Success))
			for _, esc := range c.Guard.Choices {
				if esc.Kind() == domain.ChoiceKindPlain {
					fmt.Fprintf(sb, "    %s -. \"%s\" .-> %s\n", from, escapeLabel(esc.Label), sanitizeMermaidID(esc.To))
				}
			}
		case domain.ChoiceKindExit:
			hasExit = true
			fmt.Fprintf(sb, "    %s -- \"%s\" --> %s\n", from, label, exitNodeID)
		}
	}
	return hasExit
}

func guardLabel(g domain.Guard) string {
	return fmt.Sprintf("%s: %s", g.EffectiveKind(), escapeLabel(strings.Join(g.Answers, " | ")))
}

// escapeLabel replaces double quotes, which would end a Mermaid label.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
