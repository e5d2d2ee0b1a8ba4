package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/derelict/pkg/domain"
)

// ValidationError aggregates every problem found while building a graph.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid scene graph: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid scene graph: %d problems:\n- %s", len(e.Problems), strings.Join(e.Problems, "\n- "))
}

func (g *Graph) validate() []string {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if g.entry == "" {
		report("entry scene is not set")
	} else if !g.Has(g.entry) {
		report("entry scene %q is not registered", g.entry)
	}

	for _, id := range g.order {
		s := g.scenes[id]

		switch s.EffectiveKind() {
		case domain.SceneKindNarrative, domain.SceneKindInventory:
		default:
			report("scene %q: unknown kind %q", id, s.Kind)
		}

		g.validateChoices(id, s.Choices, true, report)

		if s.Guard != nil {
			g.validateGuard(id+" guard", *s.Guard, report)
		}

		if s.Effect != nil && strings.TrimSpace(s.Effect.Grant) == "" {
			report("scene %q: effect grants no item", id)
		}

		if s.Animation != nil {
			if !g.Has(s.Animation.Next) {
				report("scene %q: animation leads to unknown scene %q", id, s.Animation.Next)
			}
			if len(s.Choices) > 0 || s.Guard != nil {
				report("scene %q: animated scenes cannot offer choices or a guard", id)
			}
		}
	}
	return problems
}

func (g *Graph) validateChoices(where string, choices []domain.Choice, allowGuards bool, report func(string, ...any)) {
	ids := map[string]bool{}
	for i, c := range choices {
		name := c.ID
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if strings.TrimSpace(c.Label) == "" {
			report("scene %q: choice %s has no label", where, name)
		}
		if c.ID != "" {
			if ids[c.ID] {
				report("scene %q: duplicate choice id %q", where, c.ID)
			}
			ids[c.ID] = true
		}

		switch c.Kind() {
		case domain.ChoiceKindPlain:
			if !g.Has(c.To) {
				report("scene %q: choice %s leads to unknown scene %q", where, name, c.To)
			}
		case domain.ChoiceKindGuarded:
			if !allowGuards {
				report("scene %q: choice %s cannot be guarded here", where, name)
				continue
			}
			g.validateGuard(fmt.Sprintf("%s choice %s", where, name), *c.Guard, report)
		case domain.ChoiceKindExit:
		default:
			report("scene %q: choice %s must have exactly one of to, guard or exit", where, name)
		}
	}
}

func (g *Graph) validateGuard(where string, guard domain.Guard, report func(string, ...any)) {
	kind := guard.EffectiveKind()
	if kind != domain.GuardText && kind != domain.GuardNumber {
		report("%s: unknown guard kind %q", where, guard.Kind)
	}

	accepted := 0
	for _, answer := range guard.Answers {
		trimmed := strings.TrimSpace(answer)
		if trimmed == "" {
			continue
		}
		if kind == domain.GuardNumber && !domain.IsDecimal(trimmed) {
			report("%s: numeric answer %q is not a decimal number", where, answer)
			continue
		}
		if kind == domain.GuardNumber {
			if _, err := strconv.ParseUint(trimmed, 10, 64); err != nil {
				report("%s: numeric answer %q is out of range", where, answer)
				continue
			}
		}
		accepted++
	}
	if accepted == 0 {
		report("%s: guard accepts no answers", where)
	}

	if !g.Has(guard.Success) {
		report("%s: success leads to unknown scene %q", where, guard.Success)
	}

	g.validateChoices(where, guard.Choices, false, report)
}
