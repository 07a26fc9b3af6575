package gen

import (
	"sort"
	"strings"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

// combo is one candidate filter: a target type plus the criteria it came
// bundled with.
type combo struct {
	targetType string
	criteria   map[string]bool
}

// availableCombinations derives every useful filter actually realizable
// from the pool: for each item, its category-class properties crossed with
// its colors ({target, color}), each optionally extended by one more true
// property. Deduplicated in first-seen order so the list is deterministic
// for a given pool.
func (g *Generator) availableCombinations() []combo {
	var combos []combo
	seen := make(map[string]struct{})
	add := func(c combo) {
		key := comboKey(c.criteria)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		combos = append(combos, c)
	}

	for _, it := range g.pool {
		var targets, colors, others []string
		for _, prop := range g.cat.TargetTypes() {
			if it.Bool(prop) {
				targets = append(targets, prop)
			}
		}
		for _, prop := range g.cat.Colors() {
			if it.Bool(prop) {
				colors = append(colors, prop)
			}
		}
		for _, prop := range g.cat.BoolKeys() {
			if !it.Bool(prop) {
				continue
			}
			switch g.cat.Categorize(prop) {
			case catalog.CategoryClass, catalog.Color:
			default:
				others = append(others, prop)
			}
		}

		for _, target := range targets {
			for _, color := range colors {
				add(combo{targetType: target, criteria: map[string]bool{target: true, color: true}})
				for _, other := range others {
					add(combo{
						targetType: target,
						criteria:   map[string]bool{target: true, color: true, other: true},
					})
				}
			}
		}
	}
	return combos
}

func comboKey(criteria map[string]bool) string {
	keys := make([]string, 0, len(criteria))
	for k := range criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// constrainedQuestion selects a question satisfying the assignment: a
// pool-realizable combination matching the physics flag, a rule drawn
// uniformly from the kind's rule set, and a coin-flip reversal. Empty
// candidate lists are generation failures so the caller's retry loop (and
// eventually its budget) handles an unsuitable pool.
func (g *Generator) constrainedQuestion(a assignment) (*question.Question, error) {
	combos := g.availableCombinations()

	filtered := combos[:0:0]
	for _, c := range combos {
		if g.cat.HasPhysics(c.criteria) == a.physics {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		if a.physics {
			return nil, errors.NewGenerationErrorf("no physics property combinations available in item pool")
		}
		return nil, errors.NewGenerationErrorf("no non-physics property combinations available in item pool")
	}

	// A size rule is vacuous unless the matching items span multiple sizes.
	if a.kind == question.KindSizeRelated {
		withVariation := filtered[:0:0]
		for _, c := range filtered {
			sizes := make(map[float64]struct{})
			for _, it := range g.matching(c.criteria) {
				if v, ok := it.Scalar("size"); ok {
					sizes[v] = struct{}{}
				}
			}
			if len(sizes) > 1 {
				withVariation = append(withVariation, c)
			}
		}
		if len(withVariation) == 0 {
			return nil, errors.NewGenerationErrorf("not enough size variation in items for size-related question")
		}
		filtered = withVariation
	}

	selected := filtered[g.rng.Intn(len(filtered))]
	targetType := selected.targetType
	if targetType == "" {
		targetType = "item"
	}

	criteria := make(map[string]bool, len(selected.criteria))
	for k, v := range selected.criteria {
		criteria[k] = v
	}

	rules := question.RulesFor(a.kind)
	rule := rules[g.rng.Intn(len(rules))]
	selectionProperty := ""
	if rule.Scalar() {
		selectionProperty = "size"
	}

	return &question.Question{
		TargetType:        targetType,
		Filter:            criteria,
		Rule:              rule,
		SelectionProperty: selectionProperty,
		RuleKind:          a.kind,
		Reversed:          g.rng.Intn(2) == 1,
		Catalog:           g.cat,
	}, nil
}
