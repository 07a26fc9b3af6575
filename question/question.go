// Package question models the questions put to the participant: a boolean
// filter over item properties ("red star"), an optional extremal selection
// rule ("the largest red star"), and relational questions anchored on a
// reference object ("the object to the right of the blue car"). Evaluation
// is exact-match over whichever grid view the asker can see, so the same
// question yields different answers for the participant and the director.
package question

import (
	"math"
	"sort"
	"strings"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
)

const questionPrefix = "Please select "

// Question asks for items matching Filter, optionally reduced to the
// extrema under Rule. Reversed marks a question phrased from the
// director's perspective, which flips left and right in language.
type Question struct {
	TargetType        string
	Filter            map[string]bool
	Rule              Rule
	SelectionProperty string
	RuleKind          RuleKind
	Reversed          bool

	// Catalog supplies adjective order and wording; nil falls back to the
	// built-in defaults.
	Catalog *catalog.Catalog
}

func (q *Question) catalog() *catalog.Catalog {
	if q.Catalog != nil {
		return q.Catalog
	}
	return catalog.Default()
}

// matchesFilter applies the exact-match semantics: every criterion must
// equal the item's value, with missing boolean properties reading false.
func matchesFilter(it *item.Item, criteria map[string]bool) bool {
	for prop, want := range criteria {
		if it.Bool(prop) != want {
			return false
		}
	}
	return true
}

// FindTarget evaluates the question against g and returns every cell a
// correct answer may point at. Ties under the selection rule are kept, so
// the result can hold more than one cell. No item matching the filter is a
// generation failure, not an invariant breach.
func (q *Question) FindTarget(g *grid.Grid) (CoordSet, error) {
	var matches []grid.Placed
	for _, p := range g.Items() {
		if matchesFilter(p.Item, q.Filter) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, errors.Wrapf(errors.ErrNoMatch, "no items matching criteria %v", q.Filter)
	}

	if q.Rule == RuleNone {
		out := make(CoordSet, len(matches))
		for _, p := range matches {
			out.Add(Coord{X: p.Col, Y: p.Row})
		}
		return out, nil
	}

	// Reduce to the extreme value, keeping every tied cell. Missing scalars
	// read +Inf for smallest and -Inf for largest so they never win.
	key := func(p grid.Placed) float64 {
		switch q.Rule {
		case Smallest:
			if v, ok := p.Item.Scalar(q.SelectionProperty); ok {
				return v
			}
			return math.Inf(1)
		case Largest:
			if v, ok := p.Item.Scalar(q.SelectionProperty); ok {
				return v
			}
			return math.Inf(-1)
		case Leftmost, Rightmost:
			return float64(p.Col)
		case Topmost, Bottommost:
			return float64(p.Row)
		}
		return 0
	}

	var better func(a, b float64) bool
	switch q.Rule {
	case Smallest, Leftmost, Topmost:
		better = func(a, b float64) bool { return a < b }
	case Largest, Rightmost, Bottommost:
		better = func(a, b float64) bool { return a > b }
	default:
		return nil, errors.Wrapf(errors.ErrUnknownRule, "selection rule %d", int(q.Rule))
	}

	best := key(matches[0])
	for _, p := range matches[1:] {
		if v := key(p); better(v, best) {
			best = v
		}
	}
	out := make(CoordSet)
	for _, p := range matches {
		if key(p) == best {
			out.Add(Coord{X: p.Col, Y: p.Row})
		}
	}
	return out, nil
}

// NaturalLanguage renders the question as a minimal noun phrase, e.g.
// "the largest red star from your point of view". Adjectives come from the
// true filter criteria, excluding the target type and every other
// category-class property, in English order (size, shape, color, material,
// quality). Size adjectives drop under smallest/largest since the rule
// already says it, and reversed questions swap leftmost and rightmost so
// the words stay in the participant's frame.
func (q *Question) NaturalLanguage(withSuffix bool) string {
	cat := q.catalog()

	byCategory := make(map[catalog.Category][]string)
	for _, prop := range sortedTrueKeys(cat, q.Filter) {
		if prop == q.TargetType || cat.IsCategoryClass(prop) {
			continue
		}
		c := cat.Categorize(prop)
		byCategory[c] = append(byCategory[c], cat.Adjective(prop))
	}

	parts := []string{"the"}
	if q.Rule != RuleNone {
		rule := q.Rule
		if q.Reversed {
			switch rule {
			case Leftmost:
				rule = Rightmost
			case Rightmost:
				rule = Leftmost
			}
		}
		parts = append(parts, rule.String())
		if q.Rule.Scalar() {
			delete(byCategory, catalog.Size)
		}
	}
	for _, c := range catalog.AdjectiveOrder {
		parts = append(parts, byCategory[c]...)
	}
	parts = append(parts, q.TargetType)

	return joinWithSuffix(parts, withSuffix, q.Reversed)
}

// FullQuestion returns the phrase as presented to the participant.
func (q *Question) FullQuestion() string {
	return questionPrefix + q.NaturalLanguage(true)
}

// IsReversed reports whether the question is phrased from the director's
// perspective.
func (q *Question) IsReversed() bool {
	return q.Reversed
}

// sortedTrueKeys returns the true-valued criteria in a stable order:
// grouped by the catalog's per-category property listing, unknown
// properties last alphabetically.
func sortedTrueKeys(cat *catalog.Catalog, criteria map[string]bool) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, c := range []catalog.Category{
		catalog.Size, catalog.Shape, catalog.Color,
		catalog.Material, catalog.CategoryClass, catalog.Quality,
	} {
		for _, prop := range cat.Properties(c) {
			if criteria[prop] {
				out = append(out, prop)
				seen[prop] = struct{}{}
			}
		}
	}
	var unknown []string
	for prop, v := range criteria {
		if _, ok := seen[prop]; v && !ok {
			unknown = append(unknown, prop)
		}
	}
	sort.Strings(unknown)
	return append(out, unknown...)
}

func joinWithSuffix(parts []string, withSuffix, reversed bool) string {
	result := strings.Join(parts, " ")
	if withSuffix {
		if reversed {
			result += " from my point of view"
		} else {
			result += " from your point of view"
		}
	}
	return result
}
