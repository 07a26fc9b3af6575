package question

import (
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
)

// RelationalQuestion asks for the objects standing in a spatial relation
// to a reference object, e.g. "the object to the right of the blue car".
// Relations hold strictly within the reference's row or column.
type RelationalQuestion struct {
	Reference map[string]bool
	Relation  Relation

	// Target restricts which related objects count; nil accepts any object.
	Target   map[string]bool
	Reversed bool

	Catalog *catalog.Catalog
}

func (q *RelationalQuestion) catalog() *catalog.Catalog {
	if q.Catalog != nil {
		return q.Catalog
	}
	return catalog.Default()
}

// FindTarget returns every occupied cell in the requested relation to any
// reference match. A grid with no reference object is a generation
// failure; ambiguity from multiple references is legitimate and the
// answers union.
func (q *RelationalQuestion) FindTarget(g *grid.Grid) (CoordSet, error) {
	refs := make([]Coord, 0, 1)
	for _, p := range g.Items() {
		if matchesFilter(p.Item, q.Reference) {
			refs = append(refs, Coord{X: p.Col, Y: p.Row})
		}
	}
	if len(refs) == 0 {
		return nil, errors.Wrapf(errors.ErrNoMatch, "no reference objects matching criteria %v", q.Reference)
	}

	out := make(CoordSet)
	for _, ref := range refs {
		for _, p := range g.Items() {
			pos := Coord{X: p.Col, Y: p.Row}
			if pos == ref || !q.Relation.holds(pos, ref) {
				continue
			}
			if q.Target != nil && !matchesFilter(p.Item, q.Target) {
				continue
			}
			out.Add(pos)
		}
	}
	return out, nil
}

// NaturalLanguage renders e.g. "the object to the right of the blue car
// from your point of view". The reference noun is its shape or
// category-class property, falling back to "object".
func (q *RelationalQuestion) NaturalLanguage(withSuffix bool) string {
	cat := q.catalog()

	targetType := ""
	var adjectives []string
	for _, prop := range sortedTrueKeys(cat, q.Reference) {
		switch cat.Categorize(prop) {
		case catalog.Shape, catalog.CategoryClass:
			if targetType == "" {
				targetType = prop
			}
		default:
			adjectives = append(adjectives, cat.Adjective(prop))
		}
	}
	if targetType == "" {
		targetType = "object"
	}

	parts := append([]string{"the", "object", q.Relation.Phrase(), "the"}, adjectives...)
	parts = append(parts, targetType)
	return joinWithSuffix(parts, withSuffix, q.Reversed)
}

// FullQuestion returns the phrase as presented to the participant.
func (q *RelationalQuestion) FullQuestion() string {
	return questionPrefix + q.NaturalLanguage(true)
}

// IsReversed reports whether the question is phrased from the director's
// perspective.
func (q *RelationalQuestion) IsReversed() bool {
	return q.Reversed
}
