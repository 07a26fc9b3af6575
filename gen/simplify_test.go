package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

func placeItem(t *testing.T, g *grid.Grid, x, y int, name string, bools map[string]bool, size float64) {
	t.Helper()
	it := item.New(catalog.Default(), name, "", bools, map[string]float64{"size": size})
	require.NoError(t, g.Set(it, y, x))
}

func TestSimplifyDropsRedundantAdjective(t *testing.T) {
	g := testGenerator(t, 1)
	grd := grid.MustNew(3, 3)
	// Only one car on the board, so "red" adds nothing.
	placeItem(t, grd, 0, 0, "car_red", map[string]bool{"car": true, "red": true, "stackable": true}, 2)
	placeItem(t, grd, 2, 2, "book_green", map[string]bool{"book": true, "green": true}, 1)

	q := &question.Question{
		TargetType: "car",
		Filter:     map[string]bool{"car": true, "red": true, "stackable": true},
		RuleKind:   question.KindNone,
	}
	simplified := g.simplifyQuestion(q, grd, assignment{kind: question.KindNone, physics: true})

	assert.Equal(t, map[string]bool{"car": true, "stackable": true}, simplified.Filter,
		"red is redundant but the physics property must survive")

	answer, err := simplified.FindTarget(grd)
	require.NoError(t, err)
	original, err := q.FindTarget(grd)
	require.NoError(t, err)
	assert.True(t, answer.Equal(original), "simplification must preserve the answer set")
}

func TestSimplifyKeepsDiscriminatingAdjective(t *testing.T) {
	g := testGenerator(t, 1)
	grd := grid.MustNew(3, 3)
	placeItem(t, grd, 0, 0, "car_red", map[string]bool{"car": true, "red": true}, 2)
	placeItem(t, grd, 1, 1, "car_blue", map[string]bool{"car": true, "blue": true}, 2)

	q := &question.Question{
		TargetType: "car",
		Filter:     map[string]bool{"car": true, "red": true},
		RuleKind:   question.KindNone,
	}
	simplified := g.simplifyQuestion(q, grd, assignment{kind: question.KindNone, physics: false})

	assert.Equal(t, q.Filter, simplified.Filter, "dropping red would pull in the blue car")
}

func TestSimplifyNonPhysicsNeverKeepsPhysics(t *testing.T) {
	g := testGenerator(t, 1)
	grd := grid.MustNew(3, 3)
	// Both adjectives are individually redundant; only the non-physics one
	// may be the survivor on a non-physics question.
	placeItem(t, grd, 0, 0, "car_red", map[string]bool{"car": true, "red": true, "stackable": true}, 2)

	q := &question.Question{
		TargetType: "car",
		Filter:     map[string]bool{"car": true, "red": true, "stackable": true},
		RuleKind:   question.KindNone,
	}
	simplified := g.simplifyQuestion(q, grd, assignment{kind: question.KindNone, physics: false})

	assert.NotContains(t, simplified.Filter, "stackable")
	assert.Contains(t, simplified.Filter, "car")
}

func TestSimplifyUsesRestrictedViewWhenAmbiguous(t *testing.T) {
	g := testGenerator(t, 1)
	grd := grid.MustNew(3, 3)
	// The director sees only the small car; the large one is occluded, so
	// "largest" disagrees across viewpoints and simplification must judge
	// against the director's view.
	placeItem(t, grd, 0, 0, "car_red_small", map[string]bool{"car": true, "red": true}, 1)
	placeItem(t, grd, 2, 2, "car_red_large", map[string]bool{"car": true, "red": true}, 3)
	require.NoError(t, grd.SetOccluded(2, 2, true))

	q := &question.Question{
		TargetType:        "car",
		Filter:            map[string]bool{"car": true, "red": true},
		Rule:              question.Largest,
		SelectionProperty: "size",
		RuleKind:          question.KindSizeRelated,
	}
	simplified := g.simplifyQuestion(q, grd, assignment{kind: question.KindSizeRelated, physics: false})

	// Either way the answer sets must be preserved on the restricted view.
	view := grd.RestrictedView()
	original, err := q.FindTarget(view)
	require.NoError(t, err)
	got, err := simplified.FindTarget(view)
	require.NoError(t, err)
	assert.True(t, got.Equal(original))
}

func TestSimplifySingleCriterionUntouched(t *testing.T) {
	g := testGenerator(t, 1)
	grd := grid.MustNew(2, 2)
	placeItem(t, grd, 0, 0, "car_red", map[string]bool{"car": true, "red": true}, 2)

	q := &question.Question{
		TargetType: "car",
		Filter:     map[string]bool{"car": true},
		RuleKind:   question.KindNone,
	}
	simplified := g.simplifyQuestion(q, grd, assignment{kind: question.KindNone, physics: false})
	assert.Equal(t, q.Filter, simplified.Filter)
}
