package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
)

func place(t *testing.T, g *grid.Grid, x, y int, name string, bools map[string]bool, size float64) {
	t.Helper()
	it := item.New(catalog.Default(), name, "", bools, map[string]float64{"size": size})
	require.NoError(t, g.Set(it, y, x))
}

// fixtureGrid builds the 3x3 board shared by the selection-rule tests:
//
//	red star 1    blue circle 3  blue star 1
//	red circle 2  .              red car 1
//	blue star 2   red star 1     .
func fixtureGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.MustNew(3, 3)
	place(t, g, 0, 0, "red_star_1", map[string]bool{"star": true, "red": true}, 1)
	place(t, g, 1, 0, "blue_circle_3", map[string]bool{"circle": true, "blue": true}, 3)
	place(t, g, 2, 0, "blue_star_1", map[string]bool{"star": true, "blue": true}, 1)
	place(t, g, 0, 1, "red_circle_2", map[string]bool{"circle": true, "red": true}, 2)
	place(t, g, 2, 1, "red_car_1", map[string]bool{"car": true, "red": true}, 1)
	place(t, g, 0, 2, "blue_star_2", map[string]bool{"star": true, "blue": true}, 2)
	place(t, g, 1, 2, "red_star_1b", map[string]bool{"star": true, "red": true}, 1)
	return g
}

func TestFindTargetLeftmostKeepsTies(t *testing.T) {
	g := fixtureGrid(t)
	q := &Question{
		TargetType: "star",
		Filter:     map[string]bool{"star": true},
		Rule:       Leftmost,
		RuleKind:   KindSpatialDiff,
	}
	got, err := q.FindTarget(g)
	require.NoError(t, err)
	assert.True(t, got.Equal(NewCoordSet(Coord{0, 0}, Coord{0, 2})), "got %v", got)
}

func TestFindTargetTopmostWithCompoundFilter(t *testing.T) {
	g := fixtureGrid(t)
	q := &Question{
		TargetType: "star",
		Filter:     map[string]bool{"star": true, "blue": true},
		Rule:       Topmost,
		RuleKind:   KindSpatialSame,
	}
	got, err := q.FindTarget(g)
	require.NoError(t, err)
	assert.True(t, got.Equal(NewCoordSet(Coord{2, 0})), "got %v", got)
}

func TestFindTargetNoMatches(t *testing.T) {
	g := fixtureGrid(t)
	q := &Question{TargetType: "item", Filter: map[string]bool{"triangle": true}}
	_, err := q.FindTarget(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoMatch)
	assert.True(t, errors.IsGenerationError(err))
}

func TestFindTargetUnknownRule(t *testing.T) {
	g := fixtureGrid(t)
	q := &Question{TargetType: "star", Filter: map[string]bool{"star": true}, Rule: Rule(99)}
	_, err := q.FindTarget(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownRule)
}

func TestFindTargetRuleNoneReturnsAllMatches(t *testing.T) {
	g := fixtureGrid(t)
	q := &Question{TargetType: "star", Filter: map[string]bool{"star": true, "red": true}}
	got, err := q.FindTarget(g)
	require.NoError(t, err)
	assert.True(t, got.Equal(NewCoordSet(Coord{0, 0}, Coord{1, 2})), "got %v", got)
}

func TestFindTargetScalarRules(t *testing.T) {
	g := fixtureGrid(t)

	q := &Question{
		TargetType:        "star",
		Filter:            map[string]bool{"star": true},
		Rule:              Smallest,
		SelectionProperty: "size",
		RuleKind:          KindSizeRelated,
	}
	got, err := q.FindTarget(g)
	require.NoError(t, err)
	assert.True(t, got.Equal(NewCoordSet(Coord{0, 0}, Coord{2, 0}, Coord{1, 2})),
		"smallest keeps all size-1 stars, got %v", got)

	q.Rule = Largest
	got, err = q.FindTarget(g)
	require.NoError(t, err)
	assert.True(t, got.Equal(NewCoordSet(Coord{0, 2})), "got %v", got)
}

func TestFindTargetMissingScalarNeverWins(t *testing.T) {
	cat := catalog.Default()
	g := grid.MustNew(2, 1)
	withSize := item.New(cat, "sized", "", map[string]bool{"star": true}, map[string]float64{"size": 3})
	require.NoError(t, g.Set(withSize, 0, 0))
	// Strip the scalar so the lookup genuinely misses.
	noSize := item.New(cat, "unsized", "", map[string]bool{"star": true}, nil)
	delete(noSize.Scalars, "size")
	require.NoError(t, g.Set(noSize, 0, 1))

	q := &Question{
		TargetType:        "star",
		Filter:            map[string]bool{"star": true},
		Rule:              Smallest,
		SelectionProperty: "size",
	}
	got, err := q.FindTarget(g)
	require.NoError(t, err)
	assert.True(t, got.Equal(NewCoordSet(Coord{0, 0})), "missing scalar reads +Inf under smallest, got %v", got)

	q.Rule = Largest
	got, err = q.FindTarget(g)
	require.NoError(t, err)
	assert.True(t, got.Equal(NewCoordSet(Coord{0, 0})), "missing scalar reads -Inf under largest, got %v", got)
}

func TestFindTargetUsesGivenView(t *testing.T) {
	// The same question answers differently over the restricted view.
	g := fixtureGrid(t)
	require.NoError(t, g.SetOccluded(2, 1, true)) // hide red_star_1b at (1,2)

	q := &Question{TargetType: "star", Filter: map[string]bool{"star": true, "red": true}}

	full, err := q.FindTarget(g)
	require.NoError(t, err)
	restricted, err := q.FindTarget(g.RestrictedView())
	require.NoError(t, err)

	assert.False(t, full.Equal(restricted))
	assert.True(t, restricted.Equal(NewCoordSet(Coord{0, 0})), "got %v", restricted)
}

func TestNaturalLanguage(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{
			name: "plain filter",
			q:    Question{TargetType: "star", Filter: map[string]bool{"star": true, "red": true}},
			want: "the red star from your point of view",
		},
		{
			name: "adjective order size before color",
			q:    Question{TargetType: "circle", Filter: map[string]bool{"circle": true, "blue": true, "large": true}},
			want: "the large blue circle from your point of view",
		},
		{
			name: "size adjectives suppressed under scalar rule",
			q: Question{TargetType: "star", Filter: map[string]bool{"star": true, "small": true, "red": true},
				Rule: Largest, SelectionProperty: "size", RuleKind: KindSizeRelated},
			want: "the largest red star from your point of view",
		},
		{
			name: "reversed flips leftmost and suffix",
			q: Question{TargetType: "car", Filter: map[string]bool{"car": true},
				Rule: Leftmost, RuleKind: KindSpatialDiff, Reversed: true},
			want: "the rightmost car from my point of view",
		},
		{
			name: "reversed leaves vertical rules alone",
			q: Question{TargetType: "car", Filter: map[string]bool{"car": true},
				Rule: Topmost, RuleKind: KindSpatialSame, Reversed: true},
			want: "the topmost car from my point of view",
		},
		{
			name: "quality adjective uses the catalog wording",
			q:    Question{TargetType: "item", Filter: map[string]bool{"holds_water": true}},
			want: "the water container item from your point of view",
		},
		{
			name: "category-class properties never become adjectives",
			q:    Question{TargetType: "car", Filter: map[string]bool{"car": true, "shoe": true, "red": true}},
			want: "the red car from your point of view",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.q.NaturalLanguage(true))
		})
	}
}

func TestFullQuestionPrefix(t *testing.T) {
	q := Question{TargetType: "star", Filter: map[string]bool{"star": true, "red": true}}
	assert.Equal(t, "Please select the red star from your point of view", q.FullQuestion())
}

func TestNaturalLanguageWithoutSuffix(t *testing.T) {
	q := Question{TargetType: "star", Filter: map[string]bool{"star": true, "blue": true}}
	assert.Equal(t, "the blue star", q.NaturalLanguage(false))
}
