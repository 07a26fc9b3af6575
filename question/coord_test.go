package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordSetSortedRowMajor(t *testing.T) {
	s := NewCoordSet(Coord{2, 1}, Coord{0, 0}, Coord{1, 0}, Coord{0, 1})
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {0, 1}, {2, 1}}, s.Sorted())
	assert.Equal(t, "{(0,0) (1,0) (0,1) (2,1)}", s.String())
}

func TestCoordSetEqual(t *testing.T) {
	a := NewCoordSet(Coord{1, 1}, Coord{2, 2})
	b := NewCoordSet(Coord{2, 2}, Coord{1, 1})
	c := NewCoordSet(Coord{1, 1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))
}

func TestCoordSetUnionAndClone(t *testing.T) {
	a := NewCoordSet(Coord{0, 0})
	b := a.Clone()
	b.Union(NewCoordSet(Coord{1, 1}))

	assert.Len(t, a, 1)
	assert.Len(t, b, 2)
	assert.True(t, b.Contains(Coord{1, 1}))
}

func TestRulesFor(t *testing.T) {
	assert.Equal(t, []Rule{Smallest, Largest}, RulesFor(KindSizeRelated))
	assert.Equal(t, []Rule{Topmost, Bottommost}, RulesFor(KindSpatialSame))
	assert.Equal(t, []Rule{Leftmost, Rightmost}, RulesFor(KindSpatialDiff))
	assert.Equal(t, []Rule{RuleNone}, RulesFor(KindNone))
}

func TestParseRuleKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseRuleKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseRuleKind("sideways")
	assert.Error(t, err)
}
