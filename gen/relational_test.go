package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

func TestReferencePairs(t *testing.T) {
	g := testGenerator(t, 1)
	pairs := g.referencePairs()

	assert.Contains(t, pairs, [2]string{"car", "red"})
	assert.Contains(t, pairs, [2]string{"shoe", "blue"})
	assert.Contains(t, pairs, [2]string{"book", "green"})
	// The circle item carries no target type, so it never anchors a
	// relational question.
	assert.Len(t, pairs, 3)
}

func TestGenerateRelationalControlSamples(t *testing.T) {
	g := testGenerator(t, 7)
	samples, err := g.GenerateRelationalControlSamples(20, 4, 4, DefaultParams())
	require.NoError(t, err)
	require.Len(t, samples, 20)

	for i, s := range samples {
		assert.Equal(t, question.KindSpatialDiff, s.RuleKind, "sample %d", i)
		assert.False(t, s.IsPhysics, "sample %d", i)

		ambiguous, err := s.Ambiguous()
		require.NoError(t, err, "sample %d", i)
		assert.False(t, ambiguous, "sample %d", i)

		ok, err := s.VerifyAnswer()
		require.NoError(t, err, "sample %d", i)
		assert.True(t, ok, "sample %d", i)
	}
}

func TestGenerateRelationalTestSamples(t *testing.T) {
	g := testGenerator(t, 11)
	samples, err := g.GenerateRelationalTestSamples(20, 4, 4, DefaultParams())
	require.NoError(t, err)
	require.Len(t, samples, 20)

	for i, s := range samples {
		assert.Equal(t, question.KindSpatialDiff, s.RuleKind, "sample %d", i)
		assert.False(t, s.IsPhysics, "sample %d", i)

		ambiguous, err := s.Ambiguous()
		require.NoError(t, err, "sample %d", i)
		assert.True(t, ambiguous, "sample %d", i)

		ok, err := s.VerifyAnswer()
		require.NoError(t, err, "sample %d", i)
		assert.True(t, ok, "sample %d", i)
	}
}

func TestGenerateRelationalRejectsTinyGrid(t *testing.T) {
	g := testGenerator(t, 3)
	_, err := g.GenerateRelationalControlSamples(1, 1, 1, DefaultParams())
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err), "a 1x1 grid cannot hold a reference and a target")
}

func TestReferenceCellsLeaveRoom(t *testing.T) {
	// A right-of reference must not sit in the rightmost column.
	for _, c := range referenceCells(question.RightOf, 3, 3, 1) {
		assert.Less(t, c.X, 2, "cell %v", c)
	}
	// With two cells of space it must stay in the leftmost column.
	for _, c := range referenceCells(question.RightOf, 3, 3, 2) {
		assert.Equal(t, 0, c.X, "cell %v", c)
	}
	assert.Empty(t, referenceCells(question.Above, 3, 1, 1))
}

func TestRelationCellsStayOnAxis(t *testing.T) {
	ref := question.Coord{X: 1, Y: 1}

	cells := relationCells(question.Below, ref, 3, 3)
	require.Len(t, cells, 1)
	assert.Equal(t, question.Coord{X: 1, Y: 2}, cells[0])

	cells = relationCells(question.LeftOf, ref, 3, 3)
	require.Len(t, cells, 1)
	assert.Equal(t, question.Coord{X: 0, Y: 1}, cells[0])
}
