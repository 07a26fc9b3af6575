package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

func place(t *testing.T, g *grid.Grid, x, y int, name string, bools map[string]bool, size float64) {
	t.Helper()
	it := item.New(catalog.Default(), name, "", bools, map[string]float64{"size": size})
	require.NoError(t, g.Set(it, y, x))
}

// controlFixture: one red star, visible to both viewpoints.
func controlFixture(t *testing.T) (*grid.Grid, *question.Question) {
	t.Helper()
	g := grid.MustNew(3, 3)
	place(t, g, 1, 1, "red_star", map[string]bool{"star": true, "red": true}, 1)
	place(t, g, 0, 2, "blue_circle", map[string]bool{"circle": true, "blue": true}, 2)
	q := &question.Question{TargetType: "star", Filter: map[string]bool{"star": true, "red": true}}
	return g, q
}

// testFixture: the participant sees a second, larger red star behind an
// occluded cell, so "the largest red star" disagrees across viewpoints.
func testFixture(t *testing.T) (*grid.Grid, *question.Question) {
	t.Helper()
	g := grid.MustNew(3, 3)
	place(t, g, 0, 0, "red_star_small", map[string]bool{"star": true, "red": true}, 1)
	place(t, g, 2, 2, "red_star_large", map[string]bool{"star": true, "red": true}, 3)
	require.NoError(t, g.SetOccluded(2, 2, true))
	q := &question.Question{
		TargetType:        "star",
		Filter:            map[string]bool{"star": true, "red": true},
		Rule:              question.Largest,
		SelectionProperty: "size",
		RuleKind:          question.KindSizeRelated,
	}
	return g, q
}

func TestNewComputesDirectorAnswer(t *testing.T) {
	g, q := testFixture(t)
	answer, err := q.FindTarget(g)
	require.NoError(t, err)

	s, err := New(g, q, answer, nil, question.KindSizeRelated, false)
	require.NoError(t, err)

	assert.True(t, s.Answer.Equal(question.NewCoordSet(question.Coord{X: 2, Y: 2})))
	assert.True(t, s.DirectorAnswer.Equal(question.NewCoordSet(question.Coord{X: 0, Y: 0})),
		"director only sees the small star, got %v", s.DirectorAnswer)
}

func TestNewRejectsEmptyAnswers(t *testing.T) {
	g, q := controlFixture(t)
	_, err := New(g, q, question.NewCoordSet(), nil, question.KindNone, false)
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))
}

func TestAmbiguous(t *testing.T) {
	g, q := controlFixture(t)
	answer, err := q.FindTarget(g)
	require.NoError(t, err)
	s, err := New(g, q, answer, nil, question.KindNone, false)
	require.NoError(t, err)

	ambiguous, err := s.Ambiguous()
	require.NoError(t, err)
	assert.False(t, ambiguous)

	tg, tq := testFixture(t)
	tAnswer, err := tq.FindTarget(tg)
	require.NoError(t, err)
	ts, err := New(tg, tq, tAnswer, nil, question.KindSizeRelated, false)
	require.NoError(t, err)

	ambiguous, err = ts.Ambiguous()
	require.NoError(t, err)
	assert.True(t, ambiguous)
}

func TestVerifyAnswer(t *testing.T) {
	g, q := controlFixture(t)
	answer, err := q.FindTarget(g)
	require.NoError(t, err)
	s, err := New(g, q, answer, nil, question.KindNone, false)
	require.NoError(t, err)

	ok, err := s.VerifyAnswer()
	require.NoError(t, err)
	assert.True(t, ok)

	// Tampering with the stored answer fails verification.
	s.Answer = question.NewCoordSet(question.Coord{X: 0, Y: 0})
	ok, err = s.VerifyAnswer()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestToRecord(t *testing.T) {
	g, q := testFixture(t)
	answer, err := q.FindTarget(g)
	require.NoError(t, err)
	s, err := New(g, q, answer, nil, question.KindSizeRelated, true)
	require.NoError(t, err)

	rec, err := s.ToRecord(7, TypeTest)
	require.NoError(t, err)

	assert.Equal(t, 7, rec.SampleID)
	assert.Equal(t, TypeTest, rec.SampleType)
	assert.Equal(t, "size_related", rec.SelectionRuleType)
	assert.True(t, rec.IsPhysics)
	assert.False(t, rec.IsReversed)

	assert.Equal(t, 3, rec.Grid.Width)
	assert.Len(t, rec.Grid.Items, 9, "one entry per cell")

	// Row-major flattening with positions as (x, y).
	assert.Equal(t, Position{X: 0, Y: 0}, rec.Grid.Items[0].Position)
	assert.Equal(t, Position{X: 2, Y: 0}, rec.Grid.Items[2].Position)
	assert.NotNil(t, rec.Grid.Items[0].Item)
	assert.Nil(t, rec.Grid.Items[1].Item)
	last := rec.Grid.Items[8]
	assert.True(t, last.IsBlocked)
	require.NotNil(t, last.Item)
	assert.Equal(t, "red_star_large", last.Item.Name)

	assert.Equal(t, [][2]int{{2, 2}}, rec.Answers.ParticipantCoordinates)
	assert.Equal(t, [][2]int{{0, 0}}, rec.Answers.DirectorCoordinates)
	assert.True(t, rec.Answers.IsAmbiguous)

	assert.Equal(t, QuestionStandard, rec.Question.Type)
	assert.Equal(t, "largest", rec.Question.SelectionRule)
	assert.Equal(t, "size", rec.Question.SelectionProperty)
	assert.Equal(t, "the largest red star from your point of view", rec.Question.NaturalLanguage)
}

func TestToRecordRelational(t *testing.T) {
	g := grid.MustNew(3, 1)
	place(t, g, 0, 0, "blue_car", map[string]bool{"car": true, "blue": true}, 2)
	place(t, g, 1, 0, "red_star", map[string]bool{"star": true, "red": true}, 1)
	q := &question.RelationalQuestion{
		Reference: map[string]bool{"car": true, "blue": true},
		Relation:  question.RightOf,
	}
	answer, err := q.FindTarget(g)
	require.NoError(t, err)
	s, err := New(g, q, answer, nil, question.KindSpatialDiff, false)
	require.NoError(t, err)

	rec, err := s.ToRecord(0, TypeControl)
	require.NoError(t, err)
	assert.Equal(t, QuestionRelational, rec.Question.Type)
	assert.Equal(t, "right_of", rec.Question.SpatialRelation)
	assert.Empty(t, rec.Question.TargetType)
	assert.Equal(t, map[string]bool{"car": true, "blue": true}, rec.Question.ReferenceCriteria)
}

func TestCoordinateListsSortedRowMajor(t *testing.T) {
	g := grid.MustNew(3, 3)
	place(t, g, 2, 0, "a", map[string]bool{"star": true, "red": true}, 1)
	place(t, g, 0, 1, "b", map[string]bool{"star": true, "red": true}, 1)
	place(t, g, 1, 0, "c", map[string]bool{"star": true, "red": true}, 1)
	q := &question.Question{TargetType: "star", Filter: map[string]bool{"star": true, "red": true}}
	answer, err := q.FindTarget(g)
	require.NoError(t, err)
	s, err := New(g, q, answer, nil, question.KindNone, false)
	require.NoError(t, err)

	rec, err := s.ToRecord(0, TypeControl)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 0}, {2, 0}, {0, 1}}, rec.Answers.ParticipantCoordinates)
}
