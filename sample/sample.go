// Package sample pairs a grid with a question and the answer sets of both
// viewpoints. A control sample answers identically for participant and
// director; a test sample is engineered so the occluded cells change the
// director's answer.
package sample

import (
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

// Questioner is the evaluation surface shared by standard and relational
// questions.
type Questioner interface {
	FindTarget(*grid.Grid) (question.CoordSet, error)
	NaturalLanguage(withSuffix bool) string
	FullQuestion() string
	IsReversed() bool
}

// Sample is one committed task instance.
type Sample struct {
	Grid     *grid.Grid
	Question Questioner

	// Answer is the participant's correct cells (full grid); DirectorAnswer
	// is the director's (restricted view).
	Answer         question.CoordSet
	DirectorAnswer question.CoordSet

	RuleKind   question.RuleKind
	IsPhysics  bool
	IsReversed bool
}

// New builds a sample, computing the director's answer from the restricted
// view when directorAnswer is nil. Both answer sets must be non-empty.
func New(g *grid.Grid, q Questioner, answer, directorAnswer question.CoordSet,
	kind question.RuleKind, isPhysics bool) (*Sample, error) {
	if directorAnswer == nil {
		var err error
		directorAnswer, err = q.FindTarget(g.RestrictedView())
		if err != nil {
			return nil, errors.Wrap(err, "computing director answer")
		}
	}
	if len(answer) == 0 || len(directorAnswer) == 0 {
		return nil, errors.NewInvariantErrorf(
			"sample answer sets must be non-empty: participant=%d director=%d",
			len(answer), len(directorAnswer))
	}
	return &Sample{
		Grid:           g,
		Question:       q,
		Answer:         answer,
		DirectorAnswer: directorAnswer,
		RuleKind:       kind,
		IsPhysics:      isPhysics,
		IsReversed:     q.IsReversed(),
	}, nil
}

// Ambiguous recomputes both viewpoints and reports whether they disagree.
// This is the stored control/test distinction re-derived from the grid
// itself rather than trusted from the cached answer sets.
func (s *Sample) Ambiguous() (bool, error) {
	participant, err := s.Question.FindTarget(s.Grid)
	if err != nil {
		return false, errors.Wrap(err, "recomputing participant answer")
	}
	director, err := s.Question.FindTarget(s.Grid.RestrictedView())
	if err != nil {
		return false, errors.Wrap(err, "recomputing director answer")
	}
	return !participant.Equal(director), nil
}

// VerifyAnswer re-evaluates the question on the full grid and reports
// whether the stored participant answer still holds.
func (s *Sample) VerifyAnswer() (bool, error) {
	expected, err := s.Question.FindTarget(s.Grid)
	if err != nil {
		return false, err
	}
	return expected.Equal(s.Answer), nil
}
