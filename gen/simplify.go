package gen

import (
	"sort"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

// simplifyQuestion drops the adjectives the answer does not depend on.
// Each candidate is tested individually against the relevant view (the
// restricted view when the sample is already ambiguous, else the full
// grid) and every removable one is dropped at once, with a final check
// that the reduced question reproduces the answer set. The pass runs only
// once, so a pair of adjectives that is removable jointly but not
// individually survives. Any evaluation failure leaves the question
// unchanged.
func (g *Generator) simplifyQuestion(q *question.Question, grd *grid.Grid, a assignment) *question.Question {
	view := grd
	participant, err := q.FindTarget(grd)
	if err != nil {
		return q
	}
	director, err := q.FindTarget(grd.RestrictedView())
	if err == nil && !participant.Equal(director) {
		view = grd.RestrictedView()
	}

	original, err := q.FindTarget(view)
	if err != nil {
		return q
	}

	// The target type and other category-class properties define what the
	// question is about and never come off.
	var candidates []string
	for prop := range q.Filter {
		if prop != q.TargetType && !g.cat.IsCategoryClass(prop) {
			candidates = append(candidates, prop)
		}
	}
	sort.Strings(candidates)

	var removable []string
	for _, prop := range candidates {
		test := cloneCriteriaWithout(q.Filter, []string{prop})
		if len(test) == 0 {
			continue
		}
		answer, err := withCriteria(q, test).FindTarget(view)
		if err != nil || !answer.Equal(original) {
			continue
		}
		// Physics questions must keep a physics property; non-physics
		// questions must keep none.
		if g.cat.HasPhysics(test) != a.physics {
			continue
		}
		removable = append(removable, prop)
	}
	if len(removable) == 0 {
		return q
	}

	simplified := withCriteria(q, cloneCriteriaWithout(q.Filter, removable))
	answer, err := simplified.FindTarget(view)
	if err != nil || !answer.Equal(original) {
		return q
	}
	return simplified
}

func cloneCriteriaWithout(criteria map[string]bool, drop []string) map[string]bool {
	out := make(map[string]bool, len(criteria))
	for k, v := range criteria {
		out[k] = v
	}
	for _, k := range drop {
		delete(out, k)
	}
	return out
}

func withCriteria(q *question.Question, criteria map[string]bool) *question.Question {
	c := *q
	c.Filter = criteria
	return &c
}
