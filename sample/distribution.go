package sample

import (
	"fmt"
	"math"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

// Stats summarizes the constraint mix of a generated batch.
type Stats struct {
	TotalSamples int

	RuleKindCounts      map[string]int
	RuleKindProportions map[string]float64

	PhysicsCount      int
	PhysicsProportion float64

	// CombinationCounts keys on kind, physics, ambiguity and reversal.
	CombinationCounts   map[string]int
	UniqueCombinations  int
	MissingCombinations int
}

// ValidateDistribution checks a batch against the expected kind and
// physics proportions within tolerance, and that every kind x physics
// combination occurs at least once. Returns whether the batch passes,
// the measured stats, and one message per violation.
func ValidateDistribution(samples []*Sample,
	expectedSize, expectedSpatialSame, expectedSpatialDiff, expectedPhysics, tolerance float64,
) (bool, *Stats, []string) {
	if len(samples) == 0 {
		return false, &Stats{}, []string{"no samples provided for validation"}
	}

	total := len(samples)
	var problems []string

	kindCounts := make(map[string]int, 4)
	for _, k := range question.Kinds() {
		kindCounts[k.String()] = 0
	}
	physicsCount := 0
	combos := make(map[string]int)
	type kindPhysics struct {
		kind    question.RuleKind
		physics bool
	}
	seen := make(map[kindPhysics]bool)

	for i, s := range samples {
		kindCounts[s.RuleKind.String()]++
		if s.IsPhysics {
			physicsCount++
		}
		ambiguous, err := s.Ambiguous()
		if err != nil {
			problems = append(problems, fmt.Sprintf("sample %d: %v", i, err))
			continue
		}
		key := fmt.Sprintf("%s_physics-%t_ambiguous-%t_reversed-%t",
			s.RuleKind, s.IsPhysics, ambiguous, s.IsReversed)
		combos[key]++
		seen[kindPhysics{s.RuleKind, s.IsPhysics}] = true
	}

	proportions := map[string]float64{}
	for k, n := range kindCounts {
		proportions[k] = float64(n) / float64(total)
	}
	physicsProp := float64(physicsCount) / float64(total)

	check := func(label string, expected, actual float64) {
		if math.Abs(actual-expected) > tolerance {
			problems = append(problems, fmt.Sprintf(
				"%s proportion mismatch: expected %.3f, got %.3f", label, expected, actual))
		}
	}
	check("size rule", expectedSize, proportions[question.KindSizeRelated.String()])
	check("spatial same rule", expectedSpatialSame, proportions[question.KindSpatialSame.String()])
	check("spatial different rule", expectedSpatialDiff, proportions[question.KindSpatialDiff.String()])
	check("physics", expectedPhysics, physicsProp)

	missing := 0
	for _, k := range question.Kinds() {
		for _, physics := range []bool{true, false} {
			if !seen[kindPhysics{k, physics}] {
				missing++
				problems = append(problems, fmt.Sprintf(
					"missing rule kind + physics combination: (%s, physics=%t)", k, physics))
			}
		}
	}

	stats := &Stats{
		TotalSamples:        total,
		RuleKindCounts:      kindCounts,
		RuleKindProportions: proportions,
		PhysicsCount:        physicsCount,
		PhysicsProportion:   physicsProp,
		CombinationCounts:   combos,
		UniqueCombinations:  len(combos),
		MissingCombinations: missing,
	}
	return len(problems) == 0, stats, problems
}
