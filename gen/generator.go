// Package gen is the generation engine: it turns an item pool and a set of
// proportions into batches of control and test samples. Each sample gets a
// (rule kind, physics) assignment up front; the engine then retries
// question selection and grid synthesis until the assignment's
// control/test invariant holds or the attempt budget runs out.
package gen

import (
	"math/rand"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/logger"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/sample"
)

// maxAttempts bounds the question/grid retry loop per assignment.
const maxAttempts = 200

// Generator synthesizes samples from a fixed item pool. It is
// single-threaded; every random choice goes through the injected source so
// runs are reproducible from a seed.
type Generator struct {
	cat  *catalog.Catalog
	pool []*item.Item
	rng  *rand.Rand
}

// New builds a generator over the given pool and random source.
func New(cat *catalog.Catalog, pool []*item.Item, rng *rand.Rand) (*Generator, error) {
	if len(pool) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "item pool is empty")
	}
	if rng == nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "random source is required")
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return &Generator{cat: cat, pool: pool, rng: rng}, nil
}

// assignment fixes the rule kind and physics flag of one sample before
// synthesis starts, so the batch hits the requested proportions exactly
// (up to truncation).
type assignment struct {
	kind    question.RuleKind
	physics bool
}

// assignments computes per-kind counts by truncation, with the remainder
// going to the no-rule kind, splits each count into physics and
// non-physics, and shuffles the flattened list once.
func (g *Generator) assignments(n int, p Params) []assignment {
	if n <= 0 {
		return nil
	}
	sizeCount := int(float64(n) * p.SizeProp)
	sameCount := int(float64(n) * p.SpatialSameProp)
	diffCount := int(float64(n) * p.SpatialDiffProp)
	noneCount := n - sizeCount - sameCount - diffCount

	counts := []struct {
		kind  question.RuleKind
		count int
	}{
		{question.KindSizeRelated, sizeCount},
		{question.KindSpatialSame, sameCount},
		{question.KindSpatialDiff, diffCount},
		{question.KindNone, noneCount},
	}

	out := make([]assignment, 0, n)
	for _, c := range counts {
		if c.count <= 0 {
			continue
		}
		physics := int(float64(c.count) * p.PhysicsProp)
		for i := 0; i < physics; i++ {
			out = append(out, assignment{kind: c.kind, physics: true})
		}
		for i := 0; i < c.count-physics; i++ {
			out = append(out, assignment{kind: c.kind, physics: false})
		}
	}
	g.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// GenerateControlSamples produces n samples whose participant and director
// answers agree.
func (g *Generator) GenerateControlSamples(n, width, height int, p Params) ([]*sample.Sample, error) {
	return g.generate(n, width, height, p, false)
}

// GenerateTestSamples produces n samples whose occlusions make the
// director's answer differ from the participant's.
func (g *Generator) GenerateTestSamples(n, width, height int, p Params) ([]*sample.Sample, error) {
	return g.generate(n, width, height, p, true)
}

func (g *Generator) generate(n, width, height int, p Params, ambiguous bool) ([]*sample.Sample, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := grid.New(width, height); err != nil {
		return nil, err
	}

	kind := "control"
	if ambiguous {
		kind = "test"
	}
	assignments := g.assignments(n, p)
	logger.Debugf("generating %d %s samples on a %dx%d grid", len(assignments), kind, width, height)

	samples := make([]*sample.Sample, 0, len(assignments))
	for i, a := range assignments {
		s, err := g.generateOne(a, width, height, p, ambiguous)
		if err != nil {
			return nil, errors.Wrapf(err, "generating %s sample %d/%d", kind, i+1, len(assignments))
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// generateOne runs the retry loop for a single assignment, then
// simplifies the question and verifies the ambiguity postcondition.
func (g *Generator) generateOne(a assignment, width, height int, p Params, ambiguous bool) (*sample.Sample, error) {
	var (
		q       *question.Question
		grd     *grid.Grid
		lastErr error
	)
	built := false
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var err error
		q, err = g.constrainedQuestion(a)
		if err == nil {
			if ambiguous {
				grd, err = g.buildAmbiguousGrid(q, width, height, p)
			} else {
				grd, err = g.buildControlGrid(q, width, height, p)
			}
		}
		if err == nil {
			built = true
			break
		}
		if !errors.IsGenerationError(err) {
			return nil, err
		}
		lastErr = err
	}
	if !built {
		questionText := "(no question selected)"
		if q != nil {
			questionText = q.NaturalLanguage(true)
		}
		return nil, errors.NewInvariantErrorf(
			"exhausted %d attempts (kind=%s physics=%t question=%q): %v",
			maxAttempts, a.kind, a.physics, questionText, lastErr)
	}

	q = g.simplifyQuestion(q, grd, a)

	answer, err := q.FindTarget(grd)
	if err != nil {
		return nil, errors.Wrap(err, "evaluating simplified question")
	}
	s, err := sample.New(grd, q, answer, nil, a.kind, a.physics)
	if err != nil {
		return nil, err
	}

	got, err := s.Ambiguous()
	if err != nil {
		return nil, err
	}
	if got != ambiguous {
		err := errors.NewInvariantErrorf(
			"sample ambiguity mismatch: want %t got %t (kind=%s physics=%t question=%q participant=%v director=%v)",
			ambiguous, got, a.kind, a.physics, q.NaturalLanguage(true), s.Answer, s.DirectorAnswer)
		return nil, errors.WithDetail(err, "grid layout:\n"+grd.PrettyPrint())
	}
	return s, nil
}

// GenerateVariableFillSamples produces n control samples with the fill
// ratio stepping from 1/n up to 1.0, one sample per step.
func (g *Generator) GenerateVariableFillSamples(n, width, height int, p Params) ([]*sample.Sample, error) {
	if n <= 0 {
		return nil, errors.NewConfigErrorf("sample count must be positive, got %d", n)
	}
	step := 1.0 / float64(n)
	samples := make([]*sample.Sample, 0, n)
	for i := 0; i < n; i++ {
		pp := p
		pp.ItemFillRatio = step * float64(i+1)
		batch, err := g.GenerateControlSamples(1, width, height, pp)
		if err != nil {
			return nil, errors.Wrapf(err, "at fill ratio %.3f", pp.ItemFillRatio)
		}
		samples = append(samples, batch...)
	}
	return samples, nil
}

// matching returns the pool items whose boolean properties satisfy every
// criterion, with missing keys reading false.
func (g *Generator) matching(criteria map[string]bool) []*item.Item {
	var out []*item.Item
	for _, it := range g.pool {
		if it.MatchesCriteria(criteria) {
			out = append(out, it)
		}
	}
	return out
}

// nonMatching returns the pool items that fail at least one criterion.
func (g *Generator) nonMatching(criteria map[string]bool) []*item.Item {
	var out []*item.Item
	for _, it := range g.pool {
		if !it.MatchesCriteria(criteria) {
			out = append(out, it)
		}
	}
	return out
}

// cloneMatching picks a uniform pool item satisfying the criteria and
// clones it, so grid mutation never aliases the pool.
func (g *Generator) cloneMatching(criteria map[string]bool) (*item.Item, error) {
	candidates := g.matching(criteria)
	if len(candidates) == 0 {
		return nil, errors.NewGenerationErrorf("no pool items match criteria %v", criteria)
	}
	return candidates[g.rng.Intn(len(candidates))].Clone(), nil
}

// sampleCoords picks n distinct coordinates uniformly without replacement.
func (g *Generator) sampleCoords(coords []question.Coord, n int) []question.Coord {
	if n < 0 {
		n = 0
	}
	if n > len(coords) {
		n = len(coords)
	}
	out := make([]question.Coord, 0, n)
	for _, idx := range g.rng.Perm(len(coords))[:n] {
		out = append(out, coords[idx])
	}
	return out
}

// emptyCoords returns the unoccupied cells of g as coordinates.
func emptyCoords(grd *grid.Grid) []question.Coord {
	cells := grd.EmptyCells()
	out := make([]question.Coord, 0, len(cells))
	for _, rc := range cells {
		out = append(out, question.Coord{X: rc[1], Y: rc[0]})
	}
	return out
}
