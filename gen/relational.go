package gen

import (
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/sample"
)

// GenerateRelationalControlSamples produces n samples built around a
// spatial relation to a reference object, with both viewpoints agreeing.
// Relational samples record the spatial-different-perspective kind and are
// never physics questions.
func (g *Generator) GenerateRelationalControlSamples(n, width, height int, p Params) ([]*sample.Sample, error) {
	return g.generateRelational(n, width, height, p, false)
}

// GenerateRelationalTestSamples produces n relational samples whose
// participant-only target hides behind occlusion.
func (g *Generator) GenerateRelationalTestSamples(n, width, height int, p Params) ([]*sample.Sample, error) {
	return g.generateRelational(n, width, height, p, true)
}

func (g *Generator) generateRelational(n, width, height int, p Params, ambiguous bool) ([]*sample.Sample, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := grid.New(width, height); err != nil {
		return nil, err
	}

	samples := make([]*sample.Sample, 0, n)
	for i := 0; i < n; i++ {
		q, err := g.relationalQuestion()
		if err != nil {
			return nil, err
		}

		var grd *grid.Grid
		if ambiguous {
			grd, err = g.buildAmbiguousRelationalGrid(q, width, height, p)
		} else {
			grd, err = g.buildRelationalGrid(q, width, height, p)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "generating relational sample %d/%d", i+1, n)
		}

		answer, err := q.FindTarget(grd)
		if err != nil {
			return nil, err
		}
		s, err := sample.New(grd, q, answer, nil, question.KindSpatialDiff, false)
		if err != nil {
			return nil, err
		}

		got, err := s.Ambiguous()
		if err != nil {
			return nil, err
		}
		if got != ambiguous {
			err := errors.NewInvariantErrorf(
				"relational sample ambiguity mismatch: want %t got %t (relation=%s reference=%v)",
				ambiguous, got, q.Relation, q.Reference)
			return nil, errors.WithDetail(err, "grid layout:\n"+grd.PrettyPrint())
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// relationalQuestion picks a reference description realizable from the
// pool (a target type and color some item actually carries), a uniform
// relation, and a coin-flip reversal.
func (g *Generator) relationalQuestion() (*question.RelationalQuestion, error) {
	pairs := g.referencePairs()
	if len(pairs) == 0 {
		return nil, errors.NewGenerationErrorf("no pool items carry a target type and color to serve as reference")
	}
	pair := pairs[g.rng.Intn(len(pairs))]
	relations := question.Relations()
	return &question.RelationalQuestion{
		Reference: map[string]bool{pair[0]: true, pair[1]: true},
		Relation:  relations[g.rng.Intn(len(relations))],
		Reversed:  g.rng.Intn(2) == 1,
		Catalog:   g.cat,
	}, nil
}

// referencePairs lists every (target type, color) pair present on some
// pool item, deduplicated in first-seen order.
func (g *Generator) referencePairs() [][2]string {
	var pairs [][2]string
	seen := make(map[[2]string]struct{})
	for _, it := range g.pool {
		for _, target := range g.cat.TargetTypes() {
			if !it.Bool(target) {
				continue
			}
			for _, color := range g.cat.Colors() {
				if !it.Bool(color) {
					continue
				}
				pair := [2]string{target, color}
				if _, ok := seen[pair]; ok {
					continue
				}
				seen[pair] = struct{}{}
				pairs = append(pairs, pair)
			}
		}
	}
	return pairs
}

// buildRelationalGrid places the reference where at least one cell exists
// in the relation, one target in that relation, then distractors.
// Occlusion goes only on empty cells so both viewpoints stay equal.
func (g *Generator) buildRelationalGrid(q *question.RelationalQuestion, width, height int, p Params) (*grid.Grid, error) {
	grd, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	area := width * height
	numItems := int(float64(area) * p.ItemFillRatio)
	numBlocks := int(float64(area) * p.BlockRatio)

	refCells := referenceCells(q.Relation, width, height, 1)
	if len(refCells) == 0 {
		return nil, errors.NewConfigErrorf("%dx%d grid leaves no room for %s reference", width, height, q.Relation)
	}
	refPos := refCells[g.rng.Intn(len(refCells))]
	ref, err := g.cloneMatching(q.Reference)
	if err != nil {
		return nil, err
	}
	if err := grd.Set(ref, refPos.Y, refPos.X); err != nil {
		return nil, err
	}

	targets := relationCells(q.Relation, refPos, width, height)
	targetPos := targets[g.rng.Intn(len(targets))]
	if err := grd.Set(g.cloneAny(), targetPos.Y, targetPos.X); err != nil {
		return nil, err
	}

	if err := g.fillAnyItems(grd, numItems-2); err != nil {
		return nil, err
	}

	// Only empty cells get occluded; hiding nothing changes nothing.
	for _, c := range g.sampleCoords(emptyCoords(grd), numBlocks) {
		if err := grd.SetOccluded(c.Y, c.X, true); err != nil {
			return nil, err
		}
	}
	return grd, nil
}

// buildAmbiguousRelationalGrid needs at least two cells in the relation:
// the director's target stays visible, the participant's hides.
func (g *Generator) buildAmbiguousRelationalGrid(q *question.RelationalQuestion, width, height int, p Params) (*grid.Grid, error) {
	grd, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	area := width * height
	numItems := int(float64(area) * p.ItemFillRatio)
	numBlocks := int(float64(area) * p.BlockRatio)

	refCells := referenceCells(q.Relation, width, height, 2)
	if len(refCells) == 0 {
		return nil, errors.NewConfigErrorf(
			"%dx%d grid leaves no room for an ambiguous %s reference", width, height, q.Relation)
	}
	refPos := refCells[g.rng.Intn(len(refCells))]
	ref, err := g.cloneMatching(q.Reference)
	if err != nil {
		return nil, err
	}
	if err := grd.Set(ref, refPos.Y, refPos.X); err != nil {
		return nil, err
	}

	targets := relationCells(q.Relation, refPos, width, height)
	directorPos := targets[g.rng.Intn(len(targets))]
	if err := grd.Set(g.cloneAny(), directorPos.Y, directorPos.X); err != nil {
		return nil, err
	}

	remaining := targets[:0:0]
	for _, c := range targets {
		if c != directorPos {
			remaining = append(remaining, c)
		}
	}
	participantPos := remaining[g.rng.Intn(len(remaining))]
	if err := grd.Set(g.cloneAny(), participantPos.Y, participantPos.X); err != nil {
		return nil, err
	}
	if err := grd.SetOccluded(participantPos.Y, participantPos.X, true); err != nil {
		return nil, err
	}

	if err := g.fillAnyItems(grd, numItems-3); err != nil {
		return nil, err
	}

	for _, c := range g.sampleCoords(emptyCoords(grd), numBlocks-1) {
		if err := grd.SetOccluded(c.Y, c.X, true); err != nil {
			return nil, err
		}
	}
	return grd, nil
}

// cloneAny clones a uniform pool item; relational targets and distractors
// carry no criteria.
func (g *Generator) cloneAny() *item.Item {
	return g.pool[g.rng.Intn(len(g.pool))].Clone()
}

// fillAnyItems places up to count arbitrary items at free cells.
func (g *Generator) fillAnyItems(grd *grid.Grid, count int) error {
	if count <= 0 {
		return nil
	}
	for _, c := range g.sampleCoords(emptyCoords(grd), count) {
		if err := grd.Set(g.cloneAny(), c.Y, c.X); err != nil {
			return err
		}
	}
	return nil
}

// referenceCells returns the cells leaving at least space cells on the
// relation's side.
func referenceCells(rel question.Relation, width, height, space int) []question.Coord {
	var out []question.Coord
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			room := 0
			switch rel {
			case question.RightOf:
				room = width - 1 - x
			case question.LeftOf:
				room = x
			case question.Above:
				room = y
			case question.Below:
				room = height - 1 - y
			}
			if room >= space {
				out = append(out, question.Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// relationCells returns every cell standing in the relation to ref.
func relationCells(rel question.Relation, ref question.Coord, width, height int) []question.Coord {
	var out []question.Coord
	switch rel {
	case question.RightOf:
		for x := ref.X + 1; x < width; x++ {
			out = append(out, question.Coord{X: x, Y: ref.Y})
		}
	case question.LeftOf:
		for x := 0; x < ref.X; x++ {
			out = append(out, question.Coord{X: x, Y: ref.Y})
		}
	case question.Above:
		for y := 0; y < ref.Y; y++ {
			out = append(out, question.Coord{X: ref.X, Y: y})
		}
	case question.Below:
		for y := ref.Y + 1; y < height; y++ {
			out = append(out, question.Coord{X: ref.X, Y: y})
		}
	}
	return out
}
