package gen

import (
	"math"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/grid"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/question"
)

// buildControlGrid synthesizes a grid where the question answers
// identically under both viewpoints: one target, related items that can
// never win the selection rule, unrelated distractors, and occlusion that
// avoids the target cell.
func (g *Generator) buildControlGrid(q *question.Question, width, height int, p Params) (*grid.Grid, error) {
	grd, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	area := width * height
	numItems := int(float64(area) * p.ItemFillRatio)
	numBlocks := int(float64(area) * p.BlockRatio)

	target, err := g.cloneMatching(q.Filter)
	if err != nil {
		return nil, err
	}
	targetPos := question.Coord{X: g.rng.Intn(width), Y: g.rng.Intn(height)}
	if err := grd.Set(target, targetPos.Y, targetPos.X); err != nil {
		return nil, err
	}

	budget := numItems - 1
	if budget < 0 {
		budget = 0
	}
	if budget > area-1 {
		budget = area - 1
	}
	numRelated := int(float64(budget) * p.RelatedItemProp)
	numUnrelated := budget - numRelated

	if q.Rule != question.RuleNone {
		if err := g.addRelatedUnambiguous(grd, q, target, targetPos, numRelated); err != nil {
			return nil, err
		}
		if err := g.addUnrelatedRandom(grd, q.Filter, numUnrelated); err != nil {
			return nil, err
		}
	} else {
		// Without a rule every matching item is part of the answer, so the
		// fill is distractors only, capped at the free cells.
		n := numItems
		if free := len(grd.EmptyCells()); n > free {
			n = free
		}
		if err := g.addUnrelatedRandom(grd, q.Filter, n); err != nil {
			return nil, err
		}
	}

	var blockable []question.Coord
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (question.Coord{X: x, Y: y}) != targetPos {
				blockable = append(blockable, question.Coord{X: x, Y: y})
			}
		}
	}
	for _, c := range g.sampleCoords(blockable, numBlocks) {
		if err := grd.SetOccluded(c.Y, c.X, true); err != nil {
			return nil, err
		}
	}
	return grd, nil
}

// buildAmbiguousGrid synthesizes a grid where occlusion changes the
// answer: the director's target stays visible while exactly one competitor
// that ties or beats it hides behind an occluded cell.
func (g *Generator) buildAmbiguousGrid(q *question.Question, width, height int, p Params) (*grid.Grid, error) {
	grd, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	area := width * height
	numItems := int(float64(area) * p.ItemFillRatio)
	numBlocks := int(float64(area) * p.BlockRatio)

	director, err := g.cloneMatching(q.Filter)
	if err != nil {
		return nil, err
	}
	directorPos := question.Coord{X: g.rng.Intn(width), Y: g.rng.Intn(height)}
	if err := grd.Set(director, directorPos.Y, directorPos.X); err != nil {
		return nil, err
	}

	budget := numItems - 1
	if budget < 0 {
		budget = 0
	}
	if budget > area-1 {
		budget = area - 1
	}
	numRelatedUnblocked := int(float64(budget) * p.RelatedItemProp * (1 - p.RelatedBlockedProp))
	numRelatedBlocked := int(float64(budget) * p.RelatedItemProp * p.RelatedBlockedProp)
	if numRelatedBlocked < 1 {
		numRelatedBlocked = 1
	}

	// Cells that must stay visible so the losing related items keep losing
	// in the director's view too.
	var protected []question.Coord
	if q.Rule != question.RuleNone {
		if err := g.addRelatedUnambiguous(grd, q, director, directorPos, numRelatedUnblocked); err != nil {
			return nil, err
		}
		for _, pl := range grd.Items() {
			protected = append(protected, question.Coord{X: pl.Col, Y: pl.Row})
		}
	} else {
		// With no rule any visible match joins the answer, so every related
		// item must hide.
		numRelatedBlocked += numRelatedUnblocked
	}

	if err := g.placeCompetitor(grd, q, director, directorPos); err != nil {
		return nil, err
	}
	numRelatedBlocked--

	numUnrelated := int(float64(numItems) * (1 - p.RelatedItemProp))
	if err := g.addUnrelatedRandom(grd, q.Filter, numUnrelated); err != nil {
		return nil, err
	}
	if err := g.addRelatedBlocked(grd, q, numRelatedBlocked); err != nil {
		return nil, err
	}

	blocksPlaced := numRelatedBlocked + 1
	if additional := numBlocks - blocksPlaced; additional > 0 {
		isProtected := make(map[question.Coord]struct{}, len(protected))
		for _, c := range protected {
			isProtected[c] = struct{}{}
		}
		var blockable []question.Coord
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := question.Coord{X: x, Y: y}
				if c == directorPos {
					continue
				}
				if occluded, _ := grd.Occluded(y, x); occluded {
					continue
				}
				if _, ok := isProtected[c]; ok {
					continue
				}
				blockable = append(blockable, c)
			}
		}
		for _, c := range g.sampleCoords(blockable, additional) {
			if err := grd.SetOccluded(c.Y, c.X, true); err != nil {
				return nil, err
			}
		}
	}
	return grd, nil
}

// addRelatedUnambiguous places count filter-matching items that cannot
// change the answer: for scalar rules only pool items strictly on the
// losing side of the target's value, for directional rules only cells
// strictly on the losing side of the target. The losing-side checks run
// even when count is zero, so a target with no losing room fails the
// attempt regardless of how many related items were requested.
func (g *Generator) addRelatedUnambiguous(grd *grid.Grid, q *question.Question,
	target *item.Item, targetPos question.Coord, count int) error {
	var positions []question.Coord
	var losers []*item.Item

	if q.Rule.Scalar() {
		targetValue := 0.0
		if v, ok := target.Scalar(q.SelectionProperty); ok {
			targetValue = v
		}
		for _, it := range g.matching(q.Filter) {
			v, ok := it.Scalar(q.SelectionProperty)
			if !ok {
				continue
			}
			if (q.Rule == question.Largest && v < targetValue) ||
				(q.Rule == question.Smallest && v > targetValue) {
				losers = append(losers, it)
			}
		}
		if len(losers) == 0 {
			side := "smaller"
			if q.Rule == question.Smallest {
				side = "larger"
			}
			return errors.NewGenerationErrorf(
				"no pool items can serve as related items for %s rule: need %s %s than %v",
				q.Rule, side, q.SelectionProperty, targetValue)
		}
		positions = emptyCoords(grd)
	} else {
		var err error
		positions, err = losingCells(grd, q.Rule, targetPos)
		if err != nil {
			return err
		}
	}

	if len(positions) < count {
		return errors.NewGenerationErrorf(
			"not enough losing positions (%d) for %d related items under %s rule",
			len(positions), count, q.Rule)
	}

	for _, c := range g.sampleCoords(positions, count) {
		var it *item.Item
		if q.Rule.Scalar() {
			it = losers[g.rng.Intn(len(losers))].Clone()
		} else {
			var err error
			it, err = g.cloneMatching(q.Filter)
			if err != nil {
				return err
			}
		}
		if err := grd.Set(it, c.Y, c.X); err != nil {
			return err
		}
	}
	return nil
}

// losingCells returns the cells strictly on the non-winning side of the
// target under a directional rule. A target on the losing edge leaves no
// room and is a generation failure.
func losingCells(grd *grid.Grid, rule question.Rule, target question.Coord) ([]question.Coord, error) {
	var xs, ys func(x, y int) bool
	switch rule {
	case question.Topmost:
		if target.Y == grd.Height-1 {
			return nil, errors.NewGenerationErrorf("target cannot be on the bottom row for topmost rule")
		}
		xs, ys = anyCoord, func(_, y int) bool { return y > target.Y }
	case question.Bottommost:
		if target.Y == 0 {
			return nil, errors.NewGenerationErrorf("target cannot be on the top row for bottommost rule")
		}
		xs, ys = anyCoord, func(_, y int) bool { return y < target.Y }
	case question.Leftmost:
		if target.X == grd.Width-1 {
			return nil, errors.NewGenerationErrorf("target cannot be in the rightmost column for leftmost rule")
		}
		xs, ys = func(x, _ int) bool { return x > target.X }, anyCoord
	case question.Rightmost:
		if target.X == 0 {
			return nil, errors.NewGenerationErrorf("target cannot be in the leftmost column for rightmost rule")
		}
		xs, ys = func(x, _ int) bool { return x < target.X }, anyCoord
	default:
		return nil, errors.AssertionFailedf("losingCells called with rule %s", rule)
	}

	var out []question.Coord
	for y := 0; y < grd.Height; y++ {
		for x := 0; x < grd.Width; x++ {
			if xs(x, y) && ys(x, y) {
				out = append(out, question.Coord{X: x, Y: y})
			}
		}
	}
	return out, nil
}

func anyCoord(_, _ int) bool { return true }

// addUnrelatedRandom places count distractors (items failing the criteria)
// at free cells.
func (g *Generator) addUnrelatedRandom(grd *grid.Grid, criteria map[string]bool, count int) error {
	if count <= 0 {
		return nil
	}
	free := emptyCoords(grd)
	if len(free) < count {
		return errors.NewGenerationErrorf(
			"not enough free cells (%d) for %d unrelated items", len(free), count)
	}
	distractors := g.nonMatching(criteria)
	if len(distractors) == 0 {
		return errors.NewGenerationErrorf("no pool items can serve as distractors for criteria %v", criteria)
	}
	for _, c := range g.sampleCoords(free, count) {
		if err := grd.Set(distractors[g.rng.Intn(len(distractors))].Clone(), c.Y, c.X); err != nil {
			return err
		}
	}
	return nil
}

// addRelatedBlocked places count filter-matching items at free cells and
// occludes each on placement, so they only exist for the participant.
func (g *Generator) addRelatedBlocked(grd *grid.Grid, q *question.Question, count int) error {
	if count <= 0 {
		return nil
	}
	free := emptyCoords(grd)
	if len(free) < count {
		return errors.NewGenerationErrorf(
			"not enough free cells (%d) for %d blocked related items", len(free), count)
	}
	for _, c := range g.sampleCoords(free, count) {
		it, err := g.cloneMatching(q.Filter)
		if err != nil {
			return err
		}
		if err := grd.Set(it, c.Y, c.X); err != nil {
			return err
		}
		if err := grd.SetOccluded(c.Y, c.X, true); err != nil {
			return err
		}
	}
	return nil
}

// placeCompetitor places the participant-only item: at a free cell that
// ties or beats the director's cell under directional rules, holding an
// item that ties or beats the director's target under scalar rules. Its
// cell is occluded, which is what makes the sample ambiguous.
func (g *Generator) placeCompetitor(grd *grid.Grid, q *question.Question,
	director *item.Item, directorPos question.Coord) error {
	free := emptyCoords(grd)

	valid := free[:0:0]
	for _, c := range free {
		ok := true
		switch q.Rule {
		case question.Leftmost:
			ok = c.X <= directorPos.X
		case question.Rightmost:
			ok = c.X >= directorPos.X
		case question.Topmost:
			ok = c.Y <= directorPos.Y
		case question.Bottommost:
			ok = c.Y >= directorPos.Y
		}
		if ok {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return errors.NewGenerationErrorf(
			"no free cells can tie or beat the director's cell %v under %s rule", directorPos, q.Rule)
	}

	var candidates []*item.Item
	for _, it := range g.matching(q.Filter) {
		compete := true
		switch q.Rule {
		case question.Smallest:
			compete = scalarOr(it, q.SelectionProperty, math.Inf(1)) <=
				scalarOr(director, q.SelectionProperty, math.Inf(1))
		case question.Largest:
			compete = scalarOr(it, q.SelectionProperty, math.Inf(-1)) >=
				scalarOr(director, q.SelectionProperty, math.Inf(-1))
		}
		if compete {
			candidates = append(candidates, it)
		}
	}
	if len(candidates) == 0 {
		return errors.NewGenerationErrorf(
			"no pool items can tie or beat the director's target %q under %s rule", director.Name, q.Rule)
	}

	pos := valid[g.rng.Intn(len(valid))]
	competitor := candidates[g.rng.Intn(len(candidates))].Clone()
	if err := grd.Set(competitor, pos.Y, pos.X); err != nil {
		return err
	}
	return grd.SetOccluded(pos.Y, pos.X, true)
}

func scalarOr(it *item.Item, prop string, fallback float64) float64 {
	if v, ok := it.Scalar(prop); ok {
		return v
	}
	return fallback
}
