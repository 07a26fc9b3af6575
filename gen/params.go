package gen

import "github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"

// Params controls grid density and the constraint mix of a generated
// batch. All proportions are in [0, 1]; counts derive from them by
// truncation, with the remainder after the three rule categories going to
// the no-rule bucket.
type Params struct {
	// ItemFillRatio is the fraction of cells to occupy; BlockRatio the
	// fraction of cells to occlude.
	ItemFillRatio float64
	BlockRatio    float64

	// Per-kind sample proportions. The three must sum to at most 1.
	SizeProp        float64
	SpatialSameProp float64
	SpatialDiffProp float64

	// PhysicsProp splits each kind's count into physics and non-physics
	// questions.
	PhysicsProp float64

	// RelatedItemProp is the fraction of non-target items that match the
	// filter criteria; RelatedBlockedProp the fraction of those hidden
	// from the director in test samples.
	RelatedItemProp    float64
	RelatedBlockedProp float64
}

// DefaultParams mirrors the generator's CLI defaults.
func DefaultParams() Params {
	return Params{
		ItemFillRatio:      0.5,
		BlockRatio:         0.4,
		SizeProp:           0.25,
		SpatialSameProp:    0.25,
		SpatialDiffProp:    0.25,
		PhysicsProp:        0.5,
		RelatedItemProp:    0.3,
		RelatedBlockedProp: 0.5,
	}
}

// Validate rejects out-of-range proportions before any generation starts.
func (p Params) Validate() error {
	fields := map[string]float64{
		"item_fill_ratio":      p.ItemFillRatio,
		"block_ratio":          p.BlockRatio,
		"size_prop":            p.SizeProp,
		"spatial_same_prop":    p.SpatialSameProp,
		"spatial_diff_prop":    p.SpatialDiffProp,
		"physics_prop":         p.PhysicsProp,
		"related_item_prop":    p.RelatedItemProp,
		"related_blocked_prop": p.RelatedBlockedProp,
	}
	for name, v := range fields {
		if v < 0 || v > 1 {
			return errors.NewConfigErrorf("%s must be in [0, 1], got %v", name, v)
		}
	}
	if sum := p.SizeProp + p.SpatialSameProp + p.SpatialDiffProp; sum > 1.0 {
		return errors.NewConfigErrorf(
			"size, spatial_same and spatial_diff proportions cannot exceed 1.0: %v + %v + %v = %v",
			p.SizeProp, p.SpatialSameProp, p.SpatialDiffProp, sum)
	}
	return nil
}
