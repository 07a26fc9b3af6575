// Package item defines object templates: named items carrying boolean and
// scalar property maps merged from catalog defaults, with per-property
// provenance so editor tooling can tell explicit overrides from inherited
// defaults.
package item

import (
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
)

// Provenance tags whether a property value was inherited from the catalog
// default or explicitly set on the item.
type Provenance int

const (
	FromDefault Provenance = iota
	Explicit
)

// Item is one object template. Items placed in a grid are always clones;
// the shared pool is never mutated by placement.
type Item struct {
	Name     string
	ImageRef string // opaque reference for the rendering layer, unused here
	Bools    map[string]bool
	Scalars  map[string]float64

	boolSource   map[string]Provenance
	scalarSource map[string]Provenance
}

// New creates an Item from catalog defaults plus explicit overrides.
// Override keys are tagged Explicit; everything else inherits the default.
func New(cat *catalog.Catalog, name, imageRef string, bools map[string]bool, scalars map[string]float64) *Item {
	it := &Item{
		Name:         name,
		ImageRef:     imageRef,
		Bools:        make(map[string]bool),
		Scalars:      make(map[string]float64),
		boolSource:   make(map[string]Provenance),
		scalarSource: make(map[string]Provenance),
	}
	for _, k := range cat.BoolKeys() {
		it.Bools[k] = cat.BoolDefault(k)
		it.boolSource[k] = FromDefault
	}
	for _, k := range cat.ScalarKeys() {
		it.Scalars[k] = cat.ScalarDefault(k)
		it.scalarSource[k] = FromDefault
	}
	for k, v := range bools {
		it.Bools[k] = v
		it.boolSource[k] = Explicit
	}
	for k, v := range scalars {
		it.Scalars[k] = v
		it.scalarSource[k] = Explicit
	}
	return it
}

// Clone deep-copies the item so grid placement never aliases the pool.
func (it *Item) Clone() *Item {
	c := &Item{
		Name:         it.Name,
		ImageRef:     it.ImageRef,
		Bools:        make(map[string]bool, len(it.Bools)),
		Scalars:      make(map[string]float64, len(it.Scalars)),
		boolSource:   make(map[string]Provenance, len(it.boolSource)),
		scalarSource: make(map[string]Provenance, len(it.scalarSource)),
	}
	for k, v := range it.Bools {
		c.Bools[k] = v
	}
	for k, v := range it.Scalars {
		c.Scalars[k] = v
	}
	for k, v := range it.boolSource {
		c.boolSource[k] = v
	}
	for k, v := range it.scalarSource {
		c.scalarSource[k] = v
	}
	return c
}

// Bool returns the boolean property value; missing keys read as false.
func (it *Item) Bool(prop string) bool {
	return it.Bools[prop]
}

// Scalar returns the scalar property value and whether it is present.
func (it *Item) Scalar(prop string) (float64, bool) {
	v, ok := it.Scalars[prop]
	return v, ok
}

// MatchesCriteria reports whether the item agrees with every key of the
// exact-match predicate. Missing keys default to false.
func (it *Item) MatchesCriteria(criteria map[string]bool) bool {
	for prop, required := range criteria {
		if it.Bools[prop] != required {
			return false
		}
	}
	return true
}

// SetBool explicitly sets a boolean property value.
func (it *Item) SetBool(prop string, value bool) {
	it.Bools[prop] = value
	it.boolSource[prop] = Explicit
}

// SetScalar explicitly sets a scalar property value.
func (it *Item) SetScalar(prop string, value float64) {
	it.Scalars[prop] = value
	it.scalarSource[prop] = Explicit
}

// IsExplicitBool reports whether a boolean property was explicitly set.
func (it *Item) IsExplicitBool(prop string) bool {
	return it.boolSource[prop] == Explicit
}

// IsExplicitScalar reports whether a scalar property was explicitly set.
func (it *Item) IsExplicitScalar(prop string) bool {
	return it.scalarSource[prop] == Explicit
}

// NonDefault returns only the property values that differ from the catalog
// defaults, for compact storage.
func (it *Item) NonDefault(cat *catalog.Catalog) (map[string]bool, map[string]float64) {
	bools := make(map[string]bool)
	for k, v := range it.Bools {
		if v != cat.BoolDefault(k) {
			bools[k] = v
		}
	}
	scalars := make(map[string]float64)
	for k, v := range it.Scalars {
		if v != cat.ScalarDefault(k) {
			scalars[k] = v
		}
	}
	return bools, scalars
}

// MergeDefaults reverts every explicitly-set property whose value equals the
// catalog default back to inherited provenance. Returns the number of
// properties merged.
func (it *Item) MergeDefaults(cat *catalog.Catalog) int {
	merged := 0
	for k, src := range it.boolSource {
		if src == Explicit && it.Bools[k] == cat.BoolDefault(k) {
			it.boolSource[k] = FromDefault
			merged++
		}
	}
	for k, src := range it.scalarSource {
		if src == Explicit && it.Scalars[k] == cat.ScalarDefault(k) {
			it.scalarSource[k] = FromDefault
			merged++
		}
	}
	return merged
}
