// Package catalog defines the property catalog: the canonical set of boolean
// and scalar item properties, their default values, and the classification of
// property names into adjective categories used for question rendering.
//
// A Catalog is loaded (or taken from the built-in defaults) once at startup
// and treated as read-only for the rest of a generation run.
package catalog

import (
	"sort"
	"strings"
)

// Category classifies a boolean property into an English adjective category.
// The rendering order of adjectives is fixed: size, shape, color, material,
// quality. CategoryClass properties ("star", "car", ...) name what an item is
// and are used as question target types, never as adjectives.
type Category int

const (
	Size Category = iota
	Shape
	Color
	Material
	CategoryClass
	Quality
)

// String returns the category name as used in serialized records.
func (c Category) String() string {
	switch c {
	case Size:
		return "size"
	case Shape:
		return "shape"
	case Color:
		return "color"
	case Material:
		return "material"
	case CategoryClass:
		return "category"
	case Quality:
		return "quality"
	default:
		return "unknown"
	}
}

// AdjectiveOrder is the fixed English adjective order used when rendering
// questions. CategoryClass is absent: target types are not adjectives.
var AdjectiveOrder = []Category{Size, Shape, Color, Material, Quality}

// Catalog holds the default property maps and classification tables.
type Catalog struct {
	boolDefaults   map[string]bool
	scalarDefaults map[string]float64

	categories map[Category][]string
	byProperty map[string]Category
	physics    map[string]struct{}
	adjectives map[string]string
}

// BoolDefault returns the default value for a boolean property. Unknown
// properties default to false, matching predicate evaluation.
func (c *Catalog) BoolDefault(prop string) bool {
	return c.boolDefaults[prop]
}

// ScalarDefault returns the default value for a scalar property. Unknown
// properties default to 0.
func (c *Catalog) ScalarDefault(prop string) float64 {
	return c.scalarDefaults[prop]
}

// BoolKeys returns the sorted canonical boolean property names.
func (c *Catalog) BoolKeys() []string {
	keys := make([]string, 0, len(c.boolDefaults))
	for k := range c.boolDefaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ScalarKeys returns the sorted canonical scalar property names.
func (c *Catalog) ScalarKeys() []string {
	keys := make([]string, 0, len(c.scalarDefaults))
	for k := range c.scalarDefaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasBool reports whether prop is a canonical boolean property.
func (c *Catalog) HasBool(prop string) bool {
	_, ok := c.boolDefaults[prop]
	return ok
}

// HasScalar reports whether prop is a canonical scalar property.
func (c *Catalog) HasScalar(prop string) bool {
	_, ok := c.scalarDefaults[prop]
	return ok
}

// Categorize returns the adjective category of a property. Unknown property
// names fall back to Quality.
func (c *Catalog) Categorize(prop string) Category {
	if cat, ok := c.byProperty[prop]; ok {
		return cat
	}
	return Quality
}

// IsCategoryClass reports whether prop names an item category ("star",
// "car", ...) rather than a descriptive adjective.
func (c *Catalog) IsCategoryClass(prop string) bool {
	return c.Categorize(prop) == CategoryClass
}

// Properties returns the property names in the given category, in their
// declared order.
func (c *Catalog) Properties(cat Category) []string {
	return c.categories[cat]
}

// TargetTypes returns all properties usable as question target types.
func (c *Catalog) TargetTypes() []string {
	return c.categories[CategoryClass]
}

// Colors returns all color properties.
func (c *Catalog) Colors() []string {
	return c.categories[Color]
}

// PhysicsProperties returns the physics-relevant subset of quality
// properties.
func (c *Catalog) PhysicsProperties() []string {
	props := make([]string, 0, len(c.physics))
	for _, p := range c.categories[Quality] {
		if _, ok := c.physics[p]; ok {
			props = append(props, p)
		}
	}
	return props
}

// IsPhysics reports whether prop is a physics-relevant property.
func (c *Catalog) IsPhysics(prop string) bool {
	_, ok := c.physics[prop]
	return ok
}

// HasPhysics reports whether any key of criteria is a physics property.
func (c *Catalog) HasPhysics(criteria map[string]bool) bool {
	for prop := range criteria {
		if c.IsPhysics(prop) {
			return true
		}
	}
	return false
}

// Adjective returns the natural-language adjective for a property. Manual
// overrides take precedence; otherwise the property name is cleaned up by
// stripping is_/has_ prefixes and replacing underscores with spaces.
func (c *Catalog) Adjective(prop string) string {
	if adj, ok := c.adjectives[prop]; ok {
		return adj
	}
	return cleanPropertyName(prop)
}

func cleanPropertyName(prop string) string {
	name := strings.TrimPrefix(prop, "is_")
	name = strings.TrimPrefix(name, "has_")
	return strings.ReplaceAll(name, "_", " ")
}
