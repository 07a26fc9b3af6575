package catalog

// Built-in property classification. The category table decides how a filter
// criterion is rendered; the physics subset drives the physics/non-physics
// question split during generation.
var defaultCategories = map[Category][]string{
	Size:  {"small", "large"},
	Shape: {"star", "circle"},
	Color: {"red", "blue", "brown", "yellow", "orange", "black", "purple", "green"},
	Material: {"lego"},
	// Only these can be target types.
	CategoryClass: {"Music_instument", "fruit", "bag", "book", "calculator", "shoe",
		"camera", "clothes", "shirt", "plant", "socks", "dress", "car"},
	Quality: {"is_food", "is_sweet", "stackable", "sharp", "hot", "used_for_cooking",
		"holds_water", "valuable", "cold", "holds_money"},
}

// Physics-relevant subset of quality properties.
var defaultPhysics = []string{"stackable", "sharp", "hot", "cold"}

// Manual overrides for properties whose cleaned-up names read badly.
// "Music_instument" carries a typo from the upstream item files; the override
// also fixes the spelling in rendered questions.
var adjectiveOverrides = map[string]string{
	"Music_instument":  "musical instrument",
	"used_for_cooking": "cooking utensil",
	"holds_water":      "water container",
	"holds_money":      "money container",
	"is_food":          "food",
	"is_sweet":         "sweet",
}

// Default returns the built-in catalog: every classified boolean property
// defaulting to false and a single scalar property "size" defaulting to 0.
func Default() *Catalog {
	boolDefaults := make(map[string]bool)
	for _, props := range defaultCategories {
		for _, p := range props {
			boolDefaults[p] = false
		}
	}
	return build(boolDefaults, map[string]float64{"size": 0})
}

// build assembles a Catalog from property default maps and the built-in
// classification tables.
func build(boolDefaults map[string]bool, scalarDefaults map[string]float64) *Catalog {
	c := &Catalog{
		boolDefaults:   boolDefaults,
		scalarDefaults: scalarDefaults,
		categories:     make(map[Category][]string, len(defaultCategories)),
		byProperty:     make(map[string]Category),
		physics:        make(map[string]struct{}, len(defaultPhysics)),
		adjectives:     adjectiveOverrides,
	}
	for cat, props := range defaultCategories {
		c.categories[cat] = append([]string(nil), props...)
		for _, p := range props {
			c.byProperty[p] = cat
		}
	}
	for _, p := range defaultPhysics {
		c.physics[p] = struct{}{}
	}
	return c
}
