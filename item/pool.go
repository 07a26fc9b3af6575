package item

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
)

// Record is the on-disk shape of one item template.
type Record struct {
	Name         string             `json:"name"`
	ImagePath    string             `json:"image_path"`
	BooleanProps map[string]bool    `json:"boolean_properties,omitempty"`
	ScalarProps  map[string]float64 `json:"scalar_properties,omitempty"`
}

// ToRecord serializes the item with its full property maps.
func (it *Item) ToRecord() Record {
	return Record{
		Name:         it.Name,
		ImagePath:    it.ImageRef,
		BooleanProps: it.Bools,
		ScalarProps:  it.Scalars,
	}
}

// FromRecord builds an Item from a stored record, treating every stored
// property as an explicit override on the catalog defaults.
func FromRecord(cat *catalog.Catalog, rec Record) *Item {
	return New(cat, rec.Name, rec.ImagePath, rec.BooleanProps, rec.ScalarProps)
}

// LoadPool reads and validates an item-pool JSON file. Any validation
// failure (schema or business rules) is a configuration error listing every
// offending item.
func LoadPool(cat *catalog.Catalog, path string) ([]*Item, error) {
	items, err := ParsePool(cat, path)
	if err != nil {
		return nil, err
	}
	if problems := ValidatePool(cat, items); len(problems) > 0 {
		return nil, errors.NewConfigErrorf("item validation failed for %s:\n  - %s",
			path, strings.Join(problems, "\n  - "))
	}
	return items, nil
}

// ParsePool reads an item-pool JSON file without business-rule validation.
func ParsePool(cat *catalog.Catalog, path string) ([]*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading item pool %s", path)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "parsing item pool %s", path)
	}
	items := make([]*Item, 0, len(records))
	for _, rec := range records {
		items = append(items, FromRecord(cat, rec))
	}
	return items, nil
}

// SavePool writes an item pool back to a JSON file.
func SavePool(items []*Item, path string) error {
	records := make([]Record, 0, len(items))
	for _, it := range items {
		records = append(records, it.ToRecord())
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling item pool")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing item pool %s", path)
	}
	return nil
}

// ValidatePool checks business rules over a loaded pool: non-empty, every
// item named, names unique, and each item's property key sets exactly equal
// to the catalog's. Returns a description of every violation found.
func ValidatePool(cat *catalog.Catalog, items []*Item) []string {
	var problems []string
	if len(items) == 0 {
		problems = append(problems, "item pool is empty")
		return problems
	}

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.Name == "" {
			problems = append(problems, "item with empty name")
			continue
		}
		if _, dup := seen[it.Name]; dup {
			problems = append(problems, "duplicate item name: "+it.Name)
		}
		seen[it.Name] = struct{}{}

		for _, k := range cat.BoolKeys() {
			if _, ok := it.Bools[k]; !ok {
				problems = append(problems, "item "+it.Name+" missing boolean property "+k)
			}
		}
		for k := range it.Bools {
			if !cat.HasBool(k) {
				problems = append(problems, "item "+it.Name+" has unexpected boolean property "+k)
			}
		}
		for _, k := range cat.ScalarKeys() {
			if _, ok := it.Scalars[k]; !ok {
				problems = append(problems, "item "+it.Name+" missing scalar property "+k)
			}
		}
		for k := range it.Scalars {
			if !cat.HasScalar(k) {
				problems = append(problems, "item "+it.Name+" has unexpected scalar property "+k)
			}
		}
	}
	return problems
}
