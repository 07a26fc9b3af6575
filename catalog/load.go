package catalog

import (
	"encoding/json"
	"os"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
)

// fileFormat is the on-disk shape of a catalog defaults file. It is shared
// with the item-pool files: a catalog file is a single item record holding
// the default value of every property.
type fileFormat struct {
	Name         string             `json:"name"`
	ImagePath    string             `json:"image_path"`
	BooleanProps map[string]bool    `json:"boolean_properties"`
	ScalarProps  map[string]float64 `json:"scalar_properties"`
}

// Load reads a catalog defaults file. Properties present in the file but
// missing from the classification tables categorize as Quality.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog defaults %s", path)
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing catalog defaults %s", path)
	}
	if len(f.BooleanProps) == 0 {
		return nil, errors.NewConfigErrorf("catalog defaults %s declare no boolean properties", path)
	}
	if f.ScalarProps == nil {
		f.ScalarProps = map[string]float64{}
	}
	return build(f.BooleanProps, f.ScalarProps), nil
}

// Save writes the catalog's default property maps back to a defaults file.
func Save(c *Catalog, path string) error {
	f := fileFormat{
		Name:         "[DEFAULT VALUES]",
		BooleanProps: c.boolDefaults,
		ScalarProps:  c.scalarDefaults,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling catalog defaults")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing catalog defaults %s", path)
	}
	return nil
}
