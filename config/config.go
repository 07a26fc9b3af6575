// Package config provides layered configuration for the vpt CLI using
// Viper: defaults, then system/user/project TOML files, then VPT_
// environment variables.
package config

import (
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/gen"
)

// Config is the complete vpt configuration.
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Log       LogConfig       `mapstructure:"log"`
}

// GeneratorConfig holds the dataset shape and all generation proportions.
type GeneratorConfig struct {
	GridWidth      int     `mapstructure:"grid_width"`
	GridHeight     int     `mapstructure:"grid_height"`
	DatasetSize    int     `mapstructure:"dataset_size"`
	ControlPortion float64 `mapstructure:"control_portion"` // portion of the dataset that is control samples

	ItemFillRatio      float64 `mapstructure:"item_fill_ratio"`      // portion of cells holding an item
	BlockRatio         float64 `mapstructure:"block_ratio"`          // portion of cells occluded from the director
	SizeProp           float64 `mapstructure:"size_prop"`            // questions with a size rule
	SpatialSameProp    float64 `mapstructure:"spatial_same_prop"`    // spatial rule, shared perspective
	SpatialDiffProp    float64 `mapstructure:"spatial_diff_prop"`    // spatial rule, director's perspective
	PhysicsProp        float64 `mapstructure:"physics_prop"`         // questions constrained to physics properties
	RelatedItemProp    float64 `mapstructure:"related_item_prop"`    // non-target items matching the filter
	RelatedBlockedProp float64 `mapstructure:"related_blocked_prop"` // related items occluded (test samples only)

	Seed int64 `mapstructure:"seed"` // 0 = seed from the clock
}

// PathsConfig holds the file locations the CLI reads and writes.
type PathsConfig struct {
	ItemsFile   string `mapstructure:"items_file"`
	CatalogFile string `mapstructure:"catalog_file"` // empty = built-in catalog
	OutputDir   string `mapstructure:"output_dir"`
}

// LogConfig configures logger output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// Params converts the generator section to generation parameters.
func (g GeneratorConfig) Params() gen.Params {
	return gen.Params{
		ItemFillRatio:      g.ItemFillRatio,
		BlockRatio:         g.BlockRatio,
		SizeProp:           g.SizeProp,
		SpatialSameProp:    g.SpatialSameProp,
		SpatialDiffProp:    g.SpatialDiffProp,
		PhysicsProp:        g.PhysicsProp,
		RelatedItemProp:    g.RelatedItemProp,
		RelatedBlockedProp: g.RelatedBlockedProp,
	}
}

// ControlCount returns how many samples of the dataset are control
// samples; the remainder are test samples.
func (g GeneratorConfig) ControlCount() int {
	return int(float64(g.DatasetSize) * g.ControlPortion)
}
