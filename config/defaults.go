package config

import (
	"github.com/spf13/viper"
)

// Directory permissions for created config directories.
const DefaultDirPermissions = 0o755

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Dataset shape defaults
	v.SetDefault("generator.grid_width", 4)
	v.SetDefault("generator.grid_height", 4)
	v.SetDefault("generator.dataset_size", 1000)
	v.SetDefault("generator.control_portion", 0.5)

	// Generation proportion defaults
	v.SetDefault("generator.item_fill_ratio", 0.5)
	v.SetDefault("generator.block_ratio", 0.4)
	v.SetDefault("generator.size_prop", 0.25)
	v.SetDefault("generator.spatial_same_prop", 0.25)
	v.SetDefault("generator.spatial_diff_prop", 0.25)
	v.SetDefault("generator.physics_prop", 0.5)
	v.SetDefault("generator.related_item_prop", 0.3)
	v.SetDefault("generator.related_blocked_prop", 0.5)

	// 0 seeds from the clock at generation time
	v.SetDefault("generator.seed", 0)

	// Path defaults
	v.SetDefault("paths.items_file", "items.json")
	v.SetDefault("paths.catalog_file", "")
	v.SetDefault("paths.output_dir", "datasets")

	// Logging defaults
	v.SetDefault("log.json", false)
}
