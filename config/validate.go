package config

import (
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
)

// Validate checks that the configuration can drive a generation run.
func (c *Config) Validate() error {
	if c.Generator.GridWidth <= 0 || c.Generator.GridHeight <= 0 {
		return errors.NewConfigErrorf("generator grid dimensions must be positive, got %dx%d",
			c.Generator.GridWidth, c.Generator.GridHeight)
	}
	if c.Generator.DatasetSize <= 0 {
		return errors.NewConfigErrorf("generator.dataset_size must be positive, got %d",
			c.Generator.DatasetSize)
	}
	if c.Generator.ControlPortion < 0 || c.Generator.ControlPortion > 1 {
		return errors.NewConfigErrorf("generator.control_portion must be in [0, 1], got %g",
			c.Generator.ControlPortion)
	}
	if c.Paths.ItemsFile == "" {
		return errors.NewConfigErrorf("paths.items_file must not be empty")
	}
	if c.Paths.OutputDir == "" {
		return errors.NewConfigErrorf("paths.output_dir must not be empty")
	}

	// Proportion ranges and their sum are the generator's rules.
	return c.Generator.Params().Validate()
}
