package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/cmd/vpt/commands"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/config"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/logger"
)

var rootCmd = &cobra.Command{
	Use:   "vpt",
	Short: "vpt - Visual perspective-taking dataset generator",
	Long: `vpt - Synthetic dataset generator for the director task.

vpt builds grid-world samples for visual perspective-taking experiments:
a director faces the participant across a grid of items, some cells
occluded from the director's side, and asks questions whose answers may
depend on whose viewpoint is taken.

Available commands:
  generate - Generate a dataset of control and test samples
  dataset  - Validate saved dataset files
  items    - Validate or normalize item pool files
  config   - Show and validate configuration
  version  - Show version information

Examples:
  vpt generate --name pilot          # Generate a dataset with config defaults
  vpt generate --name rel --relational
  vpt dataset validate datasets/pilot/pilot.json
  vpt items validate items.json
  vpt config show --format toml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		jsonLogs := false
		if cfg, err := config.Load(); err == nil {
			jsonLogs = cfg.Log.JSON
		}
		if err := logger.InitializeWithLevel(jsonLogs, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.DatasetCmd)
	rootCmd.AddCommand(commands.ItemsCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
