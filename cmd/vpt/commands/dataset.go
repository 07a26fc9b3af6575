package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/dataset"
)

// DatasetCmd represents the dataset command
var DatasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and validate saved datasets",
	Long: `Inspect and validate saved dataset files.

Examples:
  vpt dataset validate datasets/pilot/pilot.json`,
}

var datasetValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a dataset file",
	Long:  "Load a dataset JSON file and check its structure: header counts, sample labels, grid shapes and answer sets.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetValidate,
}

func init() {
	DatasetCmd.AddCommand(datasetValidateCmd)
}

func runDatasetValidate(cmd *cobra.Command, args []string) error {
	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	pterm.Success.Printf("Dataset %q is valid\n", d.Name)
	pterm.Printf("  Total samples:   %d\n", d.TotalSamples)
	pterm.Printf("  Control samples: %d\n", d.ControlSamples)
	pterm.Printf("  Test samples:    %d\n", d.TestSamples)
	return nil
}
