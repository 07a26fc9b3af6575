package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/catalog"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"
	"github.com/ProFrenchToast/Visual-Perspective-taking-clone/item"
)

// ItemsCmd represents the items command
var ItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Validate and normalize item pool files",
	Long: `Validate and normalize item pool JSON files.

Every item must carry exactly the boolean and scalar properties the
catalog defines. The merge subcommand folds explicit values equal to
their catalog defaults back into implicit defaults, shrinking the file.

Examples:
  vpt items validate items.json
  vpt items merge items.json`,
}

var itemsValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate an item pool file",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsValidate,
}

var itemsMergeCmd = &cobra.Command{
	Use:   "merge <path>",
	Short: "Fold default-valued properties back into catalog defaults",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsMerge,
}

func init() {
	ItemsCmd.PersistentFlags().String("catalog", "", "Path to a property catalog file (default: built-in)")
	ItemsCmd.AddCommand(itemsValidateCmd)
	ItemsCmd.AddCommand(itemsMergeCmd)
}

func itemsCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func runItemsValidate(cmd *cobra.Command, args []string) error {
	cat, err := itemsCatalog(cmd)
	if err != nil {
		return err
	}

	pool, err := item.ParsePool(cat, args[0])
	if err != nil {
		return err
	}
	if problems := item.ValidatePool(cat, pool); len(problems) > 0 {
		pterm.Error.Printf("Item pool %s has %d problem(s):\n", args[0], len(problems))
		for _, p := range problems {
			pterm.Printf("  - %s\n", p)
		}
		return errors.NewConfigErrorf("item validation failed for %s", args[0])
	}

	pterm.Success.Printf("Item pool %s is valid (%d items)\n", args[0], len(pool))
	return nil
}

func runItemsMerge(cmd *cobra.Command, args []string) error {
	cat, err := itemsCatalog(cmd)
	if err != nil {
		return err
	}

	pool, err := item.LoadPool(cat, args[0])
	if err != nil {
		return err
	}

	merged := 0
	for _, it := range pool {
		merged += it.MergeDefaults(cat)
	}
	if merged == 0 {
		pterm.Info.Printf("Item pool %s already minimal, nothing to merge\n", args[0])
		return nil
	}

	if err := item.SavePool(pool, args[0]); err != nil {
		return err
	}
	pterm.Success.Printf("Merged %d default-valued properties across %d items in %s\n",
		merged, len(pool), args[0])
	return nil
}
