package cmd

import (
	"fmt"

	"inventory-sync/feature/inventory/sync"

	"github.com/spf13/cobra"
)

var masterOutput string

// masterCmd consolidates multiple export bundles into a fresh master store.
var masterCmd = &cobra.Command{
	Use:   "master <dir>...",
	Short: "Create a master store from workstation exports",
	Long: `Build a consolidated master Record Store from multiple workstation
export bundles. Each source is merge-imported in the given order; a broken
source is reported and skipped. Any existing file at the output path is
renamed to a timestamped backup first.

Source order matters when timestamps tie: list directories from least to
most authoritative.

Example:
  inventory-sync master exports/station-a exports/station-b -o master_inventory.db`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMaster,
}

func init() {
	masterCmd.Flags().StringVarP(&masterOutput, "output", "o", "master_inventory.db", "Output store file")
	RootCmd.AddCommand(masterCmd)
}

func runMaster(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, logg, err := bootstrap("")
	if err != nil {
		return err
	}

	consolidator := sync.NewConsolidator(logg)

	summary, err := consolidator.CreateMaster(ctx, args, masterOutput)
	if err != nil {
		return err
	}

	if summary.BackupPath != "" {
		fmt.Printf("Backed up existing store to %s\n", summary.BackupPath)
	}
	for _, src := range summary.Sources {
		if src.Err != nil {
			fmt.Printf("Error importing %s: %v\n", src.Dir, src.Err)
			continue
		}
		fmt.Printf("Imported %s (%d locations, %d items, %d inventory, %d scans)\n",
			src.Dir, src.Counts.Locations, src.Counts.Items, src.Counts.Inventory, src.Counts.ScanHistory)
	}
	fmt.Printf("Master store created at %s\n", masterOutput)

	return nil
}
