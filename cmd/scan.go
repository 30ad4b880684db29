package cmd

import (
	"fmt"

	"inventory-sync/feature/inventory/store"
	"inventory-sync/feature/inventory/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scanLocation string
	scanQty      int
	scanDB       string
)

// scanCmd records a barcode scan against a location.
var scanCmd = &cobra.Command{
	Use:   "scan <upc>",
	Short: "Record a scanned item at a location",
	Long: `Record a physical scan: the item is created on first sight, the
inventory count for the (item, location) pair accumulates, and an audit row
is appended to scan history with this workstation's identity.

Example:
  inventory-sync scan 012345678905 --location 8f14e45f-ceea-4e1b-9c1d-0b1f6a3f2c11 --qty 3`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanLocation, "location", "", "Location id to scan into (required)")
	scanCmd.Flags().IntVar(&scanQty, "qty", 1, "Quantity scanned")
	scanCmd.Flags().StringVar(&scanDB, "db", "", "Store file")
	_ = scanCmd.MarkFlagRequired("location")
	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap(scanDB)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logg.Warn("Failed to close store", zap.Error(cerr))
		}
	}()

	upc := args[0]
	workstation := sync.ResolveWorkstation(cfg.Sync.Workstation)

	if err := st.ScanItem(upc, scanLocation, scanQty, workstation); err != nil {
		return err
	}

	item, err := st.GetItem(upc)
	if err != nil {
		return err
	}

	desc := "no description yet"
	if item != nil && item.Description != "" {
		desc = item.Description
	}
	fmt.Printf("Scanned %s x%d (%s)\n", upc, scanQty, desc)

	return nil
}
