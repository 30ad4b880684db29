package cmd

import (
	"fmt"

	"inventory-sync/feature/inventory/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkDB string

// checkCmd reports soft referential-integrity violations in the store.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check store referential integrity",
	Long: `Report inventory and scan-history rows that reference a nonexistent
item or location. References are not enforced by the schema; this check
surfaces drift (e.g. a filtered export imported in isolation) without
blocking any operation.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkDB, "db", "", "Store file to check")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap(checkDB)
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

	report, err := st.CheckIntegrity()
	if err != nil {
		return err
	}

	if report.Clean() {
		fmt.Println("Store is consistent: all inventory and scan rows resolve.")
		return nil
	}

	logg.Warn("Dangling references found",
		zap.Int("orphan_inventory", len(report.OrphanInventory)),
		zap.Int("orphan_scans", len(report.OrphanScans)),
	)

	for _, entry := range report.OrphanInventory {
		fmt.Printf("orphan inventory: item=%s location=%s qty=%d\n", entry.ItemUPC, entry.LocationID, entry.Quantity)
	}
	for _, event := range report.OrphanScans {
		fmt.Printf("orphan scan: item=%s location=%s at=%s\n", event.ItemUPC, event.LocationID, event.ScannedAt)
	}

	return nil
}
