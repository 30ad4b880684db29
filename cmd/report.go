package cmd

import (
	"fmt"

	"inventory-sync/feature/inventory/report"
	"inventory-sync/feature/inventory/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportOutput string
	reportDB     string
	reportTopN   int
)

// reportCmd generates the inventory summary report file.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an inventory summary report",
	Long: `Generate a human-readable summary of the Record Store: totals,
per-location breakdown, and the top items by quantity.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "inventory_report.txt", "Output report file")
	reportCmd.Flags().StringVar(&reportDB, "db", "", "Store file to report on")
	reportCmd.Flags().IntVar(&reportTopN, "top", report.DefaultTopN, "Number of items in the ranking")
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, logg, err := bootstrap(reportDB)
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

	svc := report.NewService(st.DB(), logg)
	if err := svc.WriteFile(ctx, reportOutput, reportTopN); err != nil {
		return err
	}

	fmt.Printf("Report generated: %s\n", reportOutput)
	return nil
}
