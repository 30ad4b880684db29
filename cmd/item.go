package cmd

import (
	"fmt"
	"sort"

	"inventory-sync/core/utils"
	"inventory-sync/feature/inventory/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var itemDB string

// itemCmd is the parent command for item queries.
var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Inspect inventory items",
}

// itemShowCmd prints one item's description and additional info.
var itemShowCmd = &cobra.Command{
	Use:   "show <upc>",
	Short: "Show an item's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemShow,
}

func init() {
	itemCmd.PersistentFlags().StringVar(&itemDB, "db", "", "Store file")
	itemCmd.AddCommand(itemShowCmd)
	RootCmd.AddCommand(itemCmd)
}

func runItemShow(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap(itemDB)
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

	item, err := st.GetItem(args[0])
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("no item with barcode %s", args[0])
	}

	desc := item.Description
	if desc == "" {
		desc = "(no description)"
	}
	fmt.Printf("UPC: %s\n", item.UPC)
	fmt.Printf("Description: %s\n", desc)
	fmt.Printf("Created: %s\n", item.CreatedAt)
	fmt.Printf("Updated: %s\n", item.UpdatedAt)

	info := item.Info()
	if len(info) == 0 {
		return nil
	}

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("Additional info:")
	for _, k := range keys {
		fmt.Printf("  %s: %s\n", k, utils.ToString(info[k]))
	}
	return nil
}
