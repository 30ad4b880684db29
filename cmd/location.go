package cmd

import (
	"fmt"

	"inventory-sync/feature/inventory/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	locationDescription string
	locationDB          string
)

// locationCmd is the parent command for location management.
var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage storage locations",
}

// locationAddCmd creates a new location with a generated id.
var locationAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new storage location",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationAdd,
}

// locationListCmd lists all known locations.
var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List storage locations",
	Args:  cobra.NoArgs,
	RunE:  runLocationList,
}

func init() {
	locationAddCmd.Flags().StringVar(&locationDescription, "description", "", "Location description")
	locationCmd.PersistentFlags().StringVar(&locationDB, "db", "", "Store file")
	locationCmd.AddCommand(locationAddCmd, locationListCmd)
	RootCmd.AddCommand(locationCmd)
}

func runLocationAdd(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap(locationDB)
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

	loc, err := st.AddLocation(args[0], locationDescription)
	if err != nil {
		return err
	}

	fmt.Printf("Added location %q with id %s\n", loc.Name, loc.ID)
	return nil
}

func runLocationList(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap(locationDB)
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

	locations, err := st.Locations()
	if err != nil {
		return err
	}

	if len(locations) == 0 {
		fmt.Println("No locations defined.")
		return nil
	}
	for _, loc := range locations {
		fmt.Printf("%s  %s", loc.ID, loc.Name)
		if loc.Description != "" {
			fmt.Printf(" (%s)", loc.Description)
		}
		fmt.Println()
	}
	return nil
}
