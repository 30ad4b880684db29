package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"inventory-sync/feature/inventory/models"
	"inventory-sync/feature/inventory/store"

	"go.uber.org/zap"
)

// ImportSummary describes a completed import: the source bundle's manifest
// and the per-collection row counts applied.
type ImportSummary struct {
	Manifest Manifest `json:"manifest"`
	Counts   Counts   `json:"counts"`
}

// Importer applies an export bundle to a target store, either reconciling
// with existing rows (merge) or overwriting them (replace).
type Importer struct {
	store  *store.Store
	logger *zap.Logger
}

// NewImporter creates an importer bound to a store handle.
func NewImporter(st *store.Store, logger *zap.Logger) *Importer {
	return &Importer{store: st, logger: logger}
}

// Import reads the bundle in dir and applies it to the store as one atomic
// unit. The collections are processed in a fixed order (locations, items,
// inventory, scan history) so no row is ever written before the identities
// it references had their chance to land.
func (i *Importer) Import(ctx context.Context, dir string, merge bool) (*ImportSummary, error) {
	manifest, err := readManifest(dir)
	if err != nil {
		return nil, err
	}

	i.logger.Info("Importing bundle",
		zap.String("dir", dir),
		zap.String("workstation", manifest.Workstation),
		zap.String("export_date", manifest.ExportDate),
		zap.Bool("merge", merge),
	)

	var locations []models.Location
	if err := readArtifact(dir, LocationsFile, &locations); err != nil {
		return nil, err
	}
	var items []models.Item
	if err := readArtifact(dir, ItemsFile, &items); err != nil {
		return nil, err
	}
	var inventory []models.InventoryEntry
	if err := readArtifact(dir, InventoryFile, &inventory); err != nil {
		return nil, err
	}
	var scans []models.ScanEvent
	if err := readArtifact(dir, ScanHistoryFile, &scans); err != nil {
		return nil, err
	}

	err = i.store.WithContext(ctx).Transaction(func(tx *store.Store) error {
		for _, loc := range locations {
			if err := tx.InsertLocation(loc, !merge); err != nil {
				return err
			}
		}

		for _, item := range items {
			if merge {
				if err := tx.MergeItem(item); err != nil {
					return err
				}
			} else {
				if err := tx.ReplaceItem(item); err != nil {
					return err
				}
			}
		}

		for _, entry := range inventory {
			if merge {
				if err := tx.MergeInventory(entry); err != nil {
					return err
				}
			} else {
				if err := tx.ReplaceInventory(entry); err != nil {
					return err
				}
			}
		}

		// History rows are immutable facts: always appended, never merged.
		for _, event := range scans {
			if err := tx.AppendScan(event); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import from %s failed: %w", dir, err)
	}

	summary := &ImportSummary{
		Manifest: *manifest,
		Counts: Counts{
			Locations:   len(locations),
			Items:       len(items),
			Inventory:   len(inventory),
			ScanHistory: len(scans),
		},
	}

	i.logger.Info("Import completed",
		zap.String("dir", dir),
		zap.Int("locations", summary.Counts.Locations),
		zap.Int("items", summary.Counts.Items),
		zap.Int("inventory", summary.Counts.Inventory),
		zap.Int("scan_history", summary.Counts.ScanHistory),
	)

	return summary, nil
}

// readManifest loads the bundle's metadata descriptor. Its absence is the
// structural signal that dir is not a valid export bundle.
func readManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMissingManifest, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &manifest, nil
}

// readArtifact loads one collection snapshot from dir/name into v.
func readArtifact(dir, name string, v any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse collection %s: %w", path, err)
	}
	return nil
}
