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

// ExportSummary describes a completed export: the manifest written to the
// bundle and the per-collection row counts.
type ExportSummary struct {
	Manifest Manifest `json:"manifest"`
	Counts   Counts   `json:"counts"`
}

// Exporter serializes a store snapshot into an export bundle directory.
// It never mutates the store.
type Exporter struct {
	store       *store.Store
	workstation string
	logger      *zap.Logger
}

// NewExporter creates an exporter bound to a store handle.
func NewExporter(st *store.Store, workstation string, logger *zap.Logger) *Exporter {
	return &Exporter{store: st, workstation: workstation, logger: logger}
}

// Export writes a self-contained snapshot into dir, creating it if absent.
// Locations and items are always exported in full; inventory and scan
// history are filtered to rows with timestamps >= since when since is
// non-empty. Prior artifacts in dir are overwritten: every export call is a
// fresh snapshot.
func (e *Exporter) Export(ctx context.Context, dir, since string) (*ExportSummary, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	st := e.store.WithContext(ctx)

	manifest := Manifest{
		ExportDate:  models.Now(),
		Workstation: e.workstation,
	}
	if since != "" {
		manifest.SinceDate = &since
	}
	if err := writeArtifact(dir, ManifestFile, manifest); err != nil {
		return nil, err
	}

	locations, err := st.Locations()
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(dir, LocationsFile, locations); err != nil {
		return nil, err
	}

	items, err := st.Items()
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(dir, ItemsFile, items); err != nil {
		return nil, err
	}

	inventory, err := st.InventoryEntries(since)
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(dir, InventoryFile, inventory); err != nil {
		return nil, err
	}

	scans, err := st.ScanEvents(since)
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(dir, ScanHistoryFile, scans); err != nil {
		return nil, err
	}

	summary := &ExportSummary{
		Manifest: manifest,
		Counts: Counts{
			Locations:   len(locations),
			Items:       len(items),
			Inventory:   len(inventory),
			ScanHistory: len(scans),
		},
	}

	e.logger.Info("Data exported",
		zap.String("dir", dir),
		zap.Int("locations", summary.Counts.Locations),
		zap.Int("items", summary.Counts.Items),
		zap.Int("inventory", summary.Counts.Inventory),
		zap.Int("scan_history", summary.Counts.ScanHistory),
	)

	return summary, nil
}

// writeArtifact marshals v as indented JSON into dir/name. Slices marshal
// as arrays even when empty is desired; callers pass non-nil slices.
func writeArtifact(dir, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
