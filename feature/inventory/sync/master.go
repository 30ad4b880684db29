package sync

import (
	"context"
	"fmt"
	"os"
	"time"

	"inventory-sync/feature/inventory/store"

	"go.uber.org/zap"
)

// SourceResult records the outcome of consolidating one source directory.
type SourceResult struct {
	Dir     string  `json:"dir"`
	Counts  Counts  `json:"counts"`
	Err     error   `json:"-"`
	Failure *string `json:"failure,omitempty"`
}

// MasterSummary reports a consolidation run: the master store path, the
// backup taken (if any), and the per-source outcomes in application order.
type MasterSummary struct {
	OutputPath string         `json:"output_path"`
	BackupPath string         `json:"backup_path,omitempty"`
	Sources    []SourceResult `json:"sources"`
}

// Failed returns the directories whose import was skipped.
func (m *MasterSummary) Failed() []string {
	var failed []string
	for _, src := range m.Sources {
		if src.Err != nil {
			failed = append(failed, src.Dir)
		}
	}
	return failed
}

// Consolidator builds a master store from multiple workstation export
// bundles.
type Consolidator struct {
	logger *zap.Logger
}

// NewConsolidator creates a consolidator.
func NewConsolidator(logger *zap.Logger) *Consolidator {
	return &Consolidator{logger: logger}
}

// CreateMaster initializes a fresh store at outputPath and merge-imports
// each source directory in order. A pre-existing file at outputPath is
// renamed aside to a timestamped backup first, never silently destroyed.
//
// A bad source (corrupt or incomplete bundle) is reported and skipped so one
// broken station export cannot block consolidation of the others. Source
// order matters for last-write-wins tie-breaking beyond timestamps: supply
// directories from least to most authoritative.
func (c *Consolidator) CreateMaster(ctx context.Context, sourceDirs []string, outputPath string) (*MasterSummary, error) {
	summary := &MasterSummary{OutputPath: outputPath}

	if _, err := os.Stat(outputPath); err == nil {
		backup := fmt.Sprintf("%s.backup.%s", outputPath, time.Now().Format("20060102_150405"))
		if err := os.Rename(outputPath, backup); err != nil {
			return nil, fmt.Errorf("failed to back up existing store %s: %w", outputPath, err)
		}
		summary.BackupPath = backup
		c.logger.Info("Backed up existing store", zap.String("backup", backup))
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat %s: %w", outputPath, err)
	}

	master, err := store.OpenPath(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize master store %s: %w", outputPath, err)
	}
	defer func() {
		if cerr := master.Close(); cerr != nil {
			c.logger.Warn("Failed to close master store", zap.Error(cerr))
		}
	}()

	importer := NewImporter(master, c.logger)

	for _, dir := range sourceDirs {
		result := SourceResult{Dir: dir}

		imported, err := importer.Import(ctx, dir, true)
		if err != nil {
			msg := err.Error()
			result.Err = err
			result.Failure = &msg
			c.logger.Error("Skipping source", zap.String("dir", dir), zap.Error(err))
		} else {
			result.Counts = imported.Counts
		}

		summary.Sources = append(summary.Sources, result)
	}

	c.logger.Info("Master store created",
		zap.String("output", outputPath),
		zap.Int("sources", len(sourceDirs)),
		zap.Int("failed", len(summary.Failed())),
	)

	return summary, nil
}
