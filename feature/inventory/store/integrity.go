package store

import (
	"fmt"

	"inventory-sync/feature/inventory/models"
)

// IntegrityReport lists rows whose foreign references do not resolve.
// References are deliberately soft: the schema does not enforce them, so
// drift (e.g. a filtered export imported without its reference data) is
// reported here instead of blocking writes.
type IntegrityReport struct {
	OrphanInventory []models.InventoryEntry `json:"orphan_inventory"`
	OrphanScans     []models.ScanEvent      `json:"orphan_scans"`
}

// Clean reports whether no orphaned rows were found.
func (r *IntegrityReport) Clean() bool {
	return len(r.OrphanInventory) == 0 && len(r.OrphanScans) == 0
}

// CheckIntegrity finds inventory and scan rows that reference a nonexistent
// item or location.
func (s *Store) CheckIntegrity() (*IntegrityReport, error) {
	report := &IntegrityReport{}

	err := s.db.
		Where("item_upc NOT IN (SELECT upc FROM items) OR location_id NOT IN (SELECT id FROM locations)").
		Order("item_upc, location_id").
		Find(&report.OrphanInventory).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory references: %w", err)
	}

	err = s.db.
		Where("item_upc NOT IN (SELECT upc FROM items) OR location_id NOT IN (SELECT id FROM locations)").
		Order("id").
		Find(&report.OrphanScans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check scan history references: %w", err)
	}

	return report, nil
}
