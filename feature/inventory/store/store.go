package store

import (
	"context"
	"errors"
	"fmt"

	"inventory-sync/core/database"
	"inventory-sync/feature/inventory/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the Record Store handle. It exclusively owns the four entity
// collections; the exporter, importer, consolidator, and reporter only ever
// act through this API.
type Store struct {
	db *gorm.DB
}

// Open connects to the store described by cfg and migrates the schema.
func Open(cfg database.Config) (*Store, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return s, nil
}

// OpenPath opens a sqlite store file directly. This is the common case for
// workstation stores and freshly built master stores.
func OpenPath(path string) (*Store, error) {
	return Open(database.Config{Driver: database.DriverSQLite, Path: path})
}

func (s *Store) migrate() error {
	err := s.db.AutoMigrate(
		&models.Location{},
		&models.Item{},
		&models.InventoryEntry{},
		&models.ScanEvent{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate store schema: %w", err)
	}
	return nil
}

// Close releases the store connection. Must run on every exit path so the
// store file is never left locked.
func (s *Store) Close() error {
	return database.Close(s.db)
}

// DB exposes the underlying connection for read-only aggregation queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// WithContext returns a store view whose operations are bound to ctx.
func (s *Store) WithContext(ctx context.Context) *Store {
	return &Store{db: s.db.WithContext(ctx)}
}

// Transaction runs fn against a transactional view of the store. Either all
// writes inside fn are persisted or none are visible to subsequent reads.
func (s *Store) Transaction(fn func(*Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Locations returns all locations ordered by name.
func (s *Store) Locations() ([]models.Location, error) {
	locations := make([]models.Location, 0)
	if err := s.db.Order("name").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}
	return locations, nil
}

// GetLocation returns the location with the given id, or nil if absent.
func (s *Store) GetLocation(id string) (*models.Location, error) {
	var loc models.Location
	err := s.db.Where("id = ?", id).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read location %s: %w", id, err)
	}
	return &loc, nil
}

// Items returns all items ordered by barcode.
func (s *Store) Items() ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := s.db.Order("upc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// GetItem returns the item with the given barcode, or nil if absent.
func (s *Store) GetItem(upc string) (*models.Item, error) {
	var item models.Item
	err := s.db.Where("upc = ?", upc).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read item %s: %w", upc, err)
	}
	return &item, nil
}

// InventoryEntries returns inventory rows, optionally filtered to those
// last scanned at or after since (ISO-8601 string, may be date-only).
func (s *Store) InventoryEntries(since string) ([]models.InventoryEntry, error) {
	entries := make([]models.InventoryEntry, 0)
	q := s.db.Order("item_upc, location_id")
	if since != "" {
		q = q.Where("last_scanned >= ?", since)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return entries, nil
}

// ScanEvents returns scan history rows, optionally filtered to those
// scanned at or after since.
func (s *Store) ScanEvents(since string) ([]models.ScanEvent, error) {
	events := make([]models.ScanEvent, 0)
	q := s.db.Order("id")
	if since != "" {
		q = q.Where("scanned_at >= ?", since)
	}
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to read scan history: %w", err)
	}
	return events, nil
}

// AddLocation creates a new location with a generated id.
func (s *Store) AddLocation(name, description string) (*models.Location, error) {
	loc := models.Location{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   models.Now(),
	}
	if err := s.db.Create(&loc).Error; err != nil {
		return nil, fmt.Errorf("failed to add location %q: %w", name, err)
	}
	return &loc, nil
}

// InsertLocation writes an incoming location row. A location's identity and
// content are stable once created anywhere in the fleet, so an existing id
// is never an error: merge skips it, replace overwrites it.
func (s *Store) InsertLocation(loc models.Location, replace bool) error {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}
	if replace {
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "created_at"}),
		}
	}
	if err := s.db.Clauses(onConflict).Create(&loc).Error; err != nil {
		return fmt.Errorf("failed to write location %s: %w", loc.ID, err)
	}
	return nil
}

// MergeItem applies last-write-wins by updated_at. Description and
// additional_info are one atomic unit, replaced together only when the
// incoming updated_at is strictly greater than the stored one.
func (s *Store) MergeItem(item models.Item) error {
	existing, err := s.GetItem(item.UPC)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := s.db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.UPC, err)
		}
		return nil
	}
	if item.UpdatedAt <= existing.UpdatedAt {
		return nil
	}
	updates := map[string]any{
		"description":     item.Description,
		"additional_info": item.AdditionalInfo,
		"updated_at":      item.UpdatedAt,
	}
	if err := s.db.Model(&models.Item{}).Where("upc = ?", item.UPC).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to merge item %s: %w", item.UPC, err)
	}
	return nil
}

// ReplaceItem unconditionally overwrites the row for the item's barcode.
func (s *Store) ReplaceItem(item models.Item) error {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "upc"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "additional_info", "created_at", "updated_at"}),
	}
	if err := s.db.Clauses(onConflict).Create(&item).Error; err != nil {
		return fmt.Errorf("failed to replace item %s: %w", item.UPC, err)
	}
	return nil
}

// SaveItem creates the item or updates its description and additional info,
// bumping updated_at so the write wins any later timestamp comparison.
func (s *Store) SaveItem(upc, description string, info map[string]any) (*models.Item, error) {
	existing, err := s.GetItem(upc)
	if err != nil {
		return nil, err
	}
	now := models.Now()
	if existing == nil {
		item := models.Item{
			UPC:         upc,
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if info != nil {
			if err := item.SetInfo(info); err != nil {
				return nil, fmt.Errorf("failed to encode additional info for %s: %w", upc, err)
			}
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to insert item %s: %w", upc, err)
		}
		return &item, nil
	}

	if description != "" {
		existing.Description = description
	}
	if info != nil {
		merged := existing.Info()
		for k, v := range info {
			merged[k] = v
		}
		if err := existing.SetInfo(merged); err != nil {
			return nil, fmt.Errorf("failed to encode additional info for %s: %w", upc, err)
		}
	}
	existing.UpdatedAt = now
	if err := s.db.Save(existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update item %s: %w", upc, err)
	}
	return existing, nil
}

// MergeInventory accumulates an incoming inventory row onto the stored row
// for the same (item, location) pair. Quantities add because independent
// workstations counted different physical items; last_scanned keeps the
// later timestamp. Source row ids are never carried over.
func (s *Store) MergeInventory(entry models.InventoryEntry) error {
	existing, err := s.getInventory(entry.ItemUPC, entry.LocationID)
	if err != nil {
		return err
	}
	if existing == nil {
		entry.ID = 0
		if err := s.db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to insert inventory %s@%s: %w", entry.ItemUPC, entry.LocationID, err)
		}
		return nil
	}
	existing.Quantity += entry.Quantity
	if entry.LastScanned > existing.LastScanned {
		existing.LastScanned = entry.LastScanned
	}
	if err := s.db.Save(existing).Error; err != nil {
		return fmt.Errorf("failed to merge inventory %s@%s: %w", entry.ItemUPC, entry.LocationID, err)
	}
	return nil
}

// ReplaceInventory overwrites the stored row for the (item, location) pair.
// The quantity is NOT summed in replace mode.
func (s *Store) ReplaceInventory(entry models.InventoryEntry) error {
	existing, err := s.getInventory(entry.ItemUPC, entry.LocationID)
	if err != nil {
		return err
	}
	if existing == nil {
		entry.ID = 0
		if err := s.db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to insert inventory %s@%s: %w", entry.ItemUPC, entry.LocationID, err)
		}
		return nil
	}
	existing.Quantity = entry.Quantity
	existing.LastScanned = entry.LastScanned
	if err := s.db.Save(existing).Error; err != nil {
		return fmt.Errorf("failed to replace inventory %s@%s: %w", entry.ItemUPC, entry.LocationID, err)
	}
	return nil
}

func (s *Store) getInventory(itemUPC, locationID string) (*models.InventoryEntry, error) {
	var entry models.InventoryEntry
	err := s.db.Where("item_upc = ? AND location_id = ?", itemUPC, locationID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s@%s: %w", itemUPC, locationID, err)
	}
	return &entry, nil
}

// AppendScan inserts a scan event. History rows are immutable facts; every
// incoming row becomes a new row with a fresh synthetic id.
func (s *Store) AppendScan(event models.ScanEvent) error {
	event.ID = 0
	if err := s.db.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to append scan event for %s: %w", event.ItemUPC, err)
	}
	return nil
}

// ScanItem records a physical scan: the item is created on first sight, the
// (item, location) inventory row accumulates the quantity, and the scan is
// appended to history. Runs as one transaction.
func (s *Store) ScanItem(upc, locationID string, quantity int, workstation string) error {
	if quantity < 0 {
		return fmt.Errorf("scan quantity must be non-negative, got %d", quantity)
	}
	loc, err := s.GetLocation(locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return fmt.Errorf("unknown location %s", locationID)
	}

	return s.Transaction(func(tx *Store) error {
		item, err := tx.GetItem(upc)
		if err != nil {
			return err
		}
		if item == nil {
			now := models.Now()
			created := models.Item{UPC: upc, CreatedAt: now, UpdatedAt: now}
			if err := tx.db.Create(&created).Error; err != nil {
				return fmt.Errorf("failed to insert item %s: %w", upc, err)
			}
		}

		now := models.Now()
		if err := tx.MergeInventory(models.InventoryEntry{
			ItemUPC:     upc,
			LocationID:  locationID,
			Quantity:    quantity,
			LastScanned: now,
		}); err != nil {
			return err
		}

		return tx.AppendScan(models.ScanEvent{
			ItemUPC:        upc,
			LocationID:     locationID,
			Action:         models.ActionScan,
			QuantityChange: quantity,
			ScannedAt:      now,
			WorkstationID:  workstation,
		})
	})
}
