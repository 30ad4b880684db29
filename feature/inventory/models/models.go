package models

import (
	"encoding/json"
	"time"

	"inventory-sync/core/utils"
)

// TimestampLayout is the ISO-8601 layout used for every timestamp column.
// Timestamps are stored as TEXT and ordered lexicographically, so a
// date-only value like "2025-01-15" compares correctly against full
// timestamps.
const TimestampLayout = "2006-01-02T15:04:05"

// Now returns the current time formatted with TimestampLayout.
func Now() string {
	return time.Now().Format(TimestampLayout)
}

// Location is a physical storage location (shelf, bin, room).
// Identified by an opaque UUID; the name is user-facing identity but is not
// required to be unique.
type Location struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name;not null" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	CreatedAt   string `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName overrides the table name for Location.
func (Location) TableName() string {
	return "locations"
}

// Item is an inventory item keyed by its barcode (UPC). The UPC is the sole
// identity and is immutable once created. AdditionalInfo holds a
// JSON-encoded open map of lookup metadata (source, brand, part_number,
// price, ...) so new lookup sources never require a schema migration.
type Item struct {
	UPC            string `gorm:"column:upc;primaryKey" json:"upc"`
	Description    string `gorm:"column:description" json:"description"`
	AdditionalInfo string `gorm:"column:additional_info" json:"additional_info"`
	CreatedAt      string `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      string `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName overrides the table name for Item.
func (Item) TableName() string {
	return "items"
}

// Info decodes AdditionalInfo into a map. An empty or malformed blob yields
// an empty map rather than an error; the field is advisory metadata.
func (i *Item) Info() map[string]any {
	info := make(map[string]any)
	if i.AdditionalInfo == "" {
		return info
	}
	_ = json.Unmarshal([]byte(i.AdditionalInfo), &info)
	return info
}

// SetInfo encodes the given map into AdditionalInfo.
func (i *Item) SetInfo(info map[string]any) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	i.AdditionalInfo = string(data)
	return nil
}

// InfoValue returns a single additional-info value rendered as a string.
// JSON numbers come back as float64; utils.ToString normalizes them.
func (i *Item) InfoValue(key string) string {
	v, ok := i.Info()[key]
	if !ok {
		return ""
	}
	return utils.ToString(v)
}

// InventoryEntry associates one item with one location and accumulates the
// scanned quantity. (item_upc, location_id) is the natural key; the id is a
// synthetic row id that is never carried between stores.
type InventoryEntry struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemUPC     string `gorm:"column:item_upc;not null;uniqueIndex:idx_inventory_item_location" json:"item_upc"`
	LocationID  string `gorm:"column:location_id;not null;uniqueIndex:idx_inventory_item_location" json:"location_id"`
	Quantity    int    `gorm:"column:quantity;not null;default:0" json:"quantity"`
	LastScanned string `gorm:"column:last_scanned;not null" json:"last_scanned"`
}

// TableName overrides the table name for InventoryEntry.
func (InventoryEntry) TableName() string {
	return "inventory"
}

// ActionScan is the action tag recorded for a scan event.
const ActionScan = "scan"

// ScanEvent is an append-only audit record of a single scan action.
// Rows are never updated or deleted after creation.
type ScanEvent struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemUPC        string `gorm:"column:item_upc;not null" json:"item_upc"`
	LocationID     string `gorm:"column:location_id;not null" json:"location_id"`
	Action         string `gorm:"column:action;not null" json:"action"`
	QuantityChange int    `gorm:"column:quantity_change" json:"quantity_change"`
	ScannedAt      string `gorm:"column:scanned_at;not null" json:"scanned_at"`
	WorkstationID  string `gorm:"column:workstation_id" json:"workstation_id"`
}

// TableName overrides the table name for ScanEvent.
func (ScanEvent) TableName() string {
	return "scan_history"
}
