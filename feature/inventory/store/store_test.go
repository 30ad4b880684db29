package store

import (
	"path/filepath"
	"testing"

	"inventory-sync/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenPath(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestAddLocation(t *testing.T) {
	st := newTestStore(t)

	loc, err := st.AddLocation("Shelf A", "top shelf")
	require.NoError(t, err)
	assert.NotEmpty(t, loc.ID)
	assert.NotEmpty(t, loc.CreatedAt)

	// Names are user-facing identity but deliberately not unique
	_, err = st.AddLocation("Shelf A", "another shelf called the same")
	require.NoError(t, err)

	locations, err := st.Locations()
	require.NoError(t, err)
	assert.Len(t, locations, 2)
}

func TestScanItem(t *testing.T) {
	st := newTestStore(t)

	loc, err := st.AddLocation("Bin 1", "")
	require.NoError(t, err)

	t.Run("first scan creates item and inventory row", func(t *testing.T) {
		require.NoError(t, st.ScanItem("012345678905", loc.ID, 3, "station-a"))

		item, err := st.GetItem("012345678905")
		require.NoError(t, err)
		require.NotNil(t, item)

		entries, err := st.InventoryEntries("")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 3, entries[0].Quantity)
	})

	t.Run("repeat scan accumulates on the same row", func(t *testing.T) {
		require.NoError(t, st.ScanItem("012345678905", loc.ID, 2, "station-a"))

		entries, err := st.InventoryEntries("")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 5, entries[0].Quantity)
	})

	t.Run("every scan appends history", func(t *testing.T) {
		events, err := st.ScanEvents("")
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, models.ActionScan, events[0].Action)
		assert.Equal(t, "station-a", events[0].WorkstationID)
		assert.Equal(t, 3, events[0].QuantityChange)
		assert.Equal(t, 2, events[1].QuantityChange)
	})

	t.Run("unknown location is rejected", func(t *testing.T) {
		err := st.ScanItem("012345678905", "no-such-location", 1, "station-a")
		assert.Error(t, err)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		err := st.ScanItem("012345678905", loc.ID, -1, "station-a")
		assert.Error(t, err)
	})
}

func TestInsertLocation(t *testing.T) {
	st := newTestStore(t)

	original := models.Location{ID: "loc-1", Name: "Shelf A", Description: "first", CreatedAt: "2025-01-01T00:00:00"}
	require.NoError(t, st.InsertLocation(original, false))

	t.Run("merge skips existing id without error", func(t *testing.T) {
		incoming := models.Location{ID: "loc-1", Name: "Renamed", Description: "second", CreatedAt: "2025-02-01T00:00:00"}
		require.NoError(t, st.InsertLocation(incoming, false))

		loc, err := st.GetLocation("loc-1")
		require.NoError(t, err)
		assert.Equal(t, "Shelf A", loc.Name)
	})

	t.Run("replace overwrites existing id", func(t *testing.T) {
		incoming := models.Location{ID: "loc-1", Name: "Renamed", Description: "second", CreatedAt: "2025-02-01T00:00:00"}
		require.NoError(t, st.InsertLocation(incoming, true))

		loc, err := st.GetLocation("loc-1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", loc.Name)
	})
}

func TestMergeItem(t *testing.T) {
	st := newTestStore(t)

	stored := models.Item{
		UPC:            "012345678905",
		Description:    "old",
		AdditionalInfo: `{"brand":"OldCo"}`,
		CreatedAt:      "2025-01-01T00:00:00",
		UpdatedAt:      "2025-01-01T00:00:00",
	}
	require.NoError(t, st.MergeItem(stored))

	t.Run("newer incoming wins", func(t *testing.T) {
		incoming := stored
		incoming.Description = "new"
		incoming.AdditionalInfo = `{"brand":"NewCo"}`
		incoming.UpdatedAt = "2025-01-02T00:00:00"
		require.NoError(t, st.MergeItem(incoming))

		item, err := st.GetItem(stored.UPC)
		require.NoError(t, err)
		assert.Equal(t, "new", item.Description)
		assert.Equal(t, `{"brand":"NewCo"}`, item.AdditionalInfo)
		assert.Equal(t, "2025-01-02T00:00:00", item.UpdatedAt)
	})

	t.Run("older incoming is ignored", func(t *testing.T) {
		incoming := stored
		incoming.Description = "stale"
		incoming.UpdatedAt = "2024-12-31T00:00:00"
		require.NoError(t, st.MergeItem(incoming))

		item, err := st.GetItem(stored.UPC)
		require.NoError(t, err)
		assert.Equal(t, "new", item.Description)
	})

	t.Run("equal timestamp keeps stored row", func(t *testing.T) {
		incoming := stored
		incoming.Description = "tied"
		incoming.UpdatedAt = "2025-01-02T00:00:00"
		require.NoError(t, st.MergeItem(incoming))

		item, err := st.GetItem(stored.UPC)
		require.NoError(t, err)
		assert.Equal(t, "new", item.Description)
	})
}

func TestReplaceItem(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.ReplaceItem(models.Item{
		UPC: "1", Description: "old", CreatedAt: "2025-01-02T00:00:00", UpdatedAt: "2025-01-02T00:00:00",
	}))

	// Replace ignores timestamps entirely
	require.NoError(t, st.ReplaceItem(models.Item{
		UPC: "1", Description: "forced", CreatedAt: "2025-01-01T00:00:00", UpdatedAt: "2025-01-01T00:00:00",
	}))

	item, err := st.GetItem("1")
	require.NoError(t, err)
	assert.Equal(t, "forced", item.Description)
	assert.Equal(t, "2025-01-01T00:00:00", item.UpdatedAt)
}

func TestMergeInventory(t *testing.T) {
	st := newTestStore(t)

	first := models.InventoryEntry{ItemUPC: "012345", LocationID: "loc-1", Quantity: 3, LastScanned: "2025-01-01T00:00:00"}
	require.NoError(t, st.MergeInventory(first))

	t.Run("quantities add and later timestamp wins", func(t *testing.T) {
		incoming := models.InventoryEntry{ItemUPC: "012345", LocationID: "loc-1", Quantity: 2, LastScanned: "2025-01-05T00:00:00"}
		require.NoError(t, st.MergeInventory(incoming))

		entries, err := st.InventoryEntries("")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 5, entries[0].Quantity)
		assert.Equal(t, "2025-01-05T00:00:00", entries[0].LastScanned)
	})

	t.Run("earlier timestamp does not move last_scanned back", func(t *testing.T) {
		incoming := models.InventoryEntry{ItemUPC: "012345", LocationID: "loc-1", Quantity: 1, LastScanned: "2024-06-01T00:00:00"}
		require.NoError(t, st.MergeInventory(incoming))

		entries, err := st.InventoryEntries("")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 6, entries[0].Quantity)
		assert.Equal(t, "2025-01-05T00:00:00", entries[0].LastScanned)
	})

	t.Run("different pair gets its own row", func(t *testing.T) {
		incoming := models.InventoryEntry{ItemUPC: "012345", LocationID: "loc-2", Quantity: 4, LastScanned: "2025-01-06T00:00:00"}
		require.NoError(t, st.MergeInventory(incoming))

		entries, err := st.InventoryEntries("")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestReplaceInventory(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.MergeInventory(models.InventoryEntry{
		ItemUPC: "012345", LocationID: "loc-1", Quantity: 3, LastScanned: "2025-01-01T00:00:00",
	}))

	// Replace overwrites; the quantity is NOT summed
	require.NoError(t, st.ReplaceInventory(models.InventoryEntry{
		ItemUPC: "012345", LocationID: "loc-1", Quantity: 2, LastScanned: "2025-01-02T00:00:00",
	}))

	entries, err := st.InventoryEntries("")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, "2025-01-02T00:00:00", entries[0].LastScanned)
}

func TestSaveItem(t *testing.T) {
	st := newTestStore(t)

	created, err := st.SaveItem("99", "widget", map[string]any{"brand": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "widget", created.Description)

	// Updates merge into the existing info map and bump updated_at
	updated, err := st.SaveItem("99", "", map[string]any{"price": 4.5})
	require.NoError(t, err)
	assert.Equal(t, "widget", updated.Description)
	assert.Equal(t, "Acme", updated.InfoValue("brand"))
	assert.Equal(t, "4.5", updated.InfoValue("price"))
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestSinceFilters(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.MergeInventory(models.InventoryEntry{ItemUPC: "1", LocationID: "a", Quantity: 1, LastScanned: "2025-01-01T10:00:00"}))
	require.NoError(t, st.MergeInventory(models.InventoryEntry{ItemUPC: "2", LocationID: "a", Quantity: 1, LastScanned: "2025-02-01T10:00:00"}))
	require.NoError(t, st.AppendScan(models.ScanEvent{ItemUPC: "1", LocationID: "a", Action: "scan", QuantityChange: 1, ScannedAt: "2025-01-01T10:00:00"}))
	require.NoError(t, st.AppendScan(models.ScanEvent{ItemUPC: "2", LocationID: "a", Action: "scan", QuantityChange: 1, ScannedAt: "2025-02-01T10:00:00"}))

	entries, err := st.InventoryEntries("2025-01-15")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].ItemUPC)

	events, err := st.ScanEvents("2025-01-15")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2", events[0].ItemUPC)
}

func TestTransactionRollback(t *testing.T) {
	st := newTestStore(t)

	err := st.Transaction(func(tx *Store) error {
		if _, err := tx.AddLocation("Shelf A", ""); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.Error(t, err)

	// Nothing from the failed transaction is visible
	locations, err := st.Locations()
	require.NoError(t, err)
	assert.Empty(t, locations)
}
