package report

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"inventory-sync/feature/inventory/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	st, err := store.OpenPath(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	shelfA, err := st.AddLocation("Shelf A", "")
	require.NoError(t, err)
	shelfB, err := st.AddLocation("Shelf B", "")
	require.NoError(t, err)
	// An empty location must still show up in the breakdown
	_, err = st.AddLocation("Empty Corner", "")
	require.NoError(t, err)

	require.NoError(t, st.ScanItem("111", shelfA.ID, 5, "station-a"))
	require.NoError(t, st.ScanItem("222", shelfA.ID, 2, "station-a"))
	require.NoError(t, st.ScanItem("111", shelfB.ID, 3, "station-a"))

	return NewService(st.DB(), zap.NewNop())
}

func TestSummarize(t *testing.T) {
	svc := seededService(t)

	summary, err := svc.Summarize(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 3, summary.TotalLocations)
	assert.Equal(t, 10, summary.TotalQuantity)

	require.Len(t, summary.Locations, 3)
	byName := make(map[string]LocationBreakdown)
	for _, loc := range summary.Locations {
		byName[loc.Name] = loc
	}
	assert.Equal(t, 2, byName["Shelf A"].UniqueItems)
	assert.Equal(t, 7, byName["Shelf A"].Quantity)
	assert.Equal(t, 1, byName["Shelf B"].UniqueItems)
	assert.Equal(t, 3, byName["Shelf B"].Quantity)
	assert.Equal(t, 0, byName["Empty Corner"].UniqueItems)
	assert.Equal(t, 0, byName["Empty Corner"].Quantity)

	// Ranking sums across locations and orders by total quantity
	require.Len(t, summary.TopItems, 2)
	assert.Equal(t, "111", summary.TopItems[0].UPC)
	assert.Equal(t, 8, summary.TopItems[0].TotalQuantity)
	assert.Equal(t, "222", summary.TopItems[1].UPC)
	assert.Equal(t, 2, summary.TopItems[1].TotalQuantity)
}

func TestSummarizeTopN(t *testing.T) {
	svc := seededService(t)

	summary, err := svc.Summarize(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, summary.TopItems, 1)
	assert.Equal(t, "111", summary.TopItems[0].UPC)
}

func TestRenderText(t *testing.T) {
	svc := seededService(t)

	summary, err := svc.Summarize(context.Background(), 0)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, RenderText(&b, summary))
	out := b.String()

	assert.Contains(t, out, "INVENTORY SUMMARY REPORT")
	assert.Contains(t, out, "Total Unique Items: 2")
	assert.Contains(t, out, "Total Locations: 3")
	assert.Contains(t, out, "Total Quantity in Stock: 10")
	assert.Contains(t, out, "Shelf A:")
	// Unidentified items fall back to a placeholder description
	assert.Contains(t, out, "111: No description - Qty: 8")
}

// TestSummarizeMySQL verifies the aggregation SQL issued against a hosted
// master store, using sqlmock behind the mysql dialector.
func TestSummarizeMySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM items")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM locations")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(quantity), 0) FROM inventory")).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(9))
	mock.ExpectQuery("LEFT JOIN inventory inv ON l.id = inv.location_id").
		WillReturnRows(sqlmock.NewRows([]string{"name", "unique_items", "quantity"}).
			AddRow("Shelf A", 3, 6).
			AddRow("Shelf B", 1, 3))
	mock.ExpectQuery("JOIN inventory inv ON i.upc = inv.item_upc").
		WillReturnRows(sqlmock.NewRows([]string{"upc", "description", "total_quantity"}).
			AddRow("111", "widget", 6).
			AddRow("222", "", 3))

	svc := NewService(db, zap.NewNop())
	summary, err := svc.Summarize(context.Background(), 20)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalItems)
	assert.Equal(t, 2, summary.TotalLocations)
	assert.Equal(t, 9, summary.TotalQuantity)
	require.Len(t, summary.Locations, 2)
	assert.Equal(t, "Shelf A", summary.Locations[0].Name)
	require.Len(t, summary.TopItems, 2)
	assert.Equal(t, "widget", summary.TopItems[0].Description)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteFile(t *testing.T) {
	svc := seededService(t)

	path := filepath.Join(t.TempDir(), "inventory_report.txt")
	require.NoError(t, svc.WriteFile(context.Background(), path, 0))

	assert.FileExists(t, path)
}
