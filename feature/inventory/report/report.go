package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"inventory-sync/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultTopN is the size of the items-by-quantity ranking.
const DefaultTopN = 20

// LocationBreakdown aggregates the inventory held at one location.
type LocationBreakdown struct {
	Name        string `json:"name"`
	UniqueItems int    `gorm:"column:unique_items" json:"unique_items"`
	Quantity    int    `json:"quantity"`
}

// ItemRank is one entry of the items-by-quantity ranking, summed across all
// locations.
type ItemRank struct {
	UPC           string `gorm:"column:upc" json:"upc"`
	Description   string `json:"description"`
	TotalQuantity int    `gorm:"column:total_quantity" json:"total_quantity"`
}

// Summary is the read-only aggregate view over a Record Store.
type Summary struct {
	GeneratedAt    string              `json:"generated_at"`
	TotalItems     int                 `json:"total_items"`
	TotalLocations int                 `json:"total_locations"`
	TotalQuantity  int                 `json:"total_quantity"`
	Locations      []LocationBreakdown `json:"locations"`
	TopItems       []ItemRank          `json:"top_items"`
}

// Service computes inventory summaries. It is a pure read-only consumer of
// the store and performs no merge logic.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a report service over a store connection.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Summarize computes the full aggregate view: totals, per-location
// breakdown, and the top-N items by quantity.
func (s *Service) Summarize(ctx context.Context, topN int) (*Summary, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	db := s.db.WithContext(ctx)

	summary := &Summary{
		GeneratedAt: models.Now(),
		Locations:   make([]LocationBreakdown, 0),
		TopItems:    make([]ItemRank, 0),
	}

	var totalItems int64
	if err := db.Raw("SELECT COUNT(*) FROM items").Scan(&totalItems).Error; err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}
	summary.TotalItems = int(totalItems)

	var totalLocations int64
	if err := db.Raw("SELECT COUNT(*) FROM locations").Scan(&totalLocations).Error; err != nil {
		return nil, fmt.Errorf("failed to count locations: %w", err)
	}
	summary.TotalLocations = int(totalLocations)

	var totalQuantity int64
	if err := db.Raw("SELECT COALESCE(SUM(quantity), 0) FROM inventory").Scan(&totalQuantity).Error; err != nil {
		return nil, fmt.Errorf("failed to sum quantities: %w", err)
	}
	summary.TotalQuantity = int(totalQuantity)

	// LEFT JOIN so locations with nothing in stock still appear.
	err := db.Raw(`
		SELECT l.name AS name,
		       COUNT(DISTINCT inv.item_upc) AS unique_items,
		       COALESCE(SUM(inv.quantity), 0) AS quantity
		FROM locations l
		LEFT JOIN inventory inv ON l.id = inv.location_id
		GROUP BY l.id, l.name
		ORDER BY l.name`).Scan(&summary.Locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by location: %w", err)
	}

	err = db.Raw(`
		SELECT i.upc AS upc,
		       i.description AS description,
		       SUM(inv.quantity) AS total_quantity
		FROM items i
		JOIN inventory inv ON i.upc = inv.item_upc
		GROUP BY i.upc, i.description
		ORDER BY total_quantity DESC
		LIMIT ?`, topN).Scan(&summary.TopItems).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank items: %w", err)
	}

	return summary, nil
}

// RenderText writes the human-readable summary report.
func RenderText(w io.Writer, s *Summary) error {
	var b strings.Builder

	b.WriteString("INVENTORY SUMMARY REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", s.GeneratedAt)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "Total Unique Items: %d\n", s.TotalItems)
	fmt.Fprintf(&b, "Total Locations: %d\n", s.TotalLocations)
	fmt.Fprintf(&b, "Total Quantity in Stock: %d\n\n", s.TotalQuantity)

	b.WriteString("INVENTORY BY LOCATION\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, loc := range s.Locations {
		fmt.Fprintf(&b, "\n%s:\n", loc.Name)
		fmt.Fprintf(&b, "  Unique Items: %d\n", loc.UniqueItems)
		fmt.Fprintf(&b, "  Total Quantity: %d\n", loc.Quantity)
	}

	fmt.Fprintf(&b, "\n\nTOP %d ITEMS BY QUANTITY\n", len(s.TopItems))
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, item := range s.TopItems {
		desc := item.Description
		if desc == "" {
			desc = "No description"
		}
		if len(desc) > 40 {
			desc = desc[:40]
		}
		fmt.Fprintf(&b, "%s: %s - Qty: %d\n", item.UPC, desc, item.TotalQuantity)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile renders the summary into a report file at path.
func (s *Service) WriteFile(ctx context.Context, path string, topN int) error {
	summary, err := s.Summarize(ctx, topN)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer f.Close()

	if err := RenderText(f, summary); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	s.logger.Info("Report generated", zap.String("file", path))
	return nil
}
