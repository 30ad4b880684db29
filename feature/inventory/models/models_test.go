package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemInfoRoundTrip(t *testing.T) {
	item := Item{UPC: "012345678905"}

	err := item.SetInfo(map[string]any{
		"source":      "upcitemdb",
		"brand":       "Acme",
		"price":       12.99,
		"part_number": "AC-100",
	})
	require.NoError(t, err)

	info := item.Info()
	assert.Equal(t, "upcitemdb", info["source"])
	assert.Equal(t, "Acme", info["brand"])
	// JSON numbers decode as float64
	assert.Equal(t, 12.99, info["price"])
}

func TestItemInfoValue(t *testing.T) {
	item := Item{UPC: "012345678905"}
	require.NoError(t, item.SetInfo(map[string]any{
		"brand":    "Acme",
		"price":    5.0,
		"warranty": "2 years",
	}))

	assert.Equal(t, "Acme", item.InfoValue("brand"))
	// Whole-number floats render without a trailing ".0"
	assert.Equal(t, "5", item.InfoValue("price"))
	assert.Equal(t, "", item.InfoValue("missing"))
}

func TestItemInfoMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"empty", ""},
		{"garbage", "not json"},
		{"wrong type", `["a", "b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{UPC: "1", AdditionalInfo: tt.blob}
			// Advisory metadata never errors, it just comes back empty
			assert.Empty(t, item.Info())
		})
	}
}

func TestTimestampOrdering(t *testing.T) {
	// Lexicographic comparison is the ordering contract, including
	// date-only filter values against full timestamps.
	assert.True(t, "2025-01-15" < "2025-02-01T10:00:00")
	assert.True(t, "2025-01-01T10:00:00" < "2025-01-15")
	assert.True(t, "2025-01-01T00:00:00" < "2025-01-02T00:00:00")
}
