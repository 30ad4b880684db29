package report

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleSummary(t *testing.T) {
	svc := seededService(t)

	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)

	req := httptest.NewRequest("GET", "/report/summary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 3, summary.TotalLocations)
	assert.Equal(t, 10, summary.TotalQuantity)
}

func TestHandleSummaryTopQuery(t *testing.T) {
	svc := seededService(t)

	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)

	req := httptest.NewRequest("GET", "/report/summary?top=1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Len(t, summary.TopItems, 1)
}
