package report

import (
	"inventory-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the summary aggregates over HTTP. The server is strictly
// read-only; export bundles never move over this surface.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logg *zap.Logger) *Handler {
	return &Handler{service: service, logger: logg}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/report")
	group.Get("/summary", h.HandleSummary)
}

// HandleSummary returns the aggregate inventory view as JSON.
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRequest(h.logger, c)

	topN := c.QueryInt("top", DefaultTopN)

	summary, err := h.service.Summarize(c.Context(), topN)
	if err != nil {
		l.Error("Summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
