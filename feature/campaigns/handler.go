package campaigns

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/google-marketing-solutions/madpmax-sub000/core/logger"
)

// Handler handles HTTP trigger requests for the campaign flow.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the campaign routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/campaigns")
	group.Post("/upload", h.HandleUpload)
}

// HandleUpload runs the campaign upload flow and returns the run summary.
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Run(c.Context())
	if err != nil {
		l.Error("Campaign upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
