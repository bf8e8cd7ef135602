package handler

import (
	"errors"

	"ctenvios-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for manifest tracking views.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GetManifestShipments godoc
// @Summary Get resolved shipments for a manifest
// @Description Fetches a manifest's shipments, derives effective status and current warehouse per shipment and returns the rows with filter facets
// @Tags tracking
// @Accept json
// @Produce json
// @Param id path string true "Manifest ID"
// @Param warehouse query string false "Warehouse filter (use 'all' or omit for no filter)"
// @Param status query string false "Effective-status filter (use 'all' or omit for no filter)"
// @Success 200 {object} service.ManifestView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /manifests/{id}/shipments [get]
func (h *TrackingHandler) GetManifestShipments(c *fiber.Ctx) error {
	manifestID := c.Params("id")
	if manifestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "manifest id is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	view, err := h.trackingService.GetManifestView(c.Context(), manifestID, c.Query("warehouse"), c.Query("status"))
	if err != nil {
		if errors.Is(err, service.ErrManifestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "manifest not found",
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(view)
}
