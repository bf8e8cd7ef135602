package handler

import (
	"errors"

	"ctenvios-tracker/internal/features/receiving/domain"
	"ctenvios-tracker/internal/features/receiving/service"

	"github.com/gofiber/fiber/v2"
)

// ReceivingHandler handles HTTP requests for receiving sessions.
type ReceivingHandler struct {
	receivingService *service.ReceivingService
}

// NewReceivingHandler creates a new ReceivingHandler.
func NewReceivingHandler(receivingService *service.ReceivingService) *ReceivingHandler {
	return &ReceivingHandler{
		receivingService: receivingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// startSessionRequest is the body of the session creation endpoint.
type startSessionRequest struct {
	// DispatchID is required in with_manifest mode, ignored otherwise.
	DispatchID string `json:"dispatch_id"`
	// Mode is with_manifest or without_manifest.
	Mode domain.Mode `json:"mode"`
}

// scanRequest is the body of the scan endpoint.
type scanRequest struct {
	// TrackingNumber is the raw barcode read; normalized server-side.
	TrackingNumber string `json:"tracking_number"`
}

// StartSession godoc
// @Summary Start a receiving session
// @Description Opens a scan reconciliation session, loading the dispatch manifest in with_manifest mode
// @Tags receiving
// @Accept json
// @Produce json
// @Param request body startSessionRequest true "Session parameters"
// @Success 201 {object} service.SessionView
// @Failure 400 {object} ErrorResponse
// @Router /receiving/sessions [post]
func (h *ReceivingHandler) StartSession(c *fiber.Ctx) error {
	var req startSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}
	if req.Mode == domain.ModeWithManifest && req.DispatchID == "" {
		return h.badRequest(c, "dispatch_id is required in with_manifest mode")
	}

	session, err := h.receivingService.StartSession(c.Context(), req.DispatchID, req.Mode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMode) {
			return h.badRequest(c, err.Error())
		}
		return h.internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// Scan godoc
// @Summary Scan a tracking number
// @Description Classifies a scan as matched, surplus, duplicate or verified and returns the last-scan feedback
// @Tags receiving
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body scanRequest true "Scanned tracking number"
// @Success 200 {object} domain.Feedback
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /receiving/sessions/{id}/scans [post]
func (h *ReceivingHandler) Scan(c *fiber.Ctx) error {
	var req scanRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "invalid request body")
	}

	feedback, err := h.receivingService.Scan(c.Context(), c.Params("id"), req.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return h.notFound(c)
		case errors.Is(err, service.ErrEmptyTrackingNumber):
			return h.badRequest(c, err.Error())
		}
		return h.internalError(c, err)
	}

	return c.JSON(feedback)
}

// GetSession godoc
// @Summary Get a receiving session
// @Description Returns the session's scan list, derived stats and last-scan feedback
// @Tags receiving
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} service.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /receiving/sessions/{id} [get]
func (h *ReceivingHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.receivingService.GetSession(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return h.notFound(c)
		}
		return h.internalError(c, err)
	}

	return c.JSON(session)
}

// Complete godoc
// @Summary Complete a with-manifest receiving session
// @Description Finalizes the receive upstream and discards the session
// @Tags receiving
// @Produce json
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /receiving/sessions/{id}/complete [post]
func (h *ReceivingHandler) Complete(c *fiber.Ctx) error {
	err := h.receivingService.Complete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return h.notFound(c)
		case errors.Is(err, service.ErrWrongMode):
			return h.conflict(c, err)
		}
		return h.internalError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateDispatch godoc
// @Summary Create a dispatch from a manifest-less session
// @Description Submits all accumulated tracking numbers in one call and returns the upstream per-line verdicts
// @Tags receiving
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} domain.DispatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /receiving/sessions/{id}/dispatch [post]
func (h *ReceivingHandler) CreateDispatch(c *fiber.Ctx) error {
	result, err := h.receivingService.CreateDispatch(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return h.notFound(c)
		case errors.Is(err, service.ErrWrongMode):
			return h.conflict(c, err)
		case errors.Is(err, service.ErrEmptySession):
			return h.badRequest(c, err.Error())
		}
		return h.internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// ClearSession godoc
// @Summary Discard a receiving session
// @Description Drops all session state without any upstream call
// @Tags receiving
// @Produce json
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /receiving/sessions/{id} [delete]
func (h *ReceivingHandler) ClearSession(c *fiber.Ctx) error {
	if err := h.receivingService.Clear(c.Params("id")); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return h.notFound(c)
		}
		return h.internalError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReceivingHandler) badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
		RayID:   c.Locals("requestid").(string),
	})
}

func (h *ReceivingHandler) notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Message: "session not found",
		RayID:   c.Locals("requestid").(string),
	})
}

func (h *ReceivingHandler) conflict(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}

func (h *ReceivingHandler) internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}
