package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-portal/internal/api/dto"
	"github.com/spec-kit/support-portal/internal/service"
	apperrors "github.com/spec-kit/support-portal/pkg/util"
)

// StatusHandler manages the status-check endpoint.
type StatusHandler struct {
	service *service.StatusService
}

// NewStatusHandler constructs handler.
func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{service: statusService}
}

// CheckStatus POST /api/check-status.
func (h *StatusHandler) CheckStatus(c *fiber.Ctx) error {
	var req dto.CheckStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.service.Check(c.UserContext(), service.StatusCheckInput{
		TicketID: strings.TrimSpace(req.TicketID),
		Email:    strings.TrimSpace(req.Email),
		ClientIP: clientIP(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.CheckStatusResponse{
		TicketID:  result.TicketID,
		Status:    result.Status,
		Owner:     result.Owner,
		Subject:   result.Subject,
		Category:  result.Category,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	})
}
