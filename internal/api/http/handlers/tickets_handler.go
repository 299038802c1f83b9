package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-portal/internal/api/dto"
	"github.com/spec-kit/support-portal/internal/service"
	apperrors "github.com/spec-kit/support-portal/pkg/util"
)

// TicketsHandler manages the ticket-creation endpoint.
type TicketsHandler struct {
	gateway *service.TicketGateway
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(gateway *service.TicketGateway) *TicketsHandler {
	return &TicketsHandler{gateway: gateway}
}

// CreateTicket POST /api/create-ticket.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.TicketCreateInput{
		Email:       strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		ClientIP:    clientIP(c),
	}
	if req.FileData != nil {
		input.File = &service.FileInput{
			Name:   req.FileData.Name,
			Type:   req.FileData.Type,
			Base64: req.FileData.Base64,
		}
	}

	ticketID, err := h.gateway.CreateTicket(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.CreateTicketResponse{TicketID: ticketID})
}

// clientIP returns the originating address, honoring the first hop of
// X-Forwarded-For set by fronting proxies.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.IP()
}
