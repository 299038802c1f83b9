package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-portal/internal/api/dto"
	"github.com/spec-kit/support-portal/internal/audit"
	apperrors "github.com/spec-kit/support-portal/pkg/util"
)

// AuditHandler exposes the operator-facing audit trail.
type AuditHandler struct {
	store *audit.Store
}

// NewAuditHandler constructs handler.
func NewAuditHandler(store *audit.Store) *AuditHandler {
	return &AuditHandler{store: store}
}

// List GET /api/audit-log.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	entries, err := h.store.List()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(dto.AuditLogResponse{Total: len(entries), Entries: entries})
}
