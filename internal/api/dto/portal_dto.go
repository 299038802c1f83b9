package dto

import (
	"github.com/spec-kit/support-portal/internal/audit"
	"github.com/spec-kit/support-portal/internal/domain"
)

// CreateTicketRequest payload. All fields are optional at the API level; the
// frontend form enforces presence.
type CreateTicketRequest struct {
	Email       string       `json:"email"`
	Subject     string       `json:"subject"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	FileData    *FilePayload `json:"fileData"`
}

// FilePayload is a base64-encoded attachment.
type FilePayload struct {
	Base64 string `json:"base64"`
	Type   string `json:"type"`
	Name   string `json:"name"`
}

// CreateTicketResponse returns the new CRM-assigned ticket id.
type CreateTicketResponse struct {
	TicketID string `json:"ticketId"`
}

// CheckStatusRequest payload.
type CheckStatusRequest struct {
	TicketID string `json:"ticketId"`
	Email    string `json:"email"`
}

// CheckStatusResponse is the resolved ticket view.
type CheckStatusResponse struct {
	TicketID  string        `json:"ticketId"`
	Status    domain.Status `json:"status"`
	Owner     string        `json:"owner"`
	Subject   string        `json:"subject"`
	Category  string        `json:"category"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// AuditLogResponse lists audit entries, most recent first.
type AuditLogResponse struct {
	Total   int           `json:"total"`
	Entries []audit.Entry `json:"entries"`
}
