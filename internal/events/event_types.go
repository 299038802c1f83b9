package events

import (
	"time"

	"github.com/spec-kit/support-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventStatusChecked EventType = "status_checked"
)

// Event represents a portal event emitted by services. Events fire only on
// the confirmed success path of an operation.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Email     string      `json:"email,omitempty"`
	ClientIP  string      `json:"client_ip"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Subject  string `json:"subject"`
	Category string `json:"category"`
}

// StatusCheckedPayload payload.
type StatusCheckedPayload struct {
	Status domain.Status `json:"status"`
	Owner  string        `json:"owner"`
}
