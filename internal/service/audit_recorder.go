package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/support-portal/internal/audit"
	"github.com/spec-kit/support-portal/internal/events"
)

// AuditRecorder appends an audit entry for each portal event. Append failures
// are logged, never surfaced: the user's operation already succeeded.
type AuditRecorder struct {
	store      *audit.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditRecorder creates the recorder.
func NewAuditRecorder(store *audit.Store, dispatcher events.Dispatcher, logger *zap.Logger) *AuditRecorder {
	return &AuditRecorder{store: store, dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (r *AuditRecorder) RegisterHandlers() {
	if r.dispatcher == nil {
		return
	}
	r.dispatcher.Subscribe(events.EventTicketCreated, r.handleTicketCreated)
	r.dispatcher.Subscribe(events.EventStatusChecked, r.handleStatusChecked)
}

func (r *AuditRecorder) handleTicketCreated(_ context.Context, event events.Event) error {
	entry := audit.Entry{
		Timestamp: event.Timestamp,
		IP:        event.ClientIP,
		Action:    audit.ActionCreateTicket,
		Email:     event.Email,
		TicketID:  event.TicketID,
	}
	if payload, ok := event.Payload.(events.TicketCreatedPayload); ok {
		entry.Subject = payload.Subject
		entry.Category = payload.Category
	}
	r.append(entry)
	return nil
}

func (r *AuditRecorder) handleStatusChecked(_ context.Context, event events.Event) error {
	entry := audit.Entry{
		Timestamp: event.Timestamp,
		IP:        event.ClientIP,
		Action:    audit.ActionCheckStatus,
		Email:     event.Email,
		TicketID:  event.TicketID,
	}
	if payload, ok := event.Payload.(events.StatusCheckedPayload); ok {
		entry.Status = string(payload.Status)
		entry.Owner = payload.Owner
	}
	r.append(entry)
	return nil
}

func (r *AuditRecorder) append(entry audit.Entry) {
	if err := r.store.Append(entry); err != nil {
		r.logger.Error("audit append failed", zap.Error(err))
		return
	}
	r.logger.Info("audit",
		zap.String("action", entry.Action),
		zap.String("email", entry.Email),
		zap.String("ticket_id", entry.TicketID),
		zap.String("ip", entry.IP))
}
