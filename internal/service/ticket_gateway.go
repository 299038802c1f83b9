package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-portal/internal/config"
	"github.com/spec-kit/support-portal/internal/events"
	"github.com/spec-kit/support-portal/internal/hubspot"
	apperrors "github.com/spec-kit/support-portal/pkg/util"
)

const defaultSubject = "Sin asunto"

// TicketGateway forwards portal ticket requests to the CRM.
type TicketGateway struct {
	client     *hubspot.Client
	dispatcher events.Dispatcher
	portal     config.PortalConfig
	logger     *zap.Logger
}

// GatewayDependencies bundles collaborators for the gateway.
type GatewayDependencies struct {
	Client     *hubspot.Client
	Dispatcher events.Dispatcher
	Portal     config.PortalConfig
	Logger     *zap.Logger
}

// TicketCreateInput describes a portal ticket-creation request.
type TicketCreateInput struct {
	Email       string
	Subject     string
	Category    string
	Description string
	File        *FileInput
	ClientIP    string
}

// FileInput is an optional base64-encoded attachment.
type FileInput struct {
	Name   string
	Type   string
	Base64 string
}

// NewTicketGateway constructs the gateway.
func NewTicketGateway(deps GatewayDependencies) *TicketGateway {
	return &TicketGateway{
		client:     deps.Client,
		dispatcher: deps.Dispatcher,
		portal:     deps.Portal,
		logger:     deps.Logger,
	}
}

// CreateTicket runs the creation flow: contact gate, best-effort attachment
// upload, ticket create, best-effort association, audit event. It returns the
// new ticket id.
//
// Tickets are only created for known contacts when an email is given: a
// non-matching email fails the whole operation before anything is written
// upstream. Attachment upload and contact association are best effort — the
// ticket existing is worth more to the user than either enrichment.
func (g *TicketGateway) CreateTicket(ctx context.Context, input TicketCreateInput) (string, error) {
	contactID := ""
	if input.Email != "" {
		id, err := g.lookupContact(ctx, input.Email)
		if err != nil {
			return "", err
		}
		contactID = id
	}

	properties := map[string]string{
		hubspot.PropSubject:       input.Subject,
		hubspot.PropContent:       input.Description,
		hubspot.PropPipeline:      g.portal.PipelineID,
		hubspot.PropPipelineStage: g.portal.IntakeStageID,
		hubspot.PropArea:          input.Category,
		hubspot.PropSourcePortal:  g.portal.Source,
		hubspot.PropSourceType:    "FORM",
	}
	if properties[hubspot.PropSubject] == "" {
		properties[hubspot.PropSubject] = defaultSubject
	}

	if input.File != nil && input.File.Base64 != "" {
		if fileID, ok := g.uploadAttachment(ctx, input.File); ok {
			properties[hubspot.PropFileUpload] = fileID
		}
	}

	resp, err := g.client.CreateTicket(ctx, properties)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	if !resp.Success() {
		return "", apperrors.NewUpstreamError(resp.StatusCode, resp.Message(), apperrors.MsgCreateTicketFailed)
	}
	ticketID := resp.Str("id")
	g.logger.Info("ticket created", zap.String("ticket_id", ticketID))

	if contactID != "" {
		g.associateContact(ctx, ticketID, contactID)
	}

	g.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventTicketCreated,
		TicketID:  ticketID,
		Email:     input.Email,
		ClientIP:  input.ClientIP,
		Timestamp: time.Now().UTC(),
		Payload: events.TicketCreatedPayload{
			Subject:  input.Subject,
			Category: input.Category,
		},
	})
	return ticketID, nil
}

// lookupContact resolves the contact id for an email, failing the operation
// when the email is not registered.
func (g *TicketGateway) lookupContact(ctx context.Context, email string) (string, error) {
	resp, err := g.client.SearchContactByEmail(ctx, email)
	if err != nil {
		return "", apperrors.NewDomainError("INTERNAL_ERROR", apperrors.MsgContactCheckFailed, http.StatusInternalServerError, nil)
	}
	if !resp.Success() {
		return "", apperrors.NewUpstreamError(resp.StatusCode, resp.Message(), apperrors.MsgContactCheckFailed)
	}
	if resp.SearchTotal() == 0 {
		g.logger.Info("contact not found for email", zap.String("email", email))
		return "", apperrors.NewEmailNotRegistered()
	}
	contactID := resp.FirstResultID()
	g.logger.Info("contact resolved", zap.String("contact_id", contactID))
	return contactID, nil
}

// uploadAttachment stores the attachment upstream. Any failure is logged and
// reported as absent; ticket creation proceeds without the file.
func (g *TicketGateway) uploadAttachment(ctx context.Context, file *FileInput) (string, bool) {
	data, err := base64.StdEncoding.DecodeString(file.Base64)
	if err != nil {
		g.logger.Warn("attachment decode failed", zap.String("file", file.Name), zap.Error(err))
		return "", false
	}
	resp, err := g.client.UploadFile(ctx, file.Name, file.Type, data)
	if err != nil {
		g.logger.Warn("attachment upload failed", zap.String("file", file.Name), zap.Error(err))
		return "", false
	}
	if !resp.Success() {
		g.logger.Warn("attachment upload rejected",
			zap.String("file", file.Name),
			zap.Int("status", resp.StatusCode),
			zap.String("message", resp.Message()))
		return "", false
	}
	fileID := resp.Str("id")
	if fileID == "" {
		return "", false
	}
	g.logger.Info("attachment uploaded", zap.String("file_id", fileID))
	return fileID, true
}

// associateContact links the new ticket to the contact. The ticket already
// exists, so failures are logged and swallowed; the missing association is
// resolved manually.
func (g *TicketGateway) associateContact(ctx context.Context, ticketID, contactID string) {
	resp, err := g.client.AssociateTicketContact(ctx, ticketID, contactID)
	if err != nil {
		g.logger.Warn("contact association failed",
			zap.String("ticket_id", ticketID),
			zap.String("contact_id", contactID),
			zap.Error(err))
		return
	}
	if !resp.Success() {
		g.logger.Warn("contact association rejected",
			zap.String("ticket_id", ticketID),
			zap.String("contact_id", contactID),
			zap.Int("status", resp.StatusCode))
		return
	}
	g.logger.Info("contact associated", zap.String("contact_id", contactID))
}

func (g *TicketGateway) publish(ctx context.Context, event events.Event) {
	if g.dispatcher == nil {
		return
	}
	_ = g.dispatcher.Publish(ctx, event)
}
