package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-portal/internal/domain"
	"github.com/spec-kit/support-portal/internal/events"
	"github.com/spec-kit/support-portal/internal/hubspot"
	"github.com/spec-kit/support-portal/internal/resolve"
	apperrors "github.com/spec-kit/support-portal/pkg/util"
)

// statusProjection is the explicit field projection for ticket reads.
var statusProjection = []string{
	hubspot.PropSubject,
	hubspot.PropContent,
	hubspot.PropCreateDate,
	hubspot.PropLastModified,
	hubspot.PropPipelineStage,
	hubspot.PropCategory,
	hubspot.PropOwnerID,
	hubspot.PropAllOwnerIDs,
	hubspot.PropClosedDate,
}

// StatusService answers portal status checks.
type StatusService struct {
	client     *hubspot.Client
	owners     resolve.OwnerResolver
	stages     domain.StageMap
	categories domain.CategoryMap
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// StatusDependencies bundles collaborators for the status service.
type StatusDependencies struct {
	Client     *hubspot.Client
	Owners     resolve.OwnerResolver
	Stages     domain.StageMap
	Categories domain.CategoryMap
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// StatusCheckInput describes a status lookup. Email is recorded in the audit
// trail but does not gate the lookup.
type StatusCheckInput struct {
	TicketID string
	Email    string
	ClientIP string
}

// StatusResult is the resolved, customer-facing view of a ticket.
type StatusResult struct {
	TicketID  string
	Status    domain.Status
	Owner     string
	Subject   string
	Category  string
	CreatedAt string
	UpdatedAt string
}

// NewStatusService constructs the service.
func NewStatusService(deps StatusDependencies) *StatusService {
	return &StatusService{
		client:     deps.Client,
		owners:     deps.Owners,
		stages:     deps.Stages,
		categories: deps.Categories,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Check fetches the ticket and resolves its stage, category and owner into
// the portal vocabulary.
func (s *StatusService) Check(ctx context.Context, input StatusCheckInput) (*StatusResult, error) {
	if input.TicketID == "" {
		return nil, apperrors.NewValidationError(apperrors.MsgTicketIDRequired, nil)
	}

	resp, err := s.client.GetTicket(ctx, input.TicketID, statusProjection)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if resp.NotFound() {
		return nil, apperrors.NewTicketNotFound()
	}
	if !resp.Success() {
		return nil, apperrors.NewUpstreamError(resp.StatusCode, resp.Message(), apperrors.MsgCheckStatusFailed)
	}

	record := resp.TicketRecord()
	status := resolve.StatusFor(s.stages, record.StageID, record.ClosedDate)

	ownerName := resolve.Unassigned
	if record.OwnerID != "" {
		ownerName = s.owners.DisplayName(ctx, record.OwnerID)
	}

	s.logger.Info("ticket resolved",
		zap.String("ticket_id", record.ID),
		zap.String("stage_id", record.StageID),
		zap.String("status", string(status)),
		zap.String("owner", ownerName))

	result := &StatusResult{
		TicketID:  record.ID,
		Status:    status,
		Owner:     ownerName,
		Subject:   record.Subject,
		Category:  resolve.CategoryLabel(s.categories, record.CategoryCode),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStatusChecked,
			TicketID:  result.TicketID,
			Email:     input.Email,
			ClientIP:  input.ClientIP,
			Timestamp: time.Now().UTC(),
			Payload: events.StatusCheckedPayload{
				Status: result.Status,
				Owner:  result.Owner,
			},
		})
	}
	return result, nil
}
