package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-portal/internal/config"
	"github.com/spec-kit/support-portal/internal/events"
	"github.com/spec-kit/support-portal/internal/hubspot"
	apperrors "github.com/spec-kit/support-portal/pkg/util"
)

// crmStub fakes the HubSpot endpoints the gateway touches and records what
// was called.
type crmStub struct {
	t *testing.T

	contactTotal int
	contactID    string
	createStatus int
	ticketID     string
	uploadStatus int
	fileID       string
	assocStatus  int

	createCalls  int
	assocCalls   int
	uploadCalls  int
	createdProps map[string]string
}

func (s *crmStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.URL.Path == "/crm/v3/objects/contacts/search":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"total":   s.contactTotal,
				"results": []map[string]any{{"id": s.contactID}},
			})
		case req.URL.Path == "/files/v3/files":
			s.uploadCalls++
			w.WriteHeader(s.uploadStatus)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": s.fileID})
		case req.URL.Path == "/crm/v3/objects/tickets" && req.Method == http.MethodPost:
			s.createCalls++
			var body struct {
				Properties map[string]string `json:"properties"`
			}
			require.NoError(s.t, json.NewDecoder(req.Body).Decode(&body))
			s.createdProps = body.Properties
			w.WriteHeader(s.createStatus)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": s.ticketID})
		case strings.Contains(req.URL.Path, "/associations/contacts/"):
			s.assocCalls++
			w.WriteHeader(s.assocStatus)
			_ = json.NewEncoder(w).Encode(map[string]any{})
		default:
			s.t.Fatalf("unexpected CRM call: %s %s", req.Method, req.URL.Path)
		}
	})
}

type captureDispatcher struct {
	published []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newGateway(t *testing.T, stub *crmStub, dispatcher events.Dispatcher) *TicketGateway {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	client := hubspot.NewClient(config.HubSpotConfig{
		BaseURL:        srv.URL,
		Token:          "test-token",
		TimeoutSeconds: 5,
	}, zap.NewNop())
	return NewTicketGateway(GatewayDependencies{
		Client:     client,
		Dispatcher: dispatcher,
		Portal: config.PortalConfig{
			PipelineID:    "866504349",
			IntakeStageID: "1297561004",
			Source:        "portal_cliente",
		},
		Logger: zap.NewNop(),
	})
}

func TestCreateTicketWithMatchingContact(t *testing.T) {
	stub := &crmStub{
		t:            t,
		contactTotal: 1, contactID: "777",
		createStatus: http.StatusCreated, ticketID: "100200",
		assocStatus: http.StatusOK,
	}
	dispatcher := &captureDispatcher{}
	gateway := newGateway(t, stub, dispatcher)

	ticketID, err := gateway.CreateTicket(context.Background(), TicketCreateInput{
		Email:       "a@x.com",
		Subject:     "GPS issue",
		Category:    "soporte",
		Description: "No funciona el GPS",
		ClientIP:    "203.0.113.9",
	})
	require.NoError(t, err)
	require.Equal(t, "100200", ticketID)

	require.Equal(t, 1, stub.createCalls)
	require.Equal(t, 1, stub.assocCalls, "association is attempted after creation")
	require.Equal(t, "GPS issue", stub.createdProps["subject"])
	require.Equal(t, "866504349", stub.createdProps["hs_pipeline"])
	require.Equal(t, "1297561004", stub.createdProps["hs_pipeline_stage"])
	require.Equal(t, "soporte", stub.createdProps["area_de_atencion"])
	require.Equal(t, "portal_cliente", stub.createdProps["source_portal"])
	require.Equal(t, "FORM", stub.createdProps["source_type"])

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	require.Equal(t, events.EventTicketCreated, event.Type)
	require.Equal(t, "100200", event.TicketID)
	require.Equal(t, "a@x.com", event.Email)
	require.Equal(t, "203.0.113.9", event.ClientIP)
}

func TestCreateTicketUnregisteredEmailNeverCreates(t *testing.T) {
	stub := &crmStub{t: t, contactTotal: 0}
	dispatcher := &captureDispatcher{}
	gateway := newGateway(t, stub, dispatcher)

	_, err := gateway.CreateTicket(context.Background(), TicketCreateInput{
		Email:   "nobody@x.com",
		Subject: "hola",
	})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "EMAIL_NOT_REGISTERED", domainErr.Code)
	require.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	require.Equal(t, apperrors.MsgEmailNotRegistered, domainErr.Message)

	require.Zero(t, stub.createCalls, "ticket-creation endpoint must not be called")
	require.Empty(t, dispatcher.published, "no audit event on failure")
}

func TestCreateTicketWithoutEmailSkipsContactGate(t *testing.T) {
	stub := &crmStub{t: t, createStatus: http.StatusCreated, ticketID: "300"}
	gateway := newGateway(t, stub, &captureDispatcher{})

	ticketID, err := gateway.CreateTicket(context.Background(), TicketCreateInput{Description: "anónimo"})
	require.NoError(t, err)
	require.Equal(t, "300", ticketID)
	require.Zero(t, stub.assocCalls)
	require.Equal(t, "Sin asunto", stub.createdProps["subject"], "missing subject gets the default")
}

func TestCreateTicketAssociationFailureIsNonFatal(t *testing.T) {
	stub := &crmStub{
		t:            t,
		contactTotal: 1, contactID: "777",
		createStatus: http.StatusCreated, ticketID: "100201",
		assocStatus: http.StatusInternalServerError,
	}
	dispatcher := &captureDispatcher{}
	gateway := newGateway(t, stub, dispatcher)

	ticketID, err := gateway.CreateTicket(context.Background(), TicketCreateInput{Email: "a@x.com"})
	require.NoError(t, err)
	require.Equal(t, "100201", ticketID)
	require.Equal(t, 1, stub.assocCalls)
	require.Len(t, dispatcher.published, 1)
}

func TestCreateTicketUploadFailureIsNonFatal(t *testing.T) {
	stub := &crmStub{
		t:            t,
		createStatus: http.StatusCreated, ticketID: "100202",
		uploadStatus: http.StatusForbidden,
	}
	gateway := newGateway(t, stub, &captureDispatcher{})

	ticketID, err := gateway.CreateTicket(context.Background(), TicketCreateInput{
		Subject: "con adjunto",
		File: &FileInput{
			Name:   "evidencia.png",
			Type:   "image/png",
			Base64: base64.StdEncoding.EncodeToString([]byte("fake-png")),
		},
	})
	require.NoError(t, err)
	require.Equal(t, "100202", ticketID)
	require.Equal(t, 1, stub.uploadCalls)
	_, hasFile := stub.createdProps["hs_file_upload"]
	require.False(t, hasFile, "failed upload must not leave a file reference")
}

func TestCreateTicketAttachesUploadedFile(t *testing.T) {
	stub := &crmStub{
		t:            t,
		createStatus: http.StatusCreated, ticketID: "100203",
		uploadStatus: http.StatusCreated, fileID: "file-9",
	}
	gateway := newGateway(t, stub, &captureDispatcher{})

	_, err := gateway.CreateTicket(context.Background(), TicketCreateInput{
		File: &FileInput{
			Name:   "evidencia.png",
			Type:   "image/png",
			Base64: base64.StdEncoding.EncodeToString([]byte("fake-png")),
		},
	})
	require.NoError(t, err)
	require.Equal(t, "file-9", stub.createdProps["hs_file_upload"])
}

func TestCreateTicketUpstreamFailurePassesThrough(t *testing.T) {
	stub := &crmStub{t: t, createStatus: http.StatusBadRequest, ticketID: ""}
	dispatcher := &captureDispatcher{}
	gateway := newGateway(t, stub, dispatcher)

	_, err := gateway.CreateTicket(context.Background(), TicketCreateInput{Subject: "x"})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "UPSTREAM_ERROR", domainErr.Code)
	require.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	require.Empty(t, dispatcher.published)
}
