package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/spec-kit/support-portal/internal/domain"
)

// Ticket property names used by the portal.
const (
	PropSubject       = "subject"
	PropContent       = "content"
	PropPipeline      = "hs_pipeline"
	PropPipelineStage = "hs_pipeline_stage"
	PropCategory      = "hs_ticket_category"
	PropArea          = "area_de_atencion"
	PropSourcePortal  = "source_portal"
	PropSourceType    = "source_type"
	PropFileUpload    = "hs_file_upload"
	PropOwnerID       = "hubspot_owner_id"
	PropAllOwnerIDs   = "hs_all_owner_ids"
	PropCreateDate    = "createdate"
	PropLastModified  = "hs_lastmodifieddate"
	PropClosedDate    = "closed_date"
)

// CreateTicket creates a ticket record with the given properties.
func (c *Client) CreateTicket(ctx context.Context, properties map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, "/crm/v3/objects/tickets", map[string]any{
		"properties": properties,
	})
}

// GetTicket fetches a ticket by id with an explicit field projection.
func (c *Client) GetTicket(ctx context.Context, ticketID string, properties []string) (*Response, error) {
	path := fmt.Sprintf("/crm/v3/objects/tickets/%s?properties=%s",
		url.PathEscape(ticketID), strings.Join(properties, ","))
	return c.Do(ctx, http.MethodGet, path, nil)
}

// SearchContactByEmail runs an exact-match contact search.
func (c *Client) SearchContactByEmail(ctx context.Context, email string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", map[string]any{
		"filterGroups": []map[string]any{{
			"filters": []map[string]any{{
				"propertyName": "email",
				"operator":     "EQ",
				"value":        email,
			}},
		}},
	})
}

// AssociateTicketContact links a ticket to a contact.
func (c *Client) AssociateTicketContact(ctx context.Context, ticketID, contactID string) (*Response, error) {
	path := fmt.Sprintf("/crm/v3/objects/tickets/%s/associations/contacts/%s/ticket_to_contact",
		url.PathEscape(ticketID), url.PathEscape(contactID))
	return c.Do(ctx, http.MethodPut, path, map[string]any{})
}

// GetOwner reads an owner record from the CRM directory.
func (c *Client) GetOwner(ctx context.Context, ownerID string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, "/crm/v3/owners/"+url.PathEscape(ownerID), nil)
}

// UploadFile stores an attachment as a private file in the portal folder. The
// files API requires multipart/form-data rather than JSON.
func (c *Client) UploadFile(ctx context.Context, name, mimeType string, data []byte) (*Response, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	if mimeType != "" {
		header.Set("Content-Type", mimeType)
	}
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write file part: %w", err)
	}
	if err := form.WriteField("folderPath", "/tickets_portal"); err != nil {
		return nil, fmt.Errorf("write folderPath: %w", err)
	}
	options, err := json.Marshal(map[string]any{
		"access":                      "PRIVATE",
		"overwrite":                   false,
		"duplicateValidationStrategy": "NONE",
		"duplicateValidationScope":    "ENTIRE_PORTAL",
	})
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	if err := form.WriteField("options", string(options)); err != nil {
		return nil, fmt.Errorf("write options: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	return c.doRequest(ctx, http.MethodPost, "/files/v3/files", form.FormDataContentType(), &buf)
}

// SearchTotal returns the "total" count of a search response.
func (r *Response) SearchTotal() int {
	if r.JSON == nil {
		return 0
	}
	total, ok := r.JSON["total"].(float64)
	if !ok {
		return 0
	}
	return int(total)
}

// FirstResultID returns the id of the first search result, if any.
func (r *Response) FirstResultID() string {
	if r.JSON == nil {
		return ""
	}
	results, ok := r.JSON["results"].([]any)
	if !ok || len(results) == 0 {
		return ""
	}
	first, ok := results[0].(map[string]any)
	if !ok {
		return ""
	}
	return anyToString(first["id"])
}

// OwnerRecord decodes an owner directory reply.
func (r *Response) OwnerRecord() domain.Owner {
	return domain.Owner{
		ID:        r.Str("id"),
		FirstName: r.Str("firstName"),
		LastName:  r.Str("lastName"),
		Email:     r.Str("email"),
	}
}

// TicketRecord decodes a ticket read into the portal projection.
func (r *Response) TicketRecord() domain.TicketRecord {
	props := r.Properties()
	ownerID := props[PropOwnerID]
	if ownerID == "" {
		ownerID = props[PropAllOwnerIDs]
	}
	return domain.TicketRecord{
		ID:           r.Str("id"),
		Subject:      props[PropSubject],
		Content:      props[PropContent],
		StageID:      props[PropPipelineStage],
		CategoryCode: props[PropCategory],
		OwnerID:      ownerID,
		ClosedDate:   props[PropClosedDate],
		CreatedAt:    props[PropCreateDate],
		UpdatedAt:    props[PropLastModified],
	}
}
