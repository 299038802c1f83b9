package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/support-portal/internal/config"
)

// Client is the outbound adapter to the HubSpot CRM REST API. Every call is
// bounded by the configured timeout; there are no retries, since a retried
// create could double-create tickets.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient constructs the client from config.
func NewClient(cfg config.HubSpotConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

// Response captures an upstream reply. The body is kept as parsed JSON when
// possible and as raw text otherwise, so error handling never has to guess
// what shape the CRM returned.
type Response struct {
	StatusCode int
	JSON       map[string]any
	Raw        []byte
}

// Success reports a 2xx status.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NotFound reports an upstream 404.
func (r *Response) NotFound() bool {
	return r.StatusCode == http.StatusNotFound
}

// Message extracts the upstream "message" field, falling back to the raw body.
func (r *Response) Message() string {
	if msg := r.Str("message"); msg != "" {
		return msg
	}
	if r.JSON == nil {
		return strings.TrimSpace(string(r.Raw))
	}
	return ""
}

// Str returns a top-level string field of the JSON body, converting numbers.
func (r *Response) Str(key string) string {
	if r.JSON == nil {
		return ""
	}
	return anyToString(r.JSON[key])
}

// Properties returns the "properties" object of a CRM record as strings.
func (r *Response) Properties() map[string]string {
	props := map[string]string{}
	if r.JSON == nil {
		return props
	}
	raw, ok := r.JSON["properties"].(map[string]any)
	if !ok {
		return props
	}
	for key, val := range raw {
		props[key] = anyToString(val)
	}
	return props
}

// Do issues a JSON request against the CRM and wraps the reply.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	return c.doRequest(ctx, method, path, "application/json", body)
}

func (c *Client) doRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hubspot %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	result := &Response{StatusCode: resp.StatusCode, Raw: raw}
	var parsed map[string]any
	if json.Unmarshal(raw, &parsed) == nil {
		result.JSON = parsed
	}
	if !result.Success() {
		c.logger.Warn("hubspot call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
	}
	return result, nil
}

func anyToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
