package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kavinak445/technovate-backend/internal/notification"
	"github.com/kavinak445/technovate-backend/internal/registration"
)

// RelayClient is the HTTP implementation of Relay, pointing at the
// registration relay service.
type RelayClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewRelayClient(baseURL string) *RelayClient {
	return &RelayClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *RelayClient) post(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		msg := failure.Message
		if msg == "" {
			msg = failure.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s: %s", path, msg)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *RelayClient) SubmitToSheets(ctx context.Context, req registration.SubmitRequest) (*registration.SubmitResponse, error) {
	var resp registration.SubmitResponse
	if err := c.post(ctx, "/api/submit-to-sheets", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RelayClient) SendConfirmations(ctx context.Context, req notification.BulkEmailRequest) (*notification.BulkEmailResponse, error) {
	var resp notification.BulkEmailResponse
	if err := c.post(ctx, "/api/send-emails", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RelayClient) SendVerificationPending(ctx context.Context, req notification.VerificationPendingRequest) (*notification.BulkEmailResponse, error) {
	var resp notification.BulkEmailResponse
	if err := c.post(ctx, "/api/send-verification-pending", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
