package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ScriptClient posts flat JSON rows to a Google Apps Script web-app URL.
// The script appends each posted object as one sheet row and echoes
// {"success": true|false}.
type ScriptClient struct {
	url  string
	http *http.Client
}

func NewScript(url string) *ScriptClient {
	return &ScriptClient{
		url:  url,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

type scriptResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Post sends one row payload to the web app. Apps Script replies 200
// even on script-level failure, so the body is inspected as well.
func (c *ScriptClient) Post(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post to google script: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("google script returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read google script response: %w", err)
	}

	// Some script deployments redirect to an HTML page; treat any
	// non-JSON 2xx body as accepted, matching the original no-cors call.
	var sr scriptResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return nil
	}
	if !sr.Success && sr.Message != "" {
		return fmt.Errorf("google script rejected row: %s", sr.Message)
	}
	return nil
}
