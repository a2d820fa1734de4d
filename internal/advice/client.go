// ABOUTME: HTTP client for the advice endpoint.
// ABOUTME: Sends a prompt, receives generated advice text.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the advice endpoint. The endpoint contract is opaque:
// POST {"prompt": ...}, receive {"advice": ...}.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type adviceRequest struct {
	Prompt string `json:"prompt"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

// GetAdvice sends the prompt and returns the generated advice text.
func (c *Client) GetAdvice(ctx context.Context, prompt string) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("advice endpoint not configured")
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	payload, err := json.Marshal(adviceRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("encode advice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create advice request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute advice request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read advice response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("advice request failed with status %d", resp.StatusCode)
	}

	var parsed adviceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode advice response: %w", err)
	}
	if parsed.Advice == "" {
		return "", fmt.Errorf("empty advice response")
	}

	return parsed.Advice, nil
}
