// Package gemini implements schema.ModelProvider with direct HTTP calls to
// the generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/roomiebot/roomie/internal/schema"
)

const defaultAPIBase = "https://generativelanguage.googleapis.com/v1beta"

// Client calls one fixed model for the process lifetime.
type Client struct {
	apiKey     string
	model      string
	apiBase    string
	httpClient *http.Client
}

// New constructs a Client. apiBase is optional and exists mainly for tests
// and proxies.
func New(apiKey, model, apiBase string) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		apiBase:    strings.TrimRight(apiBase, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// wire-format request body for generateContent.
type generateBody struct {
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
	Contents          []schema.Content   `json:"contents"`
	Tools             []toolEntry        `json:"tools,omitempty"`
}

type systemInstruction struct {
	Parts []schema.Part `json:"parts"`
}

type toolEntry struct {
	FunctionDeclarations []schema.FunctionDeclaration `json:"functionDeclarations"`
}

// Generate implements schema.ModelProvider.
func (c *Client) Generate(ctx context.Context, req schema.GenerateRequest) (*schema.GenerateResponse, error) {
	body := generateBody{Contents: req.Contents}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &systemInstruction{Parts: []schema.Part{{Text: req.SystemInstruction}}}
	}
	if len(req.Tools) > 0 {
		body.Tools = []toolEntry{{FunctionDeclarations: req.Tools}}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.apiBase, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, friendlyHTTPError(resp.StatusCode, raw))
	}

	var out schema.GenerateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &out, nil
}

func friendlyHTTPError(code int, body []byte) string {
	if code == http.StatusTooManyRequests {
		return "rate limit exceeded"
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}
