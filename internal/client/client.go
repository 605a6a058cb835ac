// Package client calls the stock-tracker HTTP API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/andreasstove999/stock-tracker/internal/inventory"
)

const (
	inventoryPath = "/api/inventory"

	// headerCorrelationID matches the id the server logs with every request.
	headerCorrelationID = "X-Correlation-Id"
)

// APIError is an error body returned by the server.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
}

// New parses baseURL. A nil httpClient means http.DefaultClient, which has
// no timeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{BaseURL: u, HTTP: httpClient}, nil
}

type inventoryBody struct {
	Data    []inventory.Item `json:"data"`
	Headers []string         `json:"headers"`
	Error   string           `json:"error"`
	Details string           `json:"details"`
}

// Inventory fetches one snapshot. A body carrying an "error" field is
// returned as *APIError whatever the status code.
func (c *Client) Inventory(ctx context.Context) (inventory.Response, error) {
	u := c.BaseURL.ResolveReference(&url.URL{Path: inventoryPath})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return inventory.Response{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerCorrelationID, uuid.NewString())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return inventory.Response{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return inventory.Response{}, fmt.Errorf("read response: %w", err)
	}

	var body inventoryBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return inventory.Response{}, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if body.Error != "" {
		return inventory.Response{}, &APIError{StatusCode: resp.StatusCode, Message: body.Error, Details: body.Details}
	}
	if resp.StatusCode != http.StatusOK {
		return inventory.Response{}, &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	out := inventory.Response{Data: body.Data, Headers: body.Headers}
	if out.Data == nil {
		out.Data = []inventory.Item{}
	}
	if out.Headers == nil {
		out.Headers = []string{}
	}
	return out, nil
}
