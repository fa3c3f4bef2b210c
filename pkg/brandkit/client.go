// Package brandkit provides the public Go SDK for the brandkit API.
package brandkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the public SDK client for the brandkit API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds client configuration.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient creates a new brandkit client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8086"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// QueryRequest represents an asset lookup request.
type QueryRequest struct {
	Request    string `json:"request"`
	Background string `json:"background,omitempty"`
}

// Asset represents one recommended asset.
type Asset struct {
	ID          string   `json:"id"`
	Product     string   `json:"product"`
	Filename    string   `json:"filename"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Guidance    string   `json:"guidance,omitempty"`
	Layout      string   `json:"layout"`
	Color       string   `json:"color"`
	Background  string   `json:"background"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons,omitempty"`
}

// Question represents a clarifying question.
type Question struct {
	Attribute string   `json:"attribute"`
	Prompt    string   `json:"prompt"`
	Options   []string `json:"options"`
}

// Product represents one catalog summary.
type Product struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	AssetCount  int    `json:"asset_count"`
}

// QueryResponse represents an asset lookup response. Kind tells the caller
// which fields are populated: "answer" and "alternatives" carry assets,
// "question" carries a clarifying question, "help" carries products.
type QueryResponse struct {
	Kind         string    `json:"kind"`
	Confidence   string    `json:"confidence"`
	Product      string    `json:"product,omitempty"`
	Message      string    `json:"message"`
	Primary      *Asset    `json:"primary,omitempty"`
	Alternatives []Asset   `json:"alternatives,omitempty"`
	Question     *Question `json:"question,omitempty"`
	Products     []Product `json:"products,omitempty"`
}

// ProductListing represents one catalog in a full listing.
type ProductListing struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Description string  `json:"description,omitempty"`
	AssetCount  int     `json:"asset_count"`
	Samples     []Asset `json:"samples,omitempty"`
}

// Listing represents the full inventory listing.
type Listing struct {
	Products    []ProductListing `json:"products"`
	TotalAssets int              `json:"total_assets"`
}

// Guidelines represents the brand usage rules.
type Guidelines struct {
	ClearSpace   string `json:"clear_space"`
	MinimumSize  string `json:"minimum_size"`
	PrimaryGreen string `json:"primary_green"`
	Message      string `json:"message"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("brandkit api: %s (status %d)", e.Message, e.StatusCode)
}

// Query resolves a free-text request into an asset recommendation.
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	var resp QueryResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/assets/query", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListAssets returns every catalog with counts and sample assets.
func (c *Client) ListAssets(ctx context.Context) (*Listing, error) {
	var listing Listing
	if err := c.do(ctx, http.MethodGet, "/api/v1/assets/", nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Products returns the known product catalogs.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var resp struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// Guidelines returns the brand usage rules.
func (c *Client) Guidelines(ctx context.Context) (*Guidelines, error) {
	var g Guidelines
	if err := c.do(ctx, http.MethodGet, "/api/v1/guidelines", nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Refresh asks the server to re-fetch the inventory document.
func (c *Client) Refresh(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/refresh", nil, nil)
}

// Health reports whether the API is up.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, &apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
