package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Pinecone REST API version pinned for all requests.
const apiVersion = "2025-01"

const defaultControlPlaneURL = "https://api.pinecone.io"

// Client wraps the Pinecone control-plane and inference REST APIs.
// Index data-plane operations live on Index, obtained via Client.Index.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the control-plane URL (used by tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Pinecone API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultControlPlaneURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IndexDescription is the control-plane view of an index.
type IndexDescription struct {
	Name      string `json:"name"`
	Dimension int    `json:"dimension"`
	Metric    string `json:"metric"`
	Host      string `json:"host"`
	Status    struct {
		Ready bool   `json:"ready"`
		State string `json:"state"`
	} `json:"status"`
}

// ListIndexes returns the indexes visible to the API key.
func (c *Client) ListIndexes(ctx context.Context) ([]IndexDescription, error) {
	var out struct {
		Indexes []IndexDescription `json:"indexes"`
	}
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/indexes", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list indexes: %w", err)
	}
	return out.Indexes, nil
}

// DescribeIndex returns the description of a single index.
func (c *Client) DescribeIndex(ctx context.Context, name string) (*IndexDescription, error) {
	var out IndexDescription
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/indexes/"+name, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to describe index %s: %w", name, err)
	}
	return &out, nil
}

// CreateIndex creates a serverless index with the given dimension and a
// cosine similarity metric.
func (c *Client) CreateIndex(ctx context.Context, name string, dimension int) error {
	payload := map[string]interface{}{
		"name":      name,
		"dimension": dimension,
		"metric":    "cosine",
		"spec": map[string]interface{}{
			"serverless": map[string]interface{}{
				"cloud":  "aws",
				"region": "us-east-1",
			},
		},
	}
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/indexes", payload, nil); err != nil {
		return fmt.Errorf("failed to create index %s: %w", name, err)
	}
	return nil
}

// Index returns a data-plane handle for the index at the given host.
// The host comes from DescribeIndex.
func (c *Client) Index(host string) *Index {
	baseURL := host
	if baseURL != "" && !hasScheme(baseURL) {
		baseURL = "https://" + baseURL
	}
	return &Index{
		apiKey:     c.apiKey,
		baseURL:    baseURL,
		httpClient: c.httpClient,
	}
}

// do issues one API request, encoding payload and decoding into out when
// non-nil. Non-2xx responses surface status plus a body excerpt.
func (c *Client) do(ctx context.Context, method, url string, payload, out interface{}) error {
	return doJSON(ctx, c.httpClient, c.apiKey, method, url, payload, out)
}

func doJSON(ctx context.Context, hc *http.Client, apiKey, method, url string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", apiKey)
	req.Header.Set("X-Pinecone-API-Version", apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// APIError is a non-2xx response from the Pinecone API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pinecone api error (status %d): %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 API response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

func hasScheme(url string) bool {
	return len(url) > 8 && (url[:7] == "http://" || url[:8] == "https://")
}
