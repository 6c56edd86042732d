// Package autorag provides a retrieval adapter for a managed
// retrieval-augmented search service. The service owns indexing,
// embedding and ranking; this client only submits queries against a
// named index and decodes the ranked hits.
package autorag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/tastebud-labs/storefront-mcp/internal/core/domain"
	"github.com/tastebud-labs/storefront-mcp/internal/core/ports/driven"
	"github.com/tastebud-labs/storefront-mcp/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchIndex = (*Client)(nil)

// DefaultTimeout bounds a single search call. There is no retry; a
// request either completes within the timeout or fails.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for the retrieval client.
type Config struct {
	// BaseURL is the service endpoint, e.g. the account-scoped API root
	// of the managed deployment (required).
	BaseURL string

	// APIToken authenticates requests as a bearer token (required).
	APIToken string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration
}

// Client queries the managed retrieval service over HTTPS.
type Client struct {
	client   *http.Client
	baseURL  string
	apiToken string
}

// searchRequest is the service's query payload.
type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

// searchResponse is the service's response envelope. Every hit field is
// optional; the service omits what it does not have.
type searchResponse struct {
	Results []struct {
		Title   string `json:"title,omitempty"`
		URL     string `json:"url,omitempty"`
		Snippet string `json:"snippet,omitempty"`
		Content string `json:"content,omitempty"`
	} `json:"results"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// NewClient creates a retrieval client for the managed service.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("autorag: base URL is required")
	}
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("autorag: API token is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
	}, nil
}

// Search runs one query against the named index and returns the ranked
// hits in service order.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	jsonBody, err := json.Marshal(searchRequest{
		Query:      req.Query,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/indexes/%s/search", c.baseURL, url.PathEscape(req.Index))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	logger.Debug("POST %s", endpoint)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(searchResp.Errors) > 0 {
		return nil, fmt.Errorf("autorag error: %s", searchResp.Errors[0].Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("autorag error (status %d): %s", resp.StatusCode, string(body))
	}

	results := make([]domain.ResultItem, len(searchResp.Results))
	for i, hit := range searchResp.Results {
		results[i] = domain.ResultItem{
			Title:   hit.Title,
			URL:     hit.URL,
			Snippet: hit.Snippet,
			Content: hit.Content,
		}
	}

	return &domain.SearchResponse{Results: results}, nil
}
