package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/chandlera/chandler-family-blog/internal/post/repository"
)

// Client is the HTTP wrapper for the Notion REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Notion HTTP client. Requests are throttled to
// Notion's average rate limit.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// GetDatabase fetches database metadata via GET /v1/databases/{id}.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (*Database, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/databases/%s", c.baseURL, databaseID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get database request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	httpReq.Header.Set("Notion-Version", APIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call notion database API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("notion API database error %d: %s", resp.StatusCode, string(raw))
	}

	var db Database
	if err := json.NewDecoder(resp.Body).Decode(&db); err != nil {
		return nil, fmt.Errorf("failed to decode database response: %w", err)
	}
	return &db, nil
}

// QueryDataSource queries a data source via POST /v1/data_sources/{id}/query.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string, req QueryRequest) (*QueryResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/data_sources/%s/query", c.baseURL, dataSourceID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	httpReq.Header.Set("Notion-Version", APIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call notion query API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("notion API query error %d: %s", resp.StatusCode, string(raw))
	}

	var queryResp QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&queryResp); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return &queryResp, nil
}

// GetBlockChildren fetches one page of a block's children via
// GET /v1/blocks/{id}/children.
func (c *Client) GetBlockChildren(ctx context.Context, blockID, startCursor string) (*BlockChildrenResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/blocks/%s/children?page_size=%d", c.baseURL, blockID, blockPageSize)
	if startCursor != "" {
		reqURL += fmt.Sprintf("&start_cursor=%s", url.QueryEscape(startCursor))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build block children request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	httpReq.Header.Set("Notion-Version", APIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call notion block children API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("notion API block children error %d: %s", resp.StatusCode, string(raw))
	}

	var blocksResp BlockChildrenResponse
	if err := json.NewDecoder(resp.Body).Decode(&blocksResp); err != nil {
		return nil, fmt.Errorf("failed to decode block children response: %w", err)
	}
	return &blocksResp, nil
}

// ---- Request/Response types scoped to this package ----

// Database is the subset of database metadata the pipeline reads.
type Database struct {
	Object      string          `json:"object,omitempty"`
	ID          string          `json:"id"`
	DataSources []DataSourceRef `json:"data_sources"`
}

// DataSourceRef points at a queryable data source of a database.
type DataSourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// QueryRequest is the body for POST /v1/data_sources/{id}/query.
type QueryRequest struct {
	Filter *PropertyFilter `json:"filter,omitempty"`
	Sorts  []Sort          `json:"sorts,omitempty"`
}

// PropertyFilter filters results on a single property condition.
type PropertyFilter struct {
	Property string           `json:"property"`
	Select   *SelectCondition `json:"select,omitempty"`
}

// SelectCondition matches select properties by exact option name.
type SelectCondition struct {
	Equals string `json:"equals"`
}

// Sort orders query results by a property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// QueryResponse is the result page of a data-source query. The pipeline
// issues a single request and takes Results verbatim.
type QueryResponse struct {
	Object     string               `json:"object,omitempty"`
	Results    []repository.RawPost `json:"results"`
	HasMore    bool                 `json:"has_more"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

// BlockChildrenResponse is one page of a block-children listing.
type BlockChildrenResponse struct {
	Object     string             `json:"object,omitempty"`
	Results    []repository.Block `json:"results"`
	HasMore    bool               `json:"has_more"`
	NextCursor string             `json:"next_cursor,omitempty"`
}
