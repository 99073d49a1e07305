// Package landsat is a client for the USGS Landsat STAC search API
// (landsatlook.usgs.gov sat-api). It builds the nested JSON query body from
// typed filter parameters, issues the search POST, and parses the returned
// feature collection into typed Scene values.
package landsat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultSearchURL is the USGS Landsat STAC search endpoint.
const DefaultSearchURL = "https://landsatlook.usgs.gov/sat-api/stac/search"

// Client handles communication with the Landsat search endpoint.
type Client struct {
	searchURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new search client. An empty searchURL selects
// DefaultSearchURL.
func NewClient(searchURL string, timeout time.Duration) *Client {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	return &Client{
		searchURL: searchURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: slog.Default(),
	}
}

// WithLogger sets a custom logger for the client.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

// Search renders the query, performs a single synchronous POST and returns
// the decoded feature collection. A non-200 response is returned as a
// *RequestError carrying the status code and raw body.
func (c *Client) Search(ctx context.Context, q *Query) (*FeatureCollection, error) {
	status, result, body, err := c.post(ctx, q)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &RequestError{StatusCode: status, Body: body}
	}
	return result, nil
}

// Do is the non-failing variant of Search: a non-200 status is not an
// error, and the response body is still decoded and returned when it is
// valid JSON so the caller can inspect it. The error covers rendering,
// transport and malformed-200-body failures only.
func (c *Client) Do(ctx context.Context, q *Query) (int, *FeatureCollection, error) {
	status, result, _, err := c.post(ctx, q)
	return status, result, err
}

func (c *Client) post(ctx context.Context, q *Query) (int, *FeatureCollection, []byte, error) {
	doc, err := q.Generate()
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to render query: %w", err)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to encode query: %w", err)
	}

	c.logger.DebugContext(ctx, "executing Landsat search",
		slog.String("url", c.searchURL),
		slog.Int("limit", doc.Limit),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.searchURL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Landsat search request failed",
			slog.String("error", err.Error()),
			slog.String("url", c.searchURL),
		)
		return 0, nil, nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "Landsat search returned non-200 status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("response_body", string(body)),
		)
		// Decode best-effort so Do callers can still inspect the body.
		var result FeatureCollection
		if json.Unmarshal(body, &result) == nil {
			return resp.StatusCode, &result, body, nil
		}
		return resp.StatusCode, nil, body, nil
	}

	var result FeatureCollection
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.ErrorContext(ctx, "failed to decode search response",
			slog.String("error", err.Error()),
		)
		return resp.StatusCode, nil, body, fmt.Errorf("failed to decode search response: %w", err)
	}

	c.logger.DebugContext(ctx, "Landsat search completed",
		slog.Int("feature_count", len(result.Features)),
	)

	return resp.StatusCode, &result, body, nil
}
