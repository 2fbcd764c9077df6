// Package gmrepo provides the client for the GMrepo RESTful API
// (https://gmrepo.humangut.info), a curated database of human gut
// microbiome runs, taxa, and phenotypes. Every endpoint is an HTTP POST
// with a JSON body; tabular responses decode into table.Table.
package gmrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"

	gerrors "github.com/gmrepo/cli/internal/errors"
	"github.com/gmrepo/cli/internal/output"
	"github.com/gmrepo/cli/internal/table"
)

// Default connection settings.
const (
	// DefaultBaseURL is the GMrepo API root.
	DefaultBaseURL = "https://gmrepo.humangut.info/api/"

	// DefaultDownloadBaseURL is the root for pre-built TSV archives.
	DefaultDownloadBaseURL = "https://gmrepo.humangut.info/Downloads/"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 60 * time.Second

	// DefaultBatchSize is the page size for paginated run fetches.
	DefaultBatchSize = 100
)

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	// BaseURL is the API root. Must end with a slash.
	BaseURL string

	// DownloadBaseURL is the archive root. Must end with a slash.
	DownloadBaseURL string

	// Timeout bounds a single request.
	Timeout time.Duration

	// RetryCount is the number of retries for failed requests.
	RetryCount int

	// RetryWaitTime is the wait between retries.
	RetryWaitTime time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Client talks to the GMrepo API.
type Client struct {
	http        *resty.Client
	clean       *Cleaner
	downloadURL string
}

// New creates a Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.DownloadBaseURL == "" {
		opts.DownloadBaseURL = DefaultDownloadBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "gmrepo-cli"
	}

	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent)

	if opts.RetryCount > 0 {
		httpClient.SetRetryCount(opts.RetryCount)
		if opts.RetryWaitTime > 0 {
			httpClient.SetRetryWaitTime(opts.RetryWaitTime)
		}
	}

	return &Client{
		http:        httpClient,
		clean:       NewCleaner(),
		downloadURL: opts.DownloadBaseURL,
	}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// post sends a JSON body to an endpoint and returns the raw response body.
// Transport failures map to ErrConnectivity, 404 to ErrNotFound, and other
// error statuses to ErrAPI.
func (c *Client) post(ctx context.Context, endpoint Endpoint, body map[string]any) ([]byte, error) {
	if body == nil {
		body = map[string]any{}
	}

	start := time.Now()
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(string(endpoint))
	if err != nil {
		return nil, gerrors.NewConnectivityError(
			fmt.Sprintf("request to %s failed: %v", endpoint, err),
			map[string]string{"endpoint": string(endpoint)},
			"check network connectivity and the configured base URL",
		)
	}

	output.Debug("api request",
		"endpoint", endpoint,
		"status", res.StatusCode(),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	if res.StatusCode() == http.StatusNotFound {
		return nil, gerrors.NewNotFoundError(
			fmt.Sprintf("endpoint %s answered 404", endpoint),
			string(endpoint),
			"verify the identifier exists in GMrepo",
		)
	}
	if res.IsError() {
		return nil, gerrors.NewAPIError(
			fmt.Sprintf("endpoint %s answered %s", endpoint, res.Status()),
			string(endpoint),
			res.Status(),
		)
	}

	return res.Bytes(), nil
}

// fetchTable posts to an endpoint and decodes the response as a table.
func (c *Client) fetchTable(ctx context.Context, endpoint Endpoint, body map[string]any, opts ...table.DecodeOption) (*table.Table, error) {
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return nil, err
	}

	opts = append(opts, table.WithStringCleaner(c.clean.Clean))
	t, err := table.FromJSON(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("endpoint %s: %w", endpoint, err)
	}
	return t, nil
}

// fetchDocument posts to an endpoint and decodes the response as a generic
// document, for endpoints whose payload is not tabular.
func (c *Client) fetchDocument(ctx context.Context, endpoint Endpoint, body map[string]any) (map[string]any, error) {
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return nil, err
	}

	doc, err := table.DecodeDocument(raw, c.clean.Clean)
	if err != nil {
		return nil, fmt.Errorf("endpoint %s: %w", endpoint, err)
	}
	return doc, nil
}

// asInt coerces a decoded cell to an int.
func asInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, err
			}
			return int(f), nil
		}
		return int(i), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
}
