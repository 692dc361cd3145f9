package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.yaml.in/yaml/v4"

	"github.com/nagaozen/schematools/schemaerrors"
)

// HTTPProvider serves the "http" and "https" schemes.
//
// Responses parse as YAML, which accepts JSON as a subset, so no
// content-type negotiation is performed. Retry and backoff are deliberately
// out of scope; wrap the provider when they are needed.
type HTTPProvider struct {
	// Client is the HTTP client to use. Nil means http.DefaultClient.
	Client *http.Client

	// MaxBodySize bounds the size of a single response body.
	// Zero means the package default.
	MaxBodySize int64
}

// NewHTTPProvider creates an HTTPProvider using client, which may be nil.
func NewHTTPProvider(client *http.Client) *HTTPProvider {
	return &HTTPProvider{Client: client}
}

// Fetch implements Provider.
func (p *HTTPProvider) Fetch(ctx context.Context, address string, opts FetchOptions) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", address, err)
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}
	for key, value := range opts.Header {
		req.Header.Set(key, value)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", address, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, address)
	}

	limit := p.MaxBodySize
	if limit <= 0 {
		limit = MaxFileSize
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", address, err)
	}
	if int64(len(data)) > limit {
		return nil, &schemaerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       int64(len(data)),
			Message:      address,
		}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response from %s: %w", address, err)
	}
	return doc, nil
}

// Ensure HTTPProvider implements Provider at compile time.
var _ Provider = (*HTTPProvider)(nil)
