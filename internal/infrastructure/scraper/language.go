package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProber answers directory reachability checks with a plain GET. Used
// by the language-support lookup, which derives a locale-specific address
// and only needs to know whether it resolves.
type HTTPProber struct {
	client    *http.Client
	userAgent string
}

// NewHTTPProber creates a prober. A nil client gets a five-second default.
func NewHTTPProber(client *http.Client, userAgent string) *HTTPProber {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPProber{client: client, userAgent: userAgent}
}

// Probe reports whether the URL answers with a success status. Non-2xx
// responses mean "not supported", not an error; errors are reserved for
// transport failures.
func (p *HTTPProber) Probe(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("build probe request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
