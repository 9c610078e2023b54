package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// PageExtractor pulls the main text of an article page with trafilatura
type PageExtractor struct {
	client    *http.Client
	userAgent string
}

// NewPageExtractor makes an extractor with per-page timeout
func NewPageExtractor(timeout time.Duration, userAgent string) *PageExtractor {
	return &PageExtractor{client: &http.Client{Timeout: timeout}, userAgent: userAgent}
}

// Extract downloads the page and returns its main text content
func (e *PageExtractor) Extract(ctx context.Context, link string) (string, error) {
	pageURL, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if pageURL.Scheme == "" || pageURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", link)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req, acceptHTML)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page %s: %w", link, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, link)
	}

	result, err := trafilatura.Extract(resp.Body, trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	})
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", link, err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return "", fmt.Errorf("no text content in %s", link)
	}
	return strings.TrimSpace(result.ContentText), nil
}
