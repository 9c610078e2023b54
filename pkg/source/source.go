// Package source fetches raw articles from news portals.
// Every fetched article carries a content hash computed at fetch time.
package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/pushhub/pkg/domain"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source

// searchCategory is recorded on articles returned by a keyword search
const searchCategory = "search"

// Query selects what a source fetches. Keyword takes precedence over Category
// for sources supporting search.
type Query struct {
	Category string
	Keyword  string
}

// Source fetches articles from one portal
type Source interface {
	Name() string
	Categories() []string
	SupportsSearch() bool
	Fetch(ctx context.Context, q Query) ([]domain.Article, error)
}

// Extractor retrieves full article text from a page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// FetchError is returned when a source can't be fetched or parsed
type FetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s from %s: %v", e.Source, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Options are shared by all sources built from configuration
type Options struct {
	Client        *http.Client
	UserAgent     string
	Extractor     Extractor // optional, used for articles with short content
	MinTextLength int
}

// base holds what RSS and HTML sources have in common
type base struct {
	name       string
	categories map[string]string
	searchURL  string
	opts       Options
}

func newBase(name string, categories map[string]string, searchURL string, opts Options) base {
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "PushHub/1.0"
	}
	return base{name: name, categories: categories, searchURL: searchURL, opts: opts}
}

// Name returns source name
func (b *base) Name() string { return b.name }

// SupportsSearch reports whether the source can run keyword-scoped fetches
func (b *base) SupportsSearch() bool { return b.searchURL != "" }

// Categories returns configured category names in stable order
func (b *base) Categories() []string {
	res := make([]string, 0, len(b.categories))
	for name := range b.categories {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// resolve returns the url to fetch and the category to record for a query
func (b *base) resolve(q Query) (link, category string, err error) {
	if q.Keyword != "" && b.searchURL != "" {
		return strings.ReplaceAll(b.searchURL, "{keyword}", url.QueryEscape(q.Keyword)), searchCategory, nil
	}
	link, ok := b.categories[q.Category]
	if !ok {
		return "", "", fmt.Errorf("source %s has no category %q", b.name, q.Category)
	}
	return link, q.Category, nil
}

// get performs GET with browser-like headers, caller closes the body
func (b *base) get(ctx context.Context, link, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", b.opts.UserAgent)
	addBrowserHeaders(req, accept)

	resp, err := b.opts.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp, nil
}

// enrich sets the hash and fills content of short articles from the article page.
// The hash is taken before extraction and stays stable when the page can't be fetched.
func (b *base) enrich(ctx context.Context, article *domain.Article) {
	article.ContentHash = ContentHash(article.Title, article.Content)
	if b.opts.Extractor != nil && article.Link != "" && len([]rune(article.Content)) < b.opts.MinTextLength {
		text, err := b.opts.Extractor.Extract(ctx, article.Link)
		if err == nil && len(text) > len(article.Content) {
			article.Content = text
		}
	}
}

var textPolicy = bluemonday.StrictPolicy()

// cleanText strips markup, unescapes entities and collapses whitespace
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(html.UnescapeString(textPolicy.Sanitize(s))), " ")
}

// ContentHash returns the fingerprint of an article, hex sha256 of normalized title and content.
// Normalization lowercases and collapses whitespace, so cosmetic differences don't defeat dedup.
// Returns empty string when both title and content are empty.
func ContentHash(title, content string) string {
	norm := func(s string) string { return strings.Join(strings.Fields(strings.ToLower(s)), " ") }
	t, c := norm(title), norm(content)
	if t == "" && c == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(t + "\n" + c))
	return hex.EncodeToString(sum[:])
}
