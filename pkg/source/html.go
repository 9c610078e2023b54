package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/umputun/pushhub/pkg/domain"
)

// Selectors locate article blocks and their fields on a listing page
type Selectors struct {
	Item    string
	Title   string
	Link    string
	Content string
	Date    string
}

// HTMLSource scrapes portal listing pages with CSS selectors
type HTMLSource struct {
	base
	sel Selectors
}

// dateLayouts are tried in order when parsing listing dates
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006",
	time.RFC1123Z,
	time.RFC1123,
}

// NewHTMLSource makes a scraping source, sel.Item is required
func NewHTMLSource(name string, categories map[string]string, searchURL string, sel Selectors, opts Options) (*HTMLSource, error) {
	if sel.Item == "" {
		return nil, fmt.Errorf("source %s: item selector is required", name)
	}
	return &HTMLSource{base: newBase(name, categories, searchURL, opts), sel: sel}, nil
}

// Fetch loads the listing page selected by the query and extracts article blocks
func (s *HTMLSource) Fetch(ctx context.Context, q Query) ([]domain.Article, error) {
	link, category, err := s.resolve(q)
	if err != nil {
		return nil, err
	}
	pageURL, err := url.Parse(link)
	if err != nil {
		return nil, &FetchError{Source: s.name, URL: link, Err: fmt.Errorf("parse URL: %w", err)}
	}

	resp, err := s.get(ctx, link, acceptHTML)
	if err != nil {
		return nil, &FetchError{Source: s.name, URL: link, Err: err}
	}
	defer resp.Body.Close()

	// portals still serve windows-1251 and koi8-r pages
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &FetchError{Source: s.name, URL: link, Err: fmt.Errorf("detect charset: %w", err)}
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, &FetchError{Source: s.name, URL: link, Err: fmt.Errorf("parse document: %w", err)}
	}

	now := time.Now().UTC()
	var res []domain.Article
	doc.Find(s.sel.Item).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}
		article := domain.Article{
			Title:     cleanText(s.text(item, s.sel.Title)),
			Content:   cleanText(s.text(item, s.sel.Content)),
			Link:      s.link(item, pageURL),
			Source:    domain.Source(s.name),
			Category:  category,
			ScrapedAt: now,
		}
		if s.sel.Date != "" {
			article.PublishedAt = parseDate(item.Find(s.sel.Date).First())
		}
		if article.Title == "" && article.Link == "" {
			return true
		}
		s.enrich(ctx, &article)
		res = append(res, article)
		return true
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// text returns inner html of the first match inside item, empty for an empty selector
func (s *HTMLSource) text(item *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	h, err := item.Find(selector).First().Html()
	if err != nil {
		return item.Find(selector).First().Text()
	}
	return h
}

// link finds the article href and resolves it against the listing page url
func (s *HTMLSource) link(item *goquery.Selection, pageURL *url.URL) string {
	candidates := []*goquery.Selection{}
	if s.sel.Link != "" {
		candidates = append(candidates, item.Find(s.sel.Link).First())
	}
	if s.sel.Title != "" {
		candidates = append(candidates, item.Find(s.sel.Title).First())
	}
	candidates = append(candidates, item, item.Find("a[href]").First())

	for _, c := range candidates {
		href, ok := c.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			continue
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			continue
		}
		return pageURL.ResolveReference(ref).String()
	}
	return ""
}

// parseDate reads datetime attribute first, then the element text
func parseDate(sel *goquery.Selection) time.Time {
	values := []string{}
	if v, ok := sel.Attr("datetime"); ok {
		values = append(values, v)
	}
	values = append(values, strings.TrimSpace(sel.Text()))
	for _, v := range values {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Time{}
}
