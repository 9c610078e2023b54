package source

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/pushhub/pkg/domain"
)

// RSSSource reads RSS/Atom feeds, one feed url per category
type RSSSource struct {
	base
}

// NewRSSSource makes a feed source. searchURL is optional and may contain {keyword}.
func NewRSSSource(name string, categories map[string]string, searchURL string, opts Options) *RSSSource {
	return &RSSSource{base: newBase(name, categories, searchURL, opts)}
}

// Fetch retrieves and parses the feed selected by the query
func (s *RSSSource) Fetch(ctx context.Context, q Query) ([]domain.Article, error) {
	link, category, err := s.resolve(q)
	if err != nil {
		return nil, err
	}

	resp, err := s.get(ctx, link, acceptFeed)
	if err != nil {
		return nil, &FetchError{Source: s.name, URL: link, Err: err}
	}
	defer resp.Body.Close()

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: s.name, URL: link, Err: fmt.Errorf("parse feed: %w", err)}
	}

	now := time.Now().UTC()
	res := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body := item.Content
		if body == "" {
			body = item.Description
		}
		article := domain.Article{
			Title:     cleanText(item.Title),
			Content:   cleanText(body),
			Link:      item.Link,
			Source:    domain.Source(s.name),
			Category:  category,
			ScrapedAt: now,
		}
		switch {
		case item.PublishedParsed != nil:
			article.PublishedAt = item.PublishedParsed.UTC()
		case item.UpdatedParsed != nil:
			article.PublishedAt = item.UpdatedParsed.UTC()
		}
		if article.Title == "" && article.Link == "" {
			continue
		}
		s.enrich(ctx, &article)
		res = append(res, article)
	}
	return res, nil
}
