package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pushhub/pkg/domain"
	"github.com/umputun/pushhub/server/mocks"
)

func TestServer_rssHandler(t *testing.T) {
	high, low := 8.5, 6.0
	pub := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	db := &mocks.DatabaseMock{
		ListArticlesFunc: func(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
			return []*domain.Article{
				{ID: "a1", Title: "Moderate news", Link: "https://n.example.com/1", Source: "rbc",
					PublishedAt: pub.Add(time.Hour), ImportanceScore: &low},
				{ID: "a2", Title: "Tech News", Link: "https://n.example.com/2", Source: "lenta",
					PublishedAt: pub, ImportanceScore: &high, OneLiner: "big one"},
			}, nil
		},
	}
	srv := testServer(t, db, nil, nil)

	t.Run("default min score", func(t *testing.T) {
		w := serve(t, srv, "GET", "/rss/tech-feature", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))

		calls := db.ListArticlesCalls()
		require.NotEmpty(t, calls)
		assert.Equal(t, domain.ArticleFilter{FeatureID: "tech-feature", Limit: defaultRSSLimit,
			OnlyAnalyzed: true, MinScore: defaultMinScore}, calls[len(calls)-1].Filter)

		body := w.Body.String()
		assert.Contains(t, body, `<title>PushHub - tech-feature (score ≥ 5.0)</title>`)
		assert.Contains(t, body, `href="https://hub.example.com/rss/tech-feature"`)
		assert.Contains(t, body, `<title>[8.5] Tech News</title>`)
		assert.Less(t, strings.Index(body, "Tech News"), strings.Index(body, "Moderate news"))
	})

	t.Run("custom min score", func(t *testing.T) {
		w := serve(t, srv, "GET", "/rss/tech-feature?min_score=7", "")
		require.Equal(t, http.StatusOK, w.Code)
		calls := db.ListArticlesCalls()
		assert.InDelta(t, 7.0, calls[len(calls)-1].Filter.MinScore, 0)
		assert.NotContains(t, w.Body.String(), "Moderate news")
	})

	t.Run("invalid min score falls back to default", func(t *testing.T) {
		w := serve(t, srv, "GET", "/rss/tech-feature?min_score=abc", "")
		require.Equal(t, http.StatusOK, w.Code)
		calls := db.ListArticlesCalls()
		assert.InDelta(t, defaultMinScore, calls[len(calls)-1].Filter.MinScore, 0)
	})
}

func TestServer_rssHandlerDatabaseError(t *testing.T) {
	db := &mocks.DatabaseMock{
		ListArticlesFunc: func(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
			return nil, errors.New("database query failed")
		},
	}
	srv := testServer(t, db, nil, nil)

	w := serve(t, srv, "GET", "/rss/tech-feature", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate RSS feed")
}

