package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/umputun/pushhub/pkg/domain"
	"github.com/umputun/pushhub/pkg/feed"
)

const (
	defaultMinScore = 5.0
	defaultRSSLimit = 100
)

// rssHandler serves analyzed articles of a feature as RSS 2.0
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	featureID := r.PathValue("feature")

	minScore := defaultMinScore
	if v := r.URL.Query().Get("min_score"); v != "" {
		if score, err := strconv.ParseFloat(v, 64); err == nil {
			minScore = score
		}
	}

	articles, err := s.db.ListArticles(r.Context(), domain.ArticleFilter{
		FeatureID:    featureID,
		Limit:        defaultRSSLimit,
		OnlyAnalyzed: true,
		MinScore:     minScore,
	})
	if err != nil {
		log.Printf("[ERROR] failed to get articles for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateRSS(articles, featureID, minScore)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
