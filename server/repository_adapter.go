package server

import (
	"context"

	"github.com/umputun/pushhub/pkg/domain"
	"github.com/umputun/pushhub/pkg/repository"
)

// RepositoryAdapter exposes the split repositories as server.Database
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetJob returns one job record
func (r *RepositoryAdapter) GetJob(ctx context.Context, id string) (*domain.ScrapingJob, error) {
	return r.repos.Job.GetJob(ctx, id)
}

// ListJobs returns recent jobs of a feature
func (r *RepositoryAdapter) ListJobs(ctx context.Context, featureID string, limit int) ([]*domain.ScrapingJob, error) {
	return r.repos.Job.ListJobs(ctx, featureID, limit)
}

// ListArticles returns stored articles matching the filter
func (r *RepositoryAdapter) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return r.repos.Article.ListArticles(ctx, filter)
}

// CountArticles returns stored and analyzed counts of a feature
func (r *RepositoryAdapter) CountArticles(ctx context.Context, featureID string) (total, analyzed int, err error) {
	return r.repos.Article.CountArticles(ctx, featureID)
}

// GetFeatureKeywords returns the default keywords of a feature
func (r *RepositoryAdapter) GetFeatureKeywords(ctx context.Context, featureID string) ([]string, error) {
	return r.repos.Setting.GetFeatureKeywords(ctx, featureID)
}

// SetFeatureKeywords stores the default keywords of a feature
func (r *RepositoryAdapter) SetFeatureKeywords(ctx context.Context, featureID string, keywords []string) error {
	return r.repos.Setting.SetFeatureKeywords(ctx, featureID, keywords)
}
