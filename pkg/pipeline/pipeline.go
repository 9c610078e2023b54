// Package pipeline implements ingestion and batch analysis runs for features.
//
// An ingestion run fetches articles from configured sources, drops ones already stored
// for the feature, optionally keeps only articles matching keywords, saves the rest and
// records the run in the job log. A batch analysis run picks stored articles without
// analysis and enriches them one at a time through the LLM agent, accounting the cost.
package pipeline

import (
	"context"

	"github.com/umputun/pushhub/pkg/domain"
	"github.com/umputun/pushhub/pkg/source"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/job_store.go -pkg mocks -skip-ensure -fmt goimports . JobStore
//go:generate moq -out mocks/keyword_store.go -pkg mocks -skip-ensure -fmt goimports . KeywordStore
//go:generate moq -out mocks/agent.go -pkg mocks -skip-ensure -fmt goimports . Agent
//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . IngestRunner BatchRunner

// ArticleStore persists articles of features
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	GetRecentArticles(ctx context.Context, featureID string, limit int) ([]*domain.Article, error)
	GetRecentHashes(ctx context.Context, featureID string, window int) (map[string]struct{}, error)
	HashesExist(ctx context.Context, featureID string, hashes []string) (map[string]struct{}, error)
	UpdateArticleAnalysis(ctx context.Context, id string, analysis *domain.Analysis) error
}

// JobStore keeps the audit log of ingestion runs
type JobStore interface {
	CreateJob(ctx context.Context, job *domain.ScrapingJob) error
	FinishJob(ctx context.Context, id string, outcome domain.JobOutcome) error
}

// KeywordStore provides default keywords of a feature
type KeywordStore interface {
	GetFeatureKeywords(ctx context.Context, featureID string) ([]string, error)
}

// Agent enriches a single article
type Agent interface {
	Analyze(ctx context.Context, task domain.AnalysisTask) (domain.AnalysisResult, error)
}

// Limiter blocks until the next agent call is allowed
type Limiter interface {
	Wait(ctx context.Context) error
}

// Sources looks up configured sources by name
type Sources interface {
	Get(name string) (source.Source, bool)
	Names() []string
}

// IngestRunner runs one ingestion
type IngestRunner interface {
	Run(ctx context.Context, req IngestRequest) (*IngestResult, error)
}

// BatchRunner runs one batch analysis
type BatchRunner interface {
	BatchAnalyze(ctx context.Context, req AnalyzeRequest) (*BatchResult, error)
}
