package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/time/rate"

	"github.com/umputun/pushhub/pkg/domain"
)

const (
	defaultAnalyzeLimit    = 10
	defaultMaxAnalyzeLimit = 100
	defaultAnalyzeInterval = 500 * time.Millisecond
	// defaultRunsPerMonth assumes a batch every 30 minutes
	defaultRunsPerMonth = 1440
)

// AnalyzerConfig holds dependencies and settings of Analyzer
type AnalyzerConfig struct {
	Store        ArticleStore
	Agent        Agent
	Limiter      Limiter       // shared across batches; built from Interval when nil
	Interval     time.Duration // minimal spacing of agent calls
	DefaultLimit int
	MaxLimit     int // requests above it are rejected
	RunsPerMonth float64
	RetryFunc    func(ctx context.Context, op func() error) error // wraps each agent call, nil means no retry
}

// Analyzer runs batch analysis of stored articles
type Analyzer struct {
	store        ArticleStore
	agent        Agent
	limiter      Limiter
	defaultLimit int
	maxLimit     int
	runsPerMonth float64
	retryFunc    func(ctx context.Context, op func() error) error
}

// AnalyzeRequest selects articles for a batch
type AnalyzeRequest struct {
	FeatureID      string
	Limit          int
	ForceReanalyze bool
}

// BatchResult summarizes one batch. Analyzed + Failed always equals Total.
type BatchResult struct {
	Analyzed             int
	Total                int
	Failed               int
	TotalCost            float64
	EstimatedMonthlyCost float64
	Results              []domain.ArticleOutcome
	Message              string
}

// NewAnalyzer makes an analyzer, zero settings get defaults
func NewAnalyzer(cfg AnalyzerConfig) *Analyzer {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultAnalyzeInterval
	}
	if cfg.Limiter == nil {
		cfg.Limiter = rate.NewLimiter(rate.Every(cfg.Interval), 1)
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = defaultAnalyzeLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = defaultMaxAnalyzeLimit
	}
	cfg.MaxLimit = max(cfg.MaxLimit, cfg.DefaultLimit)
	if cfg.RunsPerMonth <= 0 {
		cfg.RunsPerMonth = defaultRunsPerMonth
	}
	if cfg.RetryFunc == nil {
		cfg.RetryFunc = NewRetryFunc(1, 0)
	}
	return &Analyzer{
		store:        cfg.Store,
		agent:        cfg.Agent,
		limiter:      cfg.Limiter,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		runsPerMonth: cfg.RunsPerMonth,
		retryFunc:    cfg.RetryFunc,
	}
}

// BatchAnalyze enriches up to req.Limit articles of a feature sequentially.
// Only a missing feature id or a failed candidate lookup return an error, failures of
// single articles are recorded in the result and never stop the batch.
func (an *Analyzer) BatchAnalyze(ctx context.Context, req AnalyzeRequest) (*BatchResult, error) {
	if req.FeatureID == "" {
		return nil, newValidation("featureId is required")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = an.defaultLimit
	}
	if limit > an.maxLimit {
		return nil, newValidation(fmt.Sprintf("limit must not exceed %d", an.maxLimit))
	}

	// over-fetch, some of the recent articles are already analyzed
	recent, err := an.store.GetRecentArticles(ctx, req.FeatureID, 2*limit)
	if err != nil {
		return nil, fmt.Errorf("get candidates for %s: %w", req.FeatureID, err)
	}

	candidates := make([]*domain.Article, 0, min(limit, len(recent)))
	for _, a := range recent {
		if len(candidates) == limit {
			break
		}
		if req.ForceReanalyze || !a.Analyzed() {
			candidates = append(candidates, a)
		}
	}

	res := &BatchResult{Results: []domain.ArticleOutcome{}}
	if len(candidates) == 0 {
		res.Message = "no articles need analysis"
		return res, nil
	}

	lgr.Printf("[INFO] analyzing %d articles of feature %s, force=%v", len(candidates), req.FeatureID, req.ForceReanalyze)
	for i, article := range candidates {
		if err := an.limiter.Wait(ctx); err != nil {
			// cancelled, remaining articles are reported as failed
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			}
			for _, rest := range candidates[i:] {
				res.Results = append(res.Results, domain.ArticleOutcome{ArticleID: rest.ID, Title: rest.Title, Error: err.Error()})
			}
			break
		}

		outcome := an.analyzeOne(ctx, article)
		res.Results = append(res.Results, outcome)
		if outcome.Success {
			res.Analyzed++
			if outcome.Cost != nil {
				res.TotalCost += outcome.Cost.Price
			}
		}
	}

	res.Total = len(candidates)
	res.Failed = res.Total - res.Analyzed
	res.EstimatedMonthlyCost = res.TotalCost * an.runsPerMonth
	lgr.Printf("[INFO] feature %s batch done, analyzed %d of %d, cost %.4f", req.FeatureID, res.Analyzed, res.Total, res.TotalCost)
	return res, nil
}

// analyzeOne calls the agent for one article and writes the analysis back
func (an *Analyzer) analyzeOne(ctx context.Context, article *domain.Article) domain.ArticleOutcome {
	outcome := domain.ArticleOutcome{ArticleID: article.ID, Title: article.Title}
	task := domain.AnalysisTask{
		ID:    fmt.Sprintf("analysis-%s-%d", article.ID, time.Now().UnixNano()),
		Type:  domain.TaskTypeAnalysis,
		Input: domain.AnalysisInput{Article: *article},
	}

	var result domain.AnalysisResult
	attempt := 0
	err := an.retryFunc(ctx, func() error {
		// the first call is paced by the batch loop, retries take their own token
		if attempt++; attempt > 1 {
			if err := an.limiter.Wait(ctx); err != nil {
				return err
			}
		}
		var callErr error
		result, callErr = an.agent.Analyze(ctx, task)
		if callErr == nil && !result.Success {
			callErr = errors.New(result.Error)
			if result.Error == "" {
				callErr = errors.New("analysis failed")
			}
		}
		return callErr
	})
	outcome.Cost = result.Cost
	if err != nil {
		lgr.Printf("[WARN] analysis of article %s failed: %v", article.ID, err)
		outcome.Error = err.Error()
		return outcome
	}

	if result.Output == nil || result.Output.Analysis == nil {
		lgr.Printf("[WARN] analysis of article %s has no payload", article.ID)
		outcome.Error = "malformed analysis payload"
		return outcome
	}
	if err := an.store.UpdateArticleAnalysis(ctx, article.ID, result.Output.Analysis); err != nil {
		lgr.Printf("[WARN] can't save analysis of article %s: %v", article.ID, err)
		outcome.Error = fmt.Sprintf("persistence: %v", err)
		return outcome
	}
	outcome.Success = true
	return outcome
}
