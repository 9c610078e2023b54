package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/pushhub/pkg/domain"
	"github.com/umputun/pushhub/pkg/repository"
	"github.com/umputun/pushhub/pkg/source"
)

const defaultMaxErrors = 10

// IngestorConfig holds dependencies and settings of Ingestor
type IngestorConfig struct {
	Articles    ArticleStore
	Jobs        JobStore
	Keywords    KeywordStore // optional, defaults for requests without keywords
	Sources     Sources
	DedupWindow int // recent articles scanned in addition to the indexed hash lookup, 0 disables
	MaxErrors   int // save errors reported per run
}

// Ingestor runs ingestion for features, one run per feature at a time
type Ingestor struct {
	articles    ArticleStore
	jobs        JobStore
	keywords    KeywordStore
	sources     Sources
	dedupWindow int
	maxErrors   int
	locks       *keyLock
}

// IngestRequest describes one ingestion run. Empty Sources means all configured sources.
type IngestRequest struct {
	FeatureID string
	UserID    string
	Sources   []string
	Keywords  []string
}

// IngestResult reports an ingestion run. JobID is set whenever the job record was created.
type IngestResult struct {
	JobID                string
	ArticlesFound        int
	ArticlesSaved        int
	ExecutionTimeSeconds float64
	Errors               []string
	Warnings             []string
}

// batch is what one fetch returned, scoped batches came from a keyword search
type batch struct {
	articles []domain.Article
	scoped   bool
}

// NewIngestor makes an ingestor
func NewIngestor(cfg IngestorConfig) *Ingestor {
	if cfg.MaxErrors <= 0 {
		cfg.MaxErrors = defaultMaxErrors
	}
	return &Ingestor{
		articles:    cfg.Articles,
		jobs:        cfg.Jobs,
		keywords:    cfg.Keywords,
		sources:     cfg.Sources,
		dedupWindow: cfg.DedupWindow,
		maxErrors:   cfg.MaxErrors,
		locks:       newKeyLock(),
	}
}

// Run fetches, deduplicates, filters and saves articles of a feature, recording the job.
// On failure the job is finalized as failed and the result with JobID is returned along with the error.
func (in *Ingestor) Run(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	if req.FeatureID == "" {
		return nil, newValidation("featureId is required")
	}
	if req.UserID == "" {
		return nil, newValidation("userId is required")
	}
	sources, err := in.selectSources(req.Sources)
	if err != nil {
		return nil, err
	}

	keywords := NormalizeKeywords(req.Keywords)
	if len(keywords) == 0 && in.keywords != nil {
		stored, kwErr := in.keywords.GetFeatureKeywords(ctx, req.FeatureID)
		if kwErr != nil {
			lgr.Printf("[WARN] can't load keywords of feature %s: %v", req.FeatureID, kwErr)
		}
		keywords = NormalizeKeywords(stored)
	}

	release, err := in.locks.acquire(ctx, req.FeatureID)
	if err != nil {
		return nil, fmt.Errorf("wait for running ingestion of %s: %w", req.FeatureID, err)
	}
	defer release()

	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.Name()
	}
	job := &domain.ScrapingJob{FeatureID: req.FeatureID, UserID: req.UserID, Source: strings.Join(names, ",")}
	if err := in.jobs.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	start := time.Now()
	res := &IngestResult{JobID: job.ID}
	if err := in.ingest(ctx, req.FeatureID, sources, keywords, res); err != nil {
		res.ExecutionTimeSeconds = time.Since(start).Seconds()
		lgr.Printf("[WARN] ingestion of feature %s failed: %v", req.FeatureID, err)
		in.finishJob(ctx, job.ID, domain.JobOutcome{
			Status:               domain.JobFailed,
			ArticlesFound:        res.ArticlesFound,
			ArticlesSaved:        res.ArticlesSaved,
			ExecutionTimeSeconds: res.ExecutionTimeSeconds,
			ErrorMessage:         err.Error(),
			Errors:               res.Errors,
			Warnings:             res.Warnings,
		})
		return res, err
	}

	res.ExecutionTimeSeconds = time.Since(start).Seconds()
	in.finishJob(ctx, job.ID, domain.JobOutcome{
		Status:               domain.JobSuccess,
		ArticlesFound:        res.ArticlesFound,
		ArticlesSaved:        res.ArticlesSaved,
		ExecutionTimeSeconds: res.ExecutionTimeSeconds,
		Errors:               res.Errors,
		Warnings:             res.Warnings,
	})
	lgr.Printf("[INFO] feature %s ingested, found %d, saved %d in %.2fs",
		req.FeatureID, res.ArticlesFound, res.ArticlesSaved, res.ExecutionTimeSeconds)
	return res, nil
}

// ingest does the work between job open and close, filling res as it goes
func (in *Ingestor) ingest(ctx context.Context, featureID string, sources []source.Source, keywords []string, res *IngestResult) error {
	batches, err := in.fetch(ctx, sources, keywords)
	if err != nil {
		return err
	}

	hashes := []string{}
	for _, b := range batches {
		res.ArticlesFound += len(b.articles)
		for _, a := range b.articles {
			hashes = append(hashes, a.ContentHash)
		}
	}
	if res.ArticlesFound == 0 {
		return nil
	}

	existing, err := in.existingHashes(ctx, featureID, hashes)
	if err != nil {
		return err
	}

	var toSave []domain.Article
	unscopedIn, unscopedOut := 0, 0
	for _, b := range batches {
		fresh := Deduplicate(b.articles, existing)
		for _, a := range fresh {
			if a.ContentHash != "" {
				existing[a.ContentHash] = struct{}{}
			}
		}
		if !b.scoped && len(keywords) > 0 {
			unscopedIn += len(fresh)
			fresh = FilterByKeywords(fresh, keywords)
			unscopedOut += len(fresh)
		}
		toSave = append(toSave, fresh...)
	}
	if unscopedIn > 0 && unscopedOut == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("no articles matched keywords: %s", strings.Join(keywords, ", ")))
	}

	failed := 0
	for i := range toSave {
		if err := ctx.Err(); err != nil {
			return err
		}
		article := toSave[i]
		article.FeatureID = featureID
		err := in.articles.CreateArticle(ctx, &article)
		switch {
		case err == nil:
			res.ArticlesSaved++
		case errors.Is(err, repository.ErrDuplicate):
			lgr.Printf("[DEBUG] skip duplicate %q of feature %s", article.Title, featureID)
		default:
			failed++
			if len(res.Errors) < in.maxErrors {
				res.Errors = append(res.Errors, fmt.Sprintf("save %q: %v", article.Title, err))
			}
		}
	}
	if failed > 0 {
		lgr.Printf("[WARN] feature %s: %d articles not saved", featureID, failed)
	}
	return nil
}

// fetch pulls all batches. Sources supporting search are queried per keyword when keywords are set.
func (in *Ingestor) fetch(ctx context.Context, sources []source.Source, keywords []string) ([]batch, error) {
	var res []batch
	for _, src := range sources {
		if len(keywords) > 0 && src.SupportsSearch() {
			for _, k := range keywords {
				articles, err := src.Fetch(ctx, source.Query{Keyword: k})
				if err != nil {
					return nil, fmt.Errorf("search %s for %q: %w", src.Name(), k, err)
				}
				res = append(res, batch{articles: articles, scoped: true})
			}
			continue
		}
		for _, category := range src.Categories() {
			articles, err := src.Fetch(ctx, source.Query{Category: category})
			if err != nil {
				return nil, fmt.Errorf("fetch %s/%s: %w", src.Name(), category, err)
			}
			res = append(res, batch{articles: articles})
		}
	}
	return res, nil
}

// existingHashes returns stored hashes of the feature among the given ones, plus the recent window
func (in *Ingestor) existingHashes(ctx context.Context, featureID string, hashes []string) (map[string]struct{}, error) {
	existing, err := in.articles.HashesExist(ctx, featureID, hashes)
	if err != nil {
		return nil, fmt.Errorf("lookup existing hashes: %w", err)
	}
	if existing == nil {
		existing = map[string]struct{}{}
	}
	if in.dedupWindow > 0 {
		recent, err := in.articles.GetRecentHashes(ctx, featureID, in.dedupWindow)
		if err != nil {
			return nil, fmt.Errorf("get recent hashes: %w", err)
		}
		for h := range recent {
			existing[h] = struct{}{}
		}
	}
	return existing, nil
}

func (in *Ingestor) selectSources(names []string) ([]source.Source, error) {
	if len(names) == 0 {
		names = in.sources.Names()
	}
	if len(names) == 0 {
		return nil, newValidation("no sources configured")
	}
	res := make([]source.Source, 0, len(names))
	seen := map[string]bool{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			continue
		}
		seen[name] = true
		src, ok := in.sources.Get(name)
		if !ok {
			return nil, newValidation(fmt.Sprintf("unknown source %q", name))
		}
		res = append(res, src)
	}
	return res, nil
}

// finishJob writes the terminal job state. Failures are logged only, the run result stands.
func (in *Ingestor) finishJob(ctx context.Context, id string, outcome domain.JobOutcome) {
	if err := in.jobs.FinishJob(context.WithoutCancel(ctx), id, outcome); err != nil {
		lgr.Printf("[WARN] can't finish job %s: %v", id, err)
	}
}
