package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
)

// Feature is one feature processed by the scheduler
type Feature struct {
	ID       string
	UserID   string
	Keywords []string
}

// SchedulerConfig holds scheduler settings
type SchedulerConfig struct {
	Ingestor     IngestRunner
	Analyzer     BatchRunner
	Features     []Feature
	Interval     time.Duration
	MaxWorkers   int
	AnalyzeLimit int
}

// Scheduler periodically runs ingestion followed by analysis for each configured feature.
// Different features run concurrently up to MaxWorkers.
type Scheduler struct {
	ingestor     IngestRunner
	analyzer     BatchRunner
	features     []Feature
	interval     time.Duration
	maxWorkers   int
	analyzeLimit int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler makes a scheduler, interval defaults to 30 minutes
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Minute
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 2
	}
	return &Scheduler{
		ingestor:     cfg.Ingestor,
		analyzer:     cfg.Analyzer,
		features:     cfg.Features,
		interval:     cfg.Interval,
		maxWorkers:   cfg.MaxWorkers,
		analyzeLimit: cfg.AnalyzeLimit,
	}
}

// Start runs all features right away and then every interval, until Stop or ctx is done
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.RunOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
	lgr.Printf("[INFO] scheduler started for %d features, interval %v", len(s.features), s.interval)
}

// Stop cancels scheduled runs and waits for the active one
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RunOnce processes every feature once. Failures are logged and don't affect other features.
func (s *Scheduler) RunOnce(ctx context.Context) {
	g := errgroup.Group{}
	g.SetLimit(s.maxWorkers)
	for _, f := range s.features {
		g.Go(func() error {
			s.runFeature(ctx, f)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Scheduler) runFeature(ctx context.Context, f Feature) {
	if ctx.Err() != nil {
		return
	}
	ingested, err := s.ingestor.Run(ctx, IngestRequest{FeatureID: f.ID, UserID: f.UserID, Keywords: f.Keywords})
	if err != nil {
		lgr.Printf("[WARN] scheduled ingestion of %s failed: %v", f.ID, err)
	} else {
		lgr.Printf("[DEBUG] scheduled ingestion of %s saved %d of %d", f.ID, ingested.ArticlesSaved, ingested.ArticlesFound)
	}

	if ctx.Err() != nil {
		return
	}
	analyzed, err := s.analyzer.BatchAnalyze(ctx, AnalyzeRequest{FeatureID: f.ID, Limit: s.analyzeLimit})
	if err != nil {
		lgr.Printf("[WARN] scheduled analysis of %s failed: %v", f.ID, err)
		return
	}
	lgr.Printf("[DEBUG] scheduled analysis of %s: %d of %d, cost %.4f", f.ID, analyzed.Analyzed, analyzed.Total, analyzed.TotalCost)
}
