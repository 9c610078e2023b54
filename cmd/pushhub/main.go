package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/pushhub/pkg/config"
	"github.com/umputun/pushhub/pkg/llm"
	"github.com/umputun/pushhub/pkg/pipeline"
	"github.com/umputun/pushhub/pkg/repository"
	"github.com/umputun/pushhub/pkg/source"
	"github.com/umputun/pushhub/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"pushhub.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides server.listen"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting pushhub version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if cfg.LLM.APIKey != "" {
		setupLog(opts.Debug, opts.NoColor, cfg.LLM.APIKey)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	srcOpts := source.Options{
		Client:        &http.Client{Timeout: cfg.Ingest.Timeout},
		UserAgent:     cfg.Ingest.UserAgent,
		MinTextLength: cfg.Extraction.MinTextLength,
	}
	if cfg.Extraction.Enabled {
		srcOpts.Extractor = source.NewPageExtractor(cfg.Extraction.Timeout, cfg.Ingest.UserAgent)
	}
	sources, err := source.NewRegistry(cfg.GetSources(), srcOpts)
	if err != nil {
		return fmt.Errorf("failed to build sources: %w", err)
	}
	log.Printf("[INFO] configured sources: %v", sources.Names())

	ingestor := pipeline.NewIngestor(pipeline.IngestorConfig{
		Articles:    repos.Article,
		Jobs:        repos.Job,
		Keywords:    repos.Setting,
		Sources:     sources,
		DedupWindow: cfg.Ingest.DedupWindow,
		MaxErrors:   cfg.Ingest.MaxErrors,
	})

	analyzer := pipeline.NewAnalyzer(pipeline.AnalyzerConfig{
		Store:        repos.Article,
		Agent:        llm.NewAgent(cfg.GetLLMConfig()),
		Interval:     cfg.Analysis.Interval,
		DefaultLimit: cfg.Analysis.DefaultLimit,
		MaxLimit:     cfg.Analysis.MaxLimit,
		RunsPerMonth: cfg.Analysis.RunsPerMonth,
		RetryFunc:    pipeline.NewRetryFunc(cfg.Analysis.Retry.Attempts, cfg.Analysis.Retry.Delay),
	})

	if cfg.Schedule.Enabled {
		sched := pipeline.NewScheduler(pipeline.SchedulerConfig{
			Ingestor:     ingestor,
			Analyzer:     analyzer,
			Features:     scheduledFeatures(cfg.Schedule.Features),
			Interval:     cfg.Schedule.Interval,
			MaxWorkers:   cfg.Schedule.MaxWorkers,
			AnalyzeLimit: cfg.Analysis.DefaultLimit,
		})
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), ingestor, analyzer, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func scheduledFeatures(in []config.ScheduledFeature) []pipeline.Feature {
	res := make([]pipeline.Feature, 0, len(in))
	for _, f := range in {
		res = append(res, pipeline.Feature{ID: f.ID, UserID: f.UserID, Keywords: f.Keywords})
	}
	return res
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

