package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/pushhub/pkg/domain"
	"github.com/umputun/pushhub/pkg/pipeline"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer

// Server is the HTTP front of the ingestion and analysis pipeline
type Server struct {
	config   ConfigProvider
	db       Database
	ingester Ingester
	analyzer Analyzer
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// Database is the read side of the store used by the query endpoints
type Database interface {
	GetJob(ctx context.Context, id string) (*domain.ScrapingJob, error)
	ListJobs(ctx context.Context, featureID string, limit int) ([]*domain.ScrapingJob, error)
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)
	CountArticles(ctx context.Context, featureID string) (total, analyzed int, err error)
	GetFeatureKeywords(ctx context.Context, featureID string) ([]string, error)
	SetFeatureKeywords(ctx context.Context, featureID string, keywords []string) error
}

// Ingester runs one ingestion for a feature
type Ingester interface {
	Run(ctx context.Context, req pipeline.IngestRequest) (*pipeline.IngestResult, error)
}

// Analyzer runs one analysis batch for a feature
type Analyzer interface {
	BatchAnalyze(ctx context.Context, req pipeline.AnalyzeRequest) (*pipeline.BatchResult, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, ingester Ingester, analyzer Analyzer, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		db:       db,
		ingester: ingester,
		analyzer: analyzer,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and shuts it down when ctx is done
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		// ingestion and analysis runs can outlive a regular request
		WriteTimeout: 10 * timeout,
	}
	srv := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pushhub", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024))
}

func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /ingest", s.ingestHandler)
		r.HandleFunc("POST /analyze", s.analyzeHandler)
		r.HandleFunc("GET /jobs/{id}", s.jobHandler)
		r.HandleFunc("GET /features/{feature}/jobs", s.featureJobsHandler)
		r.HandleFunc("GET /features/{feature}/articles", s.articlesHandler)
		r.HandleFunc("GET /features/{feature}/keywords", s.getKeywordsHandler)
		r.HandleFunc("PUT /features/{feature}/keywords", s.setKeywordsHandler)
	})

	s.router.HandleFunc("GET /rss/{feature}", s.rssHandler)
}

func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends the {success:false,error} envelope shared by all api endpoints
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	renderJSON(w, r, code, errorResponse{Error: msg})
}
