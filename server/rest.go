package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/rest"

	"github.com/umputun/pushhub/pkg/domain"
	"github.com/umputun/pushhub/pkg/pipeline"
	"github.com/umputun/pushhub/pkg/repository"
)

const defaultListLimit = 50

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	JobID   string `json:"jobId,omitempty"`
}

type ingestRequest struct {
	FeatureID string   `json:"featureId"`
	UserID    string   `json:"userId"`
	Sources   []string `json:"sources,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
}

type ingestResponse struct {
	Success              bool     `json:"success"`
	JobID                string   `json:"jobId"`
	ArticlesFound        int      `json:"articlesFound"`
	ArticlesSaved        int      `json:"articlesSaved"`
	ExecutionTimeSeconds float64  `json:"executionTimeSeconds"`
	Errors               []string `json:"errors,omitempty"`
	Warnings             []string `json:"warnings,omitempty"`
}

type analyzeRequest struct {
	FeatureID      string `json:"featureId"`
	Limit          int    `json:"limit,omitempty"`
	ForceReanalyze bool   `json:"forceReanalyze,omitempty"`
}

type analyzeResponse struct {
	Success              bool          `json:"success"`
	Analyzed             int           `json:"analyzed"`
	Total                int           `json:"total"`
	Failed               int           `json:"failed"`
	TotalCost            float64       `json:"totalCost"`
	EstimatedMonthlyCost float64       `json:"estimatedMonthlyCost"`
	Results              []outcomeView `json:"results"`
	Message              string        `json:"message,omitempty"`
}

type outcomeView struct {
	ArticleID string       `json:"articleId"`
	Title     string       `json:"title"`
	Success   bool         `json:"success"`
	Error     string       `json:"error,omitempty"`
	Cost      *domain.Cost `json:"cost,omitempty"`
}

type jobView struct {
	ID                   string     `json:"id"`
	FeatureID            string     `json:"featureId"`
	UserID               string     `json:"userId"`
	Source               string     `json:"source"`
	Status               string     `json:"status"`
	StartedAt            time.Time  `json:"startedAt"`
	FinishedAt           *time.Time `json:"finishedAt,omitempty"`
	ArticlesFound        int        `json:"articlesFound"`
	ArticlesSaved        int        `json:"articlesSaved"`
	ExecutionTimeSeconds float64    `json:"executionTimeSeconds"`
	ErrorMessage         string     `json:"errorMessage,omitempty"`
	Errors               []string   `json:"errors,omitempty"`
	Warnings             []string   `json:"warnings,omitempty"`
}

type articleView struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Link            string           `json:"link"`
	Source          string           `json:"source"`
	Category        string           `json:"category"`
	PublishedAt     *time.Time       `json:"publishedAt,omitempty"`
	ScrapedAt       time.Time        `json:"scrapedAt"`
	Summary         string           `json:"summary,omitempty"`
	OneLiner        string           `json:"oneLiner,omitempty"`
	Keywords        []string         `json:"keywords,omitempty"`
	Sentiment       string           `json:"sentiment,omitempty"`
	ImportanceScore *float64         `json:"importanceScore,omitempty"`
	RefinedCategory string           `json:"refinedCategory,omitempty"`
	Entities        *domain.Entities `json:"entities,omitempty"`
	AnalyzedAt      *time.Time       `json:"analyzedAt,omitempty"`
}

type keywordsBody struct {
	FeatureID string   `json:"featureId,omitempty"`
	Keywords  []string `json:"keywords"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	})
}

// ingestHandler runs one ingestion synchronously and reports the job
func (s *Server) ingestHandler(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	res, err := s.ingester.Run(r.Context(), pipeline.IngestRequest{
		FeatureID: req.FeatureID,
		UserID:    req.UserID,
		Sources:   req.Sources,
		Keywords:  req.Keywords,
	})
	if err != nil {
		var ve *pipeline.ValidationError
		if errors.As(err, &ve) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[WARN] ingestion for feature %s failed: %v", req.FeatureID, err)
		resp := errorResponse{Error: err.Error()}
		if res != nil {
			resp.JobID = res.JobID
		}
		renderJSON(w, r, http.StatusInternalServerError, resp)
		return
	}

	renderJSON(w, r, http.StatusOK, ingestResponse{
		Success:              true,
		JobID:                res.JobID,
		ArticlesFound:        res.ArticlesFound,
		ArticlesSaved:        res.ArticlesSaved,
		ExecutionTimeSeconds: res.ExecutionTimeSeconds,
		Errors:               res.Errors,
		Warnings:             res.Warnings,
	})
}

// analyzeHandler runs one analysis batch synchronously
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := rest.DecodeJSON(r, &req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	res, err := s.analyzer.BatchAnalyze(r.Context(), pipeline.AnalyzeRequest{
		FeatureID:      req.FeatureID,
		Limit:          req.Limit,
		ForceReanalyze: req.ForceReanalyze,
	})
	if err != nil {
		var ve *pipeline.ValidationError
		if errors.As(err, &ve) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[WARN] analysis for feature %s failed: %v", req.FeatureID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	results := make([]outcomeView, 0, len(res.Results))
	for _, o := range res.Results {
		results = append(results, outcomeView{
			ArticleID: o.ArticleID,
			Title:     o.Title,
			Success:   o.Success,
			Error:     o.Error,
			Cost:      o.Cost,
		})
	}
	renderJSON(w, r, http.StatusOK, analyzeResponse{
		Success:              true,
		Analyzed:             res.Analyzed,
		Total:                res.Total,
		Failed:               res.Failed,
		TotalCost:            res.TotalCost,
		EstimatedMonthlyCost: res.EstimatedMonthlyCost,
		Results:              results,
		Message:              res.Message,
	})
}

// jobHandler returns one job record
func (s *Server) jobHandler(w http.ResponseWriter, r *http.Request) {
	job, err := s.db.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get job: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toJobView(job))
}

// featureJobsHandler lists recent jobs of a feature, newest first
func (s *Server) featureJobsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultListLimit)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	jobs, err := s.db.ListJobs(r.Context(), r.PathValue("feature"), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list jobs: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	views := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, toJobView(j))
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"jobs": views})
}

// articlesHandler lists stored articles of a feature with the feature counters
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	featureID := r.PathValue("feature")
	filter := domain.ArticleFilter{FeatureID: featureID}

	var err error
	if filter.Limit, err = intParam(r, "limit", defaultListLimit); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if v := r.URL.Query().Get("analyzed"); v != "" {
		if filter.OnlyAnalyzed, err = strconv.ParseBool(v); err != nil {
			renderError(w, r, fmt.Errorf("invalid analyzed value %q", v), http.StatusBadRequest)
			return
		}
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		if filter.MinScore, err = strconv.ParseFloat(v, 64); err != nil {
			renderError(w, r, fmt.Errorf("invalid min_score value %q", v), http.StatusBadRequest)
			return
		}
		filter.OnlyAnalyzed = true
	}

	articles, err := s.db.ListArticles(r.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	total, analyzed, err := s.db.CountArticles(r.Context(), featureID)
	if err != nil {
		log.Printf("[ERROR] failed to count articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	views := make([]articleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, toArticleView(a))
	}
	renderJSON(w, r, http.StatusOK, map[string]any{
		"articles": views,
		"total":    total,
		"analyzed": analyzed,
	})
}

// getKeywordsHandler returns the default keywords of a feature
func (s *Server) getKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	featureID := r.PathValue("feature")
	keywords, err := s.db.GetFeatureKeywords(r.Context(), featureID)
	if err != nil {
		log.Printf("[ERROR] failed to get keywords: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if keywords == nil {
		keywords = []string{}
	}
	renderJSON(w, r, http.StatusOK, keywordsBody{FeatureID: featureID, Keywords: keywords})
}

// setKeywordsHandler replaces the default keywords of a feature
func (s *Server) setKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	featureID := r.PathValue("feature")
	var body keywordsBody
	if err := rest.DecodeJSON(r, &body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	keywords := pipeline.NormalizeKeywords(body.Keywords)
	if err := s.db.SetFeatureKeywords(r.Context(), featureID, keywords); err != nil {
		log.Printf("[ERROR] failed to set keywords: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, keywordsBody{FeatureID: featureID, Keywords: keywords})
}

func intParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s value %q", name, v)
	}
	return n, nil
}

func toJobView(j *domain.ScrapingJob) jobView {
	return jobView{
		ID:                   j.ID,
		FeatureID:            j.FeatureID,
		UserID:               j.UserID,
		Source:               j.Source,
		Status:               string(j.Status),
		StartedAt:            j.StartedAt,
		FinishedAt:           j.FinishedAt,
		ArticlesFound:        j.ArticlesFound,
		ArticlesSaved:        j.ArticlesSaved,
		ExecutionTimeSeconds: j.ExecutionTimeSeconds,
		ErrorMessage:         j.ErrorMessage,
		Errors:               j.Errors,
		Warnings:             j.Warnings,
	}
}

func toArticleView(a *domain.Article) articleView {
	res := articleView{
		ID:              a.ID,
		Title:           a.Title,
		Link:            a.Link,
		Source:          string(a.Source),
		Category:        a.Category,
		ScrapedAt:       a.ScrapedAt,
		Summary:         a.Summary,
		OneLiner:        a.OneLiner,
		Keywords:        a.Keywords,
		Sentiment:       string(a.Sentiment),
		ImportanceScore: a.ImportanceScore,
		RefinedCategory: a.RefinedCategory,
		AnalyzedAt:      a.AnalyzedAt,
	}
	if !a.PublishedAt.IsZero() {
		published := a.PublishedAt
		res.PublishedAt = &published
	}
	if a.Analyzed() {
		entities := a.Entities
		res.Entities = &entities
	}
	return res
}
