package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pushhub/pkg/domain"
	"github.com/umputun/pushhub/pkg/pipeline"
	pipemocks "github.com/umputun/pushhub/pkg/pipeline/mocks"
	"github.com/umputun/pushhub/pkg/repository"
	"github.com/umputun/pushhub/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
		GetBaseURLFunc:      func() string { return "https://hub.example.com" },
	}
}

func testServer(t *testing.T, db Database, ing Ingester, an Analyzer) *Server {
	t.Helper()
	if db == nil {
		db = &mocks.DatabaseMock{}
	}
	if ing == nil {
		ing = &mocks.IngesterMock{}
	}
	if an == nil {
		an = &mocks.AnalyzerMock{}
	}
	return New(testConfig(), db, ing, an, "1.2.3", false)
}

func serve(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestServer_statusHandler(t *testing.T) {
	srv := testServer(t, nil, nil, nil)

	w := serve(t, srv, "GET", "/api/v1/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	status := decode(t, w)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.NotEmpty(t, status["time"])
}

func TestServer_ingestHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ing := &mocks.IngesterMock{
			RunFunc: func(ctx context.Context, req pipeline.IngestRequest) (*pipeline.IngestResult, error) {
				return &pipeline.IngestResult{
					JobID: "job-1", ArticlesFound: 12, ArticlesSaved: 5, ExecutionTimeSeconds: 1.5,
					Warnings: []string{"no articles matched keywords: x"},
				}, nil
			},
		}
		srv := testServer(t, nil, ing, nil)

		w := serve(t, srv, "POST", "/api/v1/ingest",
			`{"featureId":"f1","userId":"u1","sources":["lenta"],"keywords":["rocket"]}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Len(t, ing.RunCalls(), 1)
		assert.Equal(t, pipeline.IngestRequest{FeatureID: "f1", UserID: "u1",
			Sources: []string{"lenta"}, Keywords: []string{"rocket"}}, ing.RunCalls()[0].Req)

		res := decode(t, w)
		assert.Equal(t, true, res["success"])
		assert.Equal(t, "job-1", res["jobId"])
		assert.InDelta(t, 12, res["articlesFound"], 0)
		assert.InDelta(t, 5, res["articlesSaved"], 0)
		assert.InDelta(t, 1.5, res["executionTimeSeconds"], 0.0001)
		assert.Equal(t, []any{"no articles matched keywords: x"}, res["warnings"])
		assert.NotContains(t, res, "errors")
	})

	t.Run("validation error", func(t *testing.T) {
		ing := &mocks.IngesterMock{
			RunFunc: func(ctx context.Context, req pipeline.IngestRequest) (*pipeline.IngestResult, error) {
				return nil, &pipeline.ValidationError{Message: "featureId is required"}
			},
		}
		srv := testServer(t, nil, ing, nil)

		w := serve(t, srv, "POST", "/api/v1/ingest", `{"userId":"u1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode(t, w)
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "featureId is required", res["error"])
	})

	t.Run("run failure carries job id", func(t *testing.T) {
		ing := &mocks.IngesterMock{
			RunFunc: func(ctx context.Context, req pipeline.IngestRequest) (*pipeline.IngestResult, error) {
				return &pipeline.IngestResult{JobID: "job-9"}, errors.New("fetch lenta: timeout")
			},
		}
		srv := testServer(t, nil, ing, nil)

		w := serve(t, srv, "POST", "/api/v1/ingest", `{"featureId":"f1","userId":"u1"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		res := decode(t, w)
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "fetch lenta: timeout", res["error"])
		assert.Equal(t, "job-9", res["jobId"])
	})

	t.Run("failure before job created", func(t *testing.T) {
		ing := &mocks.IngesterMock{
			RunFunc: func(ctx context.Context, req pipeline.IngestRequest) (*pipeline.IngestResult, error) {
				return nil, errors.New("create job: db closed")
			},
		}
		srv := testServer(t, nil, ing, nil)

		w := serve(t, srv, "POST", "/api/v1/ingest", `{"featureId":"f1","userId":"u1"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		res := decode(t, w)
		assert.NotContains(t, res, "jobId")
	})

	t.Run("bad body", func(t *testing.T) {
		ing := &mocks.IngesterMock{}
		srv := testServer(t, nil, ing, nil)

		w := serve(t, srv, "POST", "/api/v1/ingest", `{"featureId":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, ing.RunCalls())
	})
}

func TestServer_analyzeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		an := &mocks.AnalyzerMock{
			BatchAnalyzeFunc: func(ctx context.Context, req pipeline.AnalyzeRequest) (*pipeline.BatchResult, error) {
				return &pipeline.BatchResult{
					Analyzed: 1, Total: 2, Failed: 1, TotalCost: 0.01, EstimatedMonthlyCost: 14.4,
					Results: []domain.ArticleOutcome{
						{ArticleID: "a1", Title: "one", Success: true, Cost: &domain.Cost{Price: 0.01, PromptTokens: 10}},
						{ArticleID: "a2", Title: "two", Error: "upstream: 502"},
					},
				}, nil
			},
		}
		srv := testServer(t, nil, nil, an)

		w := serve(t, srv, "POST", "/api/v1/analyze", `{"featureId":"f1","limit":2,"forceReanalyze":true}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Len(t, an.BatchAnalyzeCalls(), 1)
		assert.Equal(t, pipeline.AnalyzeRequest{FeatureID: "f1", Limit: 2, ForceReanalyze: true},
			an.BatchAnalyzeCalls()[0].Req)

		res := decode(t, w)
		assert.Equal(t, true, res["success"])
		assert.InDelta(t, 1, res["analyzed"], 0)
		assert.InDelta(t, 2, res["total"], 0)
		assert.InDelta(t, 1, res["failed"], 0)
		assert.InDelta(t, 0.01, res["totalCost"], 1e-9)
		assert.InDelta(t, 14.4, res["estimatedMonthlyCost"], 1e-9)
		assert.NotContains(t, res, "message")

		results, ok := res["results"].([]any)
		require.True(t, ok)
		require.Len(t, results, 2)
		first := results[0].(map[string]any)
		assert.Equal(t, "a1", first["articleId"])
		assert.Equal(t, true, first["success"])
		assert.NotContains(t, first, "error")
		assert.Contains(t, first, "cost")
		second := results[1].(map[string]any)
		assert.Equal(t, false, second["success"])
		assert.Equal(t, "upstream: 502", second["error"])
		assert.NotContains(t, second, "cost")
	})

	t.Run("nothing to analyze", func(t *testing.T) {
		an := &mocks.AnalyzerMock{
			BatchAnalyzeFunc: func(ctx context.Context, req pipeline.AnalyzeRequest) (*pipeline.BatchResult, error) {
				return &pipeline.BatchResult{Message: "no articles need analysis"}, nil
			},
		}
		srv := testServer(t, nil, nil, an)

		w := serve(t, srv, "POST", "/api/v1/analyze", `{"featureId":"f1"}`)
		require.Equal(t, http.StatusOK, w.Code)
		res := decode(t, w)
		assert.Equal(t, "no articles need analysis", res["message"])
		assert.Equal(t, []any{}, res["results"])
	})

	t.Run("validation error", func(t *testing.T) {
		an := &mocks.AnalyzerMock{
			BatchAnalyzeFunc: func(ctx context.Context, req pipeline.AnalyzeRequest) (*pipeline.BatchResult, error) {
				return nil, fmt.Errorf("analyze: %w", &pipeline.ValidationError{Message: "featureId is required"})
			},
		}
		srv := testServer(t, nil, nil, an)

		w := serve(t, srv, "POST", "/api/v1/analyze", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, decode(t, w)["success"])
	})

	t.Run("limit above maximum", func(t *testing.T) {
		store := &pipemocks.ArticleStoreMock{}
		agent := &pipemocks.AgentMock{}
		an := pipeline.NewAnalyzer(pipeline.AnalyzerConfig{Store: store, Agent: agent, MaxLimit: 50})
		srv := testServer(t, nil, nil, an)

		w := serve(t, srv, "POST", "/api/v1/analyze", `{"featureId":"f1","limit":4611686018427387904}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode(t, w)
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "limit must not exceed 50", res["error"])
		assert.Empty(t, store.GetRecentArticlesCalls())
		assert.Empty(t, agent.AnalyzeCalls())
	})

	t.Run("store failure", func(t *testing.T) {
		an := &mocks.AnalyzerMock{
			BatchAnalyzeFunc: func(ctx context.Context, req pipeline.AnalyzeRequest) (*pipeline.BatchResult, error) {
				return nil, errors.New("load articles: disk I/O error")
			},
		}
		srv := testServer(t, nil, nil, an)

		w := serve(t, srv, "POST", "/api/v1/analyze", `{"featureId":"f1"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		res := decode(t, w)
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "load articles: disk I/O error", res["error"])
	})
}

func TestServer_jobHandlers(t *testing.T) {
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	finished := started.Add(3 * time.Second)
	job := &domain.ScrapingJob{ID: "job-1", FeatureID: "f1", UserID: "u1", Source: "lenta,rbc",
		Status: domain.JobSuccess, StartedAt: started, FinishedAt: &finished, ArticlesFound: 4, ArticlesSaved: 2,
		ExecutionTimeSeconds: 3, Warnings: []string{"w1"}}

	db := &mocks.DatabaseMock{
		GetJobFunc: func(ctx context.Context, id string) (*domain.ScrapingJob, error) {
			if id == "job-1" {
				return job, nil
			}
			if id == "broken" {
				return nil, errors.New("db closed")
			}
			return nil, fmt.Errorf("get job %s: %w", id, repository.ErrNotFound)
		},
		ListJobsFunc: func(ctx context.Context, featureID string, limit int) ([]*domain.ScrapingJob, error) {
			return []*domain.ScrapingJob{job}, nil
		},
	}
	srv := testServer(t, db, nil, nil)

	t.Run("get job", func(t *testing.T) {
		w := serve(t, srv, "GET", "/api/v1/jobs/job-1", "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode(t, w)
		assert.Equal(t, "job-1", res["id"])
		assert.Equal(t, "success", res["status"])
		assert.Equal(t, "lenta,rbc", res["source"])
		assert.Equal(t, "2024-05-01T10:00:03Z", res["finishedAt"])
		assert.Equal(t, []any{"w1"}, res["warnings"])
	})

	t.Run("job not found", func(t *testing.T) {
		w := serve(t, srv, "GET", "/api/v1/jobs/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("job store error", func(t *testing.T) {
		w := serve(t, srv, "GET", "/api/v1/jobs/broken", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("list feature jobs", func(t *testing.T) {
		w := serve(t, srv, "GET", "/api/v1/features/f1/jobs?limit=5", "")
		require.Equal(t, http.StatusOK, w.Code)
		calls := db.ListJobsCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "f1", calls[0].FeatureID)
		assert.Equal(t, 5, calls[0].Limit)
		jobs := decode(t, w)["jobs"].([]any)
		assert.Len(t, jobs, 1)
	})

	t.Run("bad limit", func(t *testing.T) {
		w := serve(t, srv, "GET", "/api/v1/features/f1/jobs?limit=abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_articlesHandler(t *testing.T) {
	score := 7.5
	analyzedAt := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
	db := &mocks.DatabaseMock{
		ListArticlesFunc: func(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
			return []*domain.Article{
				{ID: "a1", Title: "one", Link: "https://n.example.com/1", Source: "lenta", Category: "tech",
					ImportanceScore: &score, AnalyzedAt: &analyzedAt, Summary: "s",
					Entities: domain.Entities{People: []string{"Ann"}}},
				{ID: "a2", Title: "two", Link: "https://n.example.com/2", Source: "rbc", Category: "tech"},
			}, nil
		},
		CountArticlesFunc: func(ctx context.Context, featureID string) (int, int, error) {
			return 10, 4, nil
		},
	}
	srv := testServer(t, db, nil, nil)

	w := serve(t, srv, "GET", "/api/v1/features/f1/articles?limit=20&analyzed=true&min_score=5", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, db.ListArticlesCalls(), 1)
	assert.Equal(t, domain.ArticleFilter{FeatureID: "f1", Limit: 20, OnlyAnalyzed: true, MinScore: 5},
		db.ListArticlesCalls()[0].Filter)

	res := decode(t, w)
	assert.InDelta(t, 10, res["total"], 0)
	assert.InDelta(t, 4, res["analyzed"], 0)
	articles := res["articles"].([]any)
	require.Len(t, articles, 2)
	first := articles[0].(map[string]any)
	assert.InDelta(t, 7.5, first["importanceScore"], 0)
	assert.Contains(t, first, "entities")
	second := articles[1].(map[string]any)
	assert.NotContains(t, second, "importanceScore")
	assert.NotContains(t, second, "entities")
	assert.NotContains(t, second, "publishedAt")

	t.Run("defaults", func(t *testing.T) {
		w := serve(t, srv, "GET", "/api/v1/features/f2/articles", "")
		require.Equal(t, http.StatusOK, w.Code)
		calls := db.ListArticlesCalls()
		assert.Equal(t, domain.ArticleFilter{FeatureID: "f2", Limit: defaultListLimit}, calls[len(calls)-1].Filter)
	})

	t.Run("bad params", func(t *testing.T) {
		for _, q := range []string{"limit=0", "analyzed=maybe", "min_score=high"} {
			w := serve(t, srv, "GET", "/api/v1/features/f1/articles?"+q, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})
}

func TestServer_keywordsHandlers(t *testing.T) {
	stored := map[string][]string{}
	db := &mocks.DatabaseMock{
		GetFeatureKeywordsFunc: func(ctx context.Context, featureID string) ([]string, error) {
			return stored[featureID], nil
		},
		SetFeatureKeywordsFunc: func(ctx context.Context, featureID string, keywords []string) error {
			stored[featureID] = keywords
			return nil
		},
	}
	srv := testServer(t, db, nil, nil)

	w := serve(t, srv, "GET", "/api/v1/features/f1/keywords", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["keywords"])

	w = serve(t, srv, "PUT", "/api/v1/features/f1/keywords", `{"keywords":[" Rocket ","","Mars"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Rocket", "Mars"}, stored["f1"])

	w = serve(t, srv, "GET", "/api/v1/features/f1/keywords", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, "f1", res["featureId"])
	assert.Equal(t, []any{"Rocket", "Mars"}, res["keywords"])

	t.Run("bad body", func(t *testing.T) {
		w := serve(t, srv, "PUT", "/api/v1/features/f1/keywords", `[`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store error", func(t *testing.T) {
		db.GetFeatureKeywordsFunc = func(ctx context.Context, featureID string) ([]string, error) {
			return nil, errors.New("parse keywords")
		}
		w := serve(t, srv, "GET", "/api/v1/features/f1/keywords", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_malformedBody(t *testing.T) {
	ing, an, db := &mocks.IngesterMock{}, &mocks.AnalyzerMock{}, &mocks.DatabaseMock{}
	srv := testServer(t, db, ing, an)

	for _, tc := range []struct{ method, target string }{
		{"POST", "/api/v1/ingest"},
		{"POST", "/api/v1/analyze"},
		{"PUT", "/api/v1/features/f1/keywords"},
	} {
		t.Run(tc.target, func(t *testing.T) {
			w := serve(t, srv, tc.method, tc.target, `{"featureId":`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			res := decode(t, w)
			assert.Equal(t, false, res["success"])
			assert.Contains(t, res["error"], "invalid request body")
		})
	}
	assert.Empty(t, ing.RunCalls())
	assert.Empty(t, an.BatchAnalyzeCalls())
	assert.Empty(t, db.SetFeatureKeywordsCalls())
}
