package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pushhub/pkg/config"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Tech</title>
	<link>http://example.com</link>
	<item>
		<title>Rocket lands on Mars</title>
		<link>http://example.com/rocket</link>
		<description>A rocket landed on Mars today.</description>
		<pubDate>Wed, 01 May 2024 09:00:00 +0000</pubDate>
	</item>
	<item>
		<title>New phone released</title>
		<link>http://example.com/phone</link>
		<description>Yet another phone was released.</description>
		<pubDate>Wed, 01 May 2024 08:00:00 +0000</pubDate>
	</item>
</channel>
</rss>`

const testAnalysis = `{"summary":"short summary","keywords":["space"],"sentiment":"positive",
"importance_score":7,"category":"science","entities":{"people":[],"organizations":[],"locations":["Mars"]},
"one_liner":"it happened"}`

func TestMain(m *testing.M) {
	lgr.SetupStdLogger(lgr.Out(io.Discard), lgr.Err(io.Discard))
	lgr.Setup(lgr.Out(io.Discard), lgr.Err(io.Discard))
	os.Exit(m.Run())
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_IngestAnalyzeExport(t *testing.T) {
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer feedSrv.Close()

	llmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: testAnalysis}}},
			Usage:   openai.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer llmSrv.Close()

	port := freePort(t)
	dir := t.TempDir()
	cfgData := fmt.Sprintf(`
server:
  listen: "127.0.0.1:%d"
  base_url: "http://hub.example.com"
database:
  dsn: %q
llm:
  endpoint: %q
  api_key: "secret-key"
  model: "test-model"
analysis:
  interval: 10ms
sources:
  - name: tech
    kind: rss
    categories:
      news: %q
`, port, filepath.Join(dir, "pushhub.db"), llmSrv.URL+"/v1", feedSrv.URL+"/feed.xml")
	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0o600))

	// confirm the test config is valid before starting the whole app
	_, err := config.Load(cfgPath)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: cfgPath, NoColor: true}) }()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	ingest := postJSON(t, base+"/api/v1/ingest", `{"featureId":"f1","userId":"u1"}`)
	assert.Equal(t, true, ingest["success"])
	assert.InDelta(t, 2, ingest["articlesFound"], 0)
	assert.InDelta(t, 2, ingest["articlesSaved"], 0)
	jobID, _ := ingest["jobId"].(string)
	require.NotEmpty(t, jobID)

	again := postJSON(t, base+"/api/v1/ingest", `{"featureId":"f1","userId":"u1"}`)
	assert.InDelta(t, 2, again["articlesFound"], 0)
	assert.InDelta(t, 0, again["articlesSaved"], 0, "second run saves nothing new")

	analyzed := postJSON(t, base+"/api/v1/analyze", `{"featureId":"f1"}`)
	assert.Equal(t, true, analyzed["success"])
	assert.InDelta(t, 2, analyzed["analyzed"], 0)
	assert.InDelta(t, 0, analyzed["failed"], 0)

	job := getBody(t, base+"/api/v1/jobs/"+jobID)
	assert.Contains(t, job, `"status":"success"`)

	rss := getBody(t, base+"/rss/f1?min_score=5")
	assert.Contains(t, rss, "[7.0] Rocket lands on Mars")
	assert.Contains(t, rss, "[7.0] New phone released")
	assert.Contains(t, rss, "http://hub.example.com/rss/f1")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestScheduledFeatures(t *testing.T) {
	res := scheduledFeatures([]config.ScheduledFeature{{ID: "f1", UserID: "u1", Keywords: []string{"a"}}, {ID: "f2", UserID: "u2"}})
	require.Len(t, res, 2)
	assert.Equal(t, "f1", res[0].ID)
	assert.Equal(t, "u1", res[0].UserID)
	assert.Equal(t, []string{"a"}, res[0].Keywords)
	assert.Equal(t, "f2", res[1].ID)
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func postJSON(t *testing.T, url, body string) map[string]any {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	var res map[string]any
	require.NoError(t, json.Unmarshal(data, &res))
	return res
}

func getBody(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	return string(data)
}
