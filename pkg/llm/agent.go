// Package llm wraps an OpenAI-compatible chat endpoint as the article enrichment agent
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/pushhub/pkg/config"
	"github.com/umputun/pushhub/pkg/domain"
)

// maxContentRunes limits article text sent in one prompt
const maxContentRunes = 2000

// parseAttempts is how many times a malformed answer is re-requested
const parseAttempts = 3

var errBadPayload = errors.New("malformed analysis payload")

// Agent analyzes one article per chat completion call
type Agent struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewAgent creates an agent talking to cfg.Endpoint
func NewAgent(cfg config.LLMConfig) *Agent {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Agent{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

const defaultSystemPrompt = `You are a news analyst. For the given article return a single JSON object with fields:
- summary: 2-3 sentences about the main story, in the language of the article. Start with the subject itself, never with "The article".
- keywords: 3-7 short keywords
- sentiment: one of "positive", "neutral", "negative"
- importance_score: number from 0 to 10, how important the news is for a broad audience
- category: one word category, e.g. politics, economy, technology, science, sport, culture, society
- entities: object with arrays "people", "organizations", "locations"
- one_liner: catchy headline up to 80 characters suitable for a push notification

Respond with JSON only.`

// Analyze runs one analysis task. Transport failures and answers that stay malformed after
// several attempts are returned as errors. Cost covers all attempts.
func (a *Agent) Analyze(ctx context.Context, task domain.AnalysisTask) (domain.AnalysisResult, error) {
	if task.Type != domain.TaskTypeAnalysis {
		return domain.AnalysisResult{}, fmt.Errorf("unsupported task type %q", task.Type)
	}

	prompt := a.buildPrompt(task.Input.Article)
	cost := &domain.Cost{Model: a.config.Model}

	var lastErr error
	for attempt := 0; attempt < parseAttempts; attempt++ {
		req := openai.ChatCompletionRequest{
			Model:       a.config.Model,
			Temperature: float32(a.config.Temperature),
			MaxTokens:   a.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: a.systemMsg},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}
		if a.config.UseJSONMode {
			req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
		}

		resp, err := a.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return domain.AnalysisResult{Cost: cost}, fmt.Errorf("llm request failed: %w", err)
		}
		a.addUsage(cost, resp.Usage)

		if len(resp.Choices) == 0 {
			return domain.AnalysisResult{Cost: cost}, fmt.Errorf("no response from llm")
		}

		analysis, err := parseAnalysis(resp.Choices[0].Message.Content)
		if err == nil {
			return domain.AnalysisResult{
				Success: true,
				Output:  &domain.AnalysisOutput{Analysis: analysis},
				Cost:    cost,
			}, nil
		}
		lastErr = err
	}

	return domain.AnalysisResult{Cost: cost}, fmt.Errorf("failed after %d attempts: %w", parseAttempts, lastErr)
}

// addUsage accrues token counts and price, prices are per 1K tokens
func (a *Agent) addUsage(cost *domain.Cost, usage openai.Usage) {
	cost.PromptTokens += usage.PromptTokens
	cost.CompletionTokens += usage.CompletionTokens
	cost.Price += float64(usage.PromptTokens)/1000*a.config.PromptPrice +
		float64(usage.CompletionTokens)/1000*a.config.CompletionPrice
}

func (a *Agent) buildPrompt(article domain.Article) string {
	var sb strings.Builder
	sb.WriteString("Analyze this article:\n\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", article.Title))
	if article.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", article.Source))
	}
	if article.Category != "" {
		sb.WriteString(fmt.Sprintf("Section: %s\n", article.Category))
	}
	if !article.PublishedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Published: %s\n", article.PublishedAt.Format(time.RFC3339)))
	}
	if article.Content != "" {
		content := []rune(article.Content)
		if len(content) > maxContentRunes {
			content = append(content[:maxContentRunes], []rune("...")...)
		}
		sb.WriteString(fmt.Sprintf("Content: %s\n", string(content)))
	}
	return sb.String()
}

// parseAnalysis extracts the JSON object from the answer and normalizes its fields
func parseAnalysis(content string) (*domain.Analysis, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json object found: %w", errBadPayload)
	}

	var res domain.Analysis
	if err := json.Unmarshal([]byte(content[start:end+1]), &res); err != nil {
		return nil, fmt.Errorf("failed to parse json: %v: %w", err, errBadPayload)
	}
	if strings.TrimSpace(res.Summary) == "" && strings.TrimSpace(res.OneLiner) == "" {
		return nil, fmt.Errorf("empty summary: %w", errBadPayload)
	}

	switch {
	case res.ImportanceScore < 0:
		res.ImportanceScore = 0
	case res.ImportanceScore > 10:
		res.ImportanceScore = 10
	}
	res.Sentiment = domain.Sentiment(strings.ToLower(strings.TrimSpace(string(res.Sentiment))))
	if !res.Sentiment.Valid() {
		res.Sentiment = domain.SentimentNeutral
	}
	if res.Keywords == nil {
		res.Keywords = []string{}
	}
	return &res, nil
}
