package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in generated RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:pushhub.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for article analysis"`

	Analysis AnalysisConfig `yaml:"analysis" json:"analysis" jsonschema:"description=Batch analysis settings"`

	Ingest IngestConfig `yaml:"ingest" json:"ingest" jsonschema:"description=Ingestion run settings"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`

	Sources []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=News sources to ingest from"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Built-in scheduler configuration"`
}

// LLMConfig holds LLM configuration for article analysis
type LLMConfig struct {
	Endpoint        string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey          string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model           string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature     float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens       int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=800,description=Maximum tokens in response"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt    string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	UseJSONMode     bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
	PromptPrice     float64       `yaml:"prompt_price" json:"prompt_price" jsonschema:"default=0.00015,description=Price per 1K prompt tokens"`
	CompletionPrice float64       `yaml:"completion_price" json:"completion_price" jsonschema:"default=0.0006,description=Price per 1K completion tokens"`
}

// AnalysisConfig holds batch analysis settings
type AnalysisConfig struct {
	Interval     time.Duration `yaml:"interval" json:"interval" jsonschema:"default=500ms,description=Minimum interval between agent calls"`
	DefaultLimit int           `yaml:"default_limit" json:"default_limit" jsonschema:"default=10,minimum=1,description=Articles per batch when the request has no limit"`
	MaxLimit     int           `yaml:"max_limit" json:"max_limit" jsonschema:"default=100,minimum=1,description=Largest batch a request may ask for"`
	RunsPerMonth float64       `yaml:"runs_per_month" json:"runs_per_month" jsonschema:"default=1440,description=Assumed batch runs per month for cost extrapolation"`
	Retry        RetryConfig   `yaml:"retry" json:"retry" jsonschema:"description=Retry policy for agent calls"`
}

// RetryConfig is an opt-in retry policy, attempts=1 means no retry
type RetryConfig struct {
	Attempts int           `yaml:"attempts" json:"attempts" jsonschema:"default=1,minimum=1,description=Total attempts per agent call"`
	Delay    time.Duration `yaml:"delay" json:"delay" jsonschema:"default=1s,description=Initial backoff delay between attempts"`
}

// IngestConfig holds ingestion run settings
type IngestConfig struct {
	DedupWindow int           `yaml:"dedup_window" json:"dedup_window" jsonschema:"default=0,description=Recent articles scanned for duplicate hashes (0 disables the scan)"`
	MaxErrors   int           `yaml:"max_errors" json:"max_errors" jsonschema:"default=10,description=Maximum save errors reported per run"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Source fetch timeout"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=PushHub/1.0,description=User agent for source requests"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full-text extraction for short articles"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=200,description=Content shorter than this is re-extracted from the article page"`
}

// SourceConfig describes one news source
type SourceConfig struct {
	Name       string            `yaml:"name" json:"name" jsonschema:"required,description=Source name stored with each article"`
	Kind       string            `yaml:"kind" json:"kind" jsonschema:"enum=rss,enum=html,default=rss,description=Source kind"`
	Categories map[string]string `yaml:"categories" json:"categories" jsonschema:"description=Category name to listing URL"`
	SearchURL  string            `yaml:"search_url" json:"search_url" jsonschema:"description=Keyword search URL template with {keyword} placeholder"`
	Selectors  SelectorsConfig   `yaml:"selectors" json:"selectors" jsonschema:"description=CSS selectors for html sources"`
}

// SelectorsConfig holds CSS selectors used to scrape html listings
type SelectorsConfig struct {
	Item    string `yaml:"item" json:"item" jsonschema:"description=Selector of one article block"`
	Title   string `yaml:"title" json:"title" jsonschema:"description=Selector of the title inside the block"`
	Link    string `yaml:"link" json:"link" jsonschema:"description=Selector of the link inside the block"`
	Content string `yaml:"content" json:"content" jsonschema:"description=Selector of the teaser/body inside the block"`
	Date    string `yaml:"date" json:"date" jsonschema:"description=Selector of the publish date inside the block"`
}

// ScheduleConfig holds the built-in scheduler settings
type ScheduleConfig struct {
	Enabled    bool               `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Run ingestion and analysis periodically"`
	Interval   time.Duration      `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Interval between scheduled runs"`
	MaxWorkers int                `yaml:"max_workers" json:"max_workers" jsonschema:"default=2,description=Features processed concurrently"`
	Features   []ScheduledFeature `yaml:"features" json:"features" jsonschema:"description=Features to process"`
}

// ScheduledFeature is one feature processed by the scheduler
type ScheduledFeature struct {
	ID       string   `yaml:"id" json:"id" jsonschema:"required,description=Feature id"`
	UserID   string   `yaml:"user_id" json:"user_id" jsonschema:"required,description=User id recorded in job logs"`
	Keywords []string `yaml:"keywords" json:"keywords" jsonschema:"description=Keywords used for ingestion"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:pushhub.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// llm
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 800
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.PromptPrice == 0 {
		c.LLM.PromptPrice = 0.00015
	}
	if c.LLM.CompletionPrice == 0 {
		c.LLM.CompletionPrice = 0.0006
	}

	// analysis
	if c.Analysis.Interval == 0 {
		c.Analysis.Interval = 500 * time.Millisecond
	}
	if c.Analysis.DefaultLimit == 0 {
		c.Analysis.DefaultLimit = 10
	}
	if c.Analysis.MaxLimit == 0 {
		c.Analysis.MaxLimit = 100
	}
	if c.Analysis.RunsPerMonth == 0 {
		c.Analysis.RunsPerMonth = 1440
	}
	if c.Analysis.Retry.Attempts == 0 {
		c.Analysis.Retry.Attempts = 1
	}
	if c.Analysis.Retry.Delay == 0 {
		c.Analysis.Retry.Delay = time.Second
	}

	// ingest
	if c.Ingest.MaxErrors == 0 {
		c.Ingest.MaxErrors = 10
	}
	if c.Ingest.Timeout == 0 {
		c.Ingest.Timeout = 30 * time.Second
	}
	if c.Ingest.UserAgent == "" {
		c.Ingest.UserAgent = "PushHub/1.0"
	}

	// extraction
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 200
	}

	// sources
	for i := range c.Sources {
		if c.Sources[i].Kind == "" {
			c.Sources[i].Kind = "rss"
		}
	}

	// schedule
	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = 30 * time.Minute
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 2
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	// validate analysis config
	if cfg.Analysis.Interval < 0 {
		return fmt.Errorf("analysis.interval must be non-negative")
	}
	if cfg.Analysis.DefaultLimit < 1 {
		return fmt.Errorf("analysis.default_limit must be at least 1")
	}
	if cfg.Analysis.MaxLimit < cfg.Analysis.DefaultLimit {
		return fmt.Errorf("analysis.max_limit must not be less than analysis.default_limit")
	}
	if cfg.Analysis.Retry.Attempts < 1 {
		return fmt.Errorf("analysis.retry.attempts must be at least 1")
	}

	if cfg.Ingest.DedupWindow < 0 {
		return fmt.Errorf("ingest.dedup_window must be non-negative")
	}

	// validate sources
	names := make(map[string]bool, len(cfg.Sources))
	for i, src := range cfg.Sources {
		if src.Name == "" {
			return fmt.Errorf("sources[%d].name is required", i)
		}
		if names[src.Name] {
			return fmt.Errorf("duplicate source name %q", src.Name)
		}
		names[src.Name] = true
		if src.Kind != "rss" && src.Kind != "html" {
			return fmt.Errorf("source %s: unknown kind %q", src.Name, src.Kind)
		}
		if len(src.Categories) == 0 && src.SearchURL == "" {
			return fmt.Errorf("source %s: at least one category or search_url is required", src.Name)
		}
		if src.Kind == "html" && src.Selectors.Item == "" {
			return fmt.Errorf("source %s: selectors.item is required for html sources", src.Name)
		}
	}

	// validate schedule
	if cfg.Schedule.Enabled {
		if cfg.Schedule.Interval < time.Minute {
			return fmt.Errorf("schedule.interval must be at least 1 minute")
		}
		for i, f := range cfg.Schedule.Features {
			if f.ID == "" || f.UserID == "" {
				return fmt.Errorf("schedule.features[%d]: id and user_id are required", i)
			}
		}
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base url used in generated links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetSources returns configured sources
func (c *Config) GetSources() []SourceConfig {
	return c.Sources
}
