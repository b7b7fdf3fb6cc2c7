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
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in emails and RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:threatwatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Ingest  IngestConfig  `yaml:"ingest" json:"ingest" jsonschema:"description=Feed ingestion configuration"`
	Enrich  EnrichConfig  `yaml:"enrich" json:"enrich" jsonschema:"description=Optional AI summary enrichment"`
	Extract ExtractConfig `yaml:"extract" json:"extract" jsonschema:"description=Full-text extraction configuration"`
	Notify  NotifyConfig  `yaml:"notify" json:"notify" jsonschema:"description=Notification pipeline configuration"`

	RateLimit struct {
		Attempts int64         `yaml:"attempts" json:"attempts" jsonschema:"default=5,description=Allowed attempts per key per window"`
		Window   time.Duration `yaml:"window" json:"window" jsonschema:"default=1h,description=Fixed rate-limit window"`
	} `yaml:"rate_limit" json:"rate_limit" jsonschema:"description=Request rate limiting for public endpoints"`
}

// IngestConfig holds feed ingestion settings
type IngestConfig struct {
	Interval       time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Feed ingestion interval"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Per-source fetch timeout"`
	MaxConcurrent  int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=1,description=Maximum concurrent source fetches"`
	Lookback       time.Duration `yaml:"lookback" json:"lookback" jsonschema:"default=168h,description=Discard items older than this window"`
	BackfillWindow time.Duration `yaml:"backfill_window" json:"backfill_window" jsonschema:"default=720h,description=Lookback window for the initial historical backfill"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Threatwatch/1.0,description=User agent for HTTP requests"`
	ScrapeEndpoint string        `yaml:"scrape_endpoint" json:"scrape_endpoint" jsonschema:"description=Scrape API endpoint for non-feed sources"`
	ScrapeAPIKey   string        `yaml:"scrape_api_key" json:"scrape_api_key" jsonschema:"description=Scrape API key (can use environment variable)"`
	MaxTags        int           `yaml:"max_tags" json:"max_tags" jsonschema:"default=10,description=Cap on classifier tags per article"`

	Sources []SourceConfig `yaml:"sources" json:"sources,omitempty" jsonschema:"description=Threat-intel sources seeded into the store on startup"`
}

// SourceConfig declares one threat-intel origin. Sources are seeded
// idempotently on startup, re-declaring an existing name is a no-op.
type SourceConfig struct {
	Name         string `yaml:"name" json:"name" jsonschema:"description=Unique source name"`
	URL          string `yaml:"url" json:"url" jsonschema:"description=Feed URL or page URL for scrape sources"`
	Kind         string `yaml:"kind" json:"kind" jsonschema:"default=feed,enum=feed,enum=scrape,description=How the source is pulled"`
	CategoryHint string `yaml:"category_hint" json:"category_hint,omitempty" jsonschema:"description=Optional category hint for the source"`
}

// EnrichConfig holds optional LLM summary enrichment settings
type EnrichConfig struct {
	Enabled     bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable AI summaries"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	BatchSize   int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=5,minimum=1,description=Number of articles to summarize in one cycle"`
	Interval    time.Duration `yaml:"interval" json:"interval" jsonschema:"default=10m,description=Enrichment cycle interval"`
}

// ExtractConfig holds full-text extraction settings
type ExtractConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full-text extraction for articles without body"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	Interval      time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5m,description=Extraction cycle interval"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent extractions"`
	BatchSize     int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=10,description=Number of articles to extract in one cycle"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// NotifyConfig holds notification pipeline settings
type NotifyConfig struct {
	SMTP struct {
		Host     string `yaml:"host" json:"host" jsonschema:"description=SMTP submission host, empty disables sending (dry-run)"`
		Port     int    `yaml:"port" json:"port" jsonschema:"default=587,description=SMTP port"`
		Username string `yaml:"username" json:"username" jsonschema:"description=SMTP username"`
		Password string `yaml:"password" json:"password" jsonschema:"description=SMTP password (can use environment variable)"`
		From     string `yaml:"from" json:"from" jsonschema:"description=Sender address"`
	} `yaml:"smtp" json:"smtp" jsonschema:"description=SMTP transport configuration"`

	AdminEmail       string        `yaml:"admin_email" json:"admin_email" jsonschema:"description=Admin relay address for new-subscription copies"`
	DigestInterval   time.Duration `yaml:"digest_interval" json:"digest_interval" jsonschema:"default=1h,description=Hourly digest scheduler interval"`
	CriticalInterval time.Duration `yaml:"critical_interval" json:"critical_interval" jsonschema:"default=15m,description=Critical-alert job interval"`
	CriticalLookback time.Duration `yaml:"critical_lookback" json:"critical_lookback" jsonschema:"default=3h,description=Lookback window for immediate critical alerts"`
	TokenTTL         time.Duration `yaml:"token_ttl" json:"token_ttl" jsonschema:"default=48h,description=Verification/management token lifetime"`
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

	setDefaults(&cfg)

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

// setDefaults fills zero values with sane defaults
func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:threatwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Ingest.Interval == 0 {
		cfg.Ingest.Interval = 30 * time.Minute
	}
	if cfg.Ingest.FetchTimeout == 0 {
		cfg.Ingest.FetchTimeout = 30 * time.Second
	}
	if cfg.Ingest.MaxConcurrent == 0 {
		cfg.Ingest.MaxConcurrent = 1
	}
	if cfg.Ingest.Lookback == 0 {
		cfg.Ingest.Lookback = 7 * 24 * time.Hour
	}
	if cfg.Ingest.BackfillWindow == 0 {
		cfg.Ingest.BackfillWindow = 30 * 24 * time.Hour
	}
	if cfg.Ingest.UserAgent == "" {
		cfg.Ingest.UserAgent = "Threatwatch/1.0"
	}
	if cfg.Ingest.MaxTags == 0 {
		cfg.Ingest.MaxTags = 10
	}

	if cfg.Enrich.Temperature == 0 {
		cfg.Enrich.Temperature = 0.3
	}
	if cfg.Enrich.MaxTokens == 0 {
		cfg.Enrich.MaxTokens = 500
	}
	if cfg.Enrich.Timeout == 0 {
		cfg.Enrich.Timeout = 30 * time.Second
	}
	if cfg.Enrich.BatchSize == 0 {
		cfg.Enrich.BatchSize = 5
	}
	if cfg.Enrich.Interval == 0 {
		cfg.Enrich.Interval = 10 * time.Minute
	}

	if cfg.Extract.Timeout == 0 {
		cfg.Extract.Timeout = 30 * time.Second
	}
	if cfg.Extract.Interval == 0 {
		cfg.Extract.Interval = 5 * time.Minute
	}
	if cfg.Extract.MaxConcurrent == 0 {
		cfg.Extract.MaxConcurrent = 5
	}
	if cfg.Extract.BatchSize == 0 {
		cfg.Extract.BatchSize = 10
	}
	if cfg.Extract.MinTextLength == 0 {
		cfg.Extract.MinTextLength = 100
	}

	if cfg.Notify.SMTP.Port == 0 {
		cfg.Notify.SMTP.Port = 587
	}
	if cfg.Notify.DigestInterval == 0 {
		cfg.Notify.DigestInterval = time.Hour
	}
	if cfg.Notify.CriticalInterval == 0 {
		cfg.Notify.CriticalInterval = 15 * time.Minute
	}
	if cfg.Notify.CriticalLookback == 0 {
		cfg.Notify.CriticalLookback = 3 * time.Hour
	}
	if cfg.Notify.TokenTTL == 0 {
		cfg.Notify.TokenTTL = 48 * time.Hour
	}

	if cfg.RateLimit.Attempts == 0 {
		cfg.RateLimit.Attempts = 5
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate ingest config
	if cfg.Ingest.FetchTimeout < time.Second {
		return fmt.Errorf("ingest fetch_timeout must be at least 1 second")
	}
	if cfg.Ingest.MaxConcurrent < 1 {
		return fmt.Errorf("ingest max_concurrent must be at least 1")
	}
	if cfg.Ingest.Lookback < time.Hour {
		return fmt.Errorf("ingest lookback must be at least 1 hour")
	}

	// validate enrichment config
	if cfg.Enrich.Enabled {
		if cfg.Enrich.Model == "" {
			return fmt.Errorf("enrich.model is required when enrichment is enabled")
		}
		if cfg.Enrich.Temperature < 0 || cfg.Enrich.Temperature > 2 {
			return fmt.Errorf("enrich.temperature must be between 0 and 2")
		}
		if cfg.Enrich.BatchSize < 1 {
			return fmt.Errorf("enrich.batch_size must be at least 1")
		}
	}

	// validate notification config
	if cfg.Notify.SMTP.Host != "" && cfg.Notify.SMTP.From == "" {
		return fmt.Errorf("notify.smtp.from is required when smtp host is set")
	}
	if cfg.Notify.CriticalLookback < cfg.Notify.CriticalInterval {
		return fmt.Errorf("notify.critical_lookback must cover at least one critical_interval")
	}

	// validate rate limit config
	if cfg.RateLimit.Attempts < 1 {
		return fmt.Errorf("rate_limit.attempts must be at least 1")
	}
	if cfg.RateLimit.Window < time.Second {
		return fmt.Errorf("rate_limit.window must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetIngestConfig returns feed ingestion configuration
func (c *Config) GetIngestConfig() IngestConfig {
	return c.Ingest
}

// GetEnrichConfig returns enrichment configuration
func (c *Config) GetEnrichConfig() EnrichConfig {
	return c.Enrich
}

// GetNotifyConfig returns notification configuration
func (c *Config) GetNotifyConfig() NotifyConfig {
	return c.Notify
}

// GetBaseURL returns the public base URL used in emails and RSS links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetRateLimit returns the rate-limit settings for public endpoints
func (c *Config) GetRateLimit() (attempts int64, window time.Duration) {
	return c.RateLimit.Attempts, c.RateLimit.Window
}
