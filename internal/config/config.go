package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Apify     ApifyConfig     `yaml:"apify" mapstructure:"apify"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Jina      JinaConfig      `yaml:"jina" mapstructure:"jina"`
	Firecrawl FirecrawlConfig `yaml:"firecrawl" mapstructure:"firecrawl"`
	Job       JobConfig       `yaml:"job" mapstructure:"job"`
	Query     QueryConfig     `yaml:"query" mapstructure:"query"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Enrich    EnrichConfig    `yaml:"enrich" mapstructure:"enrich"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ApifyConfig holds the place-search provider credentials and actor.
type ApifyConfig struct {
	Token   string `yaml:"token" mapstructure:"token"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	ActorID string `yaml:"actor_id" mapstructure:"actor_id"`
}

// AnthropicConfig holds Anthropic API settings for query generation.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// JinaConfig holds Jina AI Reader settings.
type JinaConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// FirecrawlConfig holds Firecrawl API settings (enrichment fallback only).
type FirecrawlConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// JobConfig holds job-level policy.
type JobConfig struct {
	CreditThresholdUSD float64 `yaml:"credit_threshold_usd" mapstructure:"credit_threshold_usd"`
}

// QueryConfig configures search term generation. When AlwaysGenerate is
// off, a job that carries an explicit keyword searches that keyword
// directly and never calls the generation service.
type QueryConfig struct {
	AlwaysGenerate bool `yaml:"always_generate" mapstructure:"always_generate"`
}

// SearchConfig configures the search orchestrator's session budget.
type SearchConfig struct {
	DeadlineSecs     int    `yaml:"deadline_secs" mapstructure:"deadline_secs"`
	PollIntervalSecs int    `yaml:"poll_interval_secs" mapstructure:"poll_interval_secs"`
	ResultMultiplier int    `yaml:"result_multiplier" mapstructure:"result_multiplier"`
	ResultCeiling    int    `yaml:"result_ceiling" mapstructure:"result_ceiling"`
	Concurrency      int    `yaml:"concurrency" mapstructure:"concurrency"`
	Preposition      string `yaml:"preposition" mapstructure:"preposition"`
	CountryLock      bool   `yaml:"country_lock" mapstructure:"country_lock"`
}

// EnrichConfig configures website enrichment.
type EnrichConfig struct {
	Quota         int      `yaml:"quota" mapstructure:"quota"`
	PageLimit     int      `yaml:"page_limit" mapstructure:"page_limit"`
	Sectors       []string `yaml:"sectors" mapstructure:"sectors"`
	RatePerSecond float64  `yaml:"rate_per_second" mapstructure:"rate_per_second"`
}

// ServerConfig configures the webhook server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("apify.base_url", "https://api.apify.com/v2")
	v.SetDefault("apify.actor_id", "compass/crawler-google-places")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("jina.base_url", "https://r.jina.ai")
	v.SetDefault("firecrawl.base_url", "https://api.firecrawl.dev/v1")
	v.SetDefault("job.credit_threshold_usd", 1.0)
	v.SetDefault("query.always_generate", false)
	v.SetDefault("search.deadline_secs", 90)
	v.SetDefault("search.poll_interval_secs", 3)
	v.SetDefault("search.result_multiplier", 2)
	v.SetDefault("search.result_ceiling", 50)
	v.SetDefault("search.concurrency", 8)
	v.SetDefault("search.preposition", "in")
	v.SetDefault("search.country_lock", true)
	v.SetDefault("enrich.quota", 10)
	v.SetDefault("enrich.page_limit", 3)
	v.SetDefault("enrich.rate_per_second", 1.0)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the required credentials are present. Only the
// search provider token is mandatory; the generation and enrichment keys
// degrade features when absent.
func (c *Config) Validate() error {
	if c.Apify.Token == "" {
		return eris.New("config: apify token is required (LEADGEN_APIFY_TOKEN)")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
