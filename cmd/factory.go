package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/config"
	"github.com/sells-group/leadgen-cli/internal/enrich"
	"github.com/sells-group/leadgen-cli/internal/pipeline"
	"github.com/sells-group/leadgen-cli/internal/query"
	"github.com/sells-group/leadgen-cli/internal/search"
	anthropicpkg "github.com/sells-group/leadgen-cli/pkg/anthropic"
	"github.com/sells-group/leadgen-cli/pkg/apify"
	"github.com/sells-group/leadgen-cli/pkg/firecrawl"
	"github.com/sells-group/leadgen-cli/pkg/jina"
)

// buildPipeline wires the job pipeline from config. The search provider
// token is mandatory; missing generation or enrichment credentials degrade
// those features instead of failing.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider := apify.NewClient(cfg.Apify.Token, apify.WithBaseURL(cfg.Apify.BaseURL))

	generator, err := buildGenerator(cfg)
	if err != nil {
		return nil, err
	}

	var reader jina.Client
	if cfg.Jina.Key != "" {
		reader = jina.NewClient(cfg.Jina.Key, jina.WithBaseURL(cfg.Jina.BaseURL))
	} else {
		zap.L().Warn("no jina key configured, enrichment disabled")
	}

	var fallback firecrawl.Client
	if cfg.Firecrawl.Key != "" {
		fallback = firecrawl.NewClient(cfg.Firecrawl.Key, firecrawl.WithBaseURL(cfg.Firecrawl.BaseURL))
	}

	return pipeline.New(provider, generator, reader, fallback, pipeline.Config{
		CreditThreshold: cfg.Job.CreditThresholdUSD,
		AlwaysGenerate:  cfg.Query.AlwaysGenerate,
		Search: search.Config{
			ActorID:          cfg.Apify.ActorID,
			Deadline:         time.Duration(cfg.Search.DeadlineSecs) * time.Second,
			PollInterval:     time.Duration(cfg.Search.PollIntervalSecs) * time.Second,
			ResultMultiplier: cfg.Search.ResultMultiplier,
			ResultCeiling:    cfg.Search.ResultCeiling,
			Concurrency:      cfg.Search.Concurrency,
			Preposition:      cfg.Search.Preposition,
			CountryLock:      cfg.Search.CountryLock,
		},
		Enrich: enrich.Config{
			Quota:         cfg.Enrich.Quota,
			PageLimit:     cfg.Enrich.PageLimit,
			Sectors:       cfg.Enrich.Sectors,
			RatePerSecond: cfg.Enrich.RatePerSecond,
		},
	}), nil
}

// buildGenerator picks the LLM generator when a key is configured, else
// the embedded sector table.
func buildGenerator(cfg *config.Config) (query.Generator, error) {
	if cfg.Anthropic.Key != "" {
		client := anthropicpkg.NewClient(cfg.Anthropic.Key)
		return query.NewLLMGenerator(client, cfg.Anthropic.Model), nil
	}

	zap.L().Info("no anthropic key configured, using static sector table")
	return query.NewStaticGenerator()
}
