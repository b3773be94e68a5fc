// Package pipeline runs one lead-generation job end to end: credit check,
// region resolution, query generation, the budgeted search loop, website
// enrichment, and output assembly.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/enrich"
	"github.com/sells-group/leadgen-cli/internal/geo"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/query"
	"github.com/sells-group/leadgen-cli/internal/region"
	"github.com/sells-group/leadgen-cli/internal/search"
	"github.com/sells-group/leadgen-cli/pkg/apify"
	"github.com/sells-group/leadgen-cli/pkg/firecrawl"
	"github.com/sells-group/leadgen-cli/pkg/jina"
)

// Config tunes pipeline behavior around the component configs.
type Config struct {
	Search          search.Config
	Enrich          enrich.Config
	CreditThreshold float64 // minimum remaining provider credit in USD
	AlwaysGenerate  bool    // generate terms even when the job has a keyword
}

func (c *Config) applyDefaults() {
	if c.CreditThreshold <= 0 {
		c.CreditThreshold = 1.0
	}
}

// Pipeline wires the job components together. The reader client may be
// nil, which disables enrichment for every job.
type Pipeline struct {
	provider  apify.Client
	generator query.Generator
	reader    jina.Client
	fallback  firecrawl.Client
	cfg       Config
}

// New creates a Pipeline with all dependencies.
func New(provider apify.Client, generator query.Generator, reader jina.Client, fallback firecrawl.Client, cfg Config) *Pipeline {
	cfg.applyDefaults()
	return &Pipeline{
		provider:  provider,
		generator: generator,
		reader:    reader,
		fallback:  fallback,
		cfg:       cfg,
	}
}

// Run executes one job. The only error-shaped outcome it produces is the
// credit-breaker record inside the result; everything else degrades to a
// shorter or unenriched lead list.
func (p *Pipeline) Run(ctx context.Context, crit model.JobCriteria) model.JobResult {
	crit.ApplyDefaults()

	jobID := uuid.NewString()
	log := zap.L().With(
		zap.String("job_id", jobID),
		zap.String("sector", crit.Sector),
	)
	log.Info("pipeline: starting job",
		zap.String("city", crit.City),
		zap.String("state", crit.State),
		zap.Int("max_results", crit.MaxResults),
	)

	if msg := p.checkCredits(ctx, log); msg != "" {
		return model.JobResult{JobID: jobID, Error: msg}
	}

	anchor := region.Resolve(crit.Country, crit.State, crit.City, crit.Postcode)
	terms := p.searchTerms(ctx, crit, anchor)
	log.Info("pipeline: search terms resolved", zap.Strings("terms", terms))

	orchestrator := search.New(p.provider, p.cfg.Search)
	hits := orchestrator.Collect(ctx, terms, anchor, geoCriteria(crit), crit.MaxResults)

	enrichments := p.enrichHits(ctx, hits, crit.Sector)

	leads := assemble(hits, enrichments, crit)
	log.Info("pipeline: job complete", zap.Int("leads", len(leads)))

	return model.JobResult{JobID: jobID, Leads: leads}
}

// searchTerms resolves the term list for a job. An explicit keyword is
// used as the single search term and generation is skipped entirely,
// unless the always-generate knob is on.
func (p *Pipeline) searchTerms(ctx context.Context, crit model.JobCriteria, anchor model.RegionAnchor) []string {
	if crit.Keyword != "" && !p.cfg.AlwaysGenerate {
		return []string{crit.Keyword}
	}
	return p.generator.Generate(ctx, crit.Sector, crit.Keyword, anchor.Display)
}

// checkCredits is the job's circuit breaker. A provider error on the
// limits call fails open: the job proceeds and the run itself surfaces
// any real credit problem.
func (p *Pipeline) checkCredits(ctx context.Context, log *zap.Logger) string {
	limits, err := p.provider.Limits(ctx)
	if err != nil {
		log.Warn("pipeline: credit check failed, proceeding", zap.Error(err))
		return ""
	}

	remaining := limits.RemainingUSD()
	if remaining < p.cfg.CreditThreshold {
		log.Error("pipeline: insufficient provider credits",
			zap.Float64("remaining_usd", remaining),
			zap.Float64("threshold_usd", p.cfg.CreditThreshold),
		)
		return fmt.Sprintf("Insufficient Apify credits: %.2f USD remaining", remaining)
	}
	return ""
}

// enrichHits enriches leads in hit order; the enricher itself enforces
// the per-job quota and sector allowlist.
func (p *Pipeline) enrichHits(ctx context.Context, hits []search.Hit, sector string) []enrich.Result {
	if p.reader == nil {
		return nil
	}

	enricher := enrich.New(p.reader, p.fallback, p.cfg.Enrich)
	results := make([]enrich.Result, len(hits))
	for i, h := range hits {
		results[i] = enricher.Enrich(ctx, h.Item.Website, sector)
	}
	return results
}

func geoCriteria(crit model.JobCriteria) geo.Criteria {
	return geo.Criteria{
		State:    crit.State,
		City:     crit.City,
		Postcode: crit.Postcode,
	}
}
