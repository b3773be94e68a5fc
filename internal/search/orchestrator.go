// Package search drives the budgeted search loop of a job: one remote
// scraper session per query term, polled until the job's target count or
// wall-clock deadline is hit, deduplicated job-wide as results arrive.
package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/geo"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/apify"
)

// Config tunes the orchestrator's session budget and search-string policy.
type Config struct {
	ActorID          string
	Deadline         time.Duration // wall-clock budget for the whole job
	PollInterval     time.Duration // pause between dataset polls
	ResultMultiplier int           // provider cap = remaining need * multiplier
	ResultCeiling    int           // provider-side cap ceiling
	Concurrency      int           // provider-side crawl concurrency cap
	Preposition      string        // "in" or "near"
	CountryLock      bool          // pass the resolved country code to the provider
}

func (c *Config) applyDefaults() {
	if c.Deadline <= 0 {
		c.Deadline = 90 * time.Second
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 3 * time.Second
	}
	if c.ResultMultiplier <= 0 {
		c.ResultMultiplier = 2
	}
	if c.ResultCeiling <= 0 {
		c.ResultCeiling = 50
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 8
	}
	if c.Preposition == "" {
		c.Preposition = "in"
	}
}

// Hit is one accepted place record plus the search string that found it.
type Hit struct {
	Item        apify.PlaceItem
	SearchQuery string
}

// Orchestrator runs search sessions against the place-search provider.
type Orchestrator struct {
	client apify.Client
	cfg    Config
}

// New creates an Orchestrator.
func New(client apify.Client, cfg Config) *Orchestrator {
	cfg.applyDefaults()
	return &Orchestrator{client: client, cfg: cfg}
}

// collector owns the job-wide dedup set and accumulator. It lives for one
// Collect call and is never shared across goroutines.
type collector struct {
	seen     map[string]struct{}
	hits     []Hit
	target   int
	rejected int // geo-filtered, counted but not surfaced
}

func (c *collector) full() bool     { return len(c.hits) >= c.target }
func (c *collector) remaining() int { return c.target - len(c.hits) }

// absorb folds a cumulative dataset read into the accumulator. Every
// identity is processed at most once across the whole job; records
// failing the geo check are dropped silently.
func (c *collector) absorb(items []apify.PlaceItem, searchQuery string, crit geo.Criteria) {
	for _, it := range items {
		if c.full() {
			return
		}
		key := model.IdentityKey(it.Title, it.Address)
		if _, ok := c.seen[key]; ok {
			continue
		}
		c.seen[key] = struct{}{}

		if !geo.IsValid(it.Address, crit) {
			c.rejected++
			continue
		}
		c.hits = append(c.hits, Hit{Item: it, SearchQuery: searchQuery})
	}
}

// Collect runs one session per term, in order, until the target count is
// reached or the job deadline passes. It returns the accepted hits; a job
// that finds nothing returns an empty slice, not an error.
func (o *Orchestrator) Collect(ctx context.Context, terms []string, anchor model.RegionAnchor, crit geo.Criteria, target int) []Hit {
	log := zap.L().With(zap.String("component", "search.orchestrator"))

	deadline := time.Now().Add(o.cfg.Deadline)
	col := &collector{seen: make(map[string]struct{}), target: target}

	for _, term := range terms {
		if col.full() {
			break
		}
		if time.Now().After(deadline) {
			log.Info("job deadline reached, skipping remaining terms")
			break
		}
		o.runSession(ctx, log, term, anchor, crit, col, deadline)
	}

	log.Info("search complete",
		zap.Int("hits", len(col.hits)),
		zap.Int("target", target),
		zap.Int("geo_rejected", col.rejected),
	)
	return col.hits
}

// runSession starts one scraper run, polls its dataset under the budget,
// and always aborts the run exactly once on exit.
func (o *Orchestrator) runSession(ctx context.Context, log *zap.Logger, term string, anchor model.RegionAnchor, crit geo.Criteria, col *collector, deadline time.Time) {
	searchString := o.buildSearchString(term, anchor.Display)

	input := apify.RunInput{
		SearchStringsArray:        []string{searchString},
		MaxCrawledPlacesPerSearch: o.resultCap(col.remaining()),
		MaxConcurrency:            o.cfg.Concurrency,
		Language:                  "en",
		IncludeWebResults:         false,
		MaxReviews:                0,
		MaxImages:                 0,
	}
	if o.cfg.CountryLock && anchor.CountryCode != "" {
		input.CountryCode = anchor.CountryCode
	}

	run, err := o.client.StartRun(ctx, o.cfg.ActorID, input)
	if err != nil {
		// A failed session contributes nothing; the loop moves on.
		log.Warn("start run failed",
			zap.String("search", searchString),
			zap.Error(err),
		)
		return
	}

	log.Info("session started",
		zap.String("search", searchString),
		zap.String("run_id", run.ID),
		zap.Int("cap", input.MaxCrawledPlacesPerSearch),
	)

	for {
		// Read status before items so a terminal run's final items are
		// still absorbed on this pass.
		finished := false
		if state, err := o.client.GetRun(ctx, run.ID); err != nil {
			log.Warn("run status poll failed", zap.String("run_id", run.ID), zap.Error(err))
		} else {
			finished = state.Finished()
		}

		items, err := o.client.DatasetItems(ctx, run.DefaultDatasetID)
		if err != nil {
			log.Warn("dataset poll failed", zap.String("run_id", run.ID), zap.Error(err))
		} else {
			col.absorb(items, searchString, crit)
		}

		if col.full() {
			log.Info("target met", zap.String("run_id", run.ID), zap.Int("hits", len(col.hits)))
			break
		}
		if finished {
			log.Info("session finished before target", zap.String("run_id", run.ID), zap.Int("hits", len(col.hits)))
			break
		}
		if time.Now().After(deadline) {
			log.Info("deadline expired", zap.String("run_id", run.ID), zap.Int("hits", len(col.hits)))
			break
		}

		select {
		case <-ctx.Done():
		case <-time.After(o.cfg.PollInterval):
		}
		if ctx.Err() != nil {
			log.Warn("context canceled during poll", zap.String("run_id", run.ID))
			break
		}
	}

	// Sessions are never left running, whichever condition ended polling.
	if err := o.client.AbortRun(ctx, run.ID); err != nil {
		log.Warn("abort run failed", zap.String("run_id", run.ID), zap.Error(err))
	}
}

func (o *Orchestrator) buildSearchString(term, anchor string) string {
	if anchor == "" {
		return term
	}
	return term + " " + o.cfg.Preposition + " " + anchor
}

// resultCap sizes the provider-side result cap from the remaining need.
func (o *Orchestrator) resultCap(remaining int) int {
	n := remaining * o.cfg.ResultMultiplier
	if n > o.cfg.ResultCeiling {
		return o.cfg.ResultCeiling
	}
	if n < 1 {
		return 1
	}
	return n
}
