// Package enrich pulls contact details off lead websites: it fetches page
// text through the reader service (scrape API fallback), extracts emails,
// phone numbers, and contact pages, and enforces the per-job enrichment
// quota so a single job cannot burn through fetch credits.
package enrich

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/firecrawl"
	"github.com/sells-group/leadgen-cli/pkg/jina"
)

var errEmptyPage = eris.New("enrich: empty page content")

// Config tunes the enricher's quota and fetch behavior.
type Config struct {
	Quota         int      // max leads enriched per job
	PageLimit     int      // pages fetched per website (home + contact pages)
	Sectors       []string // enrichable sectors; empty allows all
	RatePerSecond float64  // fetch rate limit
}

func (c *Config) applyDefaults() {
	if c.Quota <= 0 {
		c.Quota = 10
	}
	if c.PageLimit <= 0 {
		c.PageLimit = 3
	}
	if c.RatePerSecond <= 0 {
		c.RatePerSecond = 1
	}
}

// Result is the outcome of enriching one lead's website.
type Result struct {
	Status         model.EnrichmentStatus
	Emails         []string
	PhoneNumbers   []string
	ContactPages   []string
	WebsiteSummary string
}

// Enricher fetches and mines lead websites. It is scoped to one job and
// not safe for concurrent use; the pipeline enriches leads sequentially.
type Enricher struct {
	reader   jina.Client
	fallback firecrawl.Client // optional
	cfg      Config
	limiter  *rate.Limiter
	cache    *gocache.Cache
	sectors  map[string]struct{}
	used     int
}

// New creates an Enricher for a single job.
func New(reader jina.Client, fallback firecrawl.Client, cfg Config) *Enricher {
	cfg.applyDefaults()

	sectors := make(map[string]struct{}, len(cfg.Sectors))
	for _, s := range cfg.Sectors {
		sectors[strings.ToLower(s)] = struct{}{}
	}

	return &Enricher{
		reader:   reader,
		fallback: fallback,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		cache:    gocache.New(30*time.Minute, time.Hour),
		sectors:  sectors,
	}
}

// Enrich fetches the lead's website and mines it for contact details. It
// never returns an error: ineligible leads come back skipped and fetch
// failures come back failed with empty lists.
func (e *Enricher) Enrich(ctx context.Context, website, sector string) Result {
	log := zap.L().With(zap.String("component", "enrich"))

	if website == "" || e.used >= e.cfg.Quota || !e.sectorAllowed(sector) {
		return Result{Status: model.EnrichmentSkipped}
	}

	target := normalizeURL(website)

	if cached, ok := e.cache.Get(target); ok {
		return cached.(Result)
	}

	e.used++

	home, err := e.fetchPage(ctx, target)
	if err != nil {
		log.Warn("enrich: website fetch failed",
			zap.String("url", target),
			zap.Error(err),
		)
		res := Result{Status: model.EnrichmentFailed}
		e.cache.SetDefault(target, res)
		return res
	}

	res := Result{
		Status:         model.EnrichmentAttempted,
		Emails:         extractEmails(home),
		PhoneNumbers:   extractPhones(home),
		ContactPages:   extractContactLinks(home, target),
		WebsiteSummary: summarize(home),
	}

	// Contact and about pages usually hold the details the home page
	// omits; follow them under the remaining page budget.
	budget := e.cfg.PageLimit - 1
	for _, link := range res.ContactPages {
		if budget <= 0 {
			break
		}
		budget--
		text, err := e.fetchPage(ctx, link)
		if err != nil {
			log.Debug("enrich: contact page fetch failed",
				zap.String("url", link),
				zap.Error(err),
			)
			continue
		}
		res.Emails = mergeCapped(res.Emails, extractEmails(text))
		res.PhoneNumbers = mergeCapped(res.PhoneNumbers, extractPhones(text))
	}

	e.cache.SetDefault(target, res)
	return res
}

func (e *Enricher) sectorAllowed(sector string) bool {
	if len(e.sectors) == 0 {
		return true
	}
	_, ok := e.sectors[strings.ToLower(sector)]
	return ok
}

// fetchPage returns page text via the reader, falling back to the scrape
// API when the reader fails or returns an empty body.
func (e *Enricher) fetchPage(ctx context.Context, targetURL string) (string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := e.reader.Read(ctx, targetURL)
	if err == nil && strings.TrimSpace(resp.Data.Content) != "" {
		return resp.Data.Content, nil
	}

	if e.fallback == nil {
		if err == nil {
			return "", errEmptyPage
		}
		return "", err
	}

	zap.L().Debug("enrich: reader failed, trying scrape fallback",
		zap.String("url", targetURL),
		zap.Error(err),
	)
	scraped, ferr := e.fallback.Scrape(ctx, firecrawl.ScrapeRequest{
		URL:     targetURL,
		Formats: []string{"markdown"},
	})
	if ferr != nil {
		return "", ferr
	}
	if strings.TrimSpace(scraped.Data.Markdown) == "" {
		return "", errEmptyPage
	}
	return scraped.Data.Markdown, nil
}

// normalizeURL forces an https scheme so provider-supplied websites with
// bare hosts or http schemes dispatch consistently.
func normalizeURL(website string) string {
	w := strings.TrimSpace(website)
	switch {
	case strings.HasPrefix(w, "https://"):
		return w
	case strings.HasPrefix(w, "http://"):
		return "https://" + strings.TrimPrefix(w, "http://")
	default:
		return "https://" + w
	}
}

func mergeCapped(dst, extra []string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, v := range dst {
		seen[strings.ToLower(v)] = struct{}{}
	}
	for _, v := range extra {
		if len(dst) >= maxPerList {
			break
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}
