// Package apify provides a client for the Apify platform operations the
// lead pipeline consumes: starting an actor run, reading its dataset,
// aborting the run, and checking account usage limits.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.apify.com/v2"

// Client defines the Apify API operations used by the pipeline.
type Client interface {
	// StartRun starts an actor run and returns immediately; results
	// accumulate in the run's default dataset.
	StartRun(ctx context.Context, actorID string, input RunInput) (*Run, error)
	// GetRun returns the current state of an actor run.
	GetRun(ctx context.Context, runID string) (*Run, error)
	// DatasetItems reads the current contents of a dataset. The read is
	// idempotent and cumulative: it always returns every item seen so far.
	DatasetItems(ctx context.Context, datasetID string) ([]PlaceItem, error)
	// AbortRun stops a running actor run.
	AbortRun(ctx context.Context, runID string) error
	// Limits returns the account's usage limits and current consumption.
	Limits(ctx context.Context) (*AccountLimits, error)
}

// RunInput is the input contract of the Google Maps scraper actor.
type RunInput struct {
	SearchStringsArray        []string `json:"searchStringsArray"`
	MaxCrawledPlacesPerSearch int      `json:"maxCrawledPlacesPerSearch"`
	MaxConcurrency            int      `json:"maxConcurrency,omitempty"`
	Language                  string   `json:"language,omitempty"`
	CountryCode               string   `json:"countryCode,omitempty"`
	IncludeWebResults         bool     `json:"includeWebResults"`
	MaxReviews                int      `json:"maxReviews"`
	MaxImages                 int      `json:"maxImages"`
}

// Run identifies a started actor run and its result dataset.
type Run struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

// Finished reports whether the run has reached a terminal status and its
// dataset can no longer grow.
func (r *Run) Finished() bool {
	switch r.Status {
	case "SUCCEEDED", "FAILED", "TIMED-OUT", "ABORTED":
		return true
	}
	return false
}

// PlaceItem is one place record produced by the scraper actor.
type PlaceItem struct {
	Title        string  `json:"title"`
	Phone        string  `json:"phone"`
	Website      string  `json:"website"`
	Address      string  `json:"address"`
	TotalScore   float64 `json:"totalScore"`
	ReviewsCount int     `json:"reviewsCount"`
	CategoryName string  `json:"categoryName"`
	URL          string  `json:"url"`
	PlaceID      string  `json:"placeId"`
}

// AccountLimits reports account usage against plan limits.
type AccountLimits struct {
	Current CurrentUsage `json:"current"`
	Limits  PlanLimits   `json:"limits"`
}

// CurrentUsage holds the account's consumption this billing cycle.
type CurrentUsage struct {
	MonthlyUsageUSD float64 `json:"monthlyUsageUsd"`
}

// PlanLimits holds the account's plan ceilings.
type PlanLimits struct {
	MaxMonthlyUsageUSD float64 `json:"maxMonthlyUsageUsd"`
}

// RemainingUSD returns the unspent portion of the monthly usage allowance.
func (l *AccountLimits) RemainingUSD() float64 {
	return l.Limits.MaxMonthlyUsageUSD - l.Current.MonthlyUsageUSD
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient creates an Apify API client.
func NewClient(token string, opts ...Option) Client {
	c := &httpClient{
		token:   token,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// dataEnvelope is the {"data": ...} wrapper most Apify endpoints use.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *httpClient) StartRun(ctx context.Context, actorID string, input RunInput) (*Run, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, eris.Wrap(err, "apify: marshal run input")
	}

	// Actor IDs use "user/name" on the platform but "user~name" in paths.
	path := fmt.Sprintf("/acts/%s/runs", strings.ReplaceAll(actorID, "/", "~"))

	raw, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "apify: start run")
	}

	var env dataEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, eris.Wrap(err, "apify: unmarshal run envelope")
	}
	var run Run
	if err := json.Unmarshal(env.Data, &run); err != nil {
		return nil, eris.Wrap(err, "apify: unmarshal run")
	}
	return &run, nil
}

func (c *httpClient) GetRun(ctx context.Context, runID string) (*Run, error) {
	path := fmt.Sprintf("/actor-runs/%s", runID)

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, eris.Wrap(err, fmt.Sprintf("apify: get run %s", runID))
	}

	var env dataEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, eris.Wrap(err, "apify: unmarshal run envelope")
	}
	var run Run
	if err := json.Unmarshal(env.Data, &run); err != nil {
		return nil, eris.Wrap(err, "apify: unmarshal run")
	}
	return &run, nil
}

func (c *httpClient) DatasetItems(ctx context.Context, datasetID string) ([]PlaceItem, error) {
	path := fmt.Sprintf("/datasets/%s/items?clean=true&format=json", datasetID)

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, eris.Wrap(err, fmt.Sprintf("apify: read dataset %s", datasetID))
	}

	// Dataset items are returned as a bare JSON array, not enveloped.
	var items []PlaceItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, eris.Wrap(err, "apify: unmarshal dataset items")
	}
	return items, nil
}

func (c *httpClient) AbortRun(ctx context.Context, runID string) error {
	path := fmt.Sprintf("/actor-runs/%s/abort", runID)

	if _, err := c.do(ctx, http.MethodPost, path, nil); err != nil {
		return eris.Wrap(err, fmt.Sprintf("apify: abort run %s", runID))
	}
	return nil
}

func (c *httpClient) Limits(ctx context.Context) (*AccountLimits, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users/me/limits", nil)
	if err != nil {
		return nil, eris.Wrap(err, "apify: get account limits")
	}

	var env dataEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, eris.Wrap(err, "apify: unmarshal limits envelope")
	}
	var limits AccountLimits
	if err := json.Unmarshal(env.Data, &limits); err != nil {
		return nil, eris.Wrap(err, "apify: unmarshal limits")
	}
	return &limits, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, eris.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, eris.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
