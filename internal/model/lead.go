package model

// DefaultSector is used when a job supplies no sector.
const DefaultSector = "Healthcare"

// DefaultMaxResults caps the output when a job supplies no count.
const DefaultMaxResults = 10

// JobCriteria is the structured input of one lead-generation job.
type JobCriteria struct {
	Sector     string `json:"sector"`
	Keyword    string `json:"keyword,omitempty"`
	Country    string `json:"country,omitempty"`
	State      string `json:"state,omitempty"`
	City       string `json:"city,omitempty"`
	Postcode   string `json:"postcode,omitempty"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// ApplyDefaults fills unset fields with job-level defaults.
func (c *JobCriteria) ApplyDefaults() {
	if c.Sector == "" {
		c.Sector = DefaultSector
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
}

// RegionAnchor is the composed location string used to scope searches,
// plus the resolved two-letter country code when the country name is
// recognized. Built once per job and never mutated.
type RegionAnchor struct {
	Display     string
	CountryCode string
}

// EnrichmentStatus describes the outcome of website enrichment for one lead.
type EnrichmentStatus string

const (
	EnrichmentSkipped   EnrichmentStatus = "skipped"
	EnrichmentAttempted EnrichmentStatus = "attempted"
	EnrichmentFailed    EnrichmentStatus = "failed"
)

// LeadRecord is a single business in the job output.
type LeadRecord struct {
	Name        string  `json:"name"`
	Sector      string  `json:"sector"`
	Keyword     string  `json:"keyword"`
	City        string  `json:"city"`
	Postcode    string  `json:"postcode"`
	Phone       string  `json:"phone"`
	Website     string  `json:"website"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Category    string  `json:"category"`
	MapsURL     string  `json:"googleMapsUrl"`
	SearchQuery string  `json:"searchQuery"`

	Emails           []string         `json:"emails,omitempty"`
	PhoneNumbers     []string         `json:"phoneNumbers,omitempty"`
	ContactPages     []string         `json:"contactPages,omitempty"`
	WebsiteSummary   string           `json:"websiteSummary,omitempty"`
	EnrichmentStatus EnrichmentStatus `json:"enrichmentStatus,omitempty"`
}

// ErrorRecord is emitted as the sole output item when a job terminates at
// the credit circuit breaker.
type ErrorRecord struct {
	Error string `json:"error"`
}

// JobResult is the outcome of one job invocation.
type JobResult struct {
	JobID string       `json:"jobId"`
	Leads []LeadRecord `json:"leads"`
	Error string       `json:"error,omitempty"`
}

// Output returns the value to emit for this job: the lead list, or a
// single-element error list when the job stopped at the credit breaker.
func (r *JobResult) Output() any {
	if r.Error != "" {
		return []ErrorRecord{{Error: r.Error}}
	}
	return r.Leads
}

// IdentityKey derives the job-wide deduplication key for a place. The key
// is the exact concatenation of name and address with no normalization, so
// records differing only in formatting are treated as distinct.
func IdentityKey(name, address string) string {
	return name + address
}
