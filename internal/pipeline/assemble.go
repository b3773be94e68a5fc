package pipeline

import (
	"github.com/sells-group/leadgen-cli/internal/enrich"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/search"
)

const missing = "N/A"

// assemble maps accepted hits and their enrichment results onto the output
// schema, truncated to the job's result cap. Provider fields that came back
// empty are stamped "N/A"; job-level city/postcode are echoed onto every
// record.
func assemble(hits []search.Hit, enrichments []enrich.Result, crit model.JobCriteria) []model.LeadRecord {
	n := len(hits)
	if n > crit.MaxResults {
		n = crit.MaxResults
	}

	leads := make([]model.LeadRecord, 0, n)
	for i := 0; i < n; i++ {
		h := hits[i]
		lead := model.LeadRecord{
			Name:        orMissing(h.Item.Title),
			Sector:      crit.Sector,
			Keyword:     crit.Keyword,
			City:        orMissing(crit.City),
			Postcode:    orMissing(crit.Postcode),
			Phone:       orMissing(h.Item.Phone),
			Website:     orMissing(h.Item.Website),
			Address:     orMissing(h.Item.Address),
			Rating:      h.Item.TotalScore,
			ReviewCount: h.Item.ReviewsCount,
			Category:    orMissing(h.Item.CategoryName),
			MapsURL:     orMissing(h.Item.URL),
			SearchQuery: h.SearchQuery,
		}
		if i < len(enrichments) {
			e := enrichments[i]
			lead.Emails = e.Emails
			lead.PhoneNumbers = e.PhoneNumbers
			lead.ContactPages = e.ContactPages
			lead.WebsiteSummary = e.WebsiteSummary
			lead.EnrichmentStatus = e.Status
		}
		leads = append(leads, lead)
	}
	return leads
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}
