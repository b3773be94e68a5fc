package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadgen-cli/internal/enrich"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/search"
	"github.com/sells-group/leadgen-cli/pkg/apify"
)

func TestAssemble_MissingProviderFieldsDefaulted(t *testing.T) {
	t.Parallel()

	hits := []search.Hit{{
		Item:        apify.PlaceItem{Title: "Apollo", Address: "Chennai"},
		SearchQuery: "clinics in Chennai",
	}}
	crit := model.JobCriteria{Sector: "Healthcare", MaxResults: 5}

	leads := assemble(hits, nil, crit)

	assert.Len(t, leads, 1)
	lead := leads[0]
	assert.Equal(t, "Apollo", lead.Name)
	assert.Equal(t, "N/A", lead.Phone)
	assert.Equal(t, "N/A", lead.Website)
	assert.Equal(t, "N/A", lead.City)
	assert.Equal(t, "N/A", lead.Postcode)
	assert.Equal(t, "N/A", lead.Category)
	assert.Equal(t, "N/A", lead.MapsURL)
	assert.Equal(t, "clinics in Chennai", lead.SearchQuery)
	assert.Zero(t, lead.Rating)
	assert.Empty(t, lead.EnrichmentStatus)
}

func TestAssemble_TruncatesAndPairsEnrichments(t *testing.T) {
	t.Parallel()

	hits := []search.Hit{
		{Item: apify.PlaceItem{Title: "A", Address: "1"}},
		{Item: apify.PlaceItem{Title: "B", Address: "2"}},
		{Item: apify.PlaceItem{Title: "C", Address: "3"}},
	}
	enrichments := []enrich.Result{
		{Status: model.EnrichmentAttempted, Emails: []string{"a@x.example"}},
		{Status: model.EnrichmentSkipped},
	}
	crit := model.JobCriteria{Sector: "Retail", City: "Pune", MaxResults: 2}

	leads := assemble(hits, enrichments, crit)

	assert.Len(t, leads, 2)
	assert.Equal(t, []string{"a@x.example"}, leads[0].Emails)
	assert.Equal(t, model.EnrichmentAttempted, leads[0].EnrichmentStatus)
	assert.Equal(t, model.EnrichmentSkipped, leads[1].EnrichmentStatus)
	assert.Equal(t, "Pune", leads[0].City)
}
