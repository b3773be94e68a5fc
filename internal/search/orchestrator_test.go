package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sells-group/leadgen-cli/internal/geo"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/apify"
	apifymocks "github.com/sells-group/leadgen-cli/pkg/apify/mocks"
)

func fastConfig() Config {
	return Config{
		ActorID:      "compass/crawler-google-places",
		Deadline:     2 * time.Second,
		PollInterval: time.Millisecond,
	}
}

func place(name, address string) apify.PlaceItem {
	return apify.PlaceItem{Title: name, Address: address}
}

func running(id string) *apify.Run {
	return &apify.Run{ID: id, Status: "RUNNING", DefaultDatasetID: "ds-" + id}
}

func succeeded(id string) *apify.Run {
	return &apify.Run{ID: id, Status: "SUCCEEDED", DefaultDatasetID: "ds-" + id}
}

func TestCollect_DedupAcrossTerms(t *testing.T) {
	t.Parallel()

	client := apifymocks.NewMockClient(t)

	// Two sessions return overlapping records; exactly 3 distinct leads
	// must come out, and the third term must never start a session.
	client.On("StartRun", mock.Anything, "compass/crawler-google-places", mock.Anything).
		Return(&apify.Run{ID: "r1", Status: "RUNNING", DefaultDatasetID: "ds-r1"}, nil).Once()
	client.On("StartRun", mock.Anything, "compass/crawler-google-places", mock.Anything).
		Return(&apify.Run{ID: "r2", Status: "RUNNING", DefaultDatasetID: "ds-r2"}, nil).Once()

	// First session finishes with only two distinct places.
	client.On("GetRun", mock.Anything, "r1").Return(succeeded("r1"), nil)
	client.On("DatasetItems", mock.Anything, "ds-r1").
		Return([]apify.PlaceItem{
			place("Apollo", "Chennai, Tamil Nadu"),
			place("Fortis", "Chennai, Tamil Nadu"),
		}, nil)

	// Second session re-serves both plus one new place.
	client.On("GetRun", mock.Anything, "r2").Return(running("r2"), nil)
	client.On("DatasetItems", mock.Anything, "ds-r2").
		Return([]apify.PlaceItem{
			place("Apollo", "Chennai, Tamil Nadu"),
			place("Fortis", "Chennai, Tamil Nadu"),
			place("MIOT", "Chennai, Tamil Nadu"),
		}, nil)

	client.On("AbortRun", mock.Anything, "r1").Return(nil).Once()
	client.On("AbortRun", mock.Anything, "r2").Return(nil).Once()

	o := New(client, fastConfig())
	hits := o.Collect(context.Background(),
		[]string{"clinics", "hospitals", "doctors"},
		model.RegionAnchor{Display: "Chennai, Tamil Nadu"},
		geo.Criteria{},
		3,
	)

	assert.Len(t, hits, 3)
	names := map[string]bool{}
	for _, h := range hits {
		names[h.Item.Title] = true
	}
	assert.Len(t, names, 3, "every accepted hit has a distinct identity")
}

func TestCollect_GeoFilteredRecordsDropped(t *testing.T) {
	t.Parallel()

	client := apifymocks.NewMockClient(t)
	client.On("StartRun", mock.Anything, mock.Anything, mock.Anything).
		Return(&apify.Run{ID: "r1", Status: "RUNNING", DefaultDatasetID: "ds-r1"}, nil).Once()
	client.On("GetRun", mock.Anything, "r1").Return(succeeded("r1"), nil)
	client.On("DatasetItems", mock.Anything, "ds-r1").
		Return([]apify.PlaceItem{
			place("Apollo", "Chennai, Tamil Nadu"),
			place("Wockhardt", "Mumbai, Maharashtra"),
			place("NoAddress", ""),
		}, nil)
	client.On("AbortRun", mock.Anything, "r1").Return(nil).Once()

	o := New(client, fastConfig())
	hits := o.Collect(context.Background(),
		[]string{"hospitals"},
		model.RegionAnchor{Display: "Chennai, Tamil Nadu"},
		geo.Criteria{State: "Tamil Nadu", City: "Chennai"},
		5,
	)

	assert.Len(t, hits, 1)
	assert.Equal(t, "Apollo", hits[0].Item.Title)
}

func TestCollect_DeadlineExpiresAbortsOnce(t *testing.T) {
	t.Parallel()

	client := apifymocks.NewMockClient(t)
	client.On("StartRun", mock.Anything, mock.Anything, mock.Anything).
		Return(&apify.Run{ID: "r1", Status: "RUNNING", DefaultDatasetID: "ds-r1"}, nil).Once()
	client.On("GetRun", mock.Anything, "r1").Return(running("r1"), nil)
	client.On("DatasetItems", mock.Anything, "ds-r1").Return([]apify.PlaceItem{}, nil)
	// AssertExpectations fails the test if AbortRun runs any number of
	// times other than exactly once.
	client.On("AbortRun", mock.Anything, "r1").Return(nil).Once()

	cfg := fastConfig()
	cfg.Deadline = 30 * time.Millisecond

	o := New(client, cfg)
	start := time.Now()
	hits := o.Collect(context.Background(), []string{"only-term", "never-run"},
		model.RegionAnchor{}, geo.Criteria{}, 10)

	assert.Empty(t, hits)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCollect_StartRunFailureMovesToNextTerm(t *testing.T) {
	t.Parallel()

	client := apifymocks.NewMockClient(t)
	client.On("StartRun", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("actor not found")).Once()
	client.On("StartRun", mock.Anything, mock.Anything, mock.Anything).
		Return(&apify.Run{ID: "r2", Status: "RUNNING", DefaultDatasetID: "ds-r2"}, nil).Once()
	client.On("GetRun", mock.Anything, "r2").Return(running("r2"), nil)
	client.On("DatasetItems", mock.Anything, "ds-r2").
		Return([]apify.PlaceItem{place("Apollo", "Chennai")}, nil)
	client.On("AbortRun", mock.Anything, "r2").Return(nil).Once()

	o := New(client, fastConfig())
	hits := o.Collect(context.Background(), []string{"a", "b"},
		model.RegionAnchor{}, geo.Criteria{}, 1)

	assert.Len(t, hits, 1)
}

func TestCollect_EmptySessionProceedsToNextTerm(t *testing.T) {
	t.Parallel()

	client := apifymocks.NewMockClient(t)
	// First session finishes with zero results; the loop moves on and the
	// second session supplies the lead.
	client.On("StartRun", mock.Anything, mock.Anything, mock.Anything).
		Return(&apify.Run{ID: "r1", Status: "RUNNING", DefaultDatasetID: "ds-r1"}, nil).Once()
	client.On("GetRun", mock.Anything, "r1").Return(succeeded("r1"), nil)
	client.On("DatasetItems", mock.Anything, "ds-r1").Return([]apify.PlaceItem{}, nil)
	client.On("AbortRun", mock.Anything, "r1").Return(nil).Once()

	client.On("StartRun", mock.Anything, mock.Anything, mock.Anything).
		Return(&apify.Run{ID: "r2", Status: "RUNNING", DefaultDatasetID: "ds-r2"}, nil).Once()
	client.On("GetRun", mock.Anything, "r2").Return(running("r2"), nil)
	client.On("DatasetItems", mock.Anything, "ds-r2").
		Return([]apify.PlaceItem{place("Apollo", "Chennai")}, nil)
	client.On("AbortRun", mock.Anything, "r2").Return(nil).Once()

	o := New(client, fastConfig())
	hits := o.Collect(context.Background(), []string{"a", "b"},
		model.RegionAnchor{}, geo.Criteria{}, 1)

	assert.Len(t, hits, 1)
	assert.Equal(t, "Apollo", hits[0].Item.Title)
}

func TestCollect_CountryLockAndSearchString(t *testing.T) {
	t.Parallel()

	var gotInput apify.RunInput
	client := apifymocks.NewMockClient(t)
	client.On("StartRun", mock.Anything, mock.Anything, mock.MatchedBy(func(in apify.RunInput) bool {
		gotInput = in
		return true
	})).Return(&apify.Run{ID: "r1", Status: "RUNNING", DefaultDatasetID: "ds-r1"}, nil).Once()
	client.On("GetRun", mock.Anything, "r1").Return(running("r1"), nil)
	client.On("DatasetItems", mock.Anything, "ds-r1").
		Return([]apify.PlaceItem{place("Apollo", "Chennai")}, nil)
	client.On("AbortRun", mock.Anything, "r1").Return(nil).Once()

	cfg := fastConfig()
	cfg.CountryLock = true
	cfg.Preposition = "near"

	o := New(client, cfg)
	o.Collect(context.Background(), []string{"clinics"},
		model.RegionAnchor{Display: "Chennai", CountryCode: "in"},
		geo.Criteria{}, 1)

	assert.Equal(t, []string{"clinics near Chennai"}, gotInput.SearchStringsArray)
	assert.Equal(t, "in", gotInput.CountryCode)
	assert.Equal(t, "en", gotInput.Language)
	assert.False(t, gotInput.IncludeWebResults)
	assert.Zero(t, gotInput.MaxReviews)
}

func TestResultCap(t *testing.T) {
	t.Parallel()

	o := New(apifymocks.NewMockClient(t), Config{ResultMultiplier: 2, ResultCeiling: 50})
	assert.Equal(t, 10, o.resultCap(5))
	assert.Equal(t, 50, o.resultCap(100))
	assert.Equal(t, 1, o.resultCap(0))
}

func TestBuildSearchString(t *testing.T) {
	t.Parallel()

	o := New(apifymocks.NewMockClient(t), Config{})
	assert.Equal(t, "clinics", o.buildSearchString("clinics", ""))
	assert.Equal(t, "clinics in Pune", o.buildSearchString("clinics", "Pune"))
}
