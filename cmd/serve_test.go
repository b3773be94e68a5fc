package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// stubRunner records the criteria it was invoked with and returns a fixed
// result.
type stubRunner struct {
	got    model.JobCriteria
	result model.JobResult
}

func (s *stubRunner) Run(_ context.Context, crit model.JobCriteria) model.JobResult {
	s.got = crit
	return s.result
}

func TestServeMux_Health(t *testing.T) {
	mux := newServeMux(&stubRunner{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeMux_JobsRunsPipeline(t *testing.T) {
	runner := &stubRunner{result: model.JobResult{
		JobID: "job-1",
		Leads: []model.LeadRecord{{Name: "Apollo", Address: "Chennai"}},
	}}
	mux := newServeMux(runner)

	body := `{"sector":"Healthcare","city":"Chennai","state":"Tamil Nadu","maxResults":5}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthcare", runner.got.Sector)
	assert.Equal(t, "Chennai", runner.got.City)
	assert.Equal(t, 5, runner.got.MaxResults)

	var leads []model.LeadRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "Apollo", leads[0].Name)
}

func TestServeMux_JobsBadBody(t *testing.T) {
	mux := newServeMux(&stubRunner{})

	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeMux_JobsBreakerOutput(t *testing.T) {
	runner := &stubRunner{result: model.JobResult{
		JobID: "job-2",
		Error: "Insufficient Apify credits: 0.10 USD remaining",
	}}
	mux := newServeMux(runner)

	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{"sector":"Retail"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out []model.ErrorRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Contains(t, out[0].Error, "Insufficient")
}
