package firecrawl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrape_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scrape", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var req ScrapeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://acme.example", req.URL)
		assert.Equal(t, []string{"markdown"}, req.Formats)

		_, _ = w.Write([]byte(`{"success":true,"data":{"url":"https://acme.example","markdown":"# Acme","statusCode":200}}`))
	}))
	defer srv.Close()

	client := NewClient("key", WithBaseURL(srv.URL))
	resp, err := client.Scrape(context.Background(), ScrapeRequest{
		URL:     "https://acme.example",
		Formats: []string{"markdown"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "# Acme", resp.Data.Markdown)
}

func TestScrape_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"payment required"}`, http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := NewClient("key", WithBaseURL(srv.URL))
	_, err := client.Scrape(context.Background(), ScrapeRequest{URL: "https://acme.example"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
}
