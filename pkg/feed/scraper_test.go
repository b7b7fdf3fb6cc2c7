package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const incidentMarkdown = `# Incident Reports

## Protocol X Exploit - January 12, 2026

Attackers drained $4M from the lending pools using a price oracle manipulation.

## Bridge Y Compromise (2026-01-10)

Validator keys were stolen and used to forge withdrawals.

### Minor Phishing Campaign

A fake support account targeted users on social media.
Reported on 2026-01-09.
`

func TestScraper_Scrape_Markdown(t *testing.T) {
	var gotAuth, gotURL string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotURL = r.URL.Query().Get("url")
		_ = json.NewEncoder(w).Encode(map[string]string{"markdown": incidentMarkdown})
	}))
	defer ts.Close()

	s := NewScraper(ts.URL, "secret-key", 5*time.Second)
	items, err := s.Scrape(context.Background(), "https://tracker.example.com/incidents", "incident-tracker")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "https://tracker.example.com/incidents", gotURL)

	assert.Equal(t, "Protocol X Exploit", items[0].Title, "date stripped from the heading")
	assert.Equal(t, "January 12, 2026", items[0].DateHint)
	assert.Contains(t, items[0].Body, "price oracle manipulation")
	assert.Empty(t, items[0].Link, "scraped sections have no per-item link")

	assert.Equal(t, "Bridge Y Compromise", items[1].Title)
	assert.Equal(t, "2026-01-10", items[1].DateHint)

	assert.Equal(t, "Minor Phishing Campaign", items[2].Title)
	assert.Empty(t, items[2].DateHint, "prose dates are not heading dates")
}

func TestScraper_Scrape_HTMLFallback(t *testing.T) {
	page := `<html><body>
<h1>Incidents</h1>
<h2>Exchange Z Hot Wallet Theft - 2026-01-11</h2>
<p>Roughly $2M moved to mixer addresses.</p>
<p>Withdrawals were suspended.</p>
<h2>Unrelated Footer</h2>
</body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"html": page})
	}))
	defer ts.Close()

	s := NewScraper(ts.URL, "", 5*time.Second)
	items, err := s.Scrape(context.Background(), "https://tracker.example.com", "incident-tracker")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Exchange Z Hot Wallet Theft", items[0].Title)
	assert.Equal(t, "2026-01-11", items[0].DateHint)
	assert.Contains(t, items[0].Body, "mixer addresses")
	assert.Contains(t, items[0].Body, "Withdrawals were suspended")
}

func TestScraper_Scrape_Errors(t *testing.T) {
	t.Run("unconfigured endpoint", func(t *testing.T) {
		s := NewScraper("", "", time.Second)
		_, err := s.Scrape(context.Background(), "https://x.example.com", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("upstream error status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer ts.Close()

		s := NewScraper(ts.URL, "", time.Second)
		_, err := s.Scrape(context.Background(), "https://x.example.com", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("empty payload", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer ts.Close()

		s := NewScraper(ts.URL, "", time.Second)
		_, err := s.Scrape(context.Background(), "https://x.example.com", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty response")
	})
}
