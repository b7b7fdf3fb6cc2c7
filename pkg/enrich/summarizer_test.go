package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatwatch/threatwatch/pkg/config"
	"github.com/threatwatch/threatwatch/pkg/domain"
)

// openaiStub fakes the chat-completions endpoint
func openaiStub(t *testing.T, reply string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestSummarizer_Summarize(t *testing.T) {
	var captured map[string]any
	ts := openaiStub(t, "  Attackers exploited a flaw; patch now.  ", &captured)
	defer ts.Close()

	cfg := config.EnrichConfig{
		Enabled:  true,
		Endpoint: ts.URL,
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
	}
	s := NewSummarizer(cfg)

	article := &domain.Article{
		ID:       42,
		Title:    "RCE in widget server",
		Category: "vulnerability",
		Severity: domain.SeverityCritical,
		Body:     "full article body",
	}
	summary, err := s.Summarize(context.Background(), article)
	require.NoError(t, err)
	assert.Equal(t, "Attackers exploited a flaw; patch now.", summary, "whitespace trimmed")

	assert.Equal(t, "gpt-4o-mini", captured["model"])
	msgs := captured["messages"].([]any)
	require.Len(t, msgs, 2)
	user := msgs[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "RCE in widget server")
	assert.Contains(t, user, "critical")
}

func TestSummarizer_TruncatesLongBody(t *testing.T) {
	var captured map[string]any
	ts := openaiStub(t, "short summary", &captured)
	defer ts.Close()

	s := NewSummarizer(config.EnrichConfig{Endpoint: ts.URL, Model: "gpt-4o-mini"})

	long := make([]byte, 20000)
	for i := range long {
		long[i] = 'a'
	}
	_, err := s.Summarize(context.Background(), &domain.Article{ID: 1, Title: "t", Body: string(long)})
	require.NoError(t, err)

	user := captured["messages"].([]any)[1].(map[string]any)["content"].(string)
	assert.Less(t, len(user), 9000, "body capped before the prompt ships")
}

func TestSummarizer_EmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	s := NewSummarizer(config.EnrichConfig{Endpoint: ts.URL, Model: "gpt-4o-mini"})
	_, err := s.Summarize(context.Background(), &domain.Article{ID: 7, Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestSummarizer_BlankSummary(t *testing.T) {
	ts := openaiStub(t, "   ", nil)
	defer ts.Close()

	s := NewSummarizer(config.EnrichConfig{Endpoint: ts.URL, Model: "gpt-4o-mini"})
	_, err := s.Summarize(context.Background(), &domain.Article{ID: 7, Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank summary")
}

func TestSummarizer_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	s := NewSummarizer(config.EnrichConfig{Endpoint: ts.URL, Model: "gpt-4o-mini"})
	_, err := s.Summarize(context.Background(), &domain.Article{ID: 7, Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summarize article 7")
}
