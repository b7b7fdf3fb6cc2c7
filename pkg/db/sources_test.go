package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

func TestDB_CreateFeedSource_IdempotentByName(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	src := &domain.FeedSource{Name: "vendor-blog", URL: "https://vendor.example.com/rss", Kind: domain.SourceFeed, Enabled: true}
	require.NoError(t, database.CreateFeedSource(ctx, src))
	assert.NotZero(t, src.ID)

	// re-declaring the same name on restart changes nothing
	redeclared := &domain.FeedSource{Name: "vendor-blog", URL: "https://changed.example.com/rss", Kind: domain.SourceFeed, Enabled: true}
	require.NoError(t, database.CreateFeedSource(ctx, redeclared))

	got, err := database.GetFeedSource(ctx, "vendor-blog")
	require.NoError(t, err)
	assert.Equal(t, "https://vendor.example.com/rss", got.URL)
}

func TestDB_GetEnabledSources(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.CreateFeedSource(ctx, &domain.FeedSource{
		Name: "beta-feed", URL: "https://b.example.com/rss", Kind: domain.SourceFeed, Enabled: true}))
	require.NoError(t, database.CreateFeedSource(ctx, &domain.FeedSource{
		Name: "alpha-scrape", URL: "https://a.example.com", Kind: domain.SourceScrape, Enabled: true}))
	require.NoError(t, database.CreateFeedSource(ctx, &domain.FeedSource{
		Name: "disabled-feed", URL: "https://d.example.com/rss", Kind: domain.SourceFeed, Enabled: false}))

	sources, err := database.GetEnabledSources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "alpha-scrape", sources[0].Name, "ordered by name")
	assert.Equal(t, domain.SourceScrape, sources[0].Kind)
	assert.Equal(t, "beta-feed", sources[1].Name)
	assert.Nil(t, sources[0].LastFetched, "never fetched yet")
}

func TestDB_SourceErrorTracking(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	src := &domain.FeedSource{Name: "flaky", URL: "https://flaky.example.com/rss", Kind: domain.SourceFeed, Enabled: true}
	require.NoError(t, database.CreateFeedSource(ctx, src))

	require.NoError(t, database.UpdateSourceError(ctx, src.ID, "connection refused"))
	require.NoError(t, database.UpdateSourceError(ctx, src.ID, "connection refused"))

	got, err := database.GetFeedSource(ctx, "flaky")
	require.NoError(t, err)
	assert.Equal(t, "connection refused", got.LastError)
	assert.Equal(t, 2, got.ErrorCount)

	// a successful fetch clears the error state
	ts := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, database.UpdateSourceFetched(ctx, src.ID, ts))

	got, err = database.GetFeedSource(ctx, "flaky")
	require.NoError(t, err)
	assert.Empty(t, got.LastError)
	assert.Zero(t, got.ErrorCount)
	require.NotNil(t, got.LastFetched)
	assert.Equal(t, ts, got.LastFetched.UTC())
}

func TestDB_SeedKeywordRules(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	rules := []domain.KeywordRule{
		{Keyword: "ransomware", Category: "ransomware", Weight: 3},
		{Keyword: "phishing", Category: "phishing", Weight: 2},
	}
	require.NoError(t, database.SeedKeywordRules(ctx, rules))

	got, err := database.ListKeywordRules(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// seeding again with a different set is a no-op, operator edits win
	require.NoError(t, database.SeedKeywordRules(ctx, []domain.KeywordRule{
		{Keyword: "other", Category: "other", Weight: 1},
	}))
	got, err = database.ListKeywordRules(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
