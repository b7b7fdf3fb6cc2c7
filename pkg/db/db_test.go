package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// setupTestDB creates a fresh on-disk database in a temp dir
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	database, err := New(Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, database.Close()) })
	return database
}

// testArticle returns an article ready for insertion, unique per title
func testArticle(title string) *domain.Article {
	link := "https://example.com/" + title
	return &domain.Article{
		Fingerprint: domain.Fingerprint(title, link),
		Title:       title,
		Summary:     "summary of " + title,
		Link:        link,
		Category:    "malware",
		Severity:    domain.SeverityHigh,
		Published:   time.Now().UTC().Add(-time.Hour),
	}
}

func TestDB_NewAndPing(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, database.Ping(context.Background()))

	// schema application is idempotent
	require.NoError(t, database.InitSchema(context.Background()))
}

func TestDB_CreateArticle_DedupByFingerprint(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	article := testArticle("zero-day in widget server")
	inserted, err := database.CreateArticle(ctx, article)
	require.NoError(t, err)
	require.True(t, inserted)
	assert.NotZero(t, article.ID)

	// same fingerprint from a second ingestion run
	dup := testArticle("zero-day in widget server")
	inserted, err = database.CreateArticle(ctx, dup)
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate fingerprint is a silent no-op")
	assert.Zero(t, dup.ID, "id only assigned on real insert")

	count, err := database.CountArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := database.GetArticleByFingerprint(ctx, article.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, "zero-day in widget server", got.Title)
}

func TestDB_GetArticle_NotFound(t *testing.T) {
	database := setupTestDB(t)

	_, err := database.GetArticle(context.Background(), 12345)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDB_ListArticles_Filters(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []struct {
		title    string
		category string
		severity domain.Severity
		age      time.Duration
	}{
		{"critical rce", "malware", domain.SeverityCritical, time.Hour},
		{"high phish", "phishing", domain.SeverityHigh, 2 * time.Hour},
		{"medium leak", "data-breach", domain.SeverityMedium, 3 * time.Hour},
		{"old info note", "malware", domain.SeverityInfo, 90 * 24 * time.Hour},
	}
	for _, s := range seed {
		a := testArticle(s.title)
		a.Category = s.category
		a.Severity = s.severity
		a.Published = now.Add(-s.age)
		inserted, err := database.CreateArticle(ctx, a)
		require.NoError(t, err)
		require.True(t, inserted)
	}

	t.Run("no filter, newest first", func(t *testing.T) {
		articles, err := database.ListArticles(ctx, ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, articles, 4)
		assert.Equal(t, "critical rce", articles[0].Title)
	})

	t.Run("category", func(t *testing.T) {
		articles, err := database.ListArticles(ctx, ArticleFilter{Category: "phishing"})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "high phish", articles[0].Title)
	})

	t.Run("severity threshold is inclusive by rank", func(t *testing.T) {
		articles, err := database.ListArticles(ctx, ArticleFilter{MaxSeverity: domain.SeverityHigh})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "critical rce", articles[0].Title)
		assert.Equal(t, "high phish", articles[1].Title)
	})

	t.Run("published window", func(t *testing.T) {
		articles, err := database.ListArticles(ctx, ArticleFilter{
			Since: now.Add(-4 * time.Hour),
			Until: now.Add(-90 * time.Minute),
		})
		require.NoError(t, err)
		require.Len(t, articles, 2)
	})

	t.Run("limit", func(t *testing.T) {
		articles, err := database.ListArticles(ctx, ArticleFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, articles, 2)
	})
}

func TestDB_ArticleProcessingLifecycle(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	article := testArticle("needs body")
	inserted, err := database.CreateArticle(ctx, article)
	require.NoError(t, err)
	require.True(t, inserted)

	// fresh article has no body, the extraction worker picks it up
	pending, err := database.GetArticlesNeedingBody(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, database.UpdateArticleBody(ctx, article.ID, "full extracted text"))

	pending, err = database.GetArticlesNeedingBody(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// with a body it becomes enrichment work
	unprocessed, err := database.GetUnprocessedArticles(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unprocessed, 1)
	assert.Equal(t, "full extracted text", unprocessed[0].Body)

	require.NoError(t, database.UpdateArticleSummary(ctx, article.ID, "ai summary"))

	unprocessed, err = database.GetUnprocessedArticles(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, unprocessed)

	got, err := database.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "ai summary", got.Summary)
	assert.True(t, got.Processed)
}

func TestDB_ListRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	article := testArticle("tagged article")
	article.Tags = []string{"kubernetes", "rce"}
	article.Technologies = []string{"kubernetes"}
	article.SourceLinks = []string{"https://a.example.com", "https://b.example.com"}
	inserted, err := database.CreateArticle(ctx, article)
	require.NoError(t, err)
	require.True(t, inserted)

	got, err := database.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"kubernetes", "rce"}, got.Tags)
	assert.Equal(t, []string{"kubernetes"}, got.Technologies)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, got.SourceLinks)
}
