package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// seedPair inserts one subscription and one article and returns their IDs
func seedPair(t *testing.T, database *DB) (subID, articleID int64) {
	t.Helper()
	ctx := context.Background()

	sub, err := database.UpsertSubscription(ctx, testSubscription("alice@example.com"))
	require.NoError(t, err)

	article := testArticle("ledger article")
	inserted, err := database.CreateArticle(ctx, article)
	require.NoError(t, err)
	require.True(t, inserted)

	return sub.ID, article.ID
}

func TestDB_RecordNotification_AtMostOnceSent(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	subID, articleID := seedPair(t, database)

	entry := &domain.NotificationEntry{
		SubscriptionID: subID,
		ArticleID:      articleID,
		Status:         domain.NotificationSent,
	}
	require.NoError(t, database.RecordNotification(ctx, entry))

	// a racing second run hits the partial unique index and is ignored
	require.NoError(t, database.RecordNotification(ctx, entry))

	count, err := database.CountNotifications(ctx, domain.NotificationSent)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDB_RecordNotification_FailedRowsAccumulate(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	subID, articleID := seedPair(t, database)

	failed := &domain.NotificationEntry{
		SubscriptionID: subID,
		ArticleID:      articleID,
		Status:         domain.NotificationFailed,
		Error:          "smtp down",
	}
	require.NoError(t, database.RecordNotification(ctx, failed))
	require.NoError(t, database.RecordNotification(ctx, failed))

	count, err := database.CountNotifications(ctx, domain.NotificationFailed)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "failures are appended, not deduplicated")

	// failures never block the eventual successful send
	sent := &domain.NotificationEntry{SubscriptionID: subID, ArticleID: articleID, Status: domain.NotificationSent}
	require.NoError(t, database.RecordNotification(ctx, sent))

	entries, err := database.ListNotifications(ctx, subID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestDB_SentArticleIDs(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	subID, articleID := seedPair(t, database)

	second := testArticle("second article")
	inserted, err := database.CreateArticle(ctx, second)
	require.NoError(t, err)
	require.True(t, inserted)

	// first article sent, second only failed
	require.NoError(t, database.RecordNotification(ctx, &domain.NotificationEntry{
		SubscriptionID: subID, ArticleID: articleID, Status: domain.NotificationSent}))
	require.NoError(t, database.RecordNotification(ctx, &domain.NotificationEntry{
		SubscriptionID: subID, ArticleID: second.ID, Status: domain.NotificationFailed, Error: "timeout"}))

	sent, err := database.SentArticleIDs(ctx, subID, []int64{articleID, second.ID})
	require.NoError(t, err)
	assert.True(t, sent[articleID])
	assert.False(t, sent[second.ID], "failed attempt leaves the pair retriable")

	t.Run("empty input", func(t *testing.T) {
		sent, err := database.SentArticleIDs(ctx, subID, nil)
		require.NoError(t, err)
		assert.Empty(t, sent)
	})

	t.Run("scoped per subscription", func(t *testing.T) {
		other, err := database.UpsertSubscription(ctx, testSubscription("bob@example.com"))
		require.NoError(t, err)
		sent, err := database.SentArticleIDs(ctx, other.ID, []int64{articleID})
		require.NoError(t, err)
		assert.Empty(t, sent)
	})
}
