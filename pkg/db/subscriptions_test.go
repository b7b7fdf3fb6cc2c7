package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

func testSubscription(email string) *domain.Subscription {
	return &domain.Subscription{
		Email:        email,
		Name:         "Alice",
		Categories:   []string{"malware"},
		Frequency:    domain.FrequencyDaily,
		MinSeverity:  domain.SeverityHigh,
		LocalHour:    9,
		Active:       true,
		Verification: domain.VerificationPending,
	}
}

func TestDB_UpsertSubscription(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	stored, err := database.UpsertSubscription(ctx, testSubscription("alice@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)
	assert.True(t, stored.Active)
	assert.False(t, stored.Verified())

	count, err := database.CountSubscriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// re-submission replaces preferences without touching verification
	require.NoError(t, database.VerifySubscription(ctx, stored.ID))

	update := testSubscription("alice@example.com")
	update.Categories = []string{"phishing", "data-breach"}
	update.Frequency = domain.FrequencyWeekly
	stored, err = database.UpsertSubscription(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, []string{"phishing", "data-breach"}, stored.Categories)
	assert.Equal(t, domain.FrequencyWeekly, stored.Frequency)
	assert.True(t, stored.Verified(), "verification survives the upsert")

	count, err = database.CountSubscriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "keyed by address, no second row")
}

func TestDB_UpsertSubscription_FreshRecordStartsPending(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	// callers are not required to set the verification state themselves
	sub := testSubscription("dave@example.com")
	sub.Verification = ""
	stored, err := database.UpsertSubscription(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, stored.Verification)
	assert.False(t, stored.Verified())

	got, err := database.GetSubscription(ctx, "dave@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, got.Verification)
}

func TestDB_UpsertSubscription_ReactivatesUnsubscribed(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	stored, err := database.UpsertSubscription(ctx, testSubscription("bob@example.com"))
	require.NoError(t, err)

	require.NoError(t, database.DeactivateSubscription(ctx, stored.ID))
	got, err := database.GetSubscription(ctx, "bob@example.com")
	require.NoError(t, err)
	require.False(t, got.Active)

	stored, err = database.UpsertSubscription(ctx, testSubscription("bob@example.com"))
	require.NoError(t, err)
	assert.True(t, stored.Active, "re-subscribing turns delivery back on")
}

func TestDB_TokenLifecycle(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	stored, err := database.UpsertSubscription(ctx, testSubscription("carol@example.com"))
	require.NoError(t, err)

	expires := time.Now().UTC().Add(48 * time.Hour)
	require.NoError(t, database.RotateToken(ctx, "carol@example.com", "tok-1", expires))

	got, err := database.GetSubscriptionByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)

	t.Run("unknown token", func(t *testing.T) {
		_, err := database.GetSubscriptionByToken(ctx, "no-such-token")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty token never matches blank rows", func(t *testing.T) {
		_, err := database.GetSubscriptionByToken(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired token", func(t *testing.T) {
		require.NoError(t, database.RotateToken(ctx, "carol@example.com", "tok-2", time.Now().UTC().Add(-time.Minute)))
		_, err := database.GetSubscriptionByToken(ctx, "tok-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rotation invalidates the previous token", func(t *testing.T) {
		_, err := database.GetSubscriptionByToken(ctx, "tok-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rotate for unknown address", func(t *testing.T) {
		err := database.RotateToken(ctx, "nobody@example.com", "tok-3", expires)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDB_ListDispatchable(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	// verified + active daily subscriber: dispatchable
	ready, err := database.UpsertSubscription(ctx, testSubscription("ready@example.com"))
	require.NoError(t, err)
	require.NoError(t, database.VerifySubscription(ctx, ready.ID))

	// pending subscriber: never dispatched
	_, err = database.UpsertSubscription(ctx, testSubscription("pending@example.com"))
	require.NoError(t, err)

	// verified but unsubscribed
	gone, err := database.UpsertSubscription(ctx, testSubscription("gone@example.com"))
	require.NoError(t, err)
	require.NoError(t, database.VerifySubscription(ctx, gone.ID))
	require.NoError(t, database.DeactivateSubscription(ctx, gone.ID))

	// verified immediate subscriber, different cadence
	immediate := testSubscription("oncall@example.com")
	immediate.Frequency = domain.FrequencyImmediate
	stored, err := database.UpsertSubscription(ctx, immediate)
	require.NoError(t, err)
	require.NoError(t, database.VerifySubscription(ctx, stored.ID))

	daily, err := database.ListDispatchable(ctx, domain.FrequencyDaily)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "ready@example.com", daily[0].Email)

	imm, err := database.ListDispatchable(ctx, domain.FrequencyImmediate)
	require.NoError(t, err)
	require.Len(t, imm, 1)
	assert.Equal(t, "oncall@example.com", imm[0].Email)
}

func TestDB_UpdateLastNotified(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	stored, err := database.UpsertSubscription(ctx, testSubscription("alice@example.com"))
	require.NoError(t, err)
	require.True(t, stored.LastNotified.IsZero())

	ts := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, database.UpdateLastNotified(ctx, stored.ID, ts))

	got, err := database.GetSubscription(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, ts, got.LastNotified.UTC())
}
