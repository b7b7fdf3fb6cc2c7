package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// RecordNotification appends one ledger row for a (subscription,
// article) dispatch attempt. A second "sent" row for the same pair hits
// the partial unique index and is silently ignored, keeping the
// at-most-once guarantee even across racing scheduler invocations.
// Failed rows are always appended; they don't block later retries.
func (db *DB) RecordNotification(ctx context.Context, entry *domain.NotificationEntry) error {
	query := `
		INSERT INTO notification_log (subscription_id, article_id, status, error)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`
	if _, err := db.conn.ExecContext(ctx, query, entry.SubscriptionID, entry.ArticleID,
		string(entry.Status), entry.Error); err != nil {
		return fmt.Errorf("record notification: %w", err)
	}
	return nil
}

// SentArticleIDs returns the subset of the given article IDs that
// already have a successful ledger entry for the subscription
func (db *DB) SentArticleIDs(ctx context.Context, subscriptionID int64, articleIDs []int64) (map[int64]bool, error) {
	if len(articleIDs) == 0 {
		return map[int64]bool{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT article_id FROM notification_log
		WHERE subscription_id = ? AND status = 'sent' AND article_id IN (?)
	`, subscriptionID, articleIDs)
	if err != nil {
		return nil, fmt.Errorf("build sent lookup: %w", err)
	}

	var ids []int64
	if err := db.conn.SelectContext(ctx, &ids, db.conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("lookup sent articles: %w", err)
	}

	sent := make(map[int64]bool, len(ids))
	for _, id := range ids {
		sent[id] = true
	}
	return sent, nil
}

// ListNotifications retrieves ledger rows for a subscription, newest first
func (db *DB) ListNotifications(ctx context.Context, subscriptionID int64, limit int) ([]*domain.NotificationEntry, error) {
	query := `
		SELECT * FROM notification_log
		WHERE subscription_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	var rows []NotificationEntry
	if err := db.conn.SelectContext(ctx, &rows, query, subscriptionID, limit); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	entries := make([]*domain.NotificationEntry, len(rows))
	for i, r := range rows {
		entries[i] = &domain.NotificationEntry{
			ID:             r.ID,
			SubscriptionID: r.SubscriptionID,
			ArticleID:      r.ArticleID,
			Status:         domain.NotificationStatus(r.Status),
			Error:          r.Error,
			CreatedAt:      r.CreatedAt,
		}
	}
	return entries, nil
}

// CountNotifications returns the number of ledger rows with the given status
func (db *DB) CountNotifications(ctx context.Context, status domain.NotificationStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notification_log WHERE status = ?`
	if err := db.conn.GetContext(ctx, &count, query, string(status)); err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return count, nil
}
