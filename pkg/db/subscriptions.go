package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// UpsertSubscription creates or updates a subscription keyed by the
// normalized contact address. A fresh record starts in the pending
// verification state. On re-submission preferences are
// replaced, the record is reactivated, and the verification state and
// token are preserved, so an already-verified subscriber never has to
// re-verify. Returns the stored record.
func (db *DB) UpsertSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	row := subscriptionFromDomain(sub)
	if row.Verification == "" {
		row.Verification = string(domain.VerificationPending)
	}

	query := `
		INSERT INTO subscriptions (
			email, name, categories, technologies, frequency, min_severity,
			local_hour, utc_offset, weekday, active, verification, token, token_expires
		) VALUES (
			:email, :name, :categories, :technologies, :frequency, :min_severity,
			:local_hour, :utc_offset, :weekday, 1, :verification, :token, :token_expires
		)
		ON CONFLICT(email) DO UPDATE SET
			name = excluded.name,
			categories = excluded.categories,
			technologies = excluded.technologies,
			frequency = excluded.frequency,
			min_severity = excluded.min_severity,
			local_hour = excluded.local_hour,
			utc_offset = excluded.utc_offset,
			weekday = excluded.weekday,
			active = 1,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := db.conn.NamedExecContext(ctx, query, row); err != nil {
		return nil, fmt.Errorf("upsert subscription: %w", err)
	}

	return db.GetSubscription(ctx, sub.Email)
}

// GetSubscription retrieves a subscription by normalized contact address
func (db *DB) GetSubscription(ctx context.Context, email string) (*domain.Subscription, error) {
	var row Subscription
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM subscriptions WHERE email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subscription %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return row.ToDomain(), nil
}

// GetSubscriptionByToken retrieves a subscription by its one-time token.
// Expired tokens are not matched.
func (db *DB) GetSubscriptionByToken(ctx context.Context, token string) (*domain.Subscription, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token: %w", ErrNotFound)
	}
	var row Subscription
	query := `SELECT * FROM subscriptions WHERE token = ? AND token_expires > ?`
	err := db.conn.GetContext(ctx, &row, query, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("token: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get subscription by token: %w", err)
	}
	return row.ToDomain(), nil
}

// RotateToken replaces the subscription's one-time token and expiry
func (db *DB) RotateToken(ctx context.Context, email, token string, expires time.Time) error {
	query := `
		UPDATE subscriptions
		SET token = ?, token_expires = ?, updated_at = CURRENT_TIMESTAMP
		WHERE email = ?
	`
	result, err := db.conn.ExecContext(ctx, query, token, expires, email)
	if err != nil {
		return fmt.Errorf("rotate token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("subscription %s: %w", email, ErrNotFound)
	}
	return nil
}

// VerifySubscription marks the subscription verified
func (db *DB) VerifySubscription(ctx context.Context, id int64) error {
	query := `
		UPDATE subscriptions
		SET verification = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := db.conn.ExecContext(ctx, query, string(domain.VerificationVerified), id); err != nil {
		return fmt.Errorf("verify subscription: %w", err)
	}
	return nil
}

// DeactivateSubscription turns delivery off for the subscription
func (db *DB) DeactivateSubscription(ctx context.Context, id int64) error {
	query := `UPDATE subscriptions SET active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := db.conn.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
	}
	return nil
}

// ListDispatchable retrieves active, verified subscriptions with the
// given cadence. Unverified records never receive dispatch.
func (db *DB) ListDispatchable(ctx context.Context, freq domain.Frequency) ([]*domain.Subscription, error) {
	query := `
		SELECT * FROM subscriptions
		WHERE active = 1 AND verification = ? AND frequency = ?
		ORDER BY id
	`
	var rows []Subscription
	err := db.conn.SelectContext(ctx, &rows, query, string(domain.VerificationVerified), string(freq))
	if err != nil {
		return nil, fmt.Errorf("list dispatchable subscriptions: %w", err)
	}

	subs := make([]*domain.Subscription, len(rows))
	for i := range rows {
		subs[i] = rows[i].ToDomain()
	}
	return subs, nil
}

// UpdateLastNotified advances the subscription's last successful
// notification anchor
func (db *DB) UpdateLastNotified(ctx context.Context, id int64, ts time.Time) error {
	query := `UPDATE subscriptions SET last_notified = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := db.conn.ExecContext(ctx, query, ts, id); err != nil {
		return fmt.Errorf("update last notified: %w", err)
	}
	return nil
}

// CountSubscriptions returns the total number of subscription records
func (db *DB) CountSubscriptions(ctx context.Context) (int64, error) {
	var count int64
	if err := db.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM subscriptions`); err != nil {
		return 0, fmt.Errorf("count subscriptions: %w", err)
	}
	return count, nil
}
