package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/threatwatch/threatwatch/pkg/db"
	"github.com/threatwatch/threatwatch/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the persistence surface the dispatcher needs
type Store interface {
	ListDispatchable(ctx context.Context, freq domain.Frequency) ([]*domain.Subscription, error)
	ListArticles(ctx context.Context, filter db.ArticleFilter) ([]*domain.Article, error)
	SentArticleIDs(ctx context.Context, subscriptionID int64, articleIDs []int64) (map[int64]bool, error)
	RecordNotification(ctx context.Context, entry *domain.NotificationEntry) error
	UpdateLastNotified(ctx context.Context, id int64, ts time.Time) error
}

// Dispatcher renders and sends digests and records every attempt in
// the notification ledger. Ledger rows for one subscriber are written
// before the next subscriber is processed, so a mid-run crash cannot
// duplicate a successful send on retry.
type Dispatcher struct {
	store            Store
	sender           Sender
	baseURL          string
	criticalLookback time.Duration
}

// NewDispatcher creates a dispatcher
func NewDispatcher(store Store, sender Sender, baseURL string, criticalLookback time.Duration) *Dispatcher {
	return &Dispatcher{
		store:            store,
		sender:           sender,
		baseURL:          baseURL,
		criticalLookback: criticalLookback,
	}
}

// RunDigest processes daily and weekly subscriptions due at the given
// instant. A failure for one subscriber never aborts the others; all
// failures are collected and returned at the end of the run.
func (d *Dispatcher) RunDigest(ctx context.Context, now time.Time) error {
	var errs []error

	for _, freq := range []domain.Frequency{domain.FrequencyDaily, domain.FrequencyWeekly} {
		subs, err := d.store.ListDispatchable(ctx, freq)
		if err != nil {
			errs = append(errs, fmt.Errorf("list %s subscriptions: %w", freq, err))
			continue
		}

		for _, sub := range subs {
			if !Due(sub, now) {
				continue
			}
			if err := d.dispatchWindow(ctx, sub, now); err != nil {
				errs = append(errs, fmt.Errorf("dispatch to %s: %w", sub.Email, err))
			}
		}
	}

	return errors.Join(errs...)
}

// RunCritical processes immediate subscriptions against a short
// lookback window. It runs more often than hourly and ignores local
// delivery hours: critical alerts do not wait for a preferred time.
func (d *Dispatcher) RunCritical(ctx context.Context, now time.Time) error {
	subs, err := d.store.ListDispatchable(ctx, domain.FrequencyImmediate)
	if err != nil {
		return fmt.Errorf("list immediate subscriptions: %w", err)
	}

	var errs []error
	for _, sub := range subs {
		err := d.dispatch(ctx, sub, now.Add(-d.criticalLookback), now)
		if err != nil {
			errs = append(errs, fmt.Errorf("dispatch to %s: %w", sub.Email, err))
		}
	}
	return errors.Join(errs...)
}

// dispatchWindow dispatches one due digest subscriber over its
// reporting window
func (d *Dispatcher) dispatchWindow(ctx context.Context, sub *domain.Subscription, now time.Time) error {
	start, end := Window(sub, now)
	return d.dispatch(ctx, sub, start, end)
}

// dispatch selects matching, not-yet-sent articles in [start, end],
// folds them into a single digest message, attempts delivery, and
// writes one ledger row per article reflecting the outcome
func (d *Dispatcher) dispatch(ctx context.Context, sub *domain.Subscription, start, end time.Time) error {
	candidates, err := d.store.ListArticles(ctx, db.ArticleFilter{Since: start, Until: end})
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	// preference filter
	matching := candidates[:0]
	for _, a := range candidates {
		if Matches(a, sub) {
			matching = append(matching, a)
		}
	}
	if len(matching) == 0 {
		return nil
	}

	// ledger filter: only a "sent" entry blocks a pair, so transient
	// failures are retried on the next run
	ids := make([]int64, len(matching))
	for i, a := range matching {
		ids[i] = a.ID
	}
	sent, err := d.store.SentArticleIDs(ctx, sub.ID, ids)
	if err != nil {
		return fmt.Errorf("lookup ledger: %w", err)
	}

	var pending []*domain.Article
	for _, a := range matching {
		if !sent[a.ID] {
			pending = append(pending, a)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	msg, err := RenderDigest(sub, pending, d.baseURL)
	if err != nil {
		return err
	}

	sendErr := d.sender.Send(msg)

	status := domain.NotificationSent
	errDetail := ""
	if sendErr != nil {
		status = domain.NotificationFailed
		errDetail = sendErr.Error()
	}

	// ledger rows are written even when the ledger write for a sibling
	// article fails; losing one row risks a duplicate, skipping the
	// rest risks many
	var errs []error
	for _, a := range pending {
		entry := &domain.NotificationEntry{
			SubscriptionID: sub.ID,
			ArticleID:      a.ID,
			Status:         status,
			Error:          errDetail,
		}
		if err := d.store.RecordNotification(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}

	if sendErr != nil {
		errs = append(errs, sendErr)
		return errors.Join(errs...)
	}

	// anchor the next window on this run's end time
	if err := d.store.UpdateLastNotified(ctx, sub.ID, end); err != nil {
		errs = append(errs, fmt.Errorf("advance last notified: %w", err))
	}

	lgr.Printf("[INFO] sent %d alerts to %s", len(pending), sub.Email)
	return errors.Join(errs...)
}
