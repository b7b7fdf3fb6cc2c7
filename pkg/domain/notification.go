package domain

import "time"

// NotificationStatus is the outcome recorded for a dispatch attempt
type NotificationStatus string

// dispatch outcomes
const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// NotificationEntry is one append-only ledger row for a
// (subscription, article) pair. At most one "sent" row may ever exist
// per pair; a "failed" row does not block a later retry.
type NotificationEntry struct {
	ID             int64
	SubscriptionID int64
	ArticleID      int64
	Status         NotificationStatus
	Error          string
	CreatedAt      time.Time
}
