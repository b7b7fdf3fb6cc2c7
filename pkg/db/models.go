package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// Article is the database row for a stored article. List-valued fields
// (source links, tags, technologies) are stored as comma-joined text.
type Article struct {
	ID           int64     `db:"id"`
	Fingerprint  string    `db:"fingerprint"`
	Title        string    `db:"title"`
	Summary      string    `db:"summary"`
	Body         string    `db:"body"`
	Link         string    `db:"link"`
	SourceLinks  string    `db:"source_links"`
	Category     string    `db:"category"`
	Severity     string    `db:"severity"`
	CVE          string    `db:"cve"`
	Tags         string    `db:"tags"`
	Technologies string    `db:"technologies"`
	Published    time.Time `db:"published"`
	IngestedAt   time.Time `db:"ingested_at"`
	Processed    bool      `db:"processed"`
}

// Subscription is the database row for a subscriber
type Subscription struct {
	ID           int64        `db:"id"`
	Email        string       `db:"email"`
	Name         string       `db:"name"`
	Categories   string       `db:"categories"`
	Technologies string       `db:"technologies"`
	Frequency    string       `db:"frequency"`
	MinSeverity  string       `db:"min_severity"`
	LocalHour    int          `db:"local_hour"`
	UTCOffset    float64      `db:"utc_offset"`
	Weekday      int          `db:"weekday"`
	Active       bool         `db:"active"`
	Verification string       `db:"verification"`
	Token        string       `db:"token"`
	TokenExpires sql.NullTime `db:"token_expires"`
	LastNotified sql.NullTime `db:"last_notified"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

// NotificationEntry is one row of the append-only dispatch ledger
type NotificationEntry struct {
	ID             int64     `db:"id"`
	SubscriptionID int64     `db:"subscription_id"`
	ArticleID      int64     `db:"article_id"`
	Status         string    `db:"status"`
	Error          string    `db:"error"`
	CreatedAt      time.Time `db:"created_at"`
}

// FeedSource is the database row for a configured source
type FeedSource struct {
	ID           int64        `db:"id"`
	Name         string       `db:"name"`
	URL          string       `db:"url"`
	Kind         string       `db:"kind"`
	CategoryHint string       `db:"category_hint"`
	Enabled      bool         `db:"enabled"`
	LastFetched  sql.NullTime `db:"last_fetched"`
	LastError    string       `db:"last_error"`
	ErrorCount   int          `db:"error_count"`
	CreatedAt    time.Time    `db:"created_at"`
}

// KeywordRule is a classifier taxonomy row
type KeywordRule struct {
	Keyword  string `db:"keyword"`
	Category string `db:"category"`
	Weight   int    `db:"weight"`
}

// joinList flattens a string slice for storage
func joinList(items []string) string {
	return strings.Join(items, ",")
}

// splitList expands a stored list, empty text means empty slice
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// ToDomain converts the row to a domain article
func (a *Article) ToDomain() *domain.Article {
	return &domain.Article{
		ID:           a.ID,
		Fingerprint:  a.Fingerprint,
		Title:        a.Title,
		Summary:      a.Summary,
		Body:         a.Body,
		Link:         a.Link,
		SourceLinks:  splitList(a.SourceLinks),
		Category:     a.Category,
		Severity:     domain.Severity(a.Severity),
		CVE:          a.CVE,
		Tags:         splitList(a.Tags),
		Technologies: splitList(a.Technologies),
		Published:    a.Published,
		IngestedAt:   a.IngestedAt,
		Processed:    a.Processed,
	}
}

// articleFromDomain converts a domain article to its row form
func articleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:           a.ID,
		Fingerprint:  a.Fingerprint,
		Title:        a.Title,
		Summary:      a.Summary,
		Body:         a.Body,
		Link:         a.Link,
		SourceLinks:  joinList(a.SourceLinks),
		Category:     a.Category,
		Severity:     string(a.Severity),
		CVE:          a.CVE,
		Tags:         joinList(a.Tags),
		Technologies: joinList(a.Technologies),
		Published:    a.Published,
		IngestedAt:   a.IngestedAt,
		Processed:    a.Processed,
	}
}

// ToDomain converts the row to a domain subscription
func (s *Subscription) ToDomain() *domain.Subscription {
	sub := &domain.Subscription{
		ID:           s.ID,
		Email:        s.Email,
		Name:         s.Name,
		Categories:   splitList(s.Categories),
		Technologies: splitList(s.Technologies),
		Frequency:    domain.Frequency(s.Frequency),
		MinSeverity:  domain.Severity(s.MinSeverity),
		LocalHour:    s.LocalHour,
		UTCOffset:    s.UTCOffset,
		Weekday:      s.Weekday,
		Active:       s.Active,
		Verification: domain.VerificationState(s.Verification),
		Token:        s.Token,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.TokenExpires.Valid {
		sub.TokenExpires = s.TokenExpires.Time
	}
	if s.LastNotified.Valid {
		sub.LastNotified = s.LastNotified.Time
	}
	return sub
}

// subscriptionFromDomain converts a domain subscription to its row form
func subscriptionFromDomain(s *domain.Subscription) *Subscription {
	row := &Subscription{
		ID:           s.ID,
		Email:        s.Email,
		Name:         s.Name,
		Categories:   joinList(s.Categories),
		Technologies: joinList(s.Technologies),
		Frequency:    string(s.Frequency),
		MinSeverity:  string(s.MinSeverity),
		LocalHour:    s.LocalHour,
		UTCOffset:    s.UTCOffset,
		Weekday:      s.Weekday,
		Active:       s.Active,
		Verification: string(s.Verification),
		Token:        s.Token,
	}
	if !s.TokenExpires.IsZero() {
		row.TokenExpires = sql.NullTime{Time: s.TokenExpires, Valid: true}
	}
	if !s.LastNotified.IsZero() {
		row.LastNotified = sql.NullTime{Time: s.LastNotified, Valid: true}
	}
	return row
}
