package domain

import "time"

// SourceKind tells the ingestion run how to pull a source
type SourceKind string

// source kinds
const (
	SourceFeed   SourceKind = "feed"   // RSS/Atom endpoint
	SourceScrape SourceKind = "scrape" // page pulled through the scrape API
)

// FeedSource represents a configured threat-intel origin
type FeedSource struct {
	ID           int64
	Name         string
	URL          string
	Kind         SourceKind
	CategoryHint string
	Enabled      bool
	LastFetched  *time.Time
	LastError    string
	ErrorCount   int
	CreatedAt    time.Time
}

// KeywordRule is a single classifier taxonomy entry, read-only input
// to category scoring
type KeywordRule struct {
	Keyword  string
	Category string
	Weight   int
}
