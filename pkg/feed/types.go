package feed

import "time"

// Item is a loosely structured candidate pulled from a source, before
// normalization. Title/Body may still carry markup; Published may be
// zero when the source gave no parseable date.
type Item struct {
	SourceName string
	Title      string
	Link       string
	Body       string
	DateHint   string // raw date text for scraped sections without a parsed time
	Published  time.Time
}
