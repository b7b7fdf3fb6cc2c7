package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Severity is the threat severity tier assigned by the classifier
type Severity string

// severity tiers, most severe first
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Rank returns the position of the severity in the total order
// critical(0) < high(1) < medium(2) < low(3) < info(4). Lower rank is
// more severe. Unknown values rank below info.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	case SeverityInfo:
		return 4
	}
	return 5
}

// Valid reports whether the severity is one of the known tiers
func (s Severity) Valid() bool {
	return s.Rank() < 5
}

// Article represents a normalized, classified threat-intel article
type Article struct {
	ID           int64
	Fingerprint  string // dedup key, immutable once assigned
	Title        string
	Summary      string
	Body         string
	Link         string
	SourceLinks  []string
	Category     string
	Severity     Severity
	CVE          string
	Tags         []string
	Technologies []string
	Published    time.Time
	IngestedAt   time.Time
	Processed    bool
}

// Fingerprint computes the stable content fingerprint for a feed item,
// a one-way hash over title and canonical link. Two items with the same
// fingerprint are the same logical article regardless of source.
func Fingerprint(title, link string) string {
	h := sha256.Sum256([]byte(title + "|" + link))
	return hex.EncodeToString(h[:])
}

// ScrapedFingerprint computes the fingerprint for a scraped incident
// report, which has no canonical per-item link; the section date and
// source name stand in for it.
func ScrapedFingerprint(title, sectionDate, sourceName string) string {
	h := sha256.Sum256([]byte(title + "|" + sectionDate + "|" + sourceName))
	return hex.EncodeToString(h[:])
}
