// Package notify implements the subscriber notification pipeline:
// preference matching, timezone-aware digest scheduling, message
// rendering and dispatch with an at-most-once notification ledger.
package notify

import (
	"strings"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// Matches decides whether an article should be delivered to a
// subscription. Pure function, no side effects. All rules must hold:
// the severity threshold is inclusive by rank, a non-empty category
// filter requires membership, and a non-empty technology filter
// requires a tag overlap - except for critical articles, which bypass
// the technology filter entirely. Technology filtering is a convenience
// narrowing for routine alerts, not a gate that may suppress
// top-severity warnings.
func Matches(article *domain.Article, sub *domain.Subscription) bool {
	if article.Severity.Rank() > sub.MinSeverity.Rank() {
		return false
	}

	if len(sub.Categories) > 0 && !containsFold(sub.Categories, article.Category) {
		return false
	}

	if len(sub.Technologies) > 0 && len(article.Tags) > 0 &&
		article.Severity != domain.SeverityCritical {
		if !tagOverlap(article.Tags, sub.Technologies) {
			return false
		}
	}

	return true
}

// containsFold reports whether the set contains the value, case-insensitively
func containsFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

// tagOverlap reports whether at least one article tag contains one of
// the filter technologies as a case-insensitive substring
func tagOverlap(tags, technologies []string) bool {
	for _, tag := range tags {
		lowered := strings.ToLower(tag)
		for _, tech := range technologies {
			if strings.Contains(lowered, strings.ToLower(tech)) {
				return true
			}
		}
	}
	return false
}
