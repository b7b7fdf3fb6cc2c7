package feed

import (
	"html"
	"strings"
	"time"

	xhtml "golang.org/x/net/html"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// Normalizer turns loosely structured candidate items into articles
// ready for classification: markup stripped, entities decoded, dates
// parsed, fingerprint assigned, stale items discarded.
type Normalizer struct {
	summaryLen int
}

// NewNormalizer creates a normalizer with the default summary length
func NewNormalizer() *Normalizer {
	return &Normalizer{summaryLen: 300}
}

// known date layouts seen across feed and scraped sources
var dateLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// Normalize converts a candidate item into an article. Returns ok=false
// when the item is older than the cutoff and should be discarded before
// persistence. The category and severity are left for the classifier.
func (n *Normalizer) Normalize(item Item, now, cutoff time.Time) (article *domain.Article, ok bool) {
	title := CleanText(item.Title)
	if title == "" {
		return nil, false
	}
	body := CleanText(item.Body)

	published := item.Published
	if published.IsZero() {
		published = ParseDate(item.DateHint, now)
	}
	if published.Before(cutoff) {
		return nil, false
	}

	fingerprint := domain.Fingerprint(title, item.Link)
	if item.Link == "" {
		// scraped incident sections have no canonical per-item link
		fingerprint = domain.ScrapedFingerprint(title, published.Format("2006-01-02"), item.SourceName)
	}

	article = &domain.Article{
		Fingerprint: fingerprint,
		Title:       title,
		Summary:     Truncate(body, n.summaryLen),
		Body:        body,
		Link:        item.Link,
		Published:   published.UTC(),
	}
	if item.Link != "" {
		article.SourceLinks = []string{item.Link}
	}
	return article, true
}

// ParseDate tries the known layouts against the raw text, falling back
// to the supplied now when nothing parses
func ParseDate(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return now
}

// CleanText strips markup and CDATA wrappers and decodes HTML entities,
// collapsing whitespace runs
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<![CDATA[")
	s = strings.TrimSuffix(s, "]]>")

	if strings.ContainsAny(s, "<>") {
		s = stripTags(s)
	}
	s = html.UnescapeString(s)

	return strings.Join(strings.Fields(s), " ")
}

// stripTags walks the markup and keeps text nodes only
func stripTags(s string) string {
	var b strings.Builder
	tokenizer := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		tt := tokenizer.Next()
		if tt == xhtml.ErrorToken {
			break
		}
		if tt == xhtml.TextToken {
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Truncate cuts text to at most n runes on a word boundary
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	cut := string(runes[:n])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
