package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Scraper pulls non-feed pages through a scrape API that returns the
// page as markdown. Incident-report pages list one incident per
// heading section; each section becomes a candidate item keyed by
// title, section date and source name since there is no canonical
// per-item link.
type Scraper struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewScraper creates a new scrape-API client
func NewScraper(endpoint, apiKey string, timeout time.Duration) *Scraper {
	return &Scraper{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// scrapeResponse is the scrape API payload
type scrapeResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// sectionRe matches markdown headings that open an incident section
var sectionRe = regexp.MustCompile(`(?m)^#{2,3}\s+(.+)$`)

// dateInTitleRe pulls a trailing date out of a section heading,
// e.g. "Protocol X Exploit - January 12, 2026" or "... (2026-01-12)"
var dateInTitleRe = regexp.MustCompile(`[-–(]\s*((?:\w+ \d{1,2},? \d{4})|(?:\d{4}-\d{2}-\d{2}))\s*\)?\s*$`)

// Scrape fetches the page behind pageURL through the scrape API and
// splits it into candidate items
func (s *Scraper) Scrape(ctx context.Context, pageURL, sourceName string) ([]Item, error) {
	if s.endpoint == "" {
		return nil, fmt.Errorf("scrape endpoint not configured")
	}

	reqURL := fmt.Sprintf("%s?url=%s", s.endpoint, url.QueryEscape(pageURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scrape %s: unexpected status code %d", pageURL, resp.StatusCode)
	}

	var payload scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode scrape response: %w", err)
	}

	if payload.Markdown != "" {
		return s.splitMarkdown(payload.Markdown, sourceName), nil
	}
	if payload.HTML != "" {
		return s.splitHTML(payload.HTML, sourceName)
	}
	return nil, fmt.Errorf("scrape %s: empty response", pageURL)
}

// splitMarkdown breaks a markdown page into per-heading candidate items
func (s *Scraper) splitMarkdown(markdown, sourceName string) []Item {
	locs := sectionRe.FindAllStringSubmatchIndex(markdown, -1)
	items := make([]Item, 0, len(locs))

	for i, loc := range locs {
		title := strings.TrimSpace(markdown[loc[2]:loc[3]])

		bodyStart := loc[1]
		bodyEnd := len(markdown)
		if i+1 < len(locs) {
			bodyEnd = locs[i+1][0]
		}
		body := strings.TrimSpace(markdown[bodyStart:bodyEnd])

		item := Item{
			SourceName: sourceName,
			Title:      title,
			Body:       body,
		}

		// a date embedded in the heading identifies the incident
		if m := dateInTitleRe.FindStringSubmatch(title); m != nil {
			item.DateHint = m[1]
			item.Title = strings.TrimSpace(dateInTitleRe.ReplaceAllString(title, ""))
		} else if m := dateInTitleRe.FindStringSubmatch(body); m != nil {
			item.DateHint = m[1]
		}

		items = append(items, item)
	}

	return items
}

// splitHTML is the fallback for scrape responses that carry HTML only
func (s *Scraper) splitHTML(html, sourceName string) ([]Item, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse scraped html: %w", err)
	}

	var items []Item
	doc.Find("h2, h3").Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return
		}

		// collect sibling content up to the next heading
		var parts []string
		for n := sel.Next(); n.Length() > 0; n = n.Next() {
			if goquery.NodeName(n) == "h2" || goquery.NodeName(n) == "h3" {
				break
			}
			if txt := strings.TrimSpace(n.Text()); txt != "" {
				parts = append(parts, txt)
			}
		}

		item := Item{
			SourceName: sourceName,
			Title:      title,
			Body:       strings.Join(parts, "\n"),
		}
		if m := dateInTitleRe.FindStringSubmatch(title); m != nil {
			item.DateHint = m[1]
			item.Title = strings.TrimSpace(dateInTitleRe.ReplaceAllString(title, ""))
		}
		items = append(items, item)
	})

	return items, nil
}
