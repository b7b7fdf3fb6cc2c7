package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// Generator creates RSS 2.0 feeds from stored articles
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink represents an Atom link element within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem represents an item in an RSS feed
type RSSItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category,omitempty"`
}

// GenerateRSS creates an RSS 2.0 feed from articles, optionally scoped
// to a single category
func (g *Generator) GenerateRSS(articles []*domain.Article, category string) (string, error) {
	title := "Threatwatch - Security Alerts"
	selfLink := g.baseURL + "/rss"
	if category != "" {
		title = fmt.Sprintf("Threatwatch - %s", category)
		selfLink = fmt.Sprintf("%s/rss/%s", g.baseURL, category)
	}

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Curated security threat intelligence",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a stored article to an RSS item
func (g *Generator) convertToRSSItem(a *domain.Article) *RSSItem {
	desc := a.Summary
	if desc == "" {
		desc = Truncate(a.Body, 300)
	}
	if a.CVE != "" {
		desc = fmt.Sprintf("%s (%s)", desc, a.CVE)
	}

	categories := append([]string{a.Category}, a.Tags...)

	return &RSSItem{
		Title:       fmt.Sprintf("[%s] %s", strings.ToUpper(string(a.Severity)), a.Title),
		Link:        a.Link,
		GUID:        a.Fingerprint,
		Description: desc,
		PubDate:     a.Published.Format(time.RFC1123Z),
		Categories:  categories,
	}
}
