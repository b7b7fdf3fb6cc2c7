package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/threatwatch/threatwatch/pkg/db"
	"github.com/threatwatch/threatwatch/pkg/domain"
	"github.com/threatwatch/threatwatch/pkg/feed"
)

const (
	defaultArticleLimit = 50
	maxArticleLimit     = 200
)

// articleResponse is the public JSON shape of an article
type articleResponse struct {
	Fingerprint  string    `json:"fingerprint"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary,omitempty"`
	Link         string    `json:"link,omitempty"`
	Category     string    `json:"category"`
	Severity     string    `json:"severity"`
	CVE          string    `json:"cve,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Technologies []string  `json:"technologies,omitempty"`
	Published    time.Time `json:"published"`
}

// articlesHandler serves the public article listing with category,
// severity and limit filters
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	filter := db.ArticleFilter{
		Category: r.URL.Query().Get("category"),
		Limit:    defaultArticleLimit,
	}

	if sev := r.URL.Query().Get("max_severity"); sev != "" {
		severity := domain.Severity(sev)
		if !severity.Valid() {
			RenderError(w, r, fmt.Errorf("invalid severity %q", sev), http.StatusBadRequest)
			return
		}
		filter.MaxSeverity = severity
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", limitStr), http.StatusBadRequest)
			return
		}
		if limit > maxArticleLimit {
			limit = maxArticleLimit
		}
		filter.Limit = limit
	}

	articles, err := s.db.ListArticles(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to list articles: %v", err)
		RenderError(w, r, fmt.Errorf("can't list articles"), http.StatusInternalServerError)
		return
	}

	resp := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		resp = append(resp, articleResponse{
			Fingerprint: a.Fingerprint,
			// stored text originates from scraped markup, keep the
			// output inert
			Title:        s.sanitizer.Sanitize(a.Title),
			Summary:      s.sanitizer.Sanitize(a.Summary),
			Link:         a.Link,
			Category:     a.Category,
			Severity:     string(a.Severity),
			CVE:          a.CVE,
			Tags:         a.Tags,
			Technologies: a.Technologies,
			Published:    a.Published,
		})
	}

	RenderJSON(w, r, http.StatusOK, map[string]any{"articles": resp, "count": len(resp)})
}

// rssHandler serves an RSS 2.0 feed of stored articles, optionally
// narrowed to one category
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		category = r.URL.Query().Get("category")
	}

	articles, err := s.db.ListArticles(r.Context(), db.ArticleFilter{Category: category, Limit: defaultArticleLimit})
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	generator := feed.NewGenerator(s.config.GetBaseURL())
	rss, err := generator.GenerateRSS(articles, category)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
