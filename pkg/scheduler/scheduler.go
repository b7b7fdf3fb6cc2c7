package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/threatwatch/threatwatch/pkg/classify"
	"github.com/threatwatch/threatwatch/pkg/domain"
	"github.com/threatwatch/threatwatch/pkg/feed"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/scraper.go -pkg mocks -skip-ensure -fmt goimports . Scraper
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher

// Scheduler runs the periodic pipeline workers: source ingestion,
// digest dispatch, critical-alert dispatch, and the optional
// extraction and enrichment passes.
type Scheduler struct {
	db         Database
	fetcher    Fetcher
	scraper    Scraper
	normalizer *feed.Normalizer
	classifier Classifier
	extractor  Extractor
	summarizer Summarizer
	dispatcher Dispatcher

	ingestInterval    time.Duration
	extractInterval   time.Duration
	enrichInterval    time.Duration
	digestInterval    time.Duration
	criticalInterval  time.Duration
	lookback          time.Duration
	backfillWindow    time.Duration
	maxConcurrent     int
	extractConcurrent int
	extractBatch      int
	enrichBatch       int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Database interface for scheduler operations
type Database interface {
	GetEnabledSources(ctx context.Context) ([]*domain.FeedSource, error)
	UpdateSourceFetched(ctx context.Context, id int64, ts time.Time) error
	UpdateSourceError(ctx context.Context, id int64, errMsg string) error

	CreateArticle(ctx context.Context, article *domain.Article) (bool, error)
	GetArticlesNeedingBody(ctx context.Context, limit int) ([]*domain.Article, error)
	UpdateArticleBody(ctx context.Context, id int64, body string) error
	GetUnprocessedArticles(ctx context.Context, limit int) ([]*domain.Article, error)
	UpdateArticleSummary(ctx context.Context, id int64, summary string) error
}

// Fetcher interface for feed sources
type Fetcher interface {
	Fetch(ctx context.Context, feedURL, sourceName string) ([]feed.Item, error)
}

// Scraper interface for non-feed sources pulled through the scrape API
type Scraper interface {
	Scrape(ctx context.Context, pageURL, sourceName string) ([]feed.Item, error)
}

// Classifier interface for keyword classification
type Classifier interface {
	Classify(title, body string) (classify.Result, bool)
}

// Extractor interface for full-text extraction
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Summarizer interface for AI summaries
type Summarizer interface {
	Summarize(ctx context.Context, article *domain.Article) (string, error)
}

// Dispatcher interface for notification runs
type Dispatcher interface {
	RunDigest(ctx context.Context, now time.Time) error
	RunCritical(ctx context.Context, now time.Time) error
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Database   Database
	Fetcher    Fetcher
	Scraper    Scraper
	Normalizer *feed.Normalizer
	Classifier Classifier
	Extractor  Extractor  // nil disables the extraction worker
	Summarizer Summarizer // nil disables the enrichment worker
	Dispatcher Dispatcher

	IngestInterval    time.Duration
	ExtractInterval   time.Duration
	EnrichInterval    time.Duration
	DigestInterval    time.Duration
	CriticalInterval  time.Duration
	Lookback          time.Duration
	BackfillWindow    time.Duration
	MaxConcurrent     int
	ExtractConcurrent int
	ExtractBatch      int
	EnrichBatch       int
}

// NewScheduler creates a scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.IngestInterval == 0 {
		params.IngestInterval = 30 * time.Minute
	}
	if params.ExtractInterval == 0 {
		params.ExtractInterval = 5 * time.Minute
	}
	if params.EnrichInterval == 0 {
		params.EnrichInterval = 10 * time.Minute
	}
	if params.DigestInterval == 0 {
		params.DigestInterval = time.Hour
	}
	if params.CriticalInterval == 0 {
		params.CriticalInterval = 15 * time.Minute
	}
	if params.Lookback == 0 {
		params.Lookback = 168 * time.Hour
	}
	if params.BackfillWindow == 0 {
		params.BackfillWindow = 720 * time.Hour
	}
	if params.MaxConcurrent == 0 {
		params.MaxConcurrent = 5
	}
	if params.ExtractConcurrent == 0 {
		params.ExtractConcurrent = 5
	}
	if params.ExtractBatch == 0 {
		params.ExtractBatch = 10
	}
	if params.EnrichBatch == 0 {
		params.EnrichBatch = 5
	}

	return &Scheduler{
		db:                params.Database,
		fetcher:           params.Fetcher,
		scraper:           params.Scraper,
		normalizer:        params.Normalizer,
		classifier:        params.Classifier,
		extractor:         params.Extractor,
		summarizer:        params.Summarizer,
		dispatcher:        params.Dispatcher,
		ingestInterval:    params.IngestInterval,
		extractInterval:   params.ExtractInterval,
		enrichInterval:    params.EnrichInterval,
		digestInterval:    params.DigestInterval,
		criticalInterval:  params.CriticalInterval,
		lookback:          params.Lookback,
		backfillWindow:    params.BackfillWindow,
		maxConcurrent:     params.MaxConcurrent,
		extractConcurrent: params.ExtractConcurrent,
		extractBatch:      params.ExtractBatch,
		enrichBatch:       params.EnrichBatch,
	}
}

// Start begins the scheduler workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.ingestWorker(ctx)

	s.wg.Add(1)
	go s.digestWorker(ctx)

	s.wg.Add(1)
	go s.criticalWorker(ctx)

	if s.extractor != nil {
		s.wg.Add(1)
		go s.extractWorker(ctx)
	}

	if s.summarizer != nil {
		s.wg.Add(1)
		go s.enrichWorker(ctx)
	}

	lgr.Printf("[INFO] scheduler started with ingest interval %v, digest interval %v, critical interval %v",
		s.ingestInterval, s.digestInterval, s.criticalInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// ingestWorker periodically pulls all enabled sources
func (s *Scheduler) ingestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.ingestInterval)
	defer ticker.Stop()

	// run immediately on start
	if err := s.ingestAll(ctx); err != nil {
		lgr.Printf("[WARN] ingest run finished with errors: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.ingestAll(ctx); err != nil {
				lgr.Printf("[WARN] ingest run finished with errors: %v", err)
			}
		}
	}
}

// ingestAll pulls every enabled source concurrently. Source failures
// are recorded against the source and collected; one bad source never
// aborts the run.
func (s *Scheduler) ingestAll(ctx context.Context) error {
	sources, err := s.db.GetEnabledSources(ctx)
	if err != nil {
		return fmt.Errorf("get enabled sources: %w", err)
	}

	lgr.Printf("[INFO] ingesting %d sources", len(sources))

	var mu sync.Mutex
	var errs []error

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for _, src := range sources {
		g.Go(func() error {
			if err := s.ingestSource(ctx, src); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("source %s: %w", src.Name, err))
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait() // workers report via errs, never fail the group

	lgr.Printf("[INFO] ingest run completed, %d sources failed", len(errs))
	return errors.Join(errs...)
}

// ingestSource pulls one source, normalizes and classifies its items,
// and stores the new articles
func (s *Scheduler) ingestSource(ctx context.Context, src *domain.FeedSource) error {
	lgr.Printf("[DEBUG] ingesting source: %s", src.Name)

	now := time.Now()

	// first successful pull of a source reaches further back
	cutoff := now.Add(-s.lookback)
	if src.LastFetched == nil {
		cutoff = now.Add(-s.backfillWindow)
	}

	var items []feed.Item
	var err error
	switch src.Kind {
	case domain.SourceScrape:
		items, err = s.scraper.Scrape(ctx, src.URL, src.Name)
	default:
		items, err = s.fetcher.Fetch(ctx, src.URL, src.Name)
	}
	if err != nil {
		if updateErr := s.db.UpdateSourceError(ctx, src.ID, err.Error()); updateErr != nil {
			lgr.Printf("[WARN] failed to record error for source %s: %v", src.Name, updateErr)
		}
		return err
	}

	newCount := 0
	for _, item := range items {
		article, ok := s.normalizer.Normalize(item, now, cutoff)
		if !ok {
			continue
		}

		result, ok := s.classifier.Classify(article.Title, article.Body)
		if !ok {
			lgr.Printf("[DEBUG] skipping off-topic item from %s: %s", src.Name, article.Title)
			continue
		}
		article.Category = result.Category
		article.Severity = result.Severity
		article.Tags = result.Tags
		article.Technologies = result.Technologies
		article.CVE = result.CVE

		inserted, err := s.db.CreateArticle(ctx, article)
		if err != nil {
			lgr.Printf("[WARN] failed to store article from %s (title: %s): %v", src.Name, article.Title, err)
			continue
		}
		if inserted {
			newCount++
		}
	}

	if err := s.db.UpdateSourceFetched(ctx, src.ID, now); err != nil {
		lgr.Printf("[WARN] failed to update last fetched for source %s: %v", src.Name, err)
	}

	if newCount > 0 {
		lgr.Printf("[INFO] added %d new articles from source %s", newCount, src.Name)
	}
	return nil
}

// digestWorker drives daily and weekly digests. It ticks more often
// than the hourly delivery granularity so a preferred hour is never
// skipped; the dispatcher decides who is actually due.
func (s *Scheduler) digestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.digestInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.dispatcher.RunDigest(ctx, time.Now()); err != nil {
				lgr.Printf("[WARN] digest run finished with errors: %v", err)
			}
		}
	}
}

// criticalWorker drives immediate alerts on a short cycle
func (s *Scheduler) criticalWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.criticalInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.dispatcher.RunCritical(ctx, time.Now()); err != nil {
				lgr.Printf("[WARN] critical run finished with errors: %v", err)
			}
		}
	}
}

// extractWorker periodically fills full bodies for articles whose feed
// entry carried no usable content
func (s *Scheduler) extractWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.extractInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.extractPending(ctx)
		}
	}
}

// extractPending extracts bodies for a batch of articles
func (s *Scheduler) extractPending(ctx context.Context) {
	articles, err := s.db.GetArticlesNeedingBody(ctx, s.extractBatch)
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles for extraction: %v", err)
		return
	}
	if len(articles) == 0 {
		return
	}

	lgr.Printf("[INFO] extracting content for %d articles", len(articles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.extractConcurrent)

	for _, article := range articles {
		g.Go(func() error {
			body, err := s.extractor.Extract(ctx, article.Link)
			if err != nil {
				lgr.Printf("[WARN] failed to extract content from %s: %v", article.Link, err)
				return nil
			}
			if err := s.db.UpdateArticleBody(ctx, article.ID, body); err != nil {
				lgr.Printf("[WARN] failed to store body for article %d: %v", article.ID, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// enrichWorker periodically writes AI summaries for stored articles
func (s *Scheduler) enrichWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.enrichInterval)
	defer ticker.Stop()

	// let the extraction pass fill some bodies first
	select {
	case <-ctx.Done():
		return
	case <-time.After(30 * time.Second):
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.enrichPending(ctx)
		}
	}
}

// enrichPending summarizes a batch of unprocessed articles
func (s *Scheduler) enrichPending(ctx context.Context) {
	articles, err := s.db.GetUnprocessedArticles(ctx, s.enrichBatch)
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles for enrichment: %v", err)
		return
	}
	if len(articles) == 0 {
		return
	}

	lgr.Printf("[INFO] summarizing %d articles", len(articles))

	for _, article := range articles {
		summary, err := s.summarizer.Summarize(ctx, article)
		if err != nil {
			lgr.Printf("[WARN] failed to summarize article %d: %v", article.ID, err)
			continue
		}
		if err := s.db.UpdateArticleSummary(ctx, article.ID, summary); err != nil {
			lgr.Printf("[WARN] failed to store summary for article %d: %v", article.ID, err)
		}
	}
}

// IngestNow triggers an immediate ingest run
func (s *Scheduler) IngestNow(ctx context.Context) error {
	lgr.Printf("[INFO] triggered immediate ingest")
	return s.ingestAll(ctx)
}

// DigestNow triggers an immediate digest run
func (s *Scheduler) DigestNow(ctx context.Context) error {
	lgr.Printf("[INFO] triggered immediate digest")
	var errs []error
	if err := s.dispatcher.RunDigest(ctx, time.Now()); err != nil {
		errs = append(errs, err)
	}
	if err := s.dispatcher.RunCritical(ctx, time.Now()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
