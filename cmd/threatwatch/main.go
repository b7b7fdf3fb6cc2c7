package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/threatwatch/threatwatch/pkg/classify"
	"github.com/threatwatch/threatwatch/pkg/config"
	"github.com/threatwatch/threatwatch/pkg/content"
	"github.com/threatwatch/threatwatch/pkg/db"
	"github.com/threatwatch/threatwatch/pkg/domain"
	"github.com/threatwatch/threatwatch/pkg/enrich"
	"github.com/threatwatch/threatwatch/pkg/feed"
	"github.com/threatwatch/threatwatch/pkg/notify"
	"github.com/threatwatch/threatwatch/pkg/scheduler"
	"github.com/threatwatch/threatwatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires the pipeline together and blocks until the context is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// secrets never reach the logs
	setupLog(opts.Debug, cfg.Notify.SMTP.Password, cfg.Ingest.ScrapeAPIKey, cfg.Enrich.APIKey)
	lgr.Printf("[INFO] starting threatwatch version %s", revision)

	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	if err := database.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	if err := seed(ctx, database, cfg); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	rules, err := database.ListKeywordRules(ctx)
	if err != nil {
		return fmt.Errorf("load keyword rules: %w", err)
	}
	classifier := classify.New(rules, cfg.Ingest.MaxTags)

	fetcher := feed.NewHTTPFetcher(cfg.Ingest.FetchTimeout, cfg.Ingest.UserAgent)
	scraper := feed.NewScraper(cfg.Ingest.ScrapeEndpoint, cfg.Ingest.ScrapeAPIKey, cfg.Ingest.FetchTimeout)

	var extractor scheduler.Extractor
	if cfg.Extract.Enabled {
		extractor = content.NewHTTPExtractor(cfg.Extract.Timeout, cfg.Ingest.UserAgent, cfg.Extract.MinTextLength)
	}
	var summarizer scheduler.Summarizer
	if cfg.Enrich.Enabled {
		summarizer = enrich.NewSummarizer(cfg.Enrich)
	}

	sender := notify.NewSMTPSender(cfg.Notify)
	dispatcher := notify.NewDispatcher(database, sender, cfg.Server.BaseURL, cfg.Notify.CriticalLookback)

	sched := scheduler.NewScheduler(scheduler.Params{
		Database:          database,
		Fetcher:           fetcher,
		Scraper:           scraper,
		Normalizer:        feed.NewNormalizer(),
		Classifier:        classifier,
		Extractor:         extractor,
		Summarizer:        summarizer,
		Dispatcher:        dispatcher,
		IngestInterval:    cfg.Ingest.Interval,
		ExtractInterval:   cfg.Extract.Interval,
		EnrichInterval:    cfg.Enrich.Interval,
		DigestInterval:    cfg.Notify.DigestInterval,
		CriticalInterval:  cfg.Notify.CriticalInterval,
		Lookback:          cfg.Ingest.Lookback,
		BackfillWindow:    cfg.Ingest.BackfillWindow,
		MaxConcurrent:     cfg.Ingest.MaxConcurrent,
		ExtractConcurrent: cfg.Extract.MaxConcurrent,
		ExtractBatch:      cfg.Extract.BatchSize,
		EnrichBatch:       cfg.Enrich.BatchSize,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, database, sched, sender, revision, opts.Debug)
	return srv.Run(ctx)
}

// seed loads the keyword taxonomy and the configured sources, both
// idempotent on restart
func seed(ctx context.Context, database *db.DB, cfg *config.Config) error {
	if err := database.SeedKeywordRules(ctx, classify.DefaultRules()); err != nil {
		return fmt.Errorf("seed keyword rules: %w", err)
	}

	for _, src := range cfg.Ingest.Sources {
		source := &domain.FeedSource{
			Name:         src.Name,
			URL:          src.URL,
			Kind:         domain.SourceKind(src.Kind),
			CategoryHint: src.CategoryHint,
			Enabled:      true,
		}
		if source.Kind == "" {
			source.Kind = domain.SourceFeed
		}
		if err := database.CreateFeedSource(ctx, source); err != nil {
			return fmt.Errorf("seed source %s: %w", src.Name, err)
		}
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	if len(secs) > 0 {
		var secrets []string
		for _, s := range secs {
			if s != "" {
				secrets = append(secrets, s)
			}
		}
		if len(secrets) > 0 {
			logOpts = append(logOpts, lgr.Secret(secrets...))
		}
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
