package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/threatwatch/threatwatch/pkg/config"
	"github.com/threatwatch/threatwatch/pkg/db"
	"github.com/threatwatch/threatwatch/pkg/domain"
	"github.com/threatwatch/threatwatch/pkg/notify"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	scheduler Scheduler
	sender    Sender
	version   string
	debug     bool
	started   time.Time

	sanitizer   *bluemonday.Policy
	addrLimiter *limiter.Limiter
	ipLimiter   *limiter.Limiter
	lock        sync.Mutex
	httpServer  *http.Server
	router      *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	ListArticles(ctx context.Context, filter db.ArticleFilter) ([]*domain.Article, error)
	CountArticles(ctx context.Context) (int64, error)

	UpsertSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	GetSubscription(ctx context.Context, email string) (*domain.Subscription, error)
	GetSubscriptionByToken(ctx context.Context, token string) (*domain.Subscription, error)
	RotateToken(ctx context.Context, email, token string, expires time.Time) error
	VerifySubscription(ctx context.Context, id int64) error
	DeactivateSubscription(ctx context.Context, id int64) error
	CountSubscriptions(ctx context.Context) (int64, error)
}

// Scheduler interface for on-demand pipeline runs
type Scheduler interface {
	IngestNow(ctx context.Context) error
	DigestNow(ctx context.Context) error
}

// Sender interface for outbound email
type Sender interface {
	Send(msg notify.Message) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetNotifyConfig() config.NotifyConfig
	GetBaseURL() string
	GetRateLimit() (attempts int64, window time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, database Database, scheduler Scheduler, sender Sender, version string, debug bool) *Server {
	attempts, window := cfg.GetRateLimit()
	rate := limiter.Rate{Period: window, Limit: attempts}

	s := &Server{
		config:    cfg,
		db:        database,
		scheduler: scheduler,
		sender:    sender,
		version:   version,
		debug:     debug,
		started:   time.Now(),
		sanitizer: bluemonday.StrictPolicy(),
		// separate stores so an address key can never collide with an
		// origin key
		addrLimiter: limiter.New(memory.NewStore(), rate),
		ipLimiter:   limiter.New(memory.NewStore(), rate, limiter.WithTrustForwardHeader(true)),
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("threatwatch", "threatwatch", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // subscription payloads are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)

		r.HandleFunc("POST /subscriptions", s.subscribeHandler)
		r.HandleFunc("POST /subscriptions/manage", s.manageHandler)
		r.HandleFunc("GET /subscriptions/verify", s.verifyHandler)
		r.HandleFunc("GET /subscriptions/unsubscribe", s.unsubscribeHandler)
		r.HandleFunc("POST /subscriptions/unsubscribe", s.unsubscribeHandler)

		r.Mount("/admin").Route(func(admin *routegroup.Bundle) {
			admin.HandleFunc("POST /ingest", s.ingestNowHandler)
			admin.HandleFunc("POST /digest", s.digestNowHandler)
		})
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /rss/{category}", s.rssHandler)
}

// statusHandler returns server status with store counts
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articles, err := s.db.CountArticles(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to count articles: %v", err)
		RenderError(w, r, fmt.Errorf("status unavailable"), http.StatusInternalServerError)
		return
	}
	subscriptions, err := s.db.CountSubscriptions(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to count subscriptions: %v", err)
		RenderError(w, r, fmt.Errorf("status unavailable"), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]any{
		"status":        "ok",
		"version":       s.version,
		"uptime":        time.Since(s.started).Truncate(time.Second).String(),
		"articles":      articles,
		"subscriptions": subscriptions,
	})
}

// ingestNowHandler triggers an immediate ingest run
func (s *Server) ingestNowHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.IngestNow(r.Context()); err != nil {
		lgr.Printf("[WARN] triggered ingest finished with errors: %v", err)
		RenderJSON(w, r, http.StatusOK, map[string]string{"status": "completed with errors"})
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// digestNowHandler triggers an immediate digest run
func (s *Server) digestNowHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.DigestNow(r.Context()); err != nil {
		lgr.Printf("[WARN] triggered digest finished with errors: %v", err)
		RenderJSON(w, r, http.StatusOK, map[string]string{"status": "completed with errors"})
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
