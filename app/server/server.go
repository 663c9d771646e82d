// Package server provides the HTTP server: the access gate in front of the web pages
// and the JSON API, session authentication and API token wiring.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/qaflow/qaflow/app/gate"
	"github.com/qaflow/qaflow/app/metrics"
	"github.com/qaflow/qaflow/app/server/api"
	"github.com/qaflow/qaflow/app/server/web"
	"github.com/qaflow/qaflow/app/token"
)

// Store defines the persistence used by the server.
// Defined here (consumer side) to allow different store implementations.
type Store interface {
	AuthStore
	token.Store
	api.ReportStore
}

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	auth       *Auth
	tokens     *token.Service
	gate       *gate.Gate
	metrics    *metrics.Metrics
	apiHandler *api.Handler
	webHandler *web.Handler
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	Secret          string        // session cookie signing key
	LoginTTL        time.Duration // session duration
	Gate            gate.Config   // route classification for the access gate

	// limits
	BodySizeLimit    int64 // max request body size in bytes
	RequestsPerSec   int64 // max requests per second
	LoginConcurrency int64 // max concurrent sign-in and sign-up attempts
}

// New creates a new Server instance.
// m is optional, pass nil to disable metrics.
func New(st Store, m *metrics.Metrics, cfg Config) (*Server, error) {
	g, err := gate.New(cfg.Gate)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize access gate: %w", err)
	}

	tokens := token.NewService(st, token.WithRecorder(m))

	auth, err := NewAuth(AuthParams{Store: st, Tokens: tokens, Secret: cfg.Secret, LoginTTL: cfg.LoginTTL})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}

	webHandler, err := web.New(auth, tokens, st, web.Config{DefaultRedirect: g.DefaultRedirect(), Version: cfg.Version})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	return &Server{
		cfg:        cfg,
		auth:       auth,
		tokens:     tokens,
		gate:       g,
		metrics:    m,
		apiHandler: api.New(auth, tokens, st, m),
		webHandler: webHandler,
	}, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	s.auth.StartCleanup(ctx)

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[INFO] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler with metrics collection and the scrape endpoint,
// which is served outside of the access gate.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", s.metrics.Handler())
	mux.Handle("/", s.routes())
	return s.metrics.Middleware(mux)
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware (applies to all routes)
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("qaflow", "qaflow", s.cfg.Version),
		rest.Ping,
		gate.Middleware(s.gate, s.auth, s.metrics),
	)

	// web pages and forms, stricter throttle on sign-in and sign-up to slow down brute-force
	s.webHandler.Register(router)
	s.webHandler.RegisterAuth(router, rest.Throttle(s.loginConcurrency()))

	// json api, POST /api/tests authenticates with the bearer token itself
	router.Mount("/api").Route(s.apiHandler.Register)

	return router
}

// bodySizeLimit returns the configured body size limit, or default 16MB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 16 * 1024 * 1024
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// loginConcurrency returns the configured login concurrency limit, or default 5 if not set.
func (s *Server) loginConcurrency() int64 {
	if s.cfg.LoginConcurrency > 0 {
		return s.cfg.LoginConcurrency
	}
	return 5 // default
}

// shutdownTimeout returns the configured shutdown timeout, or default 10s if not set.
func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 10 * time.Second
}
