// Package server exposes the placement pipeline over HTTP.
//
// The API has three endpoints:
//
//	GET  /healthz         - liveness probe
//	GET  /v1/letters      - letters with special dash handling
//	POST /v1/placements   - derive placements for a manifest
//
// POST bodies are sequence manifests in JSON; derivation options are
// passed as query parameters. Responses are JSON unless format=csv is
// requested.
package server

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pictoplace/pictoplace/pkg/cache"
	"github.com/pictoplace/pictoplace/pkg/httputil"
	"github.com/pictoplace/pictoplace/pkg/pipeline"
)

// Server wires the pipeline runner into an HTTP handler.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger
}

// New builds a server from config. The cache backend is chosen by the
// config: Redis when configured, otherwise a file cache, otherwise a
// null cache.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if cfg.CacheScope != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.CacheScope+":")
	}

	runner := pipeline.NewRunner(c, keyer, logger)
	if cfg.CacheDir != "" {
		httpCache, err := httputil.NewCache(filepath.Join(cfg.CacheDir, "http"), cache.TTLHTTP)
		if err != nil {
			return nil, err
		}
		runner.HTTP = httputil.NewClient(nil, httpCache.Namespace("adjust:"))
	}

	return &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}, nil
}

func newCache(ctx context.Context, cfg Config) (cache.Cache, error) {
	if cfg.Redis.Addr != "" {
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	if cfg.CacheDir != "" {
		return cache.NewFileCache(cfg.CacheDir)
	}
	return cache.NewNullCache(), nil
}

// Handler returns the fully-wired HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/letters", s.handleLetters)
		r.Post("/placements", s.handlePlacements)
	})

	return r
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close releases the runner's cache.
func (s *Server) Close() error {
	return s.runner.Close()
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", RequestIDFrom(r.Context()))
	})
}
