// Package preview serves the rendered gallery page over HTTP for local
// development, with Prometheus metrics, request tracing, and a WebSocket
// reload channel.
package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tagkit-dev/tagkit/internal/config"
	"github.com/tagkit-dev/tagkit/internal/site"
	"github.com/tagkit-dev/tagkit/pkg/render"
)

// Server is the preview HTTP server.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	hub      *ReloadHub
	renderer *render.Renderer
	metrics  *metrics
	httpSrv  *http.Server
}

// NewServer creates a preview server for the given configuration.
// If logger is nil, slog.Default() is used.
func NewServer(cfg *config.Config, logger *slog.Logger, opts ...MetricsOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:      cfg,
		log:      logger,
		hub:      NewReloadHub(),
		renderer: render.New(render.Config{Pretty: cfg.Serve.Pretty}),
	}

	if cfg.Serve.Metrics {
		mc := defaultMetricsConfig()
		for _, opt := range opts {
			opt(&mc)
		}
		s.metrics = initMetrics(mc, s.hub)
	}

	return s
}

// Hub returns the reload hub so callers can push reload messages.
func (s *Server) Hub() *ReloadHub {
	return s.hub
}

// Handler builds the chi router for the preview server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	// The WebSocket endpoint stays outside the metrics/tracing group so
	// the upgrade handshake keeps the raw ResponseWriter.
	r.Get("/__reload", s.hub.HandleWebSocket)

	r.Group(func(r chi.Router) {
		if s.metrics != nil {
			r.Use(s.metrics.httpMetrics)
		}
		r.Use(Tracing(""))
		r.Use(s.requestLogger)

		r.Get("/", s.handleIndex)
		r.Get("/healthz", s.handleHealth)
		if s.cfg.Serve.Metrics {
			r.Method(http.MethodGet, "/metrics", promhttp.Handler())
		}
	})

	return r
}

// Start runs the server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", "addr", s.cfg.Addr())
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Stop()
	}
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	s.hub.Close()
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

// handleIndex renders the gallery page per request.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc, err := site.Page(s.cfg.Title)
	if err != nil {
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html>\n")
	if err := s.renderer.ToWriter(w, doc); err != nil {
		s.log.Error("render failed mid-stream", "error", err)
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// renderError reports a failed page build to the client and the hub.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	s.log.Error("page build failed", "error", err)
	if s.metrics != nil {
		s.metrics.renderErrors.Inc()
	}
	s.hub.NotifyError(err.Error())
	http.Error(w, "page build failed: "+err.Error(), http.StatusInternalServerError)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
