// Package api serves layouts, grids and live sessions over HTTP.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/session"
)

const (
	// maxBodyBytes caps request bodies; a full state document is a few KB.
	maxBodyBytes = 1 << 20

	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	cleanupInterval = time.Minute
)

// Server is the HTTP front end.
type Server struct {
	registry *session.Registry
	defaults layout.Defaults
	logger   *log.Logger
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithDefaults sets the constants used for stateless requests.
func WithDefaults(d layout.Defaults) Option { return func(s *Server) { s.defaults = d } }

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry sets the session registry. By default the server creates
// one using its defaults and logger.
func WithRegistry(r *session.Registry) Option { return func(s *Server) { s.registry = r } }

// New builds a server and its routes.
func New(opts ...Option) *Server {
	s := &Server{
		defaults: layout.DefaultDefaults(),
		logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = session.NewRegistry(
			session.WithRegistryLogger(s.logger),
			session.WithSessionOptions(session.WithDefaults(s.defaults)),
		)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Registry returns the session registry.
func (s *Server) Registry() *session.Registry { return s.registry }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/grid", s.handleGrid)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/", s.handleListSessions)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Put("/state", s.handlePutState)
				r.Put("/streams", s.handlePutStreams)
				r.Post("/focus/{stream}", s.handleFocus)
			})
		})
	})
	return r
}

// requestLogger logs one line per request through the server logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully and closes every session.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go s.registry.Run(cleanupCtx, cleanupInterval)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.registry.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.registry.Close()
	return err
}
