// Package server exposes the grid function catalog over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/arloliu/eeagrid/column"
	"github.com/arloliu/eeagrid/function"
	"github.com/arloliu/eeagrid/internal/options"
	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// FailedRowsHeader lists the comma-separated indexes of rows that failed in a
// binary column call.
const FailedRowsHeader = "X-Eeagrid-Failed-Rows"

const (
	defaultMaxBodyBytes    = 64 << 20
	defaultShutdownTimeout = 10 * time.Second
)

// Server serves a function catalog.
type Server struct {
	catalog         *function.Catalog
	logger          *log.Logger
	columnOpts      []column.Option
	maxBodyBytes    int64
	shutdownTimeout time.Duration
	engine          *gin.Engine
}

// Option configures a Server.
type Option = options.Option[*Server]

// WithLogger sets the access and lifecycle logger.
func WithLogger(l *log.Logger) Option {
	return options.NoError(func(s *Server) {
		s.logger = l
	})
}

// WithColumnOptions sets the options used to encode binary column responses.
func WithColumnOptions(opts ...column.Option) Option {
	return options.NoError(func(s *Server) {
		s.columnOpts = opts
	})
}

// WithMaxBodyBytes limits the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return options.New(func(s *Server) error {
		if n <= 0 {
			return fmt.Errorf("max body bytes must be positive, got %d", n)
		}
		s.maxBodyBytes = n

		return nil
	})
}

// WithShutdownTimeout bounds the graceful shutdown in ListenAndServe.
func WithShutdownTimeout(d time.Duration) Option {
	return options.NoError(func(s *Server) {
		s.shutdownTimeout = d
	})
}

// New creates a server for catalog.
func New(catalog *function.Catalog, opts ...Option) (*Server, error) {
	if catalog == nil {
		return nil, errors.New("server: nil catalog")
	}

	s := &Server{
		catalog:         catalog,
		logger:          log.New(os.Stderr, "eeagrid ", log.LstdFlags),
		maxBodyBytes:    defaultMaxBodyBytes,
		shutdownTimeout: defaultShutdownTimeout,
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	s.engine = s.routes()

	return s, nil
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logger.Printf("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog())

	r.GET("/healthz", s.health)

	v1 := r.Group("/v1")
	v1.GET("/functions", s.listFunctions)
	v1.GET("/functions/:name", s.getFunction)
	v1.GET("/call/:name", s.call)
	v1.POST("/batch/:name", s.batch)
	v1.POST("/column/:name", s.columnCall)
	v1.GET("/cells/:grid_num", s.cell)

	return r
}
