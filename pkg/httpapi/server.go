// Package httpapi exposes the persistence commands to the GUI front-end as a
// local JSON API. Every operation maps one-to-one onto a core.Service call
// and every failure is rendered as a human-readable error string; nothing
// here is fatal to the process.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/redpill/charting/pkg/core"
)

const shutdownTimeout = 5 * time.Second

// Server hosts the command boundary consumed by the GUI.
type Server struct {
	svc    *core.Service
	logger *slog.Logger
	addr   string
}

// NewServer creates a Server bound to addr. A nil logger falls back to
// slog.Default.
func NewServer(svc *core.Service, addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger, addr: addr}
}

// Handler builds the full middleware-wrapped handler.
// CORS is permissive: the API binds to loopback and the webview front-end is
// the only expected caller.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)
	api.HandleFunc("/csv/read", s.handleReadCSV).Methods(http.MethodPost)
	api.HandleFunc("/charts", s.handleListCharts).Methods(http.MethodGet)
	api.HandleFunc("/charts/{sourceID}", s.handleSaveChart).Methods(http.MethodPut)
	api.HandleFunc("/charts/{sourceID}", s.handleLoadChart).Methods(http.MethodGet)
	api.HandleFunc("/notes", s.handleSaveNotes).Methods(http.MethodPut)
	api.HandleFunc("/notes", s.handleLoadNotes).Methods(http.MethodGet)
	api.HandleFunc("/state", s.handleState).Methods(http.MethodGet)

	return withCORS(withRequestID(s.withLogging(r)))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("api listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
