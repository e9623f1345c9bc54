// Package server runs the widget preview server: each widget rendered from
// fixture data as a standalone page, plus JSON endpoints for the view
// models and for entity link decoding.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/matthewbaird/catalogview/internal/widget"
)

// Config holds server configuration.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Builder         *widget.Builder
	Logger          *zap.Logger
}

// NewRouter returns the preview routes.
func NewRouter(b *widget.Builder, logger *zap.Logger) http.Handler {
	h := &handler{builder: b, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/widgets/{name}", h.page)

	r.Route("/api", func(r chi.Router) {
		r.Get("/widgets", h.listWidgets)
		r.Get("/widgets/{name}", h.model)
		r.Get("/links/parse", h.parseLink)
		r.Get("/links/generate", h.generateLink)
		r.Get("/paths", h.entityPath)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg Config) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg.Builder, cfg.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		cfg.Logger.Info("preview server listening", zap.String("addr", cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	cfg.Logger.Info("shutting down preview server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
