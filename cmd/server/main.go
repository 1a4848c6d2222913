package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"serenity/internal/assessment"
	"serenity/internal/assessment/handler"
	"serenity/internal/assessment/metrics"
	"serenity/internal/platform/config"
	"serenity/internal/platform/httpserver"
	"serenity/internal/platform/logger"
	"serenity/internal/platform/middleware"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	engine, err := assessment.NewDistressEngine()
	if err != nil {
		log.Error("building distress engine", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	svc, err := assessment.NewService(engine, log, m)
	if err != nil {
		log.Error("building assessment service", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.ContentTypeJSON)

	handler.New(svc, log).Register(r)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting serenity", "addr", cfg.Addr, "rules", len(engine.Rules()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server exited")
}
