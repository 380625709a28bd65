package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	jwttoken "studyhub/internal/jwt_token"
	"studyhub/internal/platform/config"
	"studyhub/internal/platform/httpserver"
	"studyhub/internal/platform/logger"
	"studyhub/internal/platform/otel"
	"studyhub/internal/studygroup/handler"
	"studyhub/internal/studygroup/metrics"
	"studyhub/internal/studygroup/service"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	shutdownTracing, err := otel.Setup(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	m := metrics.New()

	tx, closeStorage, err := buildAdmissionTx(ctx, cfg, m, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	backend, closeBackend, err := buildNotifier(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeBackend()

	dispatcher := newDispatcher(cfg, backend, m, log)

	svc := service.New(tx,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithNotifier(dispatcher),
	)

	jwt := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	router := httpserver.NewRouter(log, cfg.HTTPTimeout, prometheus.DefaultGatherer)
	handler.New(svc, log, jwttoken.NewMiddlewareValidator(jwt), cfg.AdminToken).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting studyhub", "addr", cfg.Addr, "storage", cfg.Storage, "notify_backend", cfg.Notifications.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownGrace)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("graceful shutdown failed: %w", err))
		}
		if err := dispatcher.Close(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("drain notifications: %w", err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("flush traces: %w", err))
		}
		return errors.Join(errs...)
	})
	return g.Wait()
}
