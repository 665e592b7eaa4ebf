// Package main wires together the ad service binary.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hipstershop/adservice/internal/ads"
	"github.com/hipstershop/adservice/internal/adserver"
	"github.com/hipstershop/adservice/internal/config"
	"github.com/hipstershop/adservice/internal/logging"
	"github.com/hipstershop/adservice/internal/random"
	"github.com/hipstershop/adservice/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.InitTracerProvider(ctx, "adservice")
	if err != nil {
		logger.Fatal("tracer provider init failed", zap.Error(err))
	}
	go telemetry.RegisterTraceExporter(ctx, tp, cfg.Telemetry, logger)

	catalog := ads.NewCatalog()
	selector := ads.NewSelector(catalog, random.System{}, logger)
	handler := adserver.NewHandler(selector, logger)

	srv, err := adserver.New(cfg.Server.Port, cfg.DrainTimeout(), handler, logger)
	if err != nil {
		logger.Fatal("start ad server failed", zap.Error(err))
	}

	go serveMetrics(cfg.Metrics.Port, logger)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		logger.Fatal("grpc serve failed", zap.Error(err))
	}

	srv.Stop()
	if err := tp.Shutdown(context.Background()); err != nil {
		logger.Warn("tracer provider shutdown failed", zap.Error(err))
	}
	logger.Info("ad service exited")
}

// serveMetrics exposes Prometheus metrics and a liveness probe on a sidecar
// HTTP listener. Its failure is logged but never takes serving down.
func serveMetrics(port int, logger *zap.Logger) {
	r := chi.NewRouter()
	r.Handle("/metrics", telemetry.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			logger.Error("healthz write failed", zap.Error(err))
		}
	})

	addr := fmt.Sprintf(":%d", port)
	logger.Info("metrics server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("metrics server failed", zap.Error(err))
	}
}
