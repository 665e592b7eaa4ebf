package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/zap"

	"github.com/hipstershop/adservice/internal/config"
)

// InitTracerProvider installs the global trace provider. Spans are recorded
// from the first call onward; export only starts once RegisterTraceExporter
// attaches a processor, so serving never waits on the collector.
func InitTracerProvider(ctx context.Context, serviceName string) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}

// RegisterTraceExporter attaches an OTLP span exporter to the provider,
// retrying a bounded number of times with a fixed delay before giving up
// with a warning. Meant to run on a background goroutine; its failure never
// affects serving.
func RegisterTraceExporter(ctx context.Context, tp *sdktrace.TracerProvider, cfg config.TelemetryConfig, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CollectorAddr == "" {
		logger.Info("no trace collector configured, spans stay in-process")
		return
	}

	delay := cfg.RetryDelay()
	for attempt := 1; ; attempt++ {
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.CollectorAddr),
			otlptracegrpc.WithInsecure(),
		)
		if err == nil {
			tp.RegisterSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter))
			logger.Info("trace exporter registered", zap.String("collector", cfg.CollectorAddr))
			return
		}
		if attempt >= cfg.RegisterRetries {
			logger.Warn("trace exporter registration abandoned, spans will not be exported",
				zap.String("collector", cfg.CollectorAddr),
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
			return
		}
		logger.Info("trace exporter registration failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}
