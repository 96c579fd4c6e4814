// Package observability configures OpenTelemetry tracing.
package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/stwalsh4118/cadastre/internal/config"
	"github.com/stwalsh4118/cadastre/internal/logger"
)

// ServiceName identifies this process in exported traces.
const ServiceName = "cadastre"

// shutdownTimeout bounds the final span flush.
const shutdownTimeout = 5 * time.Second

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func()

// InitTracer installs a global tracer provider exporting spans over OTLP
// gRPC. When tracing is disabled it leaves the no-op provider in place and
// returns a no-op shutdown.
func InitTracer(ctx context.Context, cfg config.ObservabilityConfig, version string, log *logger.Logger) (ShutdownFunc, error) {
	if !cfg.TracingEnabled {
		log.Debug("Tracing is disabled", nil)
		return func() {}, nil
	}

	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(512),
			sdktrace.WithBatchTimeout(10*time.Second),
			sdktrace.WithMaxQueueSize(2048),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("Tracer initialized", map[string]interface{}{
		"endpoint": cfg.TracingEndpoint,
	})

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown tracer provider", err, nil)
		}
	}, nil
}
