// Package telemetry provides optional OpenTelemetry instrumentation.
//
// Export is enabled only when both the enabled flag and an OTLP endpoint are
// configured; in every other case setup is a no-op and the process runs
// without telemetry.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
)

// noopShutdown is returned when telemetry is not exporting; callers defer
// the shutdown function unconditionally.
func noopShutdown(context.Context) error { return nil }

// Setup initializes tracing and metrics export for the process.
//
// When telemetry is disabled, or enabled without an endpoint, Setup logs the
// decision and returns a no-op shutdown function with a nil error: a missing
// collector must never fail the process.
//
// Otherwise it builds a resource carrying the service name, wires an OTLP
// gRPC span exporter through a batch processor into a TracerProvider, an
// OTLP gRPC metric exporter through a periodic reader into a MeterProvider,
// and installs both as the global providers. The returned shutdown function
// flushes and stops both providers.
func Setup(ctx context.Context, cfg config.Telemetry, log *logger.Logger) (func(context.Context) error, error) {
	if !cfg.Enabled {
		log.Info().Msg("OpenTelemetry is disabled")
		return noopShutdown, nil
	}

	if cfg.Endpoint == "" {
		log.Warn().Msg("OTEL_ENABLED is true but OTEL_EXPORTER_OTLP_ENDPOINT is not set, OpenTelemetry will not export data")
		return noopShutdown, nil
	}

	log.Info().Str("service_name", cfg.ServiceName).Msg("initializing OpenTelemetry")

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("error building telemetry resource: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("error creating OTLP trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(traceExporter)),
	)
	otel.SetTracerProvider(tracerProvider)

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		shutdownErr := tracerProvider.Shutdown(ctx)
		return noopShutdown, errors.Join(
			fmt.Errorf("error creating OTLP metric exporter: %w", err),
			shutdownErr,
		)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
	)
	otel.SetMeterProvider(meterProvider)

	log.Info().Str("endpoint", cfg.Endpoint).Msg("OpenTelemetry initialized")

	shutdown := func(ctx context.Context) error {
		return errors.Join(
			tracerProvider.Shutdown(ctx),
			meterProvider.Shutdown(ctx),
		)
	}

	return shutdown, nil
}
