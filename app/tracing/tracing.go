// Package tracing configures the OpenTelemetry tracer provider exporting spans over OTLP/HTTP.
package tracing

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Options defines tracing parameters. Empty Endpoint disables export.
type Options struct {
	Endpoint    string  // OTLP/HTTP collector URL, e.g. http://localhost:4318
	SampleRate  float64 // fraction of root spans sampled, 0..1
	ServiceName string
	Version     string
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Setup installs the global tracer provider. With no endpoint the default no-op provider stays in place.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	if opts.Endpoint == "" {
		log.Printf("[DEBUG] tracing disabled, no endpoint")
		return func(context.Context) error { return nil }, nil
	}
	if opts.SampleRate < 0 || opts.SampleRate > 1 {
		return nil, fmt.Errorf("invalid sample rate %v, must be in 0..1", opts.SampleRate)
	}

	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(opts.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", opts.ServiceName),
		attribute.String("service.version", opts.Version),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRate))),
	)
	otel.SetTracerProvider(tp)
	log.Printf("[INFO] tracing enabled, endpoint %s, sample rate %.2f", opts.Endpoint, opts.SampleRate)

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown tracer provider: %w", err)
		}
		return nil
	}, nil
}
