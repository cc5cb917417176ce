// Package tracing installs the OpenTelemetry tracer provider of the render
// service. Spans are exported over OTLP/gRPC or to Zipkin, depending on
// TRACE_EXPORTER.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/sllt/fql/pkg/fql/config"
)

const (
	defaultServiceName = "fql"
	defaultOTLPURL     = "localhost:4317"
	defaultZipkinURL   = "http://localhost:9411/api/v2/spans"

	exporterOTLP   = "otlp"
	exporterZipkin = "zipkin"
)

var (
	errUnknownExporter = errors.New("unknown trace exporter")
	errInvalidRatio    = errors.New("TRACER_RATIO must be a number between 0 and 1")
)

type logger interface {
	Infof(format string, args ...any)
}

// ShutdownFunc flushes pending spans and stops the exporter.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup reads TRACE_EXPORTER, TRACER_URL, TRACER_RATIO and APP_NAME from cfg
// and installs a global tracer provider. With no exporter configured nothing
// is installed and the returned ShutdownFunc does nothing.
func Setup(ctx context.Context, cfg config.Config, logger logger) (ShutdownFunc, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Get("TRACE_EXPORTER")))
	if name == "" {
		return noopShutdown, nil
	}

	ratio, err := strconv.ParseFloat(cfg.GetOrDefault("TRACER_RATIO", "1"), 64)
	if err != nil || ratio < 0 || ratio > 1 {
		return nil, errInvalidRatio
	}

	exporter, err := newExporter(ctx, name, cfg.Get("TRACER_URL"))
	if err != nil {
		return nil, err
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.GetOrDefault("APP_NAME", defaultServiceName)),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logger.Infof("exporting traces with %s, sampling ratio %v", name, ratio)

	return func(ctx context.Context) error {
		if err := provider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown tracer provider: %w", err)
		}

		return nil
	}, nil
}

func newExporter(ctx context.Context, name, url string) (sdktrace.SpanExporter, error) {
	switch name {
	case exporterOTLP:
		if url == "" {
			url = defaultOTLPURL
		}

		return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(url), otlptracegrpc.WithInsecure())
	case exporterZipkin:
		if url == "" {
			url = defaultZipkinURL
		}

		return zipkin.New(url)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownExporter, name)
	}
}
