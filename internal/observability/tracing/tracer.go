// Package tracing provides OpenTelemetry tracing for the API: a shared
// tracer, an HTTP server span middleware, and an optional stdout
// exporter for local debugging.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("mig-catalog")

// GetTracer returns the shared tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}

// InstallStdoutExporter configures a tracer provider that writes spans
// to stdout and installs it globally together with the W3C propagator.
// The returned shutdown function flushes pending spans.
func InstallStdoutExporter() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return provider.Shutdown, nil
}
