// Package tracing installs the OpenTelemetry tracer provider used by the
// registry service spans.
package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/fridayblessings411-cell/AgroTour/internal/platform/config"
)

// Provider owns the SDK tracer provider, if any.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewProvider builds a provider from cfg and installs it globally. A
// disabled config yields a no-op tracer. w receives spans from the stdout
// exporter; nil means the exporter's default of os.Stdout.
func NewProvider(ctx context.Context, cfg config.TracingConfig, w io.Writer) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{tracer: noop.NewTracerProvider().Tracer("noop")}, nil
	}

	var exporter sdktrace.SpanExporter
	var err error
	switch cfg.Exporter {
	case config.TracingExporterStdout:
		opts := []stdouttrace.Option{}
		if w != nil {
			opts = append(opts, stdouttrace.WithWriter(w))
		}
		exporter, err = stdouttrace.New(opts...)
	case config.TracingExporterOTLP:
		exporter, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	case config.TracingExporterNone, "":
	default:
		return nil, fmt.Errorf("unsupported tracing exporter: %s", cfg.Exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s exporter: %w", cfg.Exporter, err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "agrotour-registry"
	}
	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)

	return &Provider{provider: provider, tracer: provider.Tracer(serviceName)}, nil
}

func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

func (p *Provider) Enabled() bool {
	return p.provider != nil
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
