package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fridayblessings411-cell/AgroTour/internal/platform/config"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(context.Background(), config.TracingConfig{}, nil)
	require.NoError(t, err)
	require.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_StdoutFlushesOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewProvider(context.Background(), config.TracingConfig{
		Enabled:     true,
		Exporter:    config.TracingExporterStdout,
		SampleRate:  1.0,
		ServiceName: "agrotour-test",
	}, &buf)
	require.NoError(t, err)
	require.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "registry.CreateFarm")
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))
	require.Contains(t, buf.String(), "registry.CreateFarm")
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	_, err := NewProvider(context.Background(), config.TracingConfig{Enabled: true, Exporter: "zipkin"}, nil)
	require.Error(t, err)
}
