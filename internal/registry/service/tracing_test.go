package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
)

func TestOperationsAreTraced(t *testing.T) {
	ctx := context.Background()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	r := newRegistry(t, WithTracer(tp.Tracer("registry-test")))
	require.NoError(t, r.svc.SetAuthorityContract(ctx, testAuthority))
	_, err := r.svc.CreateFarm(ctx, testCaller, validRegistration("Traced"))
	require.NoError(t, err)
	_, err = r.svc.CreateFarm(ctx, testCaller, validRegistration("Traced"))
	require.ErrorIs(t, err, models.ErrFarmAlreadyExists)

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "registry.SetAuthorityContract", spans[0].Name())
	assert.Equal(t, "registry.CreateFarm", spans[1].Name())
	assert.Equal(t, codes.Ok, spans[1].Status().Code)
	assert.Equal(t, codes.Error, spans[2].Status().Code)
}
