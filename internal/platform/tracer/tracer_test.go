package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"cobalt/internal/platform/tracer"
)

func TestNoopTracer(t *testing.T) {
	ctx := context.Background()
	newCtx, span := tracer.NewNoop().Start(ctx, tracer.SpanAccountLoad, tracer.String(tracer.AttrAccountID, "a"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Bool(tracer.AttrCacheHit, true))
	span.AddEvent(tracer.EventPHIDisclosed, tracer.Int(tracer.AttrCount, 1))
	span.End(errors.New("boom"))
}

func TestOTelTracer(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanPatientOrderLoad,
		tracer.String(tracer.AttrPatientOrderID, "po-1"),
		tracer.Duration("elapsed_ms", 1500*time.Millisecond),
	)
	require.NotNil(t, ctx)
	span.SetAttributes(tracer.Int(tracer.AttrCount, 3))
	span.AddEvent(tracer.EventPHIDisclosed)
	span.End(nil)
}

func TestDurationInMilliseconds(t *testing.T) {
	assert.Equal(t, int64(1500), tracer.Duration("d", 1500*time.Millisecond).Value)
}
