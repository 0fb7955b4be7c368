package tracer

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracer() (*Tracer, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	return NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))), rec
}

func TestStartSpanAndRecordError(t *testing.T) {
	tr, rec := newRecordingTracer()

	_, span := tr.StartSpan(context.Background(), "weaviate.schema.get")
	tr.SetAttributes(span, map[string]interface{}{"http.method": "GET", "http.status_code": 500})
	tr.RecordErrorOnSpan(span, errors.New("boom"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "weaviate.schema.get", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Len(t, ended[0].Attributes(), 2)
}

func TestInjectHeaders(t *testing.T) {
	tr, _ := newRecordingTracer()
	ctx, span := tr.StartSpan(context.Background(), "op")
	defer span.End()

	h := http.Header{}
	tr.InjectHeaders(ctx, h)

	assert.Contains(t, h.Get("traceparent"), span.SpanContext().TraceID().String())
}

func TestCarrierRoundTrip(t *testing.T) {
	tr, _ := newRecordingTracer()
	ctx, span := tr.StartSpan(context.Background(), "op")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.NotEmpty(t, carrier["traceparent"])

	restored := tr.SetCarrierOnContext(context.Background(), carrier)
	_, child := tr.StartSpan(restored, "child")
	defer child.End()
	assert.Equal(t, span.SpanContext().TraceID(), child.SpanContext().TraceID())
}
