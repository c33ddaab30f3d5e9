package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})
	return recorder
}

func attributeMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestTraceEndpointStep(t *testing.T) {
	recorder := setupRecorder(t)

	_, span := TraceEndpointStep(context.Background(), "load", map[string]interface{}{
		"string_attr":  "value",
		"int_attr":     42,
		"int64_attr":   int64(123),
		"bool_attr":    true,
		"float64_attr": 3.14,
		"unknown_attr": struct{}{},
	})
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "endpoint.step.load", spans[0].Name())

	attrs := attributeMap(spans[0].Attributes())
	assert.Equal(t, "load", attrs["step.name"].AsString())
	assert.Equal(t, "value", attrs["string_attr"].AsString())
	assert.Equal(t, int64(42), attrs["int_attr"].AsInt64())
	assert.Equal(t, int64(123), attrs["int64_attr"].AsInt64())
	assert.True(t, attrs["bool_attr"].AsBool())
	assert.InDelta(t, 3.14, attrs["float64_attr"].AsFloat64(), 0.0001)
	assert.Equal(t, "unknown_type", attrs["unknown_attr"].AsString())
}

func TestStepHelpers(t *testing.T) {
	recorder := setupRecorder(t)
	ctx := context.Background()

	_, s1 := TraceInputParsing(ctx, "cadastro_body")
	s1.End()
	_, s2 := TraceBusinessLogic(ctx, "create_cadastro")
	s2.End()
	_, s3 := TraceResponseSerialization(ctx, "success")
	s3.End()

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "cadastro_body", attributeMap(spans[0].Attributes())["input.type"].AsString())
	assert.Equal(t, "create_cadastro", attributeMap(spans[1].Attributes())["logic.type"].AsString())
	assert.Equal(t, "success", attributeMap(spans[2].Attributes())["response.type"].AsString())
}

func TestRecordErrorInSpan(t *testing.T) {
	recorder := setupRecorder(t)

	_, span := TraceEndpointStep(context.Background(), "fail", nil)
	RecordErrorInSpan(span, errors.New("boom"), map[string]interface{}{"cadastro_id": 7})
	AddSpanAttribute(span, "retry", false)
	AddTimingToSpan(span, time.Now().Add(-10*time.Millisecond))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)

	attrs := attributeMap(spans[0].Attributes())
	assert.Equal(t, int64(7), attrs["cadastro_id"].AsInt64())
	assert.False(t, attrs["retry"].AsBool())
	assert.GreaterOrEqual(t, attrs["duration_ms"].AsInt64(), int64(10))
}
