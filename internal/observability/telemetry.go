package observability

import (
	"context"
	"fmt"

	"github.com/multitarefa/cadastro-api/internal/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ActionExecutionTime is the metric emitted once per handled action, in milliseconds
const ActionExecutionTime = "ActionExecutionTime"

// Sink receives exception and metric events. Implementations must be safe
// for concurrent use.
type Sink interface {
	TrackException(ctx context.Context, err error, properties map[string]string)
	TrackMetric(ctx context.Context, name string, value float64)
}

// Telemetry is the default Sink. Events are attached to the active span,
// mirrored to Prometheus and logged.
type Telemetry struct {
	logger  *logging.SafeLogger
	metrics *Metrics
}

// NewTelemetry creates the default sink
func NewTelemetry(logger *logging.SafeLogger, metrics *Metrics) *Telemetry {
	return &Telemetry{
		logger:  logger.Named("telemetry"),
		metrics: metrics,
	}
}

// TrackException records err on the current span and counts it
func (t *Telemetry) TrackException(ctx context.Context, err error, properties map[string]string) {
	if err == nil {
		return
	}

	errType := fmt.Sprintf("%T", err)

	attrs := make([]attribute.KeyValue, 0, len(properties)+1)
	attrs = append(attrs, attribute.String("exception.type", errType))
	fields := make([]zap.Field, 0, len(properties)+2)
	fields = append(fields, zap.Error(err), zap.String("exception_type", errType))
	for k, v := range properties {
		attrs = append(attrs, attribute.String(k, v))
		fields = append(fields, zap.String(k, v))
	}

	span := trace.SpanFromContext(ctx)
	span.RecordError(err, trace.WithAttributes(attrs...))
	span.SetStatus(codes.Error, err.Error())

	if t.metrics != nil {
		t.metrics.TrackedExceptions.WithLabelValues(errType).Inc()
	}

	t.logger.Error("exception tracked", fields...)
}

// TrackMetric records a named value on the current span and in the
// tracked metric histogram
func (t *Telemetry) TrackMetric(ctx context.Context, name string, value float64) {
	trace.SpanFromContext(ctx).AddEvent("metric", trace.WithAttributes(
		attribute.String("metric.name", name),
		attribute.Float64("metric.value", value),
	))

	if t.metrics != nil {
		t.metrics.TrackedMetrics.WithLabelValues(name).Observe(value)
	}

	t.logger.Debug("metric tracked",
		zap.String("name", name),
		zap.Float64("value", value),
	)
}
