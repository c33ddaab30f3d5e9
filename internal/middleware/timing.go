package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/multitarefa/cadastro-api/internal/observability"
)

// RequestStartKey holds the time.Time at which ActionTiming started the request
const RequestStartKey = "request_start_time"

// PanicError carries a recovered panic value to the telemetry sink
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is an error
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ActionTiming emits one ActionExecutionTime metric per handled request.
// A panicking handler is reported to the sink and forces status 500 before
// the panic continues to the outer middleware.
func ActionTiming(sink observability.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(RequestStartKey, start)

		defer func() {
			elapsed := float64(time.Since(start).Microseconds()) / 1000
			ctx := c.Request.Context()

			if r := recover(); r != nil {
				sink.TrackException(ctx, &PanicError{Value: r}, map[string]string{
					"route":  c.FullPath(),
					"method": c.Request.Method,
				})
				sink.TrackMetric(ctx, observability.ActionExecutionTime, elapsed)
				c.Writer.WriteHeader(http.StatusInternalServerError)
				panic(r)
			}

			sink.TrackMetric(ctx, observability.ActionExecutionTime, elapsed)
		}()

		c.Next()
	}
}
