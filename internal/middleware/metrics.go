package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/multitarefa/cadastro-api/internal/observability"
)

// RequestCounter increments http_requests_total once per request. It must be
// the outermost middleware below recovery so that it sees escaping panics,
// which are counted as status 500 and re-raised unchanged.
func RequestCounter(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method

		defer func() {
			if r := recover(); r != nil {
				metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(http.StatusInternalServerError), observability.ResultError).Inc()
				panic(r)
			}
			metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(c.Writer.Status()), observability.ResultSuccess).Inc()
		}()

		c.Next()
	}
}
