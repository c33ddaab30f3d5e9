package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multitarefa/cadastro-api/internal/models"
	"go.uber.org/zap"
)

// respondError is the single place where error kinds become HTTP answers.
// fallback is the message of the 500 answer for the current operation.
func (h *CadastroHandlers) respondError(c *gin.Context, err error, fallback string, id int) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.Envelope{
			Success: false,
			Message: msgInvalidData,
			Errors:  verr.Fields,
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.Failure(fmt.Sprintf(msgNotFoundFormat, id)))
	case errors.Is(err, models.ErrConcurrency):
		h.logger.Warn("concurrency conflict", zap.Int("cadastro_id", id), zap.Error(err))
		c.JSON(http.StatusConflict, models.Failure(msgConcurrency))
	default:
		// ErrConflict and StoreError land here too and are never shown to clients
		h.logger.Error("cadastro operation failed",
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Int("cadastro_id", id),
			zap.Error(err))
		if h.sink != nil {
			h.sink.TrackException(c.Request.Context(), err, map[string]string{
				"route":  c.FullPath(),
				"method": c.Request.Method,
			})
		}
		c.JSON(http.StatusInternalServerError, models.Failure(fallback))
	}
}

// respondBindError answers a body that could not be decoded
func (h *CadastroHandlers) respondBindError(c *gin.Context, err error) {
	h.logger.Debug("invalid request body", zap.Error(err))
	verr := models.NewValidationError()
	verr.Add("body", "The request body is not a valid cadastro.")
	h.respondError(c, verr, "", 0)
}
