package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/multitarefa/cadastro-api/internal/logging"
	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be checked
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse reports the status of the process and its dependencies
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthHandlers reports the health of the process and its store
type HealthHandlers struct {
	store  Pinger
	logger *logging.SafeLogger
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(store Pinger, logger *logging.SafeLogger) *HealthHandlers {
	return &HealthHandlers{store: store, logger: logger}
}

// HealthCheck godoc
// @Summary Verificar saúde da API
// @Description Verifica se a API e o banco de dados estão respondendo
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Todos os serviços estão saudáveis"
// @Failure 503 {object} HealthResponse "Um ou mais serviços estão indisponíveis"
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "healthy"},
	}

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Error("database health check failed", zap.Error(err))
		health.Status = "unhealthy"
		health.Services["database"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}
