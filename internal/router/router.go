package router

import (
	"io"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/multitarefa/cadastro-api/internal/handlers"
	"github.com/multitarefa/cadastro-api/internal/logging"
	"github.com/multitarefa/cadastro-api/internal/middleware"
	"github.com/multitarefa/cadastro-api/internal/observability"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/multitarefa/cadastro-api/docs"
)

// Options holds everything the HTTP surface is built from
type Options struct {
	Logger    *logging.SafeLogger
	Metrics   *observability.Metrics
	Sink      observability.Sink
	Cadastros *handlers.CadastroHandlers
	Health    *handlers.HealthHandlers

	// CORSAllowAll enables the allow-any-origin policy
	CORSAllowAll bool
	// EnableSwagger serves the API documentation under /swagger
	EnableSwagger bool
}

// New composes middleware and routes. Recovery sits outside the request
// counter so panics are counted before the default 500 handling, and its
// stack traces go to the service logger.
func New(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.RecoveryWithWriter(recoveryWriter(opts.Logger)),
		middleware.RequestCounter(opts.Metrics),
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		middleware.RequestTracker(opts.Metrics),
	)
	if opts.CORSAllowAll {
		router.Use(cors.New(allowAllCORS()))
	}

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	router.GET("/health", opts.Health.HealthCheck)

	api := router.Group("/api/cadastro", middleware.ActionTiming(opts.Sink))
	opts.Cadastros.RegisterRoutes(api)

	if opts.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}

func allowAllCORS() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Accept", "Authorization", middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{"Location", middleware.RequestIDHeader}
	return cfg
}

func recoveryWriter(logger *logging.SafeLogger) io.Writer {
	stdLog, err := zap.NewStdLogAt(logger.Unwrap().Named("recovery"), zap.ErrorLevel)
	if err != nil {
		return gin.DefaultErrorWriter
	}
	return stdLog.Writer()
}
