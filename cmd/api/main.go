package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/multitarefa/cadastro-api/internal/config"
	"github.com/multitarefa/cadastro-api/internal/handlers"
	"github.com/multitarefa/cadastro-api/internal/logging"
	"github.com/multitarefa/cadastro-api/internal/observability"
	"github.com/multitarefa/cadastro-api/internal/repository"
	"github.com/multitarefa/cadastro-api/internal/router"
	"github.com/multitarefa/cadastro-api/internal/services"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// @title           Cadastro API
// @version         1.0
// @description     API de cadastro com operações de listagem, consulta, criação, atualização e remoção.

// @host      localhost:5089
// @BasePath  /

// @tag.name cadastro
// @tag.description Operações sobre cadastros

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.AppConfig

	// Initialize observability
	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	// Every component logs with the deployment it runs in
	logger := logging.Logger.With(
		zap.String("environment", cfg.Environment),
		zap.String("service_version", cfg.ServiceVersion),
	)

	metrics := observability.NewMetrics()
	sink := observability.NewTelemetry(logger, metrics)

	store, closeStore := openStore(cfg)
	defer closeStore()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := services.NewCadastroService(store, logger, services.WithMetrics(metrics))
	engine := router.New(router.Options{
		Logger:        logger,
		Metrics:       metrics,
		Sink:          sink,
		Cadastros:     handlers.NewCadastroHandlers(svc, sink, logger),
		Health:        handlers.NewHealthHandlers(svc, logger),
		CORSAllowAll:  cfg.CORSAllowAll,
		EnableSwagger: !cfg.IsProduction(),
	})

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      otelhttp.NewHandler(engine, "cadastro-api"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("store_driver", cfg.StoreDriver),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited")
}

// openStore builds the store selected by STORE_DRIVER and its cleanup
func openStore(cfg *config.Config) (services.CadastroStore, func()) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logging.Logger.Warn("using in-memory store, data is lost on restart")
		return repository.NewMemoryCadastroRepository(), func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := config.InitPostgres(ctx, cfg)
	if err != nil {
		logging.Logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	return repository.NewPostgresCadastroRepository(pool), pool.Close
}
