package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/multitarefa/cadastro-api/internal/logging"
	"go.uber.org/zap"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS cadastros (
	id            SERIAL PRIMARY KEY,
	nome          TEXT NOT NULL,
	descricao     TEXT NOT NULL,
	endereco      TEXT,
	telefone      TEXT,
	email         TEXT,
	data_abertura DATE NOT NULL,
	saldo_inicial NUMERIC NOT NULL DEFAULT 0,
	tipo_conta    TEXT NOT NULL
)`

// InitPostgres opens the connection pool, verifies it and makes sure the
// cadastros table exists.
func InitPostgres(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = cfg.DatabaseMaxConn
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	// Query spans for every statement
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := EnsureSchema(connectCtx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logging.Logger.Info("connected to PostgreSQL",
		zap.String("url", maskDatabaseURL(cfg.DatabaseURL)),
		zap.Int32("max_conns", cfg.DatabaseMaxConn),
	)

	return pool, nil
}

// EnsureSchema creates the cadastros table if it does not exist yet
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// maskDatabaseURL hides the password of a connection URL for logging
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "****"
	}
	if u.User == nil {
		return u.String()
	}
	// url.UserPassword would percent-encode the mask
	u.User = nil
	return strings.Replace(u.String(), "://", "://****:****@", 1)
}
