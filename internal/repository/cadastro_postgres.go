package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/multitarefa/cadastro-api/internal/models"
	"github.com/shopspring/decimal"
)

// PostgreSQL error classes surfaced as ErrConflict
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// saldo_inicial is read as text so decimals keep their exact scale
const cadastroColumns = `id, nome, descricao, endereco, telefone, email, data_abertura, saldo_inicial::text, tipo_conta, xmin`

// PostgresCadastroRepository stores cadastros in PostgreSQL
type PostgresCadastroRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCadastroRepository creates a repository on top of pool
func NewPostgresCadastroRepository(pool *pgxpool.Pool) *PostgresCadastroRepository {
	return &PostgresCadastroRepository{pool: pool}
}

// List returns up to limit records starting at offset, in storage order
func (r *PostgresCadastroRepository) List(ctx context.Context, offset, limit int) ([]models.Cadastro, error) {
	query := `SELECT ` + cadastroColumns + ` FROM cadastros ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, &models.StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	cadastros := make([]models.Cadastro, 0, limit)
	for rows.Next() {
		c, err := scanCadastro(rows)
		if err != nil {
			return nil, &models.StoreError{Op: "list", Err: fmt.Errorf("scan cadastro: %w", err)}
		}
		cadastros = append(cadastros, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "list", Err: err}
	}
	return cadastros, nil
}

// Get returns the record with the given id
func (r *PostgresCadastroRepository) Get(ctx context.Context, id int) (*models.Cadastro, error) {
	query := `SELECT ` + cadastroColumns + ` FROM cadastros WHERE id = $1`

	c, err := scanCadastro(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, &models.StoreError{Op: "get", Err: err}
	}
	return &c, nil
}

// Insert persists a new record and fills in its id and version
func (r *PostgresCadastroRepository) Insert(ctx context.Context, c *models.Cadastro) error {
	query := `
		INSERT INTO cadastros (nome, descricao, endereco, telefone, email, data_abertura, saldo_inicial, tipo_conta)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8)
		RETURNING id, xmin, saldo_inicial::text
	`
	var saldo string
	err := r.pool.QueryRow(ctx, query,
		c.Nome,
		c.Descricao,
		c.Endereco,
		c.Telefone,
		c.Email,
		c.DataAbertura.Time,
		c.SaldoInicial.String(),
		c.TipoConta,
	).Scan(&c.ID, &c.Version, &saldo)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("insert cadastro: %w", models.ErrConflict)
		}
		return &models.StoreError{Op: "insert", Err: err}
	}

	// Echo the stored value so the caller sees what a later read returns
	stored, err := decimal.NewFromString(saldo)
	if err != nil {
		return &models.StoreError{Op: "insert", Err: fmt.Errorf("parse saldo_inicial %q: %w", saldo, err)}
	}
	c.SaldoInicial = stored
	return nil
}

// Update overwrites the replaceable fields of the record, guarded by its
// version. A version mismatch on an existing row is ErrConcurrency.
func (r *PostgresCadastroRepository) Update(ctx context.Context, c *models.Cadastro) error {
	query := `
		UPDATE cadastros
		SET nome = $2, descricao = $3, endereco = $4, telefone = $5, email = $6, tipo_conta = $7
		WHERE id = $1 AND xmin = $8
		RETURNING xmin
	`
	var version uint32
	err := r.pool.QueryRow(ctx, query,
		c.ID,
		c.Nome,
		c.Descricao,
		c.Endereco,
		c.Telefone,
		c.Email,
		c.TipoConta,
		c.Version,
	).Scan(&version)
	if err == nil {
		c.Version = version
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		if isConstraintViolation(err) {
			return fmt.Errorf("update cadastro %d: %w", c.ID, models.ErrConflict)
		}
		return &models.StoreError{Op: "update", Err: err}
	}

	// No row matched: either it is gone or someone else wrote first
	exists, err := r.exists(ctx, c.ID)
	if err != nil {
		return &models.StoreError{Op: "update", Err: err}
	}
	if !exists {
		return models.ErrNotFound
	}
	return fmt.Errorf("update cadastro %d: %w", c.ID, models.ErrConcurrency)
}

// Delete removes the record physically
func (r *PostgresCadastroRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM cadastros WHERE id = $1`, id)
	if err != nil {
		return &models.StoreError{Op: "delete", Err: err}
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Ping checks the connection to the database
func (r *PostgresCadastroRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return &models.StoreError{Op: "ping", Err: err}
	}
	return nil
}

func (r *PostgresCadastroRepository) exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cadastros WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func scanCadastro(row pgx.Row) (models.Cadastro, error) {
	var (
		c      models.Cadastro
		opened time.Time
		saldo  string
	)
	err := row.Scan(
		&c.ID,
		&c.Nome,
		&c.Descricao,
		&c.Endereco,
		&c.Telefone,
		&c.Email,
		&opened,
		&saldo,
		&c.TipoConta,
		&c.Version,
	)
	if err != nil {
		return c, err
	}
	c.DataAbertura = models.NewDate(opened)
	c.SaldoInicial, err = decimal.NewFromString(saldo)
	if err != nil {
		return c, fmt.Errorf("parse saldo_inicial %q: %w", saldo, err)
	}
	return c, nil
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
		return true
	}
	return false
}
