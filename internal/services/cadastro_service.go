package services

import (
	"context"
	"errors"
	"time"

	"github.com/multitarefa/cadastro-api/internal/logging"
	"github.com/multitarefa/cadastro-api/internal/models"
	"github.com/multitarefa/cadastro-api/internal/observability"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// CadastroStore is the persistence contract the service depends on
type CadastroStore interface {
	List(ctx context.Context, offset, limit int) ([]models.Cadastro, error)
	Get(ctx context.Context, id int) (*models.Cadastro, error)
	Insert(ctx context.Context, c *models.Cadastro) error
	Update(ctx context.Context, c *models.Cadastro) error
	Delete(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}

// CadastroService applies the registration rules on top of a CadastroStore
type CadastroService struct {
	store   CadastroStore
	logger  *logging.SafeLogger
	metrics *observability.Metrics
	now     func() time.Time
	tracer  trace.Tracer
}

// Option customizes a CadastroService
type Option func(*CadastroService)

// WithClock replaces the clock used to stamp dataAbertura
func WithClock(now func() time.Time) Option {
	return func(s *CadastroService) { s.now = now }
}

// WithMetrics records store operations into m
func WithMetrics(m *observability.Metrics) Option {
	return func(s *CadastroService) { s.metrics = m }
}

// NewCadastroService creates a new cadastro service instance
func NewCadastroService(store CadastroStore, logger *logging.SafeLogger, opts ...Option) *CadastroService {
	s := &CadastroService{
		store:  store,
		logger: logger.Named("cadastro_service"),
		now:    time.Now,
		tracer: otel.Tracer("cadastro-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of cadastros in their list projection
func (s *CadastroService) List(ctx context.Context, p Pagination) ([]models.CadastroDTO, error) {
	ctx, span := s.tracer.Start(ctx, "CadastroService.List", trace.WithAttributes(
		attribute.Int("page", p.Page),
		attribute.Int("page_size", p.PageSize),
	))
	defer span.End()

	cadastros, err := s.store.List(ctx, p.Offset(), p.PageSize)
	s.record("list", err)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.CadastroDTO, 0, len(cadastros))
	for i := range cadastros {
		dtos = append(dtos, cadastros[i].ToDTO())
	}
	span.SetAttributes(attribute.Int("cadastros_returned", len(dtos)))
	return dtos, nil
}

// Get returns a single cadastro
func (s *CadastroService) Get(ctx context.Context, id int) (*models.Cadastro, error) {
	ctx, span := s.tracer.Start(ctx, "CadastroService.Get", trace.WithAttributes(attribute.Int("cadastro_id", id)))
	defer span.End()

	c, err := s.store.Get(ctx, id)
	s.record("get", err)
	return c, err
}

// Create validates the input, stamps dataAbertura with today's date, clamps
// saldoInicial at zero and persists the record
func (s *CadastroService) Create(ctx context.Context, in models.CadastroInput) (*models.Cadastro, error) {
	ctx, span := s.tracer.Start(ctx, "CadastroService.Create")
	defer span.End()

	if err := ValidateCadastroInput(in); err != nil {
		return nil, err
	}

	c := &models.Cadastro{
		DataAbertura: models.NewDate(s.now()),
		SaldoInicial: decimal.Max(in.SaldoInicial, decimal.Zero),
	}
	c.ApplyInput(in)

	err := s.store.Insert(ctx, c)
	s.record("insert", err)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("cadastro_id", c.ID))
	s.logger.Info("cadastro created", zap.Int("cadastro_id", c.ID))
	return c, nil
}

// Update replaces nome, descricao, endereco, telefone, email and tipoConta
// of an existing cadastro. It never creates a record.
func (s *CadastroService) Update(ctx context.Context, id int, in models.CadastroInput) error {
	ctx, span := s.tracer.Start(ctx, "CadastroService.Update", trace.WithAttributes(attribute.Int("cadastro_id", id)))
	defer span.End()

	if err := ValidateCadastroInput(in); err != nil {
		return err
	}

	existing, err := s.store.Get(ctx, id)
	s.record("get", err)
	if err != nil {
		return err
	}

	existing.ApplyInput(in)

	err = s.store.Update(ctx, existing)
	s.record("update", err)
	if err != nil {
		if errors.Is(err, models.ErrConcurrency) {
			s.logger.Warn("concurrent update detected", zap.Int("cadastro_id", id))
		}
		return err
	}

	s.logger.Info("cadastro updated", zap.Int("cadastro_id", id))
	return nil
}

// Delete removes an existing cadastro
func (s *CadastroService) Delete(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "CadastroService.Delete", trace.WithAttributes(attribute.Int("cadastro_id", id)))
	defer span.End()

	_, err := s.store.Get(ctx, id)
	s.record("get", err)
	if err != nil {
		return err
	}

	err = s.store.Delete(ctx, id)
	s.record("delete", err)
	if err != nil {
		return err
	}

	s.logger.Info("cadastro deleted", zap.Int("cadastro_id", id))
	return nil
}

// Ping reports whether the store is reachable
func (s *CadastroService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *CadastroService) record(operation string, err error) {
	if s.metrics == nil {
		return
	}
	status := "success"
	switch {
	case err == nil:
	case errors.Is(err, models.ErrNotFound):
		status = "not_found"
	case errors.Is(err, models.ErrConcurrency), errors.Is(err, models.ErrConflict):
		status = "conflict"
	default:
		status = "error"
	}
	s.metrics.DatabaseOperations.WithLabelValues(operation, status).Inc()
}
