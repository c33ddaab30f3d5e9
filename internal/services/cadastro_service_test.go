package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/multitarefa/cadastro-api/internal/logging"
	"github.com/multitarefa/cadastro-api/internal/models"
	"github.com/multitarefa/cadastro-api/internal/observability"
	"github.com/multitarefa/cadastro-api/internal/repository"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 15, 22, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*CadastroService, *repository.MemoryCadastroRepository, *observability.Metrics) {
	t.Helper()
	store := repository.NewMemoryCadastroRepository()
	metrics := observability.NewMetrics()
	svc := NewCadastroService(store, logging.NewNop(),
		WithClock(func() time.Time { return fixedNow }),
		WithMetrics(metrics),
	)
	return svc, store, metrics
}

func validInput(nome string) models.CadastroInput {
	return models.CadastroInput{
		Nome:         nome,
		Descricao:    "Conta de " + nome,
		SaldoInicial: decimal.RequireFromString("150.25"),
		TipoConta:    "corrente",
	}
}

// failingStore fails every call with the configured error
type failingStore struct {
	err error
}

func (f failingStore) List(context.Context, int, int) ([]models.Cadastro, error) { return nil, f.err }
func (f failingStore) Get(context.Context, int) (*models.Cadastro, error)        { return nil, f.err }
func (f failingStore) Insert(context.Context, *models.Cadastro) error            { return f.err }
func (f failingStore) Update(context.Context, *models.Cadastro) error            { return f.err }
func (f failingStore) Delete(context.Context, int) error                         { return f.err }
func (f failingStore) Ping(context.Context) error                                { return f.err }

func TestCadastroService_Create(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Padaria"))
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "2026-03-15", created.DataAbertura.String())
	assert.True(t, created.SaldoInicial.Equal(decimal.RequireFromString("150.25")))

	stored, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Padaria", stored.Nome)
}

func TestCadastroService_Create_ClampsNegativeBalance(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := validInput("Mercado")
	in.SaldoInicial = decimal.NewFromInt(-50)

	created, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, created.SaldoInicial.IsZero(), "negative balance must be stored as zero")
}

func TestCadastroService_Create_Validation(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CadastroInput{Descricao: "sem nome", TipoConta: "corrente"})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "nome")

	all, err := store.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, all, "invalid input must not be persisted")
}

func TestCadastroService_List(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, validInput("Loja"))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, Pagination{Page: 2, PageSize: 5})
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, 6, page[0].ID)
	assert.Equal(t, 10, page[4].ID)

	last, err := svc.List(ctx, Pagination{Page: 3, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, last, 2)

	beyond, err := svc.List(ctx, Pagination{Page: 9, PageSize: 5})
	require.NoError(t, err)
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)
}

func TestCadastroService_Get_NotFound(t *testing.T) {
	svc, _, metrics := newTestService(t)

	_, err := svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DatabaseOperations.WithLabelValues("get", "not_found")))
}

func TestCadastroService_Update(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Antigo"))
	require.NoError(t, err)

	email := "contato@example.com"
	in := validInput("Novo")
	in.Email = &email
	in.SaldoInicial = decimal.NewFromInt(999)

	require.NoError(t, svc.Update(ctx, created.ID, in))

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Novo", got.Nome)
	require.NotNil(t, got.Email)
	assert.Equal(t, email, *got.Email)
	assert.True(t, got.DataAbertura.Equal(created.DataAbertura), "dataAbertura is kept")
	assert.True(t, got.SaldoInicial.Equal(created.SaldoInicial), "saldoInicial is only set on creation")
}

func TestCadastroService_Update_NotFoundDoesNotCreate(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	err := svc.Update(ctx, 42, validInput("Fantasma"))
	assert.ErrorIs(t, err, models.ErrNotFound)

	all, err := store.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCadastroService_Update_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Loja"))
	require.NoError(t, err)

	err = svc.Update(ctx, created.ID, models.CadastroInput{Nome: "Loja"})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "descricao")
	assert.Contains(t, verr.Fields, "tipoConta")
}

func TestCadastroService_Update_Concurrency(t *testing.T) {
	store := failingStoreWithGet{err: models.ErrConcurrency}
	svc := NewCadastroService(store, logging.NewNop())

	err := svc.Update(context.Background(), 1, validInput("Loja"))
	assert.ErrorIs(t, err, models.ErrConcurrency)
}

// failingStoreWithGet finds every record but fails writes
type failingStoreWithGet struct {
	failingStore
	err error
}

func (f failingStoreWithGet) Get(_ context.Context, id int) (*models.Cadastro, error) {
	return &models.Cadastro{ID: id, Version: 1}, nil
}

func (f failingStoreWithGet) Update(context.Context, *models.Cadastro) error { return f.err }
func (f failingStoreWithGet) Delete(context.Context, int) error              { return f.err }

func TestCadastroService_Delete(t *testing.T) {
	svc, _, metrics := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput("Loja"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), models.ErrNotFound)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DatabaseOperations.WithLabelValues("delete", "success")))
}

func TestCadastroService_StoreErrorsPassThrough(t *testing.T) {
	storeErr := &models.StoreError{Op: "list", Err: errors.New("connection refused")}
	metrics := observability.NewMetrics()
	svc := NewCadastroService(failingStore{err: storeErr}, logging.NewNop(), WithMetrics(metrics))
	ctx := context.Background()

	_, err := svc.List(ctx, Pagination{Page: 1, PageSize: 10})
	var se *models.StoreError
	assert.True(t, errors.As(err, &se))

	_, err = svc.Create(ctx, validInput("Loja"))
	assert.ErrorAs(t, err, &se)

	assert.ErrorAs(t, svc.Delete(ctx, 1), &se)
	assert.ErrorAs(t, svc.Ping(ctx), &se)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DatabaseOperations.WithLabelValues("list", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DatabaseOperations.WithLabelValues("insert", "error")))
}

func TestCadastroService_NilMetrics(t *testing.T) {
	svc := NewCadastroService(repository.NewMemoryCadastroRepository(), logging.NewNop())

	_, err := svc.Create(context.Background(), validInput("Loja"))
	assert.NoError(t, err)
}
