package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/multitarefa/cadastro-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cadastroStore is the contract both repositories implement
type cadastroStore interface {
	List(ctx context.Context, offset, limit int) ([]models.Cadastro, error)
	Get(ctx context.Context, id int) (*models.Cadastro, error)
	Insert(ctx context.Context, c *models.Cadastro) error
	Update(ctx context.Context, c *models.Cadastro) error
	Delete(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}

var (
	_ cadastroStore = (*PostgresCadastroRepository)(nil)
	_ cadastroStore = (*MemoryCadastroRepository)(nil)
)

func strPtr(s string) *string { return &s }

func newCadastro(nome string) *models.Cadastro {
	return &models.Cadastro{
		Nome:         nome,
		Descricao:    "Descrição de " + nome,
		Email:        strPtr(nome + "@example.com"),
		DataAbertura: models.NewDate(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)),
		SaldoInicial: decimal.RequireFromString("100.50"),
		TipoConta:    "corrente",
	}
}

// runStoreContract exercises the behavior shared by every implementation.
// newStore must return an empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) cadastroStore) {
	ctx := context.Background()

	t.Run("insert assigns ids and get returns the record", func(t *testing.T) {
		store := newStore(t)

		first := newCadastro("Loja A")
		second := newCadastro("Loja B")
		require.NoError(t, store.Insert(ctx, first))
		require.NoError(t, store.Insert(ctx, second))

		assert.NotZero(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)

		got, err := store.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Loja A", got.Nome)
		assert.Equal(t, "Descrição de Loja A", got.Descricao)
		assert.Nil(t, got.Endereco)
		require.NotNil(t, got.Email)
		assert.Equal(t, "Loja A@example.com", *got.Email)
		assert.Equal(t, "2026-10-14", got.DataAbertura.String())
		assert.True(t, got.SaldoInicial.Equal(decimal.RequireFromString("100.50")), "saldo = %s", got.SaldoInicial)
		assert.Equal(t, first.Version, got.Version)
	})

	t.Run("saldo inicial keeps its full scale", func(t *testing.T) {
		store := newStore(t)

		c := newCadastro("Loja C")
		c.SaldoInicial = decimal.RequireFromString("12.345")
		require.NoError(t, store.Insert(ctx, c))
		assert.Equal(t, "12.345", c.SaldoInicial.String(), "insert echoes the stored value")

		got, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "12.345", got.SaldoInicial.String())

		page, err := store.List(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "12.345", page[0].SaldoInicial.String())
	})

	t.Run("get unknown id", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Get(ctx, 9999)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("list pages with offset and limit", func(t *testing.T) {
		store := newStore(t)
		for i := 0; i < 12; i++ {
			require.NoError(t, store.Insert(ctx, newCadastro("Loja")))
		}

		page, err := store.List(ctx, 5, 5)
		require.NoError(t, err)
		assert.Len(t, page, 5)

		tail, err := store.List(ctx, 10, 5)
		require.NoError(t, err)
		assert.Len(t, tail, 2)

		empty, err := store.List(ctx, 50, 5)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("update replaces fields and bumps version", func(t *testing.T) {
		store := newStore(t)
		c := newCadastro("Original")
		require.NoError(t, store.Insert(ctx, c))

		current, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		before := current.Version

		current.Nome = "Atualizado"
		current.Telefone = strPtr("21999990000")
		require.NoError(t, store.Update(ctx, current))
		assert.NotEqual(t, before, current.Version)

		got, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Atualizado", got.Nome)
		require.NotNil(t, got.Telefone)
		assert.Equal(t, "21999990000", *got.Telefone)
		assert.Equal(t, "2026-10-14", got.DataAbertura.String())
	})

	t.Run("update with stale version is a concurrency error", func(t *testing.T) {
		store := newStore(t)
		c := newCadastro("Disputado")
		require.NoError(t, store.Insert(ctx, c))

		a, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		b, err := store.Get(ctx, c.ID)
		require.NoError(t, err)

		a.Nome = "Primeiro"
		require.NoError(t, store.Update(ctx, a))

		b.Nome = "Segundo"
		err = store.Update(ctx, b)
		assert.ErrorIs(t, err, models.ErrConcurrency)

		got, err := store.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Primeiro", got.Nome)
	})

	t.Run("update unknown id does not create a record", func(t *testing.T) {
		store := newStore(t)
		ghost := newCadastro("Fantasma")
		ghost.ID = 4242

		err := store.Update(ctx, ghost)
		assert.ErrorIs(t, err, models.ErrNotFound)

		_, err = store.Get(ctx, 4242)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		store := newStore(t)
		c := newCadastro("Temporário")
		require.NoError(t, store.Insert(ctx, c))

		require.NoError(t, store.Delete(ctx, c.ID))
		assert.ErrorIs(t, store.Delete(ctx, c.ID), models.ErrNotFound)

		_, err := store.Get(ctx, c.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("concurrent updates of the same id", func(t *testing.T) {
		store := newStore(t)
		c := newCadastro("Concorrido")
		require.NoError(t, store.Insert(ctx, c))

		base, err := store.Get(ctx, c.ID)
		require.NoError(t, err)

		const writers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			conflicts int
		)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				attempt := *base
				attempt.Nome = "Escritor"
				err := store.Update(ctx, &attempt)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case assert.ErrorIs(t, err, models.ErrConcurrency):
					conflicts++
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, writers-1, conflicts)
	})

	t.Run("ping", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Ping(ctx))
	})
}
