package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/multitarefa/cadastro-api/internal/models"
)

// MemoryCadastroRepository keeps cadastros in process. It follows the same
// contract as the PostgreSQL repository, including version checks on update.
type MemoryCadastroRepository struct {
	mu      sync.RWMutex
	records map[int]models.Cadastro
	nextID  int
}

// NewMemoryCadastroRepository creates an empty repository
func NewMemoryCadastroRepository() *MemoryCadastroRepository {
	return &MemoryCadastroRepository{
		records: make(map[int]models.Cadastro),
		nextID:  1,
	}
}

// List returns up to limit records starting at offset, ordered by id
func (r *MemoryCadastroRepository) List(ctx context.Context, offset, limit int) ([]models.Cadastro, error) {
	if err := ctx.Err(); err != nil {
		return nil, &models.StoreError{Op: "list", Err: err}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	if offset < 0 {
		offset = 0
	}
	if offset >= len(ids) || limit <= 0 {
		return []models.Cadastro{}, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}

	cadastros := make([]models.Cadastro, 0, end-offset)
	for _, id := range ids[offset:end] {
		cadastros = append(cadastros, r.records[id])
	}
	return cadastros, nil
}

// Get returns the record with the given id
func (r *MemoryCadastroRepository) Get(ctx context.Context, id int) (*models.Cadastro, error) {
	if err := ctx.Err(); err != nil {
		return nil, &models.StoreError{Op: "get", Err: err}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.records[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

// Insert assigns the next id and stores the record
func (r *MemoryCadastroRepository) Insert(ctx context.Context, c *models.Cadastro) error {
	if err := ctx.Err(); err != nil {
		return &models.StoreError{Op: "insert", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	c.Version = 1
	r.nextID++
	r.records[c.ID] = *c
	return nil
}

// Update replaces the stored record when c.Version matches the stored one
func (r *MemoryCadastroRepository) Update(ctx context.Context, c *models.Cadastro) error {
	if err := ctx.Err(); err != nil {
		return &models.StoreError{Op: "update", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[c.ID]
	if !ok {
		return models.ErrNotFound
	}
	if current.Version != c.Version {
		return fmt.Errorf("update cadastro %d: %w", c.ID, models.ErrConcurrency)
	}

	current.Nome = c.Nome
	current.Descricao = c.Descricao
	current.Endereco = c.Endereco
	current.Telefone = c.Telefone
	current.Email = c.Email
	current.TipoConta = c.TipoConta
	current.Version++

	r.records[c.ID] = current
	c.Version = current.Version
	return nil
}

// Delete removes the record
func (r *MemoryCadastroRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return &models.StoreError{Op: "delete", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// Ping always succeeds
func (r *MemoryCadastroRepository) Ping(ctx context.Context) error {
	return nil
}
