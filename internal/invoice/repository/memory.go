package repository

import (
	"context"
	"sync"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
)

// MemoryRepository is an in-memory CollectionRepository for tests.
type MemoryRepository struct {
	mu       sync.Mutex
	invoices []domain.Invoice
	saves    int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{invoices: []domain.Invoice{}}
}

func (r *MemoryRepository) Load(ctx context.Context) ([]domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func (r *MemoryRepository) Save(ctx context.Context, invoices []domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = make([]domain.Invoice, len(invoices))
	copy(r.invoices, invoices)
	r.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// Seed replaces the stored collection without counting as a save.
func (r *MemoryRepository) Seed(invoices []domain.Invoice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = make([]domain.Invoice, len(invoices))
	copy(r.invoices, invoices)
}
