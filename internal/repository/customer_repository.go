package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/support-desk/internal/domain"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// CustomerRepository encapsulates customer storage.
//
// FindAll returns customers in insertion order: the order in which IDs
// were first saved. Overwriting an existing ID keeps its original slot.
type CustomerRepository interface {
	Save(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
}

type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
	order     []string
}

// NewMemoryCustomerRepository instantiates the in-memory store. The
// caller owns the single instance and injects it where needed.
func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{
		customers: make(map[string]domain.Customer),
	}
}

func (r *memoryCustomerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[customer.ID]; !exists {
		r.order = append(r.order, customer.ID)
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *memoryCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, apperrors.NewNotFound("customer", map[string]any{"customer_id": id})
	}
	return &customer, nil
}

func (r *memoryCustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Customer, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.customers[id])
	}
	return result, nil
}
