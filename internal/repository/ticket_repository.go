package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/support-desk/internal/domain"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// TicketRepository encapsulates ticket storage.
//
// Save is insert-or-overwrite by ID with last-write-wins semantics.
// FindAll returns tickets in insertion order, same contract as the
// customer store.
type TicketRepository interface {
	Save(ctx context.Context, ticket *domain.Ticket) error
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	FindAll(ctx context.Context) ([]domain.Ticket, error)
}

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]domain.Ticket
	order   []string
}

// NewMemoryTicketRepository instantiates the in-memory store.
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{
		tickets: make(map[string]domain.Ticket),
	}
}

func (r *memoryTicketRepository) Save(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tickets[ticket.ID]; !exists {
		r.order = append(r.order, ticket.ID)
	}
	stored := *ticket
	stored.Tags = append([]string(nil), ticket.Tags...)
	r.tickets[ticket.ID] = stored
	return nil
}

func (r *memoryTicketRepository) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
	}
	out := ticket
	out.Tags = append([]string(nil), ticket.Tags...)
	return &out, nil
}

func (r *memoryTicketRepository) FindAll(ctx context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Ticket, 0, len(r.order))
	for _, id := range r.order {
		ticket := r.tickets[id]
		ticket.Tags = append([]string(nil), ticket.Tags...)
		result = append(result, ticket)
	}
	return result, nil
}
