package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/notify"
	"github.com/spec-kit/support-desk/internal/repository"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets     repository.TicketRepository
	customers   repository.CustomerRepository
	broadcaster *notify.Broadcaster
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	counter     atomic.Int64
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	CustomerRepo repository.CustomerRepository
	Broadcaster  *notify.Broadcaster
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// CreateTicketInput describes ticket creation payload. Priority
// defaults to Medium and Category to General when empty.
type CreateTicketInput struct {
	CustomerID  string
	Description string
	Priority    domain.TicketPriority
	Category    domain.TicketCategory
}

// NewTicketService constructs the service. The ticket counter is
// independent from the customer counter.
func NewTicketService(deps TicketDependencies) *TicketService {
	s := &TicketService{
		tickets:     deps.TicketRepo,
		customers:   deps.CustomerRepo,
		broadcaster: deps.Broadcaster,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
	s.counter.Store(counterStart)
	return s
}

// CreateTicket validates the owning customer, issues the next ticket
// ID, applies the auto-assignment and default-tag rules and persists
// the ticket, then notifies the customer.
//
// The customer check runs before the counter increments: a rejected
// create burns no ID and the next successful create reuses the number.
func (s *TicketService) CreateTicket(ctx context.Context, input CreateTicketInput) (string, error) {
	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		s.logger.Warn("ticket creation rejected: customer not found",
			zap.String("customer_id", input.CustomerID))
		return "", err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	category := input.Category
	if category == "" {
		category = domain.TicketCategoryGeneral
	}

	ticket := &domain.Ticket{
		ID:          fmt.Sprintf("TKT-%d", s.counter.Add(1)),
		CustomerID:  input.CustomerID,
		Description: strings.TrimSpace(input.Description),
		Status:      domain.TicketStatusOpen,
		Priority:    priority,
		Category:    category,
		AssignedTo:  priority.AutoAssignedAgent(),
		Tags:        category.DefaultTags(),
		CreatedAt:   time.Now(),
	}

	if err := s.tickets.Save(ctx, ticket); err != nil {
		return "", err
	}

	s.logger.Info("ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("customer", customer.Name),
		zap.String("category", category.Label()),
		zap.String("priority", priority.Label()))

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		EntityID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			CustomerID: ticket.CustomerID,
			Priority:   ticket.Priority,
			Category:   ticket.Category,
			AssignedTo: ticket.AssignedTo,
		},
	})

	message := fmt.Sprintf("Your ticket %s has been created. Category: %s. Description: %s",
		ticket.ID, category.Label(), ticket.Description)
	s.broadcaster.Notify(ctx, customer.Email, message)

	return ticket.ID, nil
}

// UpdateTicketStatus moves a ticket to newStatus. Transitions are
// unrestricted: any status may follow any other. If the owning
// customer no longer resolves the notification is skipped silently.
func (s *TicketService) UpdateTicketStatus(ctx context.Context, ticketID string, newStatus domain.TicketStatus) error {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		s.logger.Warn("ticket status update rejected: ticket not found",
			zap.String("ticket_id", ticketID))
		return err
	}

	oldStatus := ticket.Status
	ticket.Status = newStatus
	if err := s.tickets.Save(ctx, ticket); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		EntityID: ticket.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})

	if customer, err := s.customers.FindByID(ctx, ticket.CustomerID); err == nil {
		message := fmt.Sprintf("Your ticket %s status has been updated to: %s",
			ticket.ID, newStatus.Label())
		s.broadcaster.Notify(ctx, customer.Email, message)
	}

	s.logger.Info("ticket status updated",
		zap.String("ticket_id", ticket.ID),
		zap.String("status", newStatus.Label()))
	return nil
}

// GetTicket fetches a ticket by ID.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.tickets.FindByID(ctx, ticketID)
}

// ListTickets returns all tickets in insertion order.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.FindAll(ctx)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
