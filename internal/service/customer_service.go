package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/repository"
)

// counterStart is the seed for both ID counters. Counters are
// pre-incremented, so the first issued number is 1001.
const counterStart = 1000

// CustomerService coordinates customer registration and lookups.
type CustomerService struct {
	customers  repository.CustomerRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	counter    atomic.Int64
}

// CustomerDependencies bundles collaborators for the customer service.
type CustomerDependencies struct {
	CustomerRepo repository.CustomerRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// RegisterCustomerInput describes the registration payload. Type
// defaults to Regular when empty.
type RegisterCustomerInput struct {
	Name  string
	Email string
	Phone string
	Type  domain.CustomerType
}

// NewCustomerService constructs the service.
func NewCustomerService(deps CustomerDependencies) *CustomerService {
	s := &CustomerService{
		customers:  deps.CustomerRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
	s.counter.Store(counterStart)
	return s
}

// RegisterCustomer issues the next customer ID, decorates the display
// name with the tier prefix and persists the record. It performs no
// format validation and no duplicate detection, so it cannot fail
// today; the error return exists for interface stability.
func (s *CustomerService) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*domain.Customer, error) {
	customerType := input.Type
	if customerType == "" {
		customerType = domain.CustomerTypeRegular
	}

	customer := &domain.Customer{
		ID:        fmt.Sprintf("CUST-%d", s.counter.Add(1)),
		Name:      customerType.NamePrefix() + input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Type:      customerType,
		CreatedAt: time.Now(),
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer registered",
		zap.String("customer_id", customer.ID),
		zap.String("name", input.Name),
		zap.String("type", customerType.Label()))

	s.publishEvent(ctx, events.Event{
		Type:     events.EventCustomerRegistered,
		EntityID: customer.ID,
		Payload: events.CustomerRegisteredPayload{
			Name: input.Name,
			Type: customerType,
		},
	})
	return customer, nil
}

// GetCustomer fetches a customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, customerID)
}

// ListCustomers returns all customers in insertion order.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.FindAll(ctx)
}

func (s *CustomerService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
