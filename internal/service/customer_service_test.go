package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/repository"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

func newCustomerService() (*CustomerService, repository.CustomerRepository) {
	repo := repository.NewMemoryCustomerRepository()
	svc := NewCustomerService(CustomerDependencies{
		CustomerRepo: repo,
		Logger:       zap.NewNop(),
	})
	return svc, repo
}

func TestRegisterCustomerIDsAreSequential(t *testing.T) {
	t.Parallel()

	svc, _ := newCustomerService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		customer, err := svc.RegisterCustomer(ctx, RegisterCustomerInput{
			Name:  fmt.Sprintf("customer-%d", i),
			Email: "x@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("CUST-%d", 1001+i), customer.ID)
	}
}

func TestRegisterCustomerNameDecoration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		customerType domain.CustomerType
		wantName     string
	}{
		{"vip gets prefix", domain.CustomerTypeVIP, "[VIP] Jane"},
		{"premium gets prefix", domain.CustomerTypePremium, "[PREMIUM] Jane"},
		{"regular unchanged", domain.CustomerTypeRegular, "Jane"},
		{"empty type defaults to regular", "", "Jane"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newCustomerService()
			ctx := context.Background()

			customer, err := svc.RegisterCustomer(ctx, RegisterCustomerInput{
				Name:  "Jane",
				Email: "jane@example.com",
				Type:  testCase.customerType,
			})
			require.NoError(t, err)
			assert.Equal(t, testCase.wantName, customer.Name)

			stored, err := repo.FindByID(ctx, customer.ID)
			require.NoError(t, err)
			assert.Equal(t, testCase.wantName, stored.Name)
		})
	}
}

func TestGetCustomerPassThrough(t *testing.T) {
	t.Parallel()

	svc, _ := newCustomerService()
	ctx := context.Background()

	registered, err := svc.RegisterCustomer(ctx, RegisterCustomerInput{
		Name:  "Alice",
		Email: "a@x.com",
		Phone: "555-0001",
	})
	require.NoError(t, err)

	got, err := svc.GetCustomer(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, *registered, *got)

	_, err = svc.GetCustomer(ctx, "CUST-404")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListCustomersReturnsAllInRegistrationOrder(t *testing.T) {
	t.Parallel()

	svc, _ := newCustomerService()
	ctx := context.Background()

	names := []string{"one", "two", "three"}
	for _, name := range names {
		_, err := svc.RegisterCustomer(ctx, RegisterCustomerInput{Name: name})
		require.NoError(t, err)
	}

	all, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}
}
