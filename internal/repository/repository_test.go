package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-desk/internal/domain"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

func TestCustomerRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewMemoryCustomerRepository()
	ctx := context.Background()

	saved := &domain.Customer{
		ID:    "CUST-1001",
		Name:  "[VIP] Jane",
		Email: "jane@example.com",
		Phone: "555-0100",
		Type:  domain.CustomerTypeVIP,
	}
	require.NoError(t, repo.Save(ctx, saved))

	got, err := repo.FindByID(ctx, "CUST-1001")
	require.NoError(t, err)
	assert.Equal(t, *saved, *got)
}

func TestCustomerFindByIDMiss(t *testing.T) {
	t.Parallel()

	repo := NewMemoryCustomerRepository()
	got, err := repo.FindByID(context.Background(), "CUST-9999")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCustomerFindAllInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := NewMemoryCustomerRepository()
	ctx := context.Background()

	// Deliberately out of lexicographic order.
	ids := []string{"CUST-1003", "CUST-1001", "CUST-1002"}
	for _, id := range ids {
		require.NoError(t, repo.Save(ctx, &domain.Customer{ID: id}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, all[i].ID)
	}
}

func TestCustomerSaveOverwriteKeepsSlot(t *testing.T) {
	t.Parallel()

	repo := NewMemoryCustomerRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Customer{ID: "CUST-1001", Name: "first"}))
	require.NoError(t, repo.Save(ctx, &domain.Customer{ID: "CUST-1002", Name: "second"}))
	require.NoError(t, repo.Save(ctx, &domain.Customer{ID: "CUST-1001", Name: "rewritten"}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2, "overwrite must not add a record")
	assert.Equal(t, "CUST-1001", all[0].ID)
	assert.Equal(t, "rewritten", all[0].Name, "last write wins")
	assert.Equal(t, "CUST-1002", all[1].ID)
}

func TestTicketRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	saved := &domain.Ticket{
		ID:          "TKT-1001",
		CustomerID:  "CUST-1001",
		Description: "printer broken",
		Status:      domain.TicketStatusOpen,
		Priority:    domain.TicketPriorityHigh,
		Category:    domain.TicketCategoryTechnical,
		AssignedTo:  "Agent-002",
		Tags:        []string{"new", "technical-support"},
	}
	require.NoError(t, repo.Save(ctx, saved))

	got, err := repo.FindByID(ctx, "TKT-1001")
	require.NoError(t, err)
	assert.Equal(t, *saved, *got)
}

func TestTicketStoredCopyIsIsolated(t *testing.T) {
	t.Parallel()

	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	ticket := &domain.Ticket{ID: "TKT-1001", Tags: []string{"new"}}
	require.NoError(t, repo.Save(ctx, ticket))

	// Mutating the caller's slice must not leak into the store.
	ticket.Tags[0] = "mutated"

	got, err := repo.FindByID(ctx, "TKT-1001")
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got.Tags)
}

func TestTicketFindByIDMiss(t *testing.T) {
	t.Parallel()

	repo := NewMemoryTicketRepository()
	got, err := repo.FindByID(context.Background(), "TKT-1")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTicketFindAllCount(t *testing.T) {
	t.Parallel()

	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	const n = 25
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Save(ctx, &domain.Ticket{ID: fmt.Sprintf("TKT-%d", 1001+i)}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}
