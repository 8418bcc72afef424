package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/support-desk/internal/domain"
)

func TestFormatCustomer(t *testing.T) {
	t.Parallel()

	out := FormatCustomer(domain.Customer{
		ID:    "CUST-1001",
		Name:  "[VIP] Jane",
		Email: "jane@example.com",
		Phone: "555-0100",
		Type:  domain.CustomerTypeVIP,
	})

	assert.Contains(t, out, "Customer ID: CUST-1001\n")
	assert.Contains(t, out, "Name: [VIP] Jane\n")
	assert.Contains(t, out, "Type: VIP\n")
	assert.True(t, strings.HasSuffix(out, separator+"\n"), "block must end with the dash separator")
}

func TestFormatTicket(t *testing.T) {
	t.Parallel()

	out := FormatTicket(domain.Ticket{
		ID:          "TKT-1001",
		CustomerID:  "CUST-1001",
		Description: "printer broken",
		Status:      domain.TicketStatusOpen,
		Priority:    domain.TicketPriorityHigh,
		Category:    domain.TicketCategoryTechnical,
		AssignedTo:  "Agent-002",
		Tags:        []string{"new", "technical-support"},
	})

	assert.Contains(t, out, "Ticket ID: TKT-1001\n")
	assert.Contains(t, out, "Status: Open\n")
	assert.Contains(t, out, "Priority: High\n")
	assert.Contains(t, out, "Assigned To: Agent-002\n")
	assert.Contains(t, out, "Tags: new, technical-support\n")
}

func TestFormatTicketOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	out := FormatTicket(domain.Ticket{
		ID:         "TKT-1002",
		CustomerID: "CUST-1001",
		Status:     domain.TicketStatusOpen,
		Priority:   domain.TicketPriorityLow,
		Category:   domain.TicketCategoryGeneral,
	})

	assert.NotContains(t, out, "Assigned To:")
	assert.NotContains(t, out, "Tags:")
}
