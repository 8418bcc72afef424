package cli

import (
	"fmt"
	"strings"

	"github.com/spec-kit/support-desk/internal/domain"
)

const separator = "-----------------------------------"

// FormatCustomer renders one customer as a console block.
func FormatCustomer(customer domain.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer ID: %s\n", customer.ID)
	fmt.Fprintf(&b, "Name: %s\n", customer.Name)
	fmt.Fprintf(&b, "Email: %s\n", customer.Email)
	fmt.Fprintf(&b, "Phone: %s\n", customer.Phone)
	fmt.Fprintf(&b, "Type: %s\n", customer.Type.Label())
	b.WriteString(separator + "\n")
	return b.String()
}

// FormatTicket renders one ticket as a console block. Assignment and
// tags only appear when set.
func FormatTicket(ticket domain.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticket ID: %s\n", ticket.ID)
	fmt.Fprintf(&b, "Customer ID: %s\n", ticket.CustomerID)
	fmt.Fprintf(&b, "Description: %s\n", ticket.Description)
	fmt.Fprintf(&b, "Category: %s\n", ticket.Category.Label())
	fmt.Fprintf(&b, "Priority: %s\n", ticket.Priority.Label())
	fmt.Fprintf(&b, "Status: %s\n", ticket.Status.Label())
	if ticket.AssignedTo != "" {
		fmt.Fprintf(&b, "Assigned To: %s\n", ticket.AssignedTo)
	}
	if len(ticket.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(ticket.Tags, ", "))
	}
	b.WriteString(separator + "\n")
	return b.String()
}
