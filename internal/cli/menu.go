// Package cli implements the menu-driven console front end.
//
// Invalid numeric input never aborts an operation: every selector
// coerces to a documented default and prints a notice saying so.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/spec-kit/support-desk/internal/domain"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/service"
	apperrors "github.com/spec-kit/support-desk/pkg/util"
)

// Menu is the interactive read-eval loop. Each selection runs to
// completion before the next prompt is shown.
type Menu struct {
	customers *service.CustomerService
	tickets   *service.TicketService
	metrics   *observability.Metrics
	out       io.Writer
	line      *liner.State
}

// Dependencies bundles collaborators for the menu.
type Dependencies struct {
	CustomerService *service.CustomerService
	TicketService   *service.TicketService
	Metrics         *observability.Metrics
	Out             io.Writer
}

// NewMenu constructs the menu.
func NewMenu(deps Dependencies) *Menu {
	return &Menu{
		customers: deps.CustomerService,
		tickets:   deps.TicketService,
		metrics:   deps.Metrics,
		out:       deps.Out,
	}
}

// Run drives the menu until the user exits. It always returns nil on a
// normal quit; Ctrl-C and EOF count as a normal quit.
func (m *Menu) Run(ctx context.Context) error {
	m.line = liner.NewLiner()
	defer m.line.Close()
	m.line.SetCtrlCAborts(true)

	for {
		m.printMainMenu()
		choice, ok := m.promptChoice("Enter your choice: ")
		if !ok {
			return nil
		}
		switch choice {
		case 1:
			if !m.customerMenu(ctx) {
				return nil
			}
		case 2:
			if !m.ticketMenu(ctx) {
				return nil
			}
		case 3:
			m.listCustomers(ctx)
		case 4:
			m.listTickets(ctx)
		case 5:
			m.printStats()
		case 0:
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown choice, please pick one of the listed options.")
		}
	}
}

func (m *Menu) printMainMenu() {
	fmt.Fprint(m.out, "\n========================================\n")
	fmt.Fprint(m.out, "   Customer Support Desk\n")
	fmt.Fprint(m.out, "========================================\n")
	fmt.Fprint(m.out, "1. Customer Management\n")
	fmt.Fprint(m.out, "2. Ticket Management\n")
	fmt.Fprint(m.out, "3. View All Customers\n")
	fmt.Fprint(m.out, "4. View All Tickets\n")
	fmt.Fprint(m.out, "5. Session Stats\n")
	fmt.Fprint(m.out, "0. Exit\n")
	fmt.Fprint(m.out, "========================================\n")
}

// customerMenu returns false when the whole app should exit.
func (m *Menu) customerMenu(ctx context.Context) bool {
	for {
		fmt.Fprint(m.out, "\n--- Customer Management ---\n")
		fmt.Fprint(m.out, "1. Register New Customer\n")
		fmt.Fprint(m.out, "2. Find Customer by ID\n")
		fmt.Fprint(m.out, "0. Back to Main Menu\n")
		choice, ok := m.promptChoice("Enter your choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			m.registerCustomer(ctx)
		case 2:
			m.findCustomer(ctx)
		case 0:
			return true
		default:
			fmt.Fprintln(m.out, "Unknown choice, please pick one of the listed options.")
		}
	}
}

func (m *Menu) ticketMenu(ctx context.Context) bool {
	for {
		fmt.Fprint(m.out, "\n--- Ticket Management ---\n")
		fmt.Fprint(m.out, "1. Create New Ticket\n")
		fmt.Fprint(m.out, "2. Update Ticket Status\n")
		fmt.Fprint(m.out, "3. Find Ticket by ID\n")
		fmt.Fprint(m.out, "0. Back to Main Menu\n")
		choice, ok := m.promptChoice("Enter your choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			m.createTicket(ctx)
		case 2:
			m.updateTicketStatus(ctx)
		case 3:
			m.findTicket(ctx)
		case 0:
			return true
		default:
			fmt.Fprintln(m.out, "Unknown choice, please pick one of the listed options.")
		}
	}
}

func (m *Menu) registerCustomer(ctx context.Context) {
	fmt.Fprint(m.out, "\n--- Register New Customer ---\n")
	name, ok := m.prompt("Enter customer name: ")
	if !ok {
		return
	}
	email, ok := m.prompt("Enter email: ")
	if !ok {
		return
	}
	phone, ok := m.prompt("Enter phone: ")
	if !ok {
		return
	}

	fmt.Fprint(m.out, "\nSelect Customer Type:\n1. Regular\n2. Premium\n3. VIP\n")
	choice, ok := m.promptChoice("Enter choice (1-3): ")
	if !ok {
		return
	}
	if choice < 1 || choice > 3 {
		fmt.Fprintln(m.out, "Invalid type, defaulting to Regular.")
	}
	customerType := domain.CustomerTypeFromChoice(choice)

	customer, err := m.customers.RegisterCustomer(ctx, service.RegisterCustomerInput{
		Name:  name,
		Email: email,
		Phone: phone,
		Type:  customerType,
	})
	if err != nil {
		fmt.Fprintf(m.out, "\nRegistration failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\nCustomer registered successfully!\nCustomer ID: %s\n", customer.ID)
}

func (m *Menu) findCustomer(ctx context.Context) {
	fmt.Fprint(m.out, "\n--- Find Customer ---\n")
	customerID, ok := m.prompt("Enter customer ID: ")
	if !ok {
		return
	}
	customer, err := m.customers.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Fprintln(m.out, "\nCustomer not found!")
			return
		}
		fmt.Fprintf(m.out, "\nLookup failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\n%s", FormatCustomer(*customer))
}

func (m *Menu) createTicket(ctx context.Context) {
	fmt.Fprint(m.out, "\n--- Create New Ticket ---\n")
	customerID, ok := m.prompt("Enter customer ID: ")
	if !ok {
		return
	}
	description, ok := m.prompt("Enter ticket description: ")
	if !ok {
		return
	}

	fmt.Fprint(m.out, "\nSelect Category:\n1. Technical\n2. Billing\n3. General\n4. Complaint\n5. Feature Request\n")
	categoryChoice, ok := m.promptChoice("Enter choice (1-5): ")
	if !ok {
		return
	}
	if categoryChoice < 1 || categoryChoice > 5 {
		fmt.Fprintln(m.out, "Invalid category, defaulting to General.")
	}
	category := domain.TicketCategoryFromChoice(categoryChoice)

	fmt.Fprint(m.out, "\nSelect Priority:\n1. Low\n2. Medium\n3. High\n4. Critical\n")
	priorityChoice, ok := m.promptChoice("Enter choice (1-4): ")
	if !ok {
		return
	}
	if priorityChoice < 1 || priorityChoice > 4 {
		fmt.Fprintln(m.out, "Invalid priority, defaulting to Medium.")
	}
	priority := domain.TicketPriorityFromChoice(priorityChoice)

	ticketID, err := m.tickets.CreateTicket(ctx, service.CreateTicketInput{
		CustomerID:  customerID,
		Description: description,
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Fprintln(m.out, "\nTicket creation failed: customer not found!")
			return
		}
		fmt.Fprintf(m.out, "\nTicket creation failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\nTicket created successfully!\nTicket ID: %s\n", ticketID)
}

func (m *Menu) updateTicketStatus(ctx context.Context) {
	fmt.Fprint(m.out, "\n--- Update Ticket Status ---\n")
	ticketID, ok := m.prompt("Enter ticket ID: ")
	if !ok {
		return
	}

	ticket, err := m.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Fprintln(m.out, "\nTicket not found!")
			return
		}
		fmt.Fprintf(m.out, "\nLookup failed: %v\n", err)
		return
	}

	fmt.Fprint(m.out, "\nSelect New Status:\n1. Open\n2. In Progress\n3. Resolved\n4. Closed\n")
	choice, ok := m.promptChoice("Enter choice (1-4): ")
	if !ok {
		return
	}
	status, valid := domain.TicketStatusFromChoice(choice)
	if !valid {
		// Coercion policy: invalid input keeps the current status.
		status = ticket.Status
		fmt.Fprintf(m.out, "Invalid status, keeping current status (%s).\n", status.Label())
	}

	if err := m.tickets.UpdateTicketStatus(ctx, ticketID, status); err != nil {
		fmt.Fprintf(m.out, "\nStatus update failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\nTicket %s status updated to: %s\n", ticketID, status.Label())
}

func (m *Menu) findTicket(ctx context.Context) {
	fmt.Fprint(m.out, "\n--- Find Ticket ---\n")
	ticketID, ok := m.prompt("Enter ticket ID: ")
	if !ok {
		return
	}
	ticket, err := m.tickets.GetTicket(ctx, ticketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Fprintln(m.out, "\nTicket not found!")
			return
		}
		fmt.Fprintf(m.out, "\nLookup failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\n%s", FormatTicket(*ticket))
}

func (m *Menu) listCustomers(ctx context.Context) {
	customers, err := m.customers.ListCustomers(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "\nListing failed: %v\n", err)
		return
	}
	if len(customers) == 0 {
		fmt.Fprintln(m.out, "\nNo customers registered yet.")
		return
	}
	fmt.Fprint(m.out, "\n--- All Customers ---\n")
	for _, customer := range customers {
		fmt.Fprint(m.out, FormatCustomer(customer))
	}
}

func (m *Menu) listTickets(ctx context.Context) {
	tickets, err := m.tickets.ListTickets(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "\nListing failed: %v\n", err)
		return
	}
	if len(tickets) == 0 {
		fmt.Fprintln(m.out, "\nNo tickets created yet.")
		return
	}
	fmt.Fprint(m.out, "\n--- All Tickets ---\n")
	for _, ticket := range tickets {
		fmt.Fprint(m.out, FormatTicket(ticket))
	}
}

func (m *Menu) printStats() {
	fmt.Fprint(m.out, "\n--- Session Stats ---\n")
	fmt.Fprintf(m.out, "Customers registered: %d\n", m.metrics.Count(events.EventCustomerRegistered))
	fmt.Fprintf(m.out, "Tickets created: %d\n", m.metrics.Count(events.EventTicketCreated))
	fmt.Fprintf(m.out, "Status updates: %d\n", m.metrics.Count(events.EventTicketStatusChanged))
	fmt.Fprintln(m.out, separator)
}

// prompt reads one trimmed line. ok is false when the user aborted the
// session (Ctrl-C or EOF).
func (m *Menu) prompt(label string) (value string, ok bool) {
	text, err := m.line.Prompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out, "\nGoodbye!")
			return "", false
		}
		fmt.Fprintf(m.out, "input error: %v\n", err)
		return "", false
	}
	return strings.TrimSpace(text), true
}

// promptChoice reads a numeric selector. Non-numeric input comes back
// as -1 so the enum coercion helpers apply their defaults.
func (m *Menu) promptChoice(label string) (choice int, ok bool) {
	text, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return -1, true
	}
	return n, true
}
