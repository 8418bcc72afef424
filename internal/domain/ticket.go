package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Label returns the human-readable status name.
func (s TicketStatus) Label() string {
	switch s {
	case TicketStatusOpen:
		return "Open"
	case TicketStatusInProgress:
		return "In Progress"
	case TicketStatusResolved:
		return "Resolved"
	case TicketStatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// TicketStatusFromChoice maps a numeric menu selector to a status.
// The second result reports whether the selector was valid.
func TicketStatusFromChoice(choice int) (TicketStatus, bool) {
	switch choice {
	case 1:
		return TicketStatusOpen, true
	case 2:
		return TicketStatusInProgress, true
	case 3:
		return TicketStatusResolved, true
	case 4:
		return TicketStatusClosed, true
	default:
		return "", false
	}
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "LOW"
	TicketPriorityMedium   TicketPriority = "MEDIUM"
	TicketPriorityHigh     TicketPriority = "HIGH"
	TicketPriorityCritical TicketPriority = "CRITICAL"
)

// Label returns the human-readable priority name.
func (p TicketPriority) Label() string {
	switch p {
	case TicketPriorityLow:
		return "Low"
	case TicketPriorityMedium:
		return "Medium"
	case TicketPriorityHigh:
		return "High"
	case TicketPriorityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// TicketPriorityFromChoice maps a numeric menu selector to a priority.
// Unknown selectors coerce to Medium.
func TicketPriorityFromChoice(choice int) TicketPriority {
	switch choice {
	case 1:
		return TicketPriorityLow
	case 3:
		return TicketPriorityHigh
	case 4:
		return TicketPriorityCritical
	default:
		return TicketPriorityMedium
	}
}

// AutoAssignedAgent returns the agent handle pre-assigned to new
// tickets of this priority. Low and Medium tickets start unassigned.
func (p TicketPriority) AutoAssignedAgent() string {
	switch p {
	case TicketPriorityCritical:
		return "Senior-Agent-001"
	case TicketPriorityHigh:
		return "Agent-002"
	default:
		return ""
	}
}

// TicketCategory enumerates the kind of request a ticket represents.
type TicketCategory string

const (
	TicketCategoryTechnical      TicketCategory = "TECHNICAL"
	TicketCategoryBilling        TicketCategory = "BILLING"
	TicketCategoryGeneral        TicketCategory = "GENERAL"
	TicketCategoryComplaint      TicketCategory = "COMPLAINT"
	TicketCategoryFeatureRequest TicketCategory = "FEATURE_REQUEST"
)

// Label returns the human-readable category name.
func (c TicketCategory) Label() string {
	switch c {
	case TicketCategoryTechnical:
		return "Technical"
	case TicketCategoryBilling:
		return "Billing"
	case TicketCategoryComplaint:
		return "Complaint"
	case TicketCategoryFeatureRequest:
		return "Feature Request"
	default:
		return "General"
	}
}

// TicketCategoryFromChoice maps a numeric menu selector to a category.
// Unknown selectors coerce to General.
func TicketCategoryFromChoice(choice int) TicketCategory {
	switch choice {
	case 1:
		return TicketCategoryTechnical
	case 2:
		return TicketCategoryBilling
	case 4:
		return TicketCategoryComplaint
	case 5:
		return TicketCategoryFeatureRequest
	default:
		return TicketCategoryGeneral
	}
}

// DefaultTags returns the tags seeded onto a new ticket of this
// category. Every ticket starts with "new"; most categories add one
// routing tag on top.
func (c TicketCategory) DefaultTags() []string {
	tags := []string{"new"}
	switch c {
	case TicketCategoryTechnical:
		tags = append(tags, "technical-support")
	case TicketCategoryBilling:
		tags = append(tags, "finance")
	case TicketCategoryComplaint:
		tags = append(tags, "urgent")
	case TicketCategoryFeatureRequest:
		tags = append(tags, "product")
	}
	return tags
}

// Ticket is the aggregate for support requests. Status, AssignedTo and
// Tags are mutable through the ticket service; everything else is set
// once at creation.
type Ticket struct {
	ID          string
	CustomerID  string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	Category    TicketCategory
	AssignedTo  string
	Tags        []string
	CreatedAt   time.Time
}
