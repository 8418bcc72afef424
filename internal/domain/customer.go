package domain

import "time"

// CustomerType enumerates service tiers for customers.
type CustomerType string

const (
	CustomerTypeRegular CustomerType = "REGULAR"
	CustomerTypePremium CustomerType = "PREMIUM"
	CustomerTypeVIP     CustomerType = "VIP"
)

// Label returns the human-readable tier name.
func (t CustomerType) Label() string {
	switch t {
	case CustomerTypePremium:
		return "Premium"
	case CustomerTypeVIP:
		return "VIP"
	default:
		return "Regular"
	}
}

// NamePrefix returns the decoration prepended to a customer's display
// name at registration. Regular customers get no prefix.
func (t CustomerType) NamePrefix() string {
	switch t {
	case CustomerTypePremium:
		return "[PREMIUM] "
	case CustomerTypeVIP:
		return "[VIP] "
	default:
		return ""
	}
}

// CustomerTypeFromChoice maps a numeric menu selector to a tier.
// Unknown selectors coerce to Regular.
func CustomerTypeFromChoice(choice int) CustomerType {
	switch choice {
	case 2:
		return CustomerTypePremium
	case 3:
		return CustomerTypeVIP
	default:
		return CustomerTypeRegular
	}
}

// Customer is the domain model for people who submit tickets.
// Records are immutable once registered.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Type      CustomerType
	CreatedAt time.Time
}
