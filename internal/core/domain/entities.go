package domain

import "time"

// PrincipalType distinguishes the two kinds of account that can hold a token
type PrincipalType string

const (
	PrincipalCustomer PrincipalType = "customer"
	PrincipalEmployee PrincipalType = "employee"
)

// Principal is the authenticated identity decoded from a request token
type Principal struct {
	ID      string
	Type    PrincipalType
	IsGold  bool
	IsAdmin bool
}

func (p *Principal) IsCustomer() bool {
	return p != nil && p.Type == PrincipalCustomer
}

func (p *Principal) IsEmployee() bool {
	return p != nil && p.Type == PrincipalEmployee
}

// IsManager reports whether the principal is an employee with admin rights
func (p *Principal) IsManager() bool {
	return p.IsEmployee() && p.IsAdmin
}

// WholeDaysBetween returns the number of complete 24h periods from start to end.
// It never returns a negative value.
func WholeDaysBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / (24 * time.Hour))
}

// RentalFee computes the fee for a rental closed at returnedAt
func RentalFee(dateOut, returnedAt time.Time, dailyRate float64) float64 {
	return float64(WholeDaysBetween(dateOut, returnedAt)) * dailyRate
}
