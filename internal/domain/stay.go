package domain

import "time"

// DateRange is an optional check-in/check-out pair. When both ends are set,
// To is expected to be strictly after From; the type does not enforce it.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsComplete returns true if both check-in and check-out are set
func (r DateRange) IsComplete() bool {
	return r.From != nil && r.To != nil
}

// StayCalculation is the derived price of a stay
type StayCalculation struct {
	Nights   int
	Hours    *int // set only for hourly suites
	Rate     float64
	Discount float64
}
