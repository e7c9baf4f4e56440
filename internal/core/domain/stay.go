package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Stay is one guest's booking against a room: identity, dates and balance.
// It is embedded in a Room while current and in a Reservation while queued.
type Stay struct {
	Guest     Guest           `json:"guest"`
	Nights    int             `json:"nights"`
	Period    DateRange       `json:"period"`
	Paid      decimal.Decimal `json:"paid"`
	TotalCost decimal.Decimal `json:"totalCost"`
}

// Remaining is the outstanding balance: TotalCost - Paid.
func (s Stay) Remaining() decimal.Decimal {
	return s.TotalCost.Sub(s.Paid)
}

// Validate checks guest identity, dates and financial fields.
func (s Stay) Validate() error {
	if err := s.Guest.Validate(); err != nil {
		return err
	}
	if err := s.Period.Validate(); err != nil {
		return err
	}
	if s.Nights <= 0 {
		return fmt.Errorf("number of nights must be positive")
	}
	if s.TotalCost.IsNegative() {
		return fmt.Errorf("total cost must not be negative")
	}
	if s.Paid.IsNegative() {
		return fmt.Errorf("paid amount must not be negative")
	}
	return nil
}
