package domain

import (
	"fmt"
	"strings"
)

// Guest holds the identity details captured at the front desk.
// Name and IDDocument are mandatory; the rest is free text.
type Guest struct {
	Name        string `json:"name"`
	IDDocument  string `json:"idDocument"`
	Address     string `json:"address"`
	Occupation  string `json:"occupation"`
	Nationality string `json:"nationality"`
}

// Validate checks the mandatory identity fields.
func (g Guest) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("guest name is required")
	}
	if strings.TrimSpace(g.IDDocument) == "" {
		return fmt.Errorf("guest ID/passport number is required")
	}
	return nil
}
