package fleetbook

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Fine is one traffic-fine record. Vehicle is free text, not a reference
// into the income book: the fine register is an independent store.
type Fine struct {
	ID      string          `json:"id"`
	Cf      string          `json:"cf"` // customer fiscal code, 16 alphanumerics
	Vehicle string          `json:"vehicle"`
	Date    string          `json:"date"` // "YYYY-MM-DD" or empty
	Amount  decimal.Decimal `json:"amount"`
	Note    string          `json:"note"`
	Paid    bool            `json:"paid"`
}

var fiscalCodeRe = regexp.MustCompile(`^[A-Z0-9]{16}$`)

// ValidateFiscalCode checks that cf is exactly 16 alphanumeric characters
// after upper-casing. This rule is enforced at the entry form only;
// imported fines are accepted as-is.
func ValidateFiscalCode(cf string) error {
	cf = strings.ToUpper(strings.TrimSpace(cf))
	if cf == "" {
		return fmt.Errorf("fiscal code is required")
	}
	if !fiscalCodeRe.MatchString(cf) {
		return fmt.Errorf("invalid fiscal code %q: must be 16 alphanumeric characters", cf)
	}
	return nil
}
