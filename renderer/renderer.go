// Package renderer turns fleetbook reports into markdown documents, ready
// for the terminal renderer of the cli.
package renderer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/openfleet/fleetbook"
)

// barWidth is the width of the largest bar in a chart column.
const barWidth = 20

// bar renders a proportional text bar for a chart column. The largest
// value gets the full width; a non-zero value always gets at least one
// cell.
func bar(value, max decimal.Decimal) string {
	if max.IsZero() || value.IsZero() {
		return ""
	}
	n := value.Mul(decimal.NewFromInt(barWidth)).Div(max).IntPart()
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", int(n))
}

// eur formats an amount for display.
func eur(value decimal.Decimal) string {
	return fleetbook.EUR(value).String()
}

// monthTitle names the reporting period in a heading.
func monthTitle(m fleetbook.Month) string {
	if m.IsZero() {
		return "all months"
	}
	return m.String()
}
