package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/openfleet/fleetbook"
)

// SummaryMarkdown renders the per-vehicle income summary, with a text bar
// chart column scaled to the best vehicle of the period.
func SummaryMarkdown(s *fleetbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Income per vehicle, %s", monthTitle(s.Month)))

	max := decimal.Zero
	for _, vt := range s.Vehicles {
		if vt.Total.GreaterThan(max) {
			max = vt.Total
		}
	}

	rows := make([][]string, 0, len(s.Vehicles))
	for _, vt := range s.Vehicles {
		rows = append(rows, []string{vt.Vehicle.Label(), eur(vt.Total), bar(vt.Total, max)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Vehicle", "Total", ""},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Grand total: %s", eur(s.GrandTotal)))
	return doc.String()
}
