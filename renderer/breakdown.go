package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/openfleet/fleetbook"
)

// BreakdownMarkdown renders the note-derived category breakdown, with a
// text bar chart column scaled to the largest category of the period.
func BreakdownMarkdown(b *fleetbook.Breakdown) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Income per category, %s", monthTitle(b.Month)))

	if len(b.Categories) == 0 {
		doc.PlainText("No income recorded for this period.")
		return doc.String()
	}

	max := decimal.Zero
	for _, ct := range b.Categories {
		if ct.Total.GreaterThan(max) {
			max = ct.Total
		}
	}

	rows := make([][]string, 0, len(b.Categories))
	for _, ct := range b.Categories {
		rows = append(rows, []string{string(ct.Category), eur(ct.Total), bar(ct.Total, max)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Total", ""},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Total: %s", eur(b.Total)))
	return doc.String()
}
