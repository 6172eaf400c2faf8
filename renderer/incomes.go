package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/openfleet/fleetbook"
)

// IncomesMarkdown renders the month-filtered income list. Vehicles are
// resolved to their labels through the book; a dangling reference shows
// as "-".
func IncomesMarkdown(b *fleetbook.Book, month fleetbook.Month) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Incomes, %s", monthTitle(month)))

	incomes := b.Incomes(month)
	if len(incomes) == 0 {
		doc.PlainText("No income recorded for this period.")
		return doc.String()
	}

	rows := make([][]string, 0, len(incomes))
	for _, in := range incomes {
		date := in.Date
		if date == "" {
			date = "-"
		}
		rows = append(rows, []string{in.ID, date, b.VehicleLabel(in.VehicleID), eur(in.Amount), in.Note})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Date", "Vehicle", "Amount", "Note"},
		Rows:   rows,
	})
	return doc.String()
}

// VehiclesMarkdown renders the vehicle list with record counts.
func VehiclesMarkdown(b *fleetbook.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Vehicles")

	var rows [][]string
	for v := range b.Vehicles() {
		n := len(b.VehicleIncomes(v.ID, fleetbook.Month{}))
		rows = append(rows, []string{v.ID, v.Name, v.Plate, fmt.Sprintf("%d", n)})
	}
	if len(rows) == 0 {
		doc.PlainText("No vehicles yet.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Name", "Plate", "Incomes"},
		Rows:   rows,
	})
	return doc.String()
}
