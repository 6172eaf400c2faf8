package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/openfleet/fleetbook"
)

// FinesMarkdown renders the fine register, optionally filtered by fiscal
// code, with the paid/unpaid totals underneath.
func FinesMarkdown(f *fleetbook.Fines, cfFilter string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if cfFilter != "" {
		doc.H1(fmt.Sprintf("Fines for %q", cfFilter))
	} else {
		doc.H1("Fines")
	}

	fines := f.List(cfFilter)
	if len(fines) == 0 {
		doc.PlainText("No fines recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(fines))
	for _, fine := range fines {
		paid := "no"
		if fine.Paid {
			paid = "yes"
		}
		date := fine.Date
		if date == "" {
			date = "-"
		}
		rows = append(rows, []string{fine.ID, fine.Cf, fine.Vehicle, date, eur(fine.Amount), paid, fine.Note})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Fiscal code", "Vehicle", "Date", "Amount", "Paid", "Note"},
		Rows:   rows,
	})

	paid, unpaid, all := f.Totals()
	doc.PlainText(fmt.Sprintf("Paid: %s | Outstanding: %s | Total: %s", eur(paid), eur(unpaid), eur(all)))
	return doc.String()
}
