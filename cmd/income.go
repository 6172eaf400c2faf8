package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/openfleet/fleetbook"
)

// addIncomeCmd holds the flags for the 'add-income' subcommand.
type addIncomeCmd struct {
	vehicle string
	date    string
	amount  string
	note    string
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "record a cash income" }
func (*addIncomeCmd) Usage() string {
	return `fbk add-income -v <vehicle-id> -a <amount> [-d <date>] [-n <note>]

  Records a cash income for a vehicle. The note drives the category
  breakdown: "noleggio furgone" counts as Noleggio, and so on.
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.vehicle, "v", "", "vehicle id")
	f.StringVar(&c.date, "d", fleetbook.Today().String(), "income date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "a", "", "amount in euro")
	f.StringVar(&c.note, "n", "", "free text note")
}

func (c *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermIncomes); err != nil {
		return fail(err)
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return usageError(fmt.Errorf("invalid amount %q: %w", c.amount, err))
	}
	date, err := fleetbook.ParseDate(c.date)
	if err != nil {
		return usageError(err)
	}
	book, err := fleetbook.LoadBook(DataDir())
	if err != nil {
		return fail(err)
	}
	in, err := book.AddIncome(c.vehicle, date.String(), amount, c.note)
	if err != nil {
		return usageError(err)
	}
	if err := fleetbook.SaveBook(DataDir(), book); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded income %s: %s on %s for %s\n", in.ID, fleetbook.EUR(in.Amount), in.Date, book.VehicleLabel(in.VehicleID))
	return subcommands.ExitSuccess
}

// editIncomeCmd holds the flags for the 'edit-income' subcommand. Flags
// that are not set on the command line keep the record's current value.
type editIncomeCmd struct {
	vehicle string
	date    string
	amount  string
	note    string
}

func (*editIncomeCmd) Name() string     { return "edit-income" }
func (*editIncomeCmd) Synopsis() string { return "edit an income record" }
func (*editIncomeCmd) Usage() string {
	return `fbk edit-income <income-id> [-v <vehicle-id>] [-d <date>] [-a <amount>] [-n <note>]

  Changes an income record. Omitted flags keep their current value.
`
}

func (c *editIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.vehicle, "v", "", "vehicle id")
	f.StringVar(&c.date, "d", "", "income date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "a", "", "amount in euro")
	f.StringVar(&c.note, "n", "", "free text note")
}

func (c *editIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("exactly one income id is expected"))
	}
	id := f.Arg(0)
	if _, err := currentSession(fleetbook.PermIncomes); err != nil {
		return fail(err)
	}
	book, err := fleetbook.LoadBook(DataDir())
	if err != nil {
		return fail(err)
	}
	var current *fleetbook.Income
	for _, in := range book.Incomes(fleetbook.Month{}) {
		if in.ID == id {
			current = &in
			break
		}
	}
	if current == nil {
		return fail(fmt.Errorf("income %q: %w", id, fleetbook.ErrNotFound))
	}

	vehicle, date, amount, note := current.VehicleID, current.Date, current.Amount, current.Note
	var ferr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "v":
			vehicle = c.vehicle
		case "d":
			d, err := fleetbook.ParseDate(c.date)
			if err != nil {
				ferr = err
				return
			}
			date = d.String()
		case "a":
			a, err := decimal.NewFromString(c.amount)
			if err != nil {
				ferr = fmt.Errorf("invalid amount %q: %w", c.amount, err)
				return
			}
			amount = a
		case "n":
			note = c.note
		}
	})
	if ferr != nil {
		return usageError(ferr)
	}

	if err := book.UpdateIncome(id, vehicle, date, amount, note); err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveBook(DataDir(), book); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated income %s\n", id)
	return subcommands.ExitSuccess
}

// deleteIncomeCmd removes an income record.
type deleteIncomeCmd struct{}

func (*deleteIncomeCmd) Name() string     { return "delete-income" }
func (*deleteIncomeCmd) Synopsis() string { return "delete an income record" }
func (*deleteIncomeCmd) Usage() string {
	return `fbk delete-income <income-id>

  Deletes an income record from the book.
`
}

func (*deleteIncomeCmd) SetFlags(*flag.FlagSet) {}

func (*deleteIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("exactly one income id is expected"))
	}
	if _, err := currentSession(fleetbook.PermIncomes); err != nil {
		return fail(err)
	}
	book, err := fleetbook.LoadBook(DataDir())
	if err != nil {
		return fail(err)
	}
	if err := book.DeleteIncome(f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveBook(DataDir(), book); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted income %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
