package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/openfleet/fleetbook"
)

// addFineCmd holds the flags for the 'add-fine' subcommand.
type addFineCmd struct {
	cf      string
	vehicle string
	date    string
	amount  string
	note    string
	paid    bool
}

func (*addFineCmd) Name() string     { return "add-fine" }
func (*addFineCmd) Synopsis() string { return "record a traffic fine" }
func (*addFineCmd) Usage() string {
	return `fbk add-fine -cf <fiscal-code> -a <amount> [-v <vehicle>] [-d <date>] [-n <note>] [-paid]

  Records a traffic fine. The fiscal code must be 16 letters or digits; it
  is stored upper-cased.
`
}

func (c *addFineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cf, "cf", "", "driver's fiscal code")
	f.StringVar(&c.vehicle, "v", "", "vehicle description")
	f.StringVar(&c.date, "d", fleetbook.Today().String(), "fine date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "a", "", "amount in euro")
	f.StringVar(&c.note, "n", "", "free text note")
	f.BoolVar(&c.paid, "paid", false, "record the fine as already paid")
}

func (c *addFineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermFines); err != nil {
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
	fines, err := fleetbook.LoadFines(DataDir())
	if err != nil {
		return fail(err)
	}
	fine, err := fines.Add(c.cf, c.vehicle, date.String(), amount, c.note, c.paid)
	if err != nil {
		return usageError(err)
	}
	if err := fleetbook.SaveFines(DataDir(), fines); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded fine %s for %s: %s\n", fine.ID, fine.Cf, fleetbook.EUR(fine.Amount))
	return subcommands.ExitSuccess
}

// editFineCmd holds the flags for the 'edit-fine' subcommand. Flags that
// are not set on the command line keep the record's current value.
type editFineCmd struct {
	cf      string
	vehicle string
	date    string
	amount  string
	note    string
	paid    bool
}

func (*editFineCmd) Name() string     { return "edit-fine" }
func (*editFineCmd) Synopsis() string { return "edit a fine record" }
func (*editFineCmd) Usage() string {
	return `fbk edit-fine <fine-id> [-cf <fiscal-code>] [-v <vehicle>] [-d <date>] [-a <amount>] [-n <note>] [-paid=<bool>]

  Changes a fine record. Omitted flags keep their current value.
`
}

func (c *editFineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cf, "cf", "", "driver's fiscal code")
	f.StringVar(&c.vehicle, "v", "", "vehicle description")
	f.StringVar(&c.date, "d", "", "fine date (YYYY-MM-DD)")
	f.StringVar(&c.amount, "a", "", "amount in euro")
	f.StringVar(&c.note, "n", "", "free text note")
	f.BoolVar(&c.paid, "paid", false, "paid status")
}

func (c *editFineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("exactly one fine id is expected"))
	}
	id := f.Arg(0)
	if _, err := currentSession(fleetbook.PermFines); err != nil {
		return fail(err)
	}
	fines, err := fleetbook.LoadFines(DataDir())
	if err != nil {
		return fail(err)
	}
	current := fines.Get(id)
	if current == nil {
		return fail(fmt.Errorf("fine %q: %w", id, fleetbook.ErrNotFound))
	}

	cf, vehicle, date, amount, note, paid := current.Cf, current.Vehicle, current.Date, current.Amount, current.Note, current.Paid
	var ferr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "cf":
			cf = c.cf
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
		case "paid":
			paid = c.paid
		}
	})
	if ferr != nil {
		return usageError(ferr)
	}

	if err := fines.Update(id, cf, vehicle, date, amount, note, paid); err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveFines(DataDir(), fines); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated fine %s\n", id)
	return subcommands.ExitSuccess
}

// deleteFineCmd removes a fine record.
type deleteFineCmd struct{}

func (*deleteFineCmd) Name() string     { return "delete-fine" }
func (*deleteFineCmd) Synopsis() string { return "delete a fine record" }
func (*deleteFineCmd) Usage() string {
	return `fbk delete-fine <fine-id>

  Deletes a fine record from the register.
`
}

func (*deleteFineCmd) SetFlags(*flag.FlagSet) {}

func (*deleteFineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("exactly one fine id is expected"))
	}
	if _, err := currentSession(fleetbook.PermFines); err != nil {
		return fail(err)
	}
	fines, err := fleetbook.LoadFines(DataDir())
	if err != nil {
		return fail(err)
	}
	if err := fines.Delete(f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveFines(DataDir(), fines); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted fine %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}

// payFineCmd toggles the paid flag of a fine.
type payFineCmd struct{}

func (*payFineCmd) Name() string     { return "pay-fine" }
func (*payFineCmd) Synopsis() string { return "toggle the paid flag of a fine" }
func (*payFineCmd) Usage() string {
	return `fbk pay-fine <fine-id>

  Toggles the paid flag of a fine record.
`
}

func (*payFineCmd) SetFlags(*flag.FlagSet) {}

func (*payFineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("exactly one fine id is expected"))
	}
	if _, err := currentSession(fleetbook.PermFines); err != nil {
		return fail(err)
	}
	fines, err := fleetbook.LoadFines(DataDir())
	if err != nil {
		return fail(err)
	}
	paid, err := fines.TogglePaid(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveFines(DataDir(), fines); err != nil {
		return fail(err)
	}
	if paid {
		fmt.Printf("Fine %s marked as paid\n", f.Arg(0))
	} else {
		fmt.Printf("Fine %s marked as outstanding\n", f.Arg(0))
	}
	return subcommands.ExitSuccess
}
