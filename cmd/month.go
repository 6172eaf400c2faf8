package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
)

// monthCmd holds the flags for the 'month' subcommand.
type monthCmd struct {
	clear bool
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "select the reporting month" }
func (*monthCmd) Usage() string {
	return `fbk month [<YYYY-MM>] [-clear]

  Selects the month that filters lists and reports, and persists the
  choice. Without arguments it shows the current selection.
`
}

func (c *monthCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "clear the selection and report on all months")
}

func (c *monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prefs, err := fleetbook.LoadPrefs(DataDir())
	if err != nil {
		return fail(err)
	}
	switch {
	case c.clear:
		prefs.Month = ""
	case f.NArg() == 1:
		m, err := fleetbook.ParseMonth(f.Arg(0))
		if err != nil {
			return usageError(err)
		}
		prefs.Month = m.String()
	case f.NArg() == 0:
		if m := prefs.SelectedMonth(); m.IsZero() {
			fmt.Println("No month selected, reporting on all months.")
		} else {
			fmt.Printf("Reporting month: %s\n", m)
		}
		return subcommands.ExitSuccess
	default:
		return usageError(fmt.Errorf("at most one month is expected"))
	}
	if err := fleetbook.SavePrefs(DataDir(), prefs); err != nil {
		return fail(err)
	}
	if m := prefs.SelectedMonth(); m.IsZero() {
		fmt.Println("Month selection cleared.")
	} else {
		fmt.Printf("Reporting month set to %s\n", m)
	}
	return subcommands.ExitSuccess
}
