package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
	"github.com/openfleet/fleetbook/renderer"
)

// incomesCmd holds the flags for the 'incomes' subcommand.
type incomesCmd struct {
	month string
}

func (*incomesCmd) Name() string     { return "incomes" }
func (*incomesCmd) Synopsis() string { return "list the recorded incomes" }
func (*incomesCmd) Usage() string {
	return `fbk incomes [-m <YYYY-MM>]

  Lists the incomes of the selected month. Without -m the month persisted
  with 'fbk month' applies; when none is set, all records are listed.
`
}

func (c *incomesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "reporting month (YYYY-MM)")
}

func (c *incomesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermIncomes); err != nil {
		return fail(err)
	}
	month, err := selectedMonth(c.month)
	if err != nil {
		return usageError(err)
	}
	book, err := fleetbook.LoadBook(DataDir())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.IncomesMarkdown(book, month))
	return subcommands.ExitSuccess
}
