package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
	"github.com/openfleet/fleetbook/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the income total per vehicle" }
func (*summaryCmd) Usage() string {
	return `fbk summary [-m <YYYY-MM>]

  Displays the income total of each vehicle for the selected month, with a
  bar chart scaled to the best performer.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "reporting month (YYYY-MM)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SummaryMarkdown(book.NewSummary(month)))
	return subcommands.ExitSuccess
}

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct {
	month string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display the income total per category" }
func (*breakdownCmd) Usage() string {
	return `fbk breakdown [-m <YYYY-MM>]

  Displays the income total per note-derived category for the selected
  month: Noleggio, Vendita, Servizio, Carburante and Altro.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "reporting month (YYYY-MM)")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.BreakdownMarkdown(book.NewBreakdown(month)))
	return subcommands.ExitSuccess
}
