package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
	"github.com/openfleet/fleetbook/renderer"
)

// finesCmd holds the flags for the 'fines' subcommand.
type finesCmd struct {
	cf string
}

func (*finesCmd) Name() string     { return "fines" }
func (*finesCmd) Synopsis() string { return "list the recorded fines" }
func (*finesCmd) Usage() string {
	return `fbk fines [-cf <fragment>]

  Lists the fines, most recent first, with the paid and outstanding
  totals. -cf filters by fiscal code fragment, case insensitive.
`
}

func (c *finesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cf, "cf", "", "fiscal code fragment to filter by")
}

func (c *finesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermFines); err != nil {
		return fail(err)
	}
	fines, err := fleetbook.LoadFines(DataDir())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FinesMarkdown(fines, c.cf))
	return subcommands.ExitSuccess
}
