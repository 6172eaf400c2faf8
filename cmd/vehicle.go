package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
	"github.com/openfleet/fleetbook/renderer"
)

// addVehicleCmd holds the flags for the 'add-vehicle' subcommand.
type addVehicleCmd struct {
	name  string
	plate string
}

func (*addVehicleCmd) Name() string     { return "add-vehicle" }
func (*addVehicleCmd) Synopsis() string { return "register a vehicle" }
func (*addVehicleCmd) Usage() string {
	return `fbk add-vehicle -name <name> [-plate <plate>]

  Registers a vehicle in the income book.
`
}

func (c *addVehicleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "vehicle name")
	f.StringVar(&c.plate, "plate", "", "licence plate")
}

func (c *addVehicleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermIncomes); err != nil {
		return fail(err)
	}
	book, err := fleetbook.LoadBook(DataDir())
	if err != nil {
		return fail(err)
	}
	v, err := book.AddVehicle(c.name, c.plate)
	if err != nil {
		return usageError(err)
	}
	if err := fleetbook.SaveBook(DataDir(), book); err != nil {
		return fail(err)
	}
	fmt.Printf("Added vehicle %s: %s\n", v.ID, v.Label())
	return subcommands.ExitSuccess
}

// vehiclesCmd lists the vehicles.
type vehiclesCmd struct{}

func (*vehiclesCmd) Name() string     { return "vehicles" }
func (*vehiclesCmd) Synopsis() string { return "list the registered vehicles" }
func (*vehiclesCmd) Usage() string {
	return `fbk vehicles

  Lists the registered vehicles with their income record counts.
`
}

func (*vehiclesCmd) SetFlags(*flag.FlagSet) {}

func (*vehiclesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermIncomes); err != nil {
		return fail(err)
	}
	book, err := fleetbook.LoadBook(DataDir())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.VehiclesMarkdown(book))
	return subcommands.ExitSuccess
}
