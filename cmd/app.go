// Package cmd implements the CLI application to keep the office books.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
)

// Commands lists every subcommand of the application, for registration and
// for shell completion.
var Commands = []subcommands.Command{
	&loginCmd{},
	&logoutCmd{},
	&whoamiCmd{},
	&addVehicleCmd{},
	&vehiclesCmd{},
	&addIncomeCmd{},
	&editIncomeCmd{},
	&deleteIncomeCmd{},
	&incomesCmd{},
	&summaryCmd{},
	&breakdownCmd{},
	&monthCmd{},
	&addFineCmd{},
	&editFineCmd{},
	&deleteFineCmd{},
	&payFineCmd{},
	&finesCmd{},
	&addUserCmd{},
	&updateUserCmd{},
	&deleteUserCmd{},
	&usersCmd{},
	&exportCmd{},
	&importCmd{},
	&backupCmd{},
	&restoreCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the data directory holding the office documents")

// EnvDataDir overrides the default data directory.
const EnvDataDir = "FBK_DATA_DIR"

func defaultDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return ".fleetbook"
}

// DataDir returns the effective data directory.
func DataDir() string { return *dataDir }

// fail prints the error and maps it to the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usageError prints the error and maps it to the usage exit status.
func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}

// currentSession loads the active session, requiring perm on it. Commands
// call this first so a missing login or permission fails before any store
// is read.
func currentSession(perm fleetbook.Permission) (*fleetbook.Session, error) {
	s, err := fleetbook.LoadSession(DataDir())
	if err != nil {
		return nil, err
	}
	if err := fleetbook.Require(s, perm); err != nil {
		return nil, err
	}
	return s, nil
}

// selectedMonth resolves the reporting month: an explicit flag value wins,
// otherwise the month persisted in the preferences, otherwise all months.
func selectedMonth(flagValue string) (fleetbook.Month, error) {
	if flagValue != "" {
		return fleetbook.ParseMonth(flagValue)
	}
	prefs, err := fleetbook.LoadPrefs(DataDir())
	if err != nil {
		return fleetbook.Month{}, err
	}
	return prefs.SelectedMonth(), nil
}

// printMarkdown renders a markdown document for the terminal, falling back
// to the raw text when the renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
