package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
)

// run executes a subcommand in-process against the test data directory.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("%s: could not parse %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), fs)
}

// useTempDataDir points the shared data directory flag at a fresh
// directory for the duration of the test.
func useTempDataDir(t *testing.T) {
	t.Helper()
	old := *dataDir
	*dataDir = t.TempDir()
	t.Cleanup(func() { *dataDir = old })
}

func login(t *testing.T, username, password string) {
	t.Helper()
	if s := run(t, &loginCmd{}, "-u", username, "-p", password); s != subcommands.ExitSuccess {
		t.Fatalf("login as %s failed with status %v", username, s)
	}
}

func TestBookkeepingFlow(t *testing.T) {
	useTempDataDir(t)
	login(t, "admin", "admin123")

	if s := run(t, &addVehicleCmd{}, "-name", "Panda", "-plate", "AB123CD"); s != subcommands.ExitSuccess {
		t.Fatalf("add-vehicle failed with status %v", s)
	}

	book, err := fleetbook.LoadBook(DataDir())
	if err != nil {
		t.Fatal(err)
	}
	var vehicleID string
	for v := range book.Vehicles() {
		vehicleID = v.ID
	}
	if vehicleID == "" {
		t.Fatal("add-vehicle persisted nothing")
	}

	if s := run(t, &addIncomeCmd{}, "-v", vehicleID, "-d", "2025-01-05", "-a", "50", "-n", "noleggio weekend"); s != subcommands.ExitSuccess {
		t.Fatalf("add-income failed with status %v", s)
	}

	book, err = fleetbook.LoadBook(DataDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, n := book.Counts(); n != 1 {
		t.Fatalf("book has %d incomes, want 1", n)
	}
	summary := book.NewSummary(fleetbook.MustParseMonth("2025-01"))
	if summary.GrandTotal.String() != "50" {
		t.Errorf("grand total = %s, want 50", summary.GrandTotal)
	}
}

func TestCommandsRequireLogin(t *testing.T) {
	useTempDataDir(t)

	if s := run(t, &addVehicleCmd{}, "-name", "Panda"); s == subcommands.ExitSuccess {
		t.Error("add-vehicle without a session should fail")
	}
	if s := run(t, &finesCmd{}); s == subcommands.ExitSuccess {
		t.Error("fines without a session should fail")
	}
}

func TestPermissionsGateCommands(t *testing.T) {
	useTempDataDir(t)
	// The accountant keeps the fine register but not the income book.
	login(t, "contabile", "cont123")

	if s := run(t, &addVehicleCmd{}, "-name", "Panda"); s == subcommands.ExitSuccess {
		t.Error("contabile must not touch the income book")
	}
	if s := run(t, &addFineCmd{}, "-cf", "RSSMRA80A01H501U", "-a", "120"); s != subcommands.ExitSuccess {
		t.Error("contabile must be able to record fines")
	}
	if s := run(t, &usersCmd{}); s == subcommands.ExitSuccess {
		t.Error("contabile must not list users")
	}
}

func TestMonthSelectionAffectsReports(t *testing.T) {
	useTempDataDir(t)
	login(t, "admin", "admin123")

	if s := run(t, &monthCmd{}, "2025-01"); s != subcommands.ExitSuccess {
		t.Fatal("month selection failed")
	}
	prefs, err := fleetbook.LoadPrefs(DataDir())
	if err != nil {
		t.Fatal(err)
	}
	if prefs.SelectedMonth() != fleetbook.MustParseMonth("2025-01") {
		t.Errorf("selected month = %v, want 2025-01", prefs.SelectedMonth())
	}

	// The explicit flag beats the persisted selection.
	m, err := selectedMonth("2025-02")
	if err != nil {
		t.Fatal(err)
	}
	if m != fleetbook.MustParseMonth("2025-02") {
		t.Errorf("selectedMonth(2025-02) = %v", m)
	}

	if s := run(t, &monthCmd{}, "-clear"); s != subcommands.ExitSuccess {
		t.Fatal("month -clear failed")
	}
	m, err = selectedMonth("")
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsZero() {
		t.Errorf("month selection survived -clear: %v", m)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	useTempDataDir(t)
	login(t, "admin", "admin123")

	run(t, &addVehicleCmd{}, "-name", "Panda", "-plate", "AB123CD")
	book, err := fleetbook.LoadBook(DataDir())
	if err != nil {
		t.Fatal(err)
	}
	var vehicleID string
	for v := range book.Vehicles() {
		vehicleID = v.ID
	}
	run(t, &addIncomeCmd{}, "-v", vehicleID, "-a", "50", "-n", "noleggio")

	out := DataDir() + "/export.json"
	if s := run(t, &exportCmd{}, "-s", "book", "-o", out); s != subcommands.ExitSuccess {
		t.Fatal("export failed")
	}
	// Merging the export back doubles the records, with fresh ids.
	if s := run(t, &importCmd{}, "-s", "book", "-mode", "merge", out); s != subcommands.ExitSuccess {
		t.Fatal("import failed")
	}
	book, err = fleetbook.LoadBook(DataDir())
	if err != nil {
		t.Fatal(err)
	}
	if v, n := book.Counts(); v != 2 || n != 2 {
		t.Errorf("after merge: %d vehicles %d incomes, want 2 and 2", v, n)
	}
	// And replacing restores the exported state.
	if s := run(t, &importCmd{}, "-s", "book", "-mode", "replace", out); s != subcommands.ExitSuccess {
		t.Fatal("replace import failed")
	}
	book, err = fleetbook.LoadBook(DataDir())
	if err != nil {
		t.Fatal(err)
	}
	if v, n := book.Counts(); v != 1 || n != 1 {
		t.Errorf("after replace: %d vehicles %d incomes, want 1 and 1", v, n)
	}
}

func TestIsKnownCommand(t *testing.T) {
	for _, name := range []string{"login", "summary", "import", "help"} {
		if !IsKnownCommand(name) {
			t.Errorf("IsKnownCommand(%q) = false", name)
		}
	}
	if IsKnownCommand("hello") {
		t.Error("IsKnownCommand(hello) = true")
	}
}
