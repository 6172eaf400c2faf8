package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
	"github.com/openfleet/fleetbook/renderer"
)

// loginCmd holds the flags for the 'login' subcommand.
type loginCmd struct {
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log into the office books" }
func (*loginCmd) Usage() string {
	return `fbk login -u <username> -p <password>

  Opens a session. All record keeping commands require one.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "username")
	f.StringVar(&c.password, "p", "", "password")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		return usageError(fmt.Errorf("both -u and -p are required"))
	}
	users, err := fleetbook.LoadUsers(DataDir())
	if err != nil {
		return fail(err)
	}
	// The roster may have been seeded just now, keep it on disk either way.
	if err := fleetbook.SaveUsers(DataDir(), users); err != nil {
		return fail(err)
	}
	s, err := users.Authenticate(c.username, c.password)
	if err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveSession(DataDir(), s); err != nil {
		return fail(err)
	}
	fmt.Printf("Logged in as %s (%s)\n", s.Username, s.Role.Name())
	return subcommands.ExitSuccess
}

// logoutCmd closes the active session.
type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the active session" }
func (*logoutCmd) Usage() string {
	return `fbk logout

  Closes the active session, if any.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := fleetbook.ClearSession(DataDir()); err != nil {
		return fail(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

// whoamiCmd shows the active session.
type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the active session" }
func (*whoamiCmd) Usage() string {
	return `fbk whoami

  Shows who is logged in and with which role.
`
}

func (*whoamiCmd) SetFlags(*flag.FlagSet) {}

func (*whoamiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := fleetbook.LoadSession(DataDir())
	if err != nil {
		return fail(err)
	}
	if s == nil {
		fmt.Fprintln(os.Stderr, "Nobody is logged in.")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WhoamiMarkdown(s))
	return subcommands.ExitSuccess
}
