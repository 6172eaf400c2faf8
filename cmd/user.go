package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/openfleet/fleetbook"
	"github.com/openfleet/fleetbook/renderer"
)

// addUserCmd holds the flags for the 'add-user' subcommand.
type addUserCmd struct {
	username string
	password string
	role     string
}

func (*addUserCmd) Name() string     { return "add-user" }
func (*addUserCmd) Synopsis() string { return "create a user account" }
func (*addUserCmd) Usage() string {
	return `fbk add-user -u <username> -p <password> -r <role>

  Creates a user account. Roles: admin, amministratrice_ufficio,
  operatore, contabile. Requires the users permission.
`
}

func (c *addUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "username")
	f.StringVar(&c.password, "p", "", "password")
	f.StringVar(&c.role, "r", string(fleetbook.RoleOperator), "role")
}

func (c *addUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := currentSession(fleetbook.PermUsers)
	if err != nil {
		return fail(err)
	}
	role, err := fleetbook.ParseRole(c.role)
	if err != nil {
		return usageError(err)
	}
	users, err := fleetbook.LoadUsers(DataDir())
	if err != nil {
		return fail(err)
	}
	user, err := users.Add(s, c.username, c.password, role)
	if err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveUsers(DataDir(), users); err != nil {
		return fail(err)
	}
	fmt.Printf("Created user %s (%s) as %s\n", user.Username, user.ID, user.Role.Name())
	return subcommands.ExitSuccess
}

// updateUserCmd holds the flags for the 'update-user' subcommand. Flags
// that are not set on the command line keep the account's current value.
type updateUserCmd struct {
	username string
	password string
	role     string
	active   bool
}

func (*updateUserCmd) Name() string     { return "update-user" }
func (*updateUserCmd) Synopsis() string { return "update a user account" }
func (*updateUserCmd) Usage() string {
	return `fbk update-user <user-id> [-u <username>] [-p <password>] [-r <role>] [-active=<bool>]

  Updates a user account. Omitted flags keep their current value. A new
  password is stored hashed. Requires the users permission.
`
}

func (c *updateUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "new username")
	f.StringVar(&c.password, "p", "", "new password")
	f.StringVar(&c.role, "r", "", "new role")
	f.BoolVar(&c.active, "active", true, "whether the account can log in")
}

func (c *updateUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("exactly one user id is expected"))
	}
	s, err := currentSession(fleetbook.PermUsers)
	if err != nil {
		return fail(err)
	}

	var upd fleetbook.UserUpdate
	var ferr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "u":
			upd.Username = &c.username
		case "p":
			upd.Password = &c.password
		case "r":
			role, err := fleetbook.ParseRole(c.role)
			if err != nil {
				ferr = err
				return
			}
			upd.Role = &role
		case "active":
			upd.Active = &c.active
		}
	})
	if ferr != nil {
		return usageError(ferr)
	}

	users, err := fleetbook.LoadUsers(DataDir())
	if err != nil {
		return fail(err)
	}
	user, err := users.Update(s, f.Arg(0), upd)
	if err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveUsers(DataDir(), users); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated user %s (%s)\n", user.Username, user.ID)
	return subcommands.ExitSuccess
}

// deleteUserCmd removes a user account.
type deleteUserCmd struct{}

func (*deleteUserCmd) Name() string     { return "delete-user" }
func (*deleteUserCmd) Synopsis() string { return "delete a user account" }
func (*deleteUserCmd) Usage() string {
	return `fbk delete-user <user-id>

  Deletes a user account. Deleting your own account is rejected.
  Requires the users permission.
`
}

func (*deleteUserCmd) SetFlags(*flag.FlagSet) {}

func (*deleteUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(fmt.Errorf("exactly one user id is expected"))
	}
	s, err := currentSession(fleetbook.PermUsers)
	if err != nil {
		return fail(err)
	}
	users, err := fleetbook.LoadUsers(DataDir())
	if err != nil {
		return fail(err)
	}
	if err := users.Delete(s, f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := fleetbook.SaveUsers(DataDir(), users); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted user %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}

// usersCmd lists the user accounts.
type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list the user accounts" }
func (*usersCmd) Usage() string {
	return `fbk users

  Lists the user accounts with their roles. Requires the users permission.
`
}

func (*usersCmd) SetFlags(*flag.FlagSet) {}

func (*usersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := currentSession(fleetbook.PermUsers); err != nil {
		return fail(err)
	}
	users, err := fleetbook.LoadUsers(DataDir())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.UsersMarkdown(users))
	return subcommands.ExitSuccess
}
