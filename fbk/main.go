package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/openfleet/fleetbook/cmd"
)

func main() {
	// Shell completion is handled first: when the shell asks for
	// completions the process prints them and exits.
	subs := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		subs[c.Name()] = &complete.Command{}
	}
	completer := &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
	}
	completer.Complete("fbk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()

	// An unknown subcommand may be provided by an external fbk-<name>
	// binary on the PATH.
	if args := flag.Args(); len(args) > 0 && !cmd.IsKnownCommand(args[0]) {
		if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
