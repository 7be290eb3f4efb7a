package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/8ktulu2/home-hive-control-sub002/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion serves shell completion requests. It exits the process when
// the shell invokes the binary in completion mode, and is a no-op otherwise.
func completion() {
	sub := map[string]*complete.Command{}
	for _, name := range []string{
		"add-property", "list", "delete-property",
		"pay", "expense",
		"history", "years", "rollover",
		"hist-inventory", "hist-task", "hist-pay",
		"report", "notifications", "inspect", "topic",
	} {
		sub[name] = &complete.Command{}
	}

	hhc := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
	}
	hhc.Complete("hhc")
}
