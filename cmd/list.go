package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/8ktulu2/home-hive-control-sub002/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the registered properties" }
func (*listCmd) Usage() string {
	return `hhc list

  Lists every property in the live registry with its id, address and rent.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PropertiesMarkdown(a.registry.Properties()))
	return subcommands.ExitSuccess
}
