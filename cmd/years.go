package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/8ktulu2/home-hive-control-sub002/renderer"
	"github.com/google/subcommands"
)

type yearsCmd struct {
	propertyID string
}

func (*yearsCmd) Name() string     { return "years" }
func (*yearsCmd) Synopsis() string { return "list the years a property has data for" }
func (*yearsCmd) Usage() string {
	return `hhc years -p <property-id>

  Lists the years the property has a partition for, newest first. The
  current year is the only one editable through pay and expense; the rest
  are sealed and edited only through the hist-* commands.
`
}

func (c *yearsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property id (required).")
}

func (c *yearsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p, err := a.property(c.propertyID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	years := a.years.AvailableYears(p.ID)
	printMarkdown(renderer.YearsMarkdown(p.Name, years, a.clock.Today().Year()))
	return subcommands.ExitSuccess
}
