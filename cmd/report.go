package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	homehive "github.com/8ktulu2/home-hive-control-sub002"
	"github.com/8ktulu2/home-hive-control-sub002/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	propertyID string
	year       int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "fiscal summary of a property for one year" }
func (*reportCmd) Usage() string {
	return `hhc report -p <property-id> [-year <year>]

  Computes the fiscal summary of one property for a year: rental income,
  deductible expenses by category and the net result. The year defaults
  to the current one. Past years are computed over their own sealed data.

Usage Examples:
$ hhc report -p 1 -year 2024

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property id (required).")
	f.IntVar(&c.year, "year", 0, "Fiscal year (defaults to the current year).")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	year := c.year
	if year == 0 {
		year = a.clock.Today().Year()
	}

	view := a.projector().Project(p, year)
	summary := homehive.NewFiscalSummary(view, year)
	printMarkdown(renderer.FiscalMarkdown(summary))
	return subcommands.ExitSuccess
}
