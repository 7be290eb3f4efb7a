package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deletePropertyCmd struct {
	propertyID string
}

func (*deletePropertyCmd) Name() string     { return "delete-property" }
func (*deletePropertyCmd) Synopsis() string { return "remove a property, keeping its history" }
func (*deletePropertyCmd) Usage() string {
	return `hhc delete-property -p <property-id>

  Removes a property from the live registry together with its year
  partitions and temporal records. The historical snapshots taken at past
  rollovers are kept, so reports over past years keep working.
`
}

func (c *deletePropertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property id (required).")
}

func (c *deletePropertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := a.registry.Delete(p.ID, a.temporal, a.years); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting property: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted property %q. Its historical snapshots are preserved.\n", p.Name)
	return subcommands.ExitSuccess
}
