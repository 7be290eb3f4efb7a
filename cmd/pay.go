package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	homehive "github.com/8ktulu2/home-hive-control-sub002"
	"github.com/google/subcommands"
)

type payCmd struct {
	propertyID string
	month      string
	amount     float64
	unpaid     bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a rent payment for the current year" }
func (*payCmd) Usage() string {
	return `hhc pay -p <property-id> [-m <YYYY-MM>] [-amount <amount>] [-unpaid]

  Records a rent payment in the current year's partition. The month
  defaults to the current month and the amount to the property's rent.
  Months belonging to a past year are refused; use hist-pay for those.

Usage Examples:
$ hhc pay -p 1
$ hhc pay -p 1 -m 2025-06 -amount 800

`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property id (required).")
	f.StringVar(&c.month, "m", "", "Month of the payment (YYYY-MM, defaults to the current month).")
	f.Float64Var(&c.amount, "amount", 0, "Amount in euros (defaults to the property's rent).")
	f.BoolVar(&c.unpaid, "unpaid", false, "Record the month as due but not paid.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	today := a.clock.Today()
	month := homehive.NewMonthKey(today.Year(), today.Month())
	if c.month != "" {
		month, err = homehive.ParseMonthKey(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if month.Year() != today.Year() {
		fmt.Fprintf(os.Stderr, "Month %s is not in the current year. Use hist-pay to edit a past year.\n", month)
		return subcommands.ExitFailure
	}

	amount := p.Rent
	if c.amount != 0 {
		amount = homehive.EUR(c.amount)
	}

	a.years.MigrateLegacyProperty(p, today.Year())
	part, _ := a.years.YearData(p.ID, today.Year())
	payment := homehive.NewPayment(month, amount, !c.unpaid)
	part.Payments = append(part.Payments, payment)
	if !a.years.SaveYearData(p.ID, today.Year(), part) {
		fmt.Fprintln(os.Stderr, "Error: payment could not be saved.")
		return subcommands.ExitFailure
	}

	status := "paid"
	if c.unpaid {
		status = "due"
	}
	fmt.Printf("Recorded %s rent of %s for %s in %s\n", status, amount, p.Name, month)
	return subcommands.ExitSuccess
}
