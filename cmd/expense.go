package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	homehive "github.com/8ktulu2/home-hive-control-sub002"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	propertyID    string
	concept       string
	amount        float64
	date          string
	category      string
	nonDeductible bool
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense for the current year" }
func (*expenseCmd) Usage() string {
	return `hhc expense -p <property-id> -concept <text> -amount <amount> [-category <name>] [-non-deductible]

  Records an expense in the current year's partition. Expenses are
  deductible unless marked otherwise, and the category groups them in the
  fiscal report.

Usage Examples:
$ hhc expense -p 1 -concept "Boiler repair" -amount 140 -category repairs

`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property id (required).")
	f.StringVar(&c.concept, "concept", "", "What the expense was for (required).")
	f.Float64Var(&c.amount, "amount", 0, "Amount in euros (required).")
	f.StringVar(&c.date, "d", "", "Date of the expense (YYYY-MM-DD, defaults to today).")
	f.StringVar(&c.category, "category", "", "Expense category for the fiscal report.")
	f.BoolVar(&c.nonDeductible, "non-deductible", false, "Mark the expense as not tax deductible.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.concept == "" || c.amount == 0 {
		fmt.Fprintln(os.Stderr, "Both -concept and -amount are required.")
		return subcommands.ExitUsageError
	}

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
	on := today
	if c.date != "" {
		on, err = homehive.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if on.Year() != today.Year() {
		fmt.Fprintf(os.Stderr, "Date %s is not in the current year. Past years are edited through their own partition.\n", on)
		return subcommands.ExitFailure
	}

	a.years.MigrateLegacyProperty(p, today.Year())
	part, _ := a.years.YearData(p.ID, today.Year())
	expense := homehive.NewExpense(on, c.concept, homehive.EUR(c.amount), !c.nonDeductible, c.category)
	part.Expenses = append(part.Expenses, expense)
	if !a.years.SaveYearData(p.ID, today.Year(), part) {
		fmt.Fprintln(os.Stderr, "Error: expense could not be saved.")
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded expense %q of %s for %s\n", c.concept, expense.Amount, p.Name)
	return subcommands.ExitSuccess
}
