package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	homehive "github.com/8ktulu2/home-hive-control-sub002"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type histPayCmd struct {
	propertyID string
	year       int
	month      string
	amount     float64
	unpaid     bool
	delete     string
}

func (*histPayCmd) Name() string     { return "hist-pay" }
func (*histPayCmd) Synopsis() string { return "record or correct a payment in a past year" }
func (*histPayCmd) Usage() string {
	return `hhc hist-pay -p <property-id> -year <year> [-m <YYYY-MM> [-amount <amount>] [-unpaid]] [-delete <payment-id>]

  Lists, records or deletes rent payments inside one past year's
  partition. The month must belong to the edited year; a mismatch is
  refused. The live payment history is never touched.

Usage Examples:
$ hhc hist-pay -p 1 -year 2024
$ hhc hist-pay -p 1 -year 2024 -m 2024-11 -amount 800

`
}

func (c *histPayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property id (required).")
	f.IntVar(&c.year, "year", 0, "Year to edit (required).")
	f.StringVar(&c.month, "m", "", "Month of the payment (YYYY-MM).")
	f.Float64Var(&c.amount, "amount", 0, "Amount in euros (defaults to the property's rent).")
	f.BoolVar(&c.unpaid, "unpaid", false, "Record the month as due but not paid.")
	f.StringVar(&c.delete, "delete", "", "Delete the payment with this id.")
}

func (c *histPayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.year == 0 {
		fmt.Fprintln(os.Stderr, "Missing -year <year>.")
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

	editor := homehive.NewPaymentEditor(a.years, p.ID, c.year)

	switch {
	case c.month != "":
		month, err := homehive.ParseMonthKey(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitFailure
		}
		amount := p.Rent
		if c.amount != 0 {
			amount = homehive.EUR(c.amount)
		}
		if !editor.Add(homehive.NewPayment(month, amount, !c.unpaid)) {
			fmt.Fprintf(os.Stderr, "Payment for %s was refused: the month must belong to %d.\n", month, c.year)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded payment of %s for %s in year %d\n", amount, month, c.year)

	case c.delete != "":
		if !editor.Delete(c.delete) {
			fmt.Fprintf(os.Stderr, "No payment %q in %d.\n", c.delete, c.year)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted payment %s from %d\n", c.delete, c.year)

	default:
		printMarkdown(paymentsMarkdown(p.Name, c.year, editor.Payments()))
	}
	return subcommands.ExitSuccess
}

func paymentsMarkdown(name string, year int, payments []homehive.Payment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Payments of %s in %d", name, year))
	if len(payments) == 0 {
		doc.PlainText("No payments recorded for this year.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"ID", "Month", "Amount", "Status"},
		Rows:      [][]string{},
	}
	for _, p := range payments {
		status := "unpaid"
		if p.IsPaid {
			status = "paid"
		}
		table.Rows = append(table.Rows, []string{p.ID, p.Month.String(), p.Amount.String(), status})
	}
	doc.Table(table)

	return doc.String()
}
