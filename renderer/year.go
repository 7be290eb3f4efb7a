package renderer

import (
	"bytes"
	"fmt"

	homehive "github.com/8ktulu2/home-hive-control-sub002"
	md "github.com/nao1215/markdown"
)

// YearMarkdown renders a projected property view of one year: tenants,
// payments, expenses, inventory and tasks, each in its own table.
func YearMarkdown(view homehive.Property, year int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s in %d", view.Name, year))
	if view.Address != "" {
		doc.PlainText(view.Address)
	}

	overview := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Field", "Value"},
		Rows: [][]string{
			{"Monthly rent", view.Rent.String()},
			{"Mortgage", view.Mortgage.MonthlyCost.String()},
			{"Insurance", view.Insurance.AnnualCost.String()},
		},
	}
	doc.Table(overview)

	if len(view.Tenants) > 0 {
		doc.H2("Tenants")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Name", "From", "To"},
			Rows:      [][]string{},
		}
		for _, t := range view.Tenants {
			to := "ongoing"
			if t.EndMonth != nil {
				to = t.EndMonth.String()
			}
			table.Rows = append(table.Rows, []string{t.Name, t.StartMonth.String(), to})
		}
		doc.Table(table)
	}

	if len(view.PaymentHistory) > 0 {
		doc.H2("Payments")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Month", "Amount", "Status"},
			Rows:      [][]string{},
		}
		for _, p := range view.PaymentHistory {
			table.Rows = append(table.Rows, []string{p.Month.String(), p.Amount.String(), paymentStatus(p)})
		}
		doc.Table(table)
	}

	if len(view.MonthlyExpenses) > 0 {
		doc.H2("Expenses")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Concept", "Amount", "Deductible"},
			Rows:      [][]string{},
		}
		for _, e := range view.MonthlyExpenses {
			deductible := "no"
			if e.Deductible {
				deductible = "yes"
			}
			table.Rows = append(table.Rows, []string{e.Concept, e.Amount.String(), deductible})
		}
		doc.Table(table)
	}

	if len(view.Inventory) > 0 {
		doc.H2("Inventory")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Item", "Type", "Condition"},
			Rows:      [][]string{},
		}
		for _, item := range view.Inventory {
			table.Rows = append(table.Rows, []string{item.Name, item.Type, item.Condition})
		}
		doc.Table(table)
	}

	if len(view.Tasks) > 0 {
		doc.H2("Tasks")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
			Header:    []string{"Task", "Status"},
			Rows:      [][]string{},
		}
		for _, task := range view.Tasks {
			status := "pending"
			if task.Completed {
				status = "done"
			}
			table.Rows = append(table.Rows, []string{task.Title, status})
		}
		doc.Table(table)
	}

	return doc.String()
}

func paymentStatus(p homehive.Payment) string {
	if p.IsPaid {
		return "paid"
	}
	return "unpaid"
}
