// Package renderer turns the package's report structures into markdown,
// ready to be printed raw or through a terminal renderer.
package renderer

import (
	"bytes"
	"fmt"

	homehive "github.com/8ktulu2/home-hive-control-sub002"
	md "github.com/nao1215/markdown"
)

// FiscalMarkdown renders the fiscal summary of one property and year.
func FiscalMarkdown(s homehive.FiscalSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Fiscal year %d for %s", s.Year, s.PropertyName))
	doc.PlainText(fmt.Sprintf("Paid months: %d, occupied months: %d", s.PaidMonths, s.OccupiedMonths))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Concept", "Amount"},
		Rows: [][]string{
			{"Rental income", s.Income.String()},
			{"Deductible expenses", s.Deductible.String()},
			{"Non-deductible expenses", s.NonDeductible.String()},
			{"Net result", s.Net.String()},
		},
	}
	doc.Table(table)

	if len(s.ByCategory) > 0 {
		doc.H2("Deductible by category")
		cat := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Total"},
			Rows:      [][]string{},
		}
		for _, c := range s.ByCategory {
			cat.Rows = append(cat.Rows, []string{c.Category, c.Total.String()})
		}
		doc.Table(cat)
	}

	return doc.String()
}
