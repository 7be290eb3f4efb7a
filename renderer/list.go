package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	homehive "github.com/8ktulu2/home-hive-control-sub002"
	md "github.com/nao1215/markdown"
)

// PropertiesMarkdown renders the registry of live properties.
func PropertiesMarkdown(properties []homehive.Property) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Properties")
	if len(properties) == 0 {
		doc.PlainText("No properties registered yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Name", "Address", "Rent"},
		Rows:      [][]string{},
	}
	for _, p := range properties {
		table.Rows = append(table.Rows, []string{p.ID, p.Name, p.Address, p.Rent.String()})
	}
	doc.Table(table)

	return doc.String()
}

// YearsMarkdown renders the years a property has data for, newest first,
// marking which ones are still editable through the live path.
func YearsMarkdown(name string, years []int, currentYear int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Years for %s", name))
	if len(years) == 0 {
		doc.PlainText("No yearly data recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Year", "Status"},
		Rows:      [][]string{},
	}
	for _, y := range years {
		status := "sealed"
		if y == currentYear {
			status = "current"
		}
		table.Rows = append(table.Rows, []string{strconv.Itoa(y), status})
	}
	doc.Table(table)

	return doc.String()
}
