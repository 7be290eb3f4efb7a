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

type histInventoryCmd struct {
	propertyID string
	year       int
	add        string
	itemType   string
	condition  string
	price      float64
	delete     string
}

func (*histInventoryCmd) Name() string     { return "hist-inventory" }
func (*histInventoryCmd) Synopsis() string { return "manage the inventory of a past year" }
func (*histInventoryCmd) Usage() string {
	return `hhc hist-inventory -p <property-id> -year <year> [-add <name> [-type <t>] [-condition <c>] [-price <amount>]] [-delete <item-id>]

  Lists, adds to or deletes from the inventory of one past year. Items
  live in that year's own namespace and never touch the live inventory or
  any other year.

Usage Examples:
$ hhc hist-inventory -p 1 -year 2024
$ hhc hist-inventory -p 1 -year 2024 -add "Sofa" -type furniture -condition good

`
}

func (c *histInventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property id (required).")
	f.IntVar(&c.year, "year", 0, "Year to edit (required).")
	f.StringVar(&c.add, "add", "", "Add an item with this name.")
	f.StringVar(&c.itemType, "type", "", "Type of the added item.")
	f.StringVar(&c.condition, "condition", "", "Condition of the added item.")
	f.Float64Var(&c.price, "price", 0, "Purchase price of the added item in euros.")
	f.StringVar(&c.delete, "delete", "", "Delete the item with this id.")
}

func (c *histInventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	editor := homehive.NewInventoryEditor(a.storage, p.ID, c.year)

	switch {
	case c.add != "":
		item, ok := editor.Add(homehive.InventoryItem{
			Name:      c.add,
			Type:      c.itemType,
			Condition: c.condition,
			Price:     homehive.EUR(c.price),
		})
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: item could not be saved.")
			return subcommands.ExitFailure
		}
		fmt.Printf("Added %q to %d inventory with id %s\n", item.Name, c.year, item.ID)

	case c.delete != "":
		if !editor.Delete(c.delete) {
			fmt.Fprintf(os.Stderr, "No item %q in %d inventory.\n", c.delete, c.year)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted item %s from %d inventory\n", c.delete, c.year)

	default:
		printMarkdown(inventoryMarkdown(p.Name, c.year, editor.Items()))
	}
	return subcommands.ExitSuccess
}

func inventoryMarkdown(name string, year int, items []homehive.HistoricalInventoryItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Inventory of %s in %d", name, year))
	if len(items) == 0 {
		doc.PlainText("No inventory recorded for this year.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"ID", "Item", "Type", "Condition"},
		Rows:      [][]string{},
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []string{item.ID, item.Name, item.Type, item.Condition})
	}
	doc.Table(table)

	return doc.String()
}
