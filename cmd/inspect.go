package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type inspectCmd struct{}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "query the raw stored data with a JSONPath" }
func (*inspectCmd) Usage() string {
	return `hhc inspect [<key> [<jsonpath>]]

  Low-level debugging aid. Without arguments, lists the stored keys. With
  a key, prints its raw JSON. With a JSONPath expression, prints the
  matching fragment.

Usage Examples:
$ hhc inspect
$ hhc inspect historicalData '$[?(@.year == 2024)].propertyName'

`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	args := f.Args()
	if len(args) == 0 {
		keys, err := a.storage.Keys("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing keys: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return subcommands.ExitSuccess
	}

	raw, ok, err := a.storage.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading key %q: %v\n", args[0], err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "No such key %q.\n", args[0])
		return subcommands.ExitFailure
	}

	if len(args) == 1 {
		fmt.Println(string(raw))
		return subcommands.ExitSuccess
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		fmt.Fprintf(os.Stderr, "Key %q does not hold JSON: %v\n", args[0], err)
		return subcommands.ExitFailure
	}

	got, err := jsonpath.Get(args[1], value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "JSONPath error: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
