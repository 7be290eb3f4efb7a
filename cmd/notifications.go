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

type notificationsCmd struct{}

func (*notificationsCmd) Name() string     { return "notifications" }
func (*notificationsCmd) Synopsis() string { return "list the recorded notifications" }
func (*notificationsCmd) Usage() string {
	return `hhc notifications

  Lists the notifications recorded by historical task completions, newest
  first.
`
}

func (c *notificationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *notificationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(notificationsMarkdown(a.notifications.All()))
	return subcommands.ExitSuccess
}

func notificationsMarkdown(notifications []homehive.Notification) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Notifications")
	if len(notifications) == 0 {
		doc.PlainText("No notifications.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"When", "Kind", "Message"},
		Rows:      [][]string{},
	}
	for i := len(notifications) - 1; i >= 0; i-- {
		n := notifications[i]
		table.Rows = append(table.Rows, []string{
			n.CreatedAt.Format("2006-01-02 15:04"),
			string(n.Kind),
			n.Message,
		})
	}
	doc.Table(table)

	return doc.String()
}
