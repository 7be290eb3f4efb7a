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

type histTaskCmd struct {
	propertyID string
	year       int
	add        string
	notes      string
	done       string
	reopen     string
	delete     string
}

func (*histTaskCmd) Name() string     { return "hist-task" }
func (*histTaskCmd) Synopsis() string { return "manage the tasks of a past year" }
func (*histTaskCmd) Usage() string {
	return `hhc hist-task -p <property-id> -year <year> [-add <title> [-notes <text>]] [-done <task-id>] [-reopen <task-id>] [-delete <task-id>]

  Lists, adds, completes, reopens or deletes the tasks of one past year.
  Completing a task records a notification; deleting it clears the task's
  notifications.

Usage Examples:
$ hhc hist-task -p 1 -year 2024 -add "Repaint kitchen"
$ hhc hist-task -p 1 -year 2024 -done <task-id>

`
}

func (c *histTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.propertyID, "p", "", "Property id (required).")
	f.IntVar(&c.year, "year", 0, "Year to edit (required).")
	f.StringVar(&c.add, "add", "", "Add a task with this title.")
	f.StringVar(&c.notes, "notes", "", "Notes for the added task.")
	f.StringVar(&c.done, "done", "", "Mark the task with this id completed.")
	f.StringVar(&c.reopen, "reopen", "", "Mark the task with this id pending again.")
	f.StringVar(&c.delete, "delete", "", "Delete the task with this id.")
}

func (c *histTaskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	editor := homehive.NewTaskEditor(a.storage, a.notifications, p.ID, c.year)

	switch {
	case c.add != "":
		task, ok := editor.Add(homehive.Task{Title: c.add, Notes: c.notes})
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: task could not be saved.")
			return subcommands.ExitFailure
		}
		fmt.Printf("Added task %q to %d with id %s\n", task.Title, c.year, task.ID)

	case c.done != "":
		if !editor.Toggle(c.done, true) {
			fmt.Fprintf(os.Stderr, "No task %q in %d.\n", c.done, c.year)
			return subcommands.ExitFailure
		}
		fmt.Printf("Completed task %s\n", c.done)

	case c.reopen != "":
		if !editor.Toggle(c.reopen, false) {
			fmt.Fprintf(os.Stderr, "No task %q in %d.\n", c.reopen, c.year)
			return subcommands.ExitFailure
		}
		fmt.Printf("Reopened task %s\n", c.reopen)

	case c.delete != "":
		if !editor.Delete(c.delete) {
			fmt.Fprintf(os.Stderr, "No task %q in %d.\n", c.delete, c.year)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted task %s\n", c.delete)

	default:
		printMarkdown(tasksMarkdown(p.Name, c.year, editor.Tasks()))
	}
	return subcommands.ExitSuccess
}

func tasksMarkdown(name string, year int, tasks []homehive.HistoricalTask) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Tasks of %s in %d", name, year))
	if len(tasks) == 0 {
		doc.PlainText("No tasks recorded for this year.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"ID", "Task", "Status"},
		Rows:      [][]string{},
	}
	for _, task := range tasks {
		status := "pending"
		if task.Completed {
			status = "done"
		}
		table.Rows = append(table.Rows, []string{task.ID, task.Title, status})
	}
	doc.Table(table)

	return doc.String()
}
