// Package cmd implements the CLI application to manage rental properties
// and their per-year history.
package cmd

import (
	"flag"
	"fmt"
	"log"

	homehive "github.com/8ktulu2/home-hive-control-sub002"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addPropertyCmd{}, "properties")
	c.Register(&listCmd{}, "properties")
	c.Register(&deletePropertyCmd{}, "properties")

	c.Register(&payCmd{}, "records")
	c.Register(&expenseCmd{}, "records")

	c.Register(&historyCmd{}, "history")
	c.Register(&yearsCmd{}, "history")
	c.Register(&rolloverCmd{}, "history")
	c.Register(&histInventoryCmd{}, "history")
	c.Register(&histTaskCmd{}, "history")
	c.Register(&histPayCmd{}, "history")

	c.Register(&reportCmd{}, "reports")
	c.Register(&notificationsCmd{}, "reports")
	c.Register(&inspectCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".hhc", "Path to the data folder")

// app bundles the stores every subcommand works with, all sharing one
// storage backend and one clock.
type app struct {
	storage       homehive.Storage
	clock         homehive.Clock
	registry      *homehive.Registry
	years         *homehive.YearStore
	temporal      *homehive.TemporalStore
	notifications *homehive.NotificationLog
	engine        *homehive.MigrationEngine
}

// openApp opens the data folder and runs the startup rollover check, so a
// new year is archived before any command reads or writes.
func openApp() (*app, error) {
	storage, err := homehive.NewDirStorage(*dataDir)
	if err != nil {
		return nil, fmt.Errorf("cannot open data folder %q: %w", *dataDir, err)
	}

	clock := homehive.SystemClock()
	a := &app{
		storage:       storage,
		clock:         clock,
		registry:      homehive.NewRegistry(storage),
		years:         homehive.NewYearStore(storage, clock),
		temporal:      homehive.NewTemporalStore(storage, clock),
		notifications: homehive.NewNotificationLog(storage),
	}
	a.engine = homehive.NewMigrationEngine(storage, a.clock, a.registry, a.temporal)

	if ran, err := a.engine.RolloverCheck(); err != nil {
		log.Printf("warning: year rollover failed, will retry on next run: %v", err)
	} else if ran {
		log.Printf("archived year %d", a.engine.LastMigration()-1)
	}

	return a, nil
}

// projector returns a read-only view builder over the app's stores.
func (a *app) projector() homehive.Projector {
	return homehive.Projector{Storage: a.storage, Years: a.years, Temporal: a.temporal}
}

// property resolves a -p flag value, failing with a helpful message when
// the id is missing or unknown.
func (a *app) property(id string) (homehive.Property, error) {
	if id == "" {
		return homehive.Property{}, fmt.Errorf("missing -p <property-id>")
	}
	p, ok := a.registry.Property(id)
	if !ok {
		return homehive.Property{}, fmt.Errorf("unknown property %q", id)
	}
	return p, nil
}
