package homehive

import (
	"fmt"
	"strconv"
	"time"
)

// HistoricalPropertyEntry is a frozen full copy of a property, taken once per
// year per property during rollover.
type HistoricalPropertyEntry struct {
	PropertyID   string    `json:"propertyId"`
	PropertyName string    `json:"propertyName"`
	Year         int       `json:"year"`
	Data         Property  `json:"data"`
	CreatedAt    time.Time `json:"createdAt"`
}

// YearCosts is the temporal record sealed at rollover with the outgoing
// year's financing and insurance costs.
type YearCosts struct {
	Mortgage  Money `json:"mortgage"`
	Insurance Money `json:"insurance"`
}

// RecordTypeCosts tags the temporal records holding YearCosts.
const RecordTypeCosts = "costs"

// MigrationEngine detects the year rollover and snapshots the previous
// year's live data into the historical store. It runs once per session, at
// startup, before any historical editor can be interacted with.
type MigrationEngine struct {
	storage  Storage
	clock    Clock
	registry *Registry
	temporal *TemporalStore
}

// NewMigrationEngine returns an engine over the given collaborators.
func NewMigrationEngine(storage Storage, clock Clock, registry *Registry, temporal *TemporalStore) *MigrationEngine {
	return &MigrationEngine{storage: storage, clock: clock, registry: registry, temporal: temporal}
}

// LastMigration returns the year stamped by the last rollover, or 0.
func (m *MigrationEngine) LastMigration() int {
	raw, ok, err := m.storage.Get(keyLastMigration)
	if err != nil || !ok {
		return 0
	}
	year, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0
	}
	return year
}

// RolloverCheck snapshots every live property for the previous year when a
// year rollover is due, then stamps the current year. It reports whether a
// migration ran.
//
// A rollover is due when the stamp is absent or behind the current year, and
// either today is January 1st or no migration has ever run (first use after
// a skipped year). Re-running after the stamp is current is a no-op.
func (m *MigrationEngine) RolloverCheck() (bool, error) {
	today := m.clock.Today()
	current := today.Year()
	last := m.LastMigration()
	if last >= current {
		return false, nil
	}
	isJanuaryFirst := today.Month() == time.January && today.Day() == 1
	if last != 0 && !isJanuaryFirst {
		return false, nil
	}

	if err := m.migrate(current - 1); err != nil {
		return false, err
	}
	if err := m.storage.Set(keyLastMigration, []byte(strconv.Itoa(current))); err != nil {
		return false, fmt.Errorf("cannot stamp migration year: %w", err)
	}
	return true, nil
}

// migrate deep-copies the full current state of every live property into a
// HistoricalPropertyEntry for the given year. The new entry list is built in
// memory and written in a single Set, so a storage failure leaves the
// previous state intact.
func (m *MigrationEngine) migrate(year int) error {
	entries := m.Entries()

	recorded := make(map[string]bool)
	for _, e := range entries {
		if e.Year == year {
			recorded[e.PropertyID] = true
		}
	}

	now := time.Now()
	var snapshotted []Property
	for _, p := range m.registry.Properties() {
		if recorded[p.ID] {
			continue
		}
		entries = append(entries, HistoricalPropertyEntry{
			PropertyID:   p.ID,
			PropertyName: p.Name,
			Year:         year,
			Data:         p.Clone(),
			CreatedAt:    now,
		})
		snapshotted = append(snapshotted, p)
	}

	if err := saveJSON(m.storage, keyHistoricalData, entries); err != nil {
		return fmt.Errorf("rollover migration failed: %w", err)
	}

	// seal the outgoing year's costs; each record freezes on first write.
	for _, p := range snapshotted {
		m.temporal.Save(RecordTypeCosts, p.ID, year, NoMonth, YearCosts{
			Mortgage:  p.Mortgage.MonthlyCost,
			Insurance: p.Insurance.AnnualCost,
		})
	}
	return nil
}

// Entries returns every historical snapshot, oldest first.
func (m *MigrationEngine) Entries() []HistoricalPropertyEntry {
	var entries []HistoricalPropertyEntry
	if _, err := loadJSON(m.storage, keyHistoricalData, &entries); err != nil {
		return nil
	}
	return entries
}

// EntriesForProperty returns the snapshots of one property, oldest first.
// History is keyed by property id only: it survives property deletion.
func (m *MigrationEngine) EntriesForProperty(propertyID string) []HistoricalPropertyEntry {
	var out []HistoricalPropertyEntry
	for _, e := range m.Entries() {
		if e.PropertyID == propertyID {
			out = append(out, e)
		}
	}
	return out
}

// EntryForYear returns the snapshot of a property for a year.
func (m *MigrationEngine) EntryForYear(propertyID string, year int) (HistoricalPropertyEntry, bool) {
	for _, e := range m.Entries() {
		if e.PropertyID == propertyID && e.Year == year {
			return e, true
		}
	}
	return HistoricalPropertyEntry{}, false
}
