package homehive

import "testing"

func newEngine(storage Storage, clock Clock) (*MigrationEngine, *Registry) {
	registry := NewRegistry(storage)
	temporal := NewTemporalStore(storage, clock)
	return NewMigrationEngine(storage, clock, registry, temporal), registry
}

func TestMigrationEngine_FirstRollover(t *testing.T) {
	storage := NewMemoryStorage()
	engine, registry := newEngine(storage, jan2026) // Jan 1st 2026, never migrated
	if _, err := registry.Add(testProperty()); err != nil {
		t.Fatal(err)
	}

	ran, err := engine.RolloverCheck()
	if err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("rollover should run on Jan 1st with no stamp")
	}

	entries := engine.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Year != 2025 || e.PropertyID != "1" || e.PropertyName != "Calle Mayor 5" {
		t.Errorf("unexpected entry %+v", e)
	}
	if !e.Data.Rent.Equal(EUR(850)) {
		t.Errorf("snapshot rent = %s, want %s", e.Data.Rent, EUR(850))
	}
	if engine.LastMigration() != 2026 {
		t.Errorf("stamp = %d, want 2026", engine.LastMigration())
	}
}

func TestMigrationEngine_Idempotent(t *testing.T) {
	storage := NewMemoryStorage()
	engine, registry := newEngine(storage, jan2026)
	registry.Add(testProperty())

	if ran, _ := engine.RolloverCheck(); !ran {
		t.Fatal("first check should migrate")
	}
	if ran, _ := engine.RolloverCheck(); ran {
		t.Error("second check in the same year must be a no-op")
	}
	if got := len(engine.Entries()); got != 1 {
		t.Errorf("got %d entries after double check, want exactly 1", got)
	}
}

func TestMigrationEngine_MidYearRecovery(t *testing.T) {
	// not Jan 1st, but no migration has ever run: first use after a
	// skipped year still triggers.
	storage := NewMemoryStorage()
	engine, registry := newEngine(storage, mid2025)
	registry.Add(testProperty())

	ran, err := engine.RolloverCheck()
	if err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("mid-year first run should migrate")
	}
	if got := engine.Entries(); len(got) != 1 || got[0].Year != 2024 {
		t.Errorf("expected one 2024 entry, got %v", got)
	}
}

func TestMigrationEngine_MidYearStampedIsNoop(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Set(keyLastMigration, []byte("2025"))
	engine, registry := newEngine(storage, mid2025)
	registry.Add(testProperty())

	if ran, _ := engine.RolloverCheck(); ran {
		t.Error("stamped current year must not migrate again")
	}
}

func TestMigrationEngine_StaleStampWaitsForJanuary(t *testing.T) {
	// stamped 2024, now mid 2025 but not Jan 1st: once a migration has
	// run, the next one waits for Jan 1st.
	storage := NewMemoryStorage()
	storage.Set(keyLastMigration, []byte("2024"))
	engine, registry := newEngine(storage, mid2025)
	registry.Add(testProperty())

	if ran, _ := engine.RolloverCheck(); ran {
		t.Error("a stale stamp outside Jan 1st must not migrate")
	}
}

func TestMigrationEngine_SnapshotIsDeepCopy(t *testing.T) {
	storage := NewMemoryStorage()
	engine, registry := newEngine(storage, jan2026)
	p := testProperty()
	registry.Add(p)
	engine.RolloverCheck()

	// mutating the live property afterwards must not affect the snapshot.
	p.Tenants[0].Name = "changed"
	registry.Update(p)

	e := engine.Entries()[0]
	if e.Data.Tenants[0].Name != "Ana" {
		t.Error("snapshot shares memory with the live property")
	}
}

func TestMigrationEngine_SealsOutgoingCosts(t *testing.T) {
	storage := NewMemoryStorage()
	clock := jan2026
	engine, registry := newEngine(storage, clock)
	registry.Add(testProperty())
	engine.RolloverCheck()

	temporal := NewTemporalStore(storage, clock)
	rec, found := temporal.GetForMonth(RecordTypeCosts, "1", 2025, NoMonth)
	if !found {
		t.Fatal("rollover should seal a costs record for the outgoing year")
	}
	var costs YearCosts
	if err := rec.Decode(&costs); err != nil {
		t.Fatal(err)
	}
	if !costs.Mortgage.Equal(EUR(420)) || !costs.Insurance.Equal(EUR(210)) {
		t.Errorf("sealed costs = %+v", costs)
	}
}

func TestMigrationEngine_FailureLeavesStateIntact(t *testing.T) {
	storage := NewMemoryStorage()
	engine, registry := newEngine(storage, jan2026)
	registry.Add(testProperty())

	// squeeze the quota so the entry-list write fails.
	used := 0
	for _, k := range mustKeys(t, storage, "") {
		raw, _, _ := storage.Get(k)
		used += len(raw)
	}
	storage.Quota = used + 10

	if _, err := engine.RolloverCheck(); err == nil {
		t.Fatal("rollover should surface the storage failure")
	}
	if got := len(engine.Entries()); got != 0 {
		t.Errorf("failed migration must not leave partial entries, got %d", got)
	}
	if engine.LastMigration() != 0 {
		t.Error("failed migration must not stamp the year")
	}
}

func mustKeys(t *testing.T, s Storage, prefix string) []string {
	t.Helper()
	keys, err := s.Keys(prefix)
	if err != nil {
		t.Fatal(err)
	}
	return keys
}

func TestMigrationEngine_RolloverOncePerProperty(t *testing.T) {
	storage := NewMemoryStorage()
	engine, registry := newEngine(storage, jan2026)
	p1 := testProperty()
	p2 := testProperty()
	p2.ID, p2.Name = "2", "Plaza Sol 3"
	registry.Add(p1)
	registry.Add(p2)

	engine.RolloverCheck()

	for _, id := range []string{"1", "2"} {
		if got := len(engine.EntriesForProperty(id)); got != 1 {
			t.Errorf("property %s: got %d entries for 2025, want 1", id, got)
		}
	}
	if _, found := engine.EntryForYear("2", 2025); !found {
		t.Error("missing 2025 entry for property 2")
	}
}
