package homehive

import (
	"testing"
	"time"
)

func TestTemporalStore_FirstWriteFreezes(t *testing.T) {
	ts := NewTemporalStore(NewMemoryStorage(), mid2025)

	if ok := ts.Save(RecordTypeCosts, "1", 2023, NoMonth, YearCosts{Mortgage: EUR(400)}); !ok {
		t.Fatal("first save should succeed")
	}
	if ok := ts.Save(RecordTypeCosts, "1", 2023, NoMonth, YearCosts{Mortgage: EUR(999)}); ok {
		t.Error("second save under the same id should be rejected")
	}

	rec, found := ts.GetForMonth(RecordTypeCosts, "1", 2023, NoMonth)
	if !found {
		t.Fatal("record should exist")
	}
	if !rec.Immutable {
		t.Error("stored record should be immutable")
	}
	var costs YearCosts
	if err := rec.Decode(&costs); err != nil {
		t.Fatal(err)
	}
	if !costs.Mortgage.Equal(EUR(400)) {
		t.Errorf("data changed after rejected write: got %s, want %s", costs.Mortgage, EUR(400))
	}
}

func TestTemporalStore_MonthScopedIDs(t *testing.T) {
	ts := NewTemporalStore(NewMemoryStorage(), mid2025)

	if ok := ts.Save("meter", "1", 2025, time.January, 123); !ok {
		t.Fatal("month-scoped save should succeed")
	}
	if ok := ts.Save("meter", "1", 2025, time.February, 456); !ok {
		t.Fatal("a different month is a different id, save should succeed")
	}
	if ok := ts.Save("meter", "1", 2025, time.January, 999); ok {
		t.Error("overwriting a frozen month record should be rejected")
	}

	rec, found := ts.GetForMonth("meter", "1", 2025, time.January)
	if !found || rec.ID != "2025-01" {
		t.Errorf("got id %q, want %q", rec.ID, "2025-01")
	}
	if got := len(ts.GetForYear("meter", "1", 2025)); got != 2 {
		t.Errorf("got %d records for 2025, want 2", got)
	}
}

func TestTemporalStore_IsMutable(t *testing.T) {
	ts := NewTemporalStore(NewMemoryStorage(), mid2025) // frozen on 2025-06-15

	tests := []struct {
		name  string
		year  int
		month time.Month
		want  bool
	}{
		{"current year", 2025, NoMonth, true},
		{"past year", 2024, NoMonth, false},
		{"future year", 2026, NoMonth, false},
		{"current month", 2025, time.June, true},
		{"future month of current year", 2025, time.December, true},
		{"past month of current year", 2025, time.January, false},
		{"any month of a past year", 2024, time.December, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ts.IsMutable(tt.year, tt.month); got != tt.want {
				t.Errorf("IsMutable(%d, %d) = %v, want %v", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestTemporalStore_Clear(t *testing.T) {
	storage := NewMemoryStorage()
	ts := NewTemporalStore(storage, mid2025)
	ts.Save(RecordTypeCosts, "1", 2023, NoMonth, YearCosts{})
	ts.Save("meter", "1", 2024, NoMonth, 42)
	ts.Save(RecordTypeCosts, "11", 2023, NoMonth, YearCosts{})

	if err := ts.Clear("1"); err != nil {
		t.Fatal(err)
	}
	if got := ts.GetAll(RecordTypeCosts, "1"); len(got) != 0 {
		t.Errorf("property 1 should have no temporal records, got %d", len(got))
	}
	if got := ts.GetAll("meter", "1"); len(got) != 0 {
		t.Errorf("property 1 should have no meter records, got %d", len(got))
	}
	// a property whose id merely ends with the same digit is untouched.
	if got := ts.GetAll(RecordTypeCosts, "11"); len(got) != 1 {
		t.Errorf("property 11 should keep its record, got %d", len(got))
	}
}

func TestTemporalStore_SaveFailureReportsFalse(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Quota = 1 // any write is over quota
	ts := NewTemporalStore(storage, mid2025)

	if ok := ts.Save(RecordTypeCosts, "1", 2023, NoMonth, YearCosts{}); ok {
		t.Error("save over quota should report false, not panic")
	}
}
