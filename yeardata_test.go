package homehive

import (
	"reflect"
	"testing"
	"time"
)

func TestYearStore_MigrateLegacyProperty(t *testing.T) {
	ys := NewYearStore(NewMemoryStorage(), mid2025)
	p := testProperty() // rent 850, rentPaid true, no payment history

	if ok := ys.MigrateLegacyProperty(p, 2025); !ok {
		t.Fatal("first migration should succeed")
	}

	part, ok := ys.YearData("1", 2025)
	if !ok {
		t.Fatal("partition for 2025 should exist")
	}
	if !part.Rent.Equal(EUR(850)) {
		t.Errorf("rent = %s, want %s", part.Rent, EUR(850))
	}
	if !part.RentPaid {
		t.Error("rentPaid should be seeded from the property")
	}
	if part.Payments == nil || len(part.Payments) != 0 {
		t.Errorf("payments should be an empty list, got %v", part.Payments)
	}
	if part.Expenses == nil || len(part.Expenses) != 0 {
		t.Errorf("expenses should be an empty list, got %v", part.Expenses)
	}

	// migration never runs twice for the same year.
	if ok := ys.MigrateLegacyProperty(p, 2025); ok {
		t.Error("second migration for the same year should be a no-op")
	}
}

func TestYearStore_SaveStampsImmutability(t *testing.T) {
	ys := NewYearStore(NewMemoryStorage(), mid2025)

	// current year: payments stay mutable.
	live := YearPartition{Rent: EUR(850), Payments: []Payment{paidMonth(2025, time.January, EUR(850))}}
	if ok := ys.SaveYearData("1", 2025, live); !ok {
		t.Fatal("save should succeed")
	}
	part, _ := ys.YearData("1", 2025)
	if part.Payments[0].Immutable {
		t.Error("a current-year payment must not be stamped immutable")
	}

	// past year: every payment is sealed.
	past := YearPartition{Rent: EUR(800), Payments: []Payment{paidMonth(2023, time.March, EUR(800))}}
	if ok := ys.SaveYearData("1", 2023, past); !ok {
		t.Fatal("save should succeed")
	}
	part, _ = ys.YearData("1", 2023)
	if !part.Payments[0].Immutable {
		t.Error("a past-year payment must be stamped immutable")
	}
}

func TestYearStore_AvailableYears(t *testing.T) {
	ys := NewYearStore(NewMemoryStorage(), mid2025)
	for _, y := range []int{2023, 2025, 2021} {
		ys.SaveYearData("1", y, YearPartition{})
	}
	got := ys.AvailableYears("1")
	want := []int{2025, 2023, 2021}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableYears = %v, want %v", got, want)
	}
}

func TestYearStore_ClearYearData(t *testing.T) {
	ys := NewYearStore(NewMemoryStorage(), mid2025)
	ys.SaveYearData("1", 2023, YearPartition{Rent: EUR(800)})
	ys.SaveYearData("1", 2025, YearPartition{Rent: EUR(850)})

	// a sealed year is refused without force.
	if ok := ys.ClearYearData("1", 2023, false); ok {
		t.Error("clearing a sealed year without force should be refused")
	}
	if _, ok := ys.YearData("1", 2023); !ok {
		t.Fatal("refused clear must leave the partition intact")
	}

	// force clears exactly that year.
	if ok := ys.ClearYearData("1", 2023, true); !ok {
		t.Fatal("forced clear should succeed")
	}
	if _, ok := ys.YearData("1", 2023); ok {
		t.Error("partition 2023 should be gone")
	}
	if _, ok := ys.YearData("1", 2025); !ok {
		t.Error("partition 2025 should be untouched")
	}

	// the live year needs no force.
	if ok := ys.ClearYearData("1", 2025, false); !ok {
		t.Error("clearing the live year should be allowed")
	}
}

func TestYearStore_IsYearEditable(t *testing.T) {
	ys := NewYearStore(NewMemoryStorage(), mid2025)
	if !ys.IsYearEditable(2025) {
		t.Error("the current year should be editable")
	}
	if ys.IsYearEditable(2024) {
		t.Error("a past year should not be editable through the live path")
	}
}

// Scenario: legacy migration then a first live payment (week one of the app).
func TestYearStore_LegacyThenFirstPayment(t *testing.T) {
	ys := NewYearStore(NewMemoryStorage(), mid2025)
	p := testProperty()
	if ok := ys.MigrateLegacyProperty(p, 2025); !ok {
		t.Fatal("migration should succeed")
	}

	part, _ := ys.YearData("1", 2025)
	part.Payments = append(part.Payments, paidMonth(2025, time.January, EUR(850)))
	if ok := ys.SaveYearData("1", 2025, part); !ok {
		t.Fatal("save should succeed")
	}

	part, _ = ys.YearData("1", 2025)
	if len(part.Payments) != 1 {
		t.Fatalf("got %d payments, want 1", len(part.Payments))
	}
	got := part.Payments[0]
	if got.Immutable {
		t.Error("a payment of the current year is stored mutable")
	}
	if got.Month.String() != "2025-01" {
		t.Errorf("month = %s, want 2025-01", got.Month)
	}
	if !got.Amount.Equal(EUR(850)) {
		t.Errorf("amount = %s, want %s", got.Amount, EUR(850))
	}
}
