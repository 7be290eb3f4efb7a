package homehive

import "time"

// fixtures shared by the package tests: a frozen clock mid-2025 and a sample
// property with one tenant and a live rent of 850 EUR.

var (
	mid2025 = FixedClock(NewDate(2025, time.June, 15))
	jan2026 = FixedClock(NewDate(2026, time.January, 1))
)

func testProperty() Property {
	end := NewMonthKey(2025, time.December)
	return Property{
		ID:      "1",
		Name:    "Calle Mayor 5",
		Address: "Calle Mayor 5, Madrid",
		Rent:    EUR(850),
		RentPaid: true,
		Mortgage: Mortgage{
			Lender:      "BancoSol",
			MonthlyCost: EUR(420),
		},
		Insurance: Insurance{
			Company:    "Segura",
			AnnualCost: EUR(210),
		},
		Tenants: []Tenant{{
			Name:       "Ana",
			StartMonth: NewMonthKey(2024, time.March),
			EndMonth:   &end,
			Email:      "ana@example.com",
		}},
		Inventory: []InventoryItem{{
			ID:        "inv-1",
			Name:      "Fridge",
			Type:      "appliance",
			Condition: "good",
		}},
		Tasks: []Task{{
			ID:    "task-1",
			Title: "Fix boiler",
		}},
	}
}

// paidMonth builds a paid rent payment for the given month of a year.
func paidMonth(year int, month time.Month, amount Money) Payment {
	return Payment{
		ID:        recordID(year, month) + "-pay",
		Month:     NewMonthKey(year, month),
		Amount:    amount,
		CreatedAt: time.Date(year, month, 1, 12, 0, 0, 0, time.UTC),
		IsPaid:    true,
	}
}
