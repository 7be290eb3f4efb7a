package homehive

import (
	"testing"
	"time"
)

func TestFiscalSummary(t *testing.T) {
	view := testProperty()
	var payments []Payment
	for m := time.January; m <= time.December; m++ {
		payments = append(payments, paidMonth(2023, m, EUR(850)))
	}
	view.PaymentHistory = payments
	view.MonthlyExpenses = []Expense{
		NewExpense(NewDate(2023, time.March, 10), "boiler repair", EUR(300), true, "maintenance"),
		NewExpense(NewDate(2023, time.July, 2), "new curtains", EUR(120), false, ""),
	}

	s := NewFiscalSummary(view, 2023)

	if !s.Income.Equal(EUR(10200)) {
		t.Errorf("income = %s, want %s", s.Income, EUR(10200))
	}
	if !s.Deductible.Equal(EUR(300)) {
		t.Errorf("deductible = %s, want %s", s.Deductible, EUR(300))
	}
	if !s.NonDeductible.Equal(EUR(120)) {
		t.Errorf("non deductible = %s, want %s", s.NonDeductible, EUR(120))
	}
	if !s.Net.Equal(EUR(9900)) {
		t.Errorf("net = %s, want %s", s.Net, EUR(9900))
	}
	if s.PaidMonths != 12 {
		t.Errorf("paid months = %d, want 12", s.PaidMonths)
	}
	if len(s.ByCategory) != 1 || s.ByCategory[0].Category != "maintenance" {
		t.Errorf("categories = %v", s.ByCategory)
	}
}

func TestFiscalSummary_IgnoresOtherYearsAndUnpaid(t *testing.T) {
	view := testProperty()
	unpaid := paidMonth(2023, time.May, EUR(850))
	unpaid.IsPaid = false
	view.PaymentHistory = []Payment{
		paidMonth(2023, time.April, EUR(850)),
		unpaid,
		paidMonth(2022, time.April, EUR(850)), // other year
	}

	s := NewFiscalSummary(view, 2023)
	if !s.Income.Equal(EUR(850)) {
		t.Errorf("income = %s, want one month", s.Income)
	}
	if s.PaidMonths != 1 {
		t.Errorf("paid months = %d, want 1", s.PaidMonths)
	}
}

func TestOccupiedMonths(t *testing.T) {
	end := NewMonthKey(2023, time.June)
	tests := []struct {
		name    string
		tenants []Tenant
		want    int
	}{
		{"no tenants", nil, 0},
		{"full year", []Tenant{{Name: "Ana", StartMonth: NewMonthKey(2022, time.March)}}, 12},
		{"leaves in june", []Tenant{{Name: "Ana", StartMonth: NewMonthKey(2022, time.March), EndMonth: &end}}, 6},
		{"arrives in june", []Tenant{{Name: "Ana", StartMonth: NewMonthKey(2023, time.June)}}, 7},
		{"overlapping tenants count once", []Tenant{
			{Name: "Ana", StartMonth: NewMonthKey(2023, time.January)},
			{Name: "Bea", StartMonth: NewMonthKey(2023, time.March)},
		}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occupiedMonths(tt.tenants, 2023); got != tt.want {
				t.Errorf("occupiedMonths = %d, want %d", got, tt.want)
			}
		})
	}
}
