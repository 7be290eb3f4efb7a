package homehive

import (
	"sort"
	"time"
)

// FiscalSummary aggregates one property's year for tax filing: rental
// income, deductible expenses by category and the net result. It is computed
// over a projected view, so it works identically for the live year and for
// sealed ones.
type FiscalSummary struct {
	PropertyID   string
	PropertyName string
	Year         int

	Income        Money // sum of paid rent
	Deductible    Money // sum of deductible expenses
	NonDeductible Money // sum of the rest
	Net           Money // Income - Deductible

	PaidMonths     int
	OccupiedMonths int

	ByCategory []CategoryTotal
}

// CategoryTotal is the deductible total of one expense category.
type CategoryTotal struct {
	Category string
	Total    Money
}

// NewFiscalSummary computes the summary of a projected property view for a year.
func NewFiscalSummary(view Property, year int) FiscalSummary {
	s := FiscalSummary{
		PropertyID:    view.ID,
		PropertyName:  view.Name,
		Year:          year,
		Income:        EUR(0),
		Deductible:    EUR(0),
		NonDeductible: EUR(0),
	}

	for _, p := range view.PaymentHistory {
		if p.Month.Year() != year || !p.IsPaid {
			continue
		}
		s.Income = s.Income.Add(p.Amount)
		s.PaidMonths++
	}

	byCategory := make(map[string]Money)
	for _, e := range view.MonthlyExpenses {
		if e.Deductible {
			s.Deductible = s.Deductible.Add(e.Amount)
			category := e.Category
			if category == "" {
				category = "other"
			}
			byCategory[category] = byCategory[category].Add(e.Amount)
		} else {
			s.NonDeductible = s.NonDeductible.Add(e.Amount)
		}
	}
	for category, total := range byCategory {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool { return s.ByCategory[i].Category < s.ByCategory[j].Category })

	s.Net = s.Income.Sub(s.Deductible)
	s.OccupiedMonths = occupiedMonths(view.Tenants, year)
	return s
}

// occupiedMonths counts the months of the year covered by at least one tenant.
func occupiedMonths(tenants []Tenant, year int) int {
	count := 0
	for m := time.January; m <= time.December; m++ {
		key := NewMonthKey(year, m)
		for _, t := range tenants {
			if t.StartMonth.After(key) {
				continue
			}
			if t.EndMonth != nil && t.EndMonth.Before(key) {
				continue
			}
			count++
			break
		}
	}
	return count
}
