package homehive

import "log"

// Projector builds read-only, Property-shaped views of a past year.
type Projector struct {
	Storage  Storage
	Years    *YearStore
	Temporal *TemporalStore
}

// Project combines the base property's reference fields with the requested
// year's time-varying data: rent, payments, tenants, expenses and notes come
// from the year partition; inventory and tasks from the historical
// namespaces; mortgage and insurance costs from the sealed cost record.
//
// When no data exists for the year, numeric fields keep the base property's
// live values (a documented fallback, not an error); list fields become the
// year's own, possibly empty, lists.
//
// The result exists only for display and for editing through the isolation
// editors. It must never be written back through the live-property path.
func (pr Projector) Project(base Property, year int) Property {
	view := base.Clone()

	if part, ok := pr.Years.YearData(base.ID, year); ok {
		view.Tenants = cloneTenants(part.Tenants)
		view.PaymentHistory = clonePayments(part.Payments)
		view.MonthlyExpenses = cloneExpenses(part.Expenses)
		view.Notes = part.Notes
		if !part.Rent.IsZero() {
			view.Rent = part.Rent
		}
		view.RentPaid = part.RentPaid
	} else {
		view.Tenants = nil
		view.PaymentHistory = nil
		view.MonthlyExpenses = nil
	}

	if rec, ok := pr.Temporal.GetForMonth(RecordTypeCosts, base.ID, year, NoMonth); ok {
		var costs YearCosts
		if err := rec.Decode(&costs); err != nil {
			log.Printf("warning: %v", err)
		} else {
			view.Mortgage.MonthlyCost = costs.Mortgage
			view.Insurance.AnnualCost = costs.Insurance
		}
	}

	view.Inventory = nil
	for _, item := range NewInventoryEditor(pr.Storage, base.ID, year).Items() {
		view.Inventory = append(view.Inventory, item.InventoryItem)
	}
	view.Tasks = nil
	for _, task := range NewTaskEditor(pr.Storage, nil, base.ID, year).Tasks() {
		view.Tasks = append(view.Tasks, task.Task)
	}

	return view
}
