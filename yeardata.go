package homehive

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
)

// PropertyYearData is the persisted layout of the "property_data_<id>" key:
// a light header of reference fields plus the map of year partitions.
type PropertyYearData struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Address string                `json:"address"`
	Years   map[int]YearPartition `json:"years"`
}

// YearStore manages the per-property year partitions.
//
// SaveYearData is an unconditional overwrite: it stamps payment immutability
// but does not reject writes to past years. That trust boundary is advisory;
// callers owning a UI path must consult IsYearEditable first, and past-year
// edits belong to the historical-isolation editors.
type YearStore struct {
	storage Storage
	clock   Clock
}

// NewYearStore returns a store over the given storage and clock.
func NewYearStore(storage Storage, clock Clock) *YearStore {
	return &YearStore{storage: storage, clock: clock}
}

// load returns the persisted data for a property, or an empty shell.
func (ys *YearStore) load(propertyID string) PropertyYearData {
	data := PropertyYearData{ID: propertyID, Years: make(map[int]YearPartition)}
	if _, err := loadJSON(ys.storage, yearDataKey(propertyID), &data); err != nil {
		log.Printf("warning: %v", err)
	}
	if data.Years == nil {
		data.Years = make(map[int]YearPartition)
	}
	return data
}

// YearData returns the partition of a property for a year, and whether it exists.
func (ys *YearStore) YearData(propertyID string, year int) (YearPartition, bool) {
	data := ys.load(propertyID)
	part, ok := data.Years[year]
	return part, ok
}

// SaveYearData persists the whole partition for (propertyID, year). Before
// writing, every payment is stamped Immutable when the year is already past.
// It returns false when the write fails.
func (ys *YearStore) SaveYearData(propertyID string, year int, part YearPartition) bool {
	sealed := year < ys.clock.Today().Year()
	part = part.Clone()
	for i := range part.Payments {
		part.Payments[i].Immutable = sealed
	}

	data := ys.load(propertyID)
	data.Years[year] = part
	if err := saveJSON(ys.storage, yearDataKey(propertyID), data); err != nil {
		log.Printf("warning: %v", err)
		return false
	}
	return true
}

// IsYearEditable reports whether a year may be edited through the live path.
func (ys *YearStore) IsYearEditable(year int) bool {
	return year == ys.clock.Today().Year()
}

// MigrateLegacyProperty converts a pre-partition property record (flat
// tenants/paymentHistory/monthlyExpenses fields) into the partition for the
// given year. It is a one-time conversion: it does nothing when the partition
// already exists, and it never backfills prior years because a legacy flat
// record holds no historical data to backfill from.
func (ys *YearStore) MigrateLegacyProperty(p Property, year int) bool {
	data := ys.load(p.ID)
	if _, ok := data.Years[year]; ok {
		return false
	}

	part := YearPartition{
		Tenants:  cloneTenants(p.Tenants),
		Payments: clonePayments(p.PaymentHistory),
		Expenses: cloneExpenses(p.MonthlyExpenses),
		Notes:    p.Notes,
		Rent:     p.Rent,
		RentPaid: p.RentPaid,
	}
	if part.Payments == nil {
		part.Payments = []Payment{}
	}
	if part.Expenses == nil {
		part.Expenses = []Expense{}
	}
	for i := range part.Payments {
		if part.Payments[i].ID == "" {
			part.Payments[i].ID = uuid.NewString()
		}
	}

	data.ID = p.ID
	data.Name = p.Name
	data.Address = p.Address
	data.Years[year] = part
	if err := saveJSON(ys.storage, yearDataKey(p.ID), data); err != nil {
		log.Printf("warning: %v", err)
		return false
	}
	return true
}

// AvailableYears lists the years a property has partitions for, most recent first.
func (ys *YearStore) AvailableYears(propertyID string) []int {
	data := ys.load(propertyID)
	years := make([]int, 0, len(data.Years))
	for y := range data.Years {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// ClearYearData deletes exactly one year's partition, leaving others
// untouched. A sealed (past) year is refused unless force is set.
func (ys *YearStore) ClearYearData(propertyID string, year int, force bool) bool {
	if year < ys.clock.Today().Year() && !force {
		log.Printf("warning: year %d of property %s is sealed, refusing to clear it", year, propertyID)
		return false
	}
	data := ys.load(propertyID)
	if _, ok := data.Years[year]; !ok {
		return true
	}
	delete(data.Years, year)
	if err := saveJSON(ys.storage, yearDataKey(propertyID), data); err != nil {
		log.Printf("warning: %v", err)
		return false
	}
	return true
}

// Clear removes the whole year-partition record of a property. Like
// TemporalStore.Clear it is meant for property deletion and does not touch
// the historical snapshot namespaces.
func (ys *YearStore) Clear(propertyID string) error {
	if err := ys.storage.Delete(yearDataKey(propertyID)); err != nil {
		return fmt.Errorf("cannot delete year data of %s: %w", propertyID, err)
	}
	return nil
}

// NewPayment builds a rent payment for a month with a fresh id.
func NewPayment(month MonthKey, amount Money, paid bool) Payment {
	return Payment{
		ID:        uuid.NewString(),
		Month:     month,
		Amount:    amount,
		CreatedAt: time.Now(),
		IsPaid:    paid,
	}
}

// NewExpense builds an expense with a fresh id.
func NewExpense(on Date, concept string, amount Money, deductible bool, category string) Expense {
	return Expense{
		ID:         uuid.NewString(),
		Concept:    concept,
		Amount:     amount,
		Deductible: deductible,
		Category:   category,
		Date:       on,
	}
}
