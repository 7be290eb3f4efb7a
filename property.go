package homehive

import "time"

// Property is the base reference entity of the application: one rental unit
// with its contact, mortgage and insurance terms, plus the live (current
// year) tenants, payments, expenses, inventory and tasks.
//
// Reference fields are mutable only through the registry. Time-varying data
// of past years never lives here: it is sealed into year partitions and the
// historical namespaces.
type Property struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Image   string `json:"image,omitempty"`

	ContactPhone     string `json:"contactPhone,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
	CommunityManager string `json:"communityManager,omitempty"`

	Rent      Money     `json:"rent"`
	RentPaid  bool      `json:"rentPaid"`
	Mortgage  Mortgage  `json:"mortgage"`
	Insurance Insurance `json:"insurance"`

	Tenants         []Tenant        `json:"tenants,omitempty"`
	PaymentHistory  []Payment       `json:"paymentHistory,omitempty"`
	MonthlyExpenses []Expense       `json:"monthlyExpenses,omitempty"`
	Inventory       []InventoryItem `json:"inventory,omitempty"`
	Tasks           []Task          `json:"tasks,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// Mortgage holds the financing terms of a property.
type Mortgage struct {
	Lender      string `json:"lender,omitempty"`
	MonthlyCost Money  `json:"monthlyCost"`
}

// Insurance holds the home-insurance terms of a property.
type Insurance struct {
	Company    string `json:"company,omitempty"`
	AnnualCost Money  `json:"annualCost"`
}

// Tenant is an occupant of a property during a span of months.
type Tenant struct {
	Name       string    `json:"name"`
	StartMonth MonthKey  `json:"startMonth"`
	EndMonth   *MonthKey `json:"endMonth,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
}

// Payment records one month of rent.
//
// Once the payment's year is in the past, Immutable is true and the record
// must never be overwritten in place, only superseded by a new record.
type Payment struct {
	ID        string    `json:"id"`
	Month     MonthKey  `json:"month"`
	Amount    Money     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	Immutable bool      `json:"immutable,omitempty"`
	IsPaid    bool      `json:"isPaid"`
	Notes     string    `json:"notes,omitempty"`
}

// Expense is a cost charged to a property.
type Expense struct {
	ID         string `json:"id"`
	Concept    string `json:"concept"`
	Amount     Money  `json:"amount"`
	Deductible bool   `json:"deductible"`
	Category   string `json:"category,omitempty"`
	Date       Date   `json:"date"`
}

// InventoryItem is a furnishing or appliance belonging to a property.
type InventoryItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Condition    string `json:"condition,omitempty"`
	IsDeductible bool   `json:"isDeductible"`
	Price        Money  `json:"price,omitzero"`
}

// Task is a maintenance or administrative to-do attached to a property.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   Date   `json:"dueDate,omitzero"`
	Notes     string `json:"notes,omitempty"`
}

// YearPartition is the per-property, per-calendar-year bundle of time-varying
// data. The partition of the current year is the live record; partitions of
// past years are sealed: every payment carries Immutable=true.
type YearPartition struct {
	Tenants  []Tenant  `json:"tenants,omitempty"`
	Payments []Payment `json:"payments,omitempty"`
	Expenses []Expense `json:"expenses,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Rent     Money     `json:"rent,omitzero"`
	RentPaid bool      `json:"rentPaid"`
}

// Cloning is explicit and structural, never a serialize/deserialize round
// trip: copy costs stay visible and nothing is silently dropped.

// Clone returns a deep copy of the property.
func (p Property) Clone() Property {
	c := p
	c.Tenants = cloneTenants(p.Tenants)
	c.PaymentHistory = clonePayments(p.PaymentHistory)
	c.MonthlyExpenses = cloneExpenses(p.MonthlyExpenses)
	c.Inventory = cloneInventory(p.Inventory)
	c.Tasks = cloneTasks(p.Tasks)
	return c
}

// Clone returns a deep copy of the tenant.
func (t Tenant) Clone() Tenant {
	c := t
	if t.EndMonth != nil {
		end := *t.EndMonth
		c.EndMonth = &end
	}
	return c
}

// Clone returns a deep copy of the partition.
func (p YearPartition) Clone() YearPartition {
	c := p
	c.Tenants = cloneTenants(p.Tenants)
	c.Payments = clonePayments(p.Payments)
	c.Expenses = cloneExpenses(p.Expenses)
	return c
}

func cloneTenants(ts []Tenant) []Tenant {
	if ts == nil {
		return nil
	}
	c := make([]Tenant, len(ts))
	for i, t := range ts {
		c[i] = t.Clone()
	}
	return c
}

func clonePayments(ps []Payment) []Payment {
	if ps == nil {
		return nil
	}
	c := make([]Payment, len(ps))
	copy(c, ps)
	return c
}

func cloneExpenses(es []Expense) []Expense {
	if es == nil {
		return nil
	}
	c := make([]Expense, len(es))
	copy(c, es)
	return c
}

func cloneInventory(is []InventoryItem) []InventoryItem {
	if is == nil {
		return nil
	}
	c := make([]InventoryItem, len(is))
	copy(c, is)
	return c
}

func cloneTasks(ts []Task) []Task {
	if ts == nil {
		return nil
	}
	c := make([]Task, len(ts))
	copy(c, ts)
	return c
}
