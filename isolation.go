package homehive

import (
	"log"

	"github.com/google/uuid"
)

// HistoricalInventoryItem is an inventory item recorded for a past year,
// stored in its own namespace, fully independent of the live property's
// inventory array.
type HistoricalInventoryItem struct {
	InventoryItem
	Year int `json:"year"`
}

// HistoricalTask is a task recorded for a past year, stored in its own
// namespace, fully independent of the live property's tasks array.
type HistoricalTask struct {
	Task
	Year int `json:"year"`
}

// The editors below are the only sanctioned writers for past years. Each one
// is scoped to a single (propertyID, year) pair at construction; an operation
// carrying a different year is logged and ignored rather than applied to the
// wrong year. None of them ever reads or writes the live property record.

// InventoryEditor edits the historical inventory of one property and year.
type InventoryEditor struct {
	storage    Storage
	propertyID string
	year       int
}

// NewInventoryEditor returns an editor scoped to (propertyID, year).
func NewInventoryEditor(storage Storage, propertyID string, year int) *InventoryEditor {
	return &InventoryEditor{storage: storage, propertyID: propertyID, year: year}
}

// Items returns the historical inventory of the scoped year.
func (e *InventoryEditor) Items() []HistoricalInventoryItem {
	var items []HistoricalInventoryItem
	if _, err := loadJSON(e.storage, historicalInventoryKey(e.propertyID, e.year), &items); err != nil {
		log.Printf("warning: %v", err)
		return nil
	}
	return items
}

func (e *InventoryEditor) save(items []HistoricalInventoryItem) bool {
	if err := saveJSON(e.storage, historicalInventoryKey(e.propertyID, e.year), items); err != nil {
		log.Printf("warning: %v", err)
		return false
	}
	return true
}

// Add records a new item. A missing id is generated; items default to
// deductible. It returns the stored item and whether the write succeeded.
func (e *InventoryEditor) Add(item InventoryItem) (HistoricalInventoryItem, bool) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.IsDeductible = true
	h := HistoricalInventoryItem{InventoryItem: item, Year: e.year}
	items := append(e.Items(), h)
	if !e.save(items) {
		return HistoricalInventoryItem{}, false
	}
	return h, true
}

// Update replaces the stored item with the same id.
func (e *InventoryEditor) Update(item HistoricalInventoryItem) bool {
	if item.Year != e.year {
		log.Printf("warning: inventory update for year %d ignored by editor scoped to %d", item.Year, e.year)
		return false
	}
	items := e.Items()
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return e.save(items)
		}
	}
	log.Printf("warning: historical inventory item %s not found for %s/%d", item.ID, e.propertyID, e.year)
	return false
}

// Delete removes the item with the given id.
func (e *InventoryEditor) Delete(id string) bool {
	items := e.Items()
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return true
	}
	return e.save(kept)
}

// TaskEditor edits the historical tasks of one property and year.
// Completion toggles feed the notification log.
type TaskEditor struct {
	storage       Storage
	notifications *NotificationLog
	propertyID    string
	year          int
}

// NewTaskEditor returns an editor scoped to (propertyID, year).
func NewTaskEditor(storage Storage, notifications *NotificationLog, propertyID string, year int) *TaskEditor {
	return &TaskEditor{storage: storage, notifications: notifications, propertyID: propertyID, year: year}
}

// Tasks returns the historical tasks of the scoped year.
func (e *TaskEditor) Tasks() []HistoricalTask {
	var tasks []HistoricalTask
	if _, err := loadJSON(e.storage, historicalTasksKey(e.propertyID, e.year), &tasks); err != nil {
		log.Printf("warning: %v", err)
		return nil
	}
	return tasks
}

func (e *TaskEditor) save(tasks []HistoricalTask) bool {
	if err := saveJSON(e.storage, historicalTasksKey(e.propertyID, e.year), tasks); err != nil {
		log.Printf("warning: %v", err)
		return false
	}
	return true
}

// Add records a new task. A missing id is generated.
func (e *TaskEditor) Add(task Task) (HistoricalTask, bool) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	h := HistoricalTask{Task: task, Year: e.year}
	tasks := append(e.Tasks(), h)
	if !e.save(tasks) {
		return HistoricalTask{}, false
	}
	return h, true
}

// Update replaces the stored task with the same id. A change of completion
// state emits or clears the matching notification.
func (e *TaskEditor) Update(task HistoricalTask) bool {
	if task.Year != e.year {
		log.Printf("warning: task update for year %d ignored by editor scoped to %d", task.Year, e.year)
		return false
	}
	tasks := e.Tasks()
	for i := range tasks {
		if tasks[i].ID == task.ID {
			wasCompleted := tasks[i].Completed
			tasks[i] = task
			if !e.save(tasks) {
				return false
			}
			e.notifyCompletion(task, wasCompleted)
			return true
		}
	}
	log.Printf("warning: historical task %s not found for %s/%d", task.ID, e.propertyID, e.year)
	return false
}

// Toggle flips the completion state of the task with the given id.
func (e *TaskEditor) Toggle(id string, completed bool) bool {
	for _, t := range e.Tasks() {
		if t.ID == id {
			t.Completed = completed
			return e.Update(t)
		}
	}
	log.Printf("warning: historical task %s not found for %s/%d", id, e.propertyID, e.year)
	return false
}

// Delete removes the task with the given id and clears its notifications.
func (e *TaskEditor) Delete(id string) bool {
	tasks := e.Tasks()
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return true
	}
	if !e.save(kept) {
		return false
	}
	if e.notifications != nil {
		e.notifications.ClearTask(id)
	}
	return true
}

func (e *TaskEditor) notifyCompletion(task HistoricalTask, wasCompleted bool) {
	if e.notifications == nil || task.Completed == wasCompleted {
		return
	}
	if task.Completed {
		e.notifications.Add(NewTaskNotification(e.propertyID, e.year, task.ID, "completed: "+task.Title))
	} else {
		e.notifications.ClearTask(task.ID)
	}
}

// PaymentEditor edits the payments of one property and year, inside that
// year's partition. The partition is a namespace of its own: the live
// property's paymentHistory array is never touched.
type PaymentEditor struct {
	years      *YearStore
	propertyID string
	year       int
}

// NewPaymentEditor returns an editor scoped to (propertyID, year).
func NewPaymentEditor(years *YearStore, propertyID string, year int) *PaymentEditor {
	return &PaymentEditor{years: years, propertyID: propertyID, year: year}
}

// Payments returns the payments recorded in the scoped year's partition.
func (e *PaymentEditor) Payments() []Payment {
	part, ok := e.years.YearData(e.propertyID, e.year)
	if !ok {
		return nil
	}
	return part.Payments
}

func (e *PaymentEditor) mutate(fn func(part *YearPartition) bool) bool {
	part, _ := e.years.YearData(e.propertyID, e.year)
	if !fn(&part) {
		return false
	}
	return e.years.SaveYearData(e.propertyID, e.year, part)
}

// Add appends a payment to the scoped year. A payment dated in a different
// year is logged and ignored.
func (e *PaymentEditor) Add(p Payment) bool {
	if p.Month.Year() != e.year {
		log.Printf("warning: payment for %s ignored by editor scoped to %d", p.Month, e.year)
		return false
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return e.mutate(func(part *YearPartition) bool {
		part.Payments = append(part.Payments, p)
		return true
	})
}

// Update replaces the payment with the same id.
func (e *PaymentEditor) Update(p Payment) bool {
	if p.Month.Year() != e.year {
		log.Printf("warning: payment for %s ignored by editor scoped to %d", p.Month, e.year)
		return false
	}
	return e.mutate(func(part *YearPartition) bool {
		for i := range part.Payments {
			if part.Payments[i].ID == p.ID {
				part.Payments[i] = p
				return true
			}
		}
		log.Printf("warning: payment %s not found for %s/%d", p.ID, e.propertyID, e.year)
		return false
	})
}

// Delete removes the payment with the given id.
func (e *PaymentEditor) Delete(id string) bool {
	return e.mutate(func(part *YearPartition) bool {
		kept := part.Payments[:0]
		for _, p := range part.Payments {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		part.Payments = kept
		return true
	})
}
