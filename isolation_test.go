package homehive

import (
	"reflect"
	"testing"
	"time"
)

func TestInventoryEditor_AddIsIsolated(t *testing.T) {
	storage := NewMemoryStorage()
	registry := NewRegistry(storage)
	if _, err := registry.Add(testProperty()); err != nil {
		t.Fatal(err)
	}
	before, _ := registry.Property("1")

	editor := NewInventoryEditor(storage, "1", 2023)
	item, ok := editor.Add(InventoryItem{Name: "Sofa", Type: "furniture", Condition: "good"})
	if !ok {
		t.Fatal("add should succeed")
	}
	if item.ID == "" {
		t.Error("added item should get a generated id")
	}
	if item.Year != 2023 {
		t.Errorf("year = %d, want 2023", item.Year)
	}
	if !item.IsDeductible {
		t.Error("historical inventory items default to deductible")
	}

	items := editor.Items()
	if len(items) != 1 || items[0].Name != "Sofa" {
		t.Fatalf("read back %v, want exactly the Sofa", items)
	}

	// the live property's inventory is unaffected.
	after, _ := registry.Property("1")
	if !reflect.DeepEqual(before.Inventory, after.Inventory) {
		t.Error("live inventory changed by a historical edit")
	}
	// and so is any other year.
	if got := NewInventoryEditor(storage, "1", 2022).Items(); len(got) != 0 {
		t.Errorf("year 2022 should be empty, got %v", got)
	}
}

func TestInventoryEditor_UpdateRejectsCrossYear(t *testing.T) {
	storage := NewMemoryStorage()
	editor := NewInventoryEditor(storage, "1", 2023)
	item, _ := editor.Add(InventoryItem{Name: "Sofa"})

	wrong := item
	wrong.Year = 2022
	if ok := editor.Update(wrong); ok {
		t.Error("an update scoped to another year must be a no-op")
	}
	if got := editor.Items(); got[0].Year != 2023 {
		t.Errorf("stored year mutated to %d", got[0].Year)
	}
}

func TestTaskEditor_ToggleNotifies(t *testing.T) {
	storage := NewMemoryStorage()
	notifications := NewNotificationLog(storage)
	editor := NewTaskEditor(storage, notifications, "1", 2023)

	task, ok := editor.Add(Task{Title: "Repaint walls"})
	if !ok {
		t.Fatal("add should succeed")
	}
	if got := len(notifications.All()); got != 0 {
		t.Fatalf("adding a task should not notify, got %d notifications", got)
	}

	if ok := editor.Toggle(task.ID, true); !ok {
		t.Fatal("toggle should succeed")
	}
	ns := notifications.All()
	if len(ns) != 1 {
		t.Fatalf("completing a task should emit exactly one notification, got %d", len(ns))
	}
	if ns[0].Kind != NotifyTask || ns[0].TaskID != task.ID || ns[0].Year != 2023 {
		t.Errorf("unexpected notification %+v", ns[0])
	}

	if ok := editor.Toggle(task.ID, false); !ok {
		t.Fatal("toggle back should succeed")
	}
	if got := len(notifications.All()); got != 0 {
		t.Errorf("un-completing should clear the notification, got %d left", got)
	}
}

func TestTaskEditor_DeleteClearsNotifications(t *testing.T) {
	storage := NewMemoryStorage()
	notifications := NewNotificationLog(storage)
	editor := NewTaskEditor(storage, notifications, "1", 2023)

	task, _ := editor.Add(Task{Title: "Replace lock"})
	editor.Toggle(task.ID, true)
	if ok := editor.Delete(task.ID); !ok {
		t.Fatal("delete should succeed")
	}
	if got := len(editor.Tasks()); got != 0 {
		t.Errorf("task list should be empty, got %d", got)
	}
	if got := len(notifications.All()); got != 0 {
		t.Errorf("deleting the task should clear its notifications, got %d", got)
	}
}

func TestPaymentEditor_ScopedToOneYear(t *testing.T) {
	storage := NewMemoryStorage()
	ys := NewYearStore(storage, mid2025)
	ys.SaveYearData("1", 2023, YearPartition{Rent: EUR(800)})
	ys.SaveYearData("1", 2024, YearPartition{Rent: EUR(825), Payments: []Payment{paidMonth(2024, time.May, EUR(825))}})

	editor := NewPaymentEditor(ys, "1", 2023)

	// a payment of another year is refused.
	if ok := editor.Add(paidMonth(2024, time.January, EUR(800))); ok {
		t.Error("a 2024 payment must be refused by the 2023 editor")
	}
	if ok := editor.Add(paidMonth(2023, time.January, EUR(800))); !ok {
		t.Fatal("a 2023 payment should be accepted")
	}

	got := editor.Payments()
	if len(got) != 1 {
		t.Fatalf("got %d payments, want 1", len(got))
	}
	if !got[0].Immutable {
		t.Error("a payment written into a sealed year is stored immutable")
	}

	// the other year's partition is untouched.
	part, _ := ys.YearData("1", 2024)
	if len(part.Payments) != 1 || part.Payments[0].Month.String() != "2024-05" {
		t.Errorf("2024 partition changed: %v", part.Payments)
	}
}

func TestPaymentEditor_UpdateAndDelete(t *testing.T) {
	storage := NewMemoryStorage()
	ys := NewYearStore(storage, mid2025)
	editor := NewPaymentEditor(ys, "1", 2023)

	p := paidMonth(2023, time.February, EUR(800))
	if ok := editor.Add(p); !ok {
		t.Fatal("add should succeed")
	}

	p.Notes = "paid late"
	if ok := editor.Update(p); !ok {
		t.Fatal("update should succeed")
	}
	if got := editor.Payments(); got[0].Notes != "paid late" {
		t.Errorf("notes = %q, want %q", got[0].Notes, "paid late")
	}

	if ok := editor.Delete(p.ID); !ok {
		t.Fatal("delete should succeed")
	}
	if got := editor.Payments(); len(got) != 0 {
		t.Errorf("got %d payments after delete, want 0", len(got))
	}
}
