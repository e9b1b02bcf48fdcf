package finance

import (
	"testing"
	"time"
)

func TestCollection_SaveAssignsIdentity(t *testing.T) {
	c := newCollection[Todo](NewStore(NewMemMedium()), "todos")

	stored := c.Save(Todo{Task: "سجل المصاريف"})
	if stored.ID == "" {
		t.Error("Save did not assign an id")
	}
	if stored.CreatedAt.IsZero() {
		t.Error("Save did not assign a creation timestamp")
	}
	if !stored.Date.Equal(stored.CreatedAt) {
		t.Errorf("Date %v should default to CreatedAt %v", stored.Date, stored.CreatedAt)
	}

	all := c.All()
	if len(all) != 1 || all[0].ID != stored.ID {
		t.Errorf("All = %+v, want the stored record", all)
	}
}

func TestCollection_SaveKeepsCallerDate(t *testing.T) {
	c := newCollection[Todo](NewStore(NewMemMedium()), "todos")
	on := time.Date(2025, time.May, 2, 10, 0, 0, 0, time.UTC)

	stored := c.Save(Todo{Meta: Meta{Date: on}, Task: "x"})
	if !stored.Date.Equal(on) {
		t.Errorf("Date = %v, want caller-supplied %v", stored.Date, on)
	}
}

func TestCollection_SaveAppendsInOrder(t *testing.T) {
	c := newCollection[Todo](NewStore(NewMemMedium()), "todos")
	first := c.Save(Todo{Task: "a"})
	second := c.Save(Todo{Task: "b"})
	if first.ID == second.ID {
		t.Fatal("ids are not unique")
	}
	all := c.All()
	if len(all) != 2 || all[0].Task != "a" || all[1].Task != "b" {
		t.Errorf("insertion order not preserved: %+v", all)
	}
}

func TestCollection_UpdateMissingIsNil(t *testing.T) {
	c := newCollection[Todo](NewStore(NewMemMedium()), "todos")
	if got := c.Update("nope", func(*Todo) {}); got != nil {
		t.Errorf("Update on missing id = %+v, want nil", got)
	}
}

func TestCollection_Update(t *testing.T) {
	c := newCollection[Todo](NewStore(NewMemMedium()), "todos")
	stored := c.Save(Todo{Task: "old"})

	updated := c.Update(stored.ID, func(todo *Todo) { todo.Task = "new" })
	if updated == nil || updated.Task != "new" {
		t.Fatalf("Update = %+v, want task new", updated)
	}
	if all := c.All(); all[0].Task != "new" {
		t.Errorf("update was not persisted: %+v", all)
	}
}

func TestCollection_DeleteAbsentIsNoop(t *testing.T) {
	c := newCollection[Todo](NewStore(NewMemMedium()), "todos")
	c.Save(Todo{Task: "keep"})
	c.Delete("nope")
	if got := len(c.All()); got != 1 {
		t.Errorf("Delete of absent id changed the collection: %d records", got)
	}
}

func TestCollection_Delete(t *testing.T) {
	c := newCollection[Todo](NewStore(NewMemMedium()), "todos")
	a := c.Save(Todo{Task: "a"})
	c.Save(Todo{Task: "b"})
	c.Delete(a.ID)
	all := c.All()
	if len(all) != 1 || all[0].Task != "b" {
		t.Errorf("after delete: %+v, want only b", all)
	}
}

func TestCollection_FindMissingIsNil(t *testing.T) {
	c := newCollection[Todo](NewStore(NewMemMedium()), "todos")
	if c.Find("nope") != nil {
		t.Error("Find on missing id should be nil")
	}
}
