package finance

import (
	"testing"
	"time"
)

func TestCreateNotification_BornUnread(t *testing.T) {
	b := newTestBook()
	n := b.CreateNotification(Notification{Title: "تنبيه", Message: "اقتربت من الميزانية", IsRead: true})
	if n.IsRead {
		t.Error("creation must ignore the caller's read flag")
	}
}

func TestMarkNotificationRead_Monotonic(t *testing.T) {
	b := newTestBook()
	n := b.CreateNotification(Notification{Title: "تنبيه"})

	got := b.MarkNotificationRead(n.ID)
	if got == nil || !got.IsRead {
		t.Fatalf("first mark = %+v", got)
	}
	// Marking again keeps it read; there is no way back.
	if got := b.MarkNotificationRead(n.ID); !got.IsRead {
		t.Error("second mark flipped the state back")
	}
	if b.MarkNotificationRead("missing") != nil {
		t.Error("marking a missing notification should yield nil")
	}
}

func TestCategories_SeededAndCRUD(t *testing.T) {
	b := newTestBook()
	if got := len(b.Categories()); got != 6 {
		t.Fatalf("seeded categories = %d, want 6", got)
	}

	created := b.CreateCategory(Category{Name: "تعليم", Icon: "Book", Color: "#0ea5e9"})
	if got := len(b.Categories()); got != 7 {
		t.Fatalf("categories after create = %d, want 7", got)
	}

	b.DeleteCategory(created.ID)
	if got := len(b.Categories()); got != 6 {
		t.Errorf("categories after delete = %d, want 6", got)
	}
}

func TestDeleteCategory_LeavesTransactionsDangling(t *testing.T) {
	b := newTestBook()
	tx := b.CreateTransaction(expenseOn(100, "3", time.Now()))
	b.DeleteCategory("3")

	for _, view := range b.Transactions() {
		if view.ID == tx.ID && view.Category != nil {
			t.Errorf("deleted category still resolves: %+v", view.Category)
		}
	}
}
