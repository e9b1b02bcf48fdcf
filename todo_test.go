package finance

import "testing"

func TestCreateTodo_Defaults(t *testing.T) {
	b := newTestBook()
	got := b.CreateTodo(Todo{Task: "دفع الإيجار"})
	if got.Category != "عام" {
		t.Errorf("category = %q, want عام", got.Category)
	}
	if got.Priority != Low {
		t.Errorf("priority = %q, want %q", got.Priority, Low)
	}
	if got.IsCompleted {
		t.Error("new todo born completed")
	}
}

func TestTodos_PriorityDescending(t *testing.T) {
	b := newTestBook()
	b.CreateTodo(Todo{Task: "عادي", Priority: Low})
	b.CreateTodo(Todo{Task: "مهم جدا", Priority: High})
	b.CreateTodo(Todo{Task: "متوسط", Priority: Medium})
	b.CreateTodo(Todo{Task: "عادي آخر", Priority: Low})

	todos := b.Todos()
	want := []Priority{High, Medium, Low, Low}
	for i, p := range want {
		if todos[i].Priority != p {
			t.Fatalf("todos[%d].Priority = %q, want %q (order %+v)", i, todos[i].Priority, p, todos)
		}
	}
	// Equal priorities keep insertion order.
	if todos[2].Task != "عادي" || todos[3].Task != "عادي آخر" {
		t.Errorf("equal-priority order not stable: %q then %q", todos[2].Task, todos[3].Task)
	}
}

func TestToggleTodo(t *testing.T) {
	b := newTestBook()
	todo := b.CreateTodo(Todo{Task: "تسوق"})
	if got := b.ToggleTodo(todo.ID); got == nil || !got.IsCompleted {
		t.Fatalf("first toggle = %+v", got)
	}
	if got := b.ToggleTodo(todo.ID); got == nil || got.IsCompleted {
		t.Fatalf("second toggle = %+v", got)
	}
	if b.ToggleTodo("missing") != nil {
		t.Error("toggling a missing todo should yield nil")
	}
}

func TestUpdateTodo_Patch(t *testing.T) {
	b := newTestBook()
	todo := b.CreateTodo(Todo{Task: "قديم", Priority: Medium})
	text := "جديد"
	got := b.UpdateTodo(todo.ID, TodoPatch{Task: &text})
	if got == nil || got.Task != "جديد" {
		t.Fatalf("update = %+v", got)
	}
	if got.Priority != Medium {
		t.Errorf("priority changed to %q by unrelated patch", got.Priority)
	}
}

func TestDeleteTodo(t *testing.T) {
	b := newTestBook()
	todo := b.CreateTodo(Todo{Task: "مؤقت"})
	b.DeleteTodo(todo.ID)
	if got := len(b.Todos()); got != 0 {
		t.Errorf("todos after delete = %d, want 0", got)
	}
}
