package finance

import "sort"

// Priority orders todos; higher shows first.
type Priority string

const (
	Low    Priority = "LOW"
	Medium Priority = "MEDIUM"
	High   Priority = "HIGH"
)

// score; unknown priorities sink to the bottom.
var priorityScore = map[Priority]int{High: 3, Medium: 2, Low: 1}

// Todo is a task on the money to-do list.
type Todo struct {
	Meta
	Task        string   `json:"task"`
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	IsCompleted bool     `json:"isCompleted"`
}

// TodoPatch is a partial todo update; nil fields are left untouched.
type TodoPatch struct {
	Task     *string
	Category *string
	Priority *Priority
}

// Todos returns all todos sorted by priority descending on every read,
// never by insertion order.
func (b *Book) Todos() []Todo {
	todos := b.todos.All()
	sort.SliceStable(todos, func(i, j int) bool {
		return priorityScore[todos[i].Priority] > priorityScore[todos[j].Priority]
	})
	return todos
}

// CreateTodo saves a new, uncompleted todo with defaulted category and
// priority.
func (b *Book) CreateTodo(t Todo) Todo {
	if t.Category == "" {
		t.Category = "عام"
	}
	if t.Priority == "" {
		t.Priority = Low
	}
	t.IsCompleted = false
	return b.todos.Save(t)
}

// ToggleTodo flips the completion flag, returning nil when absent.
func (b *Book) ToggleTodo(id string) *Todo {
	return b.todos.Update(id, func(t *Todo) { t.IsCompleted = !t.IsCompleted })
}

// UpdateTodo applies the patch to the todo, returning nil when absent.
func (b *Book) UpdateTodo(id string, patch TodoPatch) *Todo {
	return b.todos.Update(id, func(t *Todo) {
		if patch.Task != nil {
			t.Task = *patch.Task
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
	})
}

// DeleteTodo removes a todo.
func (b *Book) DeleteTodo(id string) { b.todos.Delete(id) }
