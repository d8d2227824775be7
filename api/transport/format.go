package transport

import (
	"fmt"
	"strings"

	"github.com/meetingagent/todo-service/domain"
)

// FormatTodo renders one todo as a markdown block with an emoji completion
// marker. This is the wire representation of a single entity.
func FormatTodo(t *domain.Todo) string {
	status := "⏳"
	if t.Completed() {
		status = "✅"
	}
	return fmt.Sprintf("## %s %s\n\nID: %s\nCreated: %s\nUpdated: %s\n\n%s",
		t.Title, status, t.ID, t.CreatedAt, t.UpdatedAt, t.Description)
}

// FormatTodoList renders a sequence of todos as a markdown document, keeping
// the order the storage scan produced.
func FormatTodoList(todos []domain.Todo) string {
	if len(todos) == 0 {
		return "No todos found."
	}

	items := make([]string, 0, len(todos))
	for i := range todos {
		items = append(items, FormatTodo(&todos[i]))
	}
	return fmt.Sprintf("# Todo List (%d items)\n\n%s", len(todos), strings.Join(items, "\n\n---\n\n"))
}
