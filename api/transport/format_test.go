package transport

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/meetingagent/todo-service/domain"
)

func fixtureActive() domain.Todo {
	return domain.Todo{
		ID:          "3f2504e0-4f89-41d3-9a0c-0305e82c3301",
		MeetingID:   "meeting-1",
		Title:       "Learn MCP",
		Description: "Read the protocol docs and build a demo server.",
		CreatedAt:   "2024-03-05T10:00:00.000Z",
		UpdatedAt:   "2024-03-05T10:00:00.000Z",
		List:        "list-1",
		Assignee:    "alice",
	}
}

func fixtureCompleted() domain.Todo {
	completedAt := "2024-03-06T08:30:00.000Z"
	return domain.Todo{
		ID:          "9b2d1f4c-7a31-4e5d-8a2b-6c1f0d9e8a70",
		MeetingID:   "meeting-1",
		Title:       "Buy milk",
		Description: "2% if they have it.",
		CompletedAt: &completedAt,
		CreatedAt:   "2024-03-05T09:15:00.000Z",
		UpdatedAt:   "2024-03-06T08:30:00.000Z",
		List:        "list-1",
		Assignee:    "bob",
	}
}

func TestFormatTodo_Active(t *testing.T) {
	todo := fixtureActive()
	g := goldie.New(t)
	g.Assert(t, "format_todo_active", []byte(FormatTodo(&todo)))
}

func TestFormatTodo_Completed(t *testing.T) {
	todo := fixtureCompleted()
	g := goldie.New(t)
	g.Assert(t, "format_todo_completed", []byte(FormatTodo(&todo)))
}

func TestFormatTodoList(t *testing.T) {
	todos := []domain.Todo{fixtureActive(), fixtureCompleted()}
	g := goldie.New(t)
	g.Assert(t, "format_todo_list", []byte(FormatTodoList(todos)))
}

func TestFormatTodoList_Empty(t *testing.T) {
	assert.Equal(t, "No todos found.", FormatTodoList(nil))
	assert.Equal(t, "No todos found.", FormatTodoList([]domain.Todo{}))
}
