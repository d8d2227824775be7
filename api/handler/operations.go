package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/meetingagent/todo-service/api/transport"
	"github.com/meetingagent/todo-service/domain"
	"github.com/meetingagent/todo-service/usecase"
	todoUC "github.com/meetingagent/todo-service/usecase/todo"
)

// TodoOperations binds the named external operations to the todo service.
// Every handler follows the same sequence: validate inputs, invoke the
// service, format the outcome. Absence comes back as a not-found error the
// dispatcher turns into a failure payload.
type TodoOperations struct {
	uc *todoUC.UseCase
}

func NewTodoOperations(uc *todoUC.UseCase) *TodoOperations {
	return &TodoOperations{uc: uc}
}

// Register wires all ten operations into the dispatcher.
func (h *TodoOperations) Register(d *usecase.Dispatcher) {
	d.Register(usecase.Operation{
		Name:         "create-todo",
		Description:  "Create a new todo item",
		FailureLabel: "Failed to create todo",
		Handler:      h.createTodo,
	})
	d.Register(usecase.Operation{
		Name:         "list-todos",
		Description:  "List all todos",
		FailureLabel: "Failed to list todos",
		Handler:      h.listTodos,
	})
	d.Register(usecase.Operation{
		Name:         "get-todo",
		Description:  "Get a specific todo by ID",
		FailureLabel: "Failed to get todo",
		Handler:      h.getTodo,
	})
	d.Register(usecase.Operation{
		Name:         "update-todo",
		Description:  "Update a todo title or description",
		FailureLabel: "Failed to update todo",
		Handler:      h.updateTodo,
	})
	d.Register(usecase.Operation{
		Name:         "complete-todo",
		Description:  "Mark a todo as completed",
		FailureLabel: "Failed to complete todo",
		Handler:      h.completeTodo,
	})
	d.Register(usecase.Operation{
		Name:         "delete-todo",
		Description:  "Delete a todo",
		FailureLabel: "Failed to delete todo",
		Handler:      h.deleteTodo,
	})
	d.Register(usecase.Operation{
		Name:         "search-todos-by-title",
		Description:  "Search todos by title (case insensitive partial match)",
		FailureLabel: "Failed to search todos",
		Handler:      h.searchByTitle,
	})
	d.Register(usecase.Operation{
		Name:         "search-todos-by-date",
		Description:  "Search todos by creation date (format: YYYY-MM-DD)",
		FailureLabel: "Failed to search todos by date",
		Handler:      h.searchByDate,
	})
	d.Register(usecase.Operation{
		Name:         "list-active-todos",
		Description:  "List all non-completed todos",
		FailureLabel: "Failed to list active todos",
		Handler:      h.listActiveTodos,
	})
	d.Register(usecase.Operation{
		Name:         "summarize-active-todos",
		Description:  "Generate a summary of all active (non-completed) todos",
		FailureLabel: "Failed to summarize active todos",
		Handler:      h.summarizeActiveTodos,
	})
}

func (h *TodoOperations) createTodo(ctx context.Context, args map[string]interface{}) (string, error) {
	req := transport.CreateTodoRequest{
		MeetingID:   transport.StringArg(args, "meetingID"),
		Title:       transport.StringArg(args, "title"),
		Description: transport.StringArg(args, "description"),
		List:        transport.StringArg(args, "list"),
		Assignee:    transport.StringArg(args, "assignee"),
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	created, err := h.uc.Create(ctx, todoUC.CreateParams{
		MeetingID:   req.MeetingID,
		Title:       req.Title,
		Description: req.Description,
		List:        req.List,
		Assignee:    req.Assignee,
	})
	if err != nil {
		return "", err
	}
	return "✅ Todo Created:\n\n" + transport.FormatTodo(created), nil
}

func (h *TodoOperations) listTodos(ctx context.Context, _ map[string]interface{}) (string, error) {
	todos, err := h.uc.ListAll(ctx)
	if err != nil {
		return "", err
	}
	return transport.FormatTodoList(todos), nil
}

func (h *TodoOperations) getTodo(ctx context.Context, args map[string]interface{}) (string, error) {
	req := transport.TodoIDRequest{ID: transport.StringArg(args, "id")}
	if err := req.Validate(); err != nil {
		return "", err
	}

	todo, err := h.uc.Get(ctx, req.ID)
	if err != nil {
		return "", describeAbsence(err, req.ID)
	}
	return transport.FormatTodo(todo), nil
}

func (h *TodoOperations) updateTodo(ctx context.Context, args map[string]interface{}) (string, error) {
	req := transport.UpdateTodoRequest{
		ID:          transport.StringArg(args, "id"),
		Title:       transport.OptionalStringArg(args, "title"),
		Description: transport.OptionalStringArg(args, "description"),
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	params := todoUC.UpdateParams{ID: req.ID}
	if req.Title != nil {
		params.Title = *req.Title
	}
	if req.Description != nil {
		params.Description = *req.Description
	}

	updated, err := h.uc.Update(ctx, params)
	if err != nil {
		return "", describeAbsence(err, req.ID)
	}
	return "✅ Todo Updated:\n\n" + transport.FormatTodo(updated), nil
}

func (h *TodoOperations) completeTodo(ctx context.Context, args map[string]interface{}) (string, error) {
	req := transport.TodoIDRequest{ID: transport.StringArg(args, "id")}
	if err := req.Validate(); err != nil {
		return "", err
	}

	completed, err := h.uc.Complete(ctx, req.ID)
	if err != nil {
		return "", describeAbsence(err, req.ID)
	}
	return "✅ Todo Completed:\n\n" + transport.FormatTodo(completed), nil
}

func (h *TodoOperations) deleteTodo(ctx context.Context, args map[string]interface{}) (string, error) {
	req := transport.TodoIDRequest{ID: transport.StringArg(args, "id")}
	if err := req.Validate(); err != nil {
		return "", err
	}

	// Fetch first so the response can carry the deleted title.
	todo, err := h.uc.Get(ctx, req.ID)
	if err != nil {
		return "", describeAbsence(err, req.ID)
	}

	removed, err := h.uc.Delete(ctx, req.ID)
	if err != nil {
		return "", err
	}
	if !removed {
		return "", domain.NewError(domain.ErrCodeInternal,
			fmt.Sprintf("Failed to delete todo with ID %s", req.ID))
	}
	return fmt.Sprintf("✅ Todo Deleted: %q", todo.Title), nil
}

func (h *TodoOperations) searchByTitle(ctx context.Context, args map[string]interface{}) (string, error) {
	req := transport.SearchByTitleRequest{Title: transport.StringArg(args, "title")}
	if err := req.Validate(); err != nil {
		return "", err
	}

	todos, err := h.uc.SearchByTitle(ctx, req.Title)
	if err != nil {
		return "", err
	}
	return transport.FormatTodoList(todos), nil
}

func (h *TodoOperations) searchByDate(ctx context.Context, args map[string]interface{}) (string, error) {
	req := transport.SearchByDateRequest{Date: transport.StringArg(args, "date")}
	if err := req.Validate(); err != nil {
		return "", err
	}

	todos, err := h.uc.SearchByDate(ctx, req.Date)
	if err != nil {
		return "", err
	}
	return transport.FormatTodoList(todos), nil
}

func (h *TodoOperations) listActiveTodos(ctx context.Context, _ map[string]interface{}) (string, error) {
	todos, err := h.uc.ListActive(ctx)
	if err != nil {
		return "", err
	}
	return transport.FormatTodoList(todos), nil
}

func (h *TodoOperations) summarizeActiveTodos(ctx context.Context, _ map[string]interface{}) (string, error) {
	return h.uc.SummarizeActive(ctx)
}

// describeAbsence turns the not-found sentinel into the user-facing message
// carrying the requested id; anything else passes through untouched.
func describeAbsence(err error, id string) error {
	if errors.Is(err, domain.ErrTodoNotFound) {
		return domain.NewError(domain.ErrCodeNotFound,
			fmt.Sprintf("Todo with ID %s not found", id))
	}
	return err
}
