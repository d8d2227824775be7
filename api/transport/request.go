package transport

import (
	"github.com/meetingagent/todo-service/domain"
	"github.com/meetingagent/todo-service/pkg/ident"
)

// Per-operation request types. Each carries the raw arguments of one named
// operation and knows how to validate them before anything touches storage.
// Validation errors name the offending field the way the external contract
// promises.

type CreateTodoRequest struct {
	MeetingID   string
	Title       string
	Description string
	List        string
	Assignee    string
}

func (r CreateTodoRequest) Validate() error {
	switch {
	case r.MeetingID == "":
		return domain.NewError(domain.ErrCodeInvalid, "Meeting ID is required")
	case r.Title == "":
		return domain.NewError(domain.ErrCodeInvalid, "Title is required")
	case r.Description == "":
		return domain.NewError(domain.ErrCodeInvalid, "Description is required")
	case r.List == "":
		return domain.NewError(domain.ErrCodeInvalid, "List ID is required")
	case r.Assignee == "":
		return domain.NewError(domain.ErrCodeInvalid, "Assignee ID is required")
	}
	return nil
}

// UpdateTodoRequest distinguishes an omitted field (nil) from a supplied
// empty one: omitted keeps the stored value, supplied-but-empty is rejected.
type UpdateTodoRequest struct {
	ID          string
	Title       *string
	Description *string
}

func (r UpdateTodoRequest) Validate() error {
	if !ident.Valid(r.ID) {
		return domain.NewError(domain.ErrCodeInvalid, "Invalid Todo ID")
	}
	if r.Title != nil && *r.Title == "" {
		return domain.NewError(domain.ErrCodeInvalid, "Title is required")
	}
	if r.Description != nil && *r.Description == "" {
		return domain.NewError(domain.ErrCodeInvalid, "Description is required")
	}
	if r.Title == nil && r.Description == nil {
		return domain.NewError(domain.ErrCodeInvalid,
			"At least one field (title or description) must be provided")
	}
	return nil
}

// TodoIDRequest covers the operations whose only input is a todo id
// (get, complete, delete).
type TodoIDRequest struct {
	ID string
}

func (r TodoIDRequest) Validate() error {
	if !ident.Valid(r.ID) {
		return domain.NewError(domain.ErrCodeInvalid, "Invalid Todo ID")
	}
	return nil
}

type SearchByTitleRequest struct {
	Title string
}

func (r SearchByTitleRequest) Validate() error {
	if r.Title == "" {
		return domain.NewError(domain.ErrCodeInvalid, "Search term is required")
	}
	return nil
}

type SearchByDateRequest struct {
	Date string
}

func (r SearchByDateRequest) Validate() error {
	if !ident.ValidDate(r.Date) {
		return domain.NewError(domain.ErrCodeInvalid, "Date must be in YYYY-MM-DD format")
	}
	return nil
}

// StringArg extracts a string argument, treating anything absent or
// non-string as empty.
func StringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// OptionalStringArg extracts a string argument while preserving the
// difference between "absent" and "present but empty".
func OptionalStringArg(args map[string]interface{}, key string) *string {
	raw, ok := args[key]
	if !ok {
		return nil
	}
	v, ok := raw.(string)
	if !ok {
		return nil
	}
	return &v
}
