package repository

import (
	"context"

	"github.com/meetingagent/todo-service/domain"
)

// TodoRepository is the durable table of todo rows. Scan results come back in
// whatever order the engine yields; callers must not rely on it.
type TodoRepository interface {
	// Insert appends a new row. A duplicate id surfaces as domain.ErrDuplicateID.
	Insert(ctx context.Context, todo *domain.Todo) error
	// GetByID returns domain.ErrTodoNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	ListAll(ctx context.Context) ([]domain.Todo, error)
	// ListActive returns rows whose completedAt is NULL.
	ListActive(ctx context.Context) ([]domain.Todo, error)
	// SearchByTitle matches term as a case-insensitive substring of title.
	SearchByTitle(ctx context.Context, term string) ([]domain.Todo, error)
	// SearchByCreatedDate matches rows whose createdAt starts with the
	// YYYY-MM-DD prefix, i.e. the calendar day regardless of time of day.
	SearchByCreatedDate(ctx context.Context, date string) ([]domain.Todo, error)
	// UpdateContent overwrites title, description and updatedAt for an
	// existing row. Absent ids are a no-op; callers check existence first.
	UpdateContent(ctx context.Context, id, title, description, updatedAt string) error
	// MarkCompleted sets completedAt and updatedAt for an existing row.
	MarkCompleted(ctx context.Context, id, completedAt, updatedAt string) error
	// Delete removes the row and reports whether one was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}
