package todo

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/meetingagent/todo-service/domain"
	"github.com/meetingagent/todo-service/pkg/ident"
	"github.com/meetingagent/todo-service/repository"
)

// CreateParams carries the validated input of the create operation.
type CreateParams struct {
	MeetingID   string
	Title       string
	Description string
	List        string
	Assignee    string
}

// UpdateParams carries the validated input of the update operation. Empty
// Title or Description means "keep the stored value".
type UpdateParams struct {
	ID          string
	Title       string
	Description string
}

// UseCase orchestrates validated intents into repository calls and
// reconstructs entities on the way back out. It is the only component that
// writes through to storage.
type UseCase struct {
	todos  repository.TodoRepository
	logger *zap.Logger
	now    func() string
}

func New(todos repository.TodoRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		todos:  todos,
		logger: logger,
		now:    ident.Now,
	}
}

// Create builds the full entity (fresh id, createdAt == updatedAt, no
// completion) and inserts it. It only fails on a storage fault.
func (uc *UseCase) Create(ctx context.Context, params CreateParams) (*domain.Todo, error) {
	now := uc.now()
	todo := &domain.Todo{
		ID:          ident.NewID(),
		MeetingID:   params.MeetingID,
		Title:       params.Title,
		Description: params.Description,
		CompletedAt: nil,
		CreatedAt:   now,
		UpdatedAt:   now,
		List:        params.List,
		Assignee:    params.Assignee,
	}
	if err := uc.todos.Insert(ctx, todo); err != nil {
		uc.logger.Error("todo insert failed", zap.String("id", todo.ID), zap.Error(err))
		return nil, err
	}
	return todo, nil
}

// Get returns the todo or domain.ErrTodoNotFound; a missing id is an expected
// condition, not a fault.
func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Todo, error) {
	return uc.todos.GetByID(ctx, id)
}

func (uc *UseCase) ListAll(ctx context.Context) ([]domain.Todo, error) {
	return uc.todos.ListAll(ctx)
}

func (uc *UseCase) ListActive(ctx context.Context) ([]domain.Todo, error) {
	return uc.todos.ListActive(ctx)
}

// Update overwrites title and description, keeping the stored value for any
// field the caller omitted, and refreshes updatedAt. The freshly re-read
// entity is returned.
func (uc *UseCase) Update(ctx context.Context, params UpdateParams) (*domain.Todo, error) {
	existing, err := uc.todos.GetByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	title := params.Title
	if title == "" {
		title = existing.Title
	}
	description := params.Description
	if description == "" {
		description = existing.Description
	}

	if err := uc.todos.UpdateContent(ctx, existing.ID, title, description, uc.now()); err != nil {
		uc.logger.Error("todo update failed", zap.String("id", existing.ID), zap.Error(err))
		return nil, err
	}
	return uc.todos.GetByID(ctx, existing.ID)
}

// Complete stamps completedAt and updatedAt with the same fresh instant.
// Completing an already-completed todo stamps again: the outcome is
// idempotent, the timestamp value is not, and callers must not rely on it
// staying put across repeats.
func (uc *UseCase) Complete(ctx context.Context, id string) (*domain.Todo, error) {
	existing, err := uc.todos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := uc.todos.MarkCompleted(ctx, existing.ID, now, now); err != nil {
		uc.logger.Error("todo completion failed", zap.String("id", existing.ID), zap.Error(err))
		return nil, err
	}
	return uc.todos.GetByID(ctx, existing.ID)
}

// Delete removes the row permanently and reports whether one was removed.
// Callers needing the deleted title for a response fetch the entity first.
func (uc *UseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.todos.Delete(ctx, id)
}

func (uc *UseCase) SearchByTitle(ctx context.Context, term string) ([]domain.Todo, error) {
	return uc.todos.SearchByTitle(ctx, term)
}

func (uc *UseCase) SearchByDate(ctx context.Context, date string) ([]domain.Todo, error) {
	return uc.todos.SearchByCreatedDate(ctx, date)
}

// SummarizeActive renders a markdown digest of the active todos, one bullet
// per title in scan order.
func (uc *UseCase) SummarizeActive(ctx context.Context) (string, error) {
	active, err := uc.todos.ListActive(ctx)
	if err != nil {
		return "", err
	}

	if len(active) == 0 {
		return "No active todos found.", nil
	}

	lines := make([]string, 0, len(active))
	for _, t := range active {
		lines = append(lines, "- "+t.Title)
	}
	return fmt.Sprintf("# Active Todos Summary\n\nThere are %d active todos:\n\n%s",
		len(active), strings.Join(lines, "\n")), nil
}
