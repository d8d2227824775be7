package sqlite

import (
	"context"
	"database/sql"
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/meetingagent/todo-service/domain"
	"github.com/meetingagent/todo-service/repository"
)

type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository returns a SQLite-backed implementation of TodoRepository.
func NewTodoRepository(db *sql.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

const todoColumns = `id, meetingID, title, description, completedAt, createdAt, updatedAt, list, assignee`

func (r *todoRepository) Insert(ctx context.Context, todo *domain.Todo) error {
	if todo == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO todos (id, meetingID, title, description, completedAt, createdAt, updatedAt, list, assignee)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		todo.ID,
		todo.MeetingID,
		todo.Title,
		todo.Description,
		todo.CompletedAt,
		todo.CreatedAt,
		todo.UpdatedAt,
		todo.List,
		todo.Assignee,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return domain.ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *todoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`
	return scanTodo(r.db.QueryRowContext(ctx, query, id))
}

func (r *todoRepository) ListAll(ctx context.Context) ([]domain.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos`
	return r.queryTodos(ctx, query)
}

func (r *todoRepository) ListActive(ctx context.Context) ([]domain.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos WHERE completedAt IS NULL`
	return r.queryTodos(ctx, query)
}

func (r *todoRepository) SearchByTitle(ctx context.Context, term string) ([]domain.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos WHERE title LIKE ? COLLATE NOCASE`
	return r.queryTodos(ctx, query, "%"+term+"%")
}

func (r *todoRepository) SearchByCreatedDate(ctx context.Context, date string) ([]domain.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos WHERE createdAt LIKE ?`
	return r.queryTodos(ctx, query, date+"%")
}

func (r *todoRepository) UpdateContent(ctx context.Context, id, title, description, updatedAt string) error {
	const query = `
	UPDATE todos
	SET title = ?, description = ?, updatedAt = ?
	WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, title, description, updatedAt, id)
	return err
}

func (r *todoRepository) MarkCompleted(ctx context.Context, id, completedAt, updatedAt string) error {
	const query = `
	UPDATE todos
	SET completedAt = ?, updatedAt = ?
	WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, completedAt, updatedAt, id)
	return err
}

func (r *todoRepository) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM todos WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *todoRepository) queryTodos(ctx context.Context, query string, args ...interface{}) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}
	return todos, rows.Err()
}

func scanTodo(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Todo, error) {
	var todo domain.Todo
	var completedAt sql.NullString

	if err := row.Scan(
		&todo.ID,
		&todo.MeetingID,
		&todo.Title,
		&todo.Description,
		&completedAt,
		&todo.CreatedAt,
		&todo.UpdatedAt,
		&todo.List,
		&todo.Assignee,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}

	if completedAt.Valid {
		todo.CompletedAt = &completedAt.String
	}
	return &todo, nil
}
