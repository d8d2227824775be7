package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetingagent/todo-service/domain"
)

// fakeRepo keeps rows in memory, preserving insertion order on scans.
type fakeRepo struct {
	rows      map[string]domain.Todo
	order     []string
	insertErr error
	updates   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]domain.Todo)}
}

func (f *fakeRepo) Insert(_ context.Context, todo *domain.Todo) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.rows[todo.ID]; ok {
		return domain.ErrDuplicateID
	}
	f.rows[todo.ID] = *todo
	f.order = append(f.order, todo.ID)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Todo, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	return &row, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]domain.Todo, error) {
	return f.scan(func(domain.Todo) bool { return true }), nil
}

func (f *fakeRepo) ListActive(_ context.Context) ([]domain.Todo, error) {
	return f.scan(func(t domain.Todo) bool { return t.CompletedAt == nil }), nil
}

func (f *fakeRepo) SearchByTitle(_ context.Context, term string) ([]domain.Todo, error) {
	lower := strings.ToLower(term)
	return f.scan(func(t domain.Todo) bool {
		return strings.Contains(strings.ToLower(t.Title), lower)
	}), nil
}

func (f *fakeRepo) SearchByCreatedDate(_ context.Context, date string) ([]domain.Todo, error) {
	return f.scan(func(t domain.Todo) bool {
		return strings.HasPrefix(t.CreatedAt, date)
	}), nil
}

func (f *fakeRepo) UpdateContent(_ context.Context, id, title, description, updatedAt string) error {
	row, ok := f.rows[id]
	if !ok {
		return nil
	}
	row.Title = title
	row.Description = description
	row.UpdatedAt = updatedAt
	f.rows[id] = row
	f.updates++
	return nil
}

func (f *fakeRepo) MarkCompleted(_ context.Context, id, completedAt, updatedAt string) error {
	row, ok := f.rows[id]
	if !ok {
		return nil
	}
	row.CompletedAt = &completedAt
	row.UpdatedAt = updatedAt
	f.rows[id] = row
	f.updates++
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (f *fakeRepo) scan(keep func(domain.Todo) bool) []domain.Todo {
	var out []domain.Todo
	for _, id := range f.order {
		if row := f.rows[id]; keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// tickingClock hands out strictly increasing ISO timestamps.
type tickingClock struct {
	second int
}

func (c *tickingClock) now() string {
	c.second++
	return fmt.Sprintf("2024-03-05T10:00:%02d.000Z", c.second)
}

func newTestUseCase() (*UseCase, *fakeRepo, *tickingClock) {
	repo := newFakeRepo()
	clock := &tickingClock{}
	uc := New(repo, nil)
	uc.now = clock.now
	return uc, repo, clock
}

func TestCreate_RoundTrip(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, CreateParams{
		MeetingID:   "meeting-1",
		Title:       "Learn MCP",
		Description: "Read the protocol docs.",
		List:        "list-1",
		Assignee:    "alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Nil(t, created.CompletedAt)
	assert.False(t, created.Completed())

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreate_StorageFaultSurfaces(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	repo.insertErr = errors.New("disk full")

	_, err := uc.Create(context.Background(), CreateParams{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGet_Missing(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Get(context.Background(), "7c9a1f00-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)
}

func TestUpdate_PreservesUnspecifiedFields(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, CreateParams{
		MeetingID: "m", Title: "Original", Description: "Keep me", List: "l", Assignee: "a",
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, UpdateParams{ID: created.ID, Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Keep me", updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestUpdate_Missing(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	_, err := uc.Update(context.Background(), UpdateParams{
		ID: "7c9a1f00-0000-4000-8000-000000000000", Title: "x",
	})
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)
	assert.Zero(t, repo.updates, "no write may happen for a missing id")
}

func TestComplete_Monotonic(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, CreateParams{
		MeetingID: "m", Title: "t", Description: "d", List: "l", Assignee: "a",
	})
	require.NoError(t, err)

	first, err := uc.Complete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)
	assert.True(t, first.Completed())
	assert.Equal(t, *first.CompletedAt, first.UpdatedAt)

	// Completing again stamps a later instant; the timestamp is not stable
	// across repeats and never decreases.
	second, err := uc.Complete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, second.CompletedAt)
	assert.Greater(t, *second.CompletedAt, *first.CompletedAt)
	assert.Greater(t, second.UpdatedAt, first.UpdatedAt)
}

func TestDelete_Terminal(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, CreateParams{
		MeetingID: "m", Title: "t", Description: "d", List: "l", Assignee: "a",
	})
	require.NoError(t, err)

	removed, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = uc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)

	removed, err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSearchByTitle_CaseInsensitive(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, CreateParams{
		MeetingID: "m", Title: "Learn MCP", Description: "d", List: "l", Assignee: "a",
	})
	require.NoError(t, err)

	hits, err := uc.SearchByTitle(ctx, "mcp")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Learn MCP", hits[0].Title)

	misses, err := uc.SearchByTitle(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, misses)
}

func TestSummarizeActive(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	summary, err := uc.SummarizeActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "No active todos found.", summary)

	created, err := uc.Create(ctx, CreateParams{
		MeetingID: "m", Title: "Buy milk", Description: "d", List: "l", Assignee: "a",
	})
	require.NoError(t, err)

	summary, err = uc.SummarizeActive(ctx)
	require.NoError(t, err)
	assert.Contains(t, summary, "There are 1 active todos")
	assert.Contains(t, summary, "- Buy milk")

	// A completed todo drops out of the digest.
	_, err = uc.Complete(ctx, created.ID)
	require.NoError(t, err)

	summary, err = uc.SummarizeActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "No active todos found.", summary)
}
