package domain

// Todo is a single task record tied to a meeting, a list and an assignee.
// Timestamps are ISO-8601 strings, exactly as persisted; CompletedAt is nil
// while the todo is still active.
type Todo struct {
	ID          string  `json:"id"`
	MeetingID   string  `json:"meetingID"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CompletedAt *string `json:"completedAt"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	List        string  `json:"list"`
	Assignee    string  `json:"assignee"`
}

// Completed reports whether the todo has been completed. It is always derived
// from CompletedAt and never stored on its own, so the two cannot drift.
func (t *Todo) Completed() bool {
	return t != nil && t.CompletedAt != nil
}
