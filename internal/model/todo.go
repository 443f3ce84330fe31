// Package model holds the in-memory todo domain: a Todo record and the
// ordered, titled TodoList that owns a sequence of them.
package model

const (
	// DoneMarker is shown between brackets for a finished todo.
	DoneMarker = "X"
	// UndoneMarker is shown between brackets for a pending todo.
	UndoneMarker = " "
)

// Todo is a single task record.
type Todo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Done        bool   `json:"done"`
}

// New returns a pending todo. The description is optional and only the
// first one is used.
func New(title string, description ...string) *Todo {
	t := &Todo{Title: title}
	if len(description) > 0 {
		t.Description = description[0]
	}
	return t
}

func (t *Todo) MarkDone()    { t.Done = true }
func (t *Todo) MarkUndone()  { t.Done = false }
func (t *Todo) IsDone() bool { return t.Done }

// String renders the todo as "[X] title" or "[ ] title".
func (t *Todo) String() string {
	marker := UndoneMarker
	if t.Done {
		marker = DoneMarker
	}
	return "[" + marker + "] " + t.Title
}

// Equal reports whether both todos carry the same title, description and
// status. Identity is irrelevant.
func (t *Todo) Equal(other *Todo) bool {
	if t == nil || other == nil {
		return t == other
	}
	return *t == *other
}
