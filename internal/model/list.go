package model

import (
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// TodoList is an ordered, titled collection of todos. Insertion order is
// kept and duplicates are allowed.
//
// Lists derived from a TodoList (Select, AllDone, AllNotDone) share the
// same *Todo values with it, so a status change made through either is
// visible in both.
type TodoList struct {
	Title string

	todos []*Todo
}

// NewList returns an empty list.
func NewList(title string) *TodoList {
	return &TodoList{Title: title}
}

// Add appends todo to the end of the list. A nil todo is rejected with
// ErrTypeMismatch and the list is left as it was.
func (l *TodoList) Add(todo *Todo) error {
	if todo == nil {
		return ErrTypeMismatch
	}
	l.todos = append(l.todos, todo)
	return nil
}

// InsertAt places todo at index, shifting later todos back. Index may equal
// Size to append.
func (l *TodoList) InsertAt(index int, todo *Todo) error {
	if todo == nil {
		return ErrTypeMismatch
	}
	if index < 0 || index > len(l.todos) {
		return indexError(index, len(l.todos))
	}
	l.todos = slices.Insert(l.todos, index, todo)
	return nil
}

func (l *TodoList) Size() int { return len(l.todos) }

// First returns the first todo or nil if the list is empty.
func (l *TodoList) First() *Todo {
	if len(l.todos) == 0 {
		return nil
	}
	return l.todos[0]
}

// Last returns the last todo or nil if the list is empty.
func (l *TodoList) Last() *Todo {
	if len(l.todos) == 0 {
		return nil
	}
	return l.todos[len(l.todos)-1]
}

// ToSlice returns a new slice holding the list's todos in order.
func (l *TodoList) ToSlice() []*Todo {
	return slices.Clone(l.todos)
}

// IsDone reports whether every todo is done. An empty list is done.
func (l *TodoList) IsDone() bool {
	return lo.EveryBy(l.todos, (*Todo).IsDone)
}

// Counts returns how many todos are done and how many are still pending.
func (l *TodoList) Counts() (done, pending int) {
	done = lo.CountBy(l.todos, (*Todo).IsDone)
	return done, len(l.todos) - done
}

// ItemAt returns the todo at index or an error wrapping ErrIndexOutOfRange.
func (l *TodoList) ItemAt(index int) (*Todo, error) {
	if index < 0 || index >= len(l.todos) {
		return nil, indexError(index, len(l.todos))
	}
	return l.todos[index], nil
}

func (l *TodoList) MarkDoneAt(index int) error {
	t, err := l.ItemAt(index)
	if err != nil {
		return err
	}
	t.MarkDone()
	return nil
}

func (l *TodoList) MarkUndoneAt(index int) error {
	t, err := l.ItemAt(index)
	if err != nil {
		return err
	}
	t.MarkUndone()
	return nil
}

func (l *TodoList) MarkAllDone() {
	l.Each((*Todo).MarkDone)
}

func (l *TodoList) MarkAllUndone() {
	l.Each((*Todo).MarkUndone)
}

// Shift removes and returns the first todo, or nil if the list is empty.
func (l *TodoList) Shift() *Todo {
	if len(l.todos) == 0 {
		return nil
	}
	t := l.todos[0]
	l.todos = slices.Delete(l.todos, 0, 1)
	return t
}

// Pop removes and returns the last todo, or nil if the list is empty.
func (l *TodoList) Pop() *Todo {
	if len(l.todos) == 0 {
		return nil
	}
	n := len(l.todos) - 1
	t := l.todos[n]
	l.todos = slices.Delete(l.todos, n, n+1)
	return t
}

// RemoveAt removes the todo at index and returns it. Every other todo equal
// to it (same title, description and status) is removed as well.
func (l *TodoList) RemoveAt(index int) (*Todo, error) {
	t, err := l.ItemAt(index)
	if err != nil {
		return nil, err
	}
	l.todos = lo.Reject(l.todos, func(it *Todo, _ int) bool {
		return it.Equal(t)
	})
	return t, nil
}

// Each calls visit for every todo in order and returns the list so calls
// can be chained. The sequence visited is fixed when Each starts; adding or
// removing todos from within visit does not change what is visited.
func (l *TodoList) Each(visit func(*Todo)) *TodoList {
	for _, t := range slices.Clone(l.todos) {
		visit(t)
	}
	return l
}

// All iterates over index and todo pairs of a snapshot of the list.
func (l *TodoList) All() iter.Seq2[int, *Todo] {
	return slices.All(slices.Clone(l.todos))
}

// Select returns a new list with the same title holding the todos for which
// keep returns true, in their original order.
func (l *TodoList) Select(keep func(*Todo) bool) *TodoList {
	return &TodoList{
		Title: l.Title,
		todos: lo.Filter(l.todos, func(it *Todo, _ int) bool { return keep(it) }),
	}
}

// FindByTitle returns the first todo whose title matches, ignoring case,
// or nil.
func (l *TodoList) FindByTitle(title string) *Todo {
	t, _ := lo.Find(l.todos, func(it *Todo) bool {
		return strings.EqualFold(it.Title, title)
	})
	return t
}

// MarkDone marks the todo found by FindByTitle as done. It reports whether
// one was found.
func (l *TodoList) MarkDone(title string) bool {
	t := l.FindByTitle(title)
	if t == nil {
		return false
	}
	t.MarkDone()
	return true
}

func (l *TodoList) AllDone() *TodoList {
	return l.Select((*Todo).IsDone)
}

func (l *TodoList) AllNotDone() *TodoList {
	return l.Select(func(t *Todo) bool { return !t.IsDone() })
}

// String renders a "---- title ----" header followed by one line per todo.
func (l *TodoList) String() string {
	var b strings.Builder
	b.WriteString("---- " + l.Title + " ----\n")
	b.WriteString(strings.Join(lo.Map(l.todos, func(t *Todo, _ int) string {
		return t.String()
	}), "\n"))
	return b.String()
}
