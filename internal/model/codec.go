package model

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type listDoc struct {
	Title *string           `json:"title"`
	Todos []json.RawMessage `json:"todos"`
}

// MarshalJSON encodes the list as {"title": ..., "todos": [...]}.
func (l *TodoList) MarshalJSON() ([]byte, error) {
	todos := l.todos
	if todos == nil {
		todos = []*Todo{}
	}
	return json.Marshal(struct {
		Title string  `json:"title"`
		Todos []*Todo `json:"todos"`
	}{l.Title, todos})
}

// UnmarshalJSON decodes a document written by MarshalJSON. Every element of
// "todos" must be a JSON object; anything else fails with ErrTypeMismatch.
// A document without a "title" key keeps the receiver's title. On error the
// receiver is not modified.
func (l *TodoList) UnmarshalJSON(data []byte) error {
	var doc listDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	todos, err := DecodeTodos(doc.Todos)
	if err != nil {
		return err
	}
	if doc.Title != nil {
		l.Title = *doc.Title
	}
	l.todos = todos
	return nil
}

// DecodeTodos decodes raw JSON elements into todos, rejecting elements that
// are not objects.
func DecodeTodos(raw []json.RawMessage) ([]*Todo, error) {
	todos := make([]*Todo, 0, len(raw))
	for i, r := range raw {
		if !isObject(r) {
			return nil, errors.Wrapf(ErrTypeMismatch, "todos[%d]", i)
		}
		var t Todo
		if err := json.Unmarshal(r, &t); err != nil {
			return nil, errors.Wrapf(err, "todos[%d]", i)
		}
		todos = append(todos, &t)
	}
	return todos, nil
}

func isObject(r json.RawMessage) bool {
	r = bytes.TrimSpace(r)
	return len(r) > 0 && r[0] == '{'
}
