package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	td := New("Buy milk")
	assert.Equal(t, "Buy milk", td.Title)
	assert.Equal(t, "", td.Description)
	assert.False(t, td.IsDone())

	td = New("Clean room", "kitchen too")
	assert.Equal(t, "kitchen too", td.Description)
	assert.False(t, td.IsDone())
}

func TestTodoStatus(t *testing.T) {
	td := New("Go to gym", "legs")
	before := *td

	td.MarkDone()
	assert.True(t, td.IsDone())
	td.MarkDone()
	assert.True(t, td.IsDone())

	td.MarkUndone()
	assert.False(t, td.IsDone())
	assert.True(t, td.Equal(&before))
}

func TestTodoString(t *testing.T) {
	td := New("Buy milk", "not shown")
	assert.Equal(t, "[ ] Buy milk", td.String())
	td.MarkDone()
	assert.Equal(t, "[X] Buy milk", td.String())
}

func TestTodoEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Todo
		want bool
	}{
		{"same", New("a", "d"), New("a", "d"), true},
		{"title", New("a"), New("b"), false},
		{"description", New("a", "x"), New("a", "y"), false},
		{"done", &Todo{Title: "a", Done: true}, New("a"), false},
		{"nil both", nil, nil, true},
		{"nil one", New("a"), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}
