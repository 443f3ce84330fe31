package ui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
)

func newList(t *testing.T) *model.TodoList {
	t.Helper()
	SetColorForcing(false, true)
	t.Cleanup(func() { SetTheme("classic") })

	l := model.NewList("Today's Todos")
	require.NoError(t, l.Add(model.New("Buy milk")))
	require.NoError(t, l.Add(model.New("Clean room")))
	require.NoError(t, l.Add(model.New("Go to gym")))
	require.NoError(t, l.MarkDoneAt(1))
	return l
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name              string
		done, total, want int
		pct               string
	}{
		{"empty", 0, 0, 0, "  0%"},
		{"half", 1, 2, 5, " 50%"},
		{"full", 3, 3, 10, "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressBar(tt.done, tt.total, 10)
			assert.Equal(t, tt.want, strings.Count(got, "█"))
			assert.True(t, strings.HasSuffix(got, tt.pct), got)
		})
	}
	assert.Equal(t, 5, strings.Count(ProgressBar(0, 1, 1), "░"))
}

func TestHeader(t *testing.T) {
	l := newList(t)
	h := Header(l)
	assert.Contains(t, h, "Today's Todos")
	assert.Contains(t, h, "✔ 1")
	assert.Contains(t, h, "• 2")
	assert.Contains(t, h, "Total 3")
}

func TestLines(t *testing.T) {
	l := newList(t)
	SetTheme("mono")

	lines := Lines(l, false)
	assert.Contains(t, lines, " 1. [ ] Buy milk")
	assert.Contains(t, lines, " 2. [X] Clean room")
	assert.Contains(t, lines, " 3. [ ] Go to gym")
}

func TestLinesGroup(t *testing.T) {
	l := newList(t)
	SetTheme("mono")

	out := strings.Join(Lines(l, true), "\n")
	pending := strings.Index(out, "Pending")
	done := strings.Index(out, "Done")
	require.True(t, pending >= 0 && done > pending)
	assert.Less(t, strings.Index(out, " 3. [ ] Go to gym"), done)
	assert.Greater(t, strings.Index(out, " 2. [X] Clean room"), done)
}

func TestLinesEmpty(t *testing.T) {
	SetColorForcing(false, true)
	out := strings.Join(Lines(model.NewList("empty"), true), "\n")
	assert.Equal(t, 2, strings.Count(out, "(none)"))
}

func TestItemTruncate(t *testing.T) {
	SetColorForcing(false, true)
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	got := Item(model.New(strings.Repeat("a", 100)))
	assert.Equal(t, "[ ] "+strings.Repeat("a", 77)+"...", got)

	got = Item(model.New(strings.Repeat("é", 90)))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "[ ] "+strings.Repeat("é", 77)+"...", got)

	// wide runes count two cells each
	got = Item(model.New(strings.Repeat("世", 50)))
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, lipgloss.Width(strings.TrimPrefix(got, "[ ] ")), maxTitleWidth)
	assert.True(t, strings.HasSuffix(got, "..."))

	short := strings.Repeat("é", 80)
	assert.Equal(t, "[ ] "+short, Item(model.New(short)))
}

func TestColorForcing(t *testing.T) {
	t.Cleanup(func() { SetColorForcing(false, true) })

	SetColorForcing(true, false)
	assert.Equal(t, termenv.ANSI256, lipgloss.ColorProfile())

	SetColorForcing(true, true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}

func TestPanelAndStatus(t *testing.T) {
	SetColorForcing(false, true)
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{"hello"})
	assert.Contains(t, buf.String(), "| hello |")
	assert.Contains(t, buf.String(), "+")

	buf.Reset()
	OK(&buf, "added")
	assert.Equal(t, "X added\n", buf.String())

	buf.Reset()
	Fail(&buf, "nope")
	assert.Equal(t, "✖ nope\n", buf.String())
}
