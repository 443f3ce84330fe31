// Package tui is the interactive list editor. Every edit goes through the
// TodoList API; the bubbles list only mirrors it.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// listItem adapts a todo to bubbles/list.Item.
type listItem struct {
	todo *model.Todo
}

func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return i.todo.Description }
func (i listItem) FilterValue() string { return i.todo.Title }

// single line rows
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.Item(it.todo))
}

var selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

type mode int

const (
	browsing mode = iota
	adding
	editing
)

// Model is the bubbletea model editing one list in place.
type Model struct {
	todos    *model.TodoList
	list     list.Model
	ti       textinput.Model
	mode     mode
	inputErr string
	changed  bool

	width, height int

	// single-level undo of the last removal; RemoveAt also drops every
	// equal todo, so all of them are recorded
	undoCursor int
	undone     []removal
}

// removal is a todo and the position it held before a delete.
type removal struct {
	index int
	todo  *model.Todo
}

var (
	addBind  = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	undoBind = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	togBind  = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	delBind  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	allBind  = key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all done/undone"))
)

// New builds the editor for l.
func New(l *model.TodoList) Model {
	lm := list.New(nil, itemDelegate{}, 80, 20)
	lm.SetShowHelp(true)
	lm.SetShowPagination(true)
	lm.SetShowStatusBar(true)
	// positions in the widget must match positions in the TodoList
	lm.SetFilteringEnabled(false)
	lm.Styles.Title = ui.Current().Title
	lm.SetStatusBarItemName("item", "items")
	extra := func() []key.Binding {
		return []key.Binding{togBind, delBind, addBind, editBind, undoBind, allBind}
	}
	lm.AdditionalShortHelpKeys = extra
	lm.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{todos: l, list: lm, ti: ti, width: 80, height: 24}
	m.sync()
	return m
}

// Changed reports whether the list was modified.
func (m Model) Changed() bool { return m.changed }

// List returns the list being edited.
func (m Model) List() *model.TodoList { return m.todos }

// sync rebuilds the widget rows and header from the TodoList.
func (m *Model) sync() {
	items := make([]list.Item, 0, m.todos.Size())
	m.todos.Each(func(t *model.Todo) {
		items = append(items, listItem{todo: t})
	})
	m.list.SetItems(items)
	m.list.Title = ui.Header(m.todos)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if m.mode != browsing {
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	i := m.list.Index()
	switch km.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		if t, err := m.todos.ItemAt(i); err == nil {
			if t.IsDone() {
				_ = m.todos.MarkUndoneAt(i)
			} else {
				_ = m.todos.MarkDoneAt(i)
			}
			m.touch()
		}
		return m, nil
	case "A":
		if m.todos.IsDone() {
			m.todos.MarkAllUndone()
		} else {
			m.todos.MarkAllDone()
		}
		m.touch()
		return m, nil
	case "d":
		before := m.todos.ToSlice()
		if t, err := m.todos.RemoveAt(i); err == nil {
			m.undone = removedFrom(before, t)
			m.undoCursor = i
			m.touch()
			m.list.Select(min(i, max(m.todos.Size()-1, 0)))
		}
		return m, nil
	case "u":
		if len(m.undone) == 0 {
			return m, nil
		}
		// ascending inserts put each todo back at its old position
		for _, r := range m.undone {
			_ = m.todos.InsertAt(min(r.index, m.todos.Size()), r.todo)
		}
		m.undone = nil
		m.touch()
		m.list.Select(min(m.undoCursor, max(m.todos.Size()-1, 0)))
		return m, nil
	case "a":
		m.startInput(adding, "", "New item title...")
		return m, textinput.Blink
	case "e":
		if t, err := m.todos.ItemAt(i); err == nil {
			m.startInput(editing, t.Title, "Edit item title...")
			m.ti.CursorEnd()
			return m, textinput.Blink
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// removedFrom lists the todos of before that a RemoveAt of t dropped, in
// ascending position order.
func removedFrom(before []*model.Todo, t *model.Todo) []removal {
	var out []removal
	for i, it := range before {
		if it.Equal(t) {
			out = append(out, removal{index: i, todo: it})
		}
	}
	return out
}

func (m *Model) startInput(md mode, value, placeholder string) {
	m.mode = md
	m.inputErr = ""
	m.ti.SetValue(value)
	m.ti.Placeholder = placeholder
	m.ti.Focus()
	m.resize()
}

func (m *Model) stopInput() {
	m.mode = browsing
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			i := m.list.Index()
			switch m.mode {
			case adding:
				at := min(i+1, m.todos.Size())
				if err := m.todos.InsertAt(at, model.New(title)); err != nil {
					m.inputErr = err.Error()
					return m, nil
				}
				m.list.Select(at)
			case editing:
				if t, err := m.todos.ItemAt(i); err == nil {
					t.Title = title
				}
			}
			m.touch()
			m.stopInput()
			return m, nil
		case "esc":
			m.stopInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) touch() {
	m.changed = true
	m.sync()
}

func (m *Model) resize() {
	h := m.height - 4
	if m.mode != browsing {
		h -= 2
	}
	m.list.SetSize(max(m.width-4, 10), max(h, 3))
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != browsing {
		title := "Add new item"
		if m.mode == editing {
			title = "Edit item"
		}
		if m.inputErr != "" {
			title += " - " + ui.Current().Error.Render(m.inputErr)
		}
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.PanelString(content)
}

// Run starts the editor on l in the alternate screen and reports whether l
// was modified.
func Run(l *model.TodoList) (bool, error) {
	p := tea.NewProgram(New(l), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.Changed(), nil
}
