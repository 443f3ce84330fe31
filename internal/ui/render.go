package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todolist/internal/model"
)

const maxTitleWidth = 80

// Header renders the list title with done/pending/total counts.
func Header(l *model.TodoList) string {
	d, p := l.Counts()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		current.Title.Render(l.Title),
		current.Success.Render(current.SymDone), d,
		current.Pending.Render(current.SymPending), p,
		current.Accent.Render("Total"), l.Size(),
	)
}

// Lines renders the whole list view: header, progress bar and items,
// optionally grouped by status.
func Lines(l *model.TodoList, group bool) []string {
	d, _ := l.Counts()
	lines := []string{
		Header(l),
		current.Muted.Render(ProgressBar(d, l.Size(), 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(l)...)
	} else {
		lines = append(lines, itemLines(l, nil)...)
	}
	lines = append(lines, "")
	lines = append(lines, current.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	return lines
}

// Item renders one todo as a themed checkbox line.
func Item(t *model.Todo) string {
	box := current.Muted.Render(current.BoxUnchecked)
	// cut on cell width so multibyte runes stay whole
	title := ansi.Truncate(t.Title, maxTitleWidth, "...")
	if t.IsDone() {
		box = current.Success.Render(current.BoxChecked)
		title = current.Done.Render(title)
	}
	return box + " " + title
}

// itemLines numbers todos by their 1-based position in the full list so
// the numbers can be passed back to index commands.
func itemLines(l *model.TodoList, keep func(*model.Todo) bool) []string {
	var out []string
	for i, t := range l.All() {
		if keep != nil && !keep(t) {
			continue
		}
		idx := current.Muted.Render(fmt.Sprintf("%2d.", i+1))
		out = append(out, idx+" "+Item(t))
	}
	if len(out) == 0 {
		return []string{current.Muted.Render("(none)")}
	}
	return out
}

func groupLines(l *model.TodoList) []string {
	var lines []string
	lines = append(lines, current.Accent.Render("Pending"))
	lines = append(lines, itemLines(l, func(t *model.Todo) bool { return !t.IsDone() })...)
	lines = append(lines, "")
	lines = append(lines, current.Accent.Render("Done"))
	lines = append(lines, itemLines(l, (*model.Todo).IsDone)...)
	return lines
}
