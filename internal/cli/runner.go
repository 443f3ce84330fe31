package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/todolist/internal/logger"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Store loads and saves the list the commands operate on.
type Store interface {
	Load() (*model.TodoList, error)
	Save(*model.TodoList) error
}

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
	Plain bool // print lists in their plain text form

	Store Store
	Log   zerolog.Logger
	Out   io.Writer
	Err   io.Writer

	// Interactive runs the list editor and reports whether it changed
	// the list. Required by the tui subcommand only.
	Interactive func(*model.TodoList) (bool, error)
}

type runner struct {
	Options
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}
	if len(args) == 0 {
		PrintHelp(opt.Out)
		return 2
	}
	if opt.Store == nil {
		s, err := jsonstore.New(jsonstore.DefaultFileName, "")
		if err != nil {
			ui.Fail(opt.Err, err.Error())
			return 1
		}
		opt.Store = s
	}
	r := runner{opt}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(r.Out)
		return 0

	case "ls":
		return r.view(func(l *model.TodoList) *model.TodoList { return l })
	case "completed":
		return r.view((*model.TodoList).AllDone)
	case "pending":
		return r.view((*model.TodoList).AllNotDone)

	case "add":
		title, desc := splitDescription(a)
		if title == "" {
			r.fail("usage: todo add <title...> [-- description...]")
			return 2
		}
		return r.doAdd(title, desc)

	case "done", "undone", "rm":
		if len(a) != 1 {
			r.fail("usage: todo " + cmd + " <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			r.fail(cmd + ": not a number: " + a[0])
			return 2
		}
		return r.doIndex(cmd, n)

	case "find", "check":
		if len(a) == 0 {
			r.fail("usage: todo " + cmd + " <title...>")
			return 2
		}
		title := strings.Join(a, " ")
		if cmd == "find" {
			return r.doFind(title)
		}
		return r.doCheck(title)

	case "all-done":
		return r.mutate(func(l *model.TodoList) (bool, int) {
			l.MarkAllDone()
			ui.OK(r.Out, "all done")
			return true, 0
		})
	case "all-undone":
		return r.mutate(func(l *model.TodoList) (bool, int) {
			l.MarkAllUndone()
			ui.OK(r.Out, "all undone")
			return true, 0
		})

	case "shift":
		return r.doTake("shift", (*model.TodoList).Shift)
	case "pop":
		return r.doTake("pop", (*model.TodoList).Pop)

	case "tui":
		if r.Interactive == nil {
			r.fail("tui: not available")
			return 1
		}
		return r.mutate(func(l *model.TodoList) (bool, int) {
			changed, err := r.Interactive(l)
			if err != nil {
				r.fail("tui: " + err.Error())
				return false, 1
			}
			if changed {
				ui.OK(r.Out, "saved")
			}
			return changed, 0
		})
	}

	r.fail("unknown subcommand: " + cmd)
	fmt.Fprintln(r.Err)
	PrintHelp(r.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny todo list

Usage:
  todo [flags] <subcommand> [args]

Flags:
  -group             group list output by pending/done
  -plain             print lists as plain text
  -file <path>       data file (default $TODO_FILE or todos.json)
  -theme <name>      classic, neon or mono
  -color             force colors even when not on a terminal
  -no-color          disable colors (wins over -color)

Subcommands:
  ls                 List items
  add <title...>     Add an item; words after "--" become its description
  done <index>       Mark item at 1-based index done
  undone <index>     Mark item at 1-based index not done
  rm <index>         Remove item at 1-based index (and any identical items)
  find <title>       Show the item with this title (case-insensitive)
  check <title>      Mark the item with this title done
  all-done           Mark every item done
  all-undone         Mark every item not done
  completed          List done items
  pending            List items not done yet
  shift              Remove and show the first item
  pop                Remove and show the last item
  tui                Edit the list interactively

Examples:
  todo add "Buy milk"
  todo add Clean room -- kitchen and hallway
  todo ls
  todo done 2
  todo check "buy milk"
  todo rm 3
`)
}

// -------------- subcommand impls ----------------

var indexMessages = map[string]string{
	"done":   "marked done",
	"undone": "marked undone",
	"rm":     "removed",
}

func (r runner) load() (*model.TodoList, bool) {
	l, err := r.Store.Load()
	if err != nil {
		logger.ErrorWithStack(r.Log, err, "load")
		r.fail("load: " + err.Error())
		return nil, false
	}
	r.Log.Debug().Str("list", l.Title).Int("items", l.Size()).Msg("loaded")
	return l, true
}

// mutate loads the list, applies fn and saves when fn reports a change.
func (r runner) mutate(fn func(l *model.TodoList) (changed bool, code int)) int {
	l, ok := r.load()
	if !ok {
		return 1
	}
	changed, code := fn(l)
	if !changed {
		return code
	}
	if err := r.Store.Save(l); err != nil {
		logger.ErrorWithStack(r.Log, err, "save")
		r.fail("save: " + err.Error())
		return 1
	}
	r.Log.Debug().Int("items", l.Size()).Msg("saved")
	return code
}

func (r runner) view(pick func(*model.TodoList) *model.TodoList) int {
	l, ok := r.load()
	if !ok {
		return 1
	}
	r.render(l, pick(l))
	return 0
}

func (r runner) render(full, shown *model.TodoList) {
	if r.Plain {
		fmt.Fprintln(r.Out, shown.String())
		return
	}
	if shown == full {
		ui.Panel(r.Out, ui.Lines(full, r.Group))
		return
	}
	lines := []string{ui.Header(shown), ""}
	shown.Each(func(t *model.Todo) { lines = append(lines, ui.Item(t)) })
	if shown.Size() == 0 {
		lines = append(lines, ui.Current().Muted.Render("(none)"))
	}
	ui.Panel(r.Out, lines)
}

func (r runner) doAdd(title, desc string) int {
	return r.mutate(func(l *model.TodoList) (bool, int) {
		if err := l.Add(model.New(title, desc)); err != nil {
			r.fail("add: " + err.Error())
			return false, 1
		}
		r.Log.Debug().Str("title", title).Msg("added")
		ui.OK(r.Out, "added")
		return true, 0
	})
}

func (r runner) doIndex(cmd string, userIndex int) int {
	return r.mutate(func(l *model.TodoList) (bool, int) {
		idx := userIndex - 1
		var err error
		switch cmd {
		case "done":
			err = l.MarkDoneAt(idx)
		case "undone":
			err = l.MarkUndoneAt(idx)
		case "rm":
			_, err = l.RemoveAt(idx)
		}
		if errors.Is(err, model.ErrIndexOutOfRange) {
			r.fail(fmt.Sprintf("index out of range: have %d, got %d", l.Size(), userIndex))
			fmt.Fprintln(r.Err, ui.Current().Muted.Render("Hint: run `todo ls` to see valid indexes"))
			return false, 2
		}
		if err != nil {
			r.fail(cmd + ": " + err.Error())
			return false, 1
		}
		r.Log.Debug().Str("cmd", cmd).Int("index", idx).Msg("updated")
		ui.OK(r.Out, indexMessages[cmd])
		return true, 0
	})
}

func (r runner) doFind(title string) int {
	l, ok := r.load()
	if !ok {
		return 1
	}
	t := l.FindByTitle(title)
	if t == nil {
		r.fail("not found: " + title)
		return 1
	}
	fmt.Fprintln(r.Out, t.String())
	if t.Description != "" {
		fmt.Fprintln(r.Out, "    "+t.Description)
	}
	return 0
}

func (r runner) doCheck(title string) int {
	return r.mutate(func(l *model.TodoList) (bool, int) {
		if !l.MarkDone(title) {
			r.fail("not found: " + title)
			return false, 1
		}
		ui.OK(r.Out, "marked done")
		return true, 0
	})
}

func (r runner) doTake(cmd string, take func(*model.TodoList) *model.Todo) int {
	return r.mutate(func(l *model.TodoList) (bool, int) {
		t := take(l)
		if t == nil {
			r.fail(cmd + ": list is empty")
			return false, 1
		}
		fmt.Fprintln(r.Out, t.String())
		return true, 0
	})
}

func (r runner) fail(msg string) {
	r.Log.Debug().Msg(msg)
	ui.Fail(r.Err, msg)
}

// splitDescription splits "title words -- description words".
func splitDescription(args []string) (title, desc string) {
	if i := slices.Index(args, "--"); i >= 0 {
		return strings.TrimSpace(strings.Join(args[:i], " ")),
			strings.TrimSpace(strings.Join(args[i+1:], " "))
	}
	return strings.TrimSpace(strings.Join(args, " ")), ""
}
