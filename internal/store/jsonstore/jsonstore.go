package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todolist/internal/model"
)

// JSON-backed storage for a single list. Single file, human-readable.
// No locking; fine for a local single-user CLI.

// DefaultFileName is used when no path is configured.
const DefaultFileName = "todos.json"

// Store reads and writes one list document.
type Store struct {
	Path string
	// Title names a list loaded from a file that carries no title: a missing
	// file, a document without a "title" key, or the bare array written by
	// older versions.
	Title string
}

// New returns a store for path, resolved against the working directory
// when relative.
func New(path, title string) (*Store, error) {
	if path == "" {
		path = DefaultFileName
	}
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, path)
	}
	return &Store{Path: path, Title: title}, nil
}

// Load reads the list. A missing file yields an empty list.
func (s *Store) Load() (*model.TodoList, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewList(s.Title), nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return s.loadLegacy(b)
	}

	l := model.NewList(s.Title)
	if err := json.Unmarshal(b, l); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return l, nil
}

func (s *Store) loadLegacy(b []byte) (*model.TodoList, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	todos, err := model.DecodeTodos(raw)
	if err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	l := model.NewList(s.Title)
	for _, t := range todos {
		if err := l.Add(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Save writes the list, replacing the file.
func (s *Store) Save(l *model.TodoList) error {
	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.Path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
