package logger

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"", DefaultLevel},
		{"loud", DefaultLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l := New(tt.in, &bytes.Buffer{})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", &buf)
	l.Debug().Msg("hidden")
	l.Warn().Str("file", "todos.json").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "file=todos.json")
}

func TestErrorWithStack(t *testing.T) {
	var buf bytes.Buffer
	ErrorWithStack(New("debug", &buf), errors.New("boom"), "save")
	assert.Contains(t, buf.String(), "save: boom")
	assert.Contains(t, buf.String(), "TestErrorWithStack")
}
