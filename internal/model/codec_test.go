package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJSON(t *testing.T) {
	l := NewList("Today's Todos")
	require.NoError(t, l.Add(New("Buy milk", "2 litres")))
	require.NoError(t, l.Add(New("Clean room")))
	require.NoError(t, l.MarkDoneAt(1))

	bs, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Today's Todos","todos":[
		{"title":"Buy milk","description":"2 litres","done":false},
		{"title":"Clean room","done":true}]}`, string(bs))

	var got TodoList
	require.NoError(t, json.Unmarshal(bs, &got))
	assert.Equal(t, l.String(), got.String())
	assert.True(t, got.First().Equal(l.First()))
}

func TestListJSONEmpty(t *testing.T) {
	bs, err := json.Marshal(NewList("none"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"none","todos":[]}`, string(bs))
}

func TestListJSONTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"String", `{"title":"x","todos":[{"title":"a"},"b"]}`},
		{"Number", `{"title":"x","todos":[1]}`},
		{"Array", `{"title":"x","todos":[[{"title":"a"}]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList("keep")
			require.NoError(t, l.Add(New("old")))

			err := json.Unmarshal([]byte(tt.doc), l)
			assert.ErrorIs(t, err, ErrTypeMismatch)
			assert.Equal(t, "keep", l.Title)
			assert.Equal(t, 1, l.Size())
		})
	}
}

func TestListJSONBadField(t *testing.T) {
	l := NewList("keep")
	err := json.Unmarshal([]byte(`{"title":"x","todos":[{"title":1}]}`), l)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, "keep", l.Title)
}

func TestListJSONNoTitle(t *testing.T) {
	l := NewList("Today's Todos")
	require.NoError(t, json.Unmarshal([]byte(`{"todos":[{"title":"a"}]}`), l))
	assert.Equal(t, "Today's Todos", l.Title)
	assert.Equal(t, 1, l.Size())

	// an explicit empty title is kept as written
	require.NoError(t, json.Unmarshal([]byte(`{"title":"","todos":[]}`), l))
	assert.Equal(t, "", l.Title)
}
