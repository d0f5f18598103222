package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNote(t *testing.T, title, content string, tags ...string) *Note {
	t.Helper()
	n, err := NewNote(title, content, tags...)
	require.NoError(t, err)
	return n
}

func TestNewNote(t *testing.T) {
	n, err := NewNote("  Shopping  ", "milk, eggs", "#Groceries", "weekly")
	require.NoError(t, err)
	assert.Equal(t, "Shopping", n.Title())
	assert.Equal(t, "milk, eggs", n.Content())

	tags := n.Tags()
	require.Len(t, tags, 2)
	assert.Equal(t, "groceries", tags[0].String())
	assert.Equal(t, "weekly", tags[1].String())

	_, err = NewNote("", "content")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewNote("Title", "content", "bad tag")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNoteAddTag(t *testing.T) {
	n := mustNote(t, "T", "")

	require.NoError(t, n.AddTag("work"))
	require.NoError(t, n.AddTag("home"))

	// Idempotent across normalization.
	require.NoError(t, n.AddTag("#WORK"))
	require.Equal(t, 2, n.TagCount())

	tags := n.Tags()
	assert.Equal(t, "work", tags[0].String(), "insertion order preserved")
	assert.Equal(t, "home", tags[1].String())

	assert.ErrorIs(t, n.AddTag(""), ErrValidation)
}

func TestNoteRemoveTag(t *testing.T) {
	n := mustNote(t, "T", "", "work", "home")

	require.NoError(t, n.RemoveTag("#Work"))
	assert.Equal(t, 1, n.TagCount())

	assert.ErrorIs(t, n.RemoveTag("work"), ErrTagNotFound)
	assert.ErrorIs(t, n.RemoveTag("  "), ErrValidation)
}

func TestNoteString(t *testing.T) {
	short := mustNote(t, "T", "hello", "a", "b")
	assert.Equal(t, "Note: \"T\"\nContent: hello\nTags: #a, #b", short.String())

	long := mustNote(t, "L", strings.Repeat("x", 60))
	assert.Contains(t, long.String(), strings.Repeat("x", 50)+"...")

	bare := mustNote(t, "B", "")
	assert.Contains(t, bare.String(), "No tags")
}
