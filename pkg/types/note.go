package types

import (
	"fmt"
	"strings"
)

// Note is a titled piece of free text with a set of unique tags. The title
// is the note's key within its NoteBook and never changes; tags keep their
// insertion order for reproducible display.
type Note struct {
	title   string
	content string
	tags    []Tag
}

// NewNote creates a note. The title must be non-empty after trimming; every
// tag is validated before the note is returned.
func NewNote(title, content string, tags ...string) (*Note, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return nil, newValidationError(FieldTitle, title, "must not be empty")
	}
	n := &Note{title: t, content: content}
	for _, raw := range tags {
		if err := n.AddTag(raw); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Title returns the note's title.
func (n *Note) Title() string {
	return n.title
}

// Content returns the note's content.
func (n *Note) Content() string {
	return n.content
}

// SetContent replaces the note's content.
func (n *Note) SetContent(content string) {
	n.content = content
}

// Tags returns the tags in insertion order.
func (n *Note) Tags() []Tag {
	out := make([]Tag, len(n.tags))
	copy(out, n.tags)
	return out
}

// TagCount returns the number of tags.
func (n *Note) TagCount() int {
	return len(n.tags)
}

// AddTag validates and appends a tag. Adding an already-present tag is a
// no-op.
func (n *Note) AddTag(raw string) error {
	t, err := NewTag(raw)
	if err != nil {
		return err
	}
	if n.hasTag(t) {
		return nil
	}
	n.tags = append(n.tags, t)
	return nil
}

// RemoveTag removes a tag. Returns ErrTagNotFound if the normalized tag is
// not present.
func (n *Note) RemoveTag(raw string) error {
	t, err := NewTag(raw)
	if err != nil {
		return err
	}
	for i, existing := range n.tags {
		if existing == t {
			n.tags = append(n.tags[:i], n.tags[i+1:]...)
			return nil
		}
	}
	return ErrTagNotFound
}

func (n *Note) hasTag(t Tag) bool {
	for _, existing := range n.tags {
		if existing == t {
			return true
		}
	}
	return false
}

// String renders the note with a content preview and displayed tags.
func (n *Note) String() string {
	preview := n.content
	if len(preview) > 50 {
		preview = preview[:50] + "..."
	}

	tags := "No tags"
	if len(n.tags) > 0 {
		displayed := make([]string, len(n.tags))
		for i, t := range n.tags {
			displayed[i] = t.Display()
		}
		tags = strings.Join(displayed, ", ")
	}
	return fmt.Sprintf("Note: %q\nContent: %s\nTags: %s", n.title, preview, tags)
}
