package types

import (
	"sort"
	"strings"
)

// Sort criteria accepted by NoteBook.Sorted.
const (
	SortByTitle    = "title"
	SortByTagCount = "tagCount"
)

// NoteBook is a collection of notes keyed by exact title.
type NoteBook struct {
	notes map[string]*Note
}

// NewNoteBook creates an empty note book.
func NewNoteBook() *NoteBook {
	return &NoteBook{notes: make(map[string]*Note)}
}

// Add inserts a note. Returns ErrDuplicateNote if the title already exists.
func (nb *NoteBook) Add(n *Note) error {
	if _, ok := nb.notes[n.Title()]; ok {
		return ErrDuplicateNote
	}
	nb.notes[n.Title()] = n
	return nil
}

// Find returns the note with the exact (trimmed) title.
// Returns ErrNoteNotFound if absent.
func (nb *NoteBook) Find(title string) (*Note, error) {
	n, ok := nb.notes[strings.TrimSpace(title)]
	if !ok {
		return nil, ErrNoteNotFound
	}
	return n, nil
}

// Delete removes the note with the exact (trimmed) title.
// Returns ErrNoteNotFound if absent.
func (nb *NoteBook) Delete(title string) error {
	key := strings.TrimSpace(title)
	if _, ok := nb.notes[key]; !ok {
		return ErrNoteNotFound
	}
	delete(nb.notes, key)
	return nil
}

// EditContent replaces the content of an existing note.
// Returns ErrNoteNotFound if the title is absent.
func (nb *NoteBook) EditContent(title, newContent string) error {
	n, err := nb.Find(title)
	if err != nil {
		return err
	}
	n.SetContent(newContent)
	return nil
}

// AddTags adds one or more tags to an existing note. All tags are validated
// before any is applied, so a malformed tag leaves the note unchanged.
// Already-present tags are skipped.
func (nb *NoteBook) AddTags(title string, raws ...string) error {
	n, err := nb.Find(title)
	if err != nil {
		return err
	}
	for _, raw := range raws {
		if _, err := NewTag(raw); err != nil {
			return err
		}
	}
	for _, raw := range raws {
		if err := n.AddTag(raw); err != nil {
			return err
		}
	}
	return nil
}

// RemoveTag removes a single tag from an existing note. Returns
// ErrNoteNotFound if the title is absent and ErrTagNotFound if the tag is
// not on the note.
func (nb *NoteBook) RemoveTag(title, raw string) error {
	n, err := nb.Find(title)
	if err != nil {
		return err
	}
	return n.RemoveTag(raw)
}

// FindByTag returns all notes carrying the normalized tag, sorted by title.
// An empty result is not an error; a malformed tag is.
func (nb *NoteBook) FindByTag(raw string) ([]*Note, error) {
	t, err := NewTag(raw)
	if err != nil {
		return nil, err
	}
	var out []*Note
	for _, n := range nb.Notes() {
		if n.hasTag(t) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Len returns the number of notes.
func (nb *NoteBook) Len() int {
	return len(nb.notes)
}

// Notes returns all notes sorted by title, for deterministic iteration.
func (nb *NoteBook) Notes() []*Note {
	out := make([]*Note, 0, len(nb.notes))
	for _, n := range nb.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Title() < out[j].Title()
	})
	return out
}

// Sorted returns all notes ordered by the given criterion. SortByTitle is
// lexicographic ascending; SortByTagCount is tag count descending with ties
// broken by title ascending. An unrecognized criterion is a validation
// error.
func (nb *NoteBook) Sorted(criterion string) ([]*Note, error) {
	switch criterion {
	case SortByTitle:
		return nb.Notes(), nil
	case SortByTagCount:
		out := nb.Notes()
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].TagCount() != out[j].TagCount() {
				return out[i].TagCount() > out[j].TagCount()
			}
			return out[i].Title() < out[j].Title()
		})
		return out, nil
	default:
		return nil, newValidationError(FieldParam, criterion, "sort criterion must be title or tagCount")
	}
}
