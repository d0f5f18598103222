// JSON snapshot structures and conversions. The same DTOs back both the
// phones/tags columns in SQLite and the satchel export/import commands.
package sqlite

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// contactJSON mirrors one contact record in the snapshot format.
type contactJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// noteJSON mirrors one note in the snapshot format.
type noteJSON struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// snapshotJSON is the self-describing document written by ExportJSON.
type snapshotJSON struct {
	Contacts []contactJSON `json:"contacts"`
	Notes    []noteJSON    `json:"notes"`
}

// contactToJSON renders a record into its snapshot form.
func contactToJSON(r *types.Record) contactJSON {
	phones := r.Phones()
	c := contactJSON{
		Name:   r.Name().String(),
		Phones: make([]string, len(phones)),
	}
	for i, p := range phones {
		c.Phones[i] = p.String()
	}
	if e, ok := r.Email(); ok {
		c.Email = e.String()
	}
	if a, ok := r.Address(); ok {
		c.Address = a
	}
	if b, ok := r.Birthday(); ok {
		c.Birthday = b.String()
	}
	return c
}

// recordFromJSON rebuilds a record through the validating constructors.
// Stored values that no longer validate surface as errors for the caller
// to absorb or report.
func recordFromJSON(c contactJSON) (*types.Record, error) {
	r, err := types.NewRecord(c.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if c.Email != "" {
		if err := r.SetEmail(c.Email); err != nil {
			return nil, err
		}
	}
	if c.Address != "" {
		if err := r.SetAddress(c.Address); err != nil {
			return nil, err
		}
	}
	if c.Birthday != "" {
		if err := r.SetBirthday(c.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// noteToJSON renders a note into its snapshot form.
func noteToJSON(n *types.Note) noteJSON {
	tags := n.Tags()
	j := noteJSON{
		Title:   n.Title(),
		Content: n.Content(),
		Tags:    make([]string, len(tags)),
	}
	for i, t := range tags {
		j.Tags[i] = t.String()
	}
	return j
}

// noteFromJSON rebuilds a note through the validating constructors.
func noteFromJSON(j noteJSON) (*types.Note, error) {
	return types.NewNote(j.Title, j.Content, j.Tags...)
}

// ExportJSON writes the full pair as an indented JSON document.
func ExportJSON(w io.Writer, book *types.AddressBook, notes *types.NoteBook) error {
	snap := snapshotJSON{
		Contacts: make([]contactJSON, 0, book.Len()),
		Notes:    make([]noteJSON, 0, notes.Len()),
	}
	for _, r := range book.Records() {
		snap.Contacts = append(snap.Contacts, contactToJSON(r))
	}
	for _, n := range notes.Notes() {
		snap.Notes = append(snap.Notes, noteToJSON(n))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return &types.PersistenceError{Op: "export snapshot", Err: err}
	}
	return nil
}

// ImportJSON reads a document produced by ExportJSON. Unlike Store.Load,
// import is an explicit user action, so malformed input is an error rather
// than an empty result.
func ImportJSON(r io.Reader) (*types.AddressBook, *types.NoteBook, error) {
	var snap snapshotJSON
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, nil, fmt.Errorf("decode snapshot: %w", err)
	}

	book := types.NewAddressBook()
	for _, c := range snap.Contacts {
		record, err := recordFromJSON(c)
		if err != nil {
			return nil, nil, fmt.Errorf("contact %q: %w", c.Name, err)
		}
		if err := book.Add(record); err != nil {
			return nil, nil, fmt.Errorf("contact %q: %w", c.Name, err)
		}
	}

	notes := types.NewNoteBook()
	for _, j := range snap.Notes {
		note, err := noteFromJSON(j)
		if err != nil {
			return nil, nil, fmt.Errorf("note %q: %w", j.Title, err)
		}
		if err := notes.Add(note); err != nil {
			return nil, nil, fmt.Errorf("note %q: %w", j.Title, err)
		}
	}
	return book, notes, nil
}
