// Shared helpers for satchel CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/satchel/internal/sqlite"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// attachStore resolves the data directory, creates a SQLite store, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore(sqlite.WithLogger(logger))
	if err := store.Attach(types.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// updateSnapshot attaches the store, loads the pair, applies fn, and saves
// the result when fn succeeds. fn returns the confirmation message printed
// on success. When saving fails the mutation is reported as not durable and
// the error carries the persistence kind.
func updateSnapshot(fn func(book *types.AddressBook, notes *types.NoteBook) (string, error)) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	book, notes, err := store.Load()
	if err != nil {
		return err
	}

	msg, err := fn(book, notes)
	if err != nil {
		return err
	}

	if err := store.Save(book, notes); err != nil {
		return fmt.Errorf("changes were not saved: %w", err)
	}
	fmt.Println(msg)
	return nil
}

// readSnapshot attaches the store, loads the pair, and applies fn without
// saving anything back.
func readSnapshot(fn func(book *types.AddressBook, notes *types.NoteBook) error) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	book, notes, err := store.Load()
	if err != nil {
		return err
	}
	return fn(book, notes)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// contactView is the --json shape of one contact.
type contactView struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

func newContactView(r *types.Record) contactView {
	phones := r.Phones()
	v := contactView{
		Name:   r.Name().String(),
		Phones: make([]string, len(phones)),
	}
	for i, p := range phones {
		v.Phones[i] = p.String()
	}
	if e, ok := r.Email(); ok {
		v.Email = e.String()
	}
	if a, ok := r.Address(); ok {
		v.Address = a
	}
	if b, ok := r.Birthday(); ok {
		v.Birthday = b.String()
	}
	return v
}

func newContactViews(records []*types.Record) []contactView {
	out := make([]contactView, len(records))
	for i, r := range records {
		out[i] = newContactView(r)
	}
	return out
}

// noteView is the --json shape of one note.
type noteView struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func newNoteView(n *types.Note) noteView {
	tags := n.Tags()
	v := noteView{
		Title:   n.Title(),
		Content: n.Content(),
		Tags:    make([]string, len(tags)),
	}
	for i, t := range tags {
		v.Tags[i] = t.Display()
	}
	return v
}

func newNoteViews(notes []*types.Note) []noteView {
	out := make([]noteView, len(notes))
	for i, n := range notes {
		out[i] = newNoteView(n)
	}
	return out
}
