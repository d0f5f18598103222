package types

import "errors"

// Store defines the interface for snapshot persistence. Callers attach to a
// backing file, load the full pair once, save the full pair on demand, and
// detach when done.
type Store interface {
	// Attach connects the store to the data directory described by config.
	// Creates the directory if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backing resources. Idempotent: multiple calls
	// succeed. After Detach, Load and Save return ErrStoreDetached.
	Detach() error

	// Load restores the persisted pair. A missing or unreadable snapshot
	// never fails the caller: corruption is absorbed and empty containers
	// are returned.
	Load() (*AddressBook, *NoteBook, error)

	// Save persists the pair as one snapshot. Fails with a
	// *PersistenceError on unrecoverable I/O conditions, leaving the
	// in-memory state intact.
	Save(book *AddressBook, notes *NoteBook) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
