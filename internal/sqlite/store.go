package sqlite

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// dbFileName is the snapshot file created inside the data directory.
const dbFileName = "satchel.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements the types.Store interface on a single SQLite database
// file. The database holds one whole snapshot of the AddressBook/NoteBook
// pair; Save rewrites it in one transaction, Load reads it back through the
// validating constructors.
type Store struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load/save diagnostics.
// The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates an unattached store; call Attach with a Config to open
// the snapshot file.
func NewStore(opts ...Option) *Store {
	s := &Store{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach opens the snapshot database under the configured data directory,
// creating the directory and schema as needed. A snapshot file that cannot
// be opened or initialized is treated as absent: it is moved aside and a
// fresh one is created, so prior corruption never fails the caller.
// Returns ErrAlreadyAttached if called while attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return &types.PersistenceError{Op: "create data directory", Err: err}
	}

	dbPath := filepath.Join(config.DataDir, dbFileName)
	db, err := openSnapshot(dbPath)
	if err != nil {
		s.logger.Warn("snapshot unreadable, starting empty",
			zap.String("path", dbPath), zap.Error(err))
		if err := os.Rename(dbPath, dbPath+".corrupt"); err != nil && !os.IsNotExist(err) {
			return &types.PersistenceError{Op: "move corrupt snapshot aside", Err: err}
		}
		db, err = openSnapshot(dbPath)
		if err != nil {
			return &types.PersistenceError{Op: "initialize snapshot", Err: err}
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// openSnapshot opens the database file and applies the schema.
func openSnapshot(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// Detach closes the snapshot database. Idempotent: detaching a detached
// store succeeds. After Detach, Load and Save return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return &types.PersistenceError{Op: "close snapshot", Err: err}
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// Load reads the whole snapshot into fresh containers. Rows that fail to
// scan or no longer pass field validation are skipped, not fatal: corrupt
// data degrades to a smaller (possibly empty) snapshot, never to a failed
// load. The error return is reserved for using a detached store.
func (s *Store) Load() (*types.AddressBook, *types.NoteBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, nil, types.ErrStoreDetached
	}

	book := types.NewAddressBook()
	notes := types.NewNoteBook()

	if err := s.loadContacts(book); err != nil {
		s.logger.Warn("loading contacts failed, starting empty", zap.Error(err))
		book = types.NewAddressBook()
	}
	if err := s.loadNotes(notes); err != nil {
		s.logger.Warn("loading notes failed, starting empty", zap.Error(err))
		notes = types.NewNoteBook()
	}
	return book, notes, nil
}

func (s *Store) loadContacts(book *types.AddressBook) error {
	rows, err := s.db.Query("SELECT name, phones, email, address, birthday FROM contacts")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c contactJSON
		var phones string
		if err := rows.Scan(&c.Name, &phones, &c.Email, &c.Address, &c.Birthday); err != nil {
			s.logger.Warn("skipping unreadable contact row", zap.Error(err))
			continue
		}
		if err := json.Unmarshal([]byte(phones), &c.Phones); err != nil {
			s.logger.Warn("skipping contact with corrupt phones", zap.String("name", c.Name), zap.Error(err))
			continue
		}
		record, err := recordFromJSON(c)
		if err != nil {
			s.logger.Warn("skipping invalid contact", zap.String("name", c.Name), zap.Error(err))
			continue
		}
		if err := book.Add(record); err != nil {
			s.logger.Warn("skipping duplicate contact", zap.String("name", c.Name), zap.Error(err))
		}
	}
	return rows.Err()
}

func (s *Store) loadNotes(notes *types.NoteBook) error {
	rows, err := s.db.Query("SELECT title, content, tags FROM notes")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var j noteJSON
		var tags string
		if err := rows.Scan(&j.Title, &j.Content, &tags); err != nil {
			s.logger.Warn("skipping unreadable note row", zap.Error(err))
			continue
		}
		if err := json.Unmarshal([]byte(tags), &j.Tags); err != nil {
			s.logger.Warn("skipping note with corrupt tags", zap.String("title", j.Title), zap.Error(err))
			continue
		}
		note, err := noteFromJSON(j)
		if err != nil {
			s.logger.Warn("skipping invalid note", zap.String("title", j.Title), zap.Error(err))
			continue
		}
		if err := notes.Add(note); err != nil {
			s.logger.Warn("skipping duplicate note", zap.String("title", j.Title), zap.Error(err))
		}
	}
	return rows.Err()
}

// Save rewrites both tables inside one transaction so the file always holds
// a complete snapshot. On failure the transaction rolls back and a
// *types.PersistenceError is returned; the in-memory pair is untouched.
func (s *Store) Save(book *types.AddressBook, notes *types.NoteBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return &types.PersistenceError{Op: "begin snapshot write", Err: err}
	}
	defer tx.Rollback()

	if err := saveContacts(tx, book); err != nil {
		return &types.PersistenceError{Op: "save contacts", Err: err}
	}
	if err := saveNotes(tx, notes); err != nil {
		return &types.PersistenceError{Op: "save notes", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &types.PersistenceError{Op: "commit snapshot", Err: err}
	}

	s.logger.Debug("snapshot saved",
		zap.Int("contacts", book.Len()), zap.Int("notes", notes.Len()))
	return nil
}

func saveContacts(tx *sql.Tx, book *types.AddressBook) error {
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return err
	}
	for _, r := range book.Records() {
		c := contactToJSON(r)
		phones, err := json.Marshal(c.Phones)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			"INSERT INTO contacts (contact_id, name, phones, email, address, birthday) VALUES (?, ?, ?, ?, ?, ?)",
			newRowID(), c.Name, string(phones), c.Email, c.Address, c.Birthday,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func saveNotes(tx *sql.Tx, notes *types.NoteBook) error {
	if _, err := tx.Exec("DELETE FROM notes"); err != nil {
		return err
	}
	for _, n := range notes.Notes() {
		j := noteToJSON(n)
		tags, err := json.Marshal(j.Tags)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			"INSERT INTO notes (note_id, title, content, tags) VALUES (?, ?, ?, ?)",
			newRowID(), j.Title, j.Content, string(tags),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// newRowID generates a UUID v7 row ID, falling back to v4 if v7 fails.
func newRowID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
