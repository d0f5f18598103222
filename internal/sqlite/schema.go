// Package sqlite implements the SQLite snapshot store for satchel.
package sqlite

// Schema DDL for the snapshot tables. Applied idempotently on every Attach.
const (
	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    contact_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    phones TEXT NOT NULL,
    email TEXT NOT NULL,
    address TEXT NOT NULL,
    birthday TEXT NOT NULL
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    note_id TEXT PRIMARY KEY,
    title TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL,
    tags TEXT NOT NULL
);`
)

// schemaStatements lists all DDL applied by Attach, in order.
var schemaStatements = []string{
	createContacts,
	createNotes,
}
