// Package types defines the satchel data model: validated fields, contact
// records, notes, the AddressBook and NoteBook containers, the Store
// interface, and the closed set of error kinds every operation reports.
// The model layer never logs or prints; callers render results and errors.
package types
