package types

import (
	"sort"
	"strings"
)

// AddressBook is a collection of contact records keyed by exact name.
// The key is always the record's own (trimmed) name.
type AddressBook struct {
	records map[string]*Record
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts a record. Returns ErrDuplicateContact if a record with the
// same name already exists.
func (ab *AddressBook) Add(r *Record) error {
	key := r.Name().String()
	if _, ok := ab.records[key]; ok {
		return ErrDuplicateContact
	}
	ab.records[key] = r
	return nil
}

// Find returns the record with the exact (trimmed) name.
// Returns ErrContactNotFound if absent.
func (ab *AddressBook) Find(name string) (*Record, error) {
	r, ok := ab.records[strings.TrimSpace(name)]
	if !ok {
		return nil, ErrContactNotFound
	}
	return r, nil
}

// Delete removes the record with the exact (trimmed) name.
// Returns ErrContactNotFound if absent.
func (ab *AddressBook) Delete(name string) error {
	key := strings.TrimSpace(name)
	if _, ok := ab.records[key]; !ok {
		return ErrContactNotFound
	}
	delete(ab.records, key)
	return nil
}

// Len returns the number of records.
func (ab *AddressBook) Len() int {
	return len(ab.records)
}

// Records returns all records sorted by name, for deterministic iteration.
func (ab *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(ab.records))
	for _, r := range ab.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name().String() < out[j].Name().String()
	})
	return out
}

// Search returns the records matching the query, sorted by name. A record
// matches when the query is a case-insensitive substring of its name or
// email, or when the query's digits are a substring of any phone number.
// An empty result is not an error.
func (ab *AddressBook) Search(query string) []*Record {
	q := strings.ToLower(strings.TrimSpace(query))
	qDigits := digitsOf(q)

	var out []*Record
	for _, r := range ab.Records() {
		if ab.matches(r, q, qDigits) {
			out = append(out, r)
		}
	}
	return out
}

func (ab *AddressBook) matches(r *Record, q, qDigits string) bool {
	if strings.Contains(strings.ToLower(r.Name().String()), q) {
		return true
	}
	if e, ok := r.Email(); ok && strings.Contains(strings.ToLower(e.String()), q) {
		return true
	}
	if qDigits == "" {
		return false
	}
	for _, p := range r.Phones() {
		if strings.Contains(p.String(), qDigits) {
			return true
		}
	}
	return false
}

// digitsOf strips everything but ASCII digits, so phone searches compare
// digits against digits regardless of how the query is formatted.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
