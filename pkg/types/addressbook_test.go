package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressBookAddFindDelete(t *testing.T) {
	ab := NewAddressBook()
	r := mustRecord(t, "John Smith")

	require.NoError(t, ab.Add(r))
	assert.Equal(t, 1, ab.Len())

	found, err := ab.Find("John Smith")
	require.NoError(t, err)
	assert.Same(t, r, found)

	// Lookup trims but stays case-sensitive.
	found, err = ab.Find("  John Smith ")
	require.NoError(t, err)
	assert.Same(t, r, found)

	_, err = ab.Find("john smith")
	assert.ErrorIs(t, err, ErrContactNotFound)

	// Duplicate name rejected.
	dup := mustRecord(t, "John Smith")
	assert.ErrorIs(t, ab.Add(dup), ErrDuplicateContact)
	assert.Equal(t, 1, ab.Len())

	require.NoError(t, ab.Delete("John Smith"))
	_, err = ab.Find("John Smith")
	assert.ErrorIs(t, err, ErrContactNotFound)
	assert.ErrorIs(t, ab.Delete("John Smith"), ErrContactNotFound)
}

func TestAddressBookRecordsSortedByName(t *testing.T) {
	ab := NewAddressBook()
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		require.NoError(t, ab.Add(mustRecord(t, name)))
	}

	var names []string
	for _, r := range ab.Records() {
		names = append(names, r.Name().String())
	}
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
}

func TestAddressBookSearch(t *testing.T) {
	ab := NewAddressBook()

	john := mustRecord(t, "John Smith")
	require.NoError(t, john.AddPhone("1234567890"))
	require.NoError(t, john.SetEmail("john@mail.com"))
	require.NoError(t, ab.Add(john))

	jane := mustRecord(t, "Jane Doe")
	require.NoError(t, jane.AddPhone("5550001111"))
	require.NoError(t, ab.Add(jane))

	johnny := mustRecord(t, "Aaron Johnson")
	require.NoError(t, ab.Add(johnny))

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name substring case-insensitive", query: "john", want: []string{"Aaron Johnson", "John Smith"}},
		{name: "upper case query", query: "JOHN", want: []string{"Aaron Johnson", "John Smith"}},
		{name: "phone prefix", query: "1234", want: []string{"John Smith"}},
		{name: "formatted phone query", query: "555-000", want: []string{"Jane Doe"}},
		{name: "email substring", query: "john@", want: []string{"John Smith"}},
		{name: "no match is empty not error", query: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, r := range ab.Search(tt.query) {
				names = append(names, r.Name().String())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
