package sqlite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	book, notes := fixturePair(t)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, book, notes))

	gotBook, gotNotes, err := ImportJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, book.Len(), gotBook.Len())
	require.Equal(t, notes.Len(), gotNotes.Len())

	john, err := gotBook.Find("John Smith")
	require.NoError(t, err)
	assert.Equal(t, "Contact name: John Smith, phones: 1234567890; 0987654321, birthday: 15.06.1990, email: john@mail.com, address: 12 Main St", john.String())

	note, err := gotNotes.Find("Shopping")
	require.NoError(t, err)
	assert.Equal(t, "milk, eggs", note.Content())
}

func TestExportJSONShape(t *testing.T) {
	book, notes := fixturePair(t)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, book, notes))

	out := buf.String()
	assert.Contains(t, out, `"contacts"`)
	assert.Contains(t, out, `"notes"`)
	assert.Contains(t, out, `"birthday": "15.06.1990"`)
	// Unset optional fields are omitted entirely.
	assert.NotContains(t, out, `"email": ""`)
}

func TestImportJSONRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "definitely not json"},
		{name: "invalid phone", input: `{"contacts":[{"name":"X","phones":["123"]}],"notes":[]}`},
		{name: "future birthday", input: `{"contacts":[{"name":"X","phones":[],"birthday":"01.01.2999"}],"notes":[]}`},
		{name: "empty note title", input: `{"contacts":[],"notes":[{"title":"","content":"","tags":[]}]}`},
		{name: "duplicate contact", input: `{"contacts":[{"name":"X","phones":[]},{"name":"X","phones":[]}],"notes":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ImportJSON(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestImportJSONEmptyDocument(t *testing.T) {
	book, notes, err := ImportJSON(strings.NewReader(`{"contacts":[],"notes":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
	assert.Equal(t, 0, notes.Len())
}

func TestContactToJSONPreservesInsertionOrder(t *testing.T) {
	r, err := types.NewRecord("Order Test")
	require.NoError(t, err)
	require.NoError(t, r.AddPhone("1111111111"))
	require.NoError(t, r.AddPhone("2222222222"))
	require.NoError(t, r.AddPhone("3333333333"))

	c := contactToJSON(r)
	assert.Equal(t, []string{"1111111111", "2222222222", "3333333333"}, c.Phones)
}
