package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, name string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	return r
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord("John Smith")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", r.Name().String())
	assert.Empty(t, r.Phones())

	_, err = NewRecord("   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordAddPhone(t *testing.T) {
	r := mustRecord(t, "John")

	require.NoError(t, r.AddPhone("123-456-7890"))
	require.NoError(t, r.AddPhone("0987654321"))

	phones := r.Phones()
	require.Len(t, phones, 2)
	assert.Equal(t, "1234567890", phones[0].String(), "insertion order preserved")
	assert.Equal(t, "0987654321", phones[1].String())

	// Duplicate detection works on the normalized form.
	err := r.AddPhone("(123) 456-7890")
	assert.ErrorIs(t, err, ErrDuplicatePhone)
	assert.Len(t, r.Phones(), 2, "failed add must not change the record")

	err = r.AddPhone("not-a-phone")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordRemovePhone(t *testing.T) {
	r := mustRecord(t, "John")
	require.NoError(t, r.AddPhone("1234567890"))

	assert.ErrorIs(t, r.RemovePhone("0987654321"), ErrPhoneNotFound)
	assert.ErrorIs(t, r.RemovePhone("junk"), ErrValidation)

	require.NoError(t, r.RemovePhone("123 456 7890"))
	assert.Empty(t, r.Phones())
}

func TestRecordEditPhone(t *testing.T) {
	tests := []struct {
		name    string
		phones  []string
		oldRaw  string
		newRaw  string
		wantErr error
		want    []string
	}{
		{
			name:   "replace keeps position",
			phones: []string{"1111111111", "2222222222"},
			oldRaw: "1111111111",
			newRaw: "3333333333",
			want:   []string{"3333333333", "2222222222"},
		},
		{
			name:    "old absent",
			phones:  []string{"1111111111"},
			oldRaw:  "9999999999",
			newRaw:  "3333333333",
			wantErr: ErrPhoneNotFound,
		},
		{
			name:    "new already present",
			phones:  []string{"1111111111", "2222222222"},
			oldRaw:  "1111111111",
			newRaw:  "2222222222",
			wantErr: ErrDuplicatePhone,
		},
		{
			name:   "same number is a no-op",
			phones: []string{"1111111111"},
			oldRaw: "1111111111",
			newRaw: "111-111-1111",
			want:   []string{"1111111111"},
		},
		{
			name:    "malformed new",
			phones:  []string{"1111111111"},
			oldRaw:  "1111111111",
			newRaw:  "12345",
			wantErr: ErrValidation,
		},
		{
			name:    "malformed old",
			phones:  []string{"1111111111"},
			oldRaw:  "12345",
			newRaw:  "2222222222",
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRecord(t, "John")
			for _, p := range tt.phones {
				require.NoError(t, r.AddPhone(p))
			}

			err := r.EditPhone(tt.oldRaw, tt.newRaw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				got := r.Phones()
				require.Len(t, got, len(tt.phones), "failed edit must not change the record")
				return
			}

			require.NoError(t, err)
			got := make([]string, 0, len(r.Phones()))
			for _, p := range r.Phones() {
				got = append(got, p.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordEditPhoneAfterRemovingOnlyPhone(t *testing.T) {
	r := mustRecord(t, "John")
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.RemovePhone("1234567890"))

	err := r.EditPhone("1234567890", "0987654321")
	assert.ErrorIs(t, err, ErrPhoneNotFound)
}

func TestRecordEmail(t *testing.T) {
	r := mustRecord(t, "John")

	_, ok := r.Email()
	assert.False(t, ok)

	require.NoError(t, r.SetEmail("john@mail.com"))
	e, ok := r.Email()
	require.True(t, ok)
	assert.Equal(t, "john@mail.com", e.String())

	// Overwrite.
	require.NoError(t, r.SetEmail("john@work.com"))
	e, _ = r.Email()
	assert.Equal(t, "john@work.com", e.String())

	// Malformed input leaves the existing value.
	assert.ErrorIs(t, r.SetEmail("nope"), ErrValidation)
	e, ok = r.Email()
	require.True(t, ok)
	assert.Equal(t, "john@work.com", e.String())

	r.ClearEmail()
	_, ok = r.Email()
	assert.False(t, ok)
	r.ClearEmail() // clearing again is a no-op
}

func TestRecordAddress(t *testing.T) {
	r := mustRecord(t, "John")

	require.NoError(t, r.SetAddress("  12 Main St  "))
	addr, ok := r.Address()
	require.True(t, ok)
	assert.Equal(t, "12 Main St", addr)

	assert.ErrorIs(t, r.SetAddress("   "), ErrValidation)

	r.ClearAddress()
	_, ok = r.Address()
	assert.False(t, ok)
}

func TestRecordBirthday(t *testing.T) {
	r := mustRecord(t, "John")

	require.NoError(t, r.SetBirthday("15.06.1990"))
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.06.1990", b.String())

	// Same value is idempotent, different value overwrites.
	require.NoError(t, r.SetBirthday("15.06.1990"))
	require.NoError(t, r.SetBirthday("01.01.1985"))
	b, _ = r.Birthday()
	assert.Equal(t, "01.01.1985", b.String())

	assert.ErrorIs(t, r.SetBirthday("99.99.9999"), ErrValidation)

	r.ClearBirthday()
	_, ok = r.Birthday()
	assert.False(t, ok)
	r.ClearBirthday()
}

func TestRecordString(t *testing.T) {
	r := mustRecord(t, "John")
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("0987654321"))
	require.NoError(t, r.SetBirthday("15.06.1990"))
	require.NoError(t, r.SetEmail("john@mail.com"))
	require.NoError(t, r.SetAddress("12 Main St"))

	got := r.String()
	assert.Equal(t, "Contact name: John, phones: 1234567890; 0987654321, birthday: 15.06.1990, email: john@mail.com, address: 12 Main St", got)

	bare := mustRecord(t, "Jane")
	assert.Equal(t, "Contact name: Jane, phones: ", bare.String())
}
