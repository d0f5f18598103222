package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addContactWithBirthday is shared setup for the scheduler tests. Birthdays
// are validated against a fixed reference so the fixtures never age out.
func addContactWithBirthday(t *testing.T, ab *AddressBook, name, birthday string) {
	t.Helper()
	r := mustRecord(t, name)
	b, err := NewBirthdayAt(birthday, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	r.birthday = &b
	require.NoError(t, ab.Add(r))
}

func TestUpcomingBirthdays(t *testing.T) {
	// 2024-06-10 is a Monday; 2024-06-15 a Saturday, 2024-06-16 a Sunday.
	today := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		within   int
		want     string // expected congratulation date, "" when excluded
	}{
		{name: "saturday rolls to monday", birthday: "15.06.1990", within: 7, want: "2024-06-17"},
		{name: "sunday rolls to same monday", birthday: "16.06.1990", within: 7, want: "2024-06-17"},
		{name: "weekday unchanged", birthday: "12.06.1985", within: 7, want: "2024-06-12"},
		{name: "birthday today included", birthday: "10.06.2000", within: 7, want: "2024-06-10"},
		{name: "window boundary included", birthday: "17.06.1970", within: 7, want: "2024-06-17"},
		{name: "beyond window excluded", birthday: "18.06.1970", within: 7, want: ""},
		{name: "already passed this year excluded", birthday: "09.06.1970", within: 7, want: ""},
		{name: "zero window includes only today", birthday: "10.06.2000", within: 0, want: "2024-06-10"},
		{name: "zero window excludes tomorrow", birthday: "11.06.2000", within: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := NewAddressBook()
			addContactWithBirthday(t, ab, "John", tt.birthday)

			got, err := ab.UpcomingBirthdays(tt.within, today)
			require.NoError(t, err)

			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Congratulation.Format("2006-01-02"))
		})
	}
}

func TestUpcomingBirthdaysYearRollover(t *testing.T) {
	// Late December window wraps into January of the next year.
	today := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)

	ab := NewAddressBook()
	addContactWithBirthday(t, ab, "Jane", "02.01.1988")

	got, err := ab.UpcomingBirthdays(7, today)
	require.NoError(t, err)
	require.Len(t, got, 1)
	// 2025-01-02 is a Thursday, no adjustment.
	assert.Equal(t, "2025-01-02", got[0].Congratulation.Format("2006-01-02"))
}

func TestUpcomingBirthdaysOrdering(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	ab := NewAddressBook()
	// Saturday and Sunday birthdays share the Monday congratulation date;
	// ties break by name.
	addContactWithBirthday(t, ab, "Zoe", "15.06.1990")
	addContactWithBirthday(t, ab, "Adam", "16.06.1990")
	addContactWithBirthday(t, ab, "Mia", "12.06.1985")

	got, err := ab.UpcomingBirthdays(7, today)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Mia", got[0].Record.Name().String())
	assert.Equal(t, "Adam", got[1].Record.Name().String())
	assert.Equal(t, "Zoe", got[2].Record.Name().String())
	assert.True(t, got[1].Congratulation.Equal(got[2].Congratulation),
		"both weekend days collapse onto the same Monday")
}

func TestUpcomingBirthdaysSkipsRecordsWithoutBirthday(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	ab := NewAddressBook()
	require.NoError(t, ab.Add(mustRecord(t, "NoBirthday")))
	addContactWithBirthday(t, ab, "HasBirthday", "12.06.1985")

	got, err := ab.UpcomingBirthdays(7, today)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "HasBirthday", got[0].Record.Name().String())
}

func TestUpcomingBirthdaysNegativeWindow(t *testing.T) {
	ab := NewAddressBook()
	_, err := ab.UpcomingBirthdays(-1, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
}
