package types

import (
	"sort"
	"strconv"
	"time"
)

// DefaultBirthdayWindow is the number of days ahead callers look for
// upcoming birthdays when no window is given.
const DefaultBirthdayWindow = 7

// BirthdayReminder pairs a record with the date its congratulation is due.
// The congratulation date is the birthday's next occurrence, moved to the
// following Monday when it falls on a weekend.
type BirthdayReminder struct {
	Record         *Record
	Congratulation time.Time
}

// UpcomingBirthdays returns reminders for every record whose birthday's
// next occurrence falls within withinDays of today (inclusive on both
// ends). Weekend occurrences roll forward: Saturday by two days, Sunday by
// one, so both land on the same Monday. Results are sorted by
// congratulation date ascending, ties broken by name.
// A negative withinDays is a validation error.
func (ab *AddressBook) UpcomingBirthdays(withinDays int, today time.Time) ([]BirthdayReminder, error) {
	if withinDays < 0 {
		return nil, newValidationError(FieldParam, strconv.Itoa(withinDays), "days window must be non-negative")
	}

	ref := dateOnly(today)
	var out []BirthdayReminder
	for _, r := range ab.Records() {
		b, ok := r.Birthday()
		if !ok {
			continue
		}

		occ := occurrenceInYear(b.Date(), ref.Year())
		if occ.Before(ref) {
			occ = occurrenceInYear(b.Date(), ref.Year()+1)
		}
		delta := int(occ.Sub(ref).Hours() / 24)
		if delta > withinDays {
			continue
		}

		switch occ.Weekday() {
		case time.Saturday:
			occ = occ.AddDate(0, 0, 2)
		case time.Sunday:
			occ = occ.AddDate(0, 0, 1)
		}

		out = append(out, BirthdayReminder{Record: r, Congratulation: occ})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Congratulation.Equal(out[j].Congratulation) {
			return out[i].Congratulation.Before(out[j].Congratulation)
		}
		return out[i].Record.Name().String() < out[j].Record.Name().String()
	})
	return out, nil
}

// occurrenceInYear returns the birthday's month/day in the given year.
// February 29 normalizes to March 1 in non-leap years.
func occurrenceInYear(birthday time.Time, year int) time.Time {
	return time.Date(year, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
}
