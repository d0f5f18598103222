package types

import (
	"strings"
	"time"
	"unicode"
)

// BirthdayLayout is the wire and display format for birthdays.
const BirthdayLayout = "02.01.2006"

// Name is a validated contact name: non-empty after trimming.
type Name struct {
	value string
}

// NewName validates and trims a raw name.
func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Name{}, newValidationError(FieldName, raw, "must not be empty")
	}
	return Name{value: v}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated phone number stored as exactly 10 ASCII digits.
type Phone struct {
	digits string
}

// NewPhone normalizes and validates a raw phone number. Formatting
// characters (spaces, dashes, dots, parentheses) and a single leading "+"
// are stripped; the remainder must be exactly 10 ASCII digits. Inputs that
// still carry a country code (11+ digits) are rejected, not guessed at.
func NewPhone(raw string) (Phone, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// formatting, dropped
		default:
			return Phone{}, newValidationError(FieldPhone, raw, "contains characters other than digits and formatting")
		}
	}

	digits := b.String()
	if len(digits) != 10 {
		return Phone{}, newValidationError(FieldPhone, raw, "must contain exactly 10 digits")
	}
	return Phone{digits: digits}, nil
}

// String returns the normalized 10-digit form.
func (p Phone) String() string {
	return p.digits
}

// Email is a validated email address of the shape local@domain.tld.
type Email struct {
	value string
}

// NewEmail validates a raw email address: non-empty local part, exactly one
// "@", a domain with at least one dot and non-empty labels around the last
// dot, and no whitespace anywhere.
func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Email{}, newValidationError(FieldEmail, raw, "must not be empty")
	}
	if strings.ContainsFunc(v, unicode.IsSpace) {
		return Email{}, newValidationError(FieldEmail, raw, "must not contain whitespace")
	}
	if strings.Count(v, "@") != 1 {
		return Email{}, newValidationError(FieldEmail, raw, "must contain exactly one @")
	}
	at := strings.Index(v, "@")
	local, domain := v[:at], v[at+1:]
	if local == "" {
		return Email{}, newValidationError(FieldEmail, raw, "local part must not be empty")
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return Email{}, newValidationError(FieldEmail, raw, "domain must contain a dot with labels on both sides")
	}
	return Email{value: v}, nil
}

func (e Email) String() string {
	return e.value
}

// Birthday is a validated calendar date that is not in the future.
type Birthday struct {
	date time.Time
}

// NewBirthday validates a raw DD.MM.YYYY date against the current date.
func NewBirthday(raw string) (Birthday, error) {
	return NewBirthdayAt(raw, time.Now())
}

// NewBirthdayAt validates a raw DD.MM.YYYY date against the given reference
// date. The date must exist on the calendar and must not be after the
// reference date.
func NewBirthdayAt(raw string, today time.Time) (Birthday, error) {
	v := strings.TrimSpace(raw)
	d, err := time.ParseInLocation(BirthdayLayout, v, time.UTC)
	if err != nil {
		return Birthday{}, newValidationError(FieldBirthday, raw, "must be a real calendar date in DD.MM.YYYY format")
	}
	if d.After(dateOnly(today)) {
		return Birthday{}, newValidationError(FieldBirthday, raw, "must not be in the future")
	}
	return Birthday{date: d}, nil
}

// String returns the DD.MM.YYYY form.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}

// Date returns the birthday at UTC midnight.
func (b Birthday) Date() time.Time {
	return b.date
}

// Tag is a validated note tag, stored lower-case without the leading "#".
type Tag struct {
	value string
}

// NewTag normalizes and validates a raw tag: trimmed, lower-cased, a single
// leading "#" stripped. The result must be non-empty and free of whitespace.
func NewTag(raw string) (Tag, error) {
	v := strings.TrimSpace(raw)
	v = strings.TrimPrefix(v, "#")
	v = strings.ToLower(v)
	if v == "" {
		return Tag{}, newValidationError(FieldTag, raw, "must not be empty")
	}
	if strings.ContainsFunc(v, unicode.IsSpace) {
		return Tag{}, newValidationError(FieldTag, raw, "must not contain whitespace")
	}
	return Tag{value: v}, nil
}

// String returns the bare normalized tag.
func (t Tag) String() string {
	return t.value
}

// Display returns the tag with its "#" prefix for user-facing output.
func (t Tag) Display() string {
	return "#" + t.value
}

// dateOnly truncates a time to its calendar date at UTC midnight.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
