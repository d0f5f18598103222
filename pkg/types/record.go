package types

import (
	"fmt"
	"strings"
)

// Record is a single contact: one immutable name, an ordered set of unique
// phone numbers, and optional email, address, and birthday. Every mutation
// validates its input fully before changing anything, so a failed call
// leaves the record exactly as it was.
type Record struct {
	name     Name
	phones   []Phone
	email    *Email
	address  string
	birthday *Birthday
}

// NewRecord creates a record with the given name and no other fields set.
func NewRecord(rawName string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	return &Record{name: name}, nil
}

// Name returns the record's name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns the phone numbers in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates and appends a phone number.
// Returns ErrDuplicatePhone if the normalized number is already present.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if r.findPhone(p) >= 0 {
		return ErrDuplicatePhone
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes a phone number.
// Returns ErrPhoneNotFound if the normalized number is not present.
func (r *Record) RemovePhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	i := r.findPhone(p)
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces an existing phone number in place, keeping its
// position. Returns ErrPhoneNotFound if old is absent and ErrDuplicatePhone
// if new is already present on another slot. Editing a number to itself
// succeeds as a no-op.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	oldPhone, err := NewPhone(oldRaw)
	if err != nil {
		return err
	}
	newPhone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	i := r.findPhone(oldPhone)
	if i < 0 {
		return ErrPhoneNotFound
	}
	if newPhone == oldPhone {
		return nil
	}
	if r.findPhone(newPhone) >= 0 {
		return ErrDuplicatePhone
	}
	r.phones[i] = newPhone
	return nil
}

func (r *Record) findPhone(p Phone) int {
	for i, existing := range r.phones {
		if existing == p {
			return i
		}
	}
	return -1
}

// SetEmail validates and sets the email, overwriting any existing value.
func (r *Record) SetEmail(raw string) error {
	e, err := NewEmail(raw)
	if err != nil {
		return err
	}
	r.email = &e
	return nil
}

// ClearEmail removes the email. No-op if unset.
func (r *Record) ClearEmail() {
	r.email = nil
}

// Email returns the email and whether one is set.
func (r *Record) Email() (Email, bool) {
	if r.email == nil {
		return Email{}, false
	}
	return *r.email, true
}

// SetAddress sets the free-text address, overwriting any existing value.
// The address must be non-empty after trimming.
func (r *Record) SetAddress(raw string) error {
	v := strings.TrimSpace(raw)
	if v == "" {
		return newValidationError(FieldAddress, raw, "must not be empty")
	}
	r.address = v
	return nil
}

// ClearAddress removes the address. No-op if unset.
func (r *Record) ClearAddress() {
	r.address = ""
}

// Address returns the address and whether one is set.
func (r *Record) Address() (string, bool) {
	return r.address, r.address != ""
}

// SetBirthday validates and sets the birthday, overwriting any existing
// value. Idempotent when given the same date.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// ClearBirthday removes the birthday. No-op if unset.
func (r *Record) ClearBirthday() {
	r.birthday = nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record purely from its fields.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
	if r.birthday != nil {
		fmt.Fprintf(&b, ", birthday: %s", r.birthday)
	}
	if r.email != nil {
		fmt.Fprintf(&b, ", email: %s", r.email)
	}
	if r.address != "" {
		fmt.Fprintf(&b, ", address: %s", r.address)
	}
	return b.String()
}
