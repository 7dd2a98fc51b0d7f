package book

import (
	"fmt"
	"strings"
	"time"
)

// Record aggregates one contact: a Name, an insertion-ordered list of
// Phones (duplicates permitted), and at most one Birthday. The Name is
// the record's identity and is immutable after construction; phones and
// birthday are mutated only through the record's own methods.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord validates the name and constructs an empty record.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() string {
	return r.name.Value()
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// PhoneValues returns the raw phone strings in insertion order.
func (r *Record) PhoneValues() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.Value()
	}
	return out
}

// Birthday returns the contact's birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates value and appends it. Duplicate numbers are not
// rejected.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value. Removing an absent
// number is a no-op, not an error.
func (r *Record) RemovePhone(value string) {
	for i, p := range r.phones {
		if p.Value() == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces the first phone equal to oldValue with a validated
// phone for newValue, appended at the end of the list. The operation is
// all-or-nothing: if newValue is invalid or oldValue is absent, the phone
// list is left untouched. An absent oldValue yields ErrPhoneNotFound.
func (r *Record) EditPhone(oldValue, newValue string) error {
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	if _, ok := r.FindPhone(oldValue); !ok {
		return ErrPhoneNotFound
	}
	r.RemovePhone(oldValue)
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.phones {
		if p.Value() == value {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates value and sets or overwrites the birthday.
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// DaysToBirthday computes the non-negative number of whole days from
// today to the birthday's next occurrence. Returns false when no
// birthday is set. A birthday falling on today yields 0.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	d := dateOf(today)
	next := nextOccurrence(*r.birthday, d)
	return int(next.Sub(d) / (24 * time.Hour)), true
}

// String renders the record's deterministic textual summary.
func (r *Record) String() string {
	birthday := "No birthday"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name.Value(), strings.Join(r.PhoneValues(), "; "), birthday)
}

// dateOf truncates a timestamp to its calendar date at midnight UTC, so
// that window arithmetic is whole-day regardless of the injected clock's
// time component.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nextOccurrence projects a birthday's month and day onto today's year,
// or the next year when the projection has already passed. Feb 29
// projected onto a non-leap year clamps to Feb 28.
func nextOccurrence(b Birthday, today time.Time) time.Time {
	next := projectYear(b, today.Year())
	if next.Before(today) {
		next = projectYear(b, today.Year()+1)
	}
	return next
}

func projectYear(b Birthday, year int) time.Time {
	_, m, d := b.Time().Date()
	if m == time.February && d == 29 && !isLeapYear(year) {
		d = 28
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
