package book

import (
	"slices"
	"time"
)

// AddressBook is a session-scoped collection of records keyed by contact
// name. Iteration order is insertion order: the keyed map is paired with
// an ordered name slice so query results stay deterministic.
//
// The book is owned exclusively by the single command loop that
// surrounds it; it is not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// Add inserts the record under its name, replacing any existing record
// with the same name. A replaced record keeps its original insertion
// position.
func (b *AddressBook) Add(r *Record) {
	name := r.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record for an exact, case-sensitive name match.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record for name. Deleting an unknown name is a
// no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	if i := slices.Index(b.order, name); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Upcoming returns, in insertion order, every record whose birthday's
// next occurrence falls within the closed window [today, today+days].
// Both bounds are inclusive: a birthday on today and a birthday exactly
// days ahead are included. Occurrences are found by projecting the
// birthday onto today's year, rolling to the next year when the
// projection has already passed.
func (b *AddressBook) Upcoming(days int, today time.Time) []*Record {
	start := dateOf(today)
	end := start.AddDate(0, 0, days)

	var out []*Record
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		next := nextOccurrence(bd, start)
		if !next.After(end) {
			out = append(out, r)
		}
	}
	return out
}
