// Package book implements the in-memory contact data model: validated
// field values (Name, Phone, Birthday), the Record aggregate, and the
// AddressBook container with its upcoming-birthday window query.
//
// The package performs no I/O and never reads the wall clock; callers
// inject "today" wherever date arithmetic is involved, which keeps every
// operation deterministic and directly testable.
package book
