// Package shell implements the assistant's line-oriented command
// interface: a parser that splits raw input into a command verb and
// arguments, a dispatcher mapping verbs to handlers over the address
// book, and the read-eval-print loop itself.
//
// The shell is the single point where errors from the book become
// user-facing text; the core below it only raises them.
package shell
