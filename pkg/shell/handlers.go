package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rolodex/rolodex/pkg/book"
)

// errTooFewArguments is the shell's usage hint for any command invoked
// with too few tokens.
var errTooFewArguments = book.NewUsageError("Insufficient arguments provided.")

func handleHello(_ *Shell, _ []string) (string, error) {
	return "How can I help you?", nil
}

// handleAdd creates a contact or merges a phone into an existing one.
// The new-contact path is all-or-nothing: the record only enters the
// book once the phone validated.
func handleAdd(s *Shell, args []string) (string, error) {
	if len(args) < 2 {
		return "", errTooFewArguments
	}
	name, phone := args[0], args[1]

	if record, ok := s.book.Find(name); ok {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
		return "Contact updated.", nil
	}

	record, err := book.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	s.book.Add(record)
	return "Contact added.", nil
}

func handleChange(s *Shell, args []string) (string, error) {
	if len(args) < 3 {
		return "", errTooFewArguments
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrContactNotFound
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Phone number updated.", nil
}

func handlePhone(s *Shell, args []string) (string, error) {
	if len(args) < 1 {
		return "", errTooFewArguments
	}
	name := args[0]

	record, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrContactNotFound
	}
	return fmt.Sprintf("Phones for %s: %s", name, strings.Join(record.PhoneValues(), ", ")), nil
}

func handleAll(s *Shell, _ []string) (string, error) {
	var lines []string
	for _, record := range s.book.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n"), nil
}

func handleAddBirthday(s *Shell, args []string) (string, error) {
	if len(args) < 2 {
		return "", errTooFewArguments
	}
	name, birthday := args[0], args[1]

	record, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrContactNotFound
	}
	if err := record.SetBirthday(birthday); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func handleShowBirthday(s *Shell, args []string) (string, error) {
	if len(args) < 1 {
		return "", errTooFewArguments
	}
	name := args[0]

	record, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrContactNotFound
	}
	birthday, ok := record.Birthday()
	if !ok {
		return "No birthday set.", nil
	}
	return fmt.Sprintf("Birthday for %s: %s", name, birthday), nil
}

// handleBirthdays runs the window query. The day count is optional and
// falls back to the configured default.
func handleBirthdays(s *Shell, args []string) (string, error) {
	days := s.defaultWindow()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", book.NewValidationError("days", "Invalid number of days.").WithCause(err)
		}
		days = n
	}

	s.metrics.RecordUpcomingQuery(days)

	var lines []string
	for _, record := range s.book.Upcoming(days, s.clock()) {
		birthday, _ := record.Birthday()
		lines = append(lines, fmt.Sprintf("Upcoming birthday: %s on %s", record.Name(), birthday))
	}
	return strings.Join(lines, "\n"), nil
}

func handleDaysTo(s *Shell, args []string) (string, error) {
	if len(args) < 1 {
		return "", errTooFewArguments
	}
	name := args[0]

	record, ok := s.book.Find(name)
	if !ok {
		return "", book.ErrContactNotFound
	}
	days, ok := record.DaysToBirthday(s.clock())
	if !ok {
		return "No birthday set.", nil
	}
	return fmt.Sprintf("Days to birthday for %s: %d", name, days), nil
}

func handleDelete(s *Shell, args []string) (string, error) {
	if len(args) < 1 {
		return "", errTooFewArguments
	}
	name := args[0]

	if _, ok := s.book.Find(name); !ok {
		return "", book.ErrContactNotFound
	}
	s.book.Delete(name)
	return "Contact deleted.", nil
}
