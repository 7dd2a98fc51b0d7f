package shell

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolodex/rolodex/pkg/book"
)

func fixedClock(y int, m time.Month, d int) Clock {
	return func() time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}

func newTestShell(t *testing.T, clock Clock) *Shell {
	t.Helper()
	if clock == nil {
		clock = fixedClock(2024, time.June, 1)
	}
	return New(book.NewAddressBook(), Options{Clock: clock})
}

// handle runs one line and returns the reply, failing the test on quit.
func handle(t *testing.T, s *Shell, line string) string {
	t.Helper()
	reply, quit := s.HandleLine(context.Background(), line)
	require.False(t, quit, "unexpected quit for line %q", line)
	return reply
}

func TestShell_Hello(t *testing.T) {
	s := newTestShell(t, nil)
	assert.Equal(t, "How can I help you?", handle(t, s, "hello"))
}

func TestShell_Add_NewContact(t *testing.T) {
	s := newTestShell(t, nil)

	assert.Equal(t, "Contact added.", handle(t, s, "add John 1234567890"))

	record, ok := s.book.Find("John")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890"}, record.PhoneValues())
}

func TestShell_Add_ExistingContactMergesPhone(t *testing.T) {
	s := newTestShell(t, nil)
	handle(t, s, "add John 1234567890")

	assert.Equal(t, "Contact updated.", handle(t, s, "add John 5555555555"))

	record, _ := s.book.Find("John")
	assert.Equal(t, []string{"1234567890", "5555555555"}, record.PhoneValues())
	assert.Equal(t, 1, s.book.Len())
}

func TestShell_Add_InvalidPhoneLeavesBookUntouched(t *testing.T) {
	s := newTestShell(t, nil)

	reply := handle(t, s, "add John 123")
	assert.Equal(t, "Phone number must contain exactly 10 digits.", reply)
	_, ok := s.book.Find("John")
	assert.False(t, ok, "failed add must not create the contact")
}

func TestShell_Add_TooFewArguments(t *testing.T) {
	s := newTestShell(t, nil)
	assert.Equal(t, "Insufficient arguments provided.", handle(t, s, "add John"))
}

func TestShell_Change(t *testing.T) {
	s := newTestShell(t, nil)
	handle(t, s, "add John 1234567890")

	assert.Equal(t, "Phone number updated.", handle(t, s, "change John 1234567890 1112223333"))

	record, _ := s.book.Find("John")
	assert.Equal(t, []string{"1112223333"}, record.PhoneValues())
}

func TestShell_Change_Errors(t *testing.T) {
	s := newTestShell(t, nil)
	handle(t, s, "add John 1234567890")

	tests := []struct {
		name string
		line string
		want string
	}{
		{"unknown contact", "change Jane 1234567890 1112223333", "Contact not found."},
		{"unknown old phone", "change John 9999999999 1112223333", "Phone number not found."},
		{"invalid new phone", "change John 1234567890 12", "Phone number must contain exactly 10 digits."},
		{"too few arguments", "change John 1234567890", "Insufficient arguments provided."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handle(t, s, tt.line))
		})
	}
}

func TestShell_Phone(t *testing.T) {
	s := newTestShell(t, nil)
	handle(t, s, "add John 1234567890")
	handle(t, s, "add John 5555555555")

	assert.Equal(t, "Phones for John: 1234567890, 5555555555", handle(t, s, "phone John"))
	assert.Equal(t, "Contact not found.", handle(t, s, "phone Jane"))
}

func TestShell_All(t *testing.T) {
	s := newTestShell(t, nil)
	handle(t, s, "add John 1234567890")
	handle(t, s, "add Jane 9876543210")
	handle(t, s, "add-birthday Jane 05.05.1995")

	want := "Contact name: John, phones: 1234567890, birthday: No birthday\n" +
		"Contact name: Jane, phones: 9876543210, birthday: 05.05.1995"
	assert.Equal(t, want, handle(t, s, "all"))
}

func TestShell_Birthdays_Flow(t *testing.T) {
	s := newTestShell(t, fixedClock(2023, time.December, 30))
	handle(t, s, "add John 1234567890")
	handle(t, s, "add Jane 9876543210")

	assert.Equal(t, "Birthday added.", handle(t, s, "add-birthday John 01.01.1990"))
	assert.Equal(t, "Birthday added.", handle(t, s, "add-birthday Jane 05.05.1995"))
	assert.Equal(t, "Birthday for John: 01.01.1990", handle(t, s, "show-birthday John"))

	// John's birthday wraps to next Jan 1 and lands in the window;
	// Jane's does not.
	assert.Equal(t, "Upcoming birthday: John on 01.01.1990", handle(t, s, "birthdays 7"))
}

func TestShell_Birthdays_DefaultWindow(t *testing.T) {
	s := New(book.NewAddressBook(), Options{
		Clock:      fixedClock(2023, time.December, 30),
		WindowDays: 2,
	})
	handle(t, s, "add John 1234567890")
	handle(t, s, "add-birthday John 01.01.1990")

	assert.Equal(t, "Upcoming birthday: John on 01.01.1990", handle(t, s, "birthdays"))
}

func TestShell_Birthdays_InvalidCount(t *testing.T) {
	s := newTestShell(t, nil)
	assert.Equal(t, "Invalid number of days.", handle(t, s, "birthdays soon"))
	assert.Equal(t, "Invalid number of days.", handle(t, s, "birthdays -3"))
}

func TestShell_ShowBirthday_Errors(t *testing.T) {
	s := newTestShell(t, nil)
	handle(t, s, "add John 1234567890")

	assert.Equal(t, "No birthday set.", handle(t, s, "show-birthday John"))
	assert.Equal(t, "Contact not found.", handle(t, s, "show-birthday Jane"))
	assert.Equal(t, "Invalid date format. Use DD.MM.YYYY", handle(t, s, "add-birthday John 31.02.2000"))
}

func TestShell_DaysTo(t *testing.T) {
	s := newTestShell(t, fixedClock(2024, time.February, 10))
	handle(t, s, "add John 1234567890")
	handle(t, s, "add-birthday John 29.02.2000")

	assert.Equal(t, "Days to birthday for John: 19", handle(t, s, "days-to John"))
}

func TestShell_Delete(t *testing.T) {
	s := newTestShell(t, nil)
	handle(t, s, "add John 1234567890")
	handle(t, s, "add Jane 9876543210")

	assert.Equal(t, "Contact deleted.", handle(t, s, "delete Jane"))
	assert.Equal(t, "Contact not found.", handle(t, s, "phone Jane"))
	assert.Equal(t, "Phones for John: 1234567890", handle(t, s, "phone John"))
	assert.Equal(t, "Contact not found.", handle(t, s, "delete Jane"))
}

func TestShell_InvalidAndEmptyInput(t *testing.T) {
	s := newTestShell(t, nil)

	assert.Equal(t, "Invalid command.", handle(t, s, "frobnicate"))
	assert.Equal(t, "", handle(t, s, ""))
	assert.Equal(t, "", handle(t, s, "   "))
}

func TestShell_CommandVerbIsCaseInsensitive(t *testing.T) {
	s := newTestShell(t, nil)

	assert.Equal(t, "Contact added.", handle(t, s, "ADD John 1234567890"))
	// Contact names stay case-sensitive.
	assert.Equal(t, "Contact not found.", handle(t, s, "phone john"))
}

func TestShell_CloseAndExit(t *testing.T) {
	for _, verb := range []string{"close", "exit"} {
		t.Run(verb, func(t *testing.T) {
			s := newTestShell(t, nil)
			reply, quit := s.HandleLine(context.Background(), verb)
			assert.True(t, quit)
			assert.Equal(t, "Good bye!", reply)
		})
	}
}

func TestShell_Run_EndToEnd(t *testing.T) {
	script := strings.Join([]string{
		"hello",
		"add John 1234567890",
		"add-birthday John 01.01.1990",
		"change John 1234567890 1112223333",
		"phone John",
		"birthdays",
		"close",
	}, "\n") + "\n"

	s := New(book.NewAddressBook(), Options{
		Clock:  fixedClock(2023, time.December, 30),
		Prompt: "> ",
	})

	var out strings.Builder
	err := s.Run(context.Background(), strings.NewReader(script), &out)
	require.NoError(t, err)

	transcript := out.String()
	assert.Contains(t, transcript, "Welcome to the assistant bot!")
	assert.Contains(t, transcript, "How can I help you?")
	assert.Contains(t, transcript, "Contact added.")
	assert.Contains(t, transcript, "Phone number updated.")
	assert.Contains(t, transcript, "Phones for John: 1112223333")
	assert.Contains(t, transcript, "Upcoming birthday: John on 01.01.1990")
	assert.Contains(t, transcript, "Good bye!")
}

func TestShell_Run_EndOfInputEndsSession(t *testing.T) {
	s := newTestShell(t, nil)

	var out strings.Builder
	err := s.Run(context.Background(), strings.NewReader("hello\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "How can I help you?")
}
