package book

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the wire format for birthdays (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// validate holds the shared validator instance for field rules.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "required" alone accepts whitespace-only input.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Name is a contact's validated display name. The zero value is invalid;
// construct through NewName.
type Name struct {
	value string
}

// NewName validates and constructs a Name. The input must be non-blank.
func NewName(value string) (Name, error) {
	if err := validate.Var(value, "required,notblank"); err != nil {
		return Name{}, NewValidationError("name", "Name cannot be empty.").WithCause(err)
	}
	return Name{value: value}, nil
}

// Value returns the raw name string.
func (n Name) Value() string { return n.value }

// String implements fmt.Stringer.
func (n Name) String() string { return n.value }

// Phone is a validated phone number: exactly 10 decimal digits, no
// separators or prefix.
type Phone struct {
	value string
}

// NewPhone validates and constructs a Phone. The stored value is the
// input unchanged.
func NewPhone(value string) (Phone, error) {
	if err := validate.Var(value, "len=10,number"); err != nil {
		return Phone{}, NewValidationError("phone", "Phone number must contain exactly 10 digits.").WithCause(err)
	}
	return Phone{value: value}, nil
}

// Value returns the raw digit string.
func (p Phone) Value() string { return p.value }

// String implements fmt.Stringer.
func (p Phone) String() string { return p.value }

// Birthday is a validated calendar date, stored date-only at midnight UTC.
type Birthday struct {
	value time.Time
}

// NewBirthday parses a birthday from the DD.MM.YYYY pattern. The input
// must denote a real calendar date; 31.02.2000 is rejected.
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, NewValidationError("birthday", "Invalid date format. Use DD.MM.YYYY").WithCause(err)
	}
	return Birthday{value: t}, nil
}

// Time returns the date as a time.Time at midnight UTC.
func (b Birthday) Time() time.Time { return b.value }

// String renders the date back into the DD.MM.YYYY pattern.
func (b Birthday) String() string { return b.value.Format(BirthdayLayout) }
