package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Currency type represents a currency or any other unit of account, such as
// a crypto asset, identified by its code.
// Two currencies are equal if their codes are equal, so currencies can be
// compared with the == operator.
// The zero value is an unknown currency with an empty code; it cannot be
// obtained with [ParseCurr].
//
// Currency is designed to be safe for concurrent use by multiple goroutines.
type Currency struct {
	code string
}

// ParseCurr converts a code to a currency.
// The code must be a non-empty string of ASCII letters and digits, for example:
//
//	USD
//	usdt
//	BTC
//
// Codes are case-sensitive, "usd" and "USD" are different currencies.
//
// ParseCurr returns an error wrapping [ErrInvalidFormat] if the code is not valid.
func ParseCurr(code string) (Currency, error) {
	if err := validate.Var(code, "required,alphanum"); err != nil {
		return Currency{}, fmt.Errorf("parsing currency %q: %w", code, ErrInvalidFormat)
	}
	return Currency{code: code}, nil
}

// MustParseCurr is like [ParseCurr] but panics if the code is not valid.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the code of the currency.
func (c Currency) Code() string {
	return c.code
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", Currency{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Currency{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}
