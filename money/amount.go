package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/measurement"
)

var (
	// ErrInvalidFormat is returned when a currency, currency pair, amount or
	// exchange price cannot be parsed. It is the same error as
	// [measurement.ErrInvalidFormat].
	ErrInvalidFormat = measurement.ErrInvalidFormat
	// ErrRuleViolation is wrapped by every error rejecting an operation
	// that breaks a rule of the money domain.
	ErrRuleViolation     = errors.New("domain rule violation")
	ErrNegativeAmount    = fmt.Errorf("%w: negative amount", ErrRuleViolation)
	ErrCurrencyMismatch  = fmt.Errorf("%w: currency mismatch", ErrRuleViolation)
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrRuleViolation)
	ErrSameCurrency      = fmt.Errorf("%w: exchange for identical currency", ErrRuleViolation)
)

// Amount type represents a monetary amount: a decimal value paired with
// the currency it is denominated in.
// The zero value corresponds to "0.00" of the unknown currency.
//
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency            // currency of the amount
	value measurement.Decimal // amount in units of the currency
}

// NewAmount returns an amount of the given currency.
func NewAmount(curr Currency, amount measurement.Decimal) Amount {
	return Amount{curr: curr, value: amount}
}

// ParseAmount converts currency and decimal strings to an amount.
// See also constructors [ParseCurr] and [measurement.Parse].
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("currency parsing: %w", err)
	}
	d, err := measurement.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("amount parsing: %w", err)
	}
	return NewAmount(c, d), nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings
// cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// ParseAmountText converts the text produced by [Amount.String],
// the decimal and the currency code separated by a single space, to an amount:
//
//	100.00 USD
//	-0.0057 BTC
func ParseAmountText(s string) (Amount, error) {
	amount, curr, ok := strings.Cut(s, " ")
	if !ok {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, ErrInvalidFormat)
	}
	a, err := ParseAmount(curr, amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return a, nil
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() measurement.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns true if a = 0.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns true if a < 0.
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// SameCurr returns true if amounts are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Add returns the (possibly truncated) sum of amounts a and b.
//
// Add returns an error if:
//   - amount b is negative;
//   - amounts are denominated in different currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	if b.IsNeg() {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrNegativeAmount)
	}
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return NewAmount(a.Curr(), measurement.Sum(a.value, b.value)), nil
}

// Sub returns the (possibly truncated) difference between amounts a and b.
//
// Sub returns an error if:
//   - amount b is negative;
//   - amounts are denominated in different currencies;
//   - amount a is less than amount b.
func (a Amount) Sub(b Amount) (Amount, error) {
	if b.IsNeg() {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrNegativeAmount)
	}
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	if measurement.Less(a.value, b.value) {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrInsufficientFunds)
	}
	return NewAmount(a.Curr(), measurement.Difference(a.value, b.value)), nil
}

// Equal returns true if amounts are denominated in the same currency and
// are numerically equal. Trailing zeros are not significant.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && measurement.Equal(a.value, b.value)
}

// Round returns the amount rounded half away from zero to the given precision.
// See also function [measurement.Round].
func (a Amount) Round(precision int) Amount {
	return NewAmount(a.Curr(), measurement.Round(a.value, precision))
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the amount followed by the currency code:
//
//	100.00 USD
//
// See also constructor [ParseAmountText].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.value.String() + " " + a.curr.Code()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmountText].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmountText(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
