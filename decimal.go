package measurement

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	gvdecimal "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

// defaultScale is the scale given to integers and to results whose
// target scale is zero.
const defaultScale = 2

var (
	// ErrDivisionByZero is returned when a divider is numerically zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrEmptyAggregate is returned by [Avg] when there is nothing to average.
	ErrEmptyAggregate = errors.New("impossible to get average from emptiness")
	// ErrNegativeSqrt is returned by [Sqrt] for negative radicands.
	ErrNegativeSqrt = errors.New("square root of negative number")
	// ErrInvalidFormat is returned when text cannot be parsed.
	ErrInvalidFormat = errors.New("invalid format")
)

// Decimal type represents an immutable signed decimal number of arbitrary
// length together with its scale, the number of digits after the decimal
// point.
// The scale is part of the identity of a decimal: "10.0" and "10.00" are
// numerically equal, but they are different decimals.
//
// Every decimal has a decimal point.
// Integers and dotless literals are given exactly two digits after the
// decimal point.
// The zero value corresponds to "0.00".
//
// Decimal is designed to be safe for concurrent use by multiple goroutines.
type Decimal struct {
	value decimal.Decimal // numeric value, never has more digits than scale
	scale int             // digits after the decimal point, 0 means defaultScale
}

// newDecimal creates a decimal truncated to the given scale.
// A zero scale is replaced by the default one.
func newDecimal(v decimal.Decimal, scale int) Decimal {
	v = v.Truncate(int32(scale)) //nolint:gosec
	if scale == 0 {
		scale = defaultScale
	}
	return Decimal{value: v, scale: scale}
}

// New returns a decimal equal to the integer i with two digits after
// the decimal point.
func New(i int64) Decimal {
	return newDecimal(decimal.NewFromInt(i), defaultScale)
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	+0.0001234
//	1234.5600
//
// The scale of the result equals the number of digits after the decimal
// point, digits are kept as given.
// A string without a decimal point is given two digits after the decimal
// point, so "100" results in "100.00".
//
// Parse returns an error wrapping [ErrInvalidFormat] if the string is not
// a decimal literal.
func Parse(s string) (Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

func parse(s string) (Decimal, error) {
	text, neg := s, false
	if text != "" && (text[0] == '+' || text[0] == '-') {
		neg = text[0] == '-'
		text = text[1:]
	}
	whole, frac, dot := strings.Cut(text, ".")
	if !isDigits(whole) || (dot && !isDigits(frac)) {
		return Decimal{}, ErrInvalidFormat
	}
	if len(frac) > math.MaxInt32 {
		return Decimal{}, fmt.Errorf("%w: too many digits after the decimal point", ErrInvalidFormat)
	}
	lit := whole
	if dot {
		lit += "." + frac
	}
	if neg {
		lit = "-" + lit
	}
	v, err := decimal.NewFromString(lit)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	scale := len(frac)
	if !dot {
		scale = defaultScale
	}
	return newDecimal(v, scale), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// NewFromGovalues converts a [gvdecimal.Decimal] to a decimal.
// The scale of d is preserved, except that integers are given two digits
// after the decimal point.
// See also method [Decimal.Govalues].
func NewFromGovalues(d gvdecimal.Decimal) Decimal {
	return MustParse(d.String())
}

// Govalues converts the decimal to a [gvdecimal.Decimal].
// The scale of the decimal is preserved.
//
// Govalues returns an error if the decimal does not fit into the
// 19-digit coefficient of [gvdecimal.Decimal] without losing digits.
func (d Decimal) Govalues() (gvdecimal.Decimal, error) {
	s := d.String()
	g, err := gvdecimal.Parse(s)
	if err != nil {
		return gvdecimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", d, g, err)
	}
	if g.String() != s {
		return gvdecimal.Decimal{}, fmt.Errorf("converting %v to %T: digits would be lost", d, g)
	}
	return g, nil
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	if d.scale == 0 {
		return defaultScale
	}
	return d.scale
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.value.Sign()
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.value.IsNegative()
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Decimal) IsPos() bool {
	return d.value.IsPositive()
}

// Int64 returns the integer part of the decimal, the fractional part is
// discarded.
// If the integer part cannot be represented as an int64, then false is returned.
//
// This conversion loses data and must not be used for arithmetic.
func (d Decimal) Int64() (int64, bool) {
	b := d.value.BigInt()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Float64 returns the nearest binary floating-point number and reports
// whether it represents the decimal exactly.
//
// This conversion may lose data and must not be used for arithmetic.
func (d Decimal) Float64() (f float64, exact bool) {
	return d.value.Float64()
}

// String implements the [fmt.Stringer] interface and returns the canonical
// text of the decimal, with exactly [Decimal.Scale] digits after the decimal
// point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.value.StringFixed(int32(d.Scale())) //nolint:gosec
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The decimal is always written as a JSON string so that no digit is lost
// by readers decoding numbers into floats.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	var err error
	*d, err = parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Floats are accepted for compatibility with drivers that do not return
// numerics as text; they are converted through their shortest exact
// representation.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = parse(value)
	case []byte:
		*d, err = parse(string(value))
	case int64:
		*d = New(value)
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			err = fmt.Errorf("special value %v", value)
			break
		}
		*d, err = parse(strconv.FormatFloat(value, 'f', -1, 64))
	case nil:
		err = fmt.Errorf("%T does not support null values", Decimal{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Add returns the sum d + e at the larger scale of the two.
// See also function [Sum].
func (d Decimal) Add(e Decimal) Decimal {
	return Sum(d, e)
}

// Sub returns the difference d - e at the larger scale of the two.
// See also function [Difference].
func (d Decimal) Sub(e Decimal) Decimal {
	return Difference(d, e)
}

// Mul returns the product of d and all factors.
// See also function [Multiply].
func (d Decimal) Mul(factors ...Decimal) Decimal {
	return Multiply(d, factors...)
}

// Quo returns the quotient of d and all dividers.
// See also function [Divide].
func (d Decimal) Quo(dividers ...Decimal) (Decimal, error) {
	return Divide(d, dividers...)
}

// Inc returns d + 1 keeping the scale of d.
func (d Decimal) Inc() Decimal {
	return newDecimal(d.value.Add(decimal.New(1, 0)), d.Scale())
}

// Dec returns d - 1 keeping the scale of d.
func (d Decimal) Dec() Decimal {
	return newDecimal(d.value.Sub(decimal.New(1, 0)), d.Scale())
}

// Round is like function [Round].
func (d Decimal) Round(precision int) Decimal {
	return Round(d, precision)
}

// Trunc is like function [Trunc].
func (d Decimal) Trunc(scale int) Decimal {
	return Trunc(d, scale)
}

// Sqrt is like function [Sqrt].
func (d Decimal) Sqrt(scale int) (Decimal, error) {
	return Sqrt(d, scale)
}

// Pow is like function [Pow].
func (d Decimal) Pow(exponent, scale int) (Decimal, error) {
	return Pow(d, exponent, scale)
}

// Abs is like function [Abs].
func (d Decimal) Abs() Decimal {
	return Abs(d)
}

// Neg is like function [Neg].
func (d Decimal) Neg() Decimal {
	return Neg(d)
}

// Cmp is like function [Cmp].
func (d Decimal) Cmp(e Decimal) int {
	return Cmp(d, e)
}

// Equal is like function [Equal].
func (d Decimal) Equal(e Decimal) bool {
	return Equal(d, e)
}

// Less is like function [Less].
func (d Decimal) Less(e Decimal) bool {
	return Less(d, e)
}

// Greater is like function [Greater].
func (d Decimal) Greater(e Decimal) bool {
	return Greater(d, e)
}
