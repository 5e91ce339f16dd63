package measurement

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// inferScale tells fold to use the larger scale of the operands at every step.
const inferScale = -1

// maxScaleArg bounds explicit scales so that doubled scales still fit an int32.
const maxScaleArg = math.MaxInt32 / 2

func checkScale(fn string, scale int) {
	if scale < 0 || scale > maxScaleArg {
		panic(fmt.Sprintf("%v(%v) failed: scale out of range [0, %v]", fn, scale, maxScaleArg))
	}
}

type step func(acc, e decimal.Decimal, scale int32) (decimal.Decimal, error)

// fold reduces operands left to right starting from acc.
// The scale of every step is either fixed or, with inferScale, the larger
// of the running scale and the scale of the next operand.
func fold(acc decimal.Decimal, accScale int, operands []Decimal, fixed int, f step) (Decimal, error) {
	for _, e := range operands {
		scale := fixed
		if scale == inferScale {
			scale = max(accScale, e.Scale())
		}
		var err error
		acc, err = f(acc, e.value, int32(scale)) //nolint:gosec
		if err != nil {
			return Decimal{}, err
		}
		accScale = scale
	}
	return newDecimal(acc, accScale), nil
}

func add(acc, e decimal.Decimal, scale int32) (decimal.Decimal, error) {
	return acc.Add(e).Truncate(scale), nil
}

func sub(acc, e decimal.Decimal, scale int32) (decimal.Decimal, error) {
	return acc.Sub(e).Truncate(scale), nil
}

func mul(acc, e decimal.Decimal, scale int32) (decimal.Decimal, error) {
	return acc.Mul(e).Truncate(scale), nil
}

func quo(acc, e decimal.Decimal, scale int32) (decimal.Decimal, error) {
	if e.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	q, _ := acc.QuoRem(e, scale)
	return q, nil
}

// MaxScale returns the larger of the scales of decimals a and b.
// It is the scale used by arithmetic and comparison functions
// when no scale is given explicitly.
func MaxScale(a, b Decimal) int {
	return max(a.Scale(), b.Scale())
}

// Sum returns the sum of the terms, folded left to right starting from an
// integer zero.
// Every intermediate sum has the larger scale of the running sum and the
// next term, so the result scale is the largest scale among the terms.
// The sum of no terms is "0.00".
func Sum(terms ...Decimal) Decimal {
	d, _ := fold(decimal.Zero, 0, terms, inferScale, add)
	return d
}

// SumWithScale is like [Sum] but every intermediate sum is truncated to
// the given scale.
//
// SumWithScale panics if the scale is negative.
func SumWithScale(scale int, terms ...Decimal) Decimal {
	checkScale("SumWithScale", scale)
	d, _ := fold(decimal.Zero, scale, terms, scale, add)
	return d
}

// Difference returns the minuend with all subtrahends subtracted from it,
// folded left to right.
// Every intermediate difference has the larger scale of the running
// difference and the next subtrahend.
func Difference(minuend Decimal, subtrahends ...Decimal) Decimal {
	d, _ := fold(minuend.value, minuend.Scale(), subtrahends, inferScale, sub)
	return d
}

// DifferenceWithScale is like [Difference] but every intermediate
// difference is truncated to the given scale.
//
// DifferenceWithScale panics if the scale is negative.
func DifferenceWithScale(scale int, minuend Decimal, subtrahends ...Decimal) Decimal {
	checkScale("DifferenceWithScale", scale)
	d, _ := fold(minuend.value, minuend.Scale(), subtrahends, scale, sub)
	return d
}

// Multiply returns the product of the multiplicand and all factors,
// folded left to right.
// Every intermediate product is truncated to the larger scale of the running
// product and the next factor, so digits of the exact product beyond that
// scale are lost:
//
//	Multiply("15", "0.0001", "2.00000") = "0.00300"
func Multiply(multiplicand Decimal, factors ...Decimal) Decimal {
	d, _ := fold(multiplicand.value, multiplicand.Scale(), factors, inferScale, mul)
	return d
}

// MultiplyWithScale is like [Multiply] but every intermediate product is
// truncated to the given scale.
//
// MultiplyWithScale panics if the scale is negative.
func MultiplyWithScale(scale int, multiplicand Decimal, factors ...Decimal) Decimal {
	checkScale("MultiplyWithScale", scale)
	d, _ := fold(multiplicand.value, multiplicand.Scale(), factors, scale, mul)
	return d
}

// Divide returns the quotient of the dividend and all dividers, folded
// left to right.
// Every intermediate quotient is truncated, not rounded, to the larger scale
// of the running quotient and the next divider:
//
//	Divide("1000", "3") = "333.33"
//
// Divide returns an error wrapping [ErrDivisionByZero] if any divider is
// zero, even when it is preceded or followed by non-zero dividers.
func Divide(dividend Decimal, dividers ...Decimal) (Decimal, error) {
	d, err := fold(dividend.value, dividend.Scale(), dividers, inferScale, quo)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", dividend, dividers, err)
	}
	return d, nil
}

// DivideWithScale is like [Divide] but every intermediate quotient is
// truncated to the given scale.
//
// DivideWithScale panics if the scale is negative.
func DivideWithScale(scale int, dividend Decimal, dividers ...Decimal) (Decimal, error) {
	checkScale("DivideWithScale", scale)
	d, err := fold(dividend.value, dividend.Scale(), dividers, scale, quo)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", dividend, dividers, err)
	}
	return d, nil
}

// Pow returns the base raised to the integer exponent, truncated to the
// given scale.
// The power is computed exactly before truncation.
// A negative exponent gives one divided by the power, truncated.
// Zero to the power of zero is one.
//
// Pow returns an error wrapping [ErrDivisionByZero] if the base is zero and
// the exponent is negative.
// Pow panics if the scale is negative.
func Pow(base Decimal, exponent, scale int) (Decimal, error) {
	checkScale("Pow", scale)
	n := exponent
	if n < 0 {
		n = -n
	}
	p, b := decimal.New(1, 0), base.value
	for n > 0 {
		if n&1 == 1 {
			p = p.Mul(b)
		}
		n >>= 1
		if n > 0 {
			b = b.Mul(b)
		}
	}
	if exponent < 0 {
		if p.IsZero() {
			return Decimal{}, fmt.Errorf("computing [%v^%v]: %w", base, exponent, ErrDivisionByZero)
		}
		p, _ = decimal.New(1, 0).QuoRem(p, int32(scale)) //nolint:gosec
	}
	return newDecimal(p, scale), nil
}

// Sqrt returns the square root of d truncated to the given scale.
//
// Sqrt returns an error wrapping [ErrNegativeSqrt] if d is negative,
// there is no real result for such input.
// Sqrt panics if the scale is negative.
func Sqrt(d Decimal, scale int) (Decimal, error) {
	checkScale("Sqrt", scale)
	if d.IsNeg() {
		return Decimal{}, fmt.Errorf("computing [sqrt(%v)]: %w", d, ErrNegativeSqrt)
	}
	// floor(sqrt(d) * 10^scale) = isqrt(floor(d * 10^(2*scale)))
	n := d.value.Shift(int32(2 * scale)).BigInt() //nolint:gosec
	r := new(big.Int).Sqrt(n)
	return newDecimal(decimal.NewFromBigInt(r, -int32(scale)), scale), nil //nolint:gosec
}

// Abs returns the absolute value of d with the same scale.
func Abs(d Decimal) Decimal {
	return newDecimal(d.value.Abs(), d.Scale())
}

// Neg returns d with the opposite sign and the same scale.
func Neg(d Decimal) Decimal {
	return newDecimal(d.value.Neg(), d.Scale())
}

// Max returns the numerically largest of the values.
// If several values are equal to the largest one, the first of them is
// returned.
// Max of no values is "0.00"; callers that need a failure instead must check
// the number of values themselves.
func Max(values ...Decimal) Decimal {
	if len(values) == 0 {
		return Decimal{}
	}
	m := values[0]
	for _, d := range values[1:] {
		if d.value.Cmp(m.value) > 0 {
			m = d
		}
	}
	return m
}

// Min returns the numerically smallest of the values.
// If several values are equal to the smallest one, the first of them is
// returned.
// Min of no values is "0.00".
func Min(values ...Decimal) Decimal {
	if len(values) == 0 {
		return Decimal{}
	}
	m := values[0]
	for _, d := range values[1:] {
		if d.value.Cmp(m.value) < 0 {
			m = d
		}
	}
	return m
}

// Avg returns the arithmetic mean of the values, that is their [Sum]
// divided by their count with [Divide].
//
// Avg returns an error wrapping [ErrEmptyAggregate] if there are no values.
func Avg(values ...Decimal) (Decimal, error) {
	if len(values) == 0 {
		return Decimal{}, fmt.Errorf("computing average: %w", ErrEmptyAggregate)
	}
	return Divide(Sum(values...), New(int64(len(values))))
}
