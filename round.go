package measurement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Round returns d rounded to the given number of digits after the decimal
// point using rounding half away from zero.
//
// For a non-negative precision, half a unit of the last kept digit is added
// to a positive d (subtracted from a negative d) and the result is truncated
// to precision digits.
// If precision exceeds the scale of d, the result is zero-padded:
//
//	Round("500", 3) = "500.000"
//
// A negative precision rounds to tens, hundreds, and so on:
//
//	Round("500.123456789", -3) = "1000.00"
//	Round("500.123456789", -4) = "0.00"
//
// Results rounded to zero or fewer digits are given two zero digits after
// the decimal point, like any integer.
//
// Round panics if |precision| is out of range.
func Round(d Decimal, precision int) Decimal {
	if precision < 0 {
		checkScale("Round", -precision)
		k := int32(-precision) //nolint:gosec
		pow := decimal.New(1, k)
		q, _ := d.value.QuoRem(pow, k)
		return newDecimal(roundHalf(q, 0).Mul(pow), 0)
	}
	checkScale("Round", precision)
	return newDecimal(roundHalf(d.value, int32(precision)), precision) //nolint:gosec
}

// roundHalf rounds v half away from zero to the given scale.
func roundHalf(v decimal.Decimal, scale int32) decimal.Decimal {
	half := decimal.New(5, -scale-1)
	if v.IsNegative() {
		return v.Sub(half).Truncate(scale)
	}
	return v.Add(half).Truncate(scale)
}

// Trunc returns d truncated toward zero to the given number of digits after
// the decimal point.
// If the scale exceeds the scale of d, the result is zero-padded.
//
// Trunc panics if the scale is negative.
func Trunc(d Decimal, scale int) Decimal {
	checkScale("Trunc", scale)
	return newDecimal(d.value, scale)
}

// Cmp compares decimals at their [MaxScale] and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func Cmp(a, b Decimal) int {
	return CmpAt(a, b, MaxScale(a, b))
}

// CmpAt is like [Cmp] but ignores digits beyond the given scale.
// Both decimals are truncated, not rounded, before they are compared, so
// decimals that differ only beyond the scale are equal:
//
//	CmpAt("10.0000005", "10.00000055", 7) = 0
//
// CmpAt panics if the scale is negative.
func CmpAt(a, b Decimal, scale int) int {
	if scale < 0 || scale > maxScaleArg {
		panic(fmt.Sprintf("CmpAt(%v, %v, %v) failed: scale out of range", a, b, scale))
	}
	s := int32(scale) //nolint:gosec
	return a.value.Truncate(s).Cmp(b.value.Truncate(s))
}

// Equal returns true if a = b at their [MaxScale].
func Equal(a, b Decimal) bool { return Cmp(a, b) == 0 }

// EqualAt returns true if a = b at the given scale. See [CmpAt].
func EqualAt(a, b Decimal, scale int) bool { return CmpAt(a, b, scale) == 0 }

// NotEqual returns true if a != b at their [MaxScale].
func NotEqual(a, b Decimal) bool { return Cmp(a, b) != 0 }

// NotEqualAt returns true if a != b at the given scale. See [CmpAt].
func NotEqualAt(a, b Decimal, scale int) bool { return CmpAt(a, b, scale) != 0 }

// Less returns true if a < b at their [MaxScale].
func Less(a, b Decimal) bool { return Cmp(a, b) < 0 }

// LessAt returns true if a < b at the given scale. See [CmpAt].
func LessAt(a, b Decimal, scale int) bool { return CmpAt(a, b, scale) < 0 }

// Greater returns true if a > b at their [MaxScale].
func Greater(a, b Decimal) bool { return Cmp(a, b) > 0 }

// GreaterAt returns true if a > b at the given scale. See [CmpAt].
func GreaterAt(a, b Decimal, scale int) bool { return CmpAt(a, b, scale) > 0 }

// LessOrEqual returns true if a <= b at their [MaxScale].
func LessOrEqual(a, b Decimal) bool { return Cmp(a, b) <= 0 }

// LessOrEqualAt returns true if a <= b at the given scale. See [CmpAt].
func LessOrEqualAt(a, b Decimal, scale int) bool { return CmpAt(a, b, scale) <= 0 }

// GreaterOrEqual returns true if a >= b at their [MaxScale].
func GreaterOrEqual(a, b Decimal) bool { return Cmp(a, b) >= 0 }

// GreaterOrEqualAt returns true if a >= b at the given scale. See [CmpAt].
func GreaterOrEqualAt(a, b Decimal, scale int) bool { return CmpAt(a, b, scale) >= 0 }
