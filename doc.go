/*
Package measurement implements exact decimal arithmetic for money-sensitive
computations.
It never routes a value through binary floating point: decimals are backed
by the arbitrary-precision [decimal] package and carry an explicit scale.

# Features

  - Immutable decimal values of arbitrary length, safe for concurrent use
  - Scale inference: arithmetic without an explicit scale works at the
    larger scale of its operands
  - Deterministic truncation in arithmetic and comparisons, rounding half
    away from zero only in [Round]
  - Rounding at negative precision (tens, hundreds, ...)
  - Variadic arithmetic folded strictly left to right

# Representation

A [Decimal] is a numeric value together with its scale, the number of digits
after the decimal point.
Its canonical text always contains a decimal point.
Integers and dotless literals are given two digits after the decimal point,
so "100" is represented as "100.00", while "10.0" keeps its single digit.
Two decimals with equal values but different scales are different decimals.

# Scale Inference

Functions such as [Sum], [Difference], [Multiply] and [Divide] accept a
list of operands and fold it from left to right.
At every step the running result is truncated to the larger scale of the
running result and the next operand, see [MaxScale].
Because truncation participates, the result depends on the order of the
operands.
The *WithScale variants use a fixed scale at every step instead.

Comparison functions such as [Equal] and [Less] compare at the larger scale
of their operands; the *At variants compare at a given scale and ignore
digits beyond it.

# Errors

[Divide] and [Pow] return [ErrDivisionByZero], [Avg] of nothing returns
[ErrEmptyAggregate], [Sqrt] of a negative number returns [ErrNegativeSqrt],
and [Parse] returns [ErrInvalidFormat].
Negative scale arguments are programming errors and cause a panic.

[decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package measurement
