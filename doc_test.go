package measurement_test

import (
	"fmt"

	"github.com/govalues/measurement"
)

// In this example, a bill is split between three people and the remainder
// that truncation leaves behind is computed exactly.
func Example_billSplitting() {
	total := measurement.Sum(
		measurement.MustParse("12.99"),
		measurement.MustParse("7.45"),
		measurement.MustParse("3.10"),
	)
	share, err := measurement.Divide(total, measurement.New(3))
	if err != nil {
		panic(err)
	}
	rest := measurement.Difference(total, share, share, share)

	fmt.Println("Total  =", total)
	fmt.Println("Share  =", share)
	fmt.Println("Rest   =", rest)
	// Output:
	// Total  = 23.54
	// Share  = 7.84
	// Rest   = 0.02
}

func ExampleParse() {
	fmt.Println(measurement.Parse("100"))
	fmt.Println(measurement.Parse("10.0"))
	fmt.Println(measurement.Parse("1,5"))
	// Output:
	// 100.00 <nil>
	// 10.0 <nil>
	// 0.00 parsing "1,5": invalid format
}

func ExampleNew() {
	fmt.Println(measurement.New(-7))
	// Output: -7.00
}

func ExampleSum() {
	fmt.Println(measurement.Sum(
		measurement.MustParse("500.00"),
		measurement.MustParse("499.99"),
		measurement.MustParse("0.01"),
	))
	// Output: 1000.00
}

func ExampleDifference() {
	fmt.Println(measurement.Difference(
		measurement.MustParse("1000.00"),
		measurement.MustParse("999.99999999999"),
	))
	// Output: 0.00000000001
}

func ExampleMultiply() {
	fmt.Println(measurement.Multiply(
		measurement.MustParse("15"),
		measurement.MustParse("0.0001"),
		measurement.MustParse("2.00000"),
	))
	// Output: 0.00300
}

func ExampleDivide() {
	fmt.Println(measurement.Divide(measurement.MustParse("1000"), measurement.MustParse("3")))
	fmt.Println(measurement.Divide(measurement.MustParse("1000"), measurement.MustParse("3.000")))
	_, err := measurement.Divide(
		measurement.MustParse("1000"),
		measurement.MustParse("10"),
		measurement.MustParse("0"),
		measurement.MustParse("10"),
	)
	fmt.Println(err)
	// Output:
	// 333.33 <nil>
	// 333.333 <nil>
	// computing [1000.00 / [10.00 0.00 10.00]]: division by zero
}

func ExamplePow() {
	fmt.Println(measurement.Pow(measurement.MustParse("-5.00"), 3, 3))
	// Output: -125.000 <nil>
}

func ExampleSqrt() {
	fmt.Println(measurement.Sqrt(measurement.MustParse("5"), 10))
	fmt.Println(measurement.Sqrt(measurement.MustParse("-5"), 10))
	// Output:
	// 2.2360679774 <nil>
	// 0.00 computing [sqrt(-5.00)]: square root of negative number
}

func ExampleAvg() {
	fmt.Println(measurement.Avg(
		measurement.MustParse("333.222"),
		measurement.MustParse("222.111"),
		measurement.MustParse("111.8"),
		measurement.MustParse("-5000.007"),
	))
	fmt.Println(measurement.Avg())
	// Output:
	// -1083.218 <nil>
	// 0.00 computing average: impossible to get average from emptiness
}

func ExampleRound() {
	d := measurement.MustParse("500.123456789")
	fmt.Println(measurement.Round(d, 5))
	fmt.Println(measurement.Round(d, 0))
	fmt.Println(measurement.Round(d, -3))
	fmt.Println(measurement.Round(d, -4))
	// Output:
	// 500.12346
	// 500.00
	// 1000.00
	// 0.00
}

func ExampleEqualAt() {
	a := measurement.MustParse("10.0000005")
	b := measurement.MustParse("10.00000055")
	fmt.Println(measurement.Equal(a, b))
	fmt.Println(measurement.EqualAt(a, b, 7))
	// Output:
	// false
	// true
}
