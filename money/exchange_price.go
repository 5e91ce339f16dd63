package money

import (
	"fmt"
	"strings"

	"github.com/govalues/measurement"
)

// ExchangePrice represents a unidirectional exchange price of a currency pair:
// how many units of the buy currency are obtained for 1 unit of the sell currency.
// The zero value corresponds to a price of "0.00" between unknown currencies.
//
// ExchangePrice is designed to be safe for concurrent use by multiple goroutines.
type ExchangePrice struct {
	pair  CurrencyPair        // direction of the exchange
	price measurement.Decimal // units of buy currency per unit of sell currency
}

// NewExchPrice returns a new exchange price of the currency pair.
func NewExchPrice(pair CurrencyPair, price measurement.Decimal) ExchangePrice {
	return ExchangePrice{pair: pair, price: price}
}

// ParseExchPrice converts the flat text form of an exchange price,
// the pair symbol and the price separated by a comma, to an exchange price:
//
//	USD_RUB,69.6481
//	BTC_USDT,17424.44
//
// See also constructors [ParseCurrPair] and [measurement.Parse].
func ParseExchPrice(s string) (ExchangePrice, error) {
	symbol, price, ok := strings.Cut(s, ",")
	if !ok {
		return ExchangePrice{}, fmt.Errorf("parsing exchange price %q: %w: missing comma", s, ErrInvalidFormat)
	}
	p, err := ParseCurrPair(symbol, DefaultDelimiter)
	if err != nil {
		return ExchangePrice{}, fmt.Errorf("parsing exchange price %q: %w", s, err)
	}
	d, err := measurement.Parse(price)
	if err != nil {
		return ExchangePrice{}, fmt.Errorf("parsing exchange price %q: %w", s, err)
	}
	return NewExchPrice(p, d), nil
}

// MustParseExchPrice is like [ParseExchPrice] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding exchange prices.
func MustParseExchPrice(s string) ExchangePrice {
	p, err := ParseExchPrice(s)
	if err != nil {
		panic(fmt.Sprintf("ParseExchPrice(%q) failed: %v", s, err))
	}
	return p
}

// Pair returns the currency pair of the exchange price.
func (p ExchangePrice) Pair() CurrencyPair {
	return p.pair
}

// Price returns the decimal price.
func (p ExchangePrice) Price() measurement.Decimal {
	return p.price
}

// SameCurr returns true if exchange prices are quoted for the same currency pair.
func (p ExchangePrice) SameCurr(q ExchangePrice) bool {
	return p.Pair() == q.Pair()
}

// Inv returns the price of the opposite direction, truncated to the scale
// of the price.
//
// Inv returns an error wrapping [measurement.ErrDivisionByZero] if the price is zero.
func (p ExchangePrice) Inv() (ExchangePrice, error) {
	d, err := measurement.DivideWithScale(p.price.Scale(), measurement.New(1), p.price)
	if err != nil {
		return ExchangePrice{}, fmt.Errorf("inverting %v: %w", p, err)
	}
	return NewExchPrice(p.Pair().Inv(), d), nil
}

// CanExch returns true if [Exchange] can be used to exchange the given amount
// at price p.
func (p ExchangePrice) CanExch(a Amount) bool {
	return a.Curr() == p.Pair().Sell() && a.Curr() != p.Pair().Buy()
}

// String method implements the [fmt.Stringer] interface and returns
// the flat text form of the exchange price:
//
//	EUR_USD,1.05
//
// See also constructor [ParseExchPrice].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p ExchangePrice) String() string {
	return p.Pair().Symbol(DefaultDelimiter) + "," + p.price.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseExchPrice].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (p *ExchangePrice) UnmarshalText(text []byte) error {
	var err error
	*p, err = ParseExchPrice(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", ExchangePrice{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [ExchangePrice.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (p ExchangePrice) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Exchange sells amount a at price p and returns the amount of the buy
// currency obtained. The result is the product of the amount and the price,
// truncated to the larger of their scales.
//
// Exchange returns an error if:
//   - the currency of the amount is not the sell currency of the pair;
//   - the currency of the amount is the buy currency of the pair.
func Exchange(a Amount, p ExchangePrice) (Amount, error) {
	if a.Curr() != p.Pair().Sell() {
		return Amount{}, fmt.Errorf("exchanging %v at %v: %w", a, p, ErrCurrencyMismatch)
	}
	if a.Curr() == p.Pair().Buy() {
		return Amount{}, fmt.Errorf("exchanging %v at %v: %w", a, p, ErrSameCurrency)
	}
	return NewAmount(p.Pair().Buy(), measurement.Multiply(a.Decimal(), p.Price())), nil
}
