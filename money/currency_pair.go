package money

import (
	"fmt"
	"strings"
)

// DefaultDelimiter separates the sell and buy currencies in the symbol of
// a currency pair, as in "USD_RUB".
const DefaultDelimiter = "_"

// CurrencyPair represents the direction of an exchange: the currency being
// sold and the currency being bought for it.
type CurrencyPair struct {
	sell Currency
	buy  Currency
}

// NewCurrPair returns a currency pair exchanging sell for buy.
func NewCurrPair(sell, buy Currency) CurrencyPair {
	return CurrencyPair{sell: sell, buy: buy}
}

// ParseCurrPair converts a symbol such as "BTC_USDT" to a currency pair.
// The delimiter separates the sell currency from the buy currency.
//
// ParseCurrPair returns an error wrapping [ErrInvalidFormat] if:
//   - the delimiter is empty;
//   - the symbol does not contain the delimiter;
//   - either currency code is not valid.
func ParseCurrPair(symbol, delimiter string) (CurrencyPair, error) {
	p, err := parseCurrPair(symbol, delimiter)
	if err != nil {
		return CurrencyPair{}, fmt.Errorf("parsing currency pair %q: %w", symbol, err)
	}
	return p, nil
}

func parseCurrPair(symbol, delimiter string) (CurrencyPair, error) {
	if delimiter == "" {
		return CurrencyPair{}, fmt.Errorf("%w: invalid delimiter", ErrInvalidFormat)
	}
	s, b, ok := strings.Cut(symbol, delimiter)
	if !ok {
		return CurrencyPair{}, fmt.Errorf("%w: missing delimiter %q", ErrInvalidFormat, delimiter)
	}
	sell, err := ParseCurr(s)
	if err != nil {
		return CurrencyPair{}, err
	}
	buy, err := ParseCurr(b)
	if err != nil {
		return CurrencyPair{}, err
	}
	return NewCurrPair(sell, buy), nil
}

// MustParseCurrPair is like [ParseCurrPair] with [DefaultDelimiter] but
// panics if the symbol cannot be parsed.
func MustParseCurrPair(symbol string) CurrencyPair {
	p, err := ParseCurrPair(symbol, DefaultDelimiter)
	if err != nil {
		panic(fmt.Sprintf("ParseCurrPair(%q, %q) failed: %v", symbol, DefaultDelimiter, err))
	}
	return p
}

// Sell returns the currency being sold.
func (p CurrencyPair) Sell() Currency {
	return p.sell
}

// Buy returns the currency being bought.
func (p CurrencyPair) Buy() Currency {
	return p.buy
}

// Symbol returns the codes of the sell and buy currencies joined by
// the delimiter, which may be empty:
//
//	BTC_USDT
//	BTCUSDT
func (p CurrencyPair) Symbol(delimiter string) string {
	return p.Sell().Code() + delimiter + p.Buy().Code()
}

// Inv returns the pair exchanging in the opposite direction.
func (p CurrencyPair) Inv() CurrencyPair {
	return NewCurrPair(p.Buy(), p.Sell())
}

// String implements the [fmt.Stringer] interface and returns the symbol
// with [DefaultDelimiter].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p CurrencyPair) String() string {
	return p.Symbol(DefaultDelimiter)
}
