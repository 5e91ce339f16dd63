// Package pricebook keeps the latest exchange price of each currency pair
// and converts amounts with them.
package pricebook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/govalues/measurement/money"
)

// ErrPriceNotFound is returned when the book holds no price for a pair.
var ErrPriceNotFound = errors.New("price not found")

// Book is a set of exchange prices keyed by currency pair.
// It is safe for concurrent use.
type Book struct {
	mu     sync.RWMutex
	prices map[money.CurrencyPair]money.ExchangePrice
}

// New returns an empty book.
func New() *Book {
	return &Book{prices: make(map[money.CurrencyPair]money.ExchangePrice)}
}

// Load reads exchange prices, one "SELL_BUY,price" per line.
// Blank lines and lines starting with '#' are skipped.
func Load(r io.Reader) (*Book, error) {
	b := New()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := money.ParseExchPrice(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		b.Add(p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading prices: %w", err)
	}
	return b, nil
}

// Add stores p, replacing any earlier price of the same pair.
func (b *Book) Add(p money.ExchangePrice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prices[p.Pair()] = p
}

// Lookup returns the price of selling sell for buy.
func (b *Book) Lookup(sell, buy money.Currency) (money.ExchangePrice, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.prices[money.NewCurrPair(sell, buy)]
	return p, ok
}

// Len returns the number of pairs in the book.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.prices)
}

// Pairs returns the symbols of all pairs in the book, sorted.
func (b *Book) Pairs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	symbols := make([]string, 0, len(b.prices))
	for pair := range b.prices {
		symbols = append(symbols, pair.String())
	}
	slices.Sort(symbols)
	return symbols
}

// Convert exchanges amount a into currency to at the price of the
// a.Curr() to pair.
func (b *Book) Convert(a money.Amount, to money.Currency) (money.Amount, error) {
	p, ok := b.Lookup(a.Curr(), to)
	if !ok {
		return money.Amount{}, fmt.Errorf("converting %v to %v: %w", a, to, ErrPriceNotFound)
	}
	return money.Exchange(a, p)
}
