package money

import (
	"encoding"
	"fmt"
	"sync"
	"testing"

	"github.com/govalues/measurement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_ZeroValue(t *testing.T) {
	got := Amount{}
	assert.Equal(t, Currency{}, got.Curr())
	assert.Equal(t, "0.00", got.Decimal().String())
	assert.True(t, got.IsZero())
}

func TestAmount_Interfaces(t *testing.T) {
	var i any = Amount{}
	_, ok := i.(fmt.Stringer)
	assert.True(t, ok, "%T does not implement fmt.Stringer", i)
	_, ok = i.(encoding.TextMarshaler)
	assert.True(t, ok, "%T does not implement encoding.TextMarshaler", i)
	i = &Amount{}
	_, ok = i.(encoding.TextUnmarshaler)
	assert.True(t, ok, "%T does not implement encoding.TextUnmarshaler", i)
}

func TestNewAmount(t *testing.T) {
	rub := MustParseCurr("RUB")
	d := measurement.New(100)
	got := NewAmount(rub, d)
	assert.Equal(t, rub, got.Curr())
	assert.Equal(t, d, got.Decimal())
	assert.Equal(t, "100.00 RUB", got.String())
}

func TestParseAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount string
			want         string
		}{
			{"RUB", "100", "100.00 RUB"},
			{"USD", "-0.000001", "-0.000001 USD"},
			{"BTC", "0.001", "0.001 BTC"},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.curr, tt.amount)
			require.NoError(t, err, "ParseAmount(%q, %q)", tt.curr, tt.amount)
			assert.Equal(t, tt.want, got.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			curr, amount string
		}{
			{"", "100"},
			{"R$", "100"},
			{"RUB", ""},
			{"RUB", "1,5"},
		}
		for _, tt := range tests {
			_, err := ParseAmount(tt.curr, tt.amount)
			assert.ErrorIs(t, err, ErrInvalidFormat, "ParseAmount(%q, %q)", tt.curr, tt.amount)
		}
	})
}

func TestMustParseAmount(t *testing.T) {
	assert.Panics(t, func() { MustParseAmount("RUB", "x") })
}

func TestParseAmountText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := ParseAmountText("100.00 USD")
		require.NoError(t, err)
		assert.Equal(t, "USD", got.Curr().Code())
		assert.Equal(t, "100.00", got.Decimal().String())
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "100.00", "100.00USD", "USD 100.00", "100.00  USD", "100.00 USD EUR"}
		for _, tt := range tests {
			_, err := ParseAmountText(tt)
			assert.ErrorIs(t, err, ErrInvalidFormat, "ParseAmountText(%q)", tt)
		}
	})
}

func TestAmount_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want string
		}{
			{"100", "19.95", "119.95"},
			{"100", "0", "100.00"},
			{"0.001", "0.00001", "0.00101"},
			{"-5", "2.5", "-2.50"},
		}
		for _, tt := range tests {
			a, b := MustParseAmount("RUB", tt.a), MustParseAmount("RUB", tt.b)
			got, err := a.Add(b)
			require.NoError(t, err, "%q.Add(%q)", a, b)
			assert.Equal(t, tt.want, got.Decimal().String(), "%q.Add(%q)", a, b)
			assert.Equal(t, a.Curr(), got.Curr())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b    Amount
			wantErr error
		}{
			"negative amount":   {MustParseAmount("RUB", "100"), MustParseAmount("RUB", "-0.000001"), ErrNegativeAmount},
			"currency mismatch": {MustParseAmount("RUB", "100"), MustParseAmount("USD", "1"), ErrCurrencyMismatch},
			"negative first":    {MustParseAmount("RUB", "100"), MustParseAmount("USD", "-1"), ErrNegativeAmount},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.a.Add(tt.b)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrRuleViolation)
			})
		}
	})
}

func TestAmount_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, want string
		}{
			{"100", "55.30", "44.70"},
			{"100", "100", "0.00"},
			{"1000.00", "999.99999999999", "0.00000000001"},
		}
		for _, tt := range tests {
			a, b := MustParseAmount("RUB", tt.a), MustParseAmount("RUB", tt.b)
			got, err := a.Sub(b)
			require.NoError(t, err, "%q.Sub(%q)", a, b)
			assert.Equal(t, tt.want, got.Decimal().String(), "%q.Sub(%q)", a, b)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b    Amount
			wantErr error
		}{
			"negative amount":    {MustParseAmount("RUB", "100"), MustParseAmount("RUB", "-0.000001"), ErrNegativeAmount},
			"currency mismatch":  {MustParseAmount("RUB", "100"), MustParseAmount("USD", "1"), ErrCurrencyMismatch},
			"insufficient funds": {MustParseAmount("RUB", "100"), MustParseAmount("RUB", "101"), ErrInsufficientFunds},
			"mismatch first":     {MustParseAmount("RUB", "100"), MustParseAmount("USD", "101"), ErrCurrencyMismatch},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.a.Sub(tt.b)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrRuleViolation)
			})
		}
	})
}

func TestAmount_Equal(t *testing.T) {
	a := MustParseAmount("RUB", "100")
	tests := []struct {
		b    Amount
		want bool
	}{
		{MustParseAmount("RUB", "100"), true},
		{MustParseAmount("RUB", "100.0000"), true},
		{MustParseAmount("RUB", "101"), false},
		{MustParseAmount("USD", "100"), false},
		{MustParseAmount("EUR", "99"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Equal(tt.b), "%q.Equal(%q)", a, tt.b)
	}
}

func TestAmount_Round(t *testing.T) {
	got := MustParseAmount("USD", "7.156789").Round(2)
	assert.Equal(t, "7.16 USD", got.String())
}

func TestAmount_Text(t *testing.T) {
	a := MustParseAmount("USDT", "17.424")
	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "17.424 USDT", string(text))

	var got Amount
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, a.String(), got.String())

	assert.Error(t, got.UnmarshalText([]byte("17.424")))
}

func TestAmount_Concurrent(t *testing.T) {
	a := MustParseAmount("RUB", "100")
	b := MustParseAmount("RUB", "0.01")
	var wg sync.WaitGroup
	for _i := 0; _i < 8; _i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _i := 0; _i < 100; _i++ {
				_, _ = a.Add(b)
				_, _ = a.Sub(b)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, "100.00 RUB", a.String())
}
