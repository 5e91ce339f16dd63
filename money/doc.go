/*
Package money implements monetary amounts, currency pairs and exchange
prices on top of the exact decimal arithmetic of package
[github.com/govalues/measurement].

# Representation

[Currency] is a code such as USD, RUB or USDT. Codes are free-form
alphanumeric tokens, so crypto assets are supported as well as ISO 4217
currencies.

[Amount] is a [measurement.Decimal] denominated in a currency.
Its text form is the decimal followed by the code:

	100.00 USD

[ExchangePrice] tells how many units of the buy currency of a
[CurrencyPair] are obtained for one unit of its sell currency.
Its flat text form is the pair symbol and the price separated by a comma:

	USD_RUB,69.6481

# Errors

Operations that break a rule of the domain, such as adding a negative
amount, subtracting more than is available, or mixing currencies, return
errors wrapping [ErrRuleViolation]. Malformed text returns errors wrapping
[ErrInvalidFormat].
*/
package money
