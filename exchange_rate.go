package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where XXX indicates
// an unknown currency.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // how many units of quote currency are needed to exchange for 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
// The rate is zero-padded to the sum of the scales of both currencies.
//
// NewExchRate returns an error if:
//   - the rate is not positive;
//   - base and quote are equal and the rate is not 1;
//   - padding the rate overflows its coefficient.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be equal to 1")
	}
	if scale := base.Scale() + quote.Scale(); rate.Scale() < scale {
		if rate.Prec()-rate.Scale() > decimal.MaxPrec-scale {
			return ExchangeRate{}, fmt.Errorf("with a pair of currencies %v/%v, the integer part of a %T can have at most %v digit(s), but it has %v digit(s)", base, quote, ExchangeRate{}, decimal.MaxPrec-scale, rate.Prec()-rate.Scale())
		}
		rate = rate.Pad(scale)
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the rate value.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// CanConv returns true if the rate can convert values denominated in curr.
func (r ExchangeRate) CanConv(curr Currency) bool {
	return curr == r.base &&
		r.base != XXX &&
		r.quote != XXX &&
		r.value.IsPos()
}

// Conv returns the decimal-backed amount converted from the base currency
// to the quote currency, rounded to the scale of the quote currency.
//
// Conv returns an error if the currency of the amount is not the base currency.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	if !r.CanConv(b.Curr()) {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, r, ErrCurrencyMismatch)
	}
	d, err := r.value.MulExact(b.Decimal(), r.quote.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, r, err)
	}
	return mustNewAmount(r.quote, d.Round(r.quote.Scale())), nil
}

// ConvScaled returns m converted from the base currency to the quote currency
// without any rounding: the rate is applied through [ScaledMoney.Mul], so the
// precision of the result may exceed the scale of the quote currency.
// Use [ScaledMoney.RoundToCurr] on the result when a settled value is needed.
//
// ConvScaled returns an error if the currency of m is not the base currency.
func (r ExchangeRate) ConvScaled(m ScaledMoney) (ScaledMoney, error) {
	if !r.CanConv(m.Curr()) {
		return ScaledMoney{}, fmt.Errorf("converting %v with %v: %w", m, r, ErrCurrencyMismatch)
	}
	n, err := m.Mul(r.value.String())
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("converting %v with %v: %w", m, r, err)
	}
	return newScaledUnsafe(r.quote, n.amount, n.prec), nil
}

// Inv returns the inverse of the exchange rate.
// The inverse is rounded to [decimal.MaxScale] digits after the decimal point
// at most, so converting back and forth is not guaranteed to be exact.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	if r.value.IsZero() {
		return ExchangeRate{}, fmt.Errorf("inverting %v: zero rate does not have an inverse", r)
	}
	d, err := r.value.Inv()
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.quote, r.base, d)
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.base == r.base && q.quote == r.quote
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "USD/EUR 1.2345".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.base.String() + "/" + r.quote.String() + " " + r.value.String()
}
