package money

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var errAmountOverflow = errors.New("amount overflow")

// Amount type represents a ledger balance backed by a [decimal.Decimal].
// Unlike [ScaledMoney], an Amount always carries at least the scale of its
// currency and rounds results that exceed 19 significant digits, which makes
// it suitable for reporting balances in the currency's minor units.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newAmountUnsafe creates a new amount without checking the scale.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe creates a new amount and pads it to the scale of the currency.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	return newAmountUnsafe(c, d), nil
}

// mustNewAmount is like [newAmountSafe] but panics on overflow.
func mustNewAmount(c Currency, d decimal.Decimal) Amount {
	a, err := newAmountSafe(c, d)
	if err != nil {
		panic(fmt.Sprintf("newAmountSafe(%v, %v) failed: %v", c, d, err))
	}
	return a
}

// NewAmount returns an amount equal to coef / 10^scale.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
//
// NewAmount returns an error if:
//   - the currency code is not valid;
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmount(curr string, coef int64, scale int) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	a, err := newAmountSafe(c, d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
func MustNewAmount(curr string, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right. See also method [Amount.Decimal].
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, amount)
}

// ParseAmount converts currency and decimal strings to a (possibly rounded) amount.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.ParseExact(amount, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Scaled converts the amount to an exact [ScaledMoney] with precision equal
// to the scale of the amount.
func (a Amount) Scaled() ScaledMoney {
	return NewScaledFromAmount(a)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns true if a = 0.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.curr, a.value.Neg())
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return a.value.Scale()
}

// SameCurr returns true if amounts are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// Add returns the (possibly rounded) sum of amounts a and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	d, err := a.value.AddExact(b.value, a.curr.Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(a.curr, d)
}

// Sub returns the (possibly rounded) difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	d, err := a.value.SubExact(b.value, a.curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return newAmountSafe(a.curr, d)
}

// Mul returns the (possibly rounded) product of amount a and factor e.
//
// Mul returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	d, err := a.value.MulExact(e, a.curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return newAmountSafe(a.curr, d)
}

// Quo returns the (possibly rounded) quotient of amount a and divisor e.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	d, err := a.value.QuoExact(e, a.curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return newAmountSafe(a.curr, d)
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed one unit in the last place at a time
// among the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}

	// Quotient
	quo, err := a.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = newAmountUnsafe(quo.curr, quo.value.Trunc(a.Scale()).Pad(a.Scale()))

	// Remainder
	rem, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err = a.Sub(rem)
	if err != nil {
		return nil, err
	}
	ulp := newAmountUnsafe(a.curr, a.value.ULP().CopySign(rem.value))

	res := make([]Amount, parts)
	for i := range res {
		res[i] = quo
		if !rem.IsZero() {
			if rem, err = rem.Sub(ulp); err != nil {
				return nil, err
			}
			if res[i], err = res[i].Add(ulp); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using rounding half to even (banker's rounding).
// The result is never rounded below the scale of the currency.
func (a Amount) Round(scale int) Amount {
	return newAmountUnsafe(a.curr, a.value.Round(scale).Pad(a.curr.Scale()))
}

// RoundToCurr returns an amount rounded to the scale of its currency.
func (a Amount) RoundToCurr() Amount {
	return a.Round(a.curr.Scale())
}

// Trim returns an amount with trailing zeros removed up to the given scale.
// If the given scale is less than the scale of the currency, the zeros will be
// removed up to the scale of the currency instead.
func (a Amount) Trim(scale int) Amount {
	scale = max(scale, a.curr.Scale())
	return newAmountUnsafe(a.curr, a.value.Trim(scale))
}

// TrimToCurr returns an amount with trailing zeros removed up the scale of its currency.
func (a Amount) TrimToCurr() Amount {
	return a.Trim(a.curr.Scale())
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "USD 5.678".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.Code() + " " + a.value.String()
}
