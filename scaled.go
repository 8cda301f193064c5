package money

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// DefaultPrec is the precision used by [NewScaledDefault].
const DefaultPrec = 2

var (
	// ErrInvalidAmount is returned when a constructor receives a negative amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidPrecision is returned when a precision is negative.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrCurrencyMismatch is returned when two values denominated in different
	// currencies are combined.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInvalidMultiplier is returned when a multiplier is not a well-formed
	// decimal numeral.
	ErrInvalidMultiplier = errors.New("invalid multiplier")
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

// ScaledMoney type represents a monetary value as an arbitrary-precision
// integer amount scaled by 10^prec.
// For example, amount 1500 with precision 2 is 15.00 units of its currency.
//
// ScaledMoney never rounds implicitly: the precision of a result is whatever
// is needed to hold it exactly.
// Its zero value corresponds to "XXX 0".
// ScaledMoney is immutable and safe for concurrent use by multiple goroutines.
type ScaledMoney struct {
	curr   Currency
	prec   int
	amount *big.Int // shared between values, must never be mutated
}

func newScaledUnsafe(c Currency, amount *big.Int, prec int) ScaledMoney {
	return ScaledMoney{curr: c, prec: prec, amount: amount}
}

func newScaledSafe(c Currency, amount *big.Int, prec int) (ScaledMoney, error) {
	switch {
	case !c.IsKnown():
		return ScaledMoney{}, fmt.Errorf("%w: %v cannot hold a value", ErrInvalidCurrency, c)
	case amount == nil:
		return ScaledMoney{}, fmt.Errorf("%w: amount is missing", ErrInvalidAmount)
	case amount.Sign() < 0:
		return ScaledMoney{}, fmt.Errorf("%w: %v is negative", ErrInvalidAmount, amount)
	case prec < 0:
		return ScaledMoney{}, fmt.Errorf("%w: %v is negative", ErrInvalidPrecision, prec)
	}
	return newScaledUnsafe(c, new(big.Int).Set(amount), prec), nil
}

// NewScaled returns a value equal to amount / 10^prec.
// The fields are stored verbatim, no trailing zeros are removed.
//
// NewScaled returns an error if:
//   - the currency code is not valid or is [XXX];
//   - the amount is negative;
//   - the precision is negative.
//
// Zero amounts are accepted.
func NewScaled(curr string, amount int64, prec int) (ScaledMoney, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("parsing currency: %w", err)
	}
	m, err := newScaledSafe(c, big.NewInt(amount), prec)
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("creating %v money: %w", c, err)
	}
	return m, nil
}

// NewScaledDefault is like [NewScaled] with precision [DefaultPrec].
func NewScaledDefault(curr string, amount int64) (ScaledMoney, error) {
	return NewScaled(curr, amount, DefaultPrec)
}

// MustNewScaled is like [NewScaled] but panics if the value cannot be constructed.
// It is meant for callers that have already validated their inputs.
func MustNewScaled(curr string, amount int64, prec int) ScaledMoney {
	m, err := NewScaled(curr, amount, prec)
	if err != nil {
		panic(fmt.Sprintf("NewScaled(%q, %v, %v) failed: %v", curr, amount, prec, err))
	}
	return m
}

// NewScaledFromBigInt is like [NewScaled] for amounts that do not fit into
// an int64. The amount is copied.
func NewScaledFromBigInt(curr Currency, amount *big.Int, prec int) (ScaledMoney, error) {
	return newScaledSafe(curr, amount, prec)
}

// NewScaledFromAmount converts a decimal-backed amount.
// The precision of the result equals the scale of the amount.
// See also method [ScaledMoney.Amount].
func NewScaledFromAmount(a Amount) ScaledMoney {
	d := a.Decimal()
	amount := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		amount.Neg(amount)
	}
	return newScaledUnsafe(a.Curr(), amount, d.Scale())
}

// ParseScaled converts text produced by [ScaledMoney.Text] back to a value.
// The precision of the result is the number of digits after sep, so
// ParseScaled(m.Curr().Code(), m.Text(sep), sep) reproduces m exactly.
// Unlike [NewScaled], ParseScaled accepts negative amounts.
func ParseScaled(curr, s, sep string) (ScaledMoney, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("parsing currency: %w", err)
	}
	if !c.IsKnown() {
		return ScaledMoney{}, fmt.Errorf("parsing currency: %w: %v cannot hold a value", ErrInvalidCurrency, c)
	}
	amount, prec, err := parseNumeral(s, sep)
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("parsing amount: %w: %w", ErrInvalidAmount, err)
	}
	return newScaledUnsafe(c, amount, prec), nil
}

// MustParseScaled is like [ParseScaled] with a "." separator but panics if
// the strings cannot be parsed.
func MustParseScaled(curr, s string) ScaledMoney {
	m, err := ParseScaled(curr, s, ".")
	if err != nil {
		panic(fmt.Sprintf("ParseScaled(%q, %q, \".\") failed: %v", curr, s, err))
	}
	return m
}

// parseNumeral parses an optional leading '-', ASCII digits and at most one
// separator. It returns the digits as an integer together with the number of
// digits after the separator.
func parseNumeral(s, sep string) (*big.Int, int, error) {
	if sep == "" {
		return nil, 0, fmt.Errorf("empty separator")
	}
	text := s
	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	}
	whole, frac, _ := strings.Cut(text, sep)
	if whole == "" && frac == "" {
		return nil, 0, fmt.Errorf("no digits in %q", s)
	}
	digits := make([]byte, 0, len(whole)+len(frac))
	for _, part := range [...]string{whole, frac} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return nil, 0, fmt.Errorf("unexpected character %q in %q", part[i], s)
			}
			digits = append(digits, part[i])
		}
	}

	// Leading zeros
	pos := 0
	for pos < len(digits)-1 && digits[pos] == '0' {
		pos++
	}

	amount, ok := new(big.Int).SetString(string(digits[pos:]), 10)
	if !ok {
		return nil, 0, fmt.Errorf("cannot convert %q", s)
	}
	if neg {
		amount.Neg(amount)
	}
	return amount, len(frac), nil
}

// pow10 returns 10^n as a new integer.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

func (m ScaledMoney) coef() *big.Int {
	if m.amount == nil {
		return bigZero
	}
	return m.amount
}

// Curr returns the currency of the value.
func (m ScaledMoney) Curr() Currency {
	return m.curr
}

// Prec returns the number of digits after the decimal point.
func (m ScaledMoney) Prec() int {
	return m.prec
}

// BigInt returns a copy of the scaled amount.
func (m ScaledMoney) BigInt() *big.Int {
	return new(big.Int).Set(m.coef())
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m ScaledMoney) Sign() int {
	return m.coef().Sign()
}

// IsZero returns true if m = 0.
func (m ScaledMoney) IsZero() bool {
	return m.Sign() == 0
}

// IsNeg returns true if m < 0.
func (m ScaledMoney) IsNeg() bool {
	return m.Sign() < 0
}

// IsPos returns true if m > 0.
func (m ScaledMoney) IsPos() bool {
	return m.Sign() > 0
}

// Neg returns a value with the opposite sign, the same precision and currency.
func (m ScaledMoney) Neg() ScaledMoney {
	return newScaledUnsafe(m.curr, new(big.Int).Neg(m.coef()), m.prec)
}

// Abs returns the absolute value.
func (m ScaledMoney) Abs() ScaledMoney {
	if !m.IsNeg() {
		return m
	}
	return m.Neg()
}

// SameCurr returns true if both values are denominated in the same currency.
func (m ScaledMoney) SameCurr(b ScaledMoney) bool {
	return m.curr == b.curr
}

// align returns the amounts of m and b scaled to the larger of the two
// precisions, together with that precision.
func (m ScaledMoney) align(b ScaledMoney) (x, y *big.Int, prec int) {
	x, y = m.coef(), b.coef()
	switch {
	case m.prec > b.prec:
		y = new(big.Int).Mul(y, pow10(m.prec-b.prec))
		return x, y, m.prec
	case m.prec < b.prec:
		x = new(big.Int).Mul(x, pow10(b.prec-m.prec))
		return x, y, b.prec
	}
	return x, y, m.prec
}

// Add returns the exact sum of m and b.
// The precision of the result is the larger of the two precisions, the
// operand with the smaller precision is zero-padded to the right.
//
// Add returns an error if the values are denominated in different currencies.
func (m ScaledMoney) Add(b ScaledMoney) (ScaledMoney, error) {
	c, err := m.add(b)
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m ScaledMoney) add(b ScaledMoney) (ScaledMoney, error) {
	if !m.SameCurr(b) {
		return ScaledMoney{}, ErrCurrencyMismatch
	}
	x, y, prec := m.align(b)
	return newScaledUnsafe(m.curr, new(big.Int).Add(x, y), prec), nil
}

// Sub returns the exact difference between m and b, computed as m + (-b).
// The result may be negative.
//
// Sub returns an error if the values are denominated in different currencies.
func (m ScaledMoney) Sub(b ScaledMoney) (ScaledMoney, error) {
	c, err := m.add(b.Neg())
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

// Mul returns m scaled by a dimensionless factor written as a decimal
// numeral, such as "0.5", "2" or "-0.025".
//
// The raw product carries the precision of m plus the number of fractional
// digits of the multiplier. Trailing zeros are then removed one at a time,
// stopping at the first non-zero digit or at the precision of m, so the
// result is always exact:
//
//	BRL 20.00 * "0.5" = BRL 10.00
//	BRL 299.99 * "1.5" = BRL 449.985
//
// Mul returns an error if the multiplier has characters other than ASCII
// digits, a leading '-' and one '.', or if it has no digits at all.
func (m ScaledMoney) Mul(multiplier string) (ScaledMoney, error) {
	c, err := m.mul(multiplier)
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("computing [%v * %q]: %w", m, multiplier, err)
	}
	return c, nil
}

func (m ScaledMoney) mul(multiplier string) (ScaledMoney, error) {
	f, fprec, err := parseNumeral(multiplier, ".")
	if err != nil {
		return ScaledMoney{}, fmt.Errorf("%w: %w", ErrInvalidMultiplier, err)
	}
	amount := new(big.Int).Mul(m.coef(), f)
	return newScaledUnsafe(m.curr, amount, m.prec+fprec).Trim(m.prec), nil
}

// Trim returns a value with trailing zeros removed down to the given
// precision. Non-zero digits are never removed.
// If the given precision is not less than the precision of m, m is returned.
func (m ScaledMoney) Trim(prec int) ScaledMoney {
	if prec < 0 {
		prec = 0
	}
	if m.prec <= prec {
		return m
	}
	coef := new(big.Int).Set(m.coef())
	scale := m.prec
	q, r := new(big.Int), new(big.Int)
	for scale > prec {
		q.QuoRem(coef, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		coef, q = q, coef
		scale--
	}
	return newScaledUnsafe(m.curr, coef, scale)
}

// Pad returns a value zero-padded to the right up to the given precision.
// If the given precision is not greater than the precision of m, m is returned.
func (m ScaledMoney) Pad(prec int) ScaledMoney {
	if prec <= m.prec {
		return m
	}
	amount := new(big.Int).Mul(m.coef(), pow10(prec-m.prec))
	return newScaledUnsafe(m.curr, amount, prec)
}

// Round returns a value rounded to the given number of digits after the
// decimal point using [rounding half to even] (banker's rounding).
// This is the only operation that discards digits, it is never applied
// implicitly. If the given precision is not less than the precision of m,
// m is returned.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m ScaledMoney) Round(prec int) ScaledMoney {
	if prec < 0 {
		prec = 0
	}
	if m.prec <= prec {
		return m
	}
	coef := m.coef()
	div := pow10(m.prec - prec)
	q, r := new(big.Int).QuoRem(coef, div, new(big.Int))
	half := r.Abs(r).Lsh(r, 1)
	if c := half.Cmp(div); c > 0 || (c == 0 && q.Bit(0) == 1) {
		if coef.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return newScaledUnsafe(m.curr, q, prec)
}

// RoundToCurr returns a value rounded to the scale of its currency.
// See also method [ScaledMoney.Round].
func (m ScaledMoney) RoundToCurr() ScaledMoney {
	return m.Round(m.curr.Scale())
}

// Cmp compares values numerically, ignoring differences in precision, and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the values are denominated in different currencies.
func (m ScaledMoney) Cmp(b ScaledMoney) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	x, y, _ := m.align(b)
	return x.Cmp(y), nil
}

// Equal returns true if both values have the same currency, amount and
// precision. BRL 1.0 and BRL 1.00 are not equal, use [ScaledMoney.Cmp]
// for a numeric comparison.
func (m ScaledMoney) Equal(b ScaledMoney) bool {
	return m.curr == b.curr && m.prec == b.prec && m.coef().Cmp(b.coef()) == 0
}

// Amount converts the value to the decimal-backed [Amount].
//
// Amount returns an error if the value does not fit into 19 significant
// digits or has more than 19 digits after the decimal point.
func (m ScaledMoney) Amount() (Amount, error) {
	d, err := decimal.Parse(m.Text("."))
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v: %w", m, err)
	}
	return NewAmountFromDecimal(m.curr, d)
}

// Text renders the amount as decimal digits with sep between the integer
// and fractional parts. The digits are zero-padded on the left so that the
// integer part is never empty:
//
//	amount 29999, precision 2, sep ","  ->  "299,99"
//	amount 5, precision 2, sep "."      ->  "0.05"
//	amount -5, precision 3, sep "."     ->  "-0.005"
//
// A precision of 0 renders no separator.
func (m ScaledMoney) Text(sep string) string {
	coef := m.coef()
	digits := new(big.Int).Abs(coef).Text(10)
	if n := m.prec + 1 - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	split := len(digits) - m.prec

	var b strings.Builder
	b.Grow(len(digits) + len(sep) + 1)
	if coef.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(digits[:split])
	if m.prec > 0 {
		b.WriteString(sep)
		b.WriteString(digits[split:])
	}
	return b.String()
}

// String implements the [fmt.Stringer] interface and returns a string
// representation such as "BRL 299.99".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m ScaledMoney) String() string {
	return m.curr.Code() + " " + m.Text(".")
}
