/*
Package money implements exact monetary arithmetic in various currencies.

# Features

  - Integer-scaled monetary values that never round implicitly
  - Immutable values, ensuring safe usage across multiple goroutines
  - A closed set of ISO 4217 currencies and their scales
  - Multiplication by decimal rates written as text
  - Decimal-backed ledger amounts rounded to the currency's scale
  - Conversion of monetary values using exchange rates

# Representation

[ScaledMoney] stores an arbitrary-precision integer amount, a precision and a
[Currency]. The value it represents is amount / 10^precision, so amount 29999
with precision 2 is 299.99. There is no floating-point or cached decimal form.

[Amount] pairs a Currency with a [decimal.Decimal] from the
[github.com/govalues/decimal] package. It is limited to 19 significant digits
and is never scaled below the scale of its currency.

[Currency] is an integer index into in-memory tables generated from ISO 4217
data. Unknown codes are rejected when parsing.

# Operations

ScaledMoney supports Add, Sub and Mul. Add and Sub align both operands to the
larger precision before combining them. Mul takes its factor as a decimal
numeral such as "0.025", then removes trailing zeros introduced by the
multiplication, never going below the original precision and never removing
a non-zero digit:

	BRL 5.00 + BRL 5.000 = BRL 10.000
	BRL 20.00 * "0.5"    = BRL 10.00
	BRL 299.99 * "1.5"   = BRL 449.985

Rounding happens only on request, through Round or RoundToCurr.

# Exchange rates

[ExchangeRate] converts values from its base currency to its quote currency.
[ExchangeRate.ConvScaled] applies the rate through Mul, so conversions are
exact as well. [RateTable] is an in-memory [RateSource] that also answers
for the reverse pair and for equal currencies.

# Errors

Constructors reject unknown currencies, negative amounts and negative
precisions. Arithmetic returns an error when currencies differ or when a
multiplier is malformed; the Must* helpers panic instead. Errors wrap the
sentinels [ErrInvalidAmount], [ErrInvalidCurrency], [ErrInvalidPrecision],
[ErrCurrencyMismatch] and [ErrInvalidMultiplier], so callers can test them
with [errors.Is].
*/
package money
