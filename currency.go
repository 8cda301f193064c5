package money

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is a closed enumeration: it is an integer index into in-memory
// tables that store properties defined by [ISO 4217], such as code and scale.
// Codes that are not in the tables cannot be turned into a Currency, so an
// arithmetic operation never sees an unvalidated currency token.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

// ErrInvalidCurrency is returned when a currency code is missing or is not
// one of the supported ISO 4217 codes.
var ErrInvalidCurrency = errors.New("invalid currency")

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a valid currency code.
func ParseCurr(curr string) (Currency, error) {
	if len(curr) != 3 {
		return XXX, fmt.Errorf("%w: %q is not a 3-character code", ErrInvalidCurrency, curr)
	}
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w: unknown code %q", ErrInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Currency value.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// IsKnown returns true for every currency except [XXX].
func (c Currency) IsKnown() bool {
	return c != XXX && int(c) < len(codeLookup)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// It lets currencies be used as keys of TOML tables and flag values.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()
	if verb == 'q' || verb == 'Q' {
		curr = `"` + curr + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(curr) {
		pad := make([]byte, w-len(curr))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			curr += string(pad)
		} else {
			curr = string(pad) + curr
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(curr))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write([]byte(curr))
		state.Write([]byte(")"))
	}
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
// The supported currencies use scales of 0, 2, or 3:
//   - A scale of 0 indicates currencies without minor units, such as the Japanese Yen.
//   - A scale of 2 indicates currencies such as the US Dollar, whose minor unit
//     (1 cent) is 0.01 dollars.
//   - A scale of 3 indicates currencies such as the Omani Rial, whose minor unit
//     (1 baisa) is 0.001 rials.
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// Num returns the 3-digit code assigned to the currency by the ISO 4217 standard.
func (c Currency) Num() string {
	return numLookup[c]
}

// Code returns the 3-letter code assigned to the currency by the ISO 4217 standard.
// This method always returns a valid code.
func (c Currency) Code() string {
	return codeLookup[c]
}
