package money

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/govalues/decimal"
)

// ErrRateNotFound is returned by a [RateSource] that has no rate for a pair
// of currencies.
var ErrRateNotFound = errors.New("exchange rate not found")

// RateSource looks up exchange rates.
// Implementations must be safe for concurrent use.
type RateSource interface {
	Rate(ctx context.Context, base, quote Currency) (ExchangeRate, error)
}

type pair struct {
	base, quote Currency
}

// RateTable is an in-memory [RateSource].
// When a pair is missing, RateTable falls back to the inverse of the
// reversed pair. Equal currencies always convert at 1.
// The zero value is an empty table ready to use.
type RateTable struct {
	mu    sync.RWMutex
	rates map[pair]ExchangeRate
}

// NewRateTable returns a table holding the given rates.
func NewRateTable(rates ...ExchangeRate) *RateTable {
	t := &RateTable{}
	for _, r := range rates {
		t.Set(r)
	}
	return t
}

// Set stores r, replacing any previous rate for the same pair.
func (t *RateTable) Set(r ExchangeRate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rates == nil {
		t.rates = make(map[pair]ExchangeRate)
	}
	t.rates[pair{r.Base(), r.Quote()}] = r
}

// Len returns the number of stored rates.
func (t *RateTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rates)
}

// Rate implements [RateSource].
func (t *RateTable) Rate(ctx context.Context, base, quote Currency) (ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return ExchangeRate{}, err
	}
	if base == quote {
		return NewExchRate(base, quote, decimal.One)
	}

	t.mu.RLock()
	r, ok := t.rates[pair{base, quote}]
	inv, invOK := t.rates[pair{quote, base}]
	t.mu.RUnlock()

	switch {
	case ok:
		return r, nil
	case invOK:
		return inv.Inv()
	}
	return ExchangeRate{}, fmt.Errorf("%v/%v: %w", base, quote, ErrRateNotFound)
}
