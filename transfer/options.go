package transfer

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	money "github.com/govalues/scaledmoney"
)

// Option customises the ledger instance.
type Option func(*Ledger)

// WithLogger sets the logger used for transfer outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithRates supplies the rate source used to credit destinations held in
// another currency.
func WithRates(rates money.RateSource) Option {
	return func(l *Ledger) { l.rates = rates }
}

// WithRegisterer registers the ledger collectors with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(l *Ledger) { l.metrics = NewMetrics(reg) }
}

// WithClock sets the function used to timestamp receipts.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) { l.now = clock }
}
