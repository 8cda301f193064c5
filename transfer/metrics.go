package transfer

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	money "github.com/govalues/scaledmoney"
)

// Transfer outcomes recorded by the transfers counter.
const (
	resultOK                = "ok"
	resultInsufficientFunds = "insufficient_funds"
	resultUnknownAccount    = "unknown_account"
	resultNoRate            = "no_rate"
	resultRejected          = "rejected"
)

// Metrics exposes Prometheus collectors for ledger instrumentation.
type Metrics struct {
	transfers *prometheus.CounterVec
}

// NewMetrics builds the ledger collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moneyledger_transfers_total",
			Help: "Count of ledger transfers by result.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.transfers)
	}
	return m
}

// Transfers returns the transfers counter, labelled by result.
func (m *Metrics) Transfers() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.transfers
}

func (m *Metrics) observe(err error) {
	if m == nil {
		return
	}
	m.transfers.WithLabelValues(resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrInsufficientFunds):
		return resultInsufficientFunds
	case errors.Is(err, ErrAccountNotFound):
		return resultUnknownAccount
	case errors.Is(err, money.ErrRateNotFound):
		return resultNoRate
	}
	return resultRejected
}
