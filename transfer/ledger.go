// Package transfer keeps account balances in [money.ScaledMoney] and moves
// value between them without ever rounding a balance implicitly.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	money "github.com/govalues/scaledmoney"
)

var (
	// ErrAccountNotFound is returned when an operation names an account
	// that was never opened.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when an account is opened twice.
	ErrAccountExists = errors.New("account already exists")
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidShares is returned when transfer destinations are missing,
	// have malformed weights or the weights do not add up to 1.
	ErrInvalidShares = errors.New("invalid shares")
)

// Share directs a fraction of a transfer to an account.
// Weight is a decimal numeral such as "0.25".
type Share struct {
	To     string
	Weight string
}

// Leg is the part of a transfer credited to a single account.
// Debit is denominated in the currency of the transfer, Credit in the
// currency of the destination. Rate is the zero value when no conversion
// took place.
type Leg struct {
	To     string
	Debit  money.ScaledMoney
	Credit money.ScaledMoney
	Rate   money.ExchangeRate
}

// Receipt describes a settled transfer.
type Receipt struct {
	ID     uuid.UUID
	From   string
	Amount money.ScaledMoney
	Legs   []Leg
	At     time.Time
}

// Ledger is an in-memory set of accounts.
// It is safe for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]money.ScaledMoney

	rates   money.RateSource
	logger  *slog.Logger
	metrics *Metrics
	now     func() time.Time
}

// NewLedger returns an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		accounts: make(map[string]money.ScaledMoney),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.metrics == nil {
		l.metrics = NewMetrics(nil)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	if l.now == nil {
		l.now = time.Now
	}
	return l
}

// Metrics returns the collectors updated by the ledger.
func (l *Ledger) Metrics() *Metrics {
	return l.metrics
}

// Open creates an account holding balance.
// The currency of the balance becomes the currency of the account.
func (l *Ledger) Open(id string, balance money.ScaledMoney) error {
	switch {
	case id == "":
		return fmt.Errorf("opening account: id required")
	case !balance.Curr().IsKnown():
		return fmt.Errorf("opening account %q: %w: %v", id, money.ErrInvalidCurrency, balance.Curr())
	case balance.IsNeg():
		return fmt.Errorf("opening account %q: %w: %v is negative", id, money.ErrInvalidAmount, balance)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[id]; ok {
		return fmt.Errorf("opening account %q: %w", id, ErrAccountExists)
	}
	l.accounts[id] = balance
	l.logger.Debug("account opened", "account", id, "balance", balance.String())
	return nil
}

// Balance returns the current balance of an account.
func (l *Ledger) Balance(id string) (money.ScaledMoney, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.accounts[id]
	if !ok {
		return money.ScaledMoney{}, fmt.Errorf("%w: %q", ErrAccountNotFound, id)
	}
	return b, nil
}

// Accounts returns the identifiers of all accounts in lexical order.
func (l *Ledger) Accounts() []string {
	l.mu.RLock()
	ids := make([]string, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	l.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Deposit credits amount to an account.
// The amount must be positive and in the currency of the account.
func (l *Ledger) Deposit(id string, amount money.ScaledMoney) (money.ScaledMoney, error) {
	if !amount.IsPos() {
		return money.ScaledMoney{}, fmt.Errorf("depositing %v: %w: amount must be positive", amount, money.ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.accounts[id]
	if !ok {
		return money.ScaledMoney{}, fmt.Errorf("depositing %v: %w: %q", amount, ErrAccountNotFound, id)
	}
	b, err := b.Add(amount)
	if err != nil {
		return money.ScaledMoney{}, fmt.Errorf("depositing %v to %q: %w", amount, id, err)
	}
	l.accounts[id] = b
	return b, nil
}

// Withdraw debits amount from an account.
// The amount must be positive, in the currency of the account and not
// greater than the balance.
func (l *Ledger) Withdraw(id string, amount money.ScaledMoney) (money.ScaledMoney, error) {
	if !amount.IsPos() {
		return money.ScaledMoney{}, fmt.Errorf("withdrawing %v: %w: amount must be positive", amount, money.ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.accounts[id]
	if !ok {
		return money.ScaledMoney{}, fmt.Errorf("withdrawing %v: %w: %q", amount, ErrAccountNotFound, id)
	}
	b, err := debit(b, amount)
	if err != nil {
		return money.ScaledMoney{}, fmt.Errorf("withdrawing %v from %q: %w", amount, id, err)
	}
	l.accounts[id] = b
	return b, nil
}

// Transfer moves amount out of account from and splits it between the
// destinations by weight. Each leg is amount * weight truncated to the
// precision of amount, and the units left over go to the legs that lost the
// most, so no leg is negative and the legs add up to amount exactly.
// Destinations held in another currency are credited at the rate returned
// by the ledger's rate source.
//
// Transfer is atomic: when it returns an error no balance has changed.
func (l *Ledger) Transfer(ctx context.Context, from string, amount money.ScaledMoney, to ...Share) (Receipt, error) {
	r, err := l.transfer(ctx, from, amount, to)
	l.metrics.observe(err)
	if err != nil {
		l.logger.Warn("transfer rejected", "from", from, "amount", amount.String(), "error", err)
		return Receipt{}, fmt.Errorf("transferring %v from %q: %w", amount, from, err)
	}
	l.logger.Info("transfer settled",
		"id", r.ID.String(),
		"from", from,
		"amount", amount.String(),
		"legs", len(r.Legs),
	)
	return r, nil
}

func (l *Ledger) transfer(ctx context.Context, from string, amount money.ScaledMoney, shares []Share) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if !amount.IsPos() {
		return Receipt{}, fmt.Errorf("%w: amount must be positive", money.ErrInvalidAmount)
	}
	debits, err := split(amount, shares)
	if err != nil {
		return Receipt{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.accounts[from]
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %q", ErrAccountNotFound, from)
	}
	src, err = debit(src, amount)
	if err != nil {
		return Receipt{}, err
	}

	// Balances are staged here and applied only once every leg succeeds.
	pending := map[string]money.ScaledMoney{from: src}
	legs := make([]Leg, len(shares))
	for i, s := range shares {
		bal, ok := pending[s.To]
		if !ok {
			if bal, ok = l.accounts[s.To]; !ok {
				return Receipt{}, fmt.Errorf("%w: %q", ErrAccountNotFound, s.To)
			}
		}
		credit, rate, err := l.convert(ctx, debits[i], bal.Curr())
		if err != nil {
			return Receipt{}, fmt.Errorf("crediting %q: %w", s.To, err)
		}
		if bal, err = bal.Add(credit); err != nil {
			return Receipt{}, fmt.Errorf("crediting %q: %w", s.To, err)
		}
		pending[s.To] = bal
		legs[i] = Leg{To: s.To, Debit: debits[i], Credit: credit, Rate: rate}
	}

	for id, bal := range pending {
		l.accounts[id] = bal
	}
	return Receipt{
		ID:     uuid.New(),
		From:   from,
		Amount: amount,
		Legs:   legs,
		At:     l.now().UTC(),
	}, nil
}

// convert returns m expressed in curr.
func (l *Ledger) convert(ctx context.Context, m money.ScaledMoney, curr money.Currency) (money.ScaledMoney, money.ExchangeRate, error) {
	if m.Curr() == curr {
		return m, money.ExchangeRate{}, nil
	}
	if l.rates == nil {
		return money.ScaledMoney{}, money.ExchangeRate{}, fmt.Errorf("%v/%v: %w", m.Curr(), curr, money.ErrRateNotFound)
	}
	rate, err := l.rates.Rate(ctx, m.Curr(), curr)
	if err != nil {
		return money.ScaledMoney{}, money.ExchangeRate{}, err
	}
	credit, err := rate.ConvScaled(m)
	if err != nil {
		return money.ScaledMoney{}, money.ExchangeRate{}, err
	}
	return credit, rate, nil
}

// debit returns balance - amount, failing when amount exceeds balance.
func debit(balance, amount money.ScaledMoney) (money.ScaledMoney, error) {
	c, err := balance.Cmp(amount)
	if err != nil {
		return money.ScaledMoney{}, err
	}
	if c < 0 {
		return money.ScaledMoney{}, fmt.Errorf("%w: balance is %v", ErrInsufficientFunds, balance)
	}
	return balance.Sub(amount)
}

// split divides amount between shares. Every leg has the precision of
// amount, no leg is negative and the legs add up to amount.
//
// Each leg starts as amount * weight truncated to that precision. The units
// left over go one at a time to the legs that lost the most to truncation,
// earlier shares first on ties.
func split(amount money.ScaledMoney, shares []Share) ([]money.ScaledMoney, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("%w: no destinations", ErrInvalidShares)
	}
	prec := amount.Prec()
	legs := make([]money.ScaledMoney, len(shares))
	lost := make([]money.ScaledMoney, len(shares))
	var covered money.ScaledMoney
	rem := amount
	maxPrec := prec
	for i, s := range shares {
		exact, err := amount.Mul(s.Weight)
		if err != nil {
			return nil, fmt.Errorf("%w: weight for %q: %w", ErrInvalidShares, s.To, err)
		}
		if !exact.IsPos() {
			return nil, fmt.Errorf("%w: weight %q for %q must be positive", ErrInvalidShares, s.Weight, s.To)
		}
		if i == 0 {
			covered = exact
		} else if covered, err = covered.Add(exact); err != nil {
			return nil, err
		}
		if legs[i], err = truncate(exact, prec); err != nil {
			return nil, err
		}
		if lost[i], err = exact.Sub(legs[i]); err != nil {
			return nil, err
		}
		if rem, err = rem.Sub(legs[i]); err != nil {
			return nil, err
		}
		maxPrec = max(maxPrec, exact.Prec())
	}
	c, err := covered.Cmp(amount)
	if err != nil {
		return nil, err
	}
	if c != 0 {
		return nil, fmt.Errorf("%w: weights cover %v of %v", ErrInvalidShares, covered, amount)
	}

	// Truncation losses compared as integers at a common precision.
	keys := make([]*big.Int, len(lost))
	for i, d := range lost {
		keys[i] = d.Pad(maxPrec).BigInt()
	}
	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]].Cmp(keys[order[b]]) > 0
	})

	unit, err := money.NewScaledFromBigInt(amount.Curr(), big.NewInt(1), prec)
	if err != nil {
		return nil, err
	}
	// rem is below len(shares) units, each leg lost less than one.
	for _, i := range order[:rem.BigInt().Int64()] {
		if legs[i], err = legs[i].Add(unit); err != nil {
			return nil, err
		}
	}
	return legs, nil
}

// truncate drops the digits of a non-negative m beyond prec.
func truncate(m money.ScaledMoney, prec int) (money.ScaledMoney, error) {
	if m.Prec() <= prec {
		return m.Pad(prec), nil
	}
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(m.Prec()-prec)), nil)
	return money.NewScaledFromBigInt(m.Curr(), new(big.Int).Quo(m.BigInt(), div), prec)
}
