// Package ledger keeps the per-account provenance history of a single analysis run.
package ledger

import (
	"bytes"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

// Ledger is an append-only store of account snapshots plus a lifetime deposit total per account.
// It has a single writer and is not safe for concurrent use.
type Ledger struct {
	history   map[common.Hash][]model.AccountState
	deposited map[common.Hash]uint64
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		history:   make(map[common.Hash][]model.AccountState),
		deposited: make(map[common.Hash]uint64),
	}
}

// Has reports whether account has at least one snapshot.
func (l *Ledger) Has(account common.Hash) bool {
	return len(l.history[account]) > 0
}

// Current returns the latest snapshot of account, or a zero balance with no sources.
func (l *Ledger) Current(account common.Hash) model.AccountState {
	states := l.history[account]
	if len(states) == 0 {
		return model.AccountState{}
	}
	return states[len(states)-1]
}

// Append records a new snapshot for account. The caller must not modify state.Sources afterwards.
func (l *Ledger) Append(account common.Hash, state model.AccountState) {
	l.history[account] = append(l.history[account], state)
}

// History returns a copy of all snapshots of account, oldest first.
func (l *Ledger) History(account common.Hash) []model.AccountState {
	return slices.Clone(l.history[account])
}

// Accounts returns every account with history, sorted by address.
func (l *Ledger) Accounts() []common.Hash {
	accounts := make([]common.Hash, 0, len(l.history))
	for account := range l.history {
		accounts = append(accounts, account)
	}
	slices.SortFunc(accounts, func(a, b common.Hash) int {
		return bytes.Compare(a[:], b[:])
	})
	return accounts
}

// CumulativeDeposited returns the lifetime deposit total credited to account.
func (l *Ledger) CumulativeDeposited(account common.Hash) uint64 {
	return l.deposited[account]
}

// CreditCumulativeDeposited adds amount to the lifetime deposit total of account.
func (l *Ledger) CreditCumulativeDeposited(account common.Hash, amount uint64) {
	l.deposited[account] += amount
}
