// Package ledger holds fungible balances used to collect registration fees.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
)

// Transfer records a completed movement of funds.
type Transfer struct {
	Amount uint64
	From   domain.Principal
	To     domain.Principal
}

// InMemory is a process-local ledger. Balances are opened with Credit.
type InMemory struct {
	mu        sync.Mutex
	balances  map[domain.Principal]uint64
	transfers []Transfer
}

func NewInMemory(seed map[domain.Principal]uint64) *InMemory {
	l := &InMemory{balances: make(map[domain.Principal]uint64, len(seed))}
	for p, amount := range seed {
		l.balances[p] = amount
	}
	return l
}

// Credit adds amount to p's balance.
func (l *InMemory) Credit(p domain.Principal, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[p] += amount
}

func (l *InMemory) BalanceOf(p domain.Principal) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[p]
}

// Transfer moves amount from one principal to another atomically. A zero
// amount always succeeds and is still recorded.
func (l *InMemory) Transfer(_ context.Context, amount uint64, from, to domain.Principal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[from] < amount {
		return fmt.Errorf("transfer %d from %s: %w", amount, from, sentinel.ErrInsufficientFunds)
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	l.transfers = append(l.transfers, Transfer{Amount: amount, From: from, To: to})
	return nil
}

// Transfers returns a copy of the transfer history in order.
func (l *InMemory) Transfers() []Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Transfer(nil), l.transfers...)
}
