package ledgermock

import (
	"context"
	"fmt"
	"sync"

	domain "unityvault-lending/internal/domain/ledger"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is an in-memory ledger good enough for usecase tests: balances keyed
// by owner|asset, transfer semantics matching the mysql implementation.
type Repo struct {
	mu       sync.Mutex
	balances map[string]uint64
}

func New() *Repo { return &Repo{balances: map[string]uint64{}} }

func key(ownerID, asset string) string { return ownerID + "|" + asset }

func (m *Repo) Get(ctx context.Context, ownerID, asset string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[key(ownerID, asset)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.Account{OwnerID: ownerID, Asset: asset, Balance: b}, nil
}

func (m *Repo) Deposit(ctx context.Context, ownerID, asset string, amount uint64) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[key(ownerID, asset)] += amount
	return &domain.Account{OwnerID: ownerID, Asset: asset, Balance: m.balances[key(ownerID, asset)]}, nil
}

func (m *Repo) Transfer(ctx context.Context, fromOwnerID, toOwnerID, asset string, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if amount == 0 {
		return nil
	}
	from := key(fromOwnerID, asset)
	if m.balances[from] < amount {
		return fmt.Errorf("%w: account (%s, %s) holds %d, %d required",
			domain.ErrInsufficientFunds, fromOwnerID, asset, m.balances[from], amount)
	}
	m.balances[from] -= amount
	m.balances[key(toOwnerID, asset)] += amount
	return nil
}

// Balance is a test convenience accessor.
func (m *Repo) Balance(ownerID, asset string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[key(ownerID, asset)]
}
