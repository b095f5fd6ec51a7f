package ledger

import "context"

type Repository interface {
	Get(ctx context.Context, ownerID, asset string) (*Account, error)

	// Deposit credits (owner, asset), creating the account on first use.
	Deposit(ctx context.Context, ownerID, asset string, amount uint64) (*Account, error)

	// Transfer moves amount between two accounts of the same asset. It locks
	// both rows, debits the source and credits the destination, and returns
	// ErrInsufficientFunds without touching either balance when the source
	// cannot cover the amount. Atomic within the surrounding transaction.
	Transfer(ctx context.Context, fromOwnerID, toOwnerID, asset string, amount uint64) error
}
