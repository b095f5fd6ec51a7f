package pool

import "context"

type Repository interface {
	Create(ctx context.Context, p *LoanPool) error
	GetByPoolID(ctx context.Context, poolID string) (*LoanPool, error)
	// GetByPoolIDForUpdate row-locks the pool for the duration of the
	// surrounding transaction. Required before mutating accounting totals.
	GetByPoolIDForUpdate(ctx context.Context, poolID string) (*LoanPool, error)
	List(ctx context.Context) ([]LoanPool, error)
	Save(ctx context.Context, p *LoanPool) error
}
