package uow

import (
	"context"

	"unityvault-lending/internal/domain/ledger"
	"unityvault-lending/internal/domain/loan"
	"unityvault-lending/internal/domain/pool"
)

type Repos struct {
	Pools  pool.Repository
	Loans  loan.Repository
	Ledger ledger.Repository
}

// UnitOfWork runs fn inside a single transaction; every lending instruction
// commits all of its effects or none of them.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
