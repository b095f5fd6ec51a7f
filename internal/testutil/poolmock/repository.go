package poolmock

import (
	"context"
	"errors"

	domain "unityvault-lending/internal/domain/pool"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("poolmock: method not implemented")

// Repo is a function-backed mock that satisfies pool.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, p *domain.LoanPool) error
	GetByPoolIDFn          func(ctx context.Context, poolID string) (*domain.LoanPool, error)
	GetByPoolIDForUpdateFn func(ctx context.Context, poolID string) (*domain.LoanPool, error)
	ListFn                 func(ctx context.Context) ([]domain.LoanPool, error)
	SaveFn                 func(ctx context.Context, p *domain.LoanPool) error
}

func (m *Repo) Create(ctx context.Context, p *domain.LoanPool) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPoolID(ctx context.Context, poolID string) (*domain.LoanPool, error) {
	if m.GetByPoolIDFn != nil {
		return m.GetByPoolIDFn(ctx, poolID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByPoolIDForUpdate(ctx context.Context, poolID string) (*domain.LoanPool, error) {
	if m.GetByPoolIDForUpdateFn != nil {
		return m.GetByPoolIDForUpdateFn(ctx, poolID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanPool, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, p *domain.LoanPool) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
