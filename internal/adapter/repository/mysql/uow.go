package mysql

import (
	"context"

	"unityvault-lending/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Pools:  &PoolRepository{db: tx},
			Loans:  &LoanRepository{db: tx},
			Ledger: &LedgerRepository{db: tx},
		}
		return fn(r)
	})
}
