package mysql

import (
	"context"

	poolDomain "unityvault-lending/internal/domain/pool"

	"gorm.io/gorm"
)

type PoolRepository struct{ db *gorm.DB }

func NewPoolRepository(db *gorm.DB) *PoolRepository { return &PoolRepository{db: db} }

func (r *PoolRepository) Create(ctx context.Context, p *poolDomain.LoanPool) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PoolRepository) Save(ctx context.Context, p *poolDomain.LoanPool) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PoolRepository) GetByPoolID(ctx context.Context, poolID string) (*poolDomain.LoanPool, error) {
	var out poolDomain.LoanPool
	res := r.db.WithContext(ctx).Where("pool_id = ?", poolID).First(&out)
	return &out, res.Error
}

// GetByPoolIDForUpdate takes a row lock; only meaningful inside a transaction.
func (r *PoolRepository) GetByPoolIDForUpdate(ctx context.Context, poolID string) (*poolDomain.LoanPool, error) {
	var out poolDomain.LoanPool
	res := forUpdate(r.db.WithContext(ctx)).
		Where("pool_id = ?", poolID).
		First(&out)
	return &out, res.Error
}

func (r *PoolRepository) List(ctx context.Context) ([]poolDomain.LoanPool, error) {
	var out []poolDomain.LoanPool
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}
