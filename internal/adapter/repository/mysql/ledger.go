package mysql

import (
	"context"
	"errors"
	"fmt"

	ledgerDomain "unityvault-lending/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Get(ctx context.Context, ownerID, asset string) (*ledgerDomain.Account, error) {
	var out ledgerDomain.Account
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND asset = ?", ownerID, asset).
		First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) Deposit(ctx context.Context, ownerID, asset string, amount uint64) (*ledgerDomain.Account, error) {
	var out *ledgerDomain.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		acct, err := lockAccount(ctx, tx, ownerID, asset)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			acct = &ledgerDomain.Account{OwnerID: ownerID, Asset: asset, Balance: amount}
			if err := tx.WithContext(ctx).Create(acct).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			acct.Balance += amount
			if err := tx.WithContext(ctx).Save(acct).Error; err != nil {
				return err
			}
		}
		out = acct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Transfer debits from and credits to under row locks. Inside an enclosing
// gorm transaction this nests as a savepoint, so a shortfall rolls back
// nothing but its own (empty) effects.
func (r *LedgerRepository) Transfer(ctx context.Context, fromOwnerID, toOwnerID, asset string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		from, err := lockAccount(ctx, tx, fromOwnerID, asset)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: account (%s, %s) holds nothing",
					ledgerDomain.ErrInsufficientFunds, fromOwnerID, asset)
			}
			return err
		}
		if from.Balance < amount {
			return fmt.Errorf("%w: account (%s, %s) holds %d, %d required",
				ledgerDomain.ErrInsufficientFunds, fromOwnerID, asset, from.Balance, amount)
		}

		to, err := lockAccount(ctx, tx, toOwnerID, asset)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			to = &ledgerDomain.Account{OwnerID: toOwnerID, Asset: asset}
			if err := tx.WithContext(ctx).Create(to).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		from.Balance -= amount
		to.Balance += amount
		if err := tx.WithContext(ctx).Save(from).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Save(to).Error
	})
}

func lockAccount(ctx context.Context, tx *gorm.DB, ownerID, asset string) (*ledgerDomain.Account, error) {
	var out ledgerDomain.Account
	res := forUpdate(tx.WithContext(ctx)).
		Where("owner_id = ? AND asset = ?", ownerID, asset).
		First(&out)
	return &out, res.Error
}
