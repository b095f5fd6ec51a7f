package ledger

import (
	"context"
	"errors"
	"fmt"

	domain "unityvault-lending/internal/domain/ledger"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type DepositInput struct {
	OwnerID string `json:"owner_id"`
	Asset   string `json:"asset"`
	Amount  uint64 `json:"amount"`
}

type AccountDTO struct {
	OwnerID string `json:"owner_id"`
	Asset   string `json:"asset"`
	Balance uint64 `json:"balance"`
}

// Deposit is the external funding entry point; everything else moves value
// via transfers inside the lending transactions.
func (u *Usecase) Deposit(ctx context.Context, in DepositInput) (*AccountDTO, error) {
	if len(in.OwnerID) != 32 || in.Asset == "" {
		return nil, fmt.Errorf("%w: owner_id must be 32 characters and asset non-empty", domain.ErrValidation)
	}
	if in.Amount == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	acct, err := u.repo.Deposit(ctx, in.OwnerID, in.Asset, in.Amount)
	if err != nil {
		return nil, err
	}
	return &AccountDTO{OwnerID: acct.OwnerID, Asset: acct.Asset, Balance: acct.Balance}, nil
}

// Balance reports zero for accounts that have never been funded.
func (u *Usecase) Balance(ctx context.Context, ownerID, asset string) (*AccountDTO, error) {
	acct, err := u.repo.Get(ctx, ownerID, asset)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, domain.ErrNotFound):
		return &AccountDTO{OwnerID: ownerID, Asset: asset, Balance: 0}, nil
	case err != nil:
		return nil, err
	}
	return &AccountDTO{OwnerID: acct.OwnerID, Asset: acct.Asset, Balance: acct.Balance}, nil
}
