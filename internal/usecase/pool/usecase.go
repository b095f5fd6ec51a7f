package pool

import (
	"context"
	"fmt"

	domain "unityvault-lending/internal/domain/pool"
	"unityvault-lending/internal/domain/uow"
	"unityvault-lending/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in CreatePoolInput) (*PoolDTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	p := &domain.LoanPool{
		PoolID:          id.NewID32(),
		AuthorityID:     in.AuthorityID,
		Name:            in.Name,
		Description:     in.Description,
		AssetType:       in.AssetType,
		InterestRate:    in.InterestRate,
		MinLoanAmount:   in.MinLoanAmount,
		MaxLoanAmount:   in.MaxLoanAmount,
		LoanTerm:        in.LoanTerm,
		CollateralRatio: in.CollateralRatio,
		Status:          domain.StatusActive,
		TotalAvailable:  in.InitialDeposit,
		FundingAsset:    in.FundingAsset,
		CollateralAsset: in.CollateralAsset,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Pools.Create(ctx, p); err != nil {
			return err
		}
		if in.InitialDeposit > 0 {
			// The pool's own funds account mirrors total_available.
			if _, err := r.Ledger.Deposit(ctx, p.PoolID, p.FundingAsset, in.InitialDeposit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// Pause transitions active → paused. Authority only.
func (u *Usecase) Pause(ctx context.Context, callerID, poolID string) (*PoolDTO, error) {
	return u.transition(ctx, callerID, poolID, domain.StatusPaused, map[domain.Status]bool{
		domain.StatusActive: true,
	})
}

// Resume transitions paused → active. Authority only.
func (u *Usecase) Resume(ctx context.Context, callerID, poolID string) (*PoolDTO, error) {
	return u.transition(ctx, callerID, poolID, domain.StatusActive, map[domain.Status]bool{
		domain.StatusPaused: true,
	})
}

// Close transitions active|paused → closed; closed is terminal.
func (u *Usecase) Close(ctx context.Context, callerID, poolID string) (*PoolDTO, error) {
	return u.transition(ctx, callerID, poolID, domain.StatusClosed, map[domain.Status]bool{
		domain.StatusActive: true,
		domain.StatusPaused: true,
	})
}

func (u *Usecase) transition(ctx context.Context, callerID, poolID string, to domain.Status, from map[domain.Status]bool) (*PoolDTO, error) {
	var dto *PoolDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Pools.GetByPoolIDForUpdate(ctx, poolID)
		if err != nil {
			return domain.ErrNotFound
		}
		if p.AuthorityID != callerID {
			return domain.ErrUnauthorized
		}
		if !from[p.Status] {
			return fmt.Errorf("%w: cannot move %s pool to %s", domain.ErrInvalidStatus, p.Status, to)
		}
		p.Status = to
		if err := r.Pools.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, poolID string) (*PoolDTO, error) {
	p, err := u.repo.GetByPoolID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context) ([]PoolDTO, error) {
	pools, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PoolDTO, 0, len(pools))
	for i := range pools {
		out = append(out, *toDTO(&pools[i]))
	}
	return out, nil
}

func validateCreate(in CreatePoolInput) error {
	switch {
	case len(in.AuthorityID) != 32:
		return fmt.Errorf("%w: authority_id must be 32 characters", domain.ErrValidation)
	case in.Name == "" || len(in.Name) > domain.MaxNameLen:
		return fmt.Errorf("%w: name must be 1..%d characters", domain.ErrValidation, domain.MaxNameLen)
	case len(in.Description) > domain.MaxDescriptionLen:
		return fmt.Errorf("%w: description must be at most %d characters", domain.ErrValidation, domain.MaxDescriptionLen)
	case !domain.ValidAssetType(in.AssetType):
		return fmt.Errorf("%w: unknown asset type %q", domain.ErrValidation, in.AssetType)
	case in.MinLoanAmount > in.MaxLoanAmount:
		return fmt.Errorf("%w: min_loan_amount exceeds max_loan_amount", domain.ErrValidation)
	case in.MaxLoanAmount == 0:
		return fmt.Errorf("%w: max_loan_amount must be positive", domain.ErrValidation)
	case in.LoanTerm == 0:
		return fmt.Errorf("%w: loan_term must be positive", domain.ErrValidation)
	case in.FundingAsset == "" || in.CollateralAsset == "":
		return fmt.Errorf("%w: funding_asset and collateral_asset are required", domain.ErrValidation)
	}
	return nil
}
