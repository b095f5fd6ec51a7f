package loan

import (
	"context"
	"fmt"
	"math"
	"time"

	domainLedger "unityvault-lending/internal/domain/ledger"
	domainLoan "unityvault-lending/internal/domain/loan"
	domainPool "unityvault-lending/internal/domain/pool"
	"unityvault-lending/internal/domain/uow"
	"unityvault-lending/pkg/id"
)

type Usecase struct {
	repo domainLoan.Repository
	uow  uow.UnitOfWork
}

// NewUsecase: reads go through the repo, every state transition through the UoW.
func NewUsecase(r domainLoan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Request reserves capital up-front: the pool's total_available drops by the
// requested amount before any approval decision. A request that is never
// approved keeps its reservation; no instruction releases it.
func (u *Usecase) Request(ctx context.Context, in RequestLoanInput) (*LoanDTO, error) {
	if len(in.BorrowerID) != 32 {
		return nil, fmt.Errorf("%w: borrower_id must be 32 characters", domainLoan.ErrValidation)
	}
	if in.Amount == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domainLoan.ErrValidation)
	}

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Pools.GetByPoolIDForUpdate(ctx, in.PoolID)
		if err != nil {
			return domainPool.ErrNotFound
		}
		if p.Status != domainPool.StatusActive {
			return fmt.Errorf("%w: pool is %s", domainPool.ErrInvalidStatus, p.Status)
		}
		if in.Amount < p.MinLoanAmount || in.Amount > p.MaxLoanAmount {
			return fmt.Errorf("%w: amount %d outside pool range [%d, %d]",
				domainLoan.ErrInvalidAmount, in.Amount, p.MinLoanAmount, p.MaxLoanAmount)
		}
		if in.Amount > p.TotalAvailable {
			return fmt.Errorf("%w: pool has %d available, %d requested",
				domainLedger.ErrInsufficientFunds, p.TotalAvailable, in.Amount)
		}

		l := &domainLoan.Loan{
			LoanID:       id.NewID32(),
			BorrowerID:   in.BorrowerID,
			PoolID:       p.PoolID,
			Amount:       in.Amount,
			InterestRate: p.InterestRate,
			Term:         p.LoanTerm,
			Status:       domainLoan.StatusRequested,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		p.TotalAvailable -= in.Amount
		if err := r.Pools.Save(ctx, p); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Approve locks the required collateral (amount * ratio / 100) from the
// borrower's collateral account into the pool's custody and activates the
// loan. Pool authority only.
func (u *Usecase) Approve(ctx context.Context, callerID, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}
		p, err := r.Pools.GetByPoolIDForUpdate(ctx, l.PoolID)
		if err != nil {
			return domainPool.ErrNotFound
		}
		if p.AuthorityID != callerID {
			return domainPool.ErrUnauthorized
		}
		if l.Status != domainLoan.StatusRequested {
			return fmt.Errorf("%w: loan is %s, approval needs %s",
				domainLoan.ErrInvalidStatus, l.Status, domainLoan.StatusRequested)
		}

		required, err := requiredCollateral(l.Amount, p.CollateralRatio)
		if err != nil {
			return err
		}
		if err := r.Ledger.Transfer(ctx, l.BorrowerID, p.PoolID, p.CollateralAsset, required); err != nil {
			return err
		}

		now := time.Now().UTC()
		l.Status = domainLoan.StatusActive
		l.RemainingAmount = l.Amount
		l.ApprovedAt = &now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		p.TotalLoans++
		p.TotalBorrowed += l.Amount
		if err := r.Pools.Save(ctx, p); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Pay reduces the outstanding balance; the final payment completes the loan
// and releases the custodied collateral back to the borrower.
func (u *Usecase) Pay(ctx context.Context, in PaymentInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, in.LoanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}
		if l.BorrowerID != in.CallerID {
			return domainLoan.ErrUnauthorized
		}
		if l.Status != domainLoan.StatusActive {
			return fmt.Errorf("%w: loan is %s, payment needs %s",
				domainLoan.ErrInvalidStatus, l.Status, domainLoan.StatusActive)
		}
		if in.Amount == 0 {
			return fmt.Errorf("%w: payment amount must be positive", domainLoan.ErrValidation)
		}
		if in.Amount > l.RemainingAmount {
			return fmt.Errorf("%w: payment %d exceeds remaining balance %d",
				domainLoan.ErrValidation, in.Amount, l.RemainingAmount)
		}

		p, err := r.Pools.GetByPoolIDForUpdate(ctx, l.PoolID)
		if err != nil {
			return domainPool.ErrNotFound
		}
		if err := r.Ledger.Transfer(ctx, l.BorrowerID, p.PoolID, p.FundingAsset, in.Amount); err != nil {
			return err
		}

		l.RemainingAmount -= in.Amount
		p.TotalAvailable += in.Amount
		if l.RemainingAmount == 0 {
			l.Status = domainLoan.StatusCompleted
			p.TotalBorrowed -= l.Amount
			required, err := requiredCollateral(l.Amount, p.CollateralRatio)
			if err != nil {
				return err
			}
			if err := r.Ledger.Transfer(ctx, p.PoolID, l.BorrowerID, p.CollateralAsset, required); err != nil {
				return err
			}
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Pools.Save(ctx, p); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// MarkDefaulted: authority-driven terminal transition for an active loan whose
// term has elapsed with a balance outstanding. The pool keeps the custodied
// collateral.
func (u *Usecase) MarkDefaulted(ctx context.Context, callerID, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}
		p, err := r.Pools.GetByPoolIDForUpdate(ctx, l.PoolID)
		if err != nil {
			return domainPool.ErrNotFound
		}
		if p.AuthorityID != callerID {
			return domainPool.ErrUnauthorized
		}
		if l.Status != domainLoan.StatusActive {
			return fmt.Errorf("%w: loan is %s, default needs %s",
				domainLoan.ErrInvalidStatus, l.Status, domainLoan.StatusActive)
		}
		if time.Now().UTC().Before(l.DueAt()) {
			return fmt.Errorf("%w: loan term has not elapsed (due %s)",
				domainLoan.ErrValidation, l.DueAt().Format(time.RFC3339))
		}

		l.Status = domainLoan.StatusDefaulted
		p.TotalBorrowed -= l.Amount
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Pools.Save(ctx, p); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByPool(ctx context.Context, poolID string) ([]LoanDTO, error) {
	loans, err := u.repo.ListByPoolID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) ([]LoanDTO, error) {
	loans, err := u.repo.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toDTOs(loans), nil
}

func toDTOs(loans []domainLoan.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out
}

func requiredCollateral(amount, ratio uint64) (uint64, error) {
	if ratio != 0 && amount > math.MaxUint64/ratio {
		return 0, fmt.Errorf("%w: collateral requirement overflows", domainLoan.ErrValidation)
	}
	return amount * ratio / 100, nil
}
