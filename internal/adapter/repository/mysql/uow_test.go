package mysql

import (
	"context"
	"errors"
	"testing"

	ledgerDomain "unityvault-lending/internal/domain/ledger"
	loanDomain "unityvault-lending/internal/domain/loan"
	poolDomain "unityvault-lending/internal/domain/pool"
	loanUC "unityvault-lending/internal/usecase/loan"
	poolUC "unityvault-lending/internal/usecase/pool"
	"unityvault-lending/pkg/id"

	"gorm.io/gorm"
)

// Wires the real usecases over GormUoW on sqlite and walks a full lending
// cycle: create pool, request, approve with collateral, pay to completion.
func TestLendingFlowThroughUoW(t *testing.T) {
	db := openTestDB(t)
	uow := NewGormUoW(db)
	pools := NewPoolRepository(db)
	loans := NewLoanRepository(db)
	ledger := NewLedgerRepository(db)

	poolSvc := poolUC.NewUsecase(pools, uow)
	loanSvc := loanUC.NewUsecase(loans, uow)
	ctx := context.Background()

	authority := id.NewID32()
	borrower := id.NewID32()

	p, err := poolSvc.Create(ctx, poolUC.CreatePoolInput{
		AuthorityID:     authority,
		Name:            "Prime Real Estate",
		Description:     "Collateralized real estate lending",
		AssetType:       poolDomain.AssetRealEstate,
		InterestRate:    10,
		MinLoanAmount:   100_000_000,
		MaxLoanAmount:   1_000_000_000,
		LoanTerm:        365,
		CollateralRatio: 150,
		FundingAsset:    "USDC",
		CollateralAsset: "SOL",
		InitialDeposit:  1_000_000_000,
	})
	if err != nil {
		t.Fatalf("Create pool: %v", err)
	}
	mustBalance(t, ledger, p.PoolID, "USDC", 1_000_000_000)

	// Borrower needs collateral on hand before approval can lock it.
	if _, err := ledger.Deposit(ctx, borrower, "SOL", 800_000_000); err != nil {
		t.Fatalf("Deposit collateral: %v", err)
	}

	l, err := loanSvc.Request(ctx, loanUC.RequestLoanInput{
		BorrowerID: borrower,
		PoolID:     p.PoolID,
		Amount:     500_000_000,
	})
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if l.Status != string(loanDomain.StatusRequested) {
		t.Fatalf("status = %s, want requested", l.Status)
	}

	got, err := pools.GetByPoolID(ctx, p.PoolID)
	if err != nil {
		t.Fatalf("GetByPoolID: %v", err)
	}
	if got.TotalAvailable != 500_000_000 {
		t.Fatalf("total_available = %d, want 500000000", got.TotalAvailable)
	}

	l, err = loanSvc.Approve(ctx, authority, l.LoanID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if l.Status != string(loanDomain.StatusActive) || l.RemainingAmount != 500_000_000 {
		t.Fatalf("unexpected loan after approve: %+v", l)
	}
	mustBalance(t, ledger, borrower, "SOL", 50_000_000)
	mustBalance(t, ledger, p.PoolID, "SOL", 750_000_000)

	// Borrower funds repayments.
	if _, err := ledger.Deposit(ctx, borrower, "USDC", 500_000_000); err != nil {
		t.Fatalf("Deposit funds: %v", err)
	}

	l, err = loanSvc.Pay(ctx, loanUC.PaymentInput{
		CallerID: borrower,
		LoanID:   l.LoanID,
		Amount:   100_000_000,
	})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if l.RemainingAmount != 400_000_000 {
		t.Fatalf("remaining = %d, want 400000000", l.RemainingAmount)
	}

	l, err = loanSvc.Pay(ctx, loanUC.PaymentInput{
		CallerID: borrower,
		LoanID:   l.LoanID,
		Amount:   400_000_000,
	})
	if err != nil {
		t.Fatalf("Pay (final): %v", err)
	}
	if l.Status != string(loanDomain.StatusCompleted) {
		t.Fatalf("status = %s, want completed", l.Status)
	}

	got, err = pools.GetByPoolID(ctx, p.PoolID)
	if err != nil {
		t.Fatalf("GetByPoolID: %v", err)
	}
	if got.TotalAvailable != 1_000_000_000 || got.TotalBorrowed != 0 || got.TotalLoans != 1 {
		t.Fatalf("unexpected pool totals: %+v", got)
	}
	// Collateral released in full; repayments sit with the pool.
	mustBalance(t, ledger, borrower, "SOL", 800_000_000)
	mustBalance(t, ledger, p.PoolID, "SOL", 0)
	mustBalance(t, ledger, p.PoolID, "USDC", 1_500_000_000)
}

// A collateral shortfall at approval must leave the loan, the pool and the
// ledger exactly as they were.
func TestApproveRollsBackOnShortfall(t *testing.T) {
	db := openTestDB(t)
	uow := NewGormUoW(db)
	pools := NewPoolRepository(db)
	loans := NewLoanRepository(db)
	ledger := NewLedgerRepository(db)

	poolSvc := poolUC.NewUsecase(pools, uow)
	loanSvc := loanUC.NewUsecase(loans, uow)
	ctx := context.Background()

	authority := id.NewID32()
	borrower := id.NewID32()

	p, err := poolSvc.Create(ctx, poolUC.CreatePoolInput{
		AuthorityID:     authority,
		Name:            "Vehicle Pool",
		AssetType:       poolDomain.AssetVehicle,
		InterestRate:    12,
		MinLoanAmount:   100_000_000,
		MaxLoanAmount:   1_000_000_000,
		LoanTerm:        180,
		CollateralRatio: 150,
		FundingAsset:    "USDC",
		CollateralAsset: "SOL",
		InitialDeposit:  1_000_000_000,
	})
	if err != nil {
		t.Fatalf("Create pool: %v", err)
	}

	// One unit short of the 750e6 the approval needs.
	if _, err := ledger.Deposit(ctx, borrower, "SOL", 749_999_999); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	l, err := loanSvc.Request(ctx, loanUC.RequestLoanInput{
		BorrowerID: borrower,
		PoolID:     p.PoolID,
		Amount:     500_000_000,
	})
	if err != nil {
		t.Fatalf("Request: %v", err)
	}

	if _, err := loanSvc.Approve(ctx, authority, l.LoanID); err == nil {
		t.Fatal("Approve succeeded with short collateral")
	}

	stored, err := loans.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if stored.Status != loanDomain.StatusRequested || stored.ApprovedAt != nil {
		t.Fatalf("loan mutated by failed approve: %+v", stored)
	}

	got, err := pools.GetByPoolID(ctx, p.PoolID)
	if err != nil {
		t.Fatalf("GetByPoolID: %v", err)
	}
	if got.TotalLoans != 0 || got.TotalBorrowed != 0 {
		t.Fatalf("pool mutated by failed approve: %+v", got)
	}
	mustBalance(t, ledger, borrower, "SOL", 749_999_999)
	mustBalance(t, ledger, p.PoolID, "SOL", 0)
}

func mustBalance(t *testing.T, ledger ledgerDomain.Repository, ownerID, asset string, want uint64) {
	t.Helper()
	acct, err := ledger.Get(context.Background(), ownerID, asset)
	if err != nil {
		if want == 0 && errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		t.Fatalf("Get(%s, %s): %v", ownerID, asset, err)
	}
	if acct.Balance != want {
		t.Fatalf("balance(%s, %s) = %d, want %d", ownerID, asset, acct.Balance, want)
	}
}
