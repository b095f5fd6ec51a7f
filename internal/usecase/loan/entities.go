package loan

import (
	"time"

	domain "unityvault-lending/internal/domain/loan"
)

type RequestLoanInput struct {
	BorrowerID string `json:"borrower_id"`
	PoolID     string `json:"pool_id"`
	Amount     uint64 `json:"amount"`
}

type PaymentInput struct {
	CallerID string `json:"caller_id"`
	LoanID   string `json:"loan_id"`
	Amount   uint64 `json:"amount"`
}

type LoanDTO struct {
	LoanID          string     `json:"loan_id"`
	BorrowerID      string     `json:"borrower_id"`
	PoolID          string     `json:"pool_id"`
	Amount          uint64     `json:"amount"`
	InterestRate    uint64     `json:"interest_rate"`
	Term            uint64     `json:"term"`
	RemainingAmount uint64     `json:"remaining_amount"`
	Status          string     `json:"status"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		BorrowerID:      l.BorrowerID,
		PoolID:          l.PoolID,
		Amount:          l.Amount,
		InterestRate:    l.InterestRate,
		Term:            l.Term,
		RemainingAmount: l.RemainingAmount,
		Status:          string(l.Status),
		ApprovedAt:      l.ApprovedAt,
		CreatedAt:       l.CreatedAt,
	}
}
