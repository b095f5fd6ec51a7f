package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("caller is not permitted on this loan")
	ErrInvalidAmount = errors.New("invalid loan amount")
	ErrInvalidStatus = errors.New("invalid loan status")
)

type Status string

const (
	StatusRequested Status = "requested"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
)

type Loan struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID string `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	// PoolID is a weak back-reference to loan_pools.pool_id; the pool's
	// lifetime is independent of any loan.
	PoolID string `gorm:"size:32;index:idx_loans_pool" json:"pool_id"`
	Amount uint64 `gorm:"column:amount" json:"amount"`
	// Snapshot of the pool's policy at request time.
	InterestRate uint64 `gorm:"column:interest_rate" json:"interest_rate"`
	Term         uint64 `gorm:"column:term" json:"term"`
	// RemainingAmount is meaningful only once the loan is active.
	RemainingAmount uint64     `gorm:"column:remaining_amount" json:"remaining_amount"`
	Status          Status     `gorm:"type:enum('requested','active','completed','defaulted');default:'requested'" json:"status"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// DueAt is the moment the loan term elapses; zero for unapproved loans.
func (l *Loan) DueAt() time.Time {
	if l.ApprovedAt == nil {
		return time.Time{}
	}
	return l.ApprovedAt.Add(time.Duration(l.Term) * 24 * time.Hour)
}
