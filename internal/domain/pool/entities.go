package pool

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("loan pool not found")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("caller is not the pool authority")
	ErrInvalidStatus = errors.New("invalid loan pool status")
)

type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

type AssetType string

const (
	AssetRealEstate AssetType = "real_estate"
	AssetVehicle    AssetType = "vehicle"
	AssetEquipment  AssetType = "equipment"
	AssetOther      AssetType = "other"
)

const (
	MaxNameLen        = 100
	MaxDescriptionLen = 500
)

type LoanPool struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	PoolID      string    `gorm:"size:32;uniqueIndex:ux_loan_pools_pool_id" json:"pool_id"`
	AuthorityID string    `gorm:"size:32;index:idx_loan_pools_authority" json:"authority_id"`
	Name        string    `gorm:"size:100" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	AssetType   AssetType `gorm:"type:enum('real_estate','vehicle','equipment','other')" json:"asset_type"`
	// Policy parameters. Loans snapshot InterestRate and LoanTerm at request
	// time; later edits never touch existing loans.
	InterestRate    uint64 `gorm:"column:interest_rate" json:"interest_rate"`
	MinLoanAmount   uint64 `gorm:"column:min_loan_amount" json:"min_loan_amount"`
	MaxLoanAmount   uint64 `gorm:"column:max_loan_amount" json:"max_loan_amount"`
	LoanTerm        uint64 `gorm:"column:loan_term" json:"loan_term"`
	CollateralRatio uint64 `gorm:"column:collateral_ratio" json:"collateral_ratio"`
	Status          Status `gorm:"type:enum('active','paused','closed');default:'active'" json:"status"`
	// Accounting totals, mutated only by the lending state machine.
	TotalAvailable  uint64    `gorm:"column:total_available" json:"total_available"`
	TotalLoans      uint64    `gorm:"column:total_loans" json:"total_loans"`
	TotalBorrowed   uint64    `gorm:"column:total_borrowed" json:"total_borrowed"`
	FundingAsset    string    `gorm:"size:32;column:funding_asset" json:"funding_asset"`
	CollateralAsset string    `gorm:"size:32;column:collateral_asset" json:"collateral_asset"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanPool) TableName() string { return "loan_pools" }

func ValidAssetType(a AssetType) bool {
	switch a {
	case AssetRealEstate, AssetVehicle, AssetEquipment, AssetOther:
		return true
	}
	return false
}
