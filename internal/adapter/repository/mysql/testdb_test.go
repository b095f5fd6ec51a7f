package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type poolSQLite struct {
	ID              uint64 `gorm:"primaryKey;column:id"`
	PoolID          string `gorm:"size:32;column:pool_id"`
	AuthorityID     string `gorm:"size:32;column:authority_id"`
	Name            string `gorm:"column:name"`
	Description     string `gorm:"column:description"`
	AssetType       string `gorm:"type:text;column:asset_type"`
	InterestRate    uint64 `gorm:"column:interest_rate"`
	MinLoanAmount   uint64 `gorm:"column:min_loan_amount"`
	MaxLoanAmount   uint64 `gorm:"column:max_loan_amount"`
	LoanTerm        uint64 `gorm:"column:loan_term"`
	CollateralRatio uint64 `gorm:"column:collateral_ratio"`
	Status          string `gorm:"type:text;column:status"`
	TotalAvailable  uint64 `gorm:"column:total_available"`
	TotalLoans      uint64 `gorm:"column:total_loans"`
	TotalBorrowed   uint64 `gorm:"column:total_borrowed"`
	FundingAsset    string `gorm:"size:32;column:funding_asset"`
	CollateralAsset string `gorm:"size:32;column:collateral_asset"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (poolSQLite) TableName() string { return "loan_pools" }

type loanSQLite struct {
	ID              uint64 `gorm:"primaryKey;column:id"`
	LoanID          string `gorm:"size:32;column:loan_id"`
	BorrowerID      string `gorm:"size:32;column:borrower_id"`
	PoolID          string `gorm:"size:32;column:pool_id"`
	Amount          uint64 `gorm:"column:amount"`
	InterestRate    uint64 `gorm:"column:interest_rate"`
	Term            uint64 `gorm:"column:term"`
	RemainingAmount uint64 `gorm:"column:remaining_amount"`
	Status          string `gorm:"type:text;column:status"`
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (loanSQLite) TableName() string { return "loans" }

type ledgerSQLite struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	OwnerID   string `gorm:"size:32;column:owner_id"`
	Asset     string `gorm:"size:32;column:asset"`
	Balance   uint64 `gorm:"column:balance"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ledgerSQLite) TableName() string { return "ledger_accounts" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&poolSQLite{}, &loanSQLite{}, &ledgerSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
