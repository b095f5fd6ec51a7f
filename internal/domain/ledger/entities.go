package ledger

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("ledger account not found")
	ErrValidation        = errors.New("validation error")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is a custody balance keyed by (owner, asset). Pool-held collateral
// and borrower-held collateral/funds are all rows of this table; the only
// mutation paths are Deposit and Transfer.
type Account struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	OwnerID   string    `gorm:"size:32;uniqueIndex:ux_ledger_owner_asset,priority:1" json:"owner_id"`
	Asset     string    `gorm:"size:32;uniqueIndex:ux_ledger_owner_asset,priority:2" json:"asset"`
	Balance   uint64    `gorm:"column:balance" json:"balance"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string { return "ledger_accounts" }
