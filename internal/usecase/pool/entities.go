package pool

import (
	"time"

	domain "unityvault-lending/internal/domain/pool"
)

type CreatePoolInput struct {
	AuthorityID     string           `json:"authority_id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	AssetType       domain.AssetType `json:"asset_type"`
	InterestRate    uint64           `json:"interest_rate"`
	MinLoanAmount   uint64           `json:"min_loan_amount"`
	MaxLoanAmount   uint64           `json:"max_loan_amount"`
	LoanTerm        uint64           `json:"loan_term"`
	CollateralRatio uint64           `json:"collateral_ratio"`
	FundingAsset    string           `json:"funding_asset"`
	CollateralAsset string           `json:"collateral_asset"`
	InitialDeposit  uint64           `json:"initial_deposit"`
}

type PoolDTO struct {
	PoolID          string    `json:"pool_id"`
	AuthorityID     string    `json:"authority_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	AssetType       string    `json:"asset_type"`
	InterestRate    uint64    `json:"interest_rate"`
	MinLoanAmount   uint64    `json:"min_loan_amount"`
	MaxLoanAmount   uint64    `json:"max_loan_amount"`
	LoanTerm        uint64    `json:"loan_term"`
	CollateralRatio uint64    `json:"collateral_ratio"`
	Status          string    `json:"status"`
	TotalAvailable  uint64    `json:"total_available"`
	TotalLoans      uint64    `json:"total_loans"`
	TotalBorrowed   uint64    `json:"total_borrowed"`
	FundingAsset    string    `json:"funding_asset"`
	CollateralAsset string    `json:"collateral_asset"`
	CreatedAt       time.Time `json:"created_at"`
}

func toDTO(p *domain.LoanPool) *PoolDTO {
	return &PoolDTO{
		PoolID:          p.PoolID,
		AuthorityID:     p.AuthorityID,
		Name:            p.Name,
		Description:     p.Description,
		AssetType:       string(p.AssetType),
		InterestRate:    p.InterestRate,
		MinLoanAmount:   p.MinLoanAmount,
		MaxLoanAmount:   p.MaxLoanAmount,
		LoanTerm:        p.LoanTerm,
		CollateralRatio: p.CollateralRatio,
		Status:          string(p.Status),
		TotalAvailable:  p.TotalAvailable,
		TotalLoans:      p.TotalLoans,
		TotalBorrowed:   p.TotalBorrowed,
		FundingAsset:    p.FundingAsset,
		CollateralAsset: p.CollateralAsset,
		CreatedAt:       p.CreatedAt,
	}
}
