package http

import (
	"context"
	"net/http"

	domain "unityvault-lending/internal/domain/pool"
	"unityvault-lending/internal/usecase/pool"

	"github.com/labstack/echo/v4"
)

type PoolHandler struct{ uc *pool.Usecase }

func NewPoolHandler(uc *pool.Usecase) *PoolHandler { return &PoolHandler{uc: uc} }

type createPoolReq struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Description     string `json:"description"      validate:"max=500"`
	AssetType       string `json:"asset_type"       validate:"required,assettype"`
	InterestRate    uint64 `json:"interest_rate"`
	MinLoanAmount   uint64 `json:"min_loan_amount"`
	MaxLoanAmount   uint64 `json:"max_loan_amount"  validate:"required,gt=0"`
	LoanTerm        uint64 `json:"loan_term"        validate:"required,gt=0"`
	CollateralRatio uint64 `json:"collateral_ratio"`
	FundingAsset    string `json:"funding_asset"    validate:"required"`
	CollateralAsset string `json:"collateral_asset" validate:"required"`
	InitialDeposit  uint64 `json:"initial_deposit"`
}

func (h *PoolHandler) CreatePool(c echo.Context) error {
	caller, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Caller-Id"})
	}
	var req createPoolReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), pool.CreatePoolInput{
		AuthorityID:     caller,
		Name:            req.Name,
		Description:     req.Description,
		AssetType:       toAssetType(req.AssetType),
		InterestRate:    req.InterestRate,
		MinLoanAmount:   req.MinLoanAmount,
		MaxLoanAmount:   req.MaxLoanAmount,
		LoanTerm:        req.LoanTerm,
		CollateralRatio: req.CollateralRatio,
		FundingAsset:    req.FundingAsset,
		CollateralAsset: req.CollateralAsset,
		InitialDeposit:  req.InitialDeposit,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PoolHandler) GetPool(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("pool_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PoolHandler) ListPools(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *PoolHandler) PausePool(c echo.Context) error {
	return h.statusChange(c, h.uc.Pause)
}

func (h *PoolHandler) ResumePool(c echo.Context) error {
	return h.statusChange(c, h.uc.Resume)
}

func (h *PoolHandler) ClosePool(c echo.Context) error {
	return h.statusChange(c, h.uc.Close)
}

func (h *PoolHandler) statusChange(c echo.Context, op func(ctx context.Context, callerID, poolID string) (*pool.PoolDTO, error)) error {
	caller, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Caller-Id"})
	}
	dto, err := op(c.Request().Context(), caller, c.Param("pool_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func toAssetType(s string) domain.AssetType { return domain.AssetType(s) }
