package http

import (
	"net/http"

	"unityvault-lending/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type depositReq struct {
	OwnerID string `json:"owner_id" validate:"required,hex32"`
	Asset   string `json:"asset"    validate:"required,max=32"`
	Amount  uint64 `json:"amount"   validate:"required,gt=0"`
}

func (h *LedgerHandler) Deposit(c echo.Context) error {
	var req depositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Deposit(c.Request().Context(), ledger.DepositInput{
		OwnerID: req.OwnerID,
		Asset:   req.Asset,
		Amount:  req.Amount,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LedgerHandler) Balance(c echo.Context) error {
	dto, err := h.uc.Balance(c.Request().Context(), c.Param("owner_id"), c.Param("asset"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
