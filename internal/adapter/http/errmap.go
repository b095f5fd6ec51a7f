package http

import (
	"errors"
	"net/http"

	domainLedger "unityvault-lending/internal/domain/ledger"
	domainLoan "unityvault-lending/internal/domain/loan"
	domainPool "unityvault-lending/internal/domain/pool"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// statusOf maps domain error kinds onto HTTP statuses. Anything unrecognized
// is a 500; the usecases never leak partial state on failure, so the caller
// can retry safely.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domainPool.ErrNotFound),
		errors.Is(err, domainLoan.ErrNotFound),
		errors.Is(err, domainLedger.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainPool.ErrUnauthorized),
		errors.Is(err, domainLoan.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domainPool.ErrInvalidStatus),
		errors.Is(err, domainLoan.ErrInvalidStatus),
		errors.Is(err, domainLedger.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, domainLoan.ErrInvalidAmount),
		errors.Is(err, domainPool.ErrValidation),
		errors.Is(err, domainLoan.ErrValidation),
		errors.Is(err, domainLedger.ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeErr(c echo.Context, err error) error {
	code := statusOf(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

// callerID extracts and validates the Ax-Caller-Id identity header.
func callerID(c echo.Context) (string, bool) {
	v := c.Request().Header.Get("Ax-Caller-Id")
	return v, reHex32.MatchString(v)
}
