package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"unityvault-lending/internal/testutil/ledgermock"
	uc "unityvault-lending/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

func newLedgerHandler() (*LedgerHandler, *ledgermock.Repo) {
	repo := ledgermock.New()
	return NewLedgerHandler(uc.NewUsecase(repo)), repo
}

func TestDeposit_Success(t *testing.T) {
	e := newEchoWithValidator()
	h, repo := newLedgerHandler()

	owner := strings.Repeat("a", 32)
	body := map[string]any{"owner_id": owner, "asset": "USDC", "amount": 1_000_000}
	req := httptest.NewRequest(stdhttp.MethodPost, "/ledger/deposits", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Deposit(c); err != nil {
		t.Fatalf("Deposit error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	var got uc.AccountDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Balance != 1_000_000 {
		t.Fatalf("balance = %d, want 1000000", got.Balance)
	}
	if repo.Balance(owner, "USDC") != 1_000_000 {
		t.Fatalf("deposit not applied")
	}
}

func TestDeposit_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := newLedgerHandler()

	body := map[string]any{"owner_id": "NOT_HEX", "asset": "", "amount": 0}
	req := httptest.NewRequest(stdhttp.MethodPost, "/ledger/deposits", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Deposit(c); err != nil {
		t.Fatalf("Deposit error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "OwnerID", "32-char lowercase hex") {
		t.Fatalf("missing owner_id detail: %+v", er.Details)
	}
}

func TestBalance_UnknownAccountIsZero(t *testing.T) {
	e := echo.New()
	h, _ := newLedgerHandler()

	owner := strings.Repeat("c", 32)
	req := httptest.NewRequest(stdhttp.MethodGet, "/ledger/"+owner+"/USDC", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("owner_id", "asset")
	c.SetParamValues(owner, "USDC")

	if err := h.Balance(c); err != nil {
		t.Fatalf("Balance error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got uc.AccountDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Balance != 0 {
		t.Fatalf("balance = %d, want 0", got.Balance)
	}
}
