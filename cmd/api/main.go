package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "unityvault-lending/internal/adapter/http"
	"unityvault-lending/internal/adapter/middleware"
	"unityvault-lending/internal/adapter/repository/mysql"
	"unityvault-lending/internal/config"
	"unityvault-lending/internal/infrastructure/cache"
	"unityvault-lending/internal/infrastructure/db"
	ledgeruc "unityvault-lending/internal/usecase/ledger"
	loanuc "unityvault-lending/internal/usecase/loan"
	pooluc "unityvault-lending/internal/usecase/pool"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	pools := mysql.NewPoolRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	accounts := mysql.NewLedgerRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	poolUC := pooluc.NewUsecase(pools, tx)
	loanUC := loanuc.NewUsecase(loans, tx)
	ledgerUC := ledgeruc.NewUsecase(accounts)

	h := httpadp.NewHandler()
	poolH := httpadp.NewPoolHandler(poolUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	ledgerH := httpadp.NewLedgerHandler(ledgerUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idem := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/pools", poolH.CreatePool, idem)
	e.GET("/pools", poolH.ListPools)
	e.GET("/pools/:pool_id", poolH.GetPool)
	e.POST("/pools/:pool_id/pause", poolH.PausePool, idem)
	e.POST("/pools/:pool_id/resume", poolH.ResumePool, idem)
	e.POST("/pools/:pool_id/close", poolH.ClosePool, idem)

	e.POST("/pools/:pool_id/loans", loanH.RequestLoan, idem)
	e.GET("/pools/:pool_id/loans", loanH.ListLoansByPool)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.GET("/borrowers/:borrower_id/loans", loanH.ListLoansByBorrower)
	e.POST("/loans/:loan_id/approve", loanH.ApproveLoan, idem)
	e.POST("/loans/:loan_id/payments", loanH.MakePayment, idem)
	e.POST("/loans/:loan_id/default", loanH.MarkDefaulted, idem)

	e.POST("/ledger/deposits", ledgerH.Deposit, idem)
	e.GET("/ledger/:owner_id/:asset", ledgerH.Balance)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
