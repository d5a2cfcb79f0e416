package main

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "intellidebt-backend/internal/adapter/http"
	mw "intellidebt-backend/internal/adapter/middleware"
	"intellidebt-backend/internal/adapter/repository/mysql"
	"intellidebt-backend/internal/config"
	"intellidebt-backend/internal/infrastructure/cache"
	"intellidebt-backend/internal/infrastructure/db"
	"intellidebt-backend/internal/riskmodel"
	"intellidebt-backend/internal/usecase/clients"
	"intellidebt-backend/internal/usecase/ledger"
	"intellidebt-backend/internal/usecase/outreach"
	"intellidebt-backend/internal/usecase/segmentation"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// Load the scoring artifact once; a missing or corrupt bundle leaves the
	// service in degraded fallback mode (neutral risk) rather than down.
	var model *riskmodel.Handle
	if m, err := riskmodel.Load(cfg.ModelPath); err != nil {
		if errors.Is(err, riskmodel.ErrModelUnavailable) {
			log.Printf("scoring disabled: %v", err)
			model = riskmodel.NewHandle(nil)
		} else {
			log.Fatal(err)
		}
	} else {
		log.Printf("scoring artifact loaded: version %d", m.Version())
		model = riskmodel.NewHandle(m)
	}

	clientRepo := mysql.NewClientRepository(gormDB)
	loanRepo := mysql.NewLoanRepository(gormDB)
	reminderRepo := mysql.NewReminderRepository(gormDB)
	uow := mysql.NewGormUoW(gormDB)

	clientUC := clients.NewUsecase(clientRepo)
	ledgerUC := ledger.NewUsecase(clientRepo, loanRepo, uow, model)
	segmentUC := segmentation.NewUsecase(loanRepo, clientRepo, model, rdb,
		time.Duration(cfg.SegmentCacheTTLSecs)*time.Second)
	outreachUC := outreach.NewUsecase(loanRepo, clientRepo, reminderRepo)

	h := httpadp.NewHandler(model)
	ch := httpadp.NewClientHandler(clientUC)
	lh := httpadp.NewLoanHandler(ledgerUC)
	ih := httpadp.NewInsightHandler(segmentUC, outreachUC, model, cfg.ModelPath)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/clients", ch.CreateClient, idemp)
	e.GET("/clients", ch.ListClients)
	e.GET("/clients/:client_id", ch.GetClient)
	e.PATCH("/clients/:client_id", ch.UpdateClient, idemp)

	e.POST("/loans", lh.CreateLoan, idemp)
	e.GET("/loans", lh.ListLoans)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.POST("/loans/:loan_id/payments", lh.ApplyPayment, idemp)
	e.GET("/loans/:loan_id/settlement-offer", lh.SettlementOffer)

	e.GET("/segments", ih.SegmentOverview)
	e.POST("/reminders/run", ih.RunReminders)
	e.POST("/model/reload", ih.ReloadModel)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
