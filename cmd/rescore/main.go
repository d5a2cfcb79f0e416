// Command rescore recomputes the risk snapshot for every loan against the
// current artifact. Meant for one-off runs after dropping in a retrained
// model; Paid loans keep their terminal snapshot untouched.
package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"intellidebt-backend/internal/adapter/repository/mysql"
	"intellidebt-backend/internal/config"
	"intellidebt-backend/internal/domain/loan"
	"intellidebt-backend/internal/infrastructure/db"
	"intellidebt-backend/internal/riskmodel"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	m, err := riskmodel.Load(cfg.ModelPath)
	if err != nil {
		log.Fatal(err)
	}
	model := riskmodel.NewHandle(m)
	log.Printf("scoring artifact loaded: version %d", m.Version())

	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	loanRepo := mysql.NewLoanRepository(gormDB)
	clientRepo := mysql.NewClientRepository(gormDB)

	all, err := loanRepo.ListAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("found %d loans", len(all))

	count := 0
	for i := range all {
		l := &all[i]
		if l.Status == loan.StatusPaid {
			continue
		}
		c, err := clientRepo.GetByID(ctx, l.ClientID)
		if err != nil {
			c = nil
		}

		fv := riskmodel.Extract(l, c)
		risk, err := model.PredictRisk(fv)
		if err != nil {
			log.Fatalf("loan %s: %v", l.LoanID, err)
		}
		l.PredictedDefaultRisk = risk
		l.RiskExplanation = strings.Join(riskmodel.Explain(fv), ", ")
		l.RiskComputedAt = time.Now().UTC()

		if err := loanRepo.Save(ctx, l); err != nil {
			log.Fatalf("loan %s: save: %v", l.LoanID, err)
		}
		count++
		if count%50 == 0 {
			log.Printf("processed %d loans...", count)
		}
	}
	log.Printf("done: risk scores updated for %d loans", count)
}
