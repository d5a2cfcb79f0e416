// Package ledger owns loan balance and status transitions. Every mutating
// event (creation, payment) runs the extract→score→explain pipeline
// synchronously and writes the refreshed risk snapshot back onto the loan.
package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"intellidebt-backend/internal/decision"
	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/internal/domain/loan"
	"intellidebt-backend/internal/domain/uow"
	"intellidebt-backend/internal/riskmodel"
	"intellidebt-backend/pkg/id"

	"gorm.io/gorm"
)

// FallbackExplanation is written when scoring fails at creation time; the
// loan is committed regardless, scoring failures never block the ledger.
const FallbackExplanation = "Manual Review Required (model unavailable)"

// PaidExplanation is the terminal snapshot for a fully repaid loan.
const PaidExplanation = "Loan fully paid"

type Usecase struct {
	clients client.Repository
	loans   loan.Repository
	uow     uow.UnitOfWork
	model   *riskmodel.Handle
}

func NewUsecase(clients client.Repository, loans loan.Repository, tx uow.UnitOfWork, model *riskmodel.Handle) *Usecase {
	return &Usecase{clients: clients, loans: loans, uow: tx, model: model}
}

// CreateLoan computes the EMI, opens the loan Active with the full principal
// outstanding, and scores it before it is considered committed.
func (u *Usecase) CreateLoan(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.ClientID == "" || len(in.ClientID) != 32 || in.Principal <= 0 || in.TenureMonths <= 0 || in.InterestRate < 0 {
		return nil, errors.New("invalid input")
	}

	c, err := u.clients.GetByClientID(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	due := in.DueDate
	if due.IsZero() {
		due = now.AddDate(0, 1, 0)
	}

	l := &loan.Loan{
		LoanID:            id.NewID32(),
		ClientID:          c.ID,
		Amount:            in.Principal,
		InterestRate:      in.InterestRate,
		TenureMonths:      in.TenureMonths,
		CollateralValue:   in.CollateralValue,
		OutstandingAmount: in.Principal,
		MonthlyEMI:        loan.EMI(in.Principal, in.InterestRate, in.TenureMonths),
		DueDate:           due,
		Status:            loan.StatusActive,
		StatusUpdatedAt:   now,
	}

	u.score(l, c, now)

	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return u.toDTO(l, c), nil
}

// score refreshes the loan's risk snapshot in place. Model unavailability
// degrades to the neutral probability and a manual-review explanation.
func (u *Usecase) score(l *loan.Loan, c *client.Client, now time.Time) {
	fv := riskmodel.Extract(l, c)
	risk, err := u.model.PredictRisk(fv)
	l.PredictedDefaultRisk = risk
	if err != nil {
		l.RiskExplanation = FallbackExplanation
	} else {
		l.RiskExplanation = strings.Join(riskmodel.Explain(fv), ", ")
	}
	l.RiskComputedAt = now
}

// ApplyPayment records an append-only payment row and reduces the balance
// inside one row-locked transaction, so concurrent submissions against the
// same loan serialize and the balance only ever decreases. Reaching zero
// flips the loan to Paid with a forced terminal snapshot; otherwise the
// pipeline reruns against the new outstanding amount.
func (u *Usecase) ApplyPayment(ctx context.Context, loanID string, amount float64) (*PaymentDTO, error) {
	if amount <= 0 {
		return nil, loan.ErrInvalidAmount
	}

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status == loan.StatusPaid {
			return loan.ErrLoanClosed
		}

		now := time.Now().UTC()
		p := &loan.Payment{
			PaymentID: id.NewID32(),
			LoanID:    l.ID,
			Amount:    amount,
			PaidAt:    now,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		l.OutstandingAmount -= amount
		if l.OutstandingAmount <= 0 {
			l.OutstandingAmount = 0
			l.Status = loan.StatusPaid
			l.StatusUpdatedAt = now
			// terminal snapshot; the scoring pipeline is not invoked
			l.PredictedDefaultRisk = 0
			l.RiskExplanation = PaidExplanation
			l.RiskComputedAt = now
		} else {
			// client fields are optional inputs; a lookup failure degrades
			// those features to zero rather than blocking the payment
			c, cerr := r.Clients.GetByID(ctx, l.ClientID)
			if cerr != nil {
				c = nil
			}
			u.score(l, c, now)
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &PaymentDTO{
			PaymentID:            p.PaymentID,
			LoanID:               l.LoanID,
			Amount:               amount,
			OutstandingAmount:    l.OutstandingAmount,
			Status:               string(l.Status),
			PredictedDefaultRisk: l.PredictedDefaultRisk,
			RiskReasons:          splitReasons(l.RiskExplanation),
			PaidAt:               p.PaidAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// GenerateSettlementOffer delegates to the decision rules. A Paid loan is
// rejected; a low-risk loan yields a non-recommended offer, not an error.
func (u *Usecase) GenerateSettlementOffer(ctx context.Context, loanID string) (*SettlementOfferDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	if l.Status == loan.StatusPaid {
		return nil, loan.ErrAlreadySettled
	}

	s := decision.SettlementFor(l.PredictedDefaultRisk, l.OutstandingAmount)
	return &SettlementOfferDTO{
		LoanID:            l.LoanID,
		RiskProbability:   l.PredictedDefaultRisk,
		OutstandingAmount: l.OutstandingAmount,
		DiscountPercent:   s.DiscountPercent,
		DiscountAmount:    s.DiscountAmount,
		SettlementAmount:  s.SettlementAmount,
		Reason:            s.Reason,
		Recommended:       s.Recommended,
		GeneratedAt:       time.Now().UTC(),
	}, nil
}

func (u *Usecase) GetLoan(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	c, err := u.clients.GetByID(ctx, l.ClientID)
	if err != nil {
		c = nil
	}
	return u.toDTO(l, c), nil
}

func (u *Usecase) ListLoans(ctx context.Context, statuses ...loan.Status) ([]LoanDTO, error) {
	var (
		ls  []loan.Loan
		err error
	)
	if len(statuses) == 0 {
		ls, err = u.loans.ListAll(ctx)
	} else {
		ls, err = u.loans.ListByStatus(ctx, statuses...)
	}
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *u.toDTO(&ls[i], nil))
	}
	return out, nil
}

func (u *Usecase) toDTO(l *loan.Loan, c *client.Client) *LoanDTO {
	dto := &LoanDTO{
		LoanID:            l.LoanID,
		Amount:            l.Amount,
		InterestRate:      l.InterestRate,
		TenureMonths:      l.TenureMonths,
		CollateralValue:   l.CollateralValue,
		OutstandingAmount: l.OutstandingAmount,
		MonthlyEMI:        l.MonthlyEMI,
		MissedPayments:    l.MissedPayments,
		DaysPastDue:       l.DaysPastDue,
		DueDate:           l.DueDate,
		Status:            string(l.Status),

		PredictedDefaultRisk: l.PredictedDefaultRisk,
		RiskReasons:          splitReasons(l.RiskExplanation),
		RiskComputedAt:       l.RiskComputedAt,
		Strategy:             decision.StrategyFor(l.PredictedDefaultRisk),
		Channel:              decision.RecommendChannel(l.PredictedDefaultRisk, l.DaysPastDue, l.OutstandingAmount),

		CreatedAt: l.CreatedAt,
	}
	if c != nil {
		dto.ClientID = c.ClientID
	}
	return dto
}

func splitReasons(explanation string) []string {
	if explanation == "" {
		return nil
	}
	return strings.Split(explanation, ", ")
}
