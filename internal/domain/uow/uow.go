package uow

import (
	"context"

	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/internal/domain/loan"
)

type Repos struct {
	Clients   client.Repository
	Loans     loan.Repository
	Payments  loan.PaymentRepository
	Reminders loan.ReminderRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. This is what
	// serializes concurrent payments against one loan.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
