package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate takes a row lock; only valid inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListByStatus(ctx context.Context, statuses ...Status) ([]Loan, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, statuses ...Status) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	ListByLoanID(ctx context.Context, loanID uint64) ([]Payment, error)
}

type ReminderRepository interface {
	Create(ctx context.Context, r *Reminder) error
}
