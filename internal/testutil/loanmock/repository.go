package loanmock

import (
	"context"
	"errors"
	"time"

	domain "intellidebt-backend/internal/domain/loan"
)

// Compile-time compliance
var (
	_ domain.Repository         = (*Repo)(nil)
	_ domain.PaymentRepository  = (*PaymentRepo)(nil)
	_ domain.ReminderRepository = (*ReminderRepo)(nil)
)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields you need in a test; unfilled ones fail loudly.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	ListByStatusFn         func(ctx context.Context, statuses ...domain.Status) ([]domain.Loan, error)
	ListOverdueFn          func(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
	ListAllFn              func(ctx context.Context) ([]domain.Loan, error)
	CountFn                func(ctx context.Context) (int64, error)
	CountByStatusFn        func(ctx context.Context, statuses ...domain.Status) (int64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, statuses...)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, asOf)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, errUnimplemented
}

func (m *Repo) CountByStatus(ctx context.Context, statuses ...domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, statuses...)
	}
	return 0, errUnimplemented
}

// PaymentRepo mocks domain.PaymentRepository.
type PaymentRepo struct {
	CreateFn       func(ctx context.Context, p *domain.Payment) error
	ListByLoanIDFn func(ctx context.Context, loanID uint64) ([]domain.Payment, error)
}

func (m *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

// ReminderRepo mocks domain.ReminderRepository.
type ReminderRepo struct {
	CreateFn func(ctx context.Context, r *domain.Reminder) error
}

func (m *ReminderRepo) Create(ctx context.Context, r *domain.Reminder) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
