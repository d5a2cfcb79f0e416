package mysql

import (
	"context"

	loanDomain "intellidebt-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *loanDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]loanDomain.Payment, error) {
	var out []loanDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("paid_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

type ReminderRepository struct{ db *gorm.DB }

func NewReminderRepository(db *gorm.DB) *ReminderRepository { return &ReminderRepository{db: db} }

func (r *ReminderRepository) Create(ctx context.Context, m *loanDomain.Reminder) error {
	return r.db.WithContext(ctx).Create(m).Error
}
