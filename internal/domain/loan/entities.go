package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusPaid      Status = "Paid"
	StatusDefaulted Status = "Defaulted"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidAmount = errors.New("payment amount must be positive")
	// ErrLoanClosed guards the one-way Active→Paid edge: a Paid loan accepts
	// no further payments and never leaves Paid.
	ErrLoanClosed = errors.New("loan is already paid off")
	// ErrAlreadySettled is informational: settlement generation on a Paid loan.
	ErrAlreadySettled = errors.New("loan is already settled")
)

// Table: loans. outstanding_amount is owned by the ledger: non-negative,
// only ever reduced by payments, and zero exactly when status is Paid.
// predicted_default_risk / risk_explanation / risk_computed_at form the
// derived risk snapshot; they are overwritten on every re-score, no history.
type Loan struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID   string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	ClientID uint64 `gorm:"column:client_id;not null;index:idx_loans_client" json:"-"`

	Amount            float64 `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	InterestRate      float64 `gorm:"column:interest_rate;type:decimal(6,4)" json:"interest_rate"`
	TenureMonths      int     `gorm:"column:tenure_months;default:12" json:"tenure_months"`
	CollateralValue   float64 `gorm:"column:collateral_value;type:decimal(18,2);default:0" json:"collateral_value"`
	OutstandingAmount float64 `gorm:"column:outstanding_amount;type:decimal(18,2);default:0" json:"outstanding_amount"`
	MonthlyEMI        float64 `gorm:"column:monthly_emi;type:decimal(18,2);default:0" json:"monthly_emi"`
	MissedPayments    int     `gorm:"column:missed_payments;default:0" json:"missed_payments"`
	DaysPastDue       int     `gorm:"column:days_past_due;default:0" json:"days_past_due"`

	DueDate time.Time `gorm:"column:due_date" json:"due_date"`
	Status  Status    `gorm:"type:enum('Active','Paid','Defaulted');default:'Active'" json:"status"`

	PredictedDefaultRisk float64   `gorm:"column:predicted_default_risk;default:0" json:"predicted_default_risk"`
	RiskExplanation      string    `gorm:"column:risk_explanation;type:text" json:"risk_explanation"`
	RiskComputedAt       time.Time `gorm:"column:risk_computed_at" json:"risk_computed_at"`

	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// EMI uses simple (non-compounding) interest: total repayable spread evenly
// over the tenure. rate is an annual fraction (0.12 = 12%/yr).
func EMI(principal, rate float64, tenureMonths int) float64 {
	if tenureMonths <= 0 {
		return 0
	}
	years := float64(tenureMonths) / 12.0
	return principal * (1 + rate*years) / float64(tenureMonths)
}

// Table: payments. Append-only; rows are never updated or deleted once
// recorded.
type Payment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PaymentID string    `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID    uint64    `gorm:"column:loan_id;not null;index" json:"-"`
	Amount    float64   `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	PaidAt    time.Time `gorm:"column:paid_at;not null" json:"paid_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

// Table: reminders. One row per dispatched collection reminder.
type Reminder struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LoanID    uint64    `gorm:"column:loan_id;not null;index" json:"-"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Method    string    `gorm:"column:method;size:10;default:'SMS'" json:"method"`
	DateSent  time.Time `gorm:"column:date_sent;autoCreateTime" json:"date_sent"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Reminder) TableName() string { return "reminders" }
