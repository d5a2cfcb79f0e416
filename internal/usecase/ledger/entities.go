package ledger

import (
	"time"

	"intellidebt-backend/internal/decision"
)

type CreateLoanInput struct {
	ClientID        string    `json:"client_id"`
	Principal       float64   `json:"principal"`
	InterestRate    float64   `json:"interest_rate"`
	TenureMonths    int       `json:"tenure_months"`
	CollateralValue float64   `json:"collateral_value"`
	DueDate         time.Time `json:"due_date"`
}

type LoanDTO struct {
	LoanID            string    `json:"loan_id"`
	ClientID          string    `json:"client_id"`
	Amount            float64   `json:"amount"`
	InterestRate      float64   `json:"interest_rate"`
	TenureMonths      int       `json:"tenure_months"`
	CollateralValue   float64   `json:"collateral_value"`
	OutstandingAmount float64   `json:"outstanding_amount"`
	MonthlyEMI        float64   `json:"monthly_emi"`
	MissedPayments    int       `json:"missed_payments"`
	DaysPastDue       int       `json:"days_past_due"`
	DueDate           time.Time `json:"due_date"`
	Status            string    `json:"status"`

	PredictedDefaultRisk float64          `json:"predicted_default_risk"`
	RiskReasons          []string         `json:"risk_reasons"`
	RiskComputedAt       time.Time        `json:"risk_computed_at"`
	Strategy             string           `json:"strategy"`
	Channel              decision.Channel `json:"channel"`

	CreatedAt time.Time `json:"created_at"`
}

type PaymentDTO struct {
	PaymentID            string    `json:"payment_id"`
	LoanID               string    `json:"loan_id"`
	Amount               float64   `json:"amount"`
	OutstandingAmount    float64   `json:"outstanding_amount"`
	Status               string    `json:"status"`
	PredictedDefaultRisk float64   `json:"predicted_default_risk"`
	RiskReasons          []string  `json:"risk_reasons"`
	PaidAt               time.Time `json:"paid_at"`
}

type SettlementOfferDTO struct {
	LoanID            string    `json:"loan_id"`
	RiskProbability   float64   `json:"risk_probability"`
	OutstandingAmount float64   `json:"outstanding_amount"`
	DiscountPercent   int       `json:"discount_percent"`
	DiscountAmount    float64   `json:"discount_amount"`
	SettlementAmount  float64   `json:"settlement_amount"`
	Reason            string    `json:"reason"`
	Recommended       bool      `json:"recommended"`
	GeneratedAt       time.Time `json:"generated_at"`
}
