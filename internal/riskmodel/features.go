package riskmodel

import (
	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/internal/domain/loan"
)

// Canonical feature names. These are the wire names shared with the offline
// trainer; the artifact carries its own ordered copy of them, and inference
// always builds rows in the artifact's order, never this package's.
const (
	FeatureAge             = "Age"
	FeatureMonthlyIncome   = "Monthly_Income"
	FeatureLoanAmount      = "Loan_Amount"
	FeatureLoanTenure      = "Loan_Tenure"
	FeatureInterestRate    = "Interest_Rate"
	FeatureCollateralValue = "Collateral_Value"
	FeatureOutstanding     = "Outstanding_Loan_Amount"
	FeatureMonthlyEMI      = "Monthly_EMI"
	FeatureMissedPayments  = "Num_Missed_Payments"
	FeatureDaysPastDue     = "Days_Past_Due"
)

// DefaultSchema is the trainer-side reference order. Kept for artifact
// builders and tests; the loaded artifact is authoritative at inference time.
var DefaultSchema = []string{
	FeatureAge, FeatureMonthlyIncome, FeatureLoanAmount, FeatureLoanTenure,
	FeatureInterestRate, FeatureCollateralValue, FeatureOutstanding,
	FeatureMonthlyEMI, FeatureMissedPayments, FeatureDaysPastDue,
}

// FeatureVector holds named feature values for one loan+client pair. Absent
// keys read as zero, which is exactly the schema-drift behavior the model
// expects: missing fields default to 0, never to an error.
type FeatureVector map[string]float64

// Extract builds the vector from live entities. Total function: a nil client
// or loan contributes zeros rather than failing.
func Extract(l *loan.Loan, c *client.Client) FeatureVector {
	fv := FeatureVector{}
	if c != nil {
		fv[FeatureAge] = float64(c.Age)
		fv[FeatureMonthlyIncome] = c.MonthlyIncome
	}
	if l != nil {
		fv[FeatureLoanAmount] = l.Amount
		fv[FeatureLoanTenure] = float64(l.TenureMonths)
		fv[FeatureInterestRate] = l.InterestRate
		fv[FeatureCollateralValue] = l.CollateralValue
		fv[FeatureOutstanding] = l.OutstandingAmount
		fv[FeatureMonthlyEMI] = l.MonthlyEMI
		fv[FeatureMissedPayments] = float64(l.MissedPayments)
		fv[FeatureDaysPastDue] = float64(l.DaysPastDue)
	}
	return fv
}

// row orders the vector by the given schema; missing names become 0.
func row(fv FeatureVector, schema []string) []float64 {
	out := make([]float64, len(schema))
	for i, name := range schema {
		out[i] = fv[name]
	}
	return out
}
