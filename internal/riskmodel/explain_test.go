package riskmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplain_AllRulesFireInOrder(t *testing.T) {
	fv := FeatureVector{
		FeatureMissedPayments: 3,
		FeatureDaysPastDue:    60,
		FeatureMonthlyIncome:  10_000,
		FeatureLoanAmount:     100_000,
	}
	require.Equal(t, []string{
		"History of missed payments.",
		"Significant days past due.",
		"Loan amount is very high vs Income.",
	}, Explain(fv))
}

func TestExplain_CleanHistory(t *testing.T) {
	fv := FeatureVector{
		FeatureMissedPayments: 0,
		FeatureDaysPastDue:    0,
		FeatureMonthlyIncome:  50_000,
		FeatureLoanAmount:     100_000,
	}
	require.Equal(t, []string{"Good repayment history."}, Explain(fv))
}

func TestExplain_Boundaries(t *testing.T) {
	// exactly one missed payment fires neither the missed-payments rule nor
	// the good-history fallback: the list is legitimately empty
	require.Empty(t, Explain(FeatureVector{FeatureMissedPayments: 1}))

	// 30 days past due is not yet "significant"
	got := Explain(FeatureVector{FeatureDaysPastDue: 30})
	require.Equal(t, []string{"Good repayment history."}, got)

	// loan at exactly 8x income does not trip the burden rule
	got = Explain(FeatureVector{
		FeatureMonthlyIncome: 10_000,
		FeatureLoanAmount:    80_000,
	})
	require.Equal(t, []string{"Good repayment history."}, got)

	got = Explain(FeatureVector{
		FeatureMonthlyIncome: 10_000,
		FeatureLoanAmount:    80_001,
	})
	require.Equal(t, []string{"Loan amount is very high vs Income."}, got)
}
