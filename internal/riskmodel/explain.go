package riskmodel

// Explain produces ordered, human-readable risk reasons from the raw feature
// vector. It is deliberately independent of the trained model so the reasons
// stay auditable even when the model is swapped or unavailable.
//
// Known gap carried over from the legacy rules: a vector where no rule fires
// but missed payments > 0 yields an empty list. We reproduce that rather
// than invent a synthetic reason.
func Explain(fv FeatureVector) []string {
	var reasons []string
	if fv[FeatureMissedPayments] > 1 {
		reasons = append(reasons, "History of missed payments.")
	}
	if fv[FeatureDaysPastDue] > 30 {
		reasons = append(reasons, "Significant days past due.")
	}
	if fv[FeatureLoanAmount] > fv[FeatureMonthlyIncome]*8 {
		reasons = append(reasons, "Loan amount is very high vs Income.")
	}
	if len(reasons) == 0 && fv[FeatureMissedPayments] == 0 {
		reasons = append(reasons, "Good repayment history.")
	}
	return reasons
}
