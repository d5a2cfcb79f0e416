package riskmodel

import "context"

// DefaultHighRiskSegments are the segments treated as structurally risky by
// both labeling strategies.
var DefaultHighRiskSegments = []string{
	"High Loan, Higher Default Risk",
	"Moderate Income, High Loan Burden",
}

// LabelingStrategy decides the supervised training label for one row. It
// exists so the offline trainer can choose how labels are derived without
// hard-wiring segmentation output into classification: the two are
// independently swappable concerns.
type LabelingStrategy interface {
	Label(fv FeatureVector, segment string) int
}

// SegmentLabeling reproduces the legacy scheme: any row falling in a named
// high-risk segment is labeled 1. Note this trains the classifier to predict
// the clusterer's own output; kept only so historical artifacts can be
// rebuilt bit-for-bit.
type SegmentLabeling struct {
	HighRisk []string
}

func (s SegmentLabeling) Label(_ FeatureVector, segment string) int {
	if containsString(s.HighRisk, segment) {
		return 1
	}
	return 0
}

// BehavioralLabeling labels on observed repayment behavior first, then falls
// back to structural affordability for high-burden segments.
type BehavioralLabeling struct {
	HighRisk []string
}

func (b BehavioralLabeling) Label(fv FeatureVector, segment string) int {
	// behavioral risk overrides everything
	if fv[FeatureDaysPastDue] > 15 || fv[FeatureMissedPayments] >= 1 {
		return 1
	}
	// structural risk: risky profile and EMI above 40% of income
	if containsString(b.HighRisk, segment) && fv[FeatureMonthlyEMI] > fv[FeatureMonthlyIncome]*0.40 {
		return 1
	}
	return 0
}

// ArtifactBuilder is implemented by the offline trainer. The service never
// trains; it only consumes a builder's output through Load/Parse.
type ArtifactBuilder interface {
	Build(ctx context.Context, rows []FeatureVector, labeling LabelingStrategy) (*Artifact, error)
}
