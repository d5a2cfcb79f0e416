package riskmodel

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, a *Artifact) string {
	t.Helper()
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestLoad_ValidArtifact(t *testing.T) {
	m, err := Load(writeArtifact(t, testArtifact()))
	require.NoError(t, err)
	require.Equal(t, 1, m.Version())
	require.Equal(t, DefaultSchema, m.Features())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, ErrModelUnavailable)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.ErrorIs(t, err, ErrModelUnavailable)
}

func TestParse_RejectsPartialBundles(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(a *Artifact)
	}{
		{"no version", func(a *Artifact) { a.Version = 0 }},
		{"no schema", func(a *Artifact) { a.Features = nil }},
		{"no classifier", func(a *Artifact) { a.Classifier = nil }},
		{"empty forest", func(a *Artifact) { a.Classifier.Trees = nil }},
		{"no clusterer", func(a *Artifact) { a.Clusterer = nil }},
		{"no scaler", func(a *Artifact) { a.ClusterScaler = nil }},
		{"no segment map", func(a *Artifact) { a.SegmentMap = nil }},
		{"scaler dim mismatch", func(a *Artifact) { a.ClusterScaler.Mean = []float64{1} }},
		{"clustering feature outside schema", func(a *Artifact) {
			a.Clusterer.Features = []string{"No_Such_Feature", FeatureLoanAmount}
		}},
		{"centroid dim mismatch", func(a *Artifact) {
			a.Clusterer.Centroids[1] = []float64{1, 2, 3}
		}},
		{"leaf value above one", func(a *Artifact) {
			a.Classifier.Trees[0].Nodes[1].Value = 1.5
		}},
		{"backward child pointer", func(a *Artifact) {
			a.Classifier.Trees[0].Nodes[0].Left = 0
		}},
		{"split on feature outside schema", func(a *Artifact) {
			a.Classifier.Trees[0].Nodes[0].Feature = len(DefaultSchema)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := testArtifact()
			tc.mutate(a)
			raw, err := json.Marshal(a)
			require.NoError(t, err)
			_, err = Parse(raw)
			require.ErrorIs(t, err, ErrModelUnavailable)
		})
	}
}

func TestForest_ProbaAveragesTrees(t *testing.T) {
	f := testArtifact().Classifier
	rowClean := make([]float64, len(DefaultSchema))
	rowRisky := make([]float64, len(DefaultSchema))
	rowRisky[8] = 2 // missed payments

	require.InDelta(t, 0.15, f.Proba(rowClean), 1e-9)
	require.InDelta(t, 0.85, f.Proba(rowRisky), 1e-9)
}

func TestScaler_ZeroStdDoesNotDivideByZero(t *testing.T) {
	s := &Scaler{Mean: []float64{10, 0}, Std: []float64{0, 2}}
	require.Equal(t, []float64{5, 3}, s.Transform([]float64{15, 6}))
}

func TestKMeans_AssignNearestCentroid(t *testing.T) {
	k := &KMeans{
		Features:  []string{FeatureMonthlyIncome, FeatureLoanAmount},
		Centroids: [][]float64{{0, 0}, {10, 10}},
	}
	require.Equal(t, 0, k.Assign([]float64{1, 2}))
	require.Equal(t, 1, k.Assign([]float64{9, 8}))
}
