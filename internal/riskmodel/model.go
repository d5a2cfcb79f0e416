// Package riskmodel scores loans for default risk and groups borrowers into
// behavioral segments. The trained sub-models (random-forest classifier,
// k-means clusterer, clustering scaler, segment map) arrive together in one
// versioned artifact and are immutable after load; a Handle supports atomic
// replacement of the whole bundle when a retrained artifact is dropped in.
package riskmodel

import (
	"errors"
	"sync/atomic"
)

// NeutralRisk is the probability reported while no model is loaded. The
// decision pipeline must always produce some answer.
const NeutralRisk = 0.5

// SegmentUnknown is returned for rows that cannot be segmented.
const SegmentUnknown = "Unknown"

// ErrNotReady reports that no scoring artifact is loaded. The message
// doubles as the operator-facing status string.
var ErrNotReady = errors.New("System Not Ready")

// Model is an immutable-after-load bundle of trained sub-models. All methods
// are safe for unlimited concurrent readers.
type Model struct {
	version  int
	features []string
	forest   *Forest
	km       *KMeans
	scaler   *Scaler
	segments map[int]string
}

func (m *Model) Version() int { return m.version }

// Features returns the artifact's ordered feature schema.
func (m *Model) Features() []string {
	out := make([]string, len(m.features))
	copy(out, m.features)
	return out
}

// PredictRisk returns the probability of default in [0,1]. Rows are ordered
// by the artifact's own schema, so inference can never silently run on a
// feature order the classifier was not trained with.
func (m *Model) PredictRisk(fv FeatureVector) float64 {
	p := m.forest.Proba(row(fv, m.features))
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Segment labels each row with its borrower segment. Only the clustering
// subspace is used, scaled with the clustering-specific scaler; the
// full-feature scaler (if the trainer fit one) is never applied here.
func (m *Model) Segment(batch []FeatureVector) []string {
	out := make([]string, len(batch))
	for i, fv := range batch {
		scaled := m.scaler.Transform(row(fv, m.km.Features))
		name, ok := m.segments[m.km.Assign(scaled)]
		if !ok {
			name = SegmentUnknown
		}
		out[i] = name
	}
	return out
}

// Handle is the process-wide access point to the current model. Reloads swap
// the whole pointer; sub-models are never mutated in place, so readers
// always see a classifier and clusterer from the same training run.
type Handle struct {
	p atomic.Pointer[Model]
}

func NewHandle(m *Model) *Handle {
	h := &Handle{}
	if m != nil {
		h.p.Store(m)
	}
	return h
}

// Swap installs a freshly loaded model atomically.
func (h *Handle) Swap(m *Model) { h.p.Store(m) }

func (h *Handle) Current() *Model { return h.p.Load() }

func (h *Handle) Ready() bool { return h.p.Load() != nil }

// PredictRisk returns (NeutralRisk, ErrNotReady) when no artifact is loaded;
// callers map that to their own fallback rather than failing their workflow.
func (h *Handle) PredictRisk(fv FeatureVector) (float64, error) {
	m := h.p.Load()
	if m == nil {
		return NeutralRisk, ErrNotReady
	}
	return m.PredictRisk(fv), nil
}

// Segment degrades to SegmentUnknown per row when no artifact is loaded.
func (h *Handle) Segment(batch []FeatureVector) []string {
	m := h.p.Load()
	if m == nil {
		out := make([]string, len(batch))
		for i := range out {
			out[i] = SegmentUnknown
		}
		return out
	}
	return m.Segment(batch)
}
