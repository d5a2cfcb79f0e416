package riskmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrModelUnavailable reports a missing or corrupt artifact. Loading is
// all-or-nothing: a bundle with some sub-models absent is rejected outright,
// because probability and segment outputs must come from the same training
// run to be mutually consistent.
var ErrModelUnavailable = errors.New("model unavailable")

// Artifact is the versioned bundle produced by the offline trainer. JSON so
// a non-Go trainer can emit it.
type Artifact struct {
	Version       int            `json:"version"`
	Features      []string       `json:"features"`
	Classifier    *Forest        `json:"classifier"`
	Clusterer     *KMeans        `json:"clusterer"`
	ClusterScaler *Scaler        `json:"cluster_scaler"`
	SegmentMap    map[int]string `json:"segment_map"`
}

// TreeNode is one node of a decision tree. Feature < 0 marks a leaf, in
// which case Value is the probability of the high-risk class at that leaf.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// predict descends from the root; rows with value <= threshold go left.
func (t Tree) predict(row []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature < 0 {
			return n.Value
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Forest averages leaf probabilities across trees.
type Forest struct {
	Trees []Tree `json:"trees"`
}

func (f *Forest) Proba(row []float64) float64 {
	if len(f.Trees) == 0 {
		return 0
	}
	var sum float64
	for _, t := range f.Trees {
		sum += t.predict(row)
	}
	return sum / float64(len(f.Trees))
}

// Scaler applies per-dimension standardization fitted at training time.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

func (s *Scaler) Transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		std := s.Std[i]
		if std == 0 {
			std = 1
		}
		out[i] = (v - s.Mean[i]) / std
	}
	return out
}

// KMeans assigns a point to its nearest centroid. Features names the
// clustering subspace (income and loan amount); it is deliberately narrower
// than the classifier schema and is paired with its own scaler.
type KMeans struct {
	Features  []string    `json:"features"`
	Centroids [][]float64 `json:"centroids"`
}

func (k *KMeans) Assign(row []float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, c := range k.Centroids {
		var d float64
		for j := range row {
			diff := row[j] - c[j]
			d += diff * diff
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Load reads and validates an artifact file and returns a ready Model.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read artifact: %v", ErrModelUnavailable, err)
	}
	return Parse(data)
}

// Parse validates the bundle end to end before any of it is used.
func Parse(data []byte) (*Model, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: decode artifact: %v", ErrModelUnavailable, err)
	}
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return &Model{
		version:  a.Version,
		features: a.Features,
		forest:   a.Classifier,
		km:       a.Clusterer,
		scaler:   a.ClusterScaler,
		segments: a.SegmentMap,
	}, nil
}

func (a *Artifact) validate() error {
	if a.Version < 1 {
		return fmt.Errorf("bad artifact version %d", a.Version)
	}
	if len(a.Features) == 0 {
		return errors.New("artifact carries no feature schema")
	}
	if a.Classifier == nil || len(a.Classifier.Trees) == 0 {
		return errors.New("artifact has no classifier")
	}
	for ti, t := range a.Classifier.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("tree %d is empty", ti)
		}
		for ni, n := range t.Nodes {
			if n.Feature >= len(a.Features) {
				return fmt.Errorf("tree %d node %d references feature %d outside schema", ti, ni, n.Feature)
			}
			if n.Feature < 0 {
				if n.Value < 0 || n.Value > 1 {
					return fmt.Errorf("tree %d node %d leaf value %v outside [0,1]", ti, ni, n.Value)
				}
				continue
			}
			// children must point strictly forward so descent terminates
			if n.Left <= ni || n.Right <= ni || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
				return fmt.Errorf("tree %d node %d has invalid children", ti, ni)
			}
		}
	}
	if a.Clusterer == nil || len(a.Clusterer.Centroids) == 0 {
		return errors.New("artifact has no clusterer")
	}
	dims := len(a.Clusterer.Features)
	if dims == 0 {
		return errors.New("clusterer names no features")
	}
	for _, name := range a.Clusterer.Features {
		if !containsString(a.Features, name) {
			return fmt.Errorf("clustering feature %q not in schema", name)
		}
	}
	for i, c := range a.Clusterer.Centroids {
		if len(c) != dims {
			return fmt.Errorf("centroid %d has %d dims, want %d", i, len(c), dims)
		}
	}
	if a.ClusterScaler == nil || len(a.ClusterScaler.Mean) != dims || len(a.ClusterScaler.Std) != dims {
		return errors.New("cluster scaler missing or dimension mismatch")
	}
	if len(a.SegmentMap) == 0 {
		return errors.New("artifact has no segment map")
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
