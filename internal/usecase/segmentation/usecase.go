// Package segmentation computes the aggregate borrower-segment distribution
// for dashboards. Segments are derived on demand and never stored per loan.
package segmentation

import (
	"context"
	"encoding/json"
	"time"

	"intellidebt-backend/internal/domain/client"
	"intellidebt-backend/internal/domain/loan"
	"intellidebt-backend/internal/riskmodel"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "segments:overview"

type Usecase struct {
	loans   loan.Repository
	clients client.Repository
	model   *riskmodel.Handle
	rdb     *redis.Client
	ttl     time.Duration
}

// NewUsecase: rdb may be nil, in which case every call recomputes.
func NewUsecase(loans loan.Repository, clients client.Repository, model *riskmodel.Handle, rdb *redis.Client, ttl time.Duration) *Usecase {
	return &Usecase{loans: loans, clients: clients, model: model, rdb: rdb, ttl: ttl}
}

type Overview struct {
	TotalLoans     int64          `json:"total_loans"`
	ActiveDefaults int64          `json:"active_defaults"`
	Segments       map[string]int `json:"segments"`
	ComputedAt     time.Time      `json:"computed_at"`
}

// Overview segments every Active and Defaulted loan and counts by segment
// name. Defaulted loans are segmented like Active ones but reported
// separately in ActiveDefaults.
func (u *Usecase) Overview(ctx context.Context) (*Overview, error) {
	if cached := u.fromCache(ctx); cached != nil {
		return cached, nil
	}

	total, err := u.loans.Count(ctx)
	if err != nil {
		return nil, err
	}
	defaults, err := u.loans.CountByStatus(ctx, loan.StatusDefaulted)
	if err != nil {
		return nil, err
	}

	ls, err := u.loans.ListByStatus(ctx, loan.StatusActive, loan.StatusDefaulted)
	if err != nil {
		return nil, err
	}

	clientsByID, err := u.clientsFor(ctx, ls)
	if err != nil {
		return nil, err
	}

	batch := make([]riskmodel.FeatureVector, 0, len(ls))
	for i := range ls {
		c := clientsByID[ls[i].ClientID]
		batch = append(batch, riskmodel.Extract(&ls[i], c))
	}

	counts := map[string]int{}
	for _, name := range u.model.Segment(batch) {
		counts[name]++
	}

	out := &Overview{
		TotalLoans:     total,
		ActiveDefaults: defaults,
		Segments:       counts,
		ComputedAt:     time.Now().UTC(),
	}
	u.toCache(ctx, out)
	return out, nil
}

func (u *Usecase) clientsFor(ctx context.Context, ls []loan.Loan) (map[uint64]*client.Client, error) {
	seen := map[uint64]bool{}
	ids := make([]uint64, 0, len(ls))
	for i := range ls {
		if !seen[ls[i].ClientID] {
			seen[ls[i].ClientID] = true
			ids = append(ids, ls[i].ClientID)
		}
	}
	out := map[uint64]*client.Client{}
	if len(ids) == 0 {
		return out, nil
	}
	cs, err := u.clients.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range cs {
		out[cs[i].ID] = &cs[i]
	}
	return out, nil
}

func (u *Usecase) fromCache(ctx context.Context) *Overview {
	if u.rdb == nil {
		return nil
	}
	raw, err := u.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil
	}
	var out Overview
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}

func (u *Usecase) toCache(ctx context.Context, o *Overview) {
	if u.rdb == nil || u.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(o)
	if err != nil {
		return
	}
	_ = u.rdb.Set(ctx, cacheKey, raw, u.ttl).Err()
}
