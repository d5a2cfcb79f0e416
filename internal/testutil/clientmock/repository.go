package clientmock

import (
	"context"
	"errors"

	domain "intellidebt-backend/internal/domain/client"
)

// Compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("clientmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, c *domain.Client) error
	GetByClientIDFn func(ctx context.Context, clientID string) (*domain.Client, error)
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.Client, error)
	ListByIDsFn     func(ctx context.Context, ids []uint64) ([]domain.Client, error)
	SaveFn          func(ctx context.Context, c *domain.Client) error
	ListFn          func(ctx context.Context, limit int) ([]domain.Client, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Client, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByIDs(ctx context.Context, ids []uint64) ([]domain.Client, error) {
	if m.ListByIDsFn != nil {
		return m.ListByIDsFn(ctx, ids)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Client) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, limit int) ([]domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit)
	}
	return nil, errUnimplemented
}
