package mysql

import (
	"context"

	clientDomain "intellidebt-backend/internal/domain/client"

	"gorm.io/gorm"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) Save(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) GetByClientID(ctx context.Context, clientID string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	return &out, res.Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint64) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ClientRepository) ListByIDs(ctx context.Context, ids []uint64) ([]clientDomain.Client, error) {
	var out []clientDomain.Client
	if len(ids) == 0 {
		return out, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out)
	return out, res.Error
}

func (r *ClientRepository) List(ctx context.Context, limit int) ([]clientDomain.Client, error) {
	var out []clientDomain.Client
	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	res := q.Find(&out)
	return out, res.Error
}
