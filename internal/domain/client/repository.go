package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByClientID(ctx context.Context, clientID string) (*Client, error)
	// GetByID resolves the internal numeric FK carried on loans.
	GetByID(ctx context.Context, id uint64) (*Client, error)
	ListByIDs(ctx context.Context, ids []uint64) ([]Client, error)
	Save(ctx context.Context, c *Client) error
	List(ctx context.Context, limit int) ([]Client, error)
}
