package domain

import "context"

// Service computes dashboard aggregates over the local stores.
type Service interface {
	Stats(ctx context.Context) (Stats, error)
	RecentActivity(ctx context.Context, limit int) (ActivityResponse, error)
}
