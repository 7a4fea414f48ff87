package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository stores feed entries newest-first.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, n *Notification) error
	List(ctx context.Context, db *gorm.DB) ([]Notification, error)
	SetRead(ctx context.Context, db *gorm.DB, id string) (bool, error)
	SetAllRead(ctx context.Context, db *gorm.DB) error
}
