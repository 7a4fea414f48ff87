package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository stores the single business profile row.
type Repository interface {
	Find(ctx context.Context, db *gorm.DB) (*BusinessProfile, error)
	Insert(ctx context.Context, db *gorm.DB, profile *BusinessProfile) error
	Replace(ctx context.Context, db *gorm.DB, profile *BusinessProfile) error
}
