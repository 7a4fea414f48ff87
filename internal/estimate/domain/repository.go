package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository stores whole estimate documents.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, est *Estimate) error
	Replace(ctx context.Context, db *gorm.DB, est *Estimate) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Estimate, error)
	List(ctx context.Context, db *gorm.DB, filter Filter) ([]Estimate, error)
	ListNumbers(ctx context.Context, db *gorm.DB) ([]string, error)
}
