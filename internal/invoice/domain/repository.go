package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository stores whole invoice documents. Mutations replace the row; the
// service owns all field-level logic.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, inv *Invoice) error
	Replace(ctx context.Context, db *gorm.DB, inv *Invoice) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, filter Filter) ([]Invoice, error)
	ListNumbers(ctx context.Context, db *gorm.DB) ([]string, error)
}
