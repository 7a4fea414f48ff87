package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository stores payment rows. Payments are append-only; there is no
// update or delete.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) error
	List(ctx context.Context, db *gorm.DB) ([]Payment, error)
	ListByInvoice(ctx context.Context, db *gorm.DB, invoiceID string) ([]Payment, error)
}
