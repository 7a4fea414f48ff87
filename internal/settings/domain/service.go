package domain

import (
	"context"
	"errors"
)

// UpdateProfileRequest patches the business profile. Nil fields are untouched.
type UpdateProfileRequest struct {
	BusinessName *string
	OwnerName    *string
	Email        *string
	Phone        *string
	Address      *string
	LogoURL      *string
	Currency     *string
	TaxRate      *float64
	AccentColor  *string
	FontFamily   *string
}

// Service reads and updates the business profile. Get creates the default
// profile on first use so callers never see a missing row.
type Service interface {
	Get(ctx context.Context) (BusinessProfile, error)
	Update(ctx context.Context, req UpdateProfileRequest) (BusinessProfile, error)
}

var (
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrInvalidCurrency = errors.New("invalid_currency")
	ErrInvalidTaxRate  = errors.New("invalid_tax_rate")
)
