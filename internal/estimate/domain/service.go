package domain

import (
	"context"
	"errors"

	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
)

// CreateEstimateRequest carries the form input for a new estimate.
type CreateEstimateRequest struct {
	ClientID    string
	ClientName  string
	ClientEmail string
	IssueDate   string
	ExpiryDate  string
	LineItems   []invoicedomain.LineItemInput
	TaxRate     float64
	Discount    float64
	Notes       string
	Terms       string
	Currency    string
}

// UpdateEstimateRequest carries partial edits. Nil fields keep the stored
// value; a nil LineItems keeps the stored items, an empty ExpiryDate clears
// the expiry.
type UpdateEstimateRequest struct {
	ClientName  *string
	ClientEmail *string
	ExpiryDate  *string
	LineItems   []invoicedomain.LineItemInput
	TaxRate     *float64
	Discount    *float64
	Notes       *string
	Terms       *string
}

// ListEstimateResponse is the listing result.
type ListEstimateResponse struct {
	Estimates []Estimate `json:"estimates"`
}

// Service is the estimate application surface.
type Service interface {
	Create(ctx context.Context, req CreateEstimateRequest) (Estimate, error)
	GetByID(ctx context.Context, id string) (Estimate, error)
	List(ctx context.Context, filter Filter) (ListEstimateResponse, error)
	Update(ctx context.Context, id string, req UpdateEstimateRequest) (Estimate, error)
	Delete(ctx context.Context, id string) error
	Send(ctx context.Context, id string) (Estimate, error)
	Accept(ctx context.Context, id string) (Estimate, error)
	Reject(ctx context.Context, id string) (Estimate, error)
	MarkExpired(ctx context.Context, id string) (Estimate, error)
}

var (
	ErrInvalidEstimateID = errors.New("invalid_estimate_id")
	ErrEstimateNotFound  = errors.New("estimate_not_found")
	ErrInvalidClient     = errors.New("invalid_client")
	ErrInvalidIssueDate  = errors.New("invalid_issue_date")
	ErrInvalidExpiryDate = errors.New("invalid_expiry_date")
	ErrInvalidLineItem   = errors.New("invalid_line_item")
	ErrInvalidTransition = errors.New("invalid_transition")
)
