package domain

import (
	"context"
	"errors"
)

// CreateExpenseRequest is the input for a new expense.
type CreateExpenseRequest struct {
	Category   Category
	Vendor     string
	Amount     float64
	Currency   string
	Date       string
	Notes      string
	HasReceipt bool
}

// ListExpenseResponse is the listing result.
type ListExpenseResponse struct {
	Expenses []Expense `json:"expenses"`
	Total    float64   `json:"total"`
}

// Service is the expense application surface.
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	List(ctx context.Context, category Category) (ListExpenseResponse, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidExpenseID = errors.New("invalid_expense_id")
	ErrExpenseNotFound  = errors.New("expense_not_found")
	ErrInvalidCategory  = errors.New("invalid_category")
	ErrInvalidAmount    = errors.New("invalid_amount")
	ErrInvalidDate      = errors.New("invalid_date")
)
