package domain

import (
	"context"
	"errors"

	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
)

// RecordPaymentRequest is the input for recording money against an invoice.
type RecordPaymentRequest struct {
	InvoiceID string
	Amount    float64
	Method    Method
	Date      string
	Notes     string
}

// RecordPaymentResponse returns the stored payment and the invoice after the
// payment was applied.
type RecordPaymentResponse struct {
	Payment Payment                   `json:"payment"`
	Invoice invoicedomain.InvoiceView `json:"invoice"`
}

// ListPaymentResponse is the listing result.
type ListPaymentResponse struct {
	Payments []Payment `json:"payments"`
}

// Service records and lists payments. Payments are append-only.
type Service interface {
	Record(ctx context.Context, req RecordPaymentRequest) (RecordPaymentResponse, error)
	List(ctx context.Context) (ListPaymentResponse, error)
	ListByInvoice(ctx context.Context, invoiceID string) (ListPaymentResponse, error)
}

var (
	ErrInvalidInvoiceID = errors.New("invalid_invoice_id")
	ErrInvalidAmount    = errors.New("invalid_amount")
	ErrInvalidMethod    = errors.New("invalid_method")
	ErrInvalidDate      = errors.New("invalid_date")
)
