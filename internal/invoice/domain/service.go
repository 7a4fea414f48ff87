package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/billfold/internal/finance"
	"gorm.io/gorm"
)

// CreateInvoiceRequest carries the form input for a new invoice. Line amounts,
// subtotal, tax and total are computed by the service, not trusted from input.
type CreateInvoiceRequest struct {
	ClientID    string
	ClientName  string
	ClientEmail string
	IssueDate   string
	NetTerm     *NetTerm
	LineItems   []LineItemInput
	TaxRate     float64
	Discount    float64
	Notes       string
	Terms       string
	Currency    string
}

// LineItemInput is one raw line from the form.
type LineItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// UpdateInvoiceRequest patches an existing invoice. Nil fields are untouched.
type UpdateInvoiceRequest struct {
	ClientName  *string
	ClientEmail *string
	LineItems   []LineItemInput
	TaxRate     *float64
	Discount    *float64
	Notes       *string
	Terms       *string
}

// InvoiceView pairs a stored invoice with its derived status for responses.
type InvoiceView struct {
	Invoice
	Status Status `json:"status"`
}

// ListInvoiceResponse is the listing result.
type ListInvoiceResponse struct {
	Invoices []InvoiceView `json:"invoices"`
}

// Service is the invoice application surface.
type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceView, error)
	GetByID(ctx context.Context, id string) (InvoiceView, error)
	List(ctx context.Context, filter Filter) (ListInvoiceResponse, error)
	Update(ctx context.Context, id string, req UpdateInvoiceRequest) (InvoiceView, error)
	Delete(ctx context.Context, id string) error
	Send(ctx context.Context, id string, channel SendChannel) (InvoiceView, error)
	// ApplyPayment runs against the given handle so the caller can share one
	// transaction between the invoice and the payment row.
	ApplyPayment(ctx context.Context, db *gorm.DB, id string, amount float64) (InvoiceView, error)
	MarkViewed(ctx context.Context, id string) (InvoiceView, error)
}

var (
	ErrInvalidInvoiceID = errors.New("invalid_invoice_id")
	ErrInvoiceNotFound  = errors.New("invoice_not_found")
	ErrInvalidClient    = errors.New("invalid_client")
	ErrInvalidIssueDate = errors.New("invalid_issue_date")
	ErrInvalidLineItem  = errors.New("invalid_line_item")
	ErrInvalidChannel   = errors.New("invalid_channel")
)

// BuildLineItems computes amounts for raw form lines, minting line IDs with
// the supplied generator.
func BuildLineItems(inputs []LineItemInput, newID func() string) []finance.LineItem {
	items := make([]finance.LineItem, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, finance.NewLineItem(newID(), input.Description, input.Quantity, input.UnitPrice))
	}
	return items
}
