package render

import "time"

// RenderInput is the deterministic input used for invoice rendering.
type RenderInput struct {
	Brand    BrandView
	Invoice  InvoiceView
	Customer CustomerView
	Items    []LineItemView
}

// BrandView carries the business identity printed at the top of the document.
type BrandView struct {
	BusinessName string
	OwnerName    string
	Email        string
	Phone        string
	Address      string
	LogoURL      string
	AccentColor  string
	FontFamily   string
}

type InvoiceView struct {
	Number     string
	Status     string
	IssueDate  time.Time
	DueDate    *time.Time
	Subtotal   float64
	TaxAmount  float64
	Discount   float64
	Total      float64
	AmountPaid float64
	AmountDue  float64
	Currency   string
	Notes      string
	Terms      string
}

type CustomerView struct {
	Name  string
	Email string
}

type LineItemView struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}
