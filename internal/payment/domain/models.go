package domain

import "time"

// Method is how a payment was made.
type Method string

const (
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank_transfer"
	MethodCard         Method = "card"
	MethodOther        Method = "other"
)

// Payment is an immutable record of money received against an invoice. It is
// created once and never updated or deleted; the invoice's AmountPaid is the
// derived side of the same fact.
type Payment struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	InvoiceID     string    `json:"invoice_id" gorm:"index;not null"`
	InvoiceNumber string    `json:"invoice_number"`
	ClientName    string    `json:"client_name"`
	Amount        float64   `json:"amount" gorm:"not null"`
	Method        Method    `json:"method" gorm:"type:text;not null"`
	Date          time.Time `json:"date" gorm:"not null"`
	Notes         string    `json:"notes,omitempty"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }
