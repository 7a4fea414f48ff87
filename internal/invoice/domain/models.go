package domain

import (
	"time"

	"github.com/smallbiznis/billfold/internal/finance"
	"gorm.io/datatypes"
)

// Status is the derived lifecycle label of an invoice. It is never persisted;
// DeriveStatus projects it from the raw payment and date fields on demand.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// SendChannel is how an invoice was delivered to the client.
type SendChannel string

const (
	SendChannelEmail SendChannel = "email"
	SendChannelLink  SendChannel = "link"
	SendChannelPDF   SendChannel = "pdf"
)

// StatusEvent is one append-only entry in an invoice's status history.
type StatusEvent struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NetTerm captures payment terms such as NET 30.
type NetTerm struct {
	NumberOfDays int    `json:"number_of_days"`
	Description  string `json:"description"`
}

// Invoice is the full document. Line items and status history live inside the
// row as JSON; the document is stored and replaced whole.
type Invoice struct {
	ID            string             `json:"id" gorm:"primaryKey"`
	Number        string             `json:"number" gorm:"uniqueIndex;not null"`
	ClientID      string             `json:"client_id" gorm:"index"`
	ClientName    string             `json:"client_name"`
	ClientEmail   string             `json:"client_email"`
	IssueDate     time.Time          `json:"issue_date"`
	DueDate       *time.Time         `json:"due_date"`
	LineItems     []finance.LineItem `json:"line_items" gorm:"serializer:json"`
	Subtotal      float64            `json:"subtotal"`
	TaxAmount     float64            `json:"tax_amount"`
	Discount      float64            `json:"discount"`
	Total         float64            `json:"total"`
	AmountPaid    float64            `json:"amount_paid"`
	AmountDue     float64            `json:"amount_due"`
	Notes         string             `json:"notes,omitempty"`
	Terms         string             `json:"terms,omitempty"`
	Currency      string             `json:"currency"`
	SentAt        *time.Time         `json:"sent_at,omitempty"`
	LastSentVia   SendChannel        `json:"last_sent_via,omitempty"`
	PaidAt        *time.Time         `json:"paid_at,omitempty"`
	ViewedAt      *time.Time         `json:"viewed_at,omitempty"`
	StatusHistory []StatusEvent      `json:"status_history,omitempty" gorm:"serializer:json"`
	Metadata      datatypes.JSONMap  `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time          `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time          `json:"updated_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// Filter narrows invoice listings.
type Filter struct {
	Status   Status
	ClientID string
	DateFrom *time.Time
	DateTo   *time.Time
}
