package domain

import (
	"time"

	"github.com/smallbiznis/billfold/internal/finance"
	"gorm.io/datatypes"
)

// Status is the explicit lifecycle field of an estimate. Unlike invoices it
// is stored, not derived: transitions happen only through user action.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Estimate is the quote document offered to a client before invoicing.
type Estimate struct {
	ID          string             `json:"id" gorm:"primaryKey"`
	Number      string             `json:"number" gorm:"uniqueIndex;not null"`
	Status      Status             `json:"status" gorm:"type:text;not null"`
	ClientID    string             `json:"client_id" gorm:"index"`
	ClientName  string             `json:"client_name"`
	ClientEmail string             `json:"client_email"`
	IssueDate   time.Time          `json:"issue_date"`
	ExpiryDate  *time.Time         `json:"expiry_date"`
	LineItems   []finance.LineItem `json:"line_items" gorm:"serializer:json"`
	Subtotal    float64            `json:"subtotal"`
	TaxAmount   float64            `json:"tax_amount"`
	Discount    float64            `json:"discount"`
	Total       float64            `json:"total"`
	Notes       string             `json:"notes,omitempty"`
	Terms       string             `json:"terms,omitempty"`
	Currency    string             `json:"currency"`
	Metadata    datatypes.JSONMap  `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time          `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time          `json:"updated_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Estimate) TableName() string { return "estimates" }

// Filter narrows estimate listings.
type Filter struct {
	Status Status
	Search string
}
