package domain

import "time"

// Type labels what happened. The mobile shell groups and colors entries by it.
type Type string

const (
	TypeInvoicePaid      Type = "invoice_paid"
	TypeInvoiceViewed    Type = "invoice_viewed"
	TypeInvoiceOverdue   Type = "invoice_overdue"
	TypePaymentReceived  Type = "payment_received"
	TypeEstimateAccepted Type = "estimate_accepted"
	TypeEstimateRejected Type = "estimate_rejected"
	TypeReminder         Type = "reminder"
)

// Notification is one entry in the in-app feed. RelatedID points at the
// document that triggered it, when there is one.
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Type      Type      `json:"type" gorm:"type:text;not null"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Message   string    `json:"message" gorm:"type:text"`
	Read      bool      `json:"read" gorm:"not null;default:false"`
	RelatedID string    `json:"related_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
}

// TableName sets the database table name.
func (Notification) TableName() string { return "notifications" }
