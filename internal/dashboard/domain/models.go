package domain

import "time"

// Stats aggregates the headline numbers for the home screen. Revenue counts
// paid invoices, outstanding counts sent and partial, overdue counts overdue.
type Stats struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalOutstanding float64 `json:"total_outstanding"`
	TotalOverdue     float64 `json:"total_overdue"`
	InvoiceCount     int     `json:"invoice_count"`
	PaidCount        int     `json:"paid_count"`
	PendingCount     int     `json:"pending_count"`
	OverdueCount     int     `json:"overdue_count"`
	ClientCount      int     `json:"client_count"`
}

// ActivityType labels a feed entry.
type ActivityType string

const (
	ActivityInvoiceCreated  ActivityType = "invoice_created"
	ActivityInvoiceSent     ActivityType = "invoice_sent"
	ActivityInvoicePaid     ActivityType = "invoice_paid"
	ActivityPaymentReceived ActivityType = "payment_received"
	ActivityClientAdded     ActivityType = "client_added"
)

// Activity is one entry in the recent-activity feed.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Amount      *float64     `json:"amount,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

// ActivityResponse is the feed result.
type ActivityResponse struct {
	Activity []Activity `json:"activity"`
}
