package domain

import (
	"time"

	"github.com/smallbiznis/billfold/internal/finance"
	"github.com/smallbiznis/billfold/internal/numbering"
)

// DeriveStatus projects the lifecycle label from the raw payment and date
// fields. Precedence is paid, partial, overdue, sent, draft: a fully paid
// invoice past its due date reads paid, and a partially paid one reads
// partial even when overdue. That ordering is the business rule, not an
// accident.
func DeriveStatus(inv Invoice, now time.Time) Status {
	if inv.Total > 0 && inv.AmountPaid >= inv.Total {
		return StatusPaid
	}
	if inv.AmountPaid > 0 && inv.AmountPaid < inv.Total {
		return StatusPartial
	}
	if IsOverdue(inv.DueDate, now) {
		return StatusOverdue
	}
	if inv.SentAt != nil {
		return StatusSent
	}
	return StatusDraft
}

// MarkSent stamps the send time and channel and appends a sent event. There
// is no guard against re-sending; each call re-stamps SentAt.
func MarkSent(inv Invoice, channel SendChannel, now time.Time) Invoice {
	inv.SentAt = &now
	inv.LastSentVia = channel
	inv.StatusHistory = appendEvent(inv, StatusSent, now)
	inv.UpdatedAt = now
	return inv
}

// RecordPayment applies a payment amount to the invoice. Amounts at or below
// zero leave the input untouched. The paid figure is clamped to the total;
// anything beyond the open balance is discarded rather than tracked as
// credit. PaidAt is stamped the first time the balance closes.
func RecordPayment(inv Invoice, amount float64, now time.Time) Invoice {
	if amount <= 0 {
		return inv
	}

	newPaid := inv.AmountPaid + amount
	if newPaid > inv.Total {
		newPaid = inv.Total
	}
	inv.AmountPaid = newPaid
	inv.AmountDue = finance.AmountDue(inv.Total, newPaid)

	if newPaid >= inv.Total && inv.PaidAt == nil {
		inv.PaidAt = &now
	}
	inv.StatusHistory = appendEvent(inv, DeriveStatus(inv, now), now)
	inv.UpdatedAt = now
	return inv
}

// MarkViewed stamps the first view. Repeat calls are no-ops.
func MarkViewed(inv Invoice, now time.Time) Invoice {
	if inv.ViewedAt != nil {
		return inv
	}
	inv.ViewedAt = &now
	inv.UpdatedAt = now
	return inv
}

func appendEvent(inv Invoice, status Status, now time.Time) []StatusEvent {
	history := make([]StatusEvent, 0, len(inv.StatusHistory)+1)
	history = append(history, inv.StatusHistory...)
	return append(history, StatusEvent{
		ID:        numbering.UniqueID("evt"),
		InvoiceID: inv.ID,
		Status:    status,
		CreatedAt: now,
	})
}
