package domain

import (
	"reflect"
	"testing"
	"time"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func ts(t time.Time) *time.Time { return &t }

func TestDeriveStatusPrecedence(t *testing.T) {
	pastDue := now.AddDate(0, 0, -10)
	futureDue := now.AddDate(0, 0, 10)
	sentAt := now.AddDate(0, 0, -20)

	cases := []struct {
		name string
		inv  Invoice
		want Status
	}{
		{
			name: "paid beats overdue",
			inv:  Invoice{Total: 100, AmountPaid: 100, DueDate: ts(pastDue), SentAt: ts(sentAt)},
			want: StatusPaid,
		},
		{
			name: "overpaid still reads paid",
			inv:  Invoice{Total: 100, AmountPaid: 150},
			want: StatusPaid,
		},
		{
			name: "partial beats overdue",
			inv:  Invoice{Total: 100, AmountPaid: 40, DueDate: ts(pastDue)},
			want: StatusPartial,
		},
		{
			name: "overdue beats sent",
			inv:  Invoice{Total: 100, DueDate: ts(pastDue), SentAt: ts(sentAt)},
			want: StatusOverdue,
		},
		{
			name: "sent when delivered and not due",
			inv:  Invoice{Total: 100, DueDate: ts(futureDue), SentAt: ts(sentAt)},
			want: StatusSent,
		},
		{
			name: "draft by default",
			inv:  Invoice{Total: 100, DueDate: ts(futureDue)},
			want: StatusDraft,
		},
		{
			name: "zero total never reads paid",
			inv:  Invoice{Total: 0, AmountPaid: 0, DueDate: ts(futureDue)},
			want: StatusDraft,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(tc.inv, now); got != tc.want {
				t.Fatalf("DeriveStatus = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMarkSent(t *testing.T) {
	inv := Invoice{ID: "inv-1", Total: 100}

	sent := MarkSent(inv, SendChannelEmail, now)
	if sent.SentAt == nil || !sent.SentAt.Equal(now) {
		t.Fatalf("SentAt = %v, want %v", sent.SentAt, now)
	}
	if sent.LastSentVia != SendChannelEmail {
		t.Fatalf("LastSentVia = %q, want email", sent.LastSentVia)
	}
	if len(sent.StatusHistory) != 1 || sent.StatusHistory[0].Status != StatusSent {
		t.Fatalf("expected single sent event, got %+v", sent.StatusHistory)
	}
	if !sent.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt = %v, want %v", sent.UpdatedAt, now)
	}

	// Re-sending re-stamps; there is no guard.
	later := now.Add(time.Hour)
	resent := MarkSent(sent, SendChannelLink, later)
	if !resent.SentAt.Equal(later) || resent.LastSentVia != SendChannelLink {
		t.Fatalf("re-send did not re-stamp: %+v", resent)
	}
	if len(resent.StatusHistory) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resent.StatusHistory))
	}
}

func TestRecordPaymentRejectsNonPositive(t *testing.T) {
	inv := Invoice{ID: "inv-1", Total: 100, AmountDue: 100}
	for _, amount := range []float64{0, -5} {
		got := RecordPayment(inv, amount, now)
		if !reflect.DeepEqual(got, inv) {
			t.Fatalf("RecordPayment(%v) changed the invoice: %+v", amount, got)
		}
	}
}

func TestRecordPaymentPartial(t *testing.T) {
	inv := Invoice{ID: "inv-1", Total: 100, AmountDue: 100}

	got := RecordPayment(inv, 40, now)
	if got.AmountPaid != 40 {
		t.Fatalf("AmountPaid = %v, want 40", got.AmountPaid)
	}
	if got.AmountDue != 60 {
		t.Fatalf("AmountDue = %v, want 60", got.AmountDue)
	}
	if got.PaidAt != nil {
		t.Fatalf("PaidAt set on partial payment")
	}
	if len(got.StatusHistory) != 1 || got.StatusHistory[0].Status != StatusPartial {
		t.Fatalf("expected partial event, got %+v", got.StatusHistory)
	}
}

func TestRecordPaymentClampsOverpayment(t *testing.T) {
	inv := Invoice{ID: "inv-1", Total: 100, AmountDue: 100}

	got := RecordPayment(inv, 250, now)
	if got.AmountPaid != 100 {
		t.Fatalf("AmountPaid = %v, want clamp to 100", got.AmountPaid)
	}
	if got.AmountDue != 0 {
		t.Fatalf("AmountDue = %v, want 0", got.AmountDue)
	}
	if got.PaidAt == nil || !got.PaidAt.Equal(now) {
		t.Fatalf("PaidAt = %v, want %v", got.PaidAt, now)
	}
	if DeriveStatus(got, now) != StatusPaid {
		t.Fatalf("status = %q, want paid", DeriveStatus(got, now))
	}
}

func TestRecordPaymentKeepsFirstPaidAt(t *testing.T) {
	inv := Invoice{ID: "inv-1", Total: 100, AmountDue: 100}
	paid := RecordPayment(inv, 100, now)

	later := now.Add(48 * time.Hour)
	again := RecordPayment(paid, 10, later)
	if !again.PaidAt.Equal(now) {
		t.Fatalf("PaidAt re-stamped to %v, want %v", again.PaidAt, now)
	}
	if again.AmountPaid != 100 {
		t.Fatalf("AmountPaid = %v, want 100", again.AmountPaid)
	}
}

func TestRecordPaymentRoundsAmountDue(t *testing.T) {
	inv := Invoice{ID: "inv-1", Total: 100.10}
	got := RecordPayment(inv, 33.333, now)
	if got.AmountDue != 66.77 {
		t.Fatalf("AmountDue = %v, want 66.77", got.AmountDue)
	}
}

func TestMarkViewedIdempotent(t *testing.T) {
	inv := Invoice{ID: "inv-1"}

	first := MarkViewed(inv, now)
	if first.ViewedAt == nil || !first.ViewedAt.Equal(now) {
		t.Fatalf("ViewedAt = %v, want %v", first.ViewedAt, now)
	}

	later := now.Add(time.Hour)
	second := MarkViewed(first, later)
	if !second.ViewedAt.Equal(now) {
		t.Fatalf("repeat MarkViewed re-stamped ViewedAt to %v", second.ViewedAt)
	}
	if !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Fatalf("repeat MarkViewed bumped UpdatedAt")
	}
}
