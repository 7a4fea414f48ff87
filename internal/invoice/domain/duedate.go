package domain

import (
	"fmt"
	"time"
)

// DueDate resolves the due date from the issue date and net term. A nil or
// zero-day term means the invoice has no due date.
func DueDate(issueDate time.Time, term *NetTerm) *time.Time {
	if term == nil || term.NumberOfDays == 0 {
		return nil
	}
	due := issueDate.AddDate(0, 0, term.NumberOfDays)
	return &due
}

// IsOverdue reports whether the due date lies strictly before now. A missing
// due date is never overdue.
func IsOverdue(dueDate *time.Time, now time.Time) bool {
	if dueDate == nil {
		return false
	}
	return now.After(*dueDate)
}

// RemainingDays counts whole days until the due date, negative when overdue.
// Returns ok=false when there is no due date.
func RemainingDays(dueDate *time.Time, now time.Time) (int, bool) {
	if dueDate == nil {
		return 0, false
	}
	due := startOfDay(*dueDate)
	today := startOfDay(now)
	return int(due.Sub(today).Hours() / 24), true
}

// FormatNetTerm renders a term for display, e.g. "NET 30 (Due Mar 12, 2026)".
func FormatNetTerm(term *NetTerm, dueDate *time.Time) string {
	if term == nil || dueDate == nil {
		return "No Due Date"
	}
	return fmt.Sprintf("%s (Due %s)", term.Description, dueDate.Format("Jan 2, 2006"))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
