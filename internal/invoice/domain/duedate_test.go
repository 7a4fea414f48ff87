package domain

import (
	"testing"
	"time"
)

func TestDueDate(t *testing.T) {
	issue := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	if got := DueDate(issue, nil); got != nil {
		t.Fatalf("DueDate(nil term) = %v, want nil", got)
	}
	if got := DueDate(issue, &NetTerm{NumberOfDays: 0, Description: "Due on Receipt"}); got != nil {
		t.Fatalf("DueDate(0 days) = %v, want nil", got)
	}

	got := DueDate(issue, &NetTerm{NumberOfDays: 30, Description: "NET 30"})
	want := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("DueDate(30 days) = %v, want %v", got, want)
	}
}

func TestIsOverdue(t *testing.T) {
	if IsOverdue(nil, now) {
		t.Fatal("nil due date must never be overdue")
	}
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)
	if !IsOverdue(&past, now) {
		t.Fatal("past due date must be overdue")
	}
	if IsOverdue(&future, now) {
		t.Fatal("future due date must not be overdue")
	}
	// Strictly before: the exact instant is not overdue.
	exact := now
	if IsOverdue(&exact, now) {
		t.Fatal("due exactly now must not be overdue")
	}
}

func TestRemainingDays(t *testing.T) {
	if _, ok := RemainingDays(nil, now); ok {
		t.Fatal("expected ok=false without a due date")
	}

	in5 := now.AddDate(0, 0, 5)
	if days, ok := RemainingDays(&in5, now); !ok || days != 5 {
		t.Fatalf("RemainingDays = %d,%v, want 5,true", days, ok)
	}

	ago3 := now.AddDate(0, 0, -3)
	if days, ok := RemainingDays(&ago3, now); !ok || days != -3 {
		t.Fatalf("RemainingDays = %d,%v, want -3,true", days, ok)
	}
}

func TestFormatNetTerm(t *testing.T) {
	if got := FormatNetTerm(nil, nil); got != "No Due Date" {
		t.Fatalf("FormatNetTerm(nil,nil) = %q", got)
	}

	due := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	term := &NetTerm{NumberOfDays: 30, Description: "NET 30"}
	if got := FormatNetTerm(term, &due); got != "NET 30 (Due Mar 12, 2026)" {
		t.Fatalf("FormatNetTerm = %q", got)
	}
}
