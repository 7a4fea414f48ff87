package domain

import "time"

// Transition moves an estimate to next, stamping UpdatedAt. The allowed
// moves are draft→sent, sent→accepted, sent→rejected, and any non-terminal
// state→expired (expiry is applied by the caller, never automatically).
func Transition(est Estimate, next Status, now time.Time) (Estimate, error) {
	if !canTransition(est.Status, next) {
		return est, ErrInvalidTransition
	}
	est.Status = next
	est.UpdatedAt = now
	return est, nil
}

func canTransition(from, to Status) bool {
	switch to {
	case StatusSent:
		return from == StatusDraft
	case StatusAccepted, StatusRejected:
		return from == StatusSent
	case StatusExpired:
		return from == StatusDraft || from == StatusSent
	default:
		return false
	}
}

// IsExpired reports whether the expiry date has passed. The core never
// applies this on its own; callers decide when to mark an estimate expired.
func IsExpired(est Estimate, now time.Time) bool {
	if est.ExpiryDate == nil {
		return false
	}
	return now.After(*est.ExpiryDate)
}
