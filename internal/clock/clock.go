package clock

import "time"

// Clock abstracts wall-clock time so status derivation and overdue checks
// stay deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Fixed is a clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }

// At returns a fixed clock pinned to t.
func At(t time.Time) Fixed { return Fixed{Instant: t} }
