package numbering

import (
	"fmt"
	"regexp"
	"testing"
)

func TestNextEmpty(t *testing.T) {
	got := Next("INV", nil, 2026)
	if got != "INV-2026-0001" {
		t.Fatalf("Next = %q, want INV-2026-0001", got)
	}
}

func TestNextSequential(t *testing.T) {
	existing := []string{"INV-2026-0001", "INV-2026-0002"}
	if got := Next("INV", existing, 2026); got != "INV-2026-0003" {
		t.Fatalf("Next = %q, want INV-2026-0003", got)
	}
}

func TestNextSkipsDeletedGap(t *testing.T) {
	// 0002 was deleted. The next number must be 0004, never a reused 0003.
	existing := []string{"INV-2026-0001", "INV-2026-0003"}
	if got := Next("INV", existing, 2026); got != "INV-2026-0004" {
		t.Fatalf("Next = %q, want INV-2026-0004", got)
	}
}

func TestNextIgnoresOtherYears(t *testing.T) {
	existing := []string{"INV-2025-0099"}
	if got := Next("INV", existing, 2026); got != "INV-2026-0001" {
		t.Fatalf("Next = %q, want INV-2026-0001", got)
	}
}

func TestNextIgnoresOtherPrefixes(t *testing.T) {
	existing := []string{"EST-2026-0007", "INV-2026-0002"}
	if got := Next("INV", existing, 2026); got != "INV-2026-0003" {
		t.Fatalf("Next = %q, want INV-2026-0003", got)
	}
}

func TestNextIgnoresMalformedNumbers(t *testing.T) {
	existing := []string{"", "INV-2026", "INV-2026-12", "garbage", "INV-2026-0005"}
	if got := Next("INV", existing, 2026); got != "INV-2026-0006" {
		t.Fatalf("Next = %q, want INV-2026-0006", got)
	}
}

func TestNextWidensPastFourDigits(t *testing.T) {
	if got := Next("EST", []string{"EST-2026-9999"}, 2026); got != "EST-2026-10000" {
		t.Fatalf("Next = %q, want EST-2026-10000", got)
	}
}

var uniqueIDPattern = regexp.MustCompile(`^inv-\d+-[a-z0-9]{5}$`)

func TestUniqueIDFormat(t *testing.T) {
	id := UniqueID("inv")
	if !uniqueIDPattern.MatchString(id) {
		t.Fatalf("UniqueID(%q) = %q does not match %v", "inv", id, uniqueIDPattern)
	}
}

func TestUniqueIDPrefixes(t *testing.T) {
	for _, prefix := range []string{"inv", "est", "pay"} {
		id := UniqueID(prefix)
		want := prefix + "-"
		if len(id) < len(want) || id[:len(want)] != want {
			t.Fatalf("UniqueID(%q) = %q, want prefix %q", prefix, id, want)
		}
	}
}

func TestUniqueIDDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := UniqueID("pay")
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestNextFormatsWithZeroPadding(t *testing.T) {
	for seq, want := range map[int]string{
		1:  "INV-2026-0002",
		41: "INV-2026-0042",
	} {
		existing := []string{fmt.Sprintf("INV-2026-%04d", seq)}
		if got := Next("INV", existing, 2026); got != want {
			t.Fatalf("Next after %04d = %q, want %q", seq, got, want)
		}
	}
}
