package validate

import (
	"math"
	"testing"
)

func TestEmail(t *testing.T) {
	valid := []string{"a@b.co", "client.one@example.com", "x+tag@sub.example.org"}
	invalid := []string{"", "plain", "a@b", "a b@c.de", "@example.com"}

	for _, email := range valid {
		if !Email(email) {
			t.Errorf("Email(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if Email(email) {
			t.Errorf("Email(%q) = true, want false", email)
		}
	}
}

func TestPhone(t *testing.T) {
	valid := []string{"5551234", "+1 (555) 123-4567", "555123456789012"}
	invalid := []string{"", "123", "5551234567890123"}

	for _, phone := range valid {
		if !Phone(phone) {
			t.Errorf("Phone(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if Phone(phone) {
			t.Errorf("Phone(%q) = true, want false", phone)
		}
	}
}

func TestRequired(t *testing.T) {
	if Required("") || Required("   ") {
		t.Error("blank values must not pass Required")
	}
	if !Required("x") {
		t.Error("Required(\"x\") = false, want true")
	}
}

func TestAmount(t *testing.T) {
	for _, v := range []float64{0.01, 1, 99999.99} {
		if !Amount(v) {
			t.Errorf("Amount(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if Amount(v) {
			t.Errorf("Amount(%v) = true, want false", v)
		}
	}
}
