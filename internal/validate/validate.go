// Package validate holds the form-level checks the HTTP layer runs before
// handing input to the services.
package validate

import (
	"math"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether the address looks deliverable.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// Phone accepts 7 to 15 digits after stripping formatting characters.
func Phone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

// Required reports whether the value is non-blank.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Amount accepts strictly positive finite numbers.
func Amount(value float64) bool {
	return value > 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}
