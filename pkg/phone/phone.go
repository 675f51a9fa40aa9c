// Package phone normalizes phone numbers to E.164 before they are
// stored or compared. "+1 (234) 567-8900" and "+12345678900" are the
// same number as far as routing is concerned.
package phone

import (
	"fmt"
	"strings"
)

// E.164: leading +, country code, at most 15 digits total.
const (
	minDigits = 7
	maxDigits = 15
)

// Normalize strips formatting characters (spaces, dashes, dots,
// parentheses) and returns the number as "+<digits>". It fails if the
// result is not a plausible E.164 number: the input must carry a
// leading + and contain only digits after stripping.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("phone number is empty")
	}
	if !strings.HasPrefix(s, "+") {
		return "", fmt.Errorf("phone number %q must start with + (E.164)", raw)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// formatting noise
		default:
			return "", fmt.Errorf("phone number %q contains invalid character %q", raw, r)
		}
	}

	digits := b.String()
	if len(digits) < minDigits || len(digits) > maxDigits {
		return "", fmt.Errorf("phone number %q has %d digits, expected %d-%d", raw, len(digits), minDigits, maxDigits)
	}
	if digits[0] == '0' {
		return "", fmt.Errorf("phone number %q has a leading zero country code", raw)
	}

	return "+" + digits, nil
}

// IsNormalized reports whether s is already in normalized E.164 form.
func IsNormalized(s string) bool {
	norm, err := Normalize(s)
	return err == nil && norm == s
}
