package phone

import (
	"strings"

	"phonelogin/internal/domain"
)

// Digits is the length of a complete phone number.
const Digits = 10

// Clean removes every character that is not an ASCII digit.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether s is exactly ten ASCII digits. It does not strip
// separators; call Clean first for user input.
func Valid(s string) bool {
	if len(s) != Digits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Format renders s progressively as "(XXX) XXX-XXXX" based on how many digits
// it contains. Non-digits are dropped first and digits past the tenth are
// ignored, so Format(Format(s)) == Format(s).
func Format(s string) string {
	d := Clean(s)
	if len(d) > Digits {
		d = d[:Digits]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}

// Canonical strips raw, gates it through Valid and returns the fully
// punctuated form.
func Canonical(raw string) (domain.PhoneNumber, error) {
	d := Clean(raw)
	if !Valid(d) {
		return "", domain.NewValidationError(raw)
	}
	return domain.PhoneNumber(Format(d)), nil
}
