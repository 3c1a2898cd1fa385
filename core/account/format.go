package account

import "regexp"

var nonDigitRegex = regexp.MustCompile(`\D`)

// FormatDOB reformats a raw keystroke buffer into DD-MM-YYYY as the user
// types: non-digits are stripped, digits are capped at 8 (DDMMYYYY) and
// dashes re-inserted positionally. Idempotent on its own output.
func FormatDOB(raw string) string {
	digits := nonDigitRegex.ReplaceAllString(raw, "")
	if len(digits) > 8 {
		digits = digits[:8]
	}
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 4:
		return digits[:2] + "-" + digits[2:]
	default:
		return digits[:2] + "-" + digits[2:4] + "-" + digits[4:]
	}
}

// FormatPhone strips non-digits and caps the number at 10 digits.
// Idempotent on its own output.
func FormatPhone(raw string) string {
	digits := nonDigitRegex.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return digits
}
