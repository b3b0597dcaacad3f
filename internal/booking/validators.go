package booking

import (
	"strings"
	"unicode"
)

func digitsOf(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// NormalizePhone canonicalizes Korean mobile numbers to +82 form and
// preserves explicit international prefixes as-is.
func NormalizePhone(phone string) string {
	cleaned := digitsOf(phone)

	// Domestic mobile: 010-XXXX-XXXX
	if strings.HasPrefix(cleaned, "010") && len(cleaned) == 11 {
		return "+82" + cleaned[1:]
	}
	if strings.HasPrefix(cleaned, "82") && len(cleaned) >= 11 {
		return "+" + cleaned
	}

	if strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "+" + cleaned
	}

	return cleaned
}

func IsValidPhone(phone string) bool {
	cleaned := digitsOf(phone)

	if len(cleaned) < 9 || len(cleaned) > 15 {
		return false
	}

	badNumbers := map[string]bool{
		"0000000000":  true,
		"1111111111":  true,
		"1234567890":  true,
		"9999999999":  true,
		"0123456789":  true,
		"01012345678": true,
	}
	if badNumbers[cleaned] {
		return false
	}

	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return false
	}
	if !strings.HasPrefix(trimmed, "+") && !unicode.IsDigit(rune(trimmed[0])) {
		return false
	}

	return true
}

// FormatPhone renders +82 numbers in the familiar 010-XXXX-XXXX form.
func FormatPhone(phone string) string {
	if strings.HasPrefix(phone, "+82") && len(phone) == 13 {
		return "0" + phone[3:5] + "-" + phone[5:9] + "-" + phone[9:13]
	}
	return phone
}
