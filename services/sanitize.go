package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

// SanitizeString trims the input, strips angle brackets, and caps the length.
func SanitizeString(input string) string {
	s := strings.TrimSpace(input)
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	return truncate(s, 500)
}

func SanitizeEmail(email string) string {
	return truncate(strings.ToLower(strings.TrimSpace(email)), 255)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email) && len(email) <= 255
}

// IsValidName allows letters, spaces, hyphens, and apostrophes.
func IsValidName(name string) bool {
	return namePattern.MatchString(name) && len(name) >= 2 && len(name) <= 100
}

// truncate caps s at max bytes without splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
