package service

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-smtp-mailer/internal/validators"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// sanitizeText trims s, drops control characters and collapses runs of
// whitespace into one space.
func sanitizeText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// sanitizeEmail returns the trimmed address, or "" if it is not valid.
func sanitizeEmail(s string) string {
	s = strings.TrimSpace(s)
	if !validators.IsEmail(s) {
		return ""
	}
	return s
}

// absint parses the leading integer of s and returns its absolute value.
// Anything unparsable is 0.
func absint(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	if n == math.MinInt {
		return math.MaxInt
	}
	if n < 0 {
		return -n
	}
	return n
}

func sanitizeSecure(s string) models.SecureMode {
	mode := models.SecureMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return models.SecureNone
	}
	return mode
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
