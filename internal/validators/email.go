package validators

import (
	"net/mail"
	"strings"
)

// IsEmail reports whether s is a single bare address such as
// "user@example.com". Display names and angle brackets are rejected.
func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "<> \t\r\n") {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
