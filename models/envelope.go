package models

import "strings"

// EnvelopeSeparator joins the ciphertext and IV segments of an envelope.
const EnvelopeSeparator = "::"

// Envelope is a protected credential: base64 ciphertext and base64 IV.
type Envelope struct {
	Ciphertext string
	IV         string
}

// String renders the envelope in its wire form "ciphertext::iv".
func (e Envelope) String() string {
	return e.Ciphertext + EnvelopeSeparator + e.IV
}

// IsEmpty reports whether no ciphertext is stored.
func (e Envelope) IsEmpty() bool {
	return e.Ciphertext == ""
}

// SplitEnvelope splits the wire form into its segments. ok is false unless
// there are exactly two segments.
func SplitEnvelope(s string) (Envelope, bool) {
	parts := strings.Split(s, EnvelopeSeparator)
	if len(parts) != 2 {
		return Envelope{}, false
	}
	return Envelope{Ciphertext: parts[0], IV: parts[1]}, true
}
