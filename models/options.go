package models

import (
	"strconv"
	"strings"
)

// Options is the flat key -> scalar mapping persisted by a settings store.
// Every value is kept in its string form; typed accessors convert on read.
type Options map[string]string

// String returns the raw value stored under key, or "" when absent.
func (o Options) String(key string) string {
	return o[key]
}

// Has reports whether key is present, even with an empty value.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Int returns the value under key parsed as a base-10 integer.
// Absent or unparsable values yield 0.
func (o Options) Int(key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(o[key]))
	if err != nil {
		return 0
	}
	return v
}

// Bool returns the value under key interpreted as a boolean flag.
// "1", "true", "on" and "yes" (case-insensitive) are true, anything else is false.
func (o Options) Bool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(o[key])) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// Clone returns an independent copy of o.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// FormatBool renders a flag the way it is persisted.
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
