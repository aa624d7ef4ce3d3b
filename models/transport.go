// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TransportMode selects how outgoing mail leaves the host.
type TransportMode string

const (
	// TransportLocal hands mail to the host's local, unauthenticated transport
	// (a sendmail-compatible binary).
	TransportLocal TransportMode = "local"
	// TransportSMTP relays mail through the configured SMTP server.
	TransportSMTP TransportMode = "smtp"
)

// DefaultCharset is the message charset used for SMTP delivery.
const DefaultCharset = "UTF-8"

// TransportConfig is the result of configuring the mail transport for one
// send. For TransportLocal every connection field is zero.
type TransportConfig struct {
	Mode TransportMode

	Host     string
	Port     uint
	Auth     bool
	Username string
	Password string
	Secure   SecureMode

	From     string
	FromName string

	// Debug is the SMTP conversation debug level, 0 disables it.
	Debug   int
	Charset string

	// DebugSink receives the SMTP conversation when Debug > 0.
	DebugSink DebugSink `json:"-"`
}

// DebugSink receives SMTP conversation lines while debugging is enabled.
type DebugSink interface {
	Debug(level int, message string)
}

// DebugSinkFunc adapts a function to [DebugSink].
type DebugSinkFunc func(level int, message string)

func (f DebugSinkFunc) Debug(level int, message string) {
	f(level, message)
}

// IsSMTP reports whether the configuration relays through SMTP.
func (c TransportConfig) IsSMTP() bool {
	return c.Mode == TransportSMTP
}

// LocalTransport returns the fail-safe configuration: local delivery with
// every SMTP parameter cleared.
func LocalTransport() TransportConfig {
	return TransportConfig{Mode: TransportLocal}
}
