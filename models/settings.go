// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Option keys of the stored settings record.
const (
	OptionHost       = "host"
	OptionPort       = "port"
	OptionAuth       = "auth"
	OptionUsername   = "username"
	OptionSecure     = "secure"
	OptionFromEmail  = "from_email"
	OptionFromName   = "from_name"
	OptionDebug      = "debug"
	OptionPassword   = "password"
	OptionPasswordIV = "password_iv"
)

// SettingsGroup is the name under which the settings record is stored.
const SettingsGroup = "simple_smtp_mailer_settings"

// SecureMode is the SMTP transport security method.
type SecureMode string

const (
	// SecureNone sends over plain SMTP (possibly upgraded opportunistically by the library).
	SecureNone SecureMode = ""
	// SecureSSL uses implicit TLS (SMTPS, usually port 465).
	SecureSSL SecureMode = "ssl"
	// SecureTLS requires STARTTLS (usually port 587).
	SecureTLS SecureMode = "tls"
)

// IsValid reports whether m is one of the supported security modes.
func (m SecureMode) IsValid() bool {
	switch m {
	case SecureNone, SecureSSL, SecureTLS:
		return true
	default:
		return false
	}
}

// MaxDebugLevel is the most verbose SMTP debug level.
const MaxDebugLevel = 4

// Settings is the typed view of the stored settings record.
//
// Password and PasswordIV hold the two base64 segments of the credential
// envelope, never a plaintext password.
type Settings struct {
	Host       string     `json:"host"`
	Port       uint       `json:"port"`
	Auth       bool       `json:"auth"`
	Username   string     `json:"username"`
	Secure     SecureMode `json:"secure"`
	FromEmail  string     `json:"from_email"`
	FromName   string     `json:"from_name"`
	Debug      int        `json:"debug"`
	Password   string     `json:"password,omitempty"`
	PasswordIV string     `json:"password_iv,omitempty"`

	// PasswordSet is filled only in views returned to the admin API.
	PasswordSet bool `json:"password_set"`
}

// SettingsFromOptions builds a Settings value from a raw settings record.
func SettingsFromOptions(o Options) Settings {
	port := o.Int(OptionPort)
	if port < 0 {
		port = 0
	}

	return Settings{
		Host:       o.String(OptionHost),
		Port:       uint(port),
		Auth:       o.Bool(OptionAuth),
		Username:   o.String(OptionUsername),
		Secure:     SecureMode(o.String(OptionSecure)),
		FromEmail:  o.String(OptionFromEmail),
		FromName:   o.String(OptionFromName),
		Debug:      o.Int(OptionDebug),
		Password:   o.String(OptionPassword),
		PasswordIV: o.String(OptionPasswordIV),
	}
}

// Options converts s back to the flat record persisted by a settings store.
func (s Settings) Options() Options {
	return Options{
		OptionHost:       s.Host,
		OptionPort:       strconv.FormatUint(uint64(s.Port), 10),
		OptionAuth:       FormatBool(s.Auth),
		OptionUsername:   s.Username,
		OptionSecure:     string(s.Secure),
		OptionFromEmail:  s.FromEmail,
		OptionFromName:   s.FromName,
		OptionDebug:      strconv.Itoa(s.Debug),
		OptionPassword:   s.Password,
		OptionPasswordIV: s.PasswordIV,
	}
}

// Envelope returns the stored credential envelope.
func (s Settings) Envelope() Envelope {
	return Envelope{Ciphertext: s.Password, IV: s.PasswordIV}
}

// Redacted returns a copy of s without the envelope segments, suitable for
// returning to an administrator.
func (s Settings) Redacted() Settings {
	s.PasswordSet = s.Password != ""
	s.Password = ""
	s.PasswordIV = ""
	return s
}

// SettingsInput is the raw form submitted by an administrator on save.
//
// Port and Debug are strings because the form posts text; they are parsed
// during sanitization. Auth is a pointer so an absent checkbox can be told
// apart from an unchecked one. Password is plaintext and is never stored as is.
type SettingsInput struct {
	Host      *string `json:"host,omitempty"`
	Port      *string `json:"port,omitempty"`
	Auth      *bool   `json:"auth,omitempty"`
	Username  *string `json:"username,omitempty"`
	Secure    *string `json:"secure,omitempty"`
	FromEmail *string `json:"from_email,omitempty"`
	FromName  *string `json:"from_name,omitempty"`
	Debug     *string `json:"debug,omitempty"`
	Password  *string `json:"password,omitempty"`
}

// SaveResult is returned by a settings save. Warnings are admin-facing
// notices that do not abort the save.
type SaveResult struct {
	Settings Settings `json:"settings"`
	Warnings []string `json:"warnings,omitempty"`
}
