// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the messages the admin API writes into response bodies.
// The CLI matches on the same constants, so the wording lives in one place.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInvalidLoginPassword = "invalid login/password"

	// MsgAdminNotConfigured is returned by login when no administrator
	// password hash is configured on the server.
	MsgAdminNotConfigured = "administrator login is not configured"

	MsgInternalServerError = "internal server error"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	MsgSettingsUnavailable = "settings are unavailable"

	// MsgEmailSent and MsgEmailFailed mirror the notices of the test email
	// page.
	MsgEmailSent   = "Email sent successfully (via SMTP if configured)."
	MsgEmailFailed = "Failed to send email. Check your SMTP settings and server logs."

	// MsgPasswordNotSaved is the warning attached to a save whose password
	// could not be protected.
	MsgPasswordNotSaved = "Error encrypting the password. The password was not saved."

	// MsgSecretsMissing and MsgCryptoUnavailable are the settings page
	// notices about credential protection.
	MsgSecretsMissing    = "Not all platform secrets are defined. The SMTP password cannot be protected until they are set."
	MsgCryptoUnavailable = "The encryption backend is not available. The SMTP password cannot be stored securely."
)
