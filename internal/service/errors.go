package service

import (
	"errors"

	"github.com/MKhiriev/go-smtp-mailer/internal/app"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")
	ErrAdminNotConfigured  = errors.New("administrator password hash is not configured")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrIncompleteConfiguration is logged when SMTP settings are present but
	// unusable. Sends fall back to local delivery and never return it.
	ErrIncompleteConfiguration = errors.New("incomplete SMTP configuration")

	ErrReadingSettings = errors.New("error reading settings")
	ErrSavingSettings  = errors.New("error saving settings")
	ErrSendingMail     = errors.New("error sending mail")
)

// WarnPasswordNotSaved is shown to the administrator when the new password
// could not be protected. The previous password is kept.
const WarnPasswordNotSaved = app.MsgPasswordNotSaved
