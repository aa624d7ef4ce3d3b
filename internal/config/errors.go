package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid CLI adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or a missing
	// settings file when no DSN is configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token, integrity or admin settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMailConfigs indicates missing delivery parameters.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)
