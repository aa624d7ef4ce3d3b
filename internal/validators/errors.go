package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPort       = errors.New("port must be a number between 0 and 65535")
	ErrInvalidDebugLevel = errors.New("debug level must be a number between 0 and 4")
	ErrInvalidSecureMode = errors.New("security method must be empty, ssl or tls")
	ErrInvalidHost       = errors.New("host must not contain whitespace")

	ErrInvalidRecipient = errors.New("recipient must be a valid email address")
	ErrEmptySubject     = errors.New("subject is required")
	ErrEmptyBody        = errors.New("message is required")

	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required")
)
