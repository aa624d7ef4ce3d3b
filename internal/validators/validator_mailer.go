// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-smtp-mailer/models"
)

// Field names accepted by [MailerValidator.Validate].
const (
	FieldHost     = "host"
	FieldPort     = "port"
	FieldSecure   = "secure"
	FieldDebug    = "debug"
	FieldTo       = "to"
	FieldSubject  = "subject"
	FieldMessage  = "message"
	FieldLogin    = "login"
	FieldPassword = "password"
)

const maxPort = 65535

// MailerValidator validates settings forms, test messages and admin
// credentials.
type MailerValidator struct{}

// NewMailerValidator returns a [Validator] for the mailer models.
func NewMailerValidator() Validator {
	return &MailerValidator{}
}

func (v *MailerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SettingsInput:
		return v.validateSettingsInput(ctx, value, fields...)
	case *models.SettingsInput:
		return v.validateSettingsInput(ctx, *value, fields...)

	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	case models.AdminCredentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.AdminCredentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// Absent fields are valid; sanitization fills their defaults.
func (v *MailerValidator) validateSettingsInput(_ context.Context, in models.SettingsInput, fields ...string) error {
	checks := map[string]func() error{
		FieldHost: func() error {
			if in.Host != nil && strings.ContainsAny(strings.TrimSpace(*in.Host), " \t\r\n") {
				return ErrInvalidHost
			}
			return nil
		},
		FieldPort: func() error {
			if in.Port == nil {
				return nil
			}
			return checkUint(*in.Port, maxPort, ErrInvalidPort)
		},
		FieldSecure: func() error {
			if in.Secure != nil && !models.SecureMode(strings.ToLower(strings.TrimSpace(*in.Secure))).IsValid() {
				return ErrInvalidSecureMode
			}
			return nil
		},
		FieldDebug: func() error {
			if in.Debug == nil {
				return nil
			}
			return checkUint(*in.Debug, models.MaxDebugLevel, ErrInvalidDebugLevel)
		},
	}

	return run(checks, []string{FieldHost, FieldPort, FieldSecure, FieldDebug}, fields)
}

func (v *MailerValidator) validateMessage(_ context.Context, m models.Message, fields ...string) error {
	checks := map[string]func() error{
		FieldTo: func() error {
			if !IsEmail(m.To) {
				return ErrInvalidRecipient
			}
			return nil
		},
		FieldSubject: func() error {
			if strings.TrimSpace(m.Subject) == "" {
				return ErrEmptySubject
			}
			return nil
		},
		FieldMessage: func() error {
			if strings.TrimSpace(m.Body) == "" {
				return ErrEmptyBody
			}
			return nil
		},
	}

	return run(checks, []string{FieldTo, FieldSubject, FieldMessage}, fields)
}

func (v *MailerValidator) validateCredentials(_ context.Context, c models.AdminCredentials, fields ...string) error {
	checks := map[string]func() error{
		FieldLogin: func() error {
			if strings.TrimSpace(c.Login) == "" {
				return ErrEmptyLogin
			}
			return nil
		},
		FieldPassword: func() error {
			if c.Password == "" {
				return ErrEmptyPassword
			}
			return nil
		},
	}

	return run(checks, []string{FieldLogin, FieldPassword}, fields)
}

// run executes the checks named by fields, or every check in order when
// fields is empty.
func run(checks map[string]func() error, order, fields []string) error {
	if len(fields) == 0 {
		fields = order
	}

	for _, f := range fields {
		check, ok := checks[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// checkUint accepts an empty string or a base-10 integer in [0, max].
func checkUint(s string, max int, errInvalid error) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > max {
		return errInvalid
	}
	return nil
}
