// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks administrator input before services act on it.
//
// A Validator accepts any supported model and, optionally, a list of field
// names that restricts which rules run.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates a model, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
