// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the user creation form before anything reaches
// the data API.
//
// [UserFormValidator] reports every failing field at once as a
// [*ValidationError], each entry naming the form field, a short problem
// ("required", "invalid email", "too short", ...) and a message for display.
// Callers may restrict a run to some fields by name.
package validators

import "context"

// Validator checks obj and returns a [*ValidationError] when it is invalid.
// When fields are given only those form fields are reported.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
