// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming account and note requests before they
// reach the services.
//
// Each validator reports the first failed rule as a sentinel error whose
// text is the message shown to API clients, so handlers can return it
// without translation. Validation can be scoped to a subset of fields by
// passing field names to Validate.
package validators

import "context"

// Validator checks one request type. Field names, when given, limit the
// check to those fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
