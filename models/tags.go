// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is an ordered list of note labels.
//
// In the database it is stored as a JSON array (JSONB on PostgreSQL,
// TEXT on SQLite). In API responses a nil Tags is rendered as [] rather
// than null.
type Tags []string

// Value implements [driver.Valuer] and encodes the tags as a JSON array string.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}

	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("error encoding tags: %w", err)
	}

	return string(data), nil
}

// Scan implements [sql.Scanner]. It accepts the JSON array either as
// []byte or string; a NULL column yields empty tags.
func (t *Tags) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return fmt.Errorf("error decoding tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}

	*t = tags
	return nil
}

// MarshalJSON renders nil tags as an empty JSON array.
func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(t))
}
