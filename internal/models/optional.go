package models

import "strings"

// Optional normalises an optional text value: nil, empty and whitespace-only
// values become nil. Anything else is returned as a fresh pointer to the
// trimmed text.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// String returns a pointer to s. Handy for optional fields in literals.
func String(s string) *string {
	return &s
}
