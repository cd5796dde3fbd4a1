package domain

import "strings"

// IsPlaceholder reports whether a client-supplied value means "not provided":
// blank, or the literal text "null" or "undefined".
func IsPlaceholder(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "null", "undefined":
		return true
	}
	return false
}

// OptionalParam returns nil for placeholder values and a pointer to s otherwise.
func OptionalParam(s string) *string {
	if IsPlaceholder(s) {
		return nil
	}
	return &s
}

// ParseTextBool decodes the literal strings "true" and "false".
// Any other value, including differently cased ones, is rejected.
func ParseTextBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// ParseActiveFilter decodes an open/closed filter: "true" and "false" select
// the state, anything else means no filter.
func ParseActiveFilter(s string) *bool {
	v, ok := ParseTextBool(s)
	if !ok {
		return nil
	}
	return &v
}
