// Package normalize provides helper functions for consistent string normalization
// across the application. Use these helpers instead of scattered strings.ToLower
// and strings.TrimSpace calls to ensure consistent behavior.
package normalize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// strict strips all HTML from user-supplied text. Profile fields are
	// plain text; anything tag-shaped in them is never legitimate.
	strict     *bluemonday.Policy
	strictOnce sync.Once
)

func strictPolicy() *bluemonday.Policy {
	strictOnce.Do(func() {
		strict = bluemonday.StrictPolicy()
	})
	return strict
}

// Email normalizes an email address by trimming whitespace and converting to lowercase.
// This is the canonical way to normalize emails before storage or comparison.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Username normalizes a username by stripping markup and trimming whitespace.
func Username(s string) string {
	return strings.TrimSpace(strictPolicy().Sanitize(s))
}

// Name normalizes a person name by stripping markup and trimming whitespace.
func Name(s string) string {
	return strings.TrimSpace(strictPolicy().Sanitize(s))
}

// Phone normalizes a phone number by removing everything except digits.
func Phone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UF normalizes a federative unit code by trimming whitespace and uppercasing.
func UF(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
