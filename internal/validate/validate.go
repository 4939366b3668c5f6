// Package validate collects per-field validation failures for request payloads.
package validate

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps field names to user-facing messages.
// It implements error so app layers can return it directly.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a failure for field unless one is already present.
// The first failure per field wins, matching rule ordering in the callers.
func (fe FieldErrors) Add(field, message string) {
	if _, ok := fe[field]; !ok {
		fe[field] = message
	}
}

// OrNil returns fe as an error, or nil when no failures were recorded.
func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
