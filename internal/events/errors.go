package events

import "errors"

// ErrNotFound is returned when no event matches the lookup.
var ErrNotFound = errors.New("event not found")
