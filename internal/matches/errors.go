package matches

import "errors"

// ErrNotFound is returned when no match matches the lookup.
var ErrNotFound = errors.New("match not found")
