package profiles

import "errors"

// ErrNotFound is returned when no profile matches the lookup.
var ErrNotFound = errors.New("profile not found")

// ErrAlreadyExists is returned when the user already has a profile.
var ErrAlreadyExists = errors.New("profile already exists")
