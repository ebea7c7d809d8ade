package repositories

import "errors"

// ErrNotFound is wrapped by every repository implementation when a lookup
// matches no record, so callers can distinguish absence from infrastructure
// failures with errors.Is.
var ErrNotFound = errors.New("record not found")
