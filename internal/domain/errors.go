package domain

import "errors"

// Repository-level sentinel errors. Implementations translate driver errors
// into these so use cases never depend on a storage backend.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
