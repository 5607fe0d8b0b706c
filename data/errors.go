package data

import (
	"errors"
	"fmt"
)

// Generic filesystem error kinds. Callers match these with errors.Is;
// store-specific error types never cross the adapter boundary.
var (
	ErrNotExist     = errors.New("dlkfs: resource not found")
	ErrExist        = errors.New("dlkfs: resource already exists")
	ErrPermission   = errors.New("dlkfs: permission denied")
	ErrRemote       = errors.New("dlkfs: remote connection error")
	ErrNotSupported = errors.New("dlkfs: operation not supported")
	ErrInvalidPath  = errors.New("dlkfs: invalid path")
)

// Remote failure categories carried by OpError when the error kind is
// ErrRemote.
const (
	CategoryBadOffset          = "bad-offset"
	CategoryIncompleteTransfer = "incomplete-transfer"
	CategoryREST               = "rest"
	CategoryUnknown            = "unknown"
)

// OpError ties a generic error kind to the operation and the caller-supplied
// path. Path always holds the path the caller passed in, never a translated
// store key.
type OpError struct {
	Op       string
	Path     string
	Category string
	Err      error
}

func (e *OpError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s %s: %v (%s)", e.Op, e.Path, e.Err, e.Category)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
