package dlkfs

import (
	"errors"

	"github.com/mwantia/dlkfs/data"
	"github.com/mwantia/dlkfs/dlk"
)

// translate maps a store error onto the generic filesystem taxonomy. Exactly
// one translation happens per store call, at the call boundary. Store errors
// outside the table are wrapped as remote errors so store-specific types
// never reach callers.
func translate(op, path string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, dlk.ErrKeyNotFound):
		return &data.OpError{Op: op, Path: path, Err: data.ErrNotExist}
	case errors.Is(err, dlk.ErrKeyExists):
		return &data.OpError{Op: op, Path: path, Err: data.ErrExist}
	case errors.Is(err, dlk.ErrPermissionDenied):
		return &data.OpError{Op: op, Path: path, Err: data.ErrPermission}
	case errors.Is(err, dlk.ErrBadOffset):
		return &data.OpError{Op: op, Path: path, Category: data.CategoryBadOffset, Err: data.ErrRemote}
	case errors.Is(err, dlk.ErrIncompleteTransfer):
		return &data.OpError{Op: op, Path: path, Category: data.CategoryIncompleteTransfer, Err: data.ErrRemote}
	case errors.Is(err, dlk.ErrREST):
		return &data.OpError{Op: op, Path: path, Category: data.CategoryREST, Err: data.ErrRemote}
	default:
		return &data.OpError{Op: op, Path: path, Category: data.CategoryUnknown, Err: data.ErrRemote}
	}
}

func notSupported(op, path string) error {
	return &data.OpError{Op: op, Path: path, Err: data.ErrNotSupported}
}

func invalidPath(op, path string) error {
	return &data.OpError{Op: op, Path: path, Err: data.ErrInvalidPath}
}
