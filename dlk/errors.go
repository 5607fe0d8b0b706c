package dlk

import "errors"

// Store error categories. Session implementations must map their native
// failures onto these so the adapter can translate them into the generic
// filesystem taxonomy.
var (
	ErrKeyNotFound        = errors.New("dlk: key not found")
	ErrKeyExists          = errors.New("dlk: key already exists")
	ErrPermissionDenied   = errors.New("dlk: permission denied")
	ErrBadOffset          = errors.New("dlk: bad offset")
	ErrIncompleteTransfer = errors.New("dlk: incomplete transfer")
	ErrREST               = errors.New("dlk: rest request failed")

	// ErrMalformedRecord marks a record that is missing an expected field
	// or carries one with an unusable type. This is a contract violation
	// of the store client, not a caller mistake.
	ErrMalformedRecord = errors.New("dlk: malformed record")
)
