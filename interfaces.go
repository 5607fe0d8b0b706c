package dlkfs

import (
	"context"
	"io"

	"github.com/mwantia/dlkfs/data"
)

// VirtualFileSystem is the generic, path-addressed surface exposed to
// consumers. Paths are absolute and slash-separated; implementations own the
// mapping to whatever the backing store uses.
type VirtualFileSystem interface {
	// GetInfo returns the namespaced info record for the given path. The
	// basic namespace is always populated; further namespaces are filled
	// only when requested.
	GetInfo(ctx context.Context, path string, namespaces ...string) (*data.Info, error)

	// ListDir returns the names of the entries below path: directories
	// first with a trailing slash, each group in lexicographic order.
	ListDir(ctx context.Context, path string) ([]string, error)

	// SetInfo updates metadata for the given path. Implementations without
	// mutable metadata validate existence and ignore the attributes.
	SetInfo(ctx context.Context, path string, info *data.Info) error

	// MakeDir creates a directory at path.
	MakeDir(ctx context.Context, path string) error

	// OpenFile opens a file for byte-level access. The returned handle must
	// be closed by the caller.
	OpenFile(ctx context.Context, path string, flags data.AccessMode) (io.ReadWriteCloser, error)

	// Remove deletes a file at path.
	Remove(ctx context.Context, path string) error

	// RemoveDir removes an empty directory at path.
	RemoveDir(ctx context.Context, path string) error

	// GetCapabilities returns the capability set of this filesystem.
	GetCapabilities() Capabilities
}
