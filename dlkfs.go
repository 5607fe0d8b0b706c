// Package dlkfs exposes a remote Azure Data Lake store through a generic,
// path-addressed virtual-filesystem surface. The adapter is read-mostly:
// metadata lookups and directory listings are supported, byte-level I/O and
// mutation are not and fail with data.ErrNotSupported.
package dlkfs

import (
	"context"
	"errors"
	"io"

	"github.com/tidwall/btree"

	"github.com/mwantia/dlkfs/data"
	"github.com/mwantia/dlkfs/dlk"
	"github.com/mwantia/dlkfs/log"
)

// DataLakeFS is stateless beyond the immutable root prefix and the session
// pool; every operation stands alone given the pool's per-worker cache.
type DataLakeFS struct {
	prefix string
	pool   *dlk.SessionPool
	logger *log.Logger
	caps   Capabilities
}

var _ VirtualFileSystem = (*DataLakeFS)(nil)

func New(cfg Config, opts ...Option) (*DataLakeFS, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	dir := cfg.DirPath
	if dir == "" {
		dir = "/"
	}
	prefix, ok := rootPrefix(dir)
	if !ok {
		return nil, invalidPath("new", cfg.DirPath)
	}

	return &DataLakeFS{
		prefix: prefix,
		pool:   dlk.NewSessionPool(options.Authenticator, cfg.Credentials, cfg.Store),
		logger: options.Logger.Named("dlkfs"),
		caps: Capabilities{
			Capabilities: []Capability{
				CapabilityMetadata,
				CapabilityList,
			},
		},
	}, nil
}

// GetCapabilities returns the capability set of this adapter. The store is
// reached read-only, so CRUD and streaming are absent.
func (fs *DataLakeFS) GetCapabilities() Capabilities {
	return fs.caps
}

// GetInfo returns the namespaced info record for path. The root path is
// answered synthetically without a store call.
func (fs *DataLakeFS) GetInfo(ctx context.Context, path string, namespaces ...string) (*data.Info, error) {
	norm, ok := normPath(path)
	if !ok {
		return nil, invalidPath("getinfo", path)
	}

	if norm == "/" {
		return &data.Info{
			Basic:   data.BasicInfo{Name: "", IsDir: true},
			Details: &data.DetailsInfo{Type: data.TypeDirectory},
		}, nil
	}

	key := pathToKey(fs.prefix, norm)
	fs.logger.Debug("getinfo %s (key %s)", path, key)

	session, err := fs.pool.Session(ctx)
	if err != nil {
		return nil, translate("getinfo", path, err)
	}

	rec, err := session.Info(ctx, key)
	if err != nil {
		terr := translate("getinfo", path, err)
		if errors.Is(terr, data.ErrNotExist) {
			// Re-anchor to the caller path so the error never names the
			// translated key.
			return nil, &data.OpError{Op: "getinfo", Path: path, Err: data.ErrNotExist}
		}
		return nil, terr
	}

	return infoFromRecord(rec, namespaces)
}

// ListDir returns the entry names below path: directories first with a
// trailing slash, then files, each group sorted. Two independent ordered
// passes, matching the contract callers depend on.
func (fs *DataLakeFS) ListDir(ctx context.Context, path string) ([]string, error) {
	norm, ok := normPath(path)
	if !ok {
		return nil, invalidPath("listdir", path)
	}

	key := pathToKey(fs.prefix, norm)
	prefixLen := len(key)
	fs.logger.Debug("listdir %s (key %s)", path, key)

	session, err := fs.pool.Session(ctx)
	if err != nil {
		return nil, translate("listdir", path, err)
	}

	entries, err := session.List(ctx, key, true)
	if err != nil {
		return nil, translate("listdir", path, err)
	}

	var dirs, files btree.Set[string]
	for _, entry := range entries {
		name, err := entry.String(dlk.FieldName)
		if err != nil {
			return nil, err
		}

		if entry.StringDefault(dlk.FieldType, "") == dlk.TypeDirectory {
			rel := name
			if len(rel) >= prefixLen {
				rel = rel[prefixLen:]
			}
			rel = trimLeadingSlash(rel)
			// An entry naming the listed directory itself would strip down
			// to ""; skip it rather than emit a bare "/".
			if rel != "" {
				dirs.Insert(forceDir(rel))
			}
		} else {
			files.Insert(baseName(name))
		}
	}

	out := make([]string, 0, dirs.Len()+files.Len())
	dirs.Scan(func(name string) bool {
		out = append(out, name)
		return true
	})
	files.Scan(func(name string) bool {
		out = append(out, name)
		return true
	})
	return out, nil
}

// SetInfo validates that path exists. The store exposes no mutable metadata
// through this adapter, so requested attributes are ignored.
func (fs *DataLakeFS) SetInfo(ctx context.Context, path string, info *data.Info) error {
	_, err := fs.GetInfo(ctx, path)
	return err
}

func (fs *DataLakeFS) MakeDir(ctx context.Context, path string) error {
	return notSupported("makedir", path)
}

func (fs *DataLakeFS) OpenFile(ctx context.Context, path string, flags data.AccessMode) (io.ReadWriteCloser, error) {
	return nil, notSupported("openfile", path)
}

func (fs *DataLakeFS) Remove(ctx context.Context, path string) error {
	return notSupported("remove", path)
}

func (fs *DataLakeFS) RemoveDir(ctx context.Context, path string) error {
	return notSupported("removedir", path)
}

func trimLeadingSlash(p string) string {
	if len(p) > 0 && p[0] == '/' {
		return p[1:]
	}
	return p
}

func forceDir(p string) string {
	if len(p) == 0 || p[len(p)-1] != '/' {
		return p + "/"
	}
	return p
}
