package dlkfs

import (
	"path"
	"strings"
)

// normPath cleans a caller path into absolute, slash-separated form. An empty
// path is invalid; everything else is anchored at "/" and collapsed.
func normPath(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p), true
}

// relPath strips leading slashes, yielding the path relative to the root.
func relPath(p string) string {
	return strings.TrimLeft(p, "/")
}

// rootPrefix derives the fixed key prefix from the configured directory path.
// Computed once at construction; "/" maps to the empty prefix.
func rootPrefix(dir string) (string, bool) {
	norm, ok := normPath(dir)
	if !ok {
		return "", false
	}
	return strings.TrimRight(relPath(norm), "/"), true
}

// pathToKey converts a filesystem path to a flat store key under the prefix.
func pathToKey(prefix, p string) string {
	return strings.TrimLeft(prefix+"/"+relPath(p), "/")
}

// pathToDirKey is pathToKey with a trailing slash forced on, for calls where
// the key must denote a directory.
func pathToDirKey(prefix, p string) string {
	key := prefix + "/" + relPath(p)
	if !strings.HasSuffix(key, "/") {
		key += "/"
	}
	return strings.TrimLeft(key, "/")
}

// keyToPath is the explicit inverse of pathToKey: it strips the root prefix
// and restores the leading slash. The prefix is only stripped on a segment
// boundary, so "data" never eats into "database/x".
func keyToPath(prefix, key string) string {
	rel := key
	switch {
	case prefix == "":
	case key == prefix:
		rel = ""
	case strings.HasPrefix(key, prefix+"/"):
		rel = key[len(prefix)+1:]
	}
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return "/"
	}
	return "/" + rel
}

// baseName returns the final non-empty path segment, ignoring one trailing
// slash. The root maps to the empty name.
func baseName(p string) string {
	p = strings.TrimSuffix(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
