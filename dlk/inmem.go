package dlk

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/btree"
)

// InMemorySession is an ordered, in-memory store session. It lets consumers
// exercise the adapter without a live store and backs this module's own
// tests. Keys are flat, slash-separated store keys without trailing slashes.
type InMemorySession struct {
	mu      sync.RWMutex
	records *btree.Map[string, Record]
}

func InMemory() *InMemorySession {
	return &InMemorySession{
		records: btree.NewMap[string, Record](0),
	}
}

// Put stores a raw record under key. The record's name field is set to the
// key when absent.
func (s *InMemorySession) Put(key string, rec Record) {
	key = strings.TrimSuffix(key, "/")

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := rec.Clone()
	if _, ok := stored[FieldName]; !ok {
		stored[FieldName] = key
	}
	s.records.Set(key, stored)
}

// PutFile seeds a file record with the store's full field vocabulary.
func (s *InMemorySession) PutFile(key string, size int64, modified time.Time) {
	s.Put(key, Record{
		FieldName:             strings.TrimSuffix(key, "/"),
		FieldType:             TypeFile,
		FieldLength:           size,
		FieldBlockSize:        size,
		FieldAccessTime:       modified.UnixMilli(),
		FieldModificationTime: modified.UnixMilli(),
		FieldOwner:            "owner",
		FieldGroup:            "group",
		FieldPermission:       "770",
	})
}

// PutDirectory seeds a directory record.
func (s *InMemorySession) PutDirectory(key string, modified time.Time) {
	s.Put(key, Record{
		FieldName:             strings.TrimSuffix(key, "/"),
		FieldType:             TypeDirectory,
		FieldLength:           int64(0),
		FieldBlockSize:        int64(0),
		FieldAccessTime:       modified.UnixMilli(),
		FieldModificationTime: modified.UnixMilli(),
		FieldOwner:            "owner",
		FieldGroup:            "group",
		FieldPermission:       "770",
	})
}

func (s *InMemorySession) Info(ctx context.Context, key string) (Record, error) {
	key = strings.TrimSuffix(key, "/")

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}
	return rec.Clone(), nil
}

func (s *InMemorySession) List(ctx context.Context, key string, detail bool) ([]Record, error) {
	key = strings.TrimSuffix(key, "/")

	s.mu.RLock()
	defer s.mu.RUnlock()

	if key != "" {
		rec, ok := s.records.Get(key)
		if !ok {
			return nil, ErrKeyNotFound
		}
		if rec.StringDefault(FieldType, "") != TypeDirectory {
			// Listing a file yields the file itself.
			return []Record{rec.Clone()}, nil
		}
	}

	prefix := ""
	if key != "" {
		prefix = key + "/"
	}

	var out []Record
	s.records.Scan(func(k string, rec Record) bool {
		if !strings.HasPrefix(k, prefix) || k == key {
			return true
		}
		rest := strings.TrimPrefix(k, prefix)
		if rest == "" || strings.Contains(rest, "/") {
			return true
		}
		out = append(out, rec.Clone())
		return true
	})
	return out, nil
}
