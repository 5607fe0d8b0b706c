package dlk

import (
	"fmt"
	"time"
)

// Field names of a raw store record. Every session implementation populates
// records with this vocabulary regardless of what the wire format calls them.
const (
	FieldName             = "name"
	FieldType             = "type"
	FieldLength           = "length"
	FieldBlockSize        = "blockSize"
	FieldAccessTime       = "accessTime"
	FieldModificationTime = "modificationTime"
	FieldOwner            = "owner"
	FieldGroup            = "group"
	FieldPermission       = "permission"
)

// Entry type markers used in the FieldType field.
const (
	TypeDirectory = "DIRECTORY"
	TypeFile      = "FILE"
)

// Record is one raw store entry as returned by a session. Timestamps are
// epoch milliseconds, matching the store's native representation.
type Record map[string]any

// String returns the named field as a string. A missing or mistyped field is
// reported as ErrMalformedRecord.
func (r Record) String(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformedRecord, field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is %T, not string", ErrMalformedRecord, field, v)
	}
	return s, nil
}

// StringDefault returns the named field as a string, or def when the field is
// absent or not a string.
func (r Record) StringDefault(field, def string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return def
}

// Int64 returns the named field as an int64. Numeric JSON decodings (float64,
// int) are accepted.
func (r Record) Int64(field string) (int64, error) {
	v, ok := r[field]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrMalformedRecord, field)
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: field %q is %T, not integer", ErrMalformedRecord, field, v)
	}
}

// Time returns the named epoch-millisecond field as a time.Time.
func (r Record) Time(field string) (time.Time, error) {
	ms, err := r.Int64(field)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
