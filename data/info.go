package data

import "time"

// Namespaces a caller can request from GetInfo. The basic namespace is always
// populated; the others are filled only on request.
const (
	NamespaceBasic   = "basic"
	NamespaceDetails = "details"
	NamespaceAccess  = "access"
	NamespaceDLK     = "dlk"
)

// ResourceType identifies the kind of entry an Info record describes.
type ResourceType int

const (
	TypeUnknown ResourceType = iota
	TypeDirectory
	TypeFile
)

func (t ResourceType) String() string {
	switch t {
	case TypeDirectory:
		return "directory"
	case TypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// Info is the namespaced metadata bundle returned for a path. Namespaces the
// caller did not request stay nil.
type Info struct {
	Basic   BasicInfo
	Details *DetailsInfo
	Access  *AccessInfo

	// DLK holds the remaining raw store fields when the store-native
	// namespace is requested, minus the fields already surfaced under
	// Details and Access.
	DLK map[string]any
}

// BasicInfo is always populated. Name is the final path segment and empty for
// the root directory.
type BasicInfo struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
}

// DetailsInfo carries timing and size metadata. Size is derived from the
// store's block-size field and approximates, not equals, the byte length.
type DetailsInfo struct {
	Type     ResourceType `json:"type"`
	Accessed time.Time    `json:"accessed"`
	Modified time.Time    `json:"modified"`
	Size     int64        `json:"size"`
}

// AccessInfo carries ownership fields passed through verbatim from the store
// record.
type AccessInfo struct {
	Owner      string `json:"owner"`
	Group      string `json:"group"`
	Permission string `json:"permission"`
}

// Name returns the basic name of the entry.
func (i *Info) Name() string {
	return i.Basic.Name
}

// IsDir reports whether the entry is a directory.
func (i *Info) IsDir() bool {
	return i.Basic.IsDir
}
