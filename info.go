package dlkfs

import (
	"slices"

	"github.com/mwantia/dlkfs/data"
	"github.com/mwantia/dlkfs/dlk"
)

// Store fields surfaced under the details and access namespaces. The
// store-native namespace drops these to avoid duplication.
var (
	detailFields = []string{dlk.FieldAccessTime, dlk.FieldModificationTime, dlk.FieldBlockSize}
	accessFields = []string{dlk.FieldOwner, dlk.FieldGroup, dlk.FieldPermission}
)

// infoFromRecord converts one raw store record into a namespaced info
// record. The raw record is read-only input; every surfaced value is a copy.
// A record missing an expected field is a store-client contract violation
// and fails with dlk.ErrMalformedRecord.
func infoFromRecord(rec dlk.Record, namespaces []string) (*data.Info, error) {
	key, err := rec.String(dlk.FieldName)
	if err != nil {
		return nil, err
	}

	isDir := rec.StringDefault(dlk.FieldType, "") == dlk.TypeDirectory
	info := &data.Info{
		Basic: data.BasicInfo{
			Name:  baseName(key),
			IsDir: isDir,
		},
	}

	if slices.Contains(namespaces, data.NamespaceDetails) {
		entryType := data.TypeFile
		if isDir {
			entryType = data.TypeDirectory
		}

		accessed, err := rec.Time(dlk.FieldAccessTime)
		if err != nil {
			return nil, err
		}
		modified, err := rec.Time(dlk.FieldModificationTime)
		if err != nil {
			return nil, err
		}
		size, err := rec.Int64(dlk.FieldBlockSize)
		if err != nil {
			return nil, err
		}

		info.Details = &data.DetailsInfo{
			Type:     entryType,
			Accessed: accessed,
			Modified: modified,
			Size:     size,
		}
	}

	if slices.Contains(namespaces, data.NamespaceAccess) {
		owner, err := rec.String(dlk.FieldOwner)
		if err != nil {
			return nil, err
		}
		group, err := rec.String(dlk.FieldGroup)
		if err != nil {
			return nil, err
		}
		permission, err := rec.String(dlk.FieldPermission)
		if err != nil {
			return nil, err
		}

		info.Access = &data.AccessInfo{
			Owner:      owner,
			Group:      group,
			Permission: permission,
		}
	}

	if slices.Contains(namespaces, data.NamespaceDLK) {
		raw := rec.Clone()
		for _, field := range detailFields {
			delete(raw, field)
		}
		for _, field := range accessFields {
			delete(raw, field)
		}
		info.DLK = raw
	}

	return info, nil
}
