package dlkfs

import (
	"errors"
	"testing"
	"time"

	"github.com/mwantia/dlkfs/data"
	"github.com/mwantia/dlkfs/dlk"
)

func testRecord() dlk.Record {
	return dlk.Record{
		dlk.FieldName:             "data/sub/file.txt",
		dlk.FieldType:             dlk.TypeFile,
		dlk.FieldLength:           int64(4096),
		dlk.FieldBlockSize:        int64(268435456),
		dlk.FieldAccessTime:       int64(1700000000000),
		dlk.FieldModificationTime: int64(1700000100000),
		dlk.FieldOwner:            "6b2c...owner",
		dlk.FieldGroup:            "6b2c...group",
		dlk.FieldPermission:       "770",
	}
}

func TestInfoBasicOnly(t *testing.T) {
	info, err := infoFromRecord(testRecord(), nil)
	if err != nil {
		t.Fatalf("infoFromRecord failed: %v", err)
	}

	if info.Name() != "file.txt" {
		t.Errorf("Name = %q, want %q", info.Name(), "file.txt")
	}
	if info.IsDir() {
		t.Error("IsDir = true for a file record")
	}
	if info.Details != nil || info.Access != nil || info.DLK != nil {
		t.Error("unrequested namespaces were populated")
	}
}

func TestInfoDetails(t *testing.T) {
	info, err := infoFromRecord(testRecord(), []string{data.NamespaceDetails})
	if err != nil {
		t.Fatalf("infoFromRecord failed: %v", err)
	}

	if info.Details == nil {
		t.Fatal("details namespace not populated")
	}
	if info.Details.Type != data.TypeFile {
		t.Errorf("Type = %v, want %v", info.Details.Type, data.TypeFile)
	}
	// Size comes from the store's block-size field, not the byte length.
	if info.Details.Size != 268435456 {
		t.Errorf("Size = %d, want %d", info.Details.Size, 268435456)
	}
	if want := time.UnixMilli(1700000100000); !info.Details.Modified.Equal(want) {
		t.Errorf("Modified = %v, want %v", info.Details.Modified, want)
	}
	if want := time.UnixMilli(1700000000000); !info.Details.Accessed.Equal(want) {
		t.Errorf("Accessed = %v, want %v", info.Details.Accessed, want)
	}
}

func TestInfoDetailsDirectoryType(t *testing.T) {
	rec := testRecord()
	rec[dlk.FieldName] = "data/sub/"
	rec[dlk.FieldType] = dlk.TypeDirectory

	info, err := infoFromRecord(rec, []string{data.NamespaceDetails})
	if err != nil {
		t.Fatalf("infoFromRecord failed: %v", err)
	}

	if !info.IsDir() {
		t.Error("IsDir = false for a directory record")
	}
	if info.Name() != "sub" {
		t.Errorf("Name = %q, want %q", info.Name(), "sub")
	}
	if info.Details.Type != data.TypeDirectory {
		t.Errorf("Type = %v, want %v", info.Details.Type, data.TypeDirectory)
	}
}

func TestInfoAccessVerbatim(t *testing.T) {
	info, err := infoFromRecord(testRecord(), []string{data.NamespaceAccess})
	if err != nil {
		t.Fatalf("infoFromRecord failed: %v", err)
	}

	if info.Access == nil {
		t.Fatal("access namespace not populated")
	}
	if info.Access.Owner != "6b2c...owner" || info.Access.Group != "6b2c...group" || info.Access.Permission != "770" {
		t.Errorf("access fields not passed through verbatim: %+v", info.Access)
	}
}

// The store-native namespace must not duplicate fields already surfaced
// under details or access.
func TestInfoStoreNamespaceDeduplicated(t *testing.T) {
	info, err := infoFromRecord(testRecord(), []string{data.NamespaceDetails, data.NamespaceAccess, data.NamespaceDLK})
	if err != nil {
		t.Fatalf("infoFromRecord failed: %v", err)
	}

	if info.DLK == nil {
		t.Fatal("dlk namespace not populated")
	}

	for _, field := range []string{
		dlk.FieldAccessTime, dlk.FieldModificationTime, dlk.FieldBlockSize,
		dlk.FieldOwner, dlk.FieldGroup, dlk.FieldPermission,
	} {
		if _, ok := info.DLK[field]; ok {
			t.Errorf("field %q duplicated in dlk namespace", field)
		}
	}

	// Fields not surfaced elsewhere stay available raw.
	for _, field := range []string{dlk.FieldName, dlk.FieldType, dlk.FieldLength} {
		if _, ok := info.DLK[field]; !ok {
			t.Errorf("field %q missing from dlk namespace", field)
		}
	}
}

func TestInfoMissingFieldFailsLoudly(t *testing.T) {
	rec := testRecord()
	delete(rec, dlk.FieldBlockSize)

	if _, err := infoFromRecord(rec, []string{data.NamespaceDetails}); !errors.Is(err, dlk.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}

	rec = testRecord()
	delete(rec, dlk.FieldName)

	if _, err := infoFromRecord(rec, nil); !errors.Is(err, dlk.ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord for missing name, got %v", err)
	}
}

// The raw record is read-only input: normalization must not mutate it.
func TestInfoDoesNotMutateRecord(t *testing.T) {
	rec := testRecord()
	if _, err := infoFromRecord(rec, []string{data.NamespaceDetails, data.NamespaceAccess, data.NamespaceDLK}); err != nil {
		t.Fatalf("infoFromRecord failed: %v", err)
	}

	if _, ok := rec[dlk.FieldBlockSize]; !ok {
		t.Error("normalization deleted fields from the input record")
	}
}
