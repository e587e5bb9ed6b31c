package dicos

import (
	"fmt"
	"io"
)

// BulkData is a value that is not held in memory: it is referenced by
// location and fetched on demand. Until it is resolved its content is
// unknown.
type BulkData struct {
	URI    string
	Offset int64
	Length int64

	data     []byte
	resolved bool
}

// NewBulkData creates an unresolved reference to length bytes at offset
func NewBulkData(uri string, offset, length int64) *BulkData {
	return &BulkData{URI: uri, Offset: offset, Length: length}
}

// IsResolved reports whether the content has been fetched
func (b *BulkData) IsResolved() bool {
	return b != nil && b.resolved
}

// Data returns the fetched content, nil until resolved
func (b *BulkData) Data() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// SetData marks the reference resolved with p as its content
func (b *BulkData) SetData(p []byte) {
	b.data = p
	b.Length = int64(len(p))
	b.resolved = true
}

// Resolve reads the referenced range from r
func (b *BulkData) Resolve(r io.ReaderAt) error {
	if b.Length < 0 {
		return fmt.Errorf("bulk data %s: negative length %d", b.URI, b.Length)
	}
	buf := make([]byte, b.Length)
	n, err := r.ReadAt(buf, b.Offset)
	if err != nil && !(err == io.EOF && int64(n) == b.Length) {
		return fmt.Errorf("bulk data %s at %d: %w", b.URI, b.Offset, err)
	}
	b.SetData(buf)
	return nil
}

func (b *BulkData) String() string {
	if b.resolved {
		return fmt.Sprintf("Bulk Data %s (%d bytes)", b.URI, len(b.data))
	}
	return fmt.Sprintf("Bulk Data %s [%d+%d] (unresolved)", b.URI, b.Offset, b.Length)
}
