// Package tag defines DICOM attribute tags, wildcard tag patterns and the
// well-known standard tags used across the library.
package tag

import "strings"

// Tag represents a DICOM tag with Group and Element. Tags in odd (private)
// groups may carry the PrivateCreator that reserved their block; two tags with
// different creators are different identities.
type Tag struct {
	Group          uint16
	Element        uint16
	PrivateCreator string
}

// New creates a new Tag
func New(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// NewPrivate creates a Tag scoped to a private creator
func NewPrivate(group, element uint16, creator string) Tag {
	return Tag{Group: group, Element: element, PrivateCreator: strings.TrimSpace(creator)}
}

// Equals compares two tags, including the private creator
func (t Tag) Equals(other Tag) bool {
	return t == other
}

// SameNumber compares group and element only
func (t Tag) SameNumber(other Tag) bool {
	return t.Group == other.Group && t.Element == other.Element
}

// Uint32 returns the tag as group<<16 | element
func (t Tag) Uint32() uint32 {
	return uint32(t.Group)<<16 | uint32(t.Element)
}

// FromUint32 builds a Tag from its 32-bit cardinal form
func FromUint32(v uint32) Tag {
	return Tag{Group: uint16(v >> 16), Element: uint16(v)}
}

// Compare orders tags by group, then element, then private creator
func (t Tag) Compare(other Tag) int {
	switch {
	case t.Group < other.Group:
		return -1
	case t.Group > other.Group:
		return 1
	case t.Element < other.Element:
		return -1
	case t.Element > other.Element:
		return 1
	}
	return strings.Compare(t.PrivateCreator, other.PrivateCreator)
}

// Less reports whether t sorts before other
func (t Tag) Less(other Tag) bool {
	return t.Compare(other) < 0
}

// WithCreator returns a copy of t annotated with creator
func (t Tag) WithCreator(creator string) Tag {
	t.PrivateCreator = strings.TrimSpace(creator)
	return t
}

// IsPrivate returns true if this is a private tag (odd group number)
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// IsPrivateCreator returns true for the (gggg,0010-00FF) slots that hold a
// private creator identifier
func (t Tag) IsPrivateCreator() bool {
	return t.IsPrivate() && t.Element >= 0x0010 && t.Element <= 0x00FF
}

// IsPrivateData returns true for private data elements (gggg,1000-FFFF)
func (t Tag) IsPrivateData() bool {
	return t.IsPrivate() && t.Element >= 0x1000
}

// PrivateBlock returns the tag of the creator slot reserving t's block:
// (gggg,xxyy) is reserved by (gggg,00xx). ok is false when t is not a
// private data element.
func (t Tag) PrivateBlock() (Tag, bool) {
	if !t.IsPrivateData() {
		return Tag{}, false
	}
	return Tag{Group: t.Group, Element: t.Element >> 8}, true
}

// BlockOffset returns the low byte of a private data element, the part that
// is stable across the block a creator happens to be assigned.
func (t Tag) BlockOffset() uint16 {
	return t.Element & 0x00FF
}

// IsGroupLength returns true for (gggg,0000)
func (t Tag) IsGroupLength() bool {
	return t.Element == 0x0000
}

// Masked returns an exact-match pattern for t
func (t Tag) Masked() MaskedTag {
	return MaskedTag{Value: t.Uint32(), Mask: FullMask}
}
