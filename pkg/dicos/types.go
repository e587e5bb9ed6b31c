package dicos

import (
	"maps"
	"slices"

	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

// Dataset represents a DICOM dataset, a record of elements keyed by tag.
// A sequence element owns its item datasets; items do not point back at
// their parent.
type Dataset struct {
	Elements map[Tag]*Element
}

// Element represents a single DICOM element.
//
// Value holds the payload: in memory values (string, []string, []byte,
// numeric scalars and slices), []*Dataset for sequences, *PixelData for
// encapsulated fragments or *BulkData for a value that lives elsewhere.
type Element struct {
	Tag   Tag
	VR    vr.VR
	Value interface{}
}

// Tag alias to avoid duplication
type Tag = tag.Tag

// Kind classifies an element payload
type Kind int

const (
	KindValue Kind = iota
	KindSequence
	KindFragments
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindFragments:
		return "fragments"
	}
	return "value"
}

// Kind reports whether the element is a sequence, a fragment container or a
// plain value
func (elem *Element) Kind() Kind {
	switch v := elem.Value.(type) {
	case []*Dataset:
		return KindSequence
	case *PixelData:
		if v != nil && v.IsEncapsulated {
			return KindFragments
		}
	}
	if elem.VR == vr.SQ {
		return KindSequence
	}
	return KindValue
}

// Items returns the items of a sequence element
func (elem *Element) Items() []*Dataset {
	items, _ := elem.Value.([]*Dataset)
	return items
}

// PixelData represents pixel data (native or encapsulated)
type PixelData struct {
	IsEncapsulated bool
	Frames         []Frame
	Offsets        []uint32 // Basic Offset Table for encapsulated data
}

// Frame represents a single frame of pixel data
type Frame struct {
	// For native (uncompressed) data
	Data []uint16

	// For encapsulated (compressed) data
	CompressedData []byte
}

// Len returns the number of elements
func (ds *Dataset) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.Elements)
}

// Tags returns the dataset's tags in ascending order
func (ds *Dataset) Tags() []Tag {
	return slices.SortedFunc(maps.Keys(ds.Elements), Tag.Compare)
}

// Sorted returns the elements in tag order
func (ds *Dataset) Sorted() []*Element {
	tags := ds.Tags()
	out := make([]*Element, len(tags))
	for i, t := range tags {
		out[i] = ds.Elements[t]
	}
	return out
}

// Get returns the element stored under t's group and element. Elements are
// keyed by number, a creator annotation on t is ignored.
func (ds *Dataset) Get(t Tag) (*Element, bool) {
	return ds.FindElement(t.Group, t.Element)
}

// Put stores elem under its group and element, replacing any element
// already there
func (ds *Dataset) Put(elem *Element) {
	if ds.Elements == nil {
		ds.Elements = make(map[Tag]*Element)
	}
	elem.Tag = tag.New(elem.Tag.Group, elem.Tag.Element)
	ds.Elements[elem.Tag] = elem
}

// FindElement returns an element by tag
func (ds *Dataset) FindElement(group, element uint16) (*Element, bool) {
	elem, ok := ds.Elements[Tag{Group: group, Element: element}]
	return elem, ok
}

// GetString returns a string value from an element
func (elem *Element) GetString() (string, bool) {
	switch v := elem.Value.(type) {
	case string:
		return v, true
	case []string:
		if len(v) > 0 {
			return v[0], true
		}
	}
	return "", false
}

// GetStrings returns the values of a multi-valued string element
func (elem *Element) GetStrings() ([]string, bool) {
	switch v := elem.Value.(type) {
	case []string:
		return v, true
	case string:
		return []string{v}, true
	}
	return nil, false
}

// GetPixelData returns pixel data from an element
func (elem *Element) GetPixelData() (*PixelData, bool) {
	if pd, ok := elem.Value.(*PixelData); ok {
		return pd, true
	}
	return nil, false
}

// GetBulkData returns the external value reference of an element
func (elem *Element) GetBulkData() (*BulkData, bool) {
	if bd, ok := elem.Value.(*BulkData); ok {
		return bd, true
	}
	return nil, false
}

// Count returns the number of values held by the element, as checked
// against a value multiplicity. Raw bytes of a fixed size VR count one
// value per VR size, other binary and bulk payloads count as one.
func (elem *Element) Count() int {
	switch v := elem.Value.(type) {
	case nil:
		return 0
	case string:
		if v == "" {
			return 0
		}
		switch elem.VR {
		case vr.LT, vr.ST, vr.UT, vr.UR:
			return 1
		}
		if elem.VR.IsString() {
			return len(splitMulti(v))
		}
		return 1
	case []string:
		return len(v)
	case []*Dataset:
		return 1
	case []byte:
		if size := elem.VR.ValueSize(); size > 0 {
			return len(v) / size
		}
		return 1
	case []uint16:
		return len(v)
	case []uint32:
		return len(v)
	case []int:
		return len(v)
	case []int16:
		return len(v)
	case []int32:
		return len(v)
	case []float32:
		return len(v)
	case []float64:
		return len(v)
	case []Tag:
		return len(v)
	}
	return 1
}
