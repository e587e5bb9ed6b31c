package dicos

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpfielding/dicomdict/pkg/dicos/dict"
)

// String returns a string representation of the Element
func (e *Element) String() string {
	// Format: [Tag] [VR] (Name) ... : Value
	tagName := e.name()
	if tagName != "" {
		tagName = " " + tagName
	}

	valStr := ""
	switch v := e.Value.(type) {
	case *PixelData:
		valStr = fmt.Sprintf("Pixel Data (%d frames)", len(v.Frames))
	case *BulkData:
		valStr = v.String()
	case []*Dataset:
		valStr = fmt.Sprintf("Sequence (%d items)", len(v))
	case []uint16:
		if len(v) > 10 {
			valStr = fmt.Sprintf("Array of %d params", len(v))
		} else {
			valStr = fmt.Sprintf("%v", v)
		}
	case []byte:
		if len(v) > 20 {
			valStr = fmt.Sprintf("Binary Data (%d bytes)", len(v))
		} else {
			valStr = fmt.Sprintf("%v", v)
		}
	default:
		valStr = fmt.Sprintf("%v", v)
	}

	return fmt.Sprintf("[%s] %s%s: %s", e.Tag, e.VR, tagName, valStr)
}

func (e *Element) name() string {
	entry := dict.Default().Lookup(e.Tag)
	if entry == dict.UnknownEntry {
		return ""
	}
	return entry.Name
}

// MarshalJSON returns a JSON representation of the Element
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Tag   string      `json:"tag"`
		Name  string      `json:"name,omitempty"`
		VR    string      `json:"vr"`
		Value interface{} `json:"value"`
	}{
		Tag:   e.Tag.String(),
		Name:  e.name(),
		VR:    string(e.VR),
		Value: e.Value,
	})
}

// String returns a string representation of the Dataset, nested items
// indented below their sequence
func (ds *Dataset) String() string {
	if ds == nil {
		return "<nil>"
	}
	var b strings.Builder
	_ = Walk(ds, func(elem *Element, depth int) error {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(elem.String())
		b.WriteString("\n")
		return nil
	})
	return b.String()
}

// MarshalJSON returns a JSON representation of the Dataset
// It returns a sorted array of Elements instead of a Map
func (ds *Dataset) MarshalJSON() ([]byte, error) {
	return json.Marshal(ds.Sorted())
}
