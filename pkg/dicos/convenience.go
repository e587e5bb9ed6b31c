package dicos

import (
	"fmt"

	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

// AddSequenceItem appends an item to the sequence element t, creating the
// sequence when it does not exist yet.
//
//	item, _ := dicos.NewDataset(
//		dicos.WithElement(tag.ReferencedSOPClassUID, sopClass),
//		dicos.WithElement(tag.ReferencedSOPInstanceUID, instance),
//	)
//	dicos.AddSequenceItem(ds, tag.ReferencedImageSequence, item)
func AddSequenceItem(ds *Dataset, t Tag, item *Dataset) error {
	if item == nil {
		return fmt.Errorf("cannot add nil dataset to sequence")
	}

	elem, exists := ds.Get(t)
	if !exists {
		ds.Put(&Element{Tag: t, VR: vr.SQ, Value: []*Dataset{item}})
		return nil
	}

	seq, ok := elem.Value.([]*Dataset)
	if !ok {
		return fmt.Errorf("element %v exists but is not a sequence (VR=%s)", t, elem.VR)
	}
	elem.Value = append(seq, item)
	return nil
}

// GetSequenceItems returns the items of a sequence element, nil if the
// element does not exist or is not a sequence
func GetSequenceItems(ds *Dataset, t Tag) []*Dataset {
	elem, ok := ds.Get(t)
	if !ok {
		return nil
	}
	return elem.Items()
}

// HasElement returns true if the dataset contains the specified element
func HasElement(ds *Dataset, t Tag) bool {
	_, ok := ds.Get(t)
	return ok
}

// DeleteElement removes an element from the dataset
func DeleteElement(ds *Dataset, t Tag) {
	delete(ds.Elements, Tag{Group: t.Group, Element: t.Element})
}

// CloneDataset creates a deep copy of a dataset.
//
// Pixel data is shared between the copies. Bulk data references are copied
// with their fetched content shared.
func CloneDataset(ds *Dataset) *Dataset {
	clone := &Dataset{
		Elements: make(map[Tag]*Element, len(ds.Elements)),
	}

	for t, elem := range ds.Elements {
		cloned := &Element{Tag: elem.Tag, VR: elem.VR}

		switch v := elem.Value.(type) {
		case []byte:
			copied := make([]byte, len(v))
			copy(copied, v)
			cloned.Value = copied
		case []string:
			copied := make([]string, len(v))
			copy(copied, v)
			cloned.Value = copied
		case []*Dataset:
			seq := make([]*Dataset, len(v))
			for i, item := range v {
				seq[i] = CloneDataset(item)
			}
			cloned.Value = seq
		case *BulkData:
			copied := *v
			cloned.Value = &copied
		default:
			cloned.Value = v
		}

		clone.Elements[t] = cloned
	}

	return clone
}
