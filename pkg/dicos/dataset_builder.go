package dicos

import (
	"fmt"

	"github.com/jpfielding/dicomdict/pkg/dicos/dict"
	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

// Option configures a Dataset during construction
type Option func(*Dataset) error

// NewDataset creates a Dataset with the given options
func NewDataset(opts ...Option) (*Dataset, error) {
	ds := &Dataset{Elements: make(map[Tag]*Element)}
	for _, opt := range opts {
		if err := opt(ds); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// WithElement adds a single element to the dataset, its VR taken from the
// standard dictionary
func WithElement(t tag.Tag, value interface{}) Option {
	return WithElementVR(t, GetVR(t), value)
}

// WithElementVR adds a single element with an explicit VR
func WithElementVR(t tag.Tag, v vr.VR, value interface{}) Option {
	return func(ds *Dataset) error {
		ds.Put(&Element{Tag: t, VR: v, Value: value})
		return nil
	}
}

// WithSequence adds a sequence element to the dataset
func WithSequence(t tag.Tag, items ...*Dataset) Option {
	return func(ds *Dataset) error {
		for i, item := range items {
			if item == nil {
				return fmt.Errorf("sequence %v: item %d is nil", t, i)
			}
		}
		ds.Put(&Element{Tag: t, VR: vr.SQ, Value: items})
		return nil
	}
}

// WithBulkData adds an element whose value is an unresolved external
// reference
func WithBulkData(t tag.Tag, v vr.VR, uri string, offset, length int64) Option {
	return WithElementVR(t, v, NewBulkData(uri, offset, length))
}

// WithPrivateElement adds an element at offset within creator's block of a
// private group, reserving the block when the creator has none yet
func WithPrivateElement(group uint16, creator string, offset uint8, v vr.VR, value interface{}) Option {
	return func(ds *Dataset) error {
		t, err := ds.PrivateTag(group, creator, offset)
		if err != nil {
			return fmt.Errorf("private element %s: %w", creator, err)
		}
		ds.Put(&Element{Tag: t, VR: v, Value: value})
		return nil
	}
}

// WithFileMeta adds standard file meta information elements
func WithFileMeta(sopClassUID, sopInstanceUID, transferSyntax string) Option {
	return func(ds *Dataset) error {
		opts := []Option{
			WithElement(tag.MediaStorageSOPClassUID, sopClassUID),
			WithElement(tag.MediaStorageSOPInstanceUID, sopInstanceUID),
			WithElement(tag.TransferSyntaxUID, transferSyntax),
			WithElement(tag.ImplementationClassUID, "1.2.826.0.1.3680043.8.498.1"),
			WithElement(tag.ImplementationVersionName, "GO_DICOMDICT"),
		}
		for _, opt := range opts {
			if err := opt(ds); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithRawPixelData adds pre-constructed PixelData to the dataset
func WithRawPixelData(pd *PixelData) Option {
	return func(ds *Dataset) error {
		if pd == nil {
			return nil
		}
		v := vr.OB
		if !pd.IsEncapsulated && len(pd.Frames) > 0 && len(pd.Frames[0].Data) > 0 {
			v = vr.OW
		}
		ds.Put(&Element{Tag: tag.PixelData, VR: v, Value: pd})
		return nil
	}
}

// GetVR returns the first Value Representation the standard dictionary
// allows for t, UN when the tag is unknown or carries no value
func GetVR(t tag.Tag) vr.VR {
	v := dict.Default().Lookup(tag.New(t.Group, t.Element)).VR()
	if v == vr.NONE {
		return vr.UN
	}
	return v
}
