package dicos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

func TestSequenceBuilder_Basic(t *testing.T) {
	builder := NewSequenceBuilder(tag.ReferencedImageSequence)
	builder.AddItem(
		WithElement(tag.ReferencedSOPClassUID, "1.2.840.10008.5.1.4.1.1.2"),
		WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.4.5"),
	).AddItem(
		WithElement(tag.ReferencedSOPClassUID, "1.2.840.10008.5.1.4.1.1.2"),
		WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.4.6"),
	)

	assert.Equal(t, 2, builder.Count())
	assert.False(t, builder.HasErrors())

	opt, err := builder.Build()
	require.NoError(t, err)

	ds, err := NewDataset(
		WithElement(tag.PatientID, "PAT-001"),
		opt,
	)
	require.NoError(t, err)

	items := GetSequenceItems(ds, tag.ReferencedImageSequence)
	require.NotNil(t, items)
	assert.Len(t, items, 2)

	elem, ok := items[0].FindElement(tag.ReferencedSOPInstanceUID.Group, tag.ReferencedSOPInstanceUID.Element)
	require.True(t, ok)
	assert.Equal(t, vr.UI, elem.VR)
	uid, _ := elem.GetString()
	assert.Equal(t, "1.2.3.4.5", uid)

	seq, ok := ds.Get(tag.ReferencedImageSequence)
	require.True(t, ok)
	assert.Equal(t, vr.SQ, seq.VR)
	assert.Equal(t, KindSequence, seq.Kind())
}

func TestSequenceBuilder_Manipulation(t *testing.T) {
	builder := NewSequenceBuilder(tag.ReferencedImageSequence)
	builder.AddItem(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.1"))
	builder.AddItem(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.2"))
	builder.AddItem(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.3"))
	assert.Equal(t, 3, builder.Count())

	builder.RemoveItem(1)
	assert.Equal(t, 2, builder.Count())

	item := builder.GetItem(0)
	require.NotNil(t, item)
	item.Put(&Element{Tag: tag.ReferencedSOPClassUID, VR: vr.UI, Value: "1.2.840.10008.5.1.4.1.1.2"})

	newItem, _ := NewDataset(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.9"))
	builder.ReplaceItem(1, newItem)

	items := builder.GetItems()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Len())
	assert.Same(t, newItem, items[1])
}

func TestSequenceBuilder_Clear(t *testing.T) {
	builder := NewSequenceBuilder(tag.ReferencedImageSequence)
	builder.AddItem(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.1"))
	builder.AddItem(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.2"))
	assert.Equal(t, 2, builder.Count())

	builder.Clear()
	assert.Equal(t, 0, builder.Count())

	builder.AddItem(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.3"))
	assert.Equal(t, 1, builder.Count())
}

func TestSequenceBuilder_AddDataset(t *testing.T) {
	builder := NewSequenceBuilder(tag.ReferencedImageSequence)
	ds1, _ := NewDataset(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.1"))
	ds2, _ := NewDataset(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.2"))

	builder.AddDataset(ds1).AddDataset(nil).AddDataset(ds2)
	assert.Equal(t, 2, builder.Count())

	result, err := builder.BuildDataset()
	require.NoError(t, err)
	assert.Len(t, GetSequenceItems(result, tag.ReferencedImageSequence), 2)
}

func TestSequenceBuilder_ErrorHandling(t *testing.T) {
	builder := NewSequenceBuilder(tag.ReferencedImageSequence)
	builder.AddItem(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.1"))
	// even groups can not hold private blocks
	builder.AddItem(WithPrivateElement(0x0010, "ACME", 0x01, vr.LO, "x"))

	assert.True(t, builder.HasErrors())
	require.Len(t, builder.Errors(), 1)
	assert.Equal(t, 1, builder.Count())

	_, err := builder.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")

	_, err = builder.BuildDataset()
	require.Error(t, err)
}

func TestSequenceBuilder_OutOfBounds(t *testing.T) {
	builder := NewSequenceBuilder(tag.ReferencedImageSequence)
	builder.AddItem(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.1"))

	builder.RemoveItem(10)
	assert.Equal(t, 1, builder.Count())
	builder.RemoveItem(-1)
	assert.Equal(t, 1, builder.Count())

	assert.Nil(t, builder.GetItem(10))
	assert.Nil(t, builder.GetItem(-1))

	newItem, _ := NewDataset(WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.9"))
	builder.ReplaceItem(10, newItem)
	assert.Equal(t, 1, builder.Count())
}
