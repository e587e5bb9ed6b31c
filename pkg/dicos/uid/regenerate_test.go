package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/dicomdict/pkg/dicos"
	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/transfer"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

func stringValue(t *testing.T, ds *dicos.Dataset, tg dicos.Tag) string {
	t.Helper()
	elem, ok := ds.Get(tg)
	require.True(t, ok, tg.String())
	s, ok := elem.GetString()
	require.True(t, ok, tg.String())
	return s
}

func TestRegenerateAll_Nested(t *testing.T) {
	// instance uid three sequence levels down
	level3, err := dicos.NewDataset(
		dicos.WithElement(tag.ReferencedSOPClassUID, CTImageStorage.Value),
		dicos.WithElement(tag.ReferencedSOPInstanceUID, "1.2.3.3"),
	)
	require.NoError(t, err)
	level2, err := dicos.NewDataset(dicos.WithSequence(tag.SourceImageSequence, level3))
	require.NoError(t, err)
	level1, err := dicos.NewDataset(dicos.WithSequence(tag.ReferencedImageSequence, level2))
	require.NoError(t, err)
	ds, err := dicos.NewDataset(
		dicos.WithFileMeta(CTImageStorage.Value, "1.2.3.1", string(transfer.ExplicitVRLittleEndian)),
		dicos.WithElement(tag.SOPClassUID, CTImageStorage.Value),
		dicos.WithElement(tag.SOPInstanceUID, "1.2.3.1\x00"),
		dicos.WithElement(tag.StudyInstanceUID, "1.2.3.2"),
		dicos.WithElement(tag.PatientName, "1.2.3.1"),
		dicos.WithSequence(tag.ReferencedSeriesSequence, level1),
	)
	require.NoError(t, err)

	g := NewGenerator()
	replaced := g.RegenerateAll(ds)

	// SOP instance, study, media storage instance, nested instance, and the
	// implementation class uid, which is not registered
	assert.Equal(t, 5, replaced)

	sop := stringValue(t, ds, tag.SOPInstanceUID)
	assert.Equal(t, g.GenerateValue("1.2.3.1"), sop)
	assert.Equal(t, sop, stringValue(t, ds, tag.MediaStorageSOPInstanceUID))
	assert.Equal(t, g.GenerateValue("1.2.3.2"), stringValue(t, ds, tag.StudyInstanceUID))

	nested := dicos.GetSequenceItems(ds, tag.ReferencedSeriesSequence)[0]
	nested = dicos.GetSequenceItems(nested, tag.ReferencedImageSequence)[0]
	nested = dicos.GetSequenceItems(nested, tag.SourceImageSequence)[0]
	assert.Equal(t, g.GenerateValue("1.2.3.3"), stringValue(t, nested, tag.ReferencedSOPInstanceUID))

	// classes, transfer syntaxes and non UI elements are untouched
	assert.Equal(t, CTImageStorage.Value, stringValue(t, ds, tag.SOPClassUID))
	assert.Equal(t, CTImageStorage.Value, stringValue(t, nested, tag.ReferencedSOPClassUID))
	assert.Equal(t, string(transfer.ExplicitVRLittleEndian), stringValue(t, ds, tag.TransferSyntaxUID))
	assert.Equal(t, "1.2.3.1", stringValue(t, ds, tag.PatientName))
	assert.Equal(t, 4, g.Len())
}

func TestRegenerateAll_MultiValued(t *testing.T) {
	ds, err := dicos.NewDataset(
		dicos.WithElementVR(tag.New(0x0008, 0x001A), vr.UI, `1.2.3.1\`+CTImageStorage.Value+`\1.2.3.2`),
		dicos.WithElementVR(tag.New(0x0008, 0x0014), vr.UI, []string{"1.2.3.1", ""}),
	)
	require.NoError(t, err)

	g := NewGenerator()
	assert.Equal(t, 3, g.RegenerateAll(ds))

	want := g.GenerateValue("1.2.3.1") + `\` + CTImageStorage.Value + `\` + g.GenerateValue("1.2.3.2")
	assert.Equal(t, want, stringValue(t, ds, tag.New(0x0008, 0x001A)))

	elem, _ := ds.Get(tag.New(0x0008, 0x0014))
	assert.Equal(t, []string{g.GenerateValue("1.2.3.1"), ""}, elem.Value)
}

func TestRegenerateAll_Registry(t *testing.T) {
	ds, err := dicos.NewDataset(
		dicos.WithElement(tag.SOPInstanceUID, "1.2.3.1"),
		dicos.WithElement(tag.FrameOfReferenceUID, "1.2.3.9"),
	)
	require.NoError(t, err)

	r := NewRegistry(UID{Value: "1.2.3.9", Name: "Site Frame", Type: FrameOfReference})
	g := NewGenerator(WithRegistry(r))
	assert.Equal(t, 1, g.RegenerateAll(ds))
	assert.Equal(t, "1.2.3.9", stringValue(t, ds, tag.FrameOfReferenceUID))
}

func TestRegenerateAll_Stable(t *testing.T) {
	a, err := dicos.NewDataset(dicos.WithElement(tag.SOPInstanceUID, "1.2.3.1"))
	require.NoError(t, err)
	b := dicos.CloneDataset(a)

	g := NewGenerator()
	g.RegenerateAll(a)
	g.RegenerateAll(b)
	assert.True(t, dicos.Comparer{}.EqualDatasets(a, b))
	assert.Equal(t, 0, g.RegenerateAll(nil))
}
