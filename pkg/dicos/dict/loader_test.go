package dict

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vm"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<dictionaries>
  <dictionary name="DICOM">
    <tag group="0010" element="0010" keyword="PatientName" vr="PN" vm="1">Patient's Name</tag>
    <tag group="0028" element="0106" keyword="SmallestImagePixelValue" vr="US_SS" vm="1">Smallest Image Pixel Value</tag>
    <tag group="60xx" element="3000" keyword="OverlayData" vr="OB/OW" vm="1">Overlay Data</tag>
    <tag group="50xx" element="0005" keyword="CurveDimensions" vr="US" vm="1" retired="true">Curve Dimensions</tag>
    <tag group="FFFE" element="E000" keyword="Item" vm="1">Item</tag>
    <tag group="0008" element="0008" vr="CS" vm="2-n"></tag>
  </dictionary>
  <dictionary creator="ACME 1.0">
    <tag group="0029" element="xx10" keyword="AcmeBlob" vr="OB" vm="1">Acme Blob</tag>
  </dictionary>
</dictionaries>`

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader(sampleXML))
	require.NoError(t, err)
	assert.Equal(t, 7, d.Len())

	e, ok := d.Resolve(tag.PatientName)
	require.True(t, ok)
	assert.Equal(t, "Patient's Name", e.Name)
	assert.Equal(t, "PatientName", e.Keyword)
	assert.Equal(t, []vr.VR{vr.PN}, e.VRs)
	assert.Equal(t, vm.One, e.VM)
	assert.False(t, e.IsMasked())

	e, ok = d.Resolve(tag.New(0x0028, 0x0106))
	require.True(t, ok)
	assert.Equal(t, []vr.VR{vr.US, vr.SS}, e.VRs)

	e, ok = d.Resolve(tag.New(0x6004, 0x3000))
	require.True(t, ok)
	assert.Equal(t, "OverlayData", e.Keyword)
	assert.True(t, e.IsMasked())

	e, ok = d.Resolve(tag.New(0x5002, 0x0005))
	require.True(t, ok)
	assert.True(t, e.Retired)

	e, ok = d.Resolve(tag.Item)
	require.True(t, ok)
	assert.Equal(t, []vr.VR{vr.NONE}, e.VRs)

	e, ok = d.Resolve(tag.ImageType)
	require.True(t, ok)
	assert.Equal(t, "(0008,0008)", e.Name)
	assert.Equal(t, e.Name, e.Keyword)
	assert.Equal(t, 2, e.VM.Minimum)

	e, ok = d.Resolve(tag.NewPrivate(0x0029, 0x1210, "ACME 1.0"))
	require.True(t, ok)
	assert.Equal(t, "AcmeBlob", e.Keyword)
	assert.Equal(t, "ACME 1.0", e.Tag.PrivateCreator)
	_, ok = d.Resolve(tag.New(0x0029, 0x1210))
	assert.False(t, ok)
}

func TestLoad_SingleDictionaryRoot(t *testing.T) {
	d, err := Load(strings.NewReader(`<dictionary creator="X"><tag group="0011" element="xx01" vr="LO" vm="1">X One</tag></dictionary>`))
	require.NoError(t, err)
	_, ok := d.Resolve(tag.NewPrivate(0x0011, 0x1001, "X"))
	assert.True(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains string
		group    string
	}{
		{"empty", ``, "missing root", ""},
		{"bad root", `<tags><tag group="0010" element="0010" vm="1"/></tags>`, "unexpected root", ""},
		{"tag outside dictionary", `<dictionaries><tag group="0010" element="0010" vm="1"/></dictionaries>`, "outside", ""},
		{"missing group", `<dictionary><tag element="0010" vm="1"/></dictionary>`, "missing group", ""},
		{"missing element", `<dictionary><tag group="0010" vm="1"/></dictionary>`, "missing element", "0010"},
		{"missing vm", `<dictionary><tag group="0010" element="0010" vr="PN"/></dictionary>`, "missing vm", "0010"},
		{"bad vm", `<dictionary><tag group="0010" element="0020" vr="LO" vm="one"/></dictionary>`, "invalid vm", "0010"},
		{"bad tag", `<dictionary><tag group="00G0" element="0020" vr="LO" vm="1"/></dictionary>`, "invalid tag", "00G0"},
		{"not xml", `<dictionary><tag`, "dictionary format", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Load(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Nil(t, d)
			var dfe *DictionaryFormatError
			require.True(t, errors.As(err, &dfe), "%T", err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, tt.group, dfe.Group)
		})
	}
}

func TestLoad_BadVMKeepsGrammarError(t *testing.T) {
	_, err := Load(strings.NewReader(`<dictionary><tag group="0010" element="0020" vr="LO" vm="1-q"/></dictionary>`))
	var ge *vm.GrammarError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "1-q", ge.Text)
}

func TestDictionary_LoadIsAllOrNothing(t *testing.T) {
	d, err := Load(strings.NewReader(sampleXML))
	require.NoError(t, err)
	before := d.Len()

	err = d.Load(strings.NewReader(`<dictionary>
		<tag group="0011" element="0010" vr="LO" vm="1">Good</tag>
		<tag group="0011" element="0011" vr="LO">Bad</tag>
	</dictionary>`))
	require.Error(t, err)
	assert.Equal(t, before, d.Len())
	_, ok := d.Resolve(tag.New(0x0011, 0x0010))
	assert.False(t, ok)

	require.NoError(t, d.Load(strings.NewReader(`<dictionary><tag group="0011" element="0010" vr="LO" vm="1">Good</tag></dictionary>`)))
	assert.Equal(t, before+1, d.Len())
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Same(t, d, Default())

	e, ok := d.Resolve(tag.SOPInstanceUID)
	require.True(t, ok)
	assert.Equal(t, vr.UI, e.VR())

	e, ok = d.Resolve(tag.NewPrivate(0x0029, 0x1110, "SIEMENS CSA HEADER"))
	require.True(t, ok)
	assert.Equal(t, "CSAImageHeaderInfo", e.Keyword)

	e, ok = d.Resolve(tag.PixelData)
	require.True(t, ok)
	assert.False(t, e.IsMasked(), "exact (7FE0,0010) wins over (7Fxx,0010)")
	e, ok = d.Resolve(tag.New(0x7F20, 0x0010))
	require.True(t, ok)
	assert.Equal(t, "VariablePixelData", e.Keyword)
}
