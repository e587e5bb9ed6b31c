package tag

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
	}{
		{"(0010,0010)", New(0x0010, 0x0010)},
		{"7FE0,0010", New(0x7FE0, 0x0010)},
		{"00080018", New(0x0008, 0x0018)},
		{" (0008,103e) ", New(0x0008, 0x103E)},
		{"(0029,1010:SIEMENS CSA HEADER)", NewPrivate(0x0029, 0x1010, "SIEMENS CSA HEADER")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "(0010)", "(001G,0010)", "0010,00100", "(xx10,0010)", "0010001", "(0010,0010", "0010,0010)", "((0010,0010))", "(0029,1010:ACME"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			var mpe *MalformedPatternError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, in, mpe.Text)
		})
	}
}

func TestTag_Compare(t *testing.T) {
	tags := []Tag{
		New(0x0010, 0x0020),
		New(0x0008, 0x0018),
		NewPrivate(0x0009, 0x1010, "B"),
		NewPrivate(0x0009, 0x1010, "A"),
		New(0x0008, 0x0016),
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Less(tags[j]) })
	assert.Equal(t, []Tag{
		New(0x0008, 0x0016),
		New(0x0008, 0x0018),
		NewPrivate(0x0009, 0x1010, "A"),
		NewPrivate(0x0009, 0x1010, "B"),
		New(0x0010, 0x0020),
	}, tags)
}

func TestTag_PrivateIdentity(t *testing.T) {
	a := NewPrivate(0x0029, 0x1010, "ACME")
	b := NewPrivate(0x0029, 0x1010, "OTHER")
	assert.False(t, a.Equals(b))
	assert.True(t, a.SameNumber(b))
	assert.False(t, a.Equals(New(0x0029, 0x1010)))

	m := map[Tag]int{a: 1, b: 2}
	assert.Len(t, m, 2)
}

func TestTag_PrivateBlock(t *testing.T) {
	data := New(0x0029, 0x1110)
	assert.True(t, data.IsPrivate())
	assert.True(t, data.IsPrivateData())
	assert.False(t, data.IsPrivateCreator())

	slot, ok := data.PrivateBlock()
	require.True(t, ok)
	assert.Equal(t, New(0x0029, 0x0011), slot)
	assert.True(t, slot.IsPrivateCreator())
	assert.Equal(t, uint16(0x0010), data.BlockOffset())

	_, ok = PatientName.PrivateBlock()
	assert.False(t, ok)
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "(7FE0,0010)", PixelData.String())
	assert.Equal(t, "(0029,1010:ACME)", NewPrivate(0x0029, 0x1010, "ACME").String())
	assert.Equal(t, "(0029,1010)", NewPrivate(0x0029, 0x1010, "ACME").PatternText())

	j, err := json.Marshal(PatientID)
	require.NoError(t, err)
	assert.Equal(t, `"(0010,0020)"`, string(j))
}

func TestTag_Uint32(t *testing.T) {
	assert.Equal(t, uint32(0x7FE00010), PixelData.Uint32())
	assert.Equal(t, PixelData, FromUint32(0x7FE00010))
}
