package vr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		in   string
		want []VR
	}{
		{"UI", []VR{UI}},
		{"US_SS", []VR{US, SS}},
		{"OB/OW", []VR{OB, OW}},
		{`US\SS\OW`, []VR{US, SS, OW}},
		{"us,ss|ow", []VR{US, SS, OW}},
		{"", []VR{NONE}},
		{"  ", []VR{NONE}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	v, ok := Parse("ui")
	assert.True(t, ok)
	assert.Equal(t, UI, v)

	_, ok = Parse("ZZ")
	assert.False(t, ok)
}

func TestVR_Kinds(t *testing.T) {
	assert.True(t, UI.IsUID())
	assert.True(t, UI.IsString())
	assert.False(t, OB.IsUID())
	assert.True(t, SQ.IsSequence())
	assert.True(t, UV.IsBinary())
	assert.Equal(t, 8, SV.ValueSize())
	assert.Equal(t, 0, OB.ValueSize())
	assert.Equal(t, "OB/OW", JoinList([]VR{OB, OW}))
}
