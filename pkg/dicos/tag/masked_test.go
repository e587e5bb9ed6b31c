package tag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaskedParts(t *testing.T) {
	tests := []struct {
		group, element string
		value, mask    uint32
	}{
		{"0010", "0010", 0x00100010, 0xFFFFFFFF},
		{"60xx", "3000", 0x60003000, 0xFF00FFFF},
		{"0029", "xx10", 0x00290010, 0xFFFF00FF},
		{"xxxx", "0010", 0x00000010, 0x0000FFFF},
		{"1000", "xxx0", 0x10000000, 0xFFFF000F},
		{"50XX", "0005", 0x50000005, 0xFF00FFFF},
	}
	for _, tt := range tests {
		t.Run(tt.group+","+tt.element, func(t *testing.T) {
			m, err := ParseMaskedParts(tt.group, tt.element)
			require.NoError(t, err)
			assert.Equal(t, tt.value, m.Value)
			assert.Equal(t, tt.mask, m.Mask)
		})
	}
}

func TestParseMasked_Errors(t *testing.T) {
	for _, in := range []string{"(60x,3000)", "(60xx,30000)", "(60yy,3000)", "60xx", "60xx300", "(,)", "(60xx,3000", "60xx,3000)"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseMasked(in)
			require.Error(t, err)
			var mpe *MalformedPatternError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, in, mpe.Text)
		})
	}
}

func TestMaskedTag_Match(t *testing.T) {
	m := MustParseMasked("(xxxx,0010)")
	assert.True(t, m.Match(New(0x0009, 0x0010)))
	assert.True(t, m.Match(New(0x7FE1, 0x0010)))
	assert.False(t, m.Match(New(0x0009, 0x0011)))

	overlay := MustParseMasked("(60xx,3000)")
	assert.True(t, overlay.Match(New(0x6000, 0x3000)))
	assert.True(t, overlay.Match(New(0x60FE, 0x3000)))
	assert.False(t, overlay.Match(New(0x6100, 0x3000)))
	assert.False(t, overlay.Match(New(0x6002, 0x3001)))
}

func TestMaskedTag_RoundTrip(t *testing.T) {
	for _, tg := range []Tag{PatientName, PixelData, New(0xFFFE, 0xE0DD), New(0x0029, 0x10AB), New(0, 0)} {
		m, err := ParseMasked(tg.PatternText())
		require.NoError(t, err)
		assert.True(t, m.IsExact())
		assert.True(t, m.Match(tg), tg.String())
		assert.Equal(t, tg.Masked(), m)
	}
}

func TestMaskedTag_WildcardSubsetsStayStrict(t *testing.T) {
	tg := New(0x1234, 0x5678)
	// wildcard every subset of the 8 digits, then flip one concrete digit
	for subset := 0; subset < 256; subset++ {
		var mask uint32
		for d := 0; d < 8; d++ {
			if subset&(1<<d) == 0 {
				mask |= 0xF << (4 * d)
			}
		}
		m := MaskedTag{Value: tg.Uint32(), Mask: mask}
		require.True(t, m.Match(tg))
		for d := 0; d < 8; d++ {
			if subset&(1<<d) != 0 {
				continue
			}
			other := FromUint32(tg.Uint32() ^ (0x1 << (4 * d)))
			assert.False(t, m.Match(other), "mask %08X matched %s", mask, other)
		}
	}
}

func TestMaskedTag_String(t *testing.T) {
	assert.Equal(t, "(60xx,3000)", MustParseMasked("60XX,3000").String())
	assert.Equal(t, "(0029,xx1A)", MustParseMasked("(0029,xx1a)").String())
	assert.Equal(t, "(0010,0010)", PatientName.Masked().String())
	assert.Equal(t, 2, MustParseMasked("(60xx,3000)").Wildcards())
}

func TestMaskedTag_Tag(t *testing.T) {
	m := MustParseMasked("(60xx,3000)")
	assert.Equal(t, New(0x6000, 0x3000), m.Tag())
	assert.False(t, m.IsExact())
	assert.True(t, IsWildcard("60xx"))
	assert.False(t, IsWildcard("6000"))
}
