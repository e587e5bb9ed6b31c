package tag

// FullMask matches every bit of a tag
const FullMask uint32 = 0xFFFFFFFF

// MaskedTag is a wildcard pattern over tags such as (60xx,3000) or
// (0029,xx10). A tag matches when (tag & Mask) == (Value & Mask). Mask
// bits always come in whole hex digits.
type MaskedTag struct {
	Value uint32
	Mask  uint32
}

// Match reports whether t matches the pattern
func (m MaskedTag) Match(t Tag) bool {
	return t.Uint32()&m.Mask == m.Value&m.Mask
}

// IsExact reports whether the pattern has no wildcard digits
func (m MaskedTag) IsExact() bool {
	return m.Mask == FullMask
}

// Tag returns the arithmetic-canonical tag of the pattern, wildcard digits
// read as zero
func (m MaskedTag) Tag() Tag {
	return FromUint32(m.Value & m.Mask)
}

// Wildcards returns the number of wildcard hex digits
func (m MaskedTag) Wildcards() int {
	n := 0
	for i := 0; i < 8; i++ {
		if (m.Mask>>(4*i))&0xF == 0 {
			n++
		}
	}
	return n
}
