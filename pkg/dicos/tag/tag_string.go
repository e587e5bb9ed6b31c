package tag

import (
	"encoding/json"
	"fmt"
	"strings"
)

// String returns a string representation of the Tag (GGGG,EEEE) or
// (GGGG,EEEE:CREATOR) for creator-scoped tags
func (t Tag) String() string {
	if t.PrivateCreator != "" {
		return fmt.Sprintf("(%04X,%04X:%s)", t.Group, t.Element, t.PrivateCreator)
	}
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// PatternText returns the tag as pattern text without the creator suffix
func (t Tag) PatternText() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// MarshalJSON returns a JSON representation of the Tag
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// String returns the pattern as (gggg,eeee) with wildcard digits as x
func (m MaskedTag) String() string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(11)
	b.WriteByte('(')
	for i := 7; i >= 0; i-- {
		if i == 3 {
			b.WriteByte(',')
		}
		shift := uint(4 * i)
		if (m.Mask>>shift)&0xF == 0 {
			b.WriteByte('x')
			continue
		}
		b.WriteByte(hex[(m.Value>>shift)&0xF])
	}
	b.WriteByte(')')
	return b.String()
}

// MarshalJSON returns a JSON representation of the pattern
func (m MaskedTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
