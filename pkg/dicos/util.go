package dicos

import (
	"fmt"
	"strconv"
	"strings"
)

// splitMulti breaks a backslash separated multi-value string
func splitMulti(s string) []string {
	return strings.Split(s, `\`)
}

// trimValue drops the space and NUL padding of an even length string value
func trimValue(s string) string {
	return strings.TrimRight(s, " \x00")
}

// ValueText joins the element's values into their textual form, values
// separated by backslash as on the wire. Sequences and unresolved bulk data
// have no textual form and return "".
func ValueText(elem *Element) string {
	switch v := elem.Value.(type) {
	case nil:
		return ""
	case string:
		return trimValue(v)
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = trimValue(s)
		}
		return strings.Join(parts, `\`)
	case []byte:
		return string(v)
	case *BulkData:
		return string(v.Data())
	case *PixelData:
		var b strings.Builder
		for _, f := range v.Frames {
			if v.IsEncapsulated {
				b.Write(f.CompressedData)
				continue
			}
			b.WriteString(joinNumbers(f.Data))
		}
		return b.String()
	case []*Dataset:
		return ""
	case []uint16:
		return joinNumbers(v)
	case []uint32:
		return joinNumbers(v)
	case []int:
		return joinNumbers(v)
	case []int16:
		return joinNumbers(v)
	case []int32:
		return joinNumbers(v)
	case []float32:
		return joinFloats(v, 32)
	case []float64:
		return joinFloats(v, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []Tag:
		parts := make([]string, len(v))
		for i, t := range v {
			parts[i] = t.String()
		}
		return strings.Join(parts, `\`)
	}
	return fmt.Sprintf("%v", elem.Value)
}

func joinNumbers[T ~int | ~int16 | ~int32 | ~uint16 | ~uint32](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, `\`)
}

func joinFloats[T ~float32 | ~float64](vals []T, bits int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, bits)
	}
	return strings.Join(parts, `\`)
}
