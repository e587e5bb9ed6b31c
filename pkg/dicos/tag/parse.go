package tag

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedPatternError is returned when tag or tag pattern text can not be
// parsed. Text holds the offending literal.
type MalformedPatternError struct {
	Text string
	Msg  string
	Err  error
}

func (e *MalformedPatternError) Error() string {
	msg := fmt.Sprintf("malformed tag pattern %q", e.Text)
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedPatternError) Unwrap() error {
	return e.Err
}

// Parse parses an exact tag from "(gggg,eeee)", "gggg,eeee" or "ggggeeee".
// A private creator may follow the element: "(0029,1010:SIEMENS CSA HEADER)".
func Parse(text string) (Tag, error) {
	inner, err := stripParens(strings.TrimSpace(text))
	if err != nil {
		return Tag{}, &MalformedPatternError{Text: text, Err: err}
	}
	body, creator := splitCreator(inner)
	g, e, err := splitParts(body)
	if err != nil {
		return Tag{}, &MalformedPatternError{Text: text, Err: err}
	}
	group, err := strconv.ParseUint(g, 16, 16)
	if err != nil || len(g) != 4 {
		return Tag{}, &MalformedPatternError{Text: text, Msg: "invalid group", Err: err}
	}
	element, err := strconv.ParseUint(e, 16, 16)
	if err != nil || len(e) != 4 {
		return Tag{}, &MalformedPatternError{Text: text, Msg: "invalid element", Err: err}
	}
	return NewPrivate(uint16(group), uint16(element), creator), nil
}

// MustParse is like Parse but panics on error
func MustParse(text string) Tag {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseMaskedParts parses a pattern from its 4-digit group and element texts.
// Digits may be x or X to mark a wildcard.
func ParseMaskedParts(group, element string) (MaskedTag, error) {
	gv, gm, err := parseMaskedWord(group)
	if err != nil {
		return MaskedTag{}, err
	}
	ev, em, err := parseMaskedWord(element)
	if err != nil {
		return MaskedTag{}, err
	}
	return MaskedTag{
		Value: uint32(gv)<<16 | uint32(ev),
		Mask:  uint32(gm)<<16 | uint32(em),
	}, nil
}

// ParseMasked parses "(gggg,eeee)", "gggg,eeee" or "ggggeeee" with optional
// wildcard digits.
func ParseMasked(text string) (MaskedTag, error) {
	inner, err := stripParens(strings.TrimSpace(text))
	if err != nil {
		return MaskedTag{}, &MalformedPatternError{Text: text, Err: err}
	}
	g, e, err := splitParts(inner)
	if err != nil {
		return MaskedTag{}, &MalformedPatternError{Text: text, Err: err}
	}
	m, err := ParseMaskedParts(g, e)
	if err != nil {
		return MaskedTag{}, &MalformedPatternError{Text: text, Err: err}
	}
	return m, nil
}

// MustParseMasked is like ParseMasked but panics on error
func MustParseMasked(text string) MaskedTag {
	m, err := ParseMasked(text)
	if err != nil {
		panic(err)
	}
	return m
}

// IsWildcard reports whether a group or element text contains a wildcard digit
func IsWildcard(text string) bool {
	return strings.ContainsAny(text, "xX")
}

// parseMaskedWord turns 4 hex/wildcard digits into a value and a mask, a
// concrete digit contributes 0xF to the mask, a wildcard contributes 0.
func parseMaskedWord(text string) (value, mask uint16, err error) {
	s := strings.TrimSpace(text)
	if len(s) != 4 {
		return 0, 0, &MalformedPatternError{Text: text, Msg: "expected 4 digits"}
	}
	for i := 0; i < 4; i++ {
		value <<= 4
		mask <<= 4
		c := s[i]
		switch {
		case c == 'x' || c == 'X':
		case c >= '0' && c <= '9':
			value |= uint16(c - '0')
			mask |= 0xF
		case c >= 'a' && c <= 'f':
			value |= uint16(c-'a') + 10
			mask |= 0xF
		case c >= 'A' && c <= 'F':
			value |= uint16(c-'A') + 10
			mask |= 0xF
		default:
			return 0, 0, &MalformedPatternError{Text: text, Msg: fmt.Sprintf("invalid digit %q", c)}
		}
	}
	return value, mask, nil
}

// splitParts splits the group from the element on the first comma, or at
// the midpoint when no comma is present.
func splitParts(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ','); i >= 0 {
		g, e := strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
		if len(g)+len(e) < 8 {
			return "", "", fmt.Errorf("expected 8 digits, got %d", len(g)+len(e))
		}
		return g, e, nil
	}
	if len(s) != 8 {
		return "", "", fmt.Errorf("ambiguous group/element split of %d characters", len(s))
	}
	return s[:4], s[4:], nil
}

func splitCreator(s string) (string, string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// stripParens removes one enclosing pair of parentheses, rejecting a lone
// opening or closing one
func stripParens(s string) (string, error) {
	open, closed := strings.HasPrefix(s, "("), strings.HasSuffix(s, ")")
	switch {
	case open && closed:
		return s[1 : len(s)-1], nil
	case open || closed:
		return "", fmt.Errorf("unbalanced parentheses")
	}
	return s, nil
}
