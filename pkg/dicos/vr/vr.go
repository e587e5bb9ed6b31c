// Package vr defines DICOM Value Representations
package vr

import "strings"

// VR represents a DICOM Value Representation
type VR string

// Standard DICOM Value Representations
const (
	AE VR = "AE" // Application Entity (16 bytes max)
	AS VR = "AS" // Age String (4 bytes fixed)
	AT VR = "AT" // Attribute Tag (4 bytes fixed)
	CS VR = "CS" // Code String (16 bytes max)
	DA VR = "DA" // Date (8 bytes fixed)
	DS VR = "DS" // Decimal String (16 bytes max)
	DT VR = "DT" // DateTime (26 bytes max)
	FL VR = "FL" // Floating Point Single (4 bytes fixed)
	FD VR = "FD" // Floating Point Double (8 bytes fixed)
	IS VR = "IS" // Integer String (12 bytes max)
	LO VR = "LO" // Long String (64 bytes max)
	LT VR = "LT" // Long Text (10240 bytes max)
	OB VR = "OB" // Other Byte String
	OD VR = "OD" // Other Double String
	OF VR = "OF" // Other Float String
	OL VR = "OL" // Other Long
	OW VR = "OW" // Other Word String
	PN VR = "PN" // Person Name (64 bytes max per component)
	SH VR = "SH" // Short String (16 bytes max)
	SL VR = "SL" // Signed Long (4 bytes fixed)
	SQ VR = "SQ" // Sequence of Items
	SS VR = "SS" // Signed Short (2 bytes fixed)
	ST VR = "ST" // Short Text (1024 bytes max)
	TM VR = "TM" // Time (16 bytes max)
	UC VR = "UC" // Unlimited Characters
	UI VR = "UI" // Unique Identifier (64 bytes max)
	UL VR = "UL" // Unsigned Long (4 bytes fixed)
	UN VR = "UN" // Unknown
	UR VR = "UR" // Universal Resource Identifier
	US VR = "US" // Unsigned Short (2 bytes fixed)
	UT VR = "UT" // Unlimited Text
	UV VR = "UV" // Unsigned Very Long (8 bytes fixed)
	SV VR = "SV" // Signed Very Long (8 bytes fixed)
	OV VR = "OV" // Other Very Long

	// NONE marks dictionary entries that carry no value, such as item delimiters
	NONE VR = "NONE"
)

// listSeparators are the characters a dictionary descriptor may use between
// alternative VRs, e.g. "US_SS" or "OB/OW"
const listSeparators = "_/\\,|"

// Parse returns the VR for a two letter code, ok is false for unknown codes
func Parse(code string) (VR, bool) {
	v := VR(strings.ToUpper(strings.TrimSpace(code)))
	switch v {
	case AE, AS, AT, CS, DA, DS, DT, FL, FD, IS, LO, LT, OB, OD, OF, OL, OV, OW,
		PN, SH, SL, SQ, SS, ST, SV, TM, UC, UI, UL, UN, UR, US, UT, UV, NONE:
		return v, true
	}
	return v, false
}

// ParseList splits a descriptor VR list such as "US_SS" or "OB/OW" into its
// alternatives. Empty input yields [NONE], never an empty list.
func ParseList(text string) []VR {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(listSeparators, r) || r == ' '
	})
	if len(fields) == 0 {
		return []VR{NONE}
	}
	out := make([]VR, 0, len(fields))
	for _, f := range fields {
		out = append(out, VR(strings.ToUpper(f)))
	}
	return out
}

// JoinList renders VR alternatives the way descriptors write them
func JoinList(vrs []VR) string {
	parts := make([]string, len(vrs))
	for i, v := range vrs {
		parts[i] = string(v)
	}
	return strings.Join(parts, "/")
}

// IsString returns true if this VR contains string data
func (v VR) IsString() bool {
	switch v {
	case AE, AS, CS, DA, DS, DT, IS, LO, LT, PN, SH, ST, TM, UC, UI, UR, UT:
		return true
	default:
		return false
	}
}

// IsBinary returns true if this VR contains binary data
func (v VR) IsBinary() bool {
	switch v {
	case AT, FL, FD, OB, OD, OF, OL, OV, OW, SL, SS, SV, UL, UN, US, UV:
		return true
	default:
		return false
	}
}

// IsSequence returns true if this is a sequence VR
func (v VR) IsSequence() bool {
	return v == SQ
}

// IsUID returns true if values of this VR are unique identifiers
func (v VR) IsUID() bool {
	return v == UI
}

// ValueSize returns the fixed size in bytes for fixed-size VRs, or 0 for variable
func (v VR) ValueSize() int {
	switch v {
	case AT:
		return 4
	case FL:
		return 4
	case FD:
		return 8
	case SL:
		return 4
	case SS:
		return 2
	case UL:
		return 4
	case US:
		return 2
	case SV, UV:
		return 8
	default:
		return 0 // Variable
	}
}
