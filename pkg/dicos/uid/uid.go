// Package uid classifies DICOM unique identifiers, derives new ones from
// UUIDs per ISO/IEC 9834-8 and regenerates instance UIDs across datasets.
package uid

import (
	"fmt"
	"strings"
)

// MaxLength is the longest UID the UI value representation can hold
const MaxLength = 64

// Type classifies a UID
type Type int

const (
	Unknown Type = iota
	TransferSyntax
	SOPClass
	MetaSOPClass
	SOPInstance
	ApplicationContextName
	CodingScheme
	FrameOfReference
	ServiceClass
	LDAP
	SynchronizationFrameOfReference
	MappingResource
	ContextGroupName
	ApplicationHostingModel
)

var typeNames = map[Type]string{
	Unknown:                         "Unknown",
	TransferSyntax:                  "Transfer Syntax",
	SOPClass:                        "SOP Class",
	MetaSOPClass:                    "Meta SOP Class",
	SOPInstance:                     "SOP Instance",
	ApplicationContextName:          "Application Context Name",
	CodingScheme:                    "Coding Scheme",
	FrameOfReference:                "Well-known frame of reference",
	ServiceClass:                    "Service Class",
	LDAP:                            "LDAP OID",
	SynchronizationFrameOfReference: "Synchronization Frame of Reference",
	MappingResource:                 "Mapping Resource",
	ContextGroupName:                "Context Group Name",
	ApplicationHostingModel:         "Application Hosting Model",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// UID is a dotted numeric identifier with its classification
type UID struct {
	Value   string
	Name    string
	Type    Type
	Retired bool
}

// New creates an unclassified UID
func New(value string) UID {
	return UID{Value: value, Name: value, Type: Unknown}
}

func (u UID) String() string {
	return u.Value
}

// IsZero reports whether the UID is empty
func (u UID) IsZero() bool {
	return u.Value == ""
}

// IsInstance reports whether the UID identifies a specific instance, or can
// not be classified, and so must be replaced when de-identifying
func (u UID) IsInstance() bool {
	return u.Type == SOPInstance || u.Type == Unknown
}

// Normalize drops the space and NUL padding of a UI value
func Normalize(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "\x00 ")
}

// Validate checks the dotted numeric form: at most 64 characters, non-empty
// components of digits without leading zeros
func Validate(value string) error {
	if value == "" {
		return fmt.Errorf("empty uid")
	}
	if len(value) > MaxLength {
		return fmt.Errorf("uid %q longer than %d characters", value, MaxLength)
	}
	for i, part := range strings.Split(value, ".") {
		if part == "" {
			return fmt.Errorf("uid %q: empty component %d", value, i)
		}
		if len(part) > 1 && part[0] == '0' {
			return fmt.Errorf("uid %q: component %d has a leading zero", value, i)
		}
		for _, c := range part {
			if c < '0' || c > '9' {
				return fmt.Errorf("uid %q: invalid character %q", value, c)
			}
		}
	}
	return nil
}

// Parse validates value and classifies it through the default registry
func Parse(value string) (UID, error) {
	value = Normalize(value)
	if err := Validate(value); err != nil {
		return UID{}, err
	}
	return Lookup(value), nil
}
