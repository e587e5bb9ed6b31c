package dict

import (
	"slices"
	"strings"

	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vm"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

// Entry describes one dictionary tag or tag pattern
type Entry struct {
	// Tag is the lookup key for exact entries. For masked entries it is the
	// canonical tag with wildcard digits read as zero, for display.
	Tag tag.Tag
	// Mask is set for pattern entries such as (60xx,3000)
	Mask    *tag.MaskedTag
	Name    string
	Keyword string
	VRs     []vr.VR
	VM      vm.VM
	Retired bool
}

// NewEntry creates an exact entry
func NewEntry(t tag.Tag, name, keyword string, multiplicity vm.VM, retired bool, vrs ...vr.VR) *Entry {
	e := &Entry{
		Tag:     t,
		Name:    strings.TrimSpace(name),
		Keyword: strings.TrimSpace(keyword),
		VRs:     vrs,
		VM:      multiplicity,
		Retired: retired,
	}
	e.applyDefaults()
	return e
}

// NewMaskedEntry creates a pattern entry. creator scopes the entry to a
// private creator dictionary, empty for the standard scope.
func NewMaskedEntry(m tag.MaskedTag, creator, name, keyword string, multiplicity vm.VM, retired bool, vrs ...vr.VR) *Entry {
	e := &Entry{
		Tag:     m.Tag().WithCreator(creator),
		Name:    strings.TrimSpace(name),
		Keyword: strings.TrimSpace(keyword),
		VRs:     vrs,
		VM:      multiplicity,
		Retired: retired,
	}
	if !m.IsExact() {
		e.Mask = &m
	}
	e.applyDefaults()
	return e
}

// clone copies e, sharing nothing mutable with it
func (e *Entry) clone() *Entry {
	c := *e
	c.VRs = slices.Clone(e.VRs)
	if e.Mask != nil {
		m := *e.Mask
		c.Mask = &m
	}
	return &c
}

func (e *Entry) applyDefaults() {
	if len(e.VRs) == 0 {
		e.VRs = []vr.VR{vr.NONE}
	}
	if e.Name == "" {
		e.Name = e.TagText()
	}
	if e.Keyword == "" {
		e.Keyword = e.Name
	}
}

// IsMasked reports whether the entry is a pattern
func (e *Entry) IsMasked() bool {
	return e.Mask != nil
}

// Match reports whether t is described by this entry, ignoring scope
func (e *Entry) Match(t tag.Tag) bool {
	if e.Mask != nil {
		return e.Mask.Match(t)
	}
	return e.Tag.SameNumber(t)
}

// VR returns the first allowed VR
func (e *Entry) VR() vr.VR {
	return e.VRs[0]
}

// AllowsVR reports whether v is one of the allowed VRs
func (e *Entry) AllowsVR(v vr.VR) bool {
	for _, allowed := range e.VRs {
		if allowed == v {
			return true
		}
	}
	return false
}

// TagText renders the entry key, the pattern text for masked entries
func (e *Entry) TagText() string {
	if e.Mask != nil {
		return e.Mask.String()
	}
	return e.Tag.PatternText()
}

func (e *Entry) String() string {
	s := e.TagText() + " " + vr.JoinList(e.VRs) + " " + e.VM.String() + " " + e.Keyword
	if e.Tag.PrivateCreator != "" {
		s += " [" + e.Tag.PrivateCreator + "]"
	}
	if e.Retired {
		s += " (RET)"
	}
	return s
}
