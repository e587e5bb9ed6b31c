// Package dict holds DICOM data dictionaries: per-tag and per-pattern
// metadata for the standard scope and for private creator scopes, an XML
// descriptor loader and a dense index for exact-tag lookups.
package dict

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vm"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

// Standard is the scope key of the non-private dictionary
const Standard = ""

// Shared fallback entries returned by Lookup
var (
	UnknownEntry        = NewEntry(tag.New(0xFFFF, 0xFFFF), "Unknown", "Unknown", vm.OneToN, false, vr.UN)
	PrivateCreatorEntry = NewEntry(tag.New(0x0001, 0x0010), "Private Creator", "PrivateCreator", vm.One, false, vr.LO)
	GroupLengthEntry    = NewEntry(tag.New(0x0000, 0x0000), "Group Length", "GroupLength", vm.One, false, vr.UL)
)

// Dictionary maps tags to entries. Entries are registered in scopes: the
// Standard scope and one scope per private creator.
//
// A Dictionary is built by registrations, normally a single Load at start
// up, and read concurrently afterwards. Registration is not synchronized:
// callers must complete every Register and Load before concurrent lookups
// begin.
type Dictionary struct {
	scopes   map[string]*scope
	creators map[string]string
	keywords map[string]*Entry
	vms      *vm.Cache
	index    *Index
}

type scope struct {
	exact  map[uint32]*Entry
	masked []*Entry
}

// New creates an empty dictionary
func New() *Dictionary {
	d := &Dictionary{
		scopes:   map[string]*scope{Standard: newScope()},
		creators: map[string]string{},
		keywords: map[string]*Entry{},
		vms:      vm.NewCache(),
	}
	d.index = newIndex(d)
	return d
}

func newScope() *scope {
	return &scope{exact: map[uint32]*Entry{}}
}

// ResolvePrivateCreator returns the scope key for a private creator name.
// The same text always maps to the same key, compared case sensitively;
// surrounding padding is not significant.
func (d *Dictionary) ResolvePrivateCreator(name string) string {
	key := d.creatorKey(name)
	if key != Standard {
		if _, ok := d.creators[key]; !ok {
			d.creators[key] = key
		}
	}
	return key
}

// creatorKey normalizes a creator name without registering it
func (d *Dictionary) creatorKey(name string) string {
	name = strings.TrimSpace(name)
	if key, ok := d.creators[name]; ok {
		return key
	}
	return name
}

// PrivateCreators returns the creators with a registered scope, sorted
func (d *Dictionary) PrivateCreators() []string {
	out := make([]string, 0, len(d.scopes))
	for creator := range d.scopes {
		if creator != Standard {
			out = append(out, creator)
		}
	}
	slices.Sort(out)
	return out
}

// Register adds an entry to the scope named by its tag's private creator.
// Exact entries replace an earlier entry with the same key, pattern entries
// are appended and tried in registration order. In a creator scope the key
// of a private data element ignores its block, so (0029,1010) and
// (0029,1110) registered under one creator share a key and the later wins.
func (d *Dictionary) Register(e *Entry) {
	creator := d.ResolvePrivateCreator(e.Tag.PrivateCreator)
	if e.Tag.PrivateCreator != creator {
		e.Tag.PrivateCreator = creator
	}
	s, ok := d.scopes[creator]
	if !ok {
		s = newScope()
		d.scopes[creator] = s
	}
	if e.Mask != nil {
		s.masked = append(s.masked, e)
	} else {
		key := exactKey(e.Tag)
		if prev, ok := s.exact[key]; ok && prev.Tag != e.Tag {
			slog.Debug("private entry replaced by another block", "creator", creator, "replaced", prev.Tag.PatternText(), "by", e.Tag.PatternText())
		}
		s.exact[key] = e
	}
	if creator == Standard && e.Keyword != "" {
		d.keywords[e.Keyword] = e
	}
}

// Resolve returns the entry describing t. Tags without a private creator
// resolve in the Standard scope, tags with one only in that creator's scope.
// Exact entries win over patterns, patterns are tried in registration order.
// ok is false for unknown tags.
func (d *Dictionary) Resolve(t tag.Tag) (*Entry, bool) {
	t.PrivateCreator = d.creatorKey(t.PrivateCreator)
	s, found := d.scopes[t.PrivateCreator]
	if !found {
		return nil, false
	}
	if e, ok := s.exact[exactKey(t)]; ok {
		return e, true
	}
	for _, e := range s.masked {
		if e.Mask.Match(t) {
			return e, true
		}
	}
	return nil, false
}

// Lookup is Resolve with the standard fallbacks applied, it never returns
// nil: group lengths, private creator slots and finally UnknownEntry.
func (d *Dictionary) Lookup(t tag.Tag) *Entry {
	if e, ok := d.Resolve(t); ok {
		return e
	}
	switch {
	case t.IsGroupLength():
		return GroupLengthEntry
	case t.IsPrivateCreator():
		return PrivateCreatorEntry
	}
	return UnknownEntry
}

// KeywordLookup finds a Standard scope entry by keyword
func (d *Dictionary) KeywordLookup(keyword string) (*Entry, bool) {
	e, ok := d.keywords[keyword]
	return e, ok
}

// ParseVM parses multiplicity text with the dictionary's cache
func (d *Dictionary) ParseVM(text string) (vm.VM, error) {
	return d.vms.Parse(text)
}

// Len returns the number of registered entries
func (d *Dictionary) Len() int {
	n := 0
	for _, s := range d.scopes {
		n += len(s.exact) + len(s.masked)
	}
	return n
}

// All iterates entries scope by scope, Standard first and creators in
// sorted order. Within a scope exact entries come in tag order, then
// patterns in registration order.
func (d *Dictionary) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, creator := range append([]string{Standard}, d.PrivateCreators()...) {
			s := d.scopes[creator]
			for _, key := range slices.Sorted(maps.Keys(s.exact)) {
				if !yield(s.exact[key]) {
					return
				}
			}
			for _, e := range s.masked {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Merge registers a copy of every entry of other into d, preserving pattern
// order. other is only read, so several dictionaries may merge the same
// source concurrently.
func (d *Dictionary) Merge(other *Dictionary) {
	for e := range other.All() {
		d.Register(e.clone())
	}
}

// exactEntries returns the Standard scope exact entries of public tags
func (d *Dictionary) exactEntries() []*Entry {
	s := d.scopes[Standard]
	out := make([]*Entry, 0, len(s.exact))
	for _, e := range s.exact {
		if !e.Tag.IsPrivate() {
			out = append(out, e)
		}
	}
	return out
}

// exactKey folds a creator scoped private data element onto the first
// block, (gggg,xxyy) -> (gggg,10yy), since the block a creator lands in is
// assigned per dataset.
func exactKey(t tag.Tag) uint32 {
	if t.PrivateCreator != Standard && t.IsPrivateData() {
		return uint32(t.Group)<<16 | 0x1000 | uint32(t.BlockOffset())
	}
	return t.Uint32()
}
