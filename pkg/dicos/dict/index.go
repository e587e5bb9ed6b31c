package dict

import (
	"sync"

	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
)

// Index is a dense [group][element] table over the exact, public tags of a
// dictionary. It trades memory for lookups that avoid hashing: each row is
// sized to the largest element seen in that group. Patterns and private
// creator tags are never indexed and must go through Dictionary.Resolve.
//
// The table is built on first use from the entries registered at that time
// and is read without locking afterwards.
type Index struct {
	once sync.Once
	src  *Dictionary
	rows [][]*tag.Tag
	n    int
}

func newIndex(d *Dictionary) *Index {
	return &Index{src: d}
}

// Index returns the dictionary's lookup index, building it on first call.
// Entries registered after the first lookup are not indexed.
func (d *Dictionary) Index() *Index {
	d.index.once.Do(d.index.build)
	return d.index
}

// Canonical returns the canonical tag for (group, element), trying the index
// before full resolution
func (d *Dictionary) Canonical(group, element uint16) (*tag.Tag, bool) {
	if t := d.Index().Lookup(group, element); t != nil {
		return t, true
	}
	if e, ok := d.Resolve(tag.New(group, element)); ok {
		return &e.Tag, true
	}
	return nil, false
}

func (ix *Index) build() {
	entries := ix.src.exactEntries()
	if len(entries) == 0 {
		return
	}

	var maxGroup uint16
	maxElement := map[uint16]uint16{}
	for _, e := range entries {
		g, el := e.Tag.Group, e.Tag.Element
		if g > maxGroup {
			maxGroup = g
		}
		if cur, ok := maxElement[g]; !ok || el > cur {
			maxElement[g] = el
		}
	}

	rows := make([][]*tag.Tag, int(maxGroup)+1)
	for g, el := range maxElement {
		rows[g] = make([]*tag.Tag, int(el)+1)
	}
	for _, e := range entries {
		slot := &rows[e.Tag.Group][e.Tag.Element]
		if *slot == nil {
			*slot = &e.Tag
			ix.n++
		}
	}
	ix.rows = rows
}

// Lookup returns the canonical tag for (group, element) or nil
func (ix *Index) Lookup(group, element uint16) *tag.Tag {
	if int(group) >= len(ix.rows) {
		return nil
	}
	row := ix.rows[group]
	if int(element) >= len(row) {
		return nil
	}
	return row[element]
}

// Len returns the number of indexed tags
func (ix *Index) Len() int {
	return ix.n
}
