package dicos

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Comparer compares datasets attribute by attribute. The zero value compares
// tags and values; set CompareVR to also require matching VRs.
//
// Equality recurses into sequence items, so the Go stack grows with the
// nesting depth of the datasets being compared.
type Comparer struct {
	CompareVR bool
}

// Equal reports whether two elements are equal.
//
// An element holding unresolved bulk data has unknown content and is equal
// to any element with the same tag. Sequences are equal when they have the
// same number of items and the items can be paired off, each item of a with
// a distinct equal item of b, regardless of item order.
func (c Comparer) Equal(a, b *Element) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if !sameTag(a.Tag, b.Tag) {
		return false
	}
	if c.CompareVR && a.VR != b.VR {
		return false
	}

	aSeq, bSeq := a.Kind() == KindSequence, b.Kind() == KindSequence
	switch {
	case aSeq && bSeq:
		return c.equalItems(a.Items(), b.Items())
	case aSeq != bSeq:
		return false
	}

	if isUnresolved(a) || isUnresolved(b) {
		return true
	}
	if ab, ok := rawBytes(a); ok {
		if bb, ok := rawBytes(b); ok {
			return bytes.Equal(ab, bb)
		}
	}
	return ValueText(a) == ValueText(b)
}

// equalItems pairs every item of a with a distinct equal item of b. Bulk
// leniency makes item equality non-transitive, so pairs are found by
// augmenting paths rather than first fit.
func (c Comparer) equalItems(a, b []*Dataset) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	eq := make([][]bool, n)
	for i := range a {
		eq[i] = make([]bool, n)
		for j := range b {
			eq[i][j] = c.EqualDatasets(a[i], b[j])
		}
	}
	owner := make([]int, n) // item of b -> paired item of a, -1 when free
	for j := range owner {
		owner[j] = -1
	}
	var assign func(i int, seen []bool) bool
	assign = func(i int, seen []bool) bool {
		for j := 0; j < n; j++ {
			if !eq[i][j] || seen[j] {
				continue
			}
			seen[j] = true
			if owner[j] < 0 || assign(owner[j], seen) {
				owner[j] = i
				return true
			}
		}
		return false
	}
	for i := range a {
		if !assign(i, make([]bool, n)) {
			return false
		}
	}
	return true
}

// EqualDatasets reports whether a and b hold the same tags with equal
// elements
func (c Comparer) EqualDatasets(a, b *Dataset) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Len() != b.Len() {
		return false
	}
	for _, elem := range a.Elements {
		other, ok := b.Get(elem.Tag)
		if !ok || !c.Equal(elem, other) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the element: its tag combined with its value text,
// the tag alone for sequences
func (c Comparer) Hash(elem *Element) uint64 {
	if elem == nil {
		return 0
	}
	th := tagHash(elem.Tag)
	if elem.Kind() == KindSequence {
		return th
	}
	if b, ok := rawBytes(elem); ok {
		return xxhash.Sum64(b)*31 + th
	}
	return xxhash.Sum64String(ValueText(elem))*31 + th
}

// HashDataset accumulates h = h*23 + Hash(elem) over the elements in tag
// order
func (c Comparer) HashDataset(ds *Dataset) uint64 {
	var h uint64
	if ds == nil {
		return h
	}
	for _, elem := range ds.Sorted() {
		h = h*23 + c.Hash(elem)
	}
	return h
}

func sameTag(a, b Tag) bool {
	return a.Group == b.Group && a.Element == b.Element
}

func tagHash(t Tag) uint64 {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], t.Uint32())
	return xxhash.Sum64(buf[:])
}

func isUnresolved(elem *Element) bool {
	bd, ok := elem.Value.(*BulkData)
	return ok && !bd.IsResolved()
}

func rawBytes(elem *Element) ([]byte, bool) {
	switch v := elem.Value.(type) {
	case []byte:
		return v, true
	case *BulkData:
		return v.Data(), v.IsResolved()
	}
	return nil, false
}
