package dicos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpfielding/dicomdict/pkg/dicos/dict"
	"github.com/jpfielding/dicomdict/pkg/dicos/tag"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

// SkipItems can be returned by a WalkFunc to skip the items of the sequence
// element it was called with
var SkipItems = errors.New("skip sequence items")

// WalkFunc is called by Walk for every element, depth is 0 for the top
// level dataset and grows by one per sequence level.
type WalkFunc func(elem *Element, depth int) error

// Walk visits every element of ds depth first: elements in tag order, and
// after a sequence element the elements of each of its items in item order.
// Nesting depth is bounded only by memory; an explicit stack is used
// instead of recursion.
func Walk(ds *Dataset, fn WalkFunc) error {
	type frame struct {
		elem  *Element
		depth int
	}
	var stack []frame
	push := func(ds *Dataset, depth int) {
		elems := ds.Sorted()
		for i := len(elems) - 1; i >= 0; i-- {
			stack = append(stack, frame{elems[i], depth})
		}
	}
	if ds == nil {
		return nil
	}
	push(ds, 0)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		err := fn(f.elem, f.depth)
		if errors.Is(err, SkipItems) {
			continue
		}
		if err != nil {
			return err
		}
		items := f.elem.Items()
		for i := len(items) - 1; i >= 0; i-- {
			if items[i] != nil {
				push(items[i], f.depth+1)
			}
		}
	}
	return nil
}

// PrivateCreator returns the creator that reserved the block of a private
// data element (gggg,xxyy), read from the sibling slot (gggg,00xx).
func (ds *Dataset) PrivateCreator(t Tag) (string, bool) {
	slot, ok := t.PrivateBlock()
	if !ok {
		return "", false
	}
	elem, ok := ds.Get(slot)
	if !ok {
		return "", false
	}
	s, ok := elem.GetString()
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(trimValue(s))
	return s, s != ""
}

// Resolve returns the dictionary entry describing t in the context of this
// dataset: a private data element is resolved in the scope of the creator
// that reserved its block. It never returns nil.
func (ds *Dataset) Resolve(t Tag, d *dict.Dictionary) *dict.Entry {
	if creator, ok := ds.PrivateCreator(t); ok {
		if e, found := d.Resolve(t.WithCreator(creator)); found {
			return e
		}
	}
	return d.Lookup(tag.New(t.Group, t.Element))
}

// ReservePrivateBlock returns the block number reserved by creator in group,
// reserving the first free slot (gggg,0010-00FF) when the creator has none.
func (ds *Dataset) ReservePrivateBlock(group uint16, creator string) (uint16, error) {
	if group%2 == 0 {
		return 0, fmt.Errorf("group %04X is not private", group)
	}
	creator = strings.TrimSpace(creator)
	if creator == "" {
		return 0, fmt.Errorf("empty private creator")
	}
	free := uint16(0)
	for block := uint16(0x0010); block <= 0x00FF; block++ {
		elem, ok := ds.FindElement(group, block)
		if !ok {
			if free == 0 {
				free = block
			}
			continue
		}
		if s, _ := elem.GetString(); strings.TrimSpace(trimValue(s)) == creator {
			return block, nil
		}
	}
	if free == 0 {
		return 0, fmt.Errorf("no free private block in group %04X", group)
	}
	ds.Put(&Element{Tag: tag.New(group, free), VR: vr.LO, Value: creator})
	return free, nil
}

// PrivateTag returns the dataset tag of the private element at offset in
// creator's block, reserving the block as needed
func (ds *Dataset) PrivateTag(group uint16, creator string, offset uint8) (Tag, error) {
	block, err := ds.ReservePrivateBlock(group, creator)
	if err != nil {
		return Tag{}, err
	}
	return tag.New(group, block<<8|uint16(offset)), nil
}
