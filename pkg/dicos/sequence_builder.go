package dicos

import (
	"errors"
	"fmt"
)

// SequenceBuilder assembles the items of a sequence element.
//
// Errors from AddItem are collected and reported by Build, so item
// construction can be chained:
//
//	opt, err := dicos.NewSequenceBuilder(tag.ReferencedImageSequence).
//		AddItem(
//			dicos.WithElement(tag.ReferencedSOPClassUID, sopClass),
//			dicos.WithElement(tag.ReferencedSOPInstanceUID, instance),
//		).
//		Build()
type SequenceBuilder struct {
	tag   Tag
	items []*Dataset
	errs  []error
}

// NewSequenceBuilder creates a new sequence builder for the specified tag
func NewSequenceBuilder(t Tag) *SequenceBuilder {
	return &SequenceBuilder{tag: t}
}

// AddItem adds an item built from opts
func (sb *SequenceBuilder) AddItem(opts ...Option) *SequenceBuilder {
	item, err := NewDataset(opts...)
	if err != nil {
		sb.errs = append(sb.errs, fmt.Errorf("item %d: %w", len(sb.items)+len(sb.errs), err))
		return sb
	}
	sb.items = append(sb.items, item)
	return sb
}

// AddDataset adds an already constructed item, nil is ignored
func (sb *SequenceBuilder) AddDataset(ds *Dataset) *SequenceBuilder {
	if ds != nil {
		sb.items = append(sb.items, ds)
	}
	return sb
}

// Count returns the number of items currently in the sequence
func (sb *SequenceBuilder) Count() int {
	return len(sb.items)
}

// Clear removes all items and errors
func (sb *SequenceBuilder) Clear() *SequenceBuilder {
	sb.items = sb.items[:0]
	sb.errs = sb.errs[:0]
	return sb
}

// HasErrors returns true if any AddItem failed
func (sb *SequenceBuilder) HasErrors() bool {
	return len(sb.errs) > 0
}

// Errors returns all accumulated errors
func (sb *SequenceBuilder) Errors() []error {
	return sb.errs
}

// Build returns an Option that adds the sequence to a dataset
func (sb *SequenceBuilder) Build() (Option, error) {
	if len(sb.errs) > 0 {
		return nil, fmt.Errorf("sequence %v: %w", sb.tag, errors.Join(sb.errs...))
	}
	return WithSequence(sb.tag, sb.items...), nil
}

// BuildDataset creates a standalone dataset containing only this sequence
func (sb *SequenceBuilder) BuildDataset() (*Dataset, error) {
	opt, err := sb.Build()
	if err != nil {
		return nil, err
	}
	return NewDataset(opt)
}

// GetItems returns a copy of the current items
func (sb *SequenceBuilder) GetItems() []*Dataset {
	items := make([]*Dataset, len(sb.items))
	copy(items, sb.items)
	return items
}

// GetItem returns the item at index, nil when out of bounds
func (sb *SequenceBuilder) GetItem(index int) *Dataset {
	if index >= 0 && index < len(sb.items) {
		return sb.items[index]
	}
	return nil
}

// RemoveItem removes the item at index, out of bounds is a no-op
func (sb *SequenceBuilder) RemoveItem(index int) *SequenceBuilder {
	if index >= 0 && index < len(sb.items) {
		sb.items = append(sb.items[:index], sb.items[index+1:]...)
	}
	return sb
}

// ReplaceItem replaces the item at index; nil or out of bounds is a no-op
func (sb *SequenceBuilder) ReplaceItem(index int, ds *Dataset) *SequenceBuilder {
	if ds != nil && index >= 0 && index < len(sb.items) {
		sb.items[index] = ds
	}
	return sb
}
