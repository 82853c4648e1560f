package view

import (
	"fmt"

	"github.com/multiversx/mx-chain-reflection-go/shape"
)

// StructView is the struct refinement of a view. Field iteration follows
// descriptor order, which is the value's declaration order, so traversal is
// deterministic and caller-independent.
type StructView struct {
	View
}

// Fields returns a fresh iterator over (field descriptor, child view) pairs.
// Each call restarts from the first field; each child view borrows from the
// same underlying value as the parent and is valid only as long as it is.
func (v StructView) Fields() *FieldIterator {
	return &FieldIterator{parent: v}
}

// FieldIterator walks a struct view's fields lazily, in descriptor order.
type FieldIterator struct {
	parent   StructView
	position int
}

// HasNext returns true if there are fields left to visit.
func (iterator *FieldIterator) HasNext() bool {
	return iterator.position < iterator.parent.shape.NumFields()
}

// Next returns the next (field descriptor, child view) pair. The child view's
// shape is resolved lazily through the registry, so a field of an unregistered
// type surfaces shape.ErrShapeNotRegistered at traversal time, not before.
func (iterator *FieldIterator) Next() (shape.Field, View, error) {
	if !iterator.HasNext() {
		return shape.Field{}, View{}, ErrIteratorExhausted
	}

	field := iterator.parent.shape.Field(iterator.position)
	iterator.position++

	childShape, err := shape.ShapeOf(field.Type())
	if err != nil {
		return shape.Field{}, View{}, fmt.Errorf("%w: field %s", err, field.RawName())
	}

	child := View{
		value: iterator.parent.value.Field(field.Index()),
		shape: childShape,
	}

	return field, child, nil
}
