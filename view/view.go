package view

import (
	"fmt"
	"reflect"

	"github.com/multiversx/mx-chain-reflection-go/shape"
)

// View pairs a borrowed value with its registered shape descriptor, letting
// generic code inspect the value's kind and traverse its fields without
// knowing the concrete type. A view never owns the underlying value; it is a
// read-only projection, valid only as long as the value it was created from.
type View struct {
	value reflect.Value
	shape *shape.Shape
}

// New resolves the shape of the given value's dynamic type through the
// process-wide registry and pairs the two. Values of unregistered types yield
// shape.ErrShapeNotRegistered.
func New(value any) (View, error) {
	s, err := shape.ShapeOfValue(value)
	if err != nil {
		return View{}, err
	}

	return View{
		value: reflect.ValueOf(value),
		shape: s,
	}, nil
}

// Shape returns the descriptor paired with the underlying value. It never
// fails: a view cannot exist without its shape.
func (v View) Shape() *shape.Shape {
	return v.shape
}

// Interface returns the underlying value. No ownership is transferred.
func (v View) Interface() any {
	return v.value.Interface()
}

// Get extracts the underlying value as T. It succeeds only if the view's
// descriptor identity matches T's identity exactly; there is no unchecked
// reinterpretation and no implicit conversion between compatible types.
func Get[T any](v View) (T, error) {
	var zero T

	if v.shape == nil {
		return zero, ErrUninitializedView
	}

	wanted := reflect.TypeOf((*T)(nil)).Elem()
	if !v.shape.Is(wanted) {
		return zero, fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.shape.Identity(), wanted)
	}

	extracted, ok := v.value.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.shape.Identity(), wanted)
	}

	return extracted, nil
}

// IntoStruct refines the view for ordered field iteration. It fails unless the
// descriptor kind is struct.
func (v View) IntoStruct() (StructView, error) {
	if v.shape == nil {
		return StructView{}, ErrUninitializedView
	}
	if v.shape.Kind() != shape.KindStruct {
		return StructView{}, fmt.Errorf("%w: %s", ErrNotAStruct, v.shape)
	}

	return StructView{View: v}, nil
}

// IntoScalar refines the view for typed scalar extraction. It fails unless the
// descriptor kind is scalar.
func (v View) IntoScalar() (ScalarView, error) {
	if v.shape == nil {
		return ScalarView{}, ErrUninitializedView
	}
	if v.shape.Kind() != shape.KindScalar {
		return ScalarView{}, fmt.Errorf("%w: %s", ErrNotAScalar, v.shape)
	}

	return ScalarView{View: v}, nil
}
