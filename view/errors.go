package view

import "errors"

// ErrUninitializedView signals that a zero-value view was used
var ErrUninitializedView = errors.New("uninitialized view")

// ErrTypeMismatch signals that a typed extraction does not match the view's descriptor identity
var ErrTypeMismatch = errors.New("type mismatch")

// ErrNotAStruct signals that a struct refinement was requested on a non-struct view
var ErrNotAStruct = errors.New("view is not a struct")

// ErrNotAScalar signals that a scalar refinement was requested on a non-scalar view
var ErrNotAScalar = errors.New("view is not a scalar")

// ErrIteratorExhausted signals that a field iterator was advanced past the last field
var ErrIteratorExhausted = errors.New("field iterator exhausted")
