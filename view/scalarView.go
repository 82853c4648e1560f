package view

import (
	"fmt"
	"reflect"
)

// ScalarView is the scalar refinement of a view. The typed accessors check the
// descriptor identity's kind before reading, so extraction is always a
// checked, fallible operation.
type ScalarView struct {
	View
}

// StringValue extracts the underlying string.
func (v ScalarView) StringValue() (string, error) {
	if v.shape.Identity().Kind() != reflect.String {
		return "", fmt.Errorf("%w: have %s, want a string identity", ErrTypeMismatch, v.shape.Identity())
	}

	return v.value.String(), nil
}

// UintValue extracts the underlying unsigned integer, widened to uint64.
func (v ScalarView) UintValue() (uint64, error) {
	switch v.shape.Identity().Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.value.Uint(), nil
	default:
		return 0, fmt.Errorf("%w: have %s, want an unsigned integer identity", ErrTypeMismatch, v.shape.Identity())
	}
}

// IntValue extracts the underlying signed integer, widened to int64.
func (v ScalarView) IntValue() (int64, error) {
	switch v.shape.Identity().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.value.Int(), nil
	default:
		return 0, fmt.Errorf("%w: have %s, want a signed integer identity", ErrTypeMismatch, v.shape.Identity())
	}
}
