package factory

import "errors"

// ErrNilValue signals that a nil value was provided
var ErrNilValue = errors.New("nil value")
