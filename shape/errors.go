package shape

import "errors"

// ErrNilShape signals that a nil shape was provided
var ErrNilShape = errors.New("nil shape")

// ErrNilIdentity signals that a nil type identity was provided
var ErrNilIdentity = errors.New("nil type identity")

// ErrNilValue signals that a nil value was provided
var ErrNilValue = errors.New("nil value")

// ErrShapeNotRegistered signals that no shape has been registered for a type
var ErrShapeNotRegistered = errors.New("shape not registered for type")

// ErrShapeAlreadyRegistered signals that a different shape is already registered for a type
var ErrShapeAlreadyRegistered = errors.New("a different shape is already registered for type")

// ErrEmptyFieldName signals that a field descriptor was built with an empty raw name
var ErrEmptyFieldName = errors.New("empty field name")

// ErrNilFieldType signals that a field descriptor was built with a nil type
var ErrNilFieldType = errors.New("nil field type")

// ErrUnexpectedFields signals that fields were provided for a kind that carries none
var ErrUnexpectedFields = errors.New("fields provided for a kind that carries none")
