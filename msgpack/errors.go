package msgpack

import "errors"

// ErrNilCodec signals that a nil values codec was provided
var ErrNilCodec = errors.New("nil values codec")

// ErrUnsupportedType signals that the serializer reached a descriptor kind or scalar identity with no encoding rule
var ErrUnsupportedType = errors.New("unsupported type for msgpack encoding")
