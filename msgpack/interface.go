package msgpack

import "io"

// ValuesCodec defines the wire-level encoding primitives consumed by the
// serializer. Every method writes the minimal-width encoding for its value.
type ValuesCodec interface {
	EncodeString(writer io.Writer, value string) error
	EncodeUint8(writer io.Writer, value uint8) error
	EncodeUint16(writer io.Writer, value uint16) error
	EncodeUint32(writer io.Writer, value uint32) error
	EncodeUint64(writer io.Writer, value uint64) error
	EncodeInt8(writer io.Writer, value int8) error
	EncodeInt16(writer io.Writer, value int16) error
	EncodeInt32(writer io.Writer, value int32) error
	EncodeInt64(writer io.Writer, value int64) error
	EncodeMapLength(writer io.Writer, length int) error
	IsInterfaceNil() bool
}
