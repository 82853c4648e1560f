package msgpack

import (
	"encoding/binary"
	"io"
)

// MessagePack format tags used by the encoding subset below.
//
// See: https://github.com/msgpack/msgpack/blob/master/spec.md
const (
	tagFixstr  = 0xa0
	tagStr8    = 0xd9
	tagStr16   = 0xda
	tagStr32   = 0xdb
	tagUint8   = 0xcc
	tagUint16  = 0xcd
	tagUint32  = 0xce
	tagUint64  = 0xcf
	tagInt8    = 0xd0
	tagInt16   = 0xd1
	tagInt32   = 0xd2
	tagInt64   = 0xd3
	tagFixmap  = 0x80
	tagMap16   = 0xde
	tagMap32   = 0xdf
	fixstrMax  = 31
	fixmapMax  = 15
	fixintMax  = 127
	fixintMin  = -32
	maxUint8   = 255
	maxUint16  = 65535
	maxUint32  = 4294967295
	minInt8    = -128
	minInt16   = -32768
	minInt32   = -2147483648
)

// codec holds the wire-level encoding primitives: each method writes the
// minimal-width MessagePack encoding for its value, so output width is a pure
// function of the value's range and never a caller choice.
type codec struct {
}

// NewCodec creates a new default codec.
func NewCodec() *codec {
	return &codec{}
}

// EncodeMapLength writes a map header for the given number of entries.
func (c *codec) EncodeMapLength(writer io.Writer, length int) error {
	switch {
	case length <= fixmapMax:
		return c.write(writer, []byte{tagFixmap | byte(length)})
	case length <= maxUint16:
		return c.writeTagged16(writer, tagMap16, uint16(length))
	default:
		return c.writeTagged32(writer, tagMap32, uint32(length))
	}
}

func (c *codec) write(writer io.Writer, data []byte) error {
	// sink errors propagate verbatim, never reclassified
	_, err := writer.Write(data)
	return err
}

func (c *codec) writeTagged16(writer io.Writer, tag byte, value uint16) error {
	buffer := [3]byte{tag}
	binary.BigEndian.PutUint16(buffer[1:], value)
	return c.write(writer, buffer[:])
}

func (c *codec) writeTagged32(writer io.Writer, tag byte, value uint32) error {
	buffer := [5]byte{tag}
	binary.BigEndian.PutUint32(buffer[1:], value)
	return c.write(writer, buffer[:])
}

func (c *codec) writeTagged64(writer io.Writer, tag byte, value uint64) error {
	buffer := [9]byte{tag}
	binary.BigEndian.PutUint64(buffer[1:], value)
	return c.write(writer, buffer[:])
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *codec) IsInterfaceNil() bool {
	return c == nil
}
