package msgpack

import "io"

// EncodeUint8 writes an unsigned 8-bit integer: positive fixint up to 127,
// uint8 above.
func (c *codec) EncodeUint8(writer io.Writer, value uint8) error {
	if value <= fixintMax {
		return c.write(writer, []byte{value})
	}

	return c.write(writer, []byte{tagUint8, value})
}

// EncodeUint16 writes an unsigned 16-bit integer with minimal width.
func (c *codec) EncodeUint16(writer io.Writer, value uint16) error {
	switch {
	case value <= fixintMax:
		return c.write(writer, []byte{byte(value)})
	case value <= maxUint8:
		return c.write(writer, []byte{tagUint8, byte(value)})
	default:
		return c.writeTagged16(writer, tagUint16, value)
	}
}

// EncodeUint32 writes an unsigned 32-bit integer with minimal width.
func (c *codec) EncodeUint32(writer io.Writer, value uint32) error {
	switch {
	case value <= fixintMax:
		return c.write(writer, []byte{byte(value)})
	case value <= maxUint8:
		return c.write(writer, []byte{tagUint8, byte(value)})
	case value <= maxUint16:
		return c.writeTagged16(writer, tagUint16, uint16(value))
	default:
		return c.writeTagged32(writer, tagUint32, value)
	}
}

// EncodeUint64 writes an unsigned 64-bit integer with minimal width.
func (c *codec) EncodeUint64(writer io.Writer, value uint64) error {
	switch {
	case value <= fixintMax:
		return c.write(writer, []byte{byte(value)})
	case value <= maxUint8:
		return c.write(writer, []byte{tagUint8, byte(value)})
	case value <= maxUint16:
		return c.writeTagged16(writer, tagUint16, uint16(value))
	case value <= maxUint32:
		return c.writeTagged32(writer, tagUint32, uint32(value))
	default:
		return c.writeTagged64(writer, tagUint64, value)
	}
}
