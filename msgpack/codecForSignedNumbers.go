package msgpack

import "io"

// Signed encodings share the unsigned representations for non-negative
// values, so every range partition below is exhaustive over the full domain
// of its type, minimum and maximum included.

// EncodeInt8 writes a signed 8-bit integer: fixint for -32..127, int8 below.
func (c *codec) EncodeInt8(writer io.Writer, value int8) error {
	switch {
	case value >= 0:
		return c.write(writer, []byte{byte(value)})
	case value >= fixintMin:
		return c.write(writer, []byte{byte(value)})
	default: // -128..-33
		return c.write(writer, []byte{tagInt8, byte(value)})
	}
}

// EncodeInt16 writes a signed 16-bit integer with minimal width.
func (c *codec) EncodeInt16(writer io.Writer, value int16) error {
	switch {
	case value >= 0:
		return c.EncodeUint16(writer, uint16(value))
	case value >= fixintMin:
		return c.write(writer, []byte{byte(value)})
	case value >= minInt8:
		return c.write(writer, []byte{tagInt8, byte(value)})
	default: // -32768..-129
		return c.writeTagged16(writer, tagInt16, uint16(value))
	}
}

// EncodeInt32 writes a signed 32-bit integer with minimal width.
func (c *codec) EncodeInt32(writer io.Writer, value int32) error {
	switch {
	case value >= 0:
		return c.EncodeUint32(writer, uint32(value))
	case value >= fixintMin:
		return c.write(writer, []byte{byte(value)})
	case value >= minInt8:
		return c.write(writer, []byte{tagInt8, byte(value)})
	case value >= minInt16:
		return c.writeTagged16(writer, tagInt16, uint16(value))
	default: // -2147483648..-32769
		return c.writeTagged32(writer, tagInt32, uint32(value))
	}
}

// EncodeInt64 writes a signed 64-bit integer with minimal width.
func (c *codec) EncodeInt64(writer io.Writer, value int64) error {
	switch {
	case value >= 0:
		return c.EncodeUint64(writer, uint64(value))
	case value >= fixintMin:
		return c.write(writer, []byte{byte(value)})
	case value >= minInt8:
		return c.write(writer, []byte{tagInt8, byte(value)})
	case value >= minInt16:
		return c.writeTagged16(writer, tagInt16, uint16(value))
	case value >= minInt32:
		return c.writeTagged32(writer, tagInt32, uint32(value))
	default: // math.MinInt64..-2147483649
		return c.writeTagged64(writer, tagInt64, uint64(value))
	}
}
