package msgpack

import "io"

// EncodeString writes a length-prefixed UTF-8 string: fixstr up to 31 bytes,
// then str8/str16/str32 as the length grows.
func (c *codec) EncodeString(writer io.Writer, value string) error {
	data := []byte(value)
	length := len(data)

	var err error
	switch {
	case length <= fixstrMax:
		err = c.write(writer, []byte{tagFixstr | byte(length)})
	case length <= maxUint8:
		err = c.write(writer, []byte{tagStr8, byte(length)})
	case length <= maxUint16:
		err = c.writeTagged16(writer, tagStr16, uint16(length))
	default:
		err = c.writeTagged32(writer, tagStr32, uint32(length))
	}
	if err != nil {
		return err
	}

	return c.write(writer, data)
}
