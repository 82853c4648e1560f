package msgpack

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeToBytes(t *testing.T, encode func(c *codec, buffer *bytes.Buffer) error) []byte {
	t.Helper()

	buffer := bytes.NewBuffer(nil)
	require.NoError(t, encode(NewCodec(), buffer))
	return buffer.Bytes()
}

func TestCodec_EncodeUnsignedNumbers(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	testCases := []struct {
		name     string
		encode   func(buffer *bytes.Buffer) error
		expected []byte
	}{
		{"u8 zero", func(b *bytes.Buffer) error { return c.EncodeUint8(b, 0) }, []byte{0x00}},
		{"u8 fixint upper bound", func(b *bytes.Buffer) error { return c.EncodeUint8(b, 127) }, []byte{0x7f}},
		{"u8 above fixint", func(b *bytes.Buffer) error { return c.EncodeUint8(b, 128) }, []byte{0xcc, 0x80}},
		{"u8 max", func(b *bytes.Buffer) error { return c.EncodeUint8(b, 255) }, []byte{0xcc, 0xff}},
		{"u16 fixint", func(b *bytes.Buffer) error { return c.EncodeUint16(b, 7) }, []byte{0x07}},
		{"u16 one byte", func(b *bytes.Buffer) error { return c.EncodeUint16(b, 200) }, []byte{0xcc, 0xc8}},
		{"u16 two bytes", func(b *bytes.Buffer) error { return c.EncodeUint16(b, 256) }, []byte{0xcd, 0x01, 0x00}},
		{"u16 max", func(b *bytes.Buffer) error { return c.EncodeUint16(b, 65535) }, []byte{0xcd, 0xff, 0xff}},
		{"u32 four bytes", func(b *bytes.Buffer) error { return c.EncodeUint32(b, 65536) }, []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{"u32 max", func(b *bytes.Buffer) error { return c.EncodeUint32(b, math.MaxUint32) }, []byte{0xce, 0xff, 0xff, 0xff, 0xff}},
		{"u64 narrows to fixint", func(b *bytes.Buffer) error { return c.EncodeUint64(b, 1) }, []byte{0x01}},
		{"u64 narrows to u32", func(b *bytes.Buffer) error { return c.EncodeUint64(b, math.MaxUint32) }, []byte{0xce, 0xff, 0xff, 0xff, 0xff}},
		{"u64 eight bytes", func(b *bytes.Buffer) error { return c.EncodeUint64(b, math.MaxUint32 + 1) }, []byte{0xcf, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{"u64 max", func(b *bytes.Buffer) error { return c.EncodeUint64(b, math.MaxUint64) }, []byte{0xcf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buffer := bytes.NewBuffer(nil)
			require.NoError(t, testCase.encode(buffer))
			require.Equal(t, testCase.expected, buffer.Bytes())
		})
	}
}

func TestCodec_EncodeSignedNumbers(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	testCases := []struct {
		name     string
		encode   func(buffer *bytes.Buffer) error
		expected []byte
	}{
		{"i8 negative fixint", func(b *bytes.Buffer) error { return c.EncodeInt8(b, -1) }, []byte{0xff}},
		{"i8 negative fixint lower bound", func(b *bytes.Buffer) error { return c.EncodeInt8(b, -32) }, []byte{0xe0}},
		{"i8 below fixint", func(b *bytes.Buffer) error { return c.EncodeInt8(b, -33) }, []byte{0xd0, 0xdf}},
		{"i8 min", func(b *bytes.Buffer) error { return c.EncodeInt8(b, math.MinInt8) }, []byte{0xd0, 0x80}},
		{"i8 positive shares fixint", func(b *bytes.Buffer) error { return c.EncodeInt8(b, 127) }, []byte{0x7f}},
		{"i16 two bytes", func(b *bytes.Buffer) error { return c.EncodeInt16(b, -129) }, []byte{0xd1, 0xff, 0x7f}},
		{"i16 min", func(b *bytes.Buffer) error { return c.EncodeInt16(b, math.MinInt16) }, []byte{0xd1, 0x80, 0x00}},
		{"i16 positive shares u8", func(b *bytes.Buffer) error { return c.EncodeInt16(b, 255) }, []byte{0xcc, 0xff}},
		{"i32 four bytes", func(b *bytes.Buffer) error { return c.EncodeInt32(b, -32769) }, []byte{0xd2, 0xff, 0xff, 0x7f, 0xff}},
		{"i32 min", func(b *bytes.Buffer) error { return c.EncodeInt32(b, math.MinInt32) }, []byte{0xd2, 0x80, 0x00, 0x00, 0x00}},
		{"i32 positive shares u16", func(b *bytes.Buffer) error { return c.EncodeInt32(b, 65535) }, []byte{0xcd, 0xff, 0xff}},
		{"i64 eight bytes", func(b *bytes.Buffer) error { return c.EncodeInt64(b, -2147483649) }, []byte{0xd3, 0xff, 0xff, 0xff, 0xff, 0x7f, 0xff, 0xff, 0xff}},
		{"i64 min", func(b *bytes.Buffer) error { return c.EncodeInt64(b, math.MinInt64) }, []byte{0xd3, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"i64 positive shares u32", func(b *bytes.Buffer) error { return c.EncodeInt64(b, math.MaxUint32) }, []byte{0xce, 0xff, 0xff, 0xff, 0xff}},
		{"i64 positive shares u64", func(b *bytes.Buffer) error { return c.EncodeInt64(b, math.MaxInt64) }, []byte{0xcf, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, testCase := range testCases {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buffer := bytes.NewBuffer(nil)
			require.NoError(t, testCase.encode(buffer))
			require.Equal(t, testCase.expected, buffer.Bytes())
		})
	}
}

func TestCodec_EncodeString(t *testing.T) {
	t.Parallel()

	t.Run("fixstr", func(t *testing.T) {
		t.Parallel()

		data := encodeToBytes(t, func(c *codec, b *bytes.Buffer) error { return c.EncodeString(b, "") })
		require.Equal(t, []byte{0xa0}, data)

		data = encodeToBytes(t, func(c *codec, b *bytes.Buffer) error { return c.EncodeString(b, "Ada") })
		require.Equal(t, []byte{0xa3, 'A', 'd', 'a'}, data)

		data = encodeToBytes(t, func(c *codec, b *bytes.Buffer) error { return c.EncodeString(b, strings.Repeat("x", 31)) })
		require.Equal(t, byte(0xbf), data[0])
		require.Len(t, data, 32)
	})

	t.Run("str8", func(t *testing.T) {
		t.Parallel()

		data := encodeToBytes(t, func(c *codec, b *bytes.Buffer) error { return c.EncodeString(b, strings.Repeat("x", 32)) })
		require.Equal(t, []byte{0xd9, 32}, data[:2])
		require.Len(t, data, 34)
	})

	t.Run("str16", func(t *testing.T) {
		t.Parallel()

		data := encodeToBytes(t, func(c *codec, b *bytes.Buffer) error { return c.EncodeString(b, strings.Repeat("x", 256)) })
		require.Equal(t, []byte{0xda, 0x01, 0x00}, data[:3])
		require.Len(t, data, 259)
	})

	t.Run("str32", func(t *testing.T) {
		t.Parallel()

		data := encodeToBytes(t, func(c *codec, b *bytes.Buffer) error { return c.EncodeString(b, strings.Repeat("x", 65536)) })
		require.Equal(t, []byte{0xdb, 0x00, 0x01, 0x00, 0x00}, data[:5])
		require.Len(t, data, 65541)
	})
}

func TestCodec_EncodeMapLength(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	testCases := []struct {
		length   int
		expected []byte
	}{
		{0, []byte{0x80}},
		{2, []byte{0x82}},
		{15, []byte{0x8f}},
		{16, []byte{0xde, 0x00, 0x10}},
		{65535, []byte{0xde, 0xff, 0xff}},
		{65536, []byte{0xdf, 0x00, 0x01, 0x00, 0x00}},
	}

	for _, testCase := range testCases {
		buffer := bytes.NewBuffer(nil)
		require.NoError(t, c.EncodeMapLength(buffer, testCase.length))
		require.Equal(t, testCase.expected, buffer.Bytes())
	}
}

type failingWriter struct {
	err error
}

func (writer *failingWriter) Write(_ []byte) (int, error) {
	return 0, writer.err
}

func TestCodec_sinkErrorsPropagateVerbatim(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("sink rejected the write")
	writer := &failingWriter{err: expectedErr}
	c := NewCodec()

	require.Equal(t, expectedErr, c.EncodeString(writer, "Ada"))
	require.Equal(t, expectedErr, c.EncodeUint8(writer, 1))
	require.Equal(t, expectedErr, c.EncodeInt64(writer, math.MinInt64))
	require.Equal(t, expectedErr, c.EncodeMapLength(writer, 1))
}
