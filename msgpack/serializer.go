package msgpack

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/multiversx/mx-chain-reflection-go/shape"
	"github.com/multiversx/mx-chain-reflection-go/view"
)

var log = logger.GetOrCreate("msgpack")

// serializer walks a value through its type-erased view and emits MessagePack
// bytes: scalars as minimal-width encodings, structs as a map of wire names to
// recursively serialized fields. Output is fully deterministic for a given
// value and its registered shapes. Any other kind is rejected: the serializer
// never guesses a representation for data it cannot introspect.
type serializer struct {
	codec ValuesCodec
}

// NewSerializer creates a new serializer on top of the given values codec.
func NewSerializer(codec ValuesCodec) (*serializer, error) {
	if check.IfNil(codec) {
		return nil, ErrNilCodec
	}

	return &serializer{
		codec: codec,
	}, nil
}

// Serialize encodes the given value into MessagePack bytes. The value's type,
// and every type reachable through field traversal, must have a registered
// shape. On error, any partially produced bytes are discarded.
func (s *serializer) Serialize(value any) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)

	err := s.SerializeToWriter(value, buffer)
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// SerializeToWriter encodes the given value into the provided sink. Sink
// errors are propagated verbatim; on any error the caller must treat
// already-written bytes as invalid, since the format carries no
// resynchronization markers.
func (s *serializer) SerializeToWriter(value any, writer io.Writer) error {
	v, err := view.New(value)
	if err != nil {
		return err
	}

	return s.serializeView(v, writer)
}

func (s *serializer) serializeView(v view.View, writer io.Writer) error {
	valueShape := v.Shape()

	switch valueShape.Kind() {
	case shape.KindScalar:
		return s.serializeScalar(v, writer)
	case shape.KindStruct:
		return s.serializeStruct(v, writer)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, valueShape)
	}
}

func (s *serializer) serializeScalar(v view.View, writer io.Writer) error {
	scalar, err := v.IntoScalar()
	if err != nil {
		return err
	}

	identity := v.Shape().Identity()
	log.Trace("serializing scalar", "identity", identity.String())

	// dispatch is by identity; anything outside the supported families is a
	// hard failure, never a silent fallback
	switch identity.Kind() {
	case reflect.String:
		value, errExtract := scalar.StringValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeString(writer, value)
	case reflect.Uint8:
		value, errExtract := scalar.UintValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeUint8(writer, uint8(value))
	case reflect.Uint16:
		value, errExtract := scalar.UintValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeUint16(writer, uint16(value))
	case reflect.Uint32:
		value, errExtract := scalar.UintValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeUint32(writer, uint32(value))
	case reflect.Uint64:
		value, errExtract := scalar.UintValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeUint64(writer, value)
	case reflect.Int8:
		value, errExtract := scalar.IntValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeInt8(writer, int8(value))
	case reflect.Int16:
		value, errExtract := scalar.IntValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeInt16(writer, int16(value))
	case reflect.Int32:
		value, errExtract := scalar.IntValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeInt32(writer, int32(value))
	case reflect.Int64:
		value, errExtract := scalar.IntValue()
		if errExtract != nil {
			return errExtract
		}
		return s.codec.EncodeInt64(writer, value)
	default:
		return fmt.Errorf("%w: scalar identity %s", ErrUnsupportedType, identity)
	}
}

func (s *serializer) serializeStruct(v view.View, writer io.Writer) error {
	structView, err := v.IntoStruct()
	if err != nil {
		return err
	}

	log.Trace("serializing struct", "identity", v.Shape().Identity().String())

	// first pass sizes the map header; the only filtering consulted is the
	// skip attribute supplied by the producer - without skip attributes the
	// header length equals the declared field count
	length := 0
	iterator := structView.Fields()
	for iterator.HasNext() {
		field, child, errNext := iterator.Next()
		if errNext != nil {
			return errNext
		}

		if !shouldSkipField(field, child) {
			length++
		}
	}

	err = s.codec.EncodeMapLength(writer, length)
	if err != nil {
		return err
	}

	iterator = structView.Fields()
	for iterator.HasNext() {
		field, child, errNext := iterator.Next()
		if errNext != nil {
			return errNext
		}

		if shouldSkipField(field, child) {
			continue
		}

		err = s.codec.EncodeString(writer, field.WireName())
		if err != nil {
			return err
		}

		err = s.serializeView(child, writer)
		if err != nil {
			return err
		}
	}

	return nil
}

func shouldSkipField(field shape.Field, child view.View) bool {
	skipIf := field.Attributes().SkipIf
	if skipIf == nil {
		return false
	}

	return skipIf(child.Interface())
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *serializer) IsInterfaceNil() bool {
	return s == nil
}
