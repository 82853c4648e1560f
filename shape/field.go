package shape

import (
	"reflect"

	"github.com/multiversx/mx-chain-reflection-go/naming"
)

// FieldFlags is a bitmask of per-field markers.
type FieldFlags uint8

const (
	// FlagSensitive excludes the field from debug output. It does not affect
	// serialization.
	FlagSensitive FieldFlags = 1 << iota
)

// IsSensitive returns true if the sensitive flag is set.
func (flags FieldFlags) IsSensitive() bool {
	return flags&FlagSensitive != 0
}

// DefaultFunc provides a default value for a field.
type DefaultFunc func() any

// SkipFunc reports whether a field value should be omitted from serialized
// output. Serializers consult it; they never invent filtering of their own.
type SkipFunc func(value any) bool

// Attributes carries optional per-field metadata consumed by serializers and
// other shape-driven tooling. Arbitrary holds passthrough tokens the core
// assigns no meaning to.
type Attributes struct {
	Default   DefaultFunc
	SkipIf    SkipFunc
	Arbitrary []string
}

// Field describes one field of a struct (or of an enum's active variant). A
// field descriptor is owned by exactly one shape and is immutable after
// construction.
type Field struct {
	rawName    string
	wireName   string
	offset     uintptr
	index      int
	fieldType  reflect.Type
	flags      FieldFlags
	attributes Attributes
}

// ArgsNewField holds the inputs needed to build a field descriptor.
type ArgsNewField struct {
	RawName        string
	RenameOverride string
	Rule           naming.Rule
	Offset         uintptr
	Index          int
	Type           reflect.Type
	Flags          FieldFlags
	Attributes     Attributes
}

// NewField builds a field descriptor. The wire name is computed here, exactly
// once: an explicit rename override wins, otherwise the container rule is
// applied to the raw name, otherwise the raw name passes through unchanged.
// Numeric (tuple) field names are never renamed.
func NewField(args ArgsNewField) (Field, error) {
	if len(args.RawName) == 0 {
		return Field{}, ErrEmptyFieldName
	}
	if args.Type == nil {
		return Field{}, ErrNilFieldType
	}

	return Field{
		rawName:    args.RawName,
		wireName:   computeWireName(args.RawName, args.RenameOverride, args.Rule),
		offset:     args.Offset,
		index:      args.Index,
		fieldType:  args.Type,
		flags:      args.Flags,
		attributes: args.Attributes,
	}, nil
}

func computeWireName(rawName string, renameOverride string, rule naming.Rule) string {
	if len(renameOverride) > 0 {
		return renameOverride
	}
	if isNumericName(rawName) {
		return rawName
	}

	return rule.Apply(rawName)
}

func isNumericName(name string) bool {
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}

	return len(name) > 0
}

// RawName returns the field's declared name.
func (field Field) RawName() string {
	return field.rawName
}

// WireName returns the name written to encoded output.
func (field Field) WireName() string {
	return field.wireName
}

// Offset returns the field's byte offset within the containing type's layout.
func (field Field) Offset() uintptr {
	return field.offset
}

// Index returns the field's traversal index within the containing type.
func (field Field) Index() int {
	return field.index
}

// Type returns the identity of the field's own type.
func (field Field) Type() reflect.Type {
	return field.fieldType
}

// Flags returns the field's flags.
func (field Field) Flags() FieldFlags {
	return field.flags
}

// Attributes returns the field's attributes.
func (field Field) Attributes() Attributes {
	return field.attributes
}
