package shape

import (
	"fmt"
	"reflect"
)

// Shape is the immutable descriptor of one type: its kind, its identity (used
// for safe downcasting), its ordered field list and its operation table. One
// shape exists per distinct type for the lifetime of the process; it is never
// mutated after construction.
type Shape struct {
	kind     Kind
	identity reflect.Type
	fields   []Field
	ops      Operations
}

// ArgsNewShape holds the inputs needed to build a shape.
type ArgsNewShape struct {
	Kind       Kind
	Identity   reflect.Type
	Fields     []Field
	Operations Operations
}

// NewShape builds a shape. Fields are only meaningful for struct and enum
// kinds. Wire name uniqueness within the field list is the producer's
// responsibility; it is not checked nor deduplicated here.
func NewShape(args ArgsNewShape) (*Shape, error) {
	if args.Identity == nil {
		return nil, ErrNilIdentity
	}
	if len(args.Fields) > 0 && args.Kind != KindStruct && args.Kind != KindEnum {
		return nil, fmt.Errorf("%w: kind %s", ErrUnexpectedFields, args.Kind)
	}

	fields := make([]Field, len(args.Fields))
	copy(fields, args.Fields)

	s := &Shape{
		kind:     args.Kind,
		identity: args.Identity,
		fields:   fields,
		ops:      args.Operations,
	}

	if s.ops.Format == nil {
		s.ops.Format = defaultFormatFor(s)
	}

	return s, nil
}

// NewOpaqueShape builds a shape for a type that cannot be introspected. The
// operation table is intentionally near-empty: the formatter emits a fixed
// marker and there is no construct operation.
func NewOpaqueShape(identity reflect.Type) (*Shape, error) {
	return NewShape(ArgsNewShape{
		Kind:     KindOpaque,
		Identity: identity,
	})
}

// Kind returns the shape's kind.
func (s *Shape) Kind() Kind {
	return s.kind
}

// Identity returns the stable type identity the shape describes.
func (s *Shape) Identity() reflect.Type {
	return s.identity
}

// Is returns true if the shape describes exactly the given type.
func (s *Shape) Is(t reflect.Type) bool {
	return s.identity == t
}

// NumFields returns the number of field descriptors.
func (s *Shape) NumFields() int {
	return len(s.fields)
}

// Field returns the field descriptor at the given position, in declaration
// order.
func (s *Shape) Field(position int) Field {
	return s.fields[position]
}

// Fields returns a copy of the ordered field descriptors.
func (s *Shape) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)
	return fields
}

// Operations returns the shape's operation table.
func (s *Shape) Operations() Operations {
	return s.ops
}

// Format renders a value of the described type for debug output, honoring the
// sensitive flag of struct fields.
func (s *Shape) Format(value any) string {
	return s.ops.Format(value)
}

// String returns a short description, e.g. "struct main.Person".
func (s *Shape) String() string {
	return fmt.Sprintf("%s %s", s.kind, s.identity)
}
