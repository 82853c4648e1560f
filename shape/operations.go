package shape

import (
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// FormatFunc renders a value of the described type for debug output.
type FormatFunc func(value any) string

// ConstructFunc creates a zero value of the described type.
type ConstructFunc func() any

// Operations is the operation table attached to a shape. It is resolved once,
// at registration time, instead of being looked up dynamically during traversal.
// Format is always present after construction; Construct is optional. There is
// no drop operation: reclamation is the garbage collector's job.
type Operations struct {
	Format    FormatFunc
	Construct ConstructFunc
}

// defaultFormatFor builds the fallback debug formatter for a shape. Struct
// shapes render field by field, redacting sensitive fields. Opaque shapes
// render a fixed marker. Everything else is delegated to go-spew.
func defaultFormatFor(s *Shape) FormatFunc {
	switch s.kind {
	case KindStruct:
		return func(value any) string {
			return formatStruct(s, value)
		}
	case KindOpaque:
		return func(_ any) string {
			return "<opaque>"
		}
	default:
		return func(value any) string {
			return spew.Sprintf("%#v", value)
		}
	}
}

func formatStruct(s *Shape, value any) string {
	reflected := reflect.ValueOf(value)
	if !reflected.IsValid() || reflected.Type() != s.identity {
		return spew.Sprintf("%#v", value)
	}

	builder := strings.Builder{}
	builder.WriteString(s.identity.Name())
	builder.WriteByte('{')

	for i, field := range s.fields {
		if i > 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(field.rawName)
		builder.WriteString(": ")

		if field.flags.IsSensitive() {
			builder.WriteString("<redacted>")
			continue
		}

		builder.WriteString(spew.Sprintf("%#v", reflected.Field(field.index).Interface()))
	}

	builder.WriteByte('}')
	return builder.String()
}
