package factory

import (
	"errors"
	"fmt"
	"reflect"

	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/multiversx/mx-chain-reflection-go/naming"
	"github.com/multiversx/mx-chain-reflection-go/shape"
)

var log = logger.GetOrCreate("shape/factory")

// tagKey is the struct tag consulted for per-field directives:
// `shape:"rename=<name>"`, `shape:"sensitive"`, `shape:"opaque"`. Unknown
// tokens are carried through as arbitrary attributes.
const tagKey = "shape"

// ArgsNewShapeFactory holds the inputs needed to create a shape factory.
type ArgsNewShapeFactory struct {
	// RenameRule is the container-level rule applied to every field's raw name
	// when the field carries no explicit rename override.
	RenameRule naming.Rule
}

// shapeFactory derives shape descriptors from concrete Go types, once per
// type, and registers them in the process-wide registry. It is the producer
// side of the contract: the core packages (shape, view, msgpack) only consume
// what it registers and never import it.
type shapeFactory struct {
	renameRule naming.Rule
}

// NewShapeFactory creates a new shape factory.
func NewShapeFactory(args ArgsNewShapeFactory) (*shapeFactory, error) {
	return &shapeFactory{
		renameRule: args.RenameRule,
	}, nil
}

// RegisterShape derives and registers the shape of the given value's dynamic
// type, including the shapes of all types reachable through field traversal.
// Types that already have a registered shape are left untouched.
func (f *shapeFactory) RegisterShape(value any) (*shape.Shape, error) {
	identity := reflect.TypeOf(value)
	if identity == nil {
		return nil, ErrNilValue
	}

	return f.registerShapeForType(identity)
}

func (f *shapeFactory) registerShapeForType(identity reflect.Type) (*shape.Shape, error) {
	existing, err := shape.ShapeOf(identity)
	if err == nil {
		return existing, nil
	}

	kind := kindForType(identity)

	var fields []shape.Field
	if kind == shape.KindStruct {
		fields, err = f.createFields(identity)
		if err != nil {
			return nil, err
		}
	}

	created, err := shape.NewShape(shape.ArgsNewShape{
		Kind:     kind,
		Identity: identity,
		Fields:   fields,
	})
	if err != nil {
		return nil, err
	}

	err = shape.Register(created)
	if errors.Is(err, shape.ErrShapeAlreadyRegistered) {
		// another producer won the race for this identity; its shape is the one
		return shape.ShapeOf(identity)
	}
	if err != nil {
		return nil, err
	}

	log.Trace("derived shape", "identity", identity.String(), "kind", kind.String())

	// register reachable types after the parent, so that self-referential
	// layouts terminate on the already-registered parent
	err = f.registerReachableTypes(identity, kind, fields)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (f *shapeFactory) registerReachableTypes(identity reflect.Type, kind shape.Kind, fields []shape.Field) error {
	switch kind {
	case shape.KindStruct:
		for _, field := range fields {
			_, err := f.registerShapeForType(field.Type())
			if err != nil {
				return fmt.Errorf("%w: field %s of %s", err, field.RawName(), identity)
			}
		}
	case shape.KindList, shape.KindOption:
		_, err := f.registerShapeForType(identity.Elem())
		if err != nil {
			return err
		}
	case shape.KindMap:
		_, err := f.registerShapeForType(identity.Key())
		if err != nil {
			return err
		}

		_, err = f.registerShapeForType(identity.Elem())
		if err != nil {
			return err
		}
	default:
	}

	return nil
}

func (f *shapeFactory) createFields(identity reflect.Type) ([]shape.Field, error) {
	fields := make([]shape.Field, 0, identity.NumField())

	for i := 0; i < identity.NumField(); i++ {
		structField := identity.Field(i)
		if len(structField.PkgPath) > 0 {
			// unexported field, not part of the descriptor
			continue
		}

		directives := parseTag(structField.Tag.Get(tagKey))

		fieldType := structField.Type
		if directives.opaque {
			_, err := registerOpaque(fieldType)
			if err != nil {
				return nil, err
			}
		}

		flags := shape.FieldFlags(0)
		if directives.sensitive {
			flags |= shape.FlagSensitive
		}

		field, err := shape.NewField(shape.ArgsNewField{
			RawName:        structField.Name,
			RenameOverride: directives.rename,
			Rule:           f.renameRule,
			Offset:         structField.Offset,
			Index:          i,
			Type:           fieldType,
			Flags:          flags,
			Attributes: shape.Attributes{
				Arbitrary: directives.arbitrary,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("%w: field %s of %s", err, structField.Name, identity)
		}

		fields = append(fields, field)
	}

	return fields, nil
}

func registerOpaque(identity reflect.Type) (*shape.Shape, error) {
	existing, err := shape.ShapeOf(identity)
	if err == nil {
		return existing, nil
	}

	created, err := shape.NewOpaqueShape(identity)
	if err != nil {
		return nil, err
	}

	err = shape.Register(created)
	if errors.Is(err, shape.ErrShapeAlreadyRegistered) {
		return shape.ShapeOf(identity)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

func kindForType(identity reflect.Type) shape.Kind {
	switch identity.Kind() {
	case reflect.String,
		reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return shape.KindScalar
	case reflect.Struct:
		return shape.KindStruct
	case reflect.Slice, reflect.Array:
		return shape.KindList
	case reflect.Map:
		return shape.KindMap
	case reflect.Ptr:
		return shape.KindOption
	default:
		return shape.KindOpaque
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (f *shapeFactory) IsInterfaceNil() bool {
	return f == nil
}
