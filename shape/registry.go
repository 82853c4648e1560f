package shape

import (
	"fmt"
	"reflect"
	"sync"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("shape")

// The process-wide shape registry. Populated lazily, read-only afterwards:
// a type's shape is registered once and never replaced. Reads take the read
// lock only, so concurrent serializations never contend with each other.
type registry struct {
	mutex  sync.RWMutex
	shapes map[reflect.Type]*Shape
}

var globalRegistry = &registry{
	shapes: make(map[reflect.Type]*Shape),
}

// Register adds a shape to the process-wide registry, keyed by its identity.
// Registering the same shape again is a no-op; registering a different shape
// for an already-registered identity is an error.
func Register(s *Shape) error {
	if s == nil {
		return ErrNilShape
	}

	globalRegistry.mutex.Lock()
	defer globalRegistry.mutex.Unlock()

	existing, ok := globalRegistry.shapes[s.identity]
	if ok {
		if existing == s {
			return nil
		}

		return fmt.Errorf("%w: %s", ErrShapeAlreadyRegistered, s.identity)
	}

	globalRegistry.shapes[s.identity] = s
	log.Trace("registered shape", "identity", s.identity.String(), "kind", s.kind.String())

	return nil
}

// ShapeOf returns the registered shape for the given type identity.
func ShapeOf(identity reflect.Type) (*Shape, error) {
	if identity == nil {
		return nil, ErrNilIdentity
	}

	globalRegistry.mutex.RLock()
	defer globalRegistry.mutex.RUnlock()

	s, ok := globalRegistry.shapes[identity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrShapeNotRegistered, identity)
	}

	return s, nil
}

// ShapeOfValue returns the registered shape for the dynamic type of the given
// value.
func ShapeOfValue(value any) (*Shape, error) {
	identity := reflect.TypeOf(value)
	if identity == nil {
		return nil, ErrNilValue
	}

	return ShapeOf(identity)
}
