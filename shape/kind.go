package shape

// Kind identifies the introspection category of a described type.
type Kind int

const (
	// KindScalar describes a single indivisible value (string, integer).
	KindScalar Kind = iota
	// KindStruct describes an ordered sequence of named fields.
	KindStruct
	// KindEnum describes a tagged union; its fields are the active variant's fields.
	KindEnum
	// KindList describes a homogeneous ordered collection.
	KindList
	// KindMap describes a keyed collection.
	KindMap
	// KindOption describes a value that may be absent.
	KindOption
	// KindOpaque describes a type that cannot be introspected further.
	KindOpaque
)

// String returns the lowercase name of the kind.
func (kind Kind) String() string {
	switch kind {
	case KindScalar:
		return "scalar"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindOption:
		return "option"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}
