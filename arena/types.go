package arena

// Kind classifies a registry entry by the allocation operation that created it.
type Kind uint8

const (
	// KindObject is a single composite value from AllocObject.
	KindObject Kind = iota + 1

	// KindArray is a typed scalar array from AllocArray.
	KindArray

	// KindBlock is an anonymous page-backed byte block from AllocBlock.
	KindBlock
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Scalar constrains array allocation to primitive element types. Composite
// element types are rejected at compile time; objects with destruction logic
// go through AllocObject instead.
type Scalar interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128 |
		~string
}

// Destroyer is the finalization hook for registered objects. When a value
// allocated through AllocObject implements Destroyer, ReleaseAll invokes
// Destroy exactly once before clearing the value.
//
// Types whose teardown can fail should implement io.Closer instead; Close
// errors are collected into the ReleaseAll result. If a type implements both,
// only Destroy is called.
type Destroyer interface {
	Destroy()
}

// entry is one tracked allocation. The destroy action is bound to the value's
// concrete type at registration time and holds the registry's only reference
// to the value, so type information is erased here without losing correct
// destruction.
type entry struct {
	kind     Kind
	typeName string
	count    int
	bytes    int
	destroy  func() error
}
