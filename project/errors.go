package project

import "errors"

var (
	// ErrEmptyName indicates a collection entry without a name.
	ErrEmptyName = errors.New("project: name must not be empty")

	// ErrDuplicateName indicates two entries of one collection sharing a name.
	ErrDuplicateName = errors.New("project: duplicate name in collection")

	// ErrBoundsOrder indicates a parameter violating min ≤ value ≤ max.
	ErrBoundsOrder = errors.New("project: parameter bounds must satisfy min ≤ value ≤ max")

	// ErrUnknownReference indicates a field naming an entry that is not
	// defined in the collection it must come from.
	ErrUnknownReference = errors.New("project: reference to undefined name")

	// ErrProtectedParameter indicates the protected substrate-roughness
	// parameter was removed or displaced.
	ErrProtectedParameter = errors.New("project: protected parameter missing")

	// ErrContrastModel indicates a contrast whose model field does not
	// name exactly one custom file.
	ErrContrastModel = errors.New("project: contrast model must name exactly one custom file")

	// ErrIndexOutOfBounds indicates a flattened contrast index pointing
	// outside its collection.
	ErrIndexOutOfBounds = errors.New("project: contrast index outside collection")
)
