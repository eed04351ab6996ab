package blocks

import "emperror.dev/errors"

const (
	// ErrUnknownKind is returned for a component type outside the closed set.
	ErrUnknownKind = errors.Sentinel("unknown component kind")

	// ErrUnknownField is returned when an edit addresses a field the kind's
	// schema does not declare.
	ErrUnknownField = errors.Sentinel("unknown config field")

	// ErrNotAList is returned when a list operation targets a scalar field.
	ErrNotAList = errors.Sentinel("config field is not a list")

	// ErrInvalidValue is returned when an edit's value does not decode into
	// the addressed field's type.
	ErrInvalidValue = errors.Sentinel("value does not match field type")

	// ErrNotAnImage is returned when an upload targets a field that does not
	// hold an image reference.
	ErrNotAnImage = errors.Sentinel("config field is not an image")

	// ErrIndexOutOfRange is returned for list operations past the list bounds.
	ErrIndexOutOfRange = errors.Sentinel("list index out of range")

	// ErrValidation wraps every FieldError reported by Validate.
	ErrValidation = errors.Sentinel("config validation failed")
)
