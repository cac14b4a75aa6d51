package errors

import stdErrors "errors"

// ErrNotFound is returned when a title search yields no usable result.
// Callers cannot distinguish "no such title" from "upstream unavailable"
// at this layer; both collapse to ErrNotFound.
var ErrNotFound = stdErrors.New("title not found")

// IsNotFound reports whether err is ErrNotFound (even when wrapped).
func IsNotFound(err error) bool {
	return stdErrors.Is(err, ErrNotFound)
}
