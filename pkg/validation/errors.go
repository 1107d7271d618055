// Package validation provides the validation error taxonomy and input
// validation utilities for the estimation engine. Validation failures are
// ordinary error values returned to the caller; the engine never panics on
// bad input and retains no state across rejected calls.
package validation

import "fmt"

// Kind discriminates the classes of validation failure.
type Kind string

const (
	// KindMissingField indicates a required field was absent or empty.
	KindMissingField Kind = "missing_field"

	// KindInvalidValue indicates a numeric field failed its constraint.
	KindInvalidValue Kind = "invalid_value"

	// KindUnknownLocation indicates the location did not resolve in the
	// rate catalog.
	KindUnknownLocation Kind = "unknown_location"

	// KindRoomAreaExceedsProjectArea indicates the combined room area is
	// larger than the project area. This is a hard rejection, not an
	// advisory; no estimate is computed for a physically impossible layout.
	KindRoomAreaExceedsProjectArea Kind = "room_area_exceeds_project_area"
)

// Error is a validation failure with enough context for the caller to render
// a user-facing message. It is returned, never thrown past the engine
// boundary.
type Error struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

// MissingField constructs an Error for an absent required field.
func MissingField(field string) *Error {
	return &Error{
		Kind:    KindMissingField,
		Field:   field,
		Message: fmt.Sprintf("required field %s is missing", field),
	}
}

// InvalidValue constructs an Error for a numeric field violating a
// constraint such as positivity.
func InvalidValue(field, constraint string) *Error {
	return &Error{
		Kind:    KindInvalidValue,
		Field:   field,
		Message: fmt.Sprintf("field %s is invalid: %s", field, constraint),
	}
}

// UnknownLocation constructs an Error for a location absent from the
// supplied rate catalog.
func UnknownLocation(location string) *Error {
	return &Error{
		Kind:    KindUnknownLocation,
		Field:   "location",
		Message: fmt.Sprintf("location %q is not present in the rate catalog", location),
	}
}

// RoomAreaExceedsProjectArea constructs the hard-rejection Error for
// over-dense room layouts.
func RoomAreaExceedsProjectArea(roomArea, projectArea float64) *Error {
	return &Error{
		Kind:  KindRoomAreaExceedsProjectArea,
		Field: "room_count",
		Message: fmt.Sprintf("total room area %.0f sqft exceeds project area %.0f sqft",
			roomArea, projectArea),
	}
}
