// Package apperrors defines the sentinel errors shared by services,
// repositories and the HTTP boundary. Handlers translate these into the
// coarse status carried in the response envelope; anything that does not
// match a sentinel is reported as an internal error.
package apperrors

import "errors"

var (
	// ErrNotFound is returned when no row matched the key predicate.
	ErrNotFound = errors.New("resource not found")

	// ErrNoFieldsToUpdate is returned for an update request that supplied
	// no fields. It is detected before any storage access.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrValidationFailed is returned when supplied values violate a
	// domain constraint (empty name, negative price, unknown enum value).
	ErrValidationFailed = errors.New("validation failed")
)

// Is reports whether err matches target or any of the extra sentinels.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
