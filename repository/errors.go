package repository

import "fmt"

// ValidationError reports missing or malformed input. Field names the
// offending field so handlers can return a corrective message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// DeleteFailedError reports a delete for which the store removed zero
// records where one was expected. It signals a race or a prior partial
// failure, not client error.
type DeleteFailedError struct {
	Entity string
}

func (e *DeleteFailedError) Error() string {
	return "no " + e.Entity + " was deleted"
}

// AlreadyExistsError reports a create that collides with an existing record
// on a unique field.
type AlreadyExistsError struct {
	Entity string
}

func (e *AlreadyExistsError) Error() string {
	return e.Entity + " already exists"
}

// AlreadyEnrolledError reports a duplicate enrollment attempt.
type AlreadyEnrolledError struct{}

func (e *AlreadyEnrolledError) Error() string {
	return "student already enrolled"
}

// EnrollmentFailedError reports an enrollment write that modified zero
// records. Side names which half of the dual write failed; the other half
// may have succeeded and is not rolled back.
type EnrollmentFailedError struct {
	Side string
}

func (e *EnrollmentFailedError) Error() string {
	return "enrollment not recorded on " + e.Side
}
