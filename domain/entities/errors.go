package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrCourseNotFound is returned when a course id resolves to no document.
	ErrCourseNotFound = errors.New("course not found")

	// ErrUserNotFound is returned when a user id resolves to no document.
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyEnrolled is returned when a user is already enrolled in the course.
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)

// ValidationError reports an entity field that fails a write-time constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
