package domain

import "errors"

// Sentinel errors returned by the core services. The API layer maps each of
// these to an HTTP status; anything else is treated as an internal failure.
var (
	// ErrValidation marks missing or malformed required input. Callers wrap it
	// with a field-specific message: fmt.Errorf("%w: courseId is required", ...).
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken is returned when a registration collides on the
	// case-insensitive email key.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrDuplicateEntry is returned when a sub-collection unique key
	// (courseId, internshipId, sessionId) is already present for the user.
	ErrDuplicateEntry = errors.New("entry already exists")

	// ErrInvalidCredentials is returned for every authentication failure.
	// Unknown email and wrong password are intentionally indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound       = errors.New("user not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrInternshipNotFound = errors.New("internship not found")
	ErrArticleNotFound    = errors.New("article not found")

	ErrForbidden = errors.New("access forbidden")
)
