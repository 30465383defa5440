package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("authentication required")
)

// University errors
var (
	ErrUniversityNotFound      = errors.New("university not found")
	ErrUniversityAlreadyExists = errors.New("university with this name already exists")
)

// College errors
var (
	ErrCollegeNotFound = errors.New("college not found")
	// ErrCodeCollision is returned when a unique code could not be assigned
	// after the bounded number of retries.
	ErrCodeCollision = errors.New("could not assign a unique code")
	// ErrCodeExhausted is returned when the numbering range has no codes left.
	ErrCodeExhausted = errors.New("numbering range exhausted")
)

// Department errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this code already exists")
)

// Program errors
var (
	ErrProgramNotFound = errors.New("program not found")
)

// Detail errors
var (
	ErrDetailNotFound = errors.New("detail record not found")
)
