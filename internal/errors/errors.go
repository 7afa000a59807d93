package errors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in school year"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AtCapacityError is returned when a position's assignment set is full.
type AtCapacityError struct {
	PositionTitle string
	MaxCadets     int
}

func (e *AtCapacityError) Error() string {
	return fmt.Sprintf("position %q is at capacity (%d)", e.PositionTitle, e.MaxCadets)
}

// Is enables errors.Is() comparison for AtCapacityError regardless of the
// embedded position details.
func (e *AtCapacityError) Is(target error) bool {
	_, ok := target.(*AtCapacityError)
	return ok
}

// StorageUnavailableError represents a failure to reach the backing store.
type StorageUnavailableError struct {
	Op string
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable during %s", e.Op)
}

// Is enables errors.Is() comparison for StorageUnavailableError
func (e *StorageUnavailableError) Is(target error) bool {
	_, ok := target.(*StorageUnavailableError)
	return ok
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSchoolYearNotFound     = &NotFoundError{Entity: "school year"}
	ErrCadetNotFound          = &NotFoundError{Entity: "cadet"}
	ErrChainOfCommandNotFound = &NotFoundError{Entity: "chain of command"}
	ErrPositionNotFound       = &NotFoundError{Entity: "position"}
	ErrUserProfileNotFound    = &NotFoundError{Entity: "user profile"}
)

// Already Exists Errors
var (
	ErrSchoolYearExists = &AlreadyExistsError{Entity: "school year", Context: "with this name"}
)

// Assignment Errors
var (
	ErrPositionAtCapacity = &AtCapacityError{}
	ErrCadetNotInYear     = errors.New("cadet does not belong to this chart's school year")
	ErrPositionNotInChart = errors.New("position does not belong to this chart")
)

// Storage Errors
var (
	ErrStorageUnavailable = &StorageUnavailableError{}
	ErrStorageWriteFailed = errors.New("storage write failed, edits not yet saved")
)

// Import / Export Errors
var (
	ErrImportParse = errors.New("import payload is not valid JSON")
	ErrImportShape = errors.New("import payload does not match any known schema")
)

// Authentication Errors
var (
	ErrMissingSubject = &AuthenticationError{Message: "subject not found in token claims"}
	ErrInvalidToken   = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or a struct
// validation failure from the request validator.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// IsAtCapacity checks if an error is an AtCapacityError
func IsAtCapacity(err error) bool {
	var capErr *AtCapacityError
	return errors.As(err, &capErr)
}
