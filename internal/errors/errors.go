package errors

import (
	"errors"
	"fmt"
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

// MissingParameterError is returned before any query runs when a required
// identifier was not supplied by the caller.
type MissingParameterError struct {
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s is missing", e.Parameter)
}

// Is enables errors.Is() comparison for MissingParameterError
func (e *MissingParameterError) Is(target error) bool {
	t, ok := target.(*MissingParameterError)
	if !ok {
		return false
	}
	return e.Parameter == t.Parameter
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

// QueryError wraps a store failure raised while computing a report. The
// message never exposes the driver error; use errors.Unwrap to reach it.
type QueryError struct {
	Report string
	Err    error
}

func (e *QueryError) Error() string {
	return "error executing the query"
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrPlayerNotFound = &NotFoundError{Entity: "player"}
	ErrTeamNotFound   = &NotFoundError{Entity: "team"}
)

// Missing Parameter Errors
var (
	ErrPlayerIDMissing  = &MissingParameterError{Parameter: "player id"}
	ErrTeamIDMissing    = &MissingParameterError{Parameter: "team id"}
	ErrTeamOneMissing   = &MissingParameterError{Parameter: "team 1"}
	ErrTeamTwoMissing   = &MissingParameterError{Parameter: "team 2"}
	ErrBatterIDMissing  = &MissingParameterError{Parameter: "batter id"}
	ErrPitcherIDMissing = &MissingParameterError{Parameter: "pitcher id"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrSameTeam         = errors.New("head-to-head reports need two different teams")
)

// Helper Functions

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewQueryError wraps err as a QueryError for the named report
func NewQueryError(report string, err error) *QueryError {
	return &QueryError{Report: report, Err: err}
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsMissingParameter checks if an error is a MissingParameterError
func IsMissingParameter(err error) bool {
	var missingErr *MissingParameterError
	return errors.As(err, &missingErr)
}

// IsValidation checks if an error is a ValidationError or one of the
// business-rule errors that reject caller input.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	return errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, ErrSameTeam)
}

// IsQueryError checks if an error is a QueryError
func IsQueryError(err error) bool {
	var queryErr *QueryError
	return errors.As(err, &queryErr)
}

// IsClientError reports whether err was caused by the caller rather than the store.
func IsClientError(err error) bool {
	return IsNotFound(err) || IsMissingParameter(err) || IsValidation(err)
}
