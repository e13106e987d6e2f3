package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Repository errors
var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrVersionConflict    = errors.New("record was modified concurrently")
	ErrDuplicateRecord    = errors.New("record violates a unique constraint")
	ErrTokenAlreadyUsed   = errors.New("token already used")
	ErrNotificationFailed = errors.New("notification could not be delivered")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Kind classifies a request failure; each kind maps to one HTTP status.
type Kind int

const (
	KindUnexpected Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFoundOrUnauthorized
	KindConflict
	KindValidationFailed
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindForbidden:
		return "Forbidden"
	case KindNotFoundOrUnauthorized:
		return "NotFoundOrUnauthorized"
	case KindConflict:
		return "Conflict"
	case KindValidationFailed:
		return "ValidationFailed"
	default:
		return "Unexpected"
	}
}

// Status returns the HTTP status code carried by the kind.
func (k Kind) Status() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFoundOrUnauthorized:
		return http.StatusNotFound
	case KindConflict, KindValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is the single failure type raised by the request pipeline.
// Message and Description go to the client; Op, Resource and ResourceID
// locate the failing check for logs only.
type Error struct {
	Kind        Kind
	Message     string
	Description string
	Op          string
	Resource    string
	ResourceID  string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error.
func (e *Error) Status() int { return e.Kind.Status() }

// At records the operation that raised the error.
func (e *Error) At(op string) *Error {
	e.Op = op
	return e
}

// AsError extracts a *Error from err, wrapping unknown errors as Unexpected.
func AsError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return Unexpected(err)
}

// Unauthenticated is raised when the request carries no usable credential.
func Unauthenticated(description string, cause error) *Error {
	if description == "" {
		description = "Authentication required"
	}
	return &Error{
		Kind:        KindUnauthenticated,
		Message:     "Unauthenticated",
		Description: description,
		Err:         cause,
	}
}

// Forbidden is raised when the authenticated role is outside the route allow-set.
func Forbidden(role Role, allowed RoleSet) *Error {
	return &Error{
		Kind:        KindForbidden,
		Message:     "Unauthorized",
		Description: "You are not allowed to access this resource",
		Resource:    "route",
		Err:         fmt.Errorf("role %q not in [%s]", role, allowed),
	}
}

// NotFoundOrUnauthorized hides whether a resource is missing or owned by someone else.
func NotFoundOrUnauthorized(resource, id string) *Error {
	return &Error{
		Kind:        KindNotFoundOrUnauthorized,
		Message:     "Not found or unauthorized",
		Description: "Not found or unauthorized",
		Resource:    resource,
		ResourceID:  id,
	}
}

// NotFound reports a missing record whose existence is not sensitive.
func NotFound(message string, resource, id string) *Error {
	return &Error{
		Kind:        KindNotFoundOrUnauthorized,
		Message:     message,
		Description: message,
		Resource:    resource,
		ResourceID:  id,
	}
}

// Conflict is raised when a unique field would collide.
func Conflict(message string) *Error {
	return &Error{
		Kind:        KindConflict,
		Message:     message,
		Description: message,
	}
}

// ValidationFailed wraps a request-shape or precondition violation.
func ValidationFailed(message string, cause error) *Error {
	desc := message
	if cause != nil {
		desc = cause.Error()
	}
	return &Error{
		Kind:        KindValidationFailed,
		Message:     message,
		Description: desc,
		Err:         cause,
	}
}

// Unexpected wraps any fault without a more specific kind.
func Unexpected(cause error) *Error {
	return &Error{
		Kind:        KindUnexpected,
		Message:     "Internal server error",
		Description: "Something went wrong, please try again later",
		Err:         cause,
	}
}

// NotConfirmed is raised when an action needs a confirmed account.
func NotConfirmed(accountID string) *Error {
	return &Error{
		Kind:        KindForbidden,
		Message:     "Unauthorized",
		Description: "Please confirm your email first",
		Resource:    ResourceAccount,
		ResourceID:  accountID,
		Err:         errors.New("account not confirmed"),
	}
}
