package services

import (
	"errors"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
)

// ErrorKind classifies application errors for transport-specific mapping.
type ErrorKind string

const (
	// ErrorUnknown is used when error is nil or not classified.
	ErrorUnknown ErrorKind = "unknown"
	// ErrorNotFound indicates a missing object.
	ErrorNotFound ErrorKind = "not_found"
	// ErrorInvalidInput indicates a malformed or inconsistent request.
	ErrorInvalidInput ErrorKind = "invalid_input"
	// ErrorUnauthorized indicates rejected credentials.
	ErrorUnauthorized ErrorKind = "unauthorized"
	// ErrorConflict indicates a uniqueness or reference constraint violation.
	ErrorConflict ErrorKind = "conflict"
)

// ClassifyError classifies a returned application error.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorUnknown
	case errors.Is(err, domain.ErrObjectNotFound):
		return ErrorNotFound
	case errors.Is(err, domain.ErrUnknownObjectType),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrInvalidWorkflow):
		return ErrorInvalidInput
	case errors.Is(err, ErrInvalidCredentials):
		return ErrorUnauthorized
	case errors.Is(err, ports.ErrIntegrityViolation):
		return ErrorConflict
	default:
		return ErrorUnknown
	}
}
